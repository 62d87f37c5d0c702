//go:build linux || darwin || freebsd || netbsd || openbsd

package lar

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/larkit/internal/dirty"
)

// mapFile maps size bytes of f read/write and shared, so stores land in the
// page cache of the file itself.
func mapFile(f *os.File, size int) ([]byte, error) {
	return unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

// unmapFile drops the mapping. Dirty pages are written back by the kernel.
func unmapFile(_ *os.File, data []byte, _ *dirty.Tracker) error {
	err := unix.Munmap(data)
	if errors.Is(err, unix.EINVAL) {
		return nil
	}
	return err
}

// syncFile msyncs the pages touched since the last sync.
func syncFile(_ *os.File, data []byte, t *dirty.Tracker) error {
	return t.Flush(func(r dirty.Range) error {
		return unix.Msync(data[r.Off:r.End()], unix.MS_SYNC)
	})
}
