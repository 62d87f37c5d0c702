//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package lar

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/larkit/internal/dirty"
)

// mapFile loads the archive into memory where mmap isn't used. Modified
// ranges are written back by syncFile and unmapFile.
func mapFile(f *os.File, size int) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := f.ReadAt(buf, 0); err != nil && err != io.EOF {
		return nil, err
	}
	return buf, nil
}

func unmapFile(f *os.File, data []byte, t *dirty.Tracker) error {
	if f == nil {
		return nil
	}
	return writeBack(f, data, t)
}

func syncFile(f *os.File, data []byte, t *dirty.Tracker) error {
	if err := writeBack(f, data, t); err != nil {
		return err
	}
	return f.Sync()
}

func writeBack(f *os.File, data []byte, t *dirty.Tracker) error {
	return t.Flush(func(r dirty.Range) error {
		if _, err := f.WriteAt(data[r.Off:r.End()], r.Off); err != nil {
			return fmt.Errorf("write back 0x%x: %w", r.Off, err)
		}
		return nil
	})
}
