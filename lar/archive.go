package lar

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"

	"github.com/joshuapare/larkit/compress"
	"github.com/joshuapare/larkit/internal/dirty"
	"github.com/joshuapare/larkit/internal/format"
)

// Archive is an open LAR archive, backed by a read/write mapping of the
// whole file (unix) or an in-memory copy written back on Sync and Close
// (other platforms). The size is fixed for the archive's lifetime.
type Archive struct {
	f        *os.File
	data     []byte
	size     uint32
	path     string
	registry *compress.Registry
	logger   *slog.Logger
	dirty    *dirty.Tracker
}

// Create makes a new archive of exactly size bytes at path. The file is
// filled with the 0xFF erase pattern and given a bootblock recording size.
// Create fails with ErrAlreadyExists if path exists, and removes the file
// again if any later step fails.
func Create(path string, size int64, opts *CreateOptions) (*Archive, error) {
	if opts == nil {
		opts = &CreateOptions{}
	}
	if _, err := os.Lstat(path); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: stat %s: %w", ErrIO, path, err)
	}
	if size < format.BootblockRecordSize || size > math.MaxUint32 {
		return nil, fmt.Errorf("%w: size %d outside [%d, %d]",
			ErrCapacity, size, format.BootblockRecordSize, uint64(math.MaxUint32))
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyExists, path)
		}
		return nil, fmt.Errorf("%w: create %s: %w", ErrIO, path, err)
	}

	a := &Archive{
		f:        f,
		size:     uint32(size),
		path:     path,
		registry: opts.registry(),
		logger:   opts.logger(),
		dirty:    dirty.NewTracker(size),
	}

	// Don't leave a half-built archive lying around.
	fail := func(err error) (*Archive, error) {
		_ = a.Close()
		_ = os.Remove(path)
		return nil, err
	}

	if err := f.Truncate(size); err != nil {
		return fail(fmt.Errorf("%w: allocate %s: %w", ErrIO, path, err))
	}
	data, err := mapFile(f, int(size))
	if err != nil {
		return fail(fmt.Errorf("%w: map %s: %w", ErrIO, path, err))
	}
	a.data = data

	for i := range a.data {
		a.data[i] = format.EraseByte
	}
	a.dirty.Add(0, size)

	if err := a.writeBootblock(opts.BootblockFile); err != nil {
		return fail(err)
	}

	a.logger.Debug("created archive",
		"path", path,
		"size", size,
		"bootblock_offset", a.BootblockOffset())
	return a, nil
}

// Open maps an existing archive read/write. The size recorded in the
// bootblock trailer must equal the file length; nothing else is validated
// until entries are scanned.
func Open(path string, opts *Options) (*Archive, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: stat %s: %w", ErrIO, path, err)
	}
	sz := st.Size()
	if sz < format.BootblockRecordSize || sz > math.MaxUint32 {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is %d bytes, too small or too large for an archive",
			ErrSizeMismatch, path, sz)
	}

	data, err := mapFile(f, int(sz))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: map %s: %w", ErrIO, path, err)
	}

	a := &Archive{
		f:        f,
		data:     data,
		size:     uint32(sz),
		path:     path,
		registry: opts.registry(),
		logger:   opts.logger(),
		dirty:    dirty.NewTracker(sz),
	}

	romlen, err := format.ReadArchiveSize(data)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("%w: %w", ErrSizeMismatch, err)
	}
	if int64(romlen) != sz {
		_ = a.Close()
		return nil, fmt.Errorf("%w: the header says %d but %s is %d bytes long",
			ErrSizeMismatch, romlen, path, sz)
	}

	a.logger.Debug("opened archive", "path", path, "size", sz)
	return a, nil
}

// Close unmaps the archive and closes its file. It is safe to call on a nil
// or already closed archive.
func (a *Archive) Close() error {
	if a == nil {
		return nil
	}
	var err error
	if a.data != nil {
		err = unmapFile(a.f, a.data, a.dirty)
		a.data = nil
	}
	if a.f != nil {
		if cerr := a.f.Close(); err == nil {
			err = cerr
		}
		a.f = nil
	}
	return err
}

// Sync flushes the pages written since the last Sync to stable storage.
// The engine never calls it on its own.
func (a *Archive) Sync() error {
	if err := a.check(); err != nil {
		return err
	}
	if err := syncFile(a.f, a.data, a.dirty); err != nil {
		return fmt.Errorf("%w: sync %s: %w", ErrIO, a.path, err)
	}
	return nil
}

// Size returns the fixed archive size in bytes.
func (a *Archive) Size() uint32 { return a.size }

// Path returns the file the archive was opened from.
func (a *Archive) Path() string { return a.path }

// Bytes returns the mapped region. Writes through it mutate the archive but
// are not tracked, so Sync will not flush them.
func (a *Archive) Bytes() []byte { return a.data }

// Registry returns the codec registry used by this handle.
func (a *Archive) Registry() *compress.Registry { return a.registry }

// check reports ErrInvalidHandle for nil or closed archives.
func (a *Archive) check() error {
	if a == nil || a.data == nil {
		return ErrInvalidHandle
	}
	return nil
}
