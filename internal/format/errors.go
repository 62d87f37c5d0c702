package format

import (
	"errors"
	"fmt"
)

var (
	// ErrSignatureMismatch indicates a header did not start with Magic.
	ErrSignatureMismatch = errors.New("lar: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("lar: truncated buffer")
	// ErrCorrupt indicates header fields that cannot describe a valid record.
	ErrCorrupt = errors.New("lar: corrupt entry")
	// ErrAlreadyExists indicates the archive to create is already present.
	ErrAlreadyExists = errors.New("lar: archive already exists")
	// ErrIO wraps open, read, write and stat failures.
	ErrIO = errors.New("lar: i/o error")
	// ErrSizeMismatch indicates the size embedded in the bootblock disagrees
	// with the archive's length.
	ErrSizeMismatch = errors.New("lar: size mismatch")
	// ErrCapacity indicates there is not enough room before the bootblock.
	ErrCapacity = errors.New("lar: not enough room in archive")
	// ErrArchiveFull indicates the entry walk reached the bootblock without
	// finding free space.
	ErrArchiveFull = fmt.Errorf("%w: archive full", ErrCapacity)
	// ErrMemory indicates a buffer could not be allocated for an entry.
	ErrMemory = errors.New("lar: out of memory")
	// ErrInvalidName indicates an empty or malformed stored name.
	ErrInvalidName = errors.New("lar: invalid name")
	// ErrInvalidBootblock indicates a bootblock source of the wrong size.
	ErrInvalidBootblock = errors.New("lar: invalid bootblock")
	// ErrInvalidHandle indicates an operation on a closed or nil archive.
	ErrInvalidHandle = errors.New("lar: invalid archive handle")
)
