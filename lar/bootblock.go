package lar

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/larkit/internal/buf"
	"github.com/joshuapare/larkit/internal/format"
)

// BootblockOffset returns the absolute offset of the bootblock header.
// Entries must end before it.
func (a *Archive) BootblockOffset() uint32 {
	return format.BootblockOffset(a.size)
}

// Bootblock returns a zero-copy view of the bootblock payload.
func (a *Archive) Bootblock() ([]byte, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	start := a.BootblockOffset() + format.HeaderSize + format.BootblockNameLen
	return a.data[start : start+format.BootblockSize], nil
}

// writeBootblock lays down the bootblock header and name, optionally loads
// src into the payload, then records the archive size in the trailer.
func (a *Archive) writeBootblock(src string) error {
	rec := a.data[a.BootblockOffset():]
	if err := format.PutBootblockHeader(rec); err != nil {
		return err
	}
	payload := rec[format.HeaderSize+format.BootblockNameLen:]

	if src != "" {
		if err := loadBootblock(src, payload); err != nil {
			return err
		}
	}

	if err := format.AnnotateBootblock(payload, a.size); err != nil {
		return err
	}
	format.PutU32(rec, format.ChecksumOffset, format.RecordChecksum(rec))
	return nil
}

// loadBootblock reads src, which must be exactly BootblockSize bytes, into dst.
func loadBootblock(src string, dst []byte) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: read bootblock %s: %w", ErrIO, src, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%w: stat bootblock %s: %w", ErrIO, src, err)
	}
	if st.Size() != format.BootblockSize {
		return fmt.Errorf("%w: %s is %d bytes, want %d",
			ErrInvalidBootblock, src, st.Size(), format.BootblockSize)
	}
	if _, err := io.ReadFull(f, dst[:format.BootblockSize]); err != nil {
		return fmt.Errorf("%w: unable to read all of bootblock %s: %w", ErrIO, src, err)
	}
	return nil
}

// bootblockEntry returns the bootblock as a virtual entry. Its layout is
// fixed, so the header fields other than the checksum are not consulted.
func (a *Archive) bootblockEntry() Entry {
	off := a.BootblockOffset()
	rec := a.data[off : off+format.BootblockRecordSize]
	return Entry{
		Offset: off,
		Header: format.Header{
			Checksum:      buf.U32BE(rec[format.ChecksumOffset:]),
			OriginalLen:   format.BootblockSize,
			StoredLen:     format.BootblockSize,
			PayloadOffset: format.HeaderSize + format.BootblockNameLen,
			Compression:   format.CompressionNone,
		},
		Name:      []byte(format.BootblockName),
		Bootblock: true,
		record:    rec,
	}
}
