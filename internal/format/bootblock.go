package format

import (
	"fmt"

	"github.com/joshuapare/larkit/internal/buf"
)

// PutBootblockHeader writes the bootblock header and its reserved name at
// the start of b, which must cover at least HeaderSize+BootblockNameLen bytes.
// The checksum field is left zero.
func PutBootblockHeader(b []byte) error {
	if len(b) < HeaderSize+BootblockNameLen {
		return fmt.Errorf("bootblock header: %w", ErrTruncated)
	}
	clear(b[:HeaderSize+BootblockNameLen])
	if err := PutHeader(b, Header{
		OriginalLen:   BootblockSize,
		StoredLen:     BootblockSize,
		PayloadOffset: HeaderSize + BootblockNameLen,
		Compression:   CompressionNone,
	}); err != nil {
		return err
	}
	copy(b[NameOffset:], BootblockName)
	return nil
}

// AnnotateBootblock clears the tail of a bootblock payload and records the
// archive size in its trailer: one cleared byte, the size as a big-endian
// uint32, then eight reserved zero bytes.
func AnnotateBootblock(payload []byte, archiveSize uint32) error {
	if len(payload) != BootblockSize {
		return fmt.Errorf("bootblock payload of %d bytes: %w", len(payload), ErrTruncated)
	}
	clear(payload[BootblockSize-bootblockClearSize:])
	PutU32(payload, BootblockSize-BootblockTrailerSize, archiveSize)
	return nil
}

// ReadArchiveSize returns the archive size recorded in the bootblock trailer
// at the very end of archive.
func ReadArchiveSize(archive []byte) (uint32, error) {
	if len(archive) < BootblockRecordSize {
		return 0, fmt.Errorf("archive of %d bytes has no bootblock: %w", len(archive), ErrTruncated)
	}
	return buf.U32BE(archive[len(archive)-BootblockTrailerSize:]), nil
}
