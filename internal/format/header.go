package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/larkit/internal/buf"
)

// Header captures the fixed fields of an entry header.
type Header struct {
	Checksum      uint32
	OriginalLen   uint32
	StoredLen     uint32
	PayloadOffset uint32
	Compression   uint32
}

// HasMagic reports whether b starts with the entry magic.
func HasMagic(b []byte) bool {
	m, ok := buf.Slice(b, MagicOffset, MagicSize)
	return ok && bytes.Equal(m, Magic)
}

// ParseHeader validates the magic and extracts the fixed header fields.
func ParseHeader(b []byte) (Header, error) {
	if !buf.Has(b, 0, HeaderSize) {
		return Header{}, fmt.Errorf("entry header: %w", ErrTruncated)
	}
	if !HasMagic(b) {
		return Header{}, fmt.Errorf("entry header: %w", ErrSignatureMismatch)
	}
	return Header{
		Checksum:      buf.U32BE(b[ChecksumOffset:]),
		OriginalLen:   buf.U32BE(b[OriginalLenOffset:]),
		StoredLen:     buf.U32BE(b[StoredLenOffset:]),
		PayloadOffset: buf.U32BE(b[PayloadOffOffset:]),
		Compression:   buf.U32BE(b[CompressionOffset:]),
	}, nil
}

// PutHeader writes the magic and the fixed fields of h into b.
// The name area is left untouched.
func PutHeader(b []byte, h Header) error {
	if len(b) < HeaderSize {
		return fmt.Errorf("entry header: %w", ErrTruncated)
	}
	copy(b[MagicOffset:], Magic)
	PutU32(b, ChecksumOffset, h.Checksum)
	PutU32(b, OriginalLenOffset, h.OriginalLen)
	PutU32(b, StoredLenOffset, h.StoredLen)
	PutU32(b, PayloadOffOffset, h.PayloadOffset)
	PutU32(b, CompressionOffset, h.Compression)
	return nil
}

// NextEntryOffset returns the offset, relative to the header start, at which
// the next header must begin.
func NextEntryOffset(h Header) uint32 {
	return RoundUp16(h.PayloadOffset + h.StoredLen)
}

// Validate checks that a header describes a record that fits in limit bytes
// counted from the header start and that the walk would advance past it.
func (h Header) Validate(limit uint32) error {
	if h.PayloadOffset < HeaderSize {
		return fmt.Errorf("%w: payload offset %d inside fixed header", ErrCorrupt, h.PayloadOffset)
	}
	end, ok := buf.AddU32(h.PayloadOffset, h.StoredLen)
	if !ok || end > limit {
		return fmt.Errorf("%w: record of %d bytes exceeds %d available", ErrCorrupt, end, limit)
	}
	return nil
}

// Compressed reports whether the payload is stored with a compression algorithm.
func (h Header) Compressed() bool { return h.Compression != CompressionNone }

// ReadName returns the NUL-terminated name that follows the fixed fields.
// The scan stops at the payload offset, MaxPathLen, or the end of b,
// whichever comes first.
func ReadName(b []byte, payloadOffset uint32) []byte {
	end := len(b)
	if int(payloadOffset) < end {
		end = int(payloadOffset)
	}
	if lim := NameOffset + MaxPathLen; lim < end {
		end = lim
	}
	if end <= NameOffset {
		return nil
	}
	name := b[NameOffset:end]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return name
}

// PutName copies name into the header record after the fixed fields,
// truncating it to MaxPathLen-1 bytes. The caller is expected to have zeroed
// the record so the terminating NUL is already present.
func PutName(b []byte, name string) {
	if len(name) > MaxPathLen-1 {
		name = name[:MaxPathLen-1]
	}
	copy(b[NameOffset:], name)
}
