package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// LZMACodec compresses payloads as LZMA "alone" streams, the format
// firmware loaders traditionally decode.
type LZMACodec struct{}

var _ Codec = LZMACodec{}

// NewLZMACodec creates an LZMA codec.
func NewLZMACodec() LZMACodec {
	return LZMACodec{}
}

// Compress writes src as a complete LZMA stream with its size in the header.
func (LZMACodec) Compress(src []byte) ([]byte, error) {
	var out bytes.Buffer
	cfg := lzma.WriterConfig{SizeInHeader: true, Size: int64(len(src))}
	w, err := cfg.NewWriter(&out)
	if err != nil {
		return nil, fmt.Errorf("lzma writer: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return nil, fmt.Errorf("lzma compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lzma compression failed: %w", err)
	}
	return out.Bytes(), nil
}

// Decompress reads an LZMA stream into dst.
func (LZMACodec) Decompress(dst, src []byte) error {
	r, err := lzma.NewReader(bytes.NewReader(src))
	if err != nil {
		return fmt.Errorf("lzma reader: %w", err)
	}
	n, err := io.ReadFull(r, dst)
	if err != nil {
		return fmt.Errorf("lzma decompression failed after %d bytes: %w", n, err)
	}
	// The stream must end exactly at len(dst).
	var tail [1]byte
	if extra, _ := r.Read(tail[:]); extra != 0 {
		return fmt.Errorf("%w: stream longer than %d bytes", ErrLengthMismatch, len(dst))
	}
	return nil
}
