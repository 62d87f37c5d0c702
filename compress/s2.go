package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Codec compresses payloads with the S2 block format.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates an S2 block codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress encodes src as one S2 block.
func (S2Codec) Compress(src []byte) ([]byte, error) {
	return s2.EncodeBetter(nil, src), nil
}

// Decompress decodes an S2 block into dst.
func (S2Codec) Decompress(dst, src []byte) error {
	n, err := s2.DecodedLen(src)
	if err != nil {
		return fmt.Errorf("s2 decompression failed: %w", err)
	}
	if err := checkLength(n, len(dst)); err != nil {
		return err
	}
	out, err := s2.Decode(dst, src)
	if err != nil {
		return fmt.Errorf("s2 decompression failed: %w", err)
	}
	copy(dst, out)
	return nil
}
