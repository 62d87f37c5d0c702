package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdEncoderPool pools encoders; EncodeAll is stateless and the encoder is
// designed to be reused once warmed up.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
			zstd.WithEncoderCRC(false),
			zstd.WithEncoderConcurrency(1),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}
		return encoder
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(true),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}
		return decoder
	},
}

// ZstdCodec compresses payloads with Zstandard.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a Zstandard codec backed by pooled encoders.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}

// Compress compresses src into a single zstd frame.
func (ZstdCodec) Compress(src []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(src, make([]byte, 0, len(src))), nil
}

// Decompress decodes a zstd frame into dst.
func (ZstdCodec) Decompress(dst, src []byte) error {
	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(src, dst[:0])
	if err != nil {
		return fmt.Errorf("zstd decompression failed: %w", err)
	}
	if err := checkLength(len(out), len(dst)); err != nil {
		return err
	}
	// DecodeAll appends into dst's backing array when it fits.
	copy(dst, out)
	return nil
}
