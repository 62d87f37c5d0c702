package compress

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrUnknownAlgorithm indicates an algorithm id with no registered codec.
	ErrUnknownAlgorithm = errors.New("compress: unknown algorithm")
	// ErrIncompressible indicates the codec could not shrink the input.
	// Callers should store the payload uncompressed instead.
	ErrIncompressible = errors.New("compress: input is incompressible")
	// ErrLengthMismatch indicates decompressed output did not match the
	// expected original length.
	ErrLengthMismatch = errors.New("compress: decompressed length mismatch")
)

// Codec compresses whole payloads and restores them.
type Codec interface {
	// Compress returns the compressed form of src. The returned slice may
	// alias src and must not be retained past the next call on src.
	Compress(src []byte) ([]byte, error)

	// Decompress restores src into dst. len(dst) is the original length;
	// output of any other length is an error.
	Decompress(dst, src []byte) error
}

// Registry maps algorithm ids to codecs. The zero value is not usable; build
// one with NewRegistry or Default.
type Registry struct {
	codecs map[Algorithm]Codec
}

// NewRegistry returns a registry holding only the None codec.
func NewRegistry() *Registry {
	return &Registry{codecs: map[Algorithm]Codec{None: NewNoOpCodec()}}
}

// Default returns a registry with every built-in codec registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(LZMA, NewLZMACodec())
	r.Register(Zstd, NewZstdCodec())
	r.Register(LZ4, NewLZ4Codec())
	r.Register(S2, NewS2Codec())
	return r
}

// Register installs c under id a, replacing any previous codec.
func (r *Registry) Register(a Algorithm, c Codec) {
	r.codecs[a] = c
}

// Lookup returns the codec registered under a.
func (r *Registry) Lookup(a Algorithm) (Codec, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %s (nil registry)", ErrUnknownAlgorithm, a)
	}
	c, ok := r.codecs[a]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, a)
	}
	return c, nil
}

// Algorithms returns the registered ids in ascending order.
func (r *Registry) Algorithms() []Algorithm {
	out := make([]Algorithm, 0, len(r.codecs))
	for a := range r.codecs {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

func checkLength(got, want int) error {
	if got != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrLengthMismatch, got, want)
	}
	return nil
}
