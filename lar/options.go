package lar

import (
	"io"
	"log/slog"

	"github.com/joshuapare/larkit/compress"
)

// DefaultAlgorithm is the compression used when AddOptions are not given.
const DefaultAlgorithm = compress.Zstd

// MaxEntrySize caps the original length of an entry that will be
// decompressed into memory.
const MaxEntrySize = 1 << 30

// Options configures an archive handle.
type Options struct {
	// Registry resolves compression ids to codecs.
	// If nil, compress.Default() is used.
	Registry *compress.Registry

	// Logger receives debug records for each mutation and extraction.
	// If nil, all output is discarded.
	Logger *slog.Logger
}

// CreateOptions controls archive creation.
type CreateOptions struct {
	Options

	// BootblockFile is copied into the bootblock payload. It must be exactly
	// BootblockSize bytes long. If empty, the payload is left erased.
	BootblockFile string
}

// AddOptions controls a single add. The zero value compresses with
// DefaultAlgorithm.
type AddOptions struct {
	// Algorithm compresses the payload. compress.None, the zero value,
	// selects DefaultAlgorithm; use Store to keep payloads uncompressed.
	// If the result is not smaller than the source, the payload is stored
	// uncompressed instead.
	Algorithm compress.Algorithm

	// Store writes every payload verbatim, as the "nocompress:" prefix
	// does for a single file.
	Store bool
}

// DefaultAddOptions returns AddOptions using DefaultAlgorithm.
func DefaultAddOptions() *AddOptions {
	return &AddOptions{Algorithm: DefaultAlgorithm}
}

func (o *AddOptions) algorithm() compress.Algorithm {
	switch {
	case o == nil:
		return DefaultAlgorithm
	case o.Store:
		return compress.None
	case o.Algorithm == compress.None:
		return DefaultAlgorithm
	}
	return o.Algorithm
}

// ExtractOptions controls extraction.
type ExtractOptions struct {
	// Dir is the directory stored names are resolved against.
	// Default: the current working directory.
	Dir string
}

func (o *Options) registry() *compress.Registry {
	if o == nil || o.Registry == nil {
		return compress.Default()
	}
	return o.Registry
}

func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}
