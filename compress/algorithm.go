package compress

import (
	"fmt"
	"strings"
)

// Algorithm identifies a compression algorithm as stored in an entry header.
type Algorithm uint32

const (
	// None stores the payload verbatim.
	None Algorithm = 0
	// LZMA is the LZMA "alone" stream format.
	LZMA Algorithm = 1
	// NRV2B is reserved; no codec is registered for it.
	NRV2B Algorithm = 2
	// Zstd is Zstandard.
	Zstd Algorithm = 3
	// LZ4 is the LZ4 block format.
	LZ4 Algorithm = 4
	// S2 is the S2 block format, a Snappy extension.
	S2 Algorithm = 5
)

var algorithmNames = map[Algorithm]string{
	None:  "none",
	LZMA:  "lzma",
	NRV2B: "nrv2b",
	Zstd:  "zstd",
	LZ4:   "lz4",
	S2:    "s2",
}

// String returns the algorithm name used in listings and on the command line.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", uint32(a))
}

// ParseAlgorithm maps a name such as "zstd" to its Algorithm.
// Matching is case-insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
