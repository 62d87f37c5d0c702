package main

import (
	"fmt"
	"math"
	"strings"

	units "github.com/docker/go-units"
)

// parseSize parses an archive size such as "1048576", "1024k" or "1m".
// Suffixes are binary (k = 1024) and digits are always decimal.
func parseSize(s string) (int64, error) {
	n, err := units.RAMInBytes(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if n <= 0 || n > math.MaxUint32 {
		return 0, fmt.Errorf("size %q must be between 1 and %d bytes", s, uint64(math.MaxUint32))
	}
	return n, nil
}
