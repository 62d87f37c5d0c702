//go:build !unix

package mmfile

import (
	"fmt"
	"os"
)

// Map reads the whole file where mmap is not used. It applies the same
// checks as the unix mapping so callers see identical errors.
func Map(path string) ([]byte, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("mmfile: %s is not a regular file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if data == nil {
		data = []byte{}
	}
	return data, func() error { return nil }, nil
}
