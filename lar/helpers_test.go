package lar

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/larkit/internal/format"
)

// newArchive creates an archive of size bytes in a temp dir and closes it
// when the test ends.
func newArchive(t *testing.T, size int64) (*Archive, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fw.img")
	a, err := Create(path, size, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a, path
}

// writeSource writes data to dir/name and returns the path.
func writeSource(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// compressible returns n bytes that every codec can shrink.
func compressible(n int) []byte {
	pattern := []byte("romstage: init dram, copy payload; ")
	return bytes.Repeat(pattern, n/len(pattern)+1)[:n]
}

// incompressible returns n pseudo-random bytes.
func incompressible(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.New(rand.NewSource(int64(n))).Read(b)
	return b
}

// sizeWithRoom returns an archive size leaving room bytes before the bootblock.
func sizeWithRoom(room int64) int64 {
	return format.BootblockRecordSize + room
}
