//go:build linux

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuard_TruncatedMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 64<<10), 0o644))

	data, cleanup, err := Map(path)
	require.NoError(t, err)
	defer func() { _ = cleanup() }()

	require.NoError(t, os.Truncate(path, 0))

	var sink byte
	err = Guard(func() error {
		for i := 0; i < len(data); i += 4096 {
			sink ^= data[i]
		}
		return nil
	})
	require.ErrorIs(t, err, ErrFault)
	_ = sink
}
