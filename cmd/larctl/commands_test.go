package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupArchive creates fw.img with stage1.bin (compressible) and random.bin
// (stored) and returns the archive path and the source directory.
func setupArchive(t *testing.T) (string, string) {
	t.Helper()
	resetFlags()
	dir := t.TempDir()
	archive := filepath.Join(dir, "fw.img")
	stage1 := writeFile(t, dir, "stage1.bin", bytes.Repeat([]byte("stage1 "), 600))
	_, err := captureOutput(t, func() error {
		return runCreate([]string{archive, "1m", stage1 + ":stage1.bin"})
	})
	require.NoError(t, err)
	return archive, dir
}

func TestCreateCommand(t *testing.T) {
	archive, _ := setupArchive(t)

	st, err := os.Stat(archive)
	require.NoError(t, err)
	require.Equal(t, int64(1<<20), st.Size())

	_, err = captureOutput(t, func() error {
		return runCreate([]string{archive, "1m"})
	})
	require.Error(t, err, "create must refuse an existing archive")
}

func TestCreateCommand_BadArguments(t *testing.T) {
	resetFlags()
	dir := t.TempDir()

	_, err := captureOutput(t, func() error {
		return runCreate([]string{filepath.Join(dir, "a.img"), "lots"})
	})
	require.Error(t, err)

	compression = "brotli"
	_, err = captureOutput(t, func() error {
		return runCreate([]string{filepath.Join(dir, "b.img"), "1m"})
	})
	require.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "b.img"))
	require.True(t, os.IsNotExist(statErr))
}

func TestListCommand(t *testing.T) {
	tests := []struct {
		name           string
		names          []string
		wantJSON       bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "all entries",
			wantContain: []string{"stage1.bin (4200 bytes, zstd compressed to", "bootblock (16384 bytes @0xfc000)"},
		},
		{
			name:           "filtered",
			names:          []string{"bootblock"},
			wantContain:    []string{"bootblock"},
			wantNotContain: []string{"stage1.bin"},
		},
		{
			name:           "missing name",
			names:          []string{"nothing"},
			wantNotContain: []string{"stage1.bin", "bootblock"},
		},
		{
			name:        "json",
			wantJSON:    true,
			wantContain: []string{`"name": "stage1.bin"`, `"algorithm": "zstd"`, `"original_len": 4200`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archive, _ := setupArchive(t)
			jsonOut = tt.wantJSON

			output, err := captureOutput(t, func() error {
				return runList(append([]string{archive}, tt.names...))
			})
			require.NoError(t, err, output)

			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestAddCommand(t *testing.T) {
	archive, dir := setupArchive(t)
	cfg := writeFile(t, dir, "cfg.txt", bytes.Repeat([]byte("key=value\n"), 100))

	_, err := captureOutput(t, func() error {
		return runAdd([]string{archive, "nocompress:" + cfg + ":config", cfg + ":config.zst"})
	})
	require.NoError(t, err)

	compression = "lz4"
	_, err = captureOutput(t, func() error {
		return runAdd([]string{archive, cfg + ":config.lz4"})
	})
	require.NoError(t, err)

	output, err := captureOutput(t, func() error {
		return runList([]string{archive})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{
		"config (1000 bytes @0x",
		"config.zst (1000 bytes, zstd compressed",
		"config.lz4 (1000 bytes, lz4 compressed",
	})

	_, err = captureOutput(t, func() error {
		return runAdd([]string{archive, filepath.Join(dir, "missing.bin")})
	})
	require.Error(t, err)
}

func TestExtractCommand(t *testing.T) {
	archive, dir := setupArchive(t)
	out := t.TempDir()
	extractDir = out

	_, err := captureOutput(t, func() error {
		return runExtract([]string{archive, "stage1.bin"})
	})
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join(dir, "stage1.bin"))
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(out, "stage1.bin"))
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = os.Stat(filepath.Join(out, "bootblock"))
	require.True(t, os.IsNotExist(err), "bootblock was not requested")
}

func TestVerifyCommand(t *testing.T) {
	archive, _ := setupArchive(t)

	output, err := captureOutput(t, func() error {
		return runVerify([]string{archive})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"stage1.bin", "ok sha256:"})

	// Clobber the first payload byte; stage1.bin has a 48-byte header record.
	f, err := os.OpenFile(archive, os.O_RDWR, 0)
	require.NoError(t, err)
	_, err = f.WriteAt([]byte{0x00}, 48)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	output, err = captureOutput(t, func() error {
		return runVerify([]string{archive, "stage1.bin"})
	})
	require.Error(t, err)
	assertContains(t, output, []string{"FAILED"})
}

func TestOpenCommands_SizeMismatch(t *testing.T) {
	archive, _ := setupArchive(t)
	require.NoError(t, os.Truncate(archive, (1<<20)+16))

	_, err := captureOutput(t, func() error {
		return runList([]string{archive})
	})
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	resetFlags()
	out, err := captureOutput(t, runVersion)
	require.NoError(t, err)
	assertContains(t, out, []string{"larctl ", "algorithms: none, lzma, zstd, lz4, s2"})

	jsonOut = true
	defer resetFlags()
	out, err = captureOutput(t, runVersion)
	require.NoError(t, err)
	assertJSON(t, out)
	assertContains(t, out, []string{`"algorithms"`, `"zstd"`})
}

func TestAddOptions_NoneMeansStore(t *testing.T) {
	resetFlags()
	defer resetFlags()

	compression = "none"
	opts, err := addOptions()
	require.NoError(t, err)
	require.True(t, opts.Store)

	compression = "lz4"
	opts, err = addOptions()
	require.NoError(t, err)
	require.False(t, opts.Store)
}
