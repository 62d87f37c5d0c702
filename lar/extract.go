package lar

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joshuapare/larkit/compress"
)

// Extract writes every entry matching filter to a file named after its
// stored name, relative to opts.Dir, creating parent directories as needed.
// It stops at the first failure and returns the paths written so far.
func (a *Archive) Extract(filter Filter, opts *ExtractOptions) ([]string, error) {
	if opts == nil {
		opts = &ExtractOptions{}
	}
	var written []string
	err := a.Walk(filter, func(e Entry) error {
		path, err := outputPath(opts.Dir, string(e.Name))
		if err != nil {
			return err
		}
		content, err := a.Content(e)
		if err != nil {
			return fmt.Errorf("extract %s: %w", e.Name, err)
		}
		if err := writeFile(path, content); err != nil {
			return err
		}
		a.logger.Debug("extracted entry",
			"name", string(e.Name),
			"path", path,
			"bytes", len(content))
		written = append(written, path)
		return nil
	})
	return written, err
}

// Content returns the original bytes of e. Uncompressed payloads are
// returned as a view of the mapping; compressed ones are decoded into a new
// buffer of the original length.
func (a *Archive) Content(e Entry) ([]byte, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	algo := compress.Algorithm(e.Header.Compression)
	if algo == compress.None {
		if e.Header.OriginalLen != e.Header.StoredLen {
			return nil, fmt.Errorf("%w: %s stores %d bytes but claims %d",
				ErrCorrupt, e.Name, e.Header.StoredLen, e.Header.OriginalLen)
		}
		return e.Payload(), nil
	}
	if e.Header.OriginalLen > MaxEntrySize {
		return nil, fmt.Errorf("%w: %s claims %d bytes", ErrMemory, e.Name, e.Header.OriginalLen)
	}
	codec, err := a.registry.Lookup(algo)
	if err != nil {
		return nil, err
	}
	out := make([]byte, e.Header.OriginalLen)
	if err := codec.Decompress(out, e.Payload()); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadEntry returns the original bytes of the first entry stored as name.
// The bootblock is addressed by its reserved name.
func (a *Archive) ReadEntry(name string) ([]byte, error) {
	var (
		found bool
		out   []byte
	)
	err := a.Walk(NewFilter(name), func(e Entry) error {
		if found {
			return nil
		}
		content, err := a.Content(e)
		if err != nil {
			return err
		}
		found = true
		out = append([]byte(nil), content...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("lar: entry %q: %w", name, os.ErrNotExist)
	}
	return out, nil
}

// outputPath resolves a stored name under dir. Names that are absolute or
// climb out of dir are rejected.
func outputPath(dir, name string) (string, error) {
	local := filepath.FromSlash(name)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: %q escapes the output directory", ErrInvalidName, name)
	}
	if dir == "" {
		return local, nil
	}
	return filepath.Join(dir, local), nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: create directory for %s: %w", ErrIO, path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: error writing the file %s: %w", ErrIO, path, err)
	}
	return nil
}
