package lar

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/joshuapare/larkit/compress"
	"github.com/joshuapare/larkit/internal/format"
	"github.com/joshuapare/larkit/internal/mmfile"
)

// Add parses arg with ParseAddSpec and adds the file it names.
func (a *Archive) Add(arg string, opts *AddOptions) error {
	spec, err := ParseAddSpec(arg)
	if err != nil {
		return err
	}
	return a.AddFile(spec, opts)
}

// AddFile writes spec.Source into the first free slot under spec.Name.
//
// Capacity is checked before anything is written. Once writing starts there
// is no rollback: a failure leaves a partially written entry in the archive.
func (a *Archive) AddFile(spec AddSpec, opts *AddOptions) error {
	if err := a.check(); err != nil {
		return err
	}
	if spec.Source == "" || spec.Name == "" {
		return fmt.Errorf("%w: source %q name %q", ErrInvalidName, spec.Source, spec.Name)
	}
	// The stored name is NUL-terminated on disk.
	if strings.IndexByte(spec.Name, 0) >= 0 {
		return fmt.Errorf("%w: name %q contains NUL", ErrInvalidName, spec.Name)
	}

	offset, err := a.FreeOffset()
	if err != nil {
		return err
	}

	src, unmap, err := mmfile.Map(spec.Source)
	if err != nil {
		return fmt.Errorf("%w: unable to open %s: %w", ErrIO, spec.Source, err)
	}
	defer func() { _ = unmap() }()
	if uint64(len(src)) > math.MaxUint32 {
		return fmt.Errorf("%w: %s is %d bytes", ErrCapacity, spec.Source, len(src))
	}

	algo := opts.algorithm()
	if spec.NoCompress {
		algo = compress.None
	}
	// src is a live mapping; a concurrent truncate must not crash us.
	var stored []byte
	err = mmfile.Guard(func() (err error) {
		stored, algo, err = a.compressPayload(src, algo)
		return err
	})
	switch {
	case errors.Is(err, mmfile.ErrFault):
		return fmt.Errorf("%w: read %s: %w", ErrIO, spec.Source, err)
	case err != nil:
		return fmt.Errorf("compress %s: %w", spec.Source, err)
	}

	hlen := format.HeaderRecordSize(len(spec.Name))
	end := uint64(offset) + uint64(hlen) + uint64(len(stored))
	if end >= uint64(a.BootblockOffset()) {
		return fmt.Errorf("%w: %s needs %d bytes at 0x%x, bootblock at 0x%x",
			ErrCapacity, spec.Name, uint64(hlen)+uint64(len(stored)), offset, a.BootblockOffset())
	}

	rec := a.data[offset:end]
	clear(rec[:hlen])
	if err := format.PutHeader(rec, format.Header{
		OriginalLen:   uint32(len(src)),
		StoredLen:     uint32(len(stored)),
		PayloadOffset: hlen,
		Compression:   uint32(algo),
	}); err != nil {
		return err
	}
	format.PutName(rec, spec.Name)
	if err := mmfile.Guard(func() error {
		copy(rec[hlen:], stored)
		return nil
	}); err != nil {
		return fmt.Errorf("%w: read %s: %w", ErrIO, spec.Source, err)
	}
	format.PutU32(rec, format.ChecksumOffset, format.RecordChecksum(rec))
	a.dirty.Add(int64(offset), int64(len(rec)))

	a.logger.Debug("added entry",
		"name", spec.Name,
		"source", spec.Source,
		"offset", offset,
		"algorithm", algo.String(),
		"original_len", len(src),
		"stored_len", len(stored))
	return nil
}

// compressPayload runs src through the codec for algo. If the output is not
// smaller than src, the payload is stored uncompressed instead; the returned
// algorithm is the one actually used.
func (a *Archive) compressPayload(src []byte, algo compress.Algorithm) ([]byte, compress.Algorithm, error) {
	if algo == compress.None {
		return src, compress.None, nil
	}
	codec, err := a.registry.Lookup(algo)
	if err != nil {
		return nil, algo, err
	}
	out, err := codec.Compress(src)
	switch {
	case errors.Is(err, compress.ErrIncompressible):
		return src, compress.None, nil
	case err != nil:
		return nil, algo, err
	case len(out) >= len(src):
		a.logger.Debug("compression did not help, storing",
			"algorithm", algo.String(),
			"original_len", len(src),
			"compressed_len", len(out))
		return src, compress.None, nil
	}
	return out, algo, nil
}
