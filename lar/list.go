package lar

import (
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/larkit/compress"
)

// EntryInfo describes one entry for listings.
type EntryInfo struct {
	Name          string             `json:"name"`
	HeaderOffset  uint32             `json:"header_offset"`
	PayloadOffset uint32             `json:"payload_offset"`
	OriginalLen   uint32             `json:"original_len"`
	StoredLen     uint32             `json:"stored_len"`
	Algorithm     compress.Algorithm `json:"-"`
	AlgorithmName string             `json:"algorithm"`
	Checksum      uint32             `json:"checksum"`
	Bootblock     bool               `json:"bootblock,omitempty"`
}

// Compressed reports whether the payload is stored compressed.
func (e EntryInfo) Compressed() bool { return e.Algorithm != compress.None }

// String formats the entry the way `larctl list` prints it.
func (e EntryInfo) String() string {
	if !e.Compressed() {
		return fmt.Sprintf("%s (%d bytes @0x%x)", e.Name, e.StoredLen, e.PayloadOffset)
	}
	return fmt.Sprintf("%s (%d bytes, %s compressed to %d bytes @0x%x)",
		e.Name, e.OriginalLen, e.AlgorithmName, e.StoredLen, e.PayloadOffset)
}

// Info summarizes e.
func (e Entry) Info() EntryInfo {
	algo := compress.Algorithm(e.Header.Compression)
	return EntryInfo{
		Name:          DisplayName(e.Name),
		HeaderOffset:  e.Offset,
		PayloadOffset: e.PayloadOffset(),
		OriginalLen:   e.Header.OriginalLen,
		StoredLen:     e.Header.StoredLen,
		Algorithm:     algo,
		AlgorithmName: algo.String(),
		Checksum:      e.Header.Checksum,
		Bootblock:     e.Bootblock,
	}
}

// DisplayName renders a stored name for humans. Names are raw bytes on
// disk; anything that is not valid UTF-8 is decoded as ISO-8859-1.
func DisplayName(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(s)
}

// Walk calls fn for every entry matching filter, in archive order, followed
// by the bootblock if it matches. Returning an error from fn stops the walk.
func (a *Archive) Walk(filter Filter, fn func(Entry) error) error {
	it, err := a.Entries()
	if err != nil {
		return err
	}
	for {
		e, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if !filter.Match(string(e.Name)) {
			continue
		}
		if err := fn(e); err != nil {
			return err
		}
	}

	bb := a.bootblockEntry()
	if !filter.Match(string(bb.Name)) {
		return nil
	}
	return fn(bb)
}

// List returns every entry matching filter, bootblock last. Names in the
// filter that do not exist are ignored.
func (a *Archive) List(filter Filter) ([]EntryInfo, error) {
	var out []EntryInfo
	err := a.Walk(filter, func(e Entry) error {
		out = append(out, e.Info())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
