package lar

import (
	_ "crypto/sha256" // registers digest.Canonical

	"github.com/opencontainers/go-digest"

	"github.com/joshuapare/larkit/internal/format"
)

// VerifyResult reports the integrity of one entry.
type VerifyResult struct {
	EntryInfo

	// ComputedChecksum is the word sum recomputed over the record.
	ComputedChecksum uint32 `json:"computed_checksum"`
	// ChecksumOK is true when ComputedChecksum equals the stored checksum.
	ChecksumOK bool `json:"checksum_ok"`
	// Digest is the sha256 digest of the original content, empty when it
	// could not be decoded.
	Digest digest.Digest `json:"digest,omitempty"`
	// Err holds the decode failure, if any.
	Err error `json:"-"`
}

// OK reports whether the entry passed every check.
func (r VerifyResult) OK() bool { return r.ChecksumOK && r.Err == nil }

// Verify recomputes the checksum of every entry matching filter and decodes
// its payload. Per-entry problems are reported in the results; the error is
// reserved for failures that stop the walk, such as a corrupt header.
func (a *Archive) Verify(filter Filter) ([]VerifyResult, error) {
	var out []VerifyResult
	err := a.Walk(filter, func(e Entry) error {
		sum := format.RecordChecksum(e.Record())
		r := VerifyResult{
			EntryInfo:        e.Info(),
			ComputedChecksum: sum,
			ChecksumOK:       sum == e.Header.Checksum,
		}
		content, err := a.Content(e)
		if err != nil {
			r.Err = err
		} else {
			r.Digest = digest.FromBytes(content)
		}
		if !r.OK() {
			a.logger.Warn("entry failed verification",
				"name", r.Name,
				"offset", r.HeaderOffset,
				"stored_checksum", e.Header.Checksum,
				"computed_checksum", sum,
				"error", err)
		}
		out = append(out, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
