// Package dirty tracks which byte ranges of an archive mapping have been
// written since the last flush.
//
// Ranges are page-aligned, sorted and merged when flushed, so a flush after
// several adds touches each modified page once.
package dirty

import (
	"os"
	"sort"
)

// defaultRangeCapacity is the pre-allocated capacity for dirty ranges.
const defaultRangeCapacity = 16

// Range is a dirty byte range in absolute file offsets.
type Range struct {
	Off int64
	Len int64
}

// End returns the first offset past r.
func (r Range) End() int64 { return r.Off + r.Len }

// Tracker accumulates dirty ranges over a mapping of a fixed size.
//
// NOT thread-safe.
type Tracker struct {
	ranges   []Range
	size     int64
	pageSize int64
}

// NewTracker returns a tracker for a mapping of size bytes.
func NewTracker(size int64) *Tracker {
	return &Tracker{
		ranges:   make([]Range, 0, defaultRangeCapacity),
		size:     size,
		pageSize: int64(os.Getpagesize()),
	}
}

// Add records length bytes at off as dirty. Empty ranges are ignored.
func (t *Tracker) Add(off, length int64) {
	if length <= 0 {
		return
	}
	t.ranges = append(t.ranges, Range{Off: off, Len: length})
}

// Empty reports whether nothing has been written since the last flush.
func (t *Tracker) Empty() bool { return len(t.ranges) == 0 }

// Reset drops all tracked ranges.
func (t *Tracker) Reset() { t.ranges = t.ranges[:0] }

// Ranges returns the page-aligned, sorted and merged dirty ranges, clamped
// to the mapping size.
func (t *Tracker) Ranges() []Range {
	return t.coalesce()
}

// Flush calls fn for every merged range in offset order and resets the
// tracker once all of them succeed. On error the ranges are kept so a
// later flush can retry.
func (t *Tracker) Flush(fn func(Range) error) error {
	for _, r := range t.coalesce() {
		if err := fn(r); err != nil {
			return err
		}
	}
	t.Reset()
	return nil
}

func (t *Tracker) coalesce() []Range {
	if len(t.ranges) == 0 {
		return nil
	}

	aligned := make([]Range, 0, len(t.ranges))
	for _, r := range t.ranges {
		start := (r.Off / t.pageSize) * t.pageSize
		end := r.End()
		if end%t.pageSize != 0 {
			end = (end/t.pageSize + 1) * t.pageSize
		}
		if end > t.size {
			end = t.size
		}
		if start >= end {
			continue
		}
		aligned = append(aligned, Range{Off: start, Len: end - start})
	}
	if len(aligned) == 0 {
		return nil
	}

	sort.Slice(aligned, func(i, j int) bool {
		return aligned[i].Off < aligned[j].Off
	})

	merged := make([]Range, 0, len(aligned))
	current := aligned[0]
	for _, next := range aligned[1:] {
		if next.Off <= current.End() {
			if next.End() > current.End() {
				current.Len = next.End() - current.Off
			}
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}
