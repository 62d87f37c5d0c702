package buf

import "math"

// AddU32 returns a+b and whether the sum fits in a uint32. Archive offsets
// and lengths are uint32 on disk, so this is the overflow check for any
// header-derived end position.
func AddU32(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

// Slice returns b[off:off+n] when that span lies inside b.
func Slice(b []byte, off, n uint32) ([]byte, bool) {
	end, ok := AddU32(off, n)
	if !ok || uint64(end) > uint64(len(b)) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is in bounds.
func Has(b []byte, off, n uint32) bool {
	_, ok := Slice(b, off, n)
	return ok
}
