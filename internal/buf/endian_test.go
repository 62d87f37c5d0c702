package buf

import "testing"

func TestU32BE(t *testing.T) {
	if got := U32BE([]byte{0x12, 0x34, 0x56, 0x78}); got != 0x12345678 {
		t.Fatalf("U32BE = 0x%x, want 0x12345678", got)
	}
	if got := U32BE([]byte{0x12, 0x34}); got != 0 {
		t.Fatalf("short U32BE = 0x%x, want 0", got)
	}
}
