package format

import "testing"

func TestRoundUp16(t *testing.T) {
	cases := map[uint32]uint32{
		0:    0,
		1:    16,
		15:   16,
		16:   16,
		17:   32,
		4096: 4096,
		4097: 4112,
	}
	for in, want := range cases {
		if got := RoundUp16(in); got != want {
			t.Fatalf("RoundUp16(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestHeaderRecordSize(t *testing.T) {
	cases := []struct {
		nameLen int
		want    uint32
	}{
		{0, 32},      // 28 + 1
		{3, 32},      // 28 + 4
		{4, 48},      // 28 + 5
		{10, 48},     // "stage1.bin"
		{20, 64},     // 28 + 21
		{5000, 1056}, // truncated to MaxPathLen
	}
	for _, tc := range cases {
		if got := HeaderRecordSize(tc.nameLen); got != tc.want {
			t.Fatalf("HeaderRecordSize(%d) = %d, want %d", tc.nameLen, got, tc.want)
		}
	}
}

func TestBootblockOffset(t *testing.T) {
	const size = 1 << 20
	got := BootblockOffset(size)
	if got != size-(BootblockSize+HeaderSize+BootblockNameLen) {
		t.Fatalf("BootblockOffset = %d", got)
	}
	if got+BootblockRecordSize != size {
		t.Fatalf("bootblock record does not end at archive end")
	}
}
