package format

// RoundUp16 returns x rounded up to the next multiple of 16, computed as
// ((x-1) &^ 15) + 16. Zero stays zero.
//
// Example:
//
//	RoundUp16(1)  = 16
//	RoundUp16(16) = 16
//	RoundUp16(17) = 32
func RoundUp16(x uint32) uint32 {
	if x == 0 {
		return 0
	}
	return ((x - 1) &^ AlignmentMask) + Alignment
}

// HeaderRecordSize returns the 16-byte aligned size of a header record whose
// stored name is nameLen bytes long. Names longer than MaxPathLen-1 are
// truncated, so the record never exceeds RoundUp16(HeaderSize+MaxPathLen).
func HeaderRecordSize(nameLen int) uint32 {
	n := nameLen + 1
	if n > MaxPathLen {
		n = MaxPathLen
	}
	return RoundUp16(uint32(HeaderSize + n))
}

// BootblockOffset returns the offset of the bootblock header in an archive
// of archiveSize bytes. Callers must ensure archiveSize >= BootblockRecordSize.
func BootblockOffset(archiveSize uint32) uint32 {
	return archiveSize - BootblockRecordSize
}
