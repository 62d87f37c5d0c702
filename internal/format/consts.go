// Package format houses the low-level encoders and decoders for the LAR
// archive format. It knows the byte layout of entry headers and the bootblock
// trailer and nothing about files, mappings, or compression, so the higher
// level packages can orchestrate the data without casting raw bytes.
package format

// Magic is the eight-byte sentinel at the start of every entry header.
// Any other byte pattern at a header position marks the start of free space.
var Magic = []byte{'L', 'A', 'R', 'C', 'H', 'I', 'V', 'E'}

// Entry header layout (all integers big-endian):
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    8    'L' 'A' 'R' 'C' 'H' 'I' 'V' 'E'
//	 0x08    4    Checksum (32-bit word sum over header + payload)
//	 0x0C    4    Original (uncompressed) length
//	 0x10    4    Stored (possibly compressed) length
//	 0x14    4    Payload offset, relative to the header start
//	 0x18    4    Compression algorithm id
//	 0x1C    n    NUL-terminated stored name, record zero-padded to 16 bytes
const (
	MagicOffset       = 0x00
	MagicSize         = 8
	ChecksumOffset    = 0x08
	OriginalLenOffset = 0x0C
	StoredLenOffset   = 0x10
	PayloadOffOffset  = 0x14
	CompressionOffset = 0x18
	NameOffset        = 0x1C

	// HeaderSize is the size of the fixed header fields, excluding the name.
	HeaderSize = 0x1C
)

const (
	// Alignment is the boundary every header record starts on.
	Alignment = 16

	// AlignmentMask is Alignment-1.
	AlignmentMask = Alignment - 1

	// MaxPathLen bounds the stored name including its terminating NUL.
	MaxPathLen = 1024

	// EraseByte is the flash-friendly fill pattern of a fresh archive.
	EraseByte = 0xFF
)

const (
	// BootblockSize is the fixed size of the bootblock payload.
	BootblockSize = 16384

	// BootblockName is the reserved name of the virtual bootblock entry.
	BootblockName = "bootblock"

	// BootblockNameLen is the space reserved for the bootblock name
	// between its header and its payload.
	BootblockNameLen = 16

	// BootblockRecordSize is the total span of the bootblock at the tail
	// of the archive: header, reserved name, payload.
	BootblockRecordSize = BootblockSize + HeaderSize + BootblockNameLen

	// BootblockTrailerSize is the length of the size trailer at the end of
	// the bootblock payload: a 4-byte size followed by 8 reserved bytes.
	BootblockTrailerSize = 12

	// bootblockClearSize is how many trailing payload bytes are zeroed
	// before the size is written. The byte preceding the trailer is
	// cleared as well.
	bootblockClearSize = BootblockTrailerSize + 1
)

// CompressionNone is the reserved algorithm id for uncompressed payloads.
const CompressionNone uint32 = 0
