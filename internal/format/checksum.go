package format

import "github.com/joshuapare/larkit/internal/buf"

// checksumWord is the word index of the checksum field within a record.
const checksumWord = ChecksumOffset / 4

// RecordChecksum returns the 32-bit sum of the big-endian words of an entry
// record (header followed by stored payload). The checksum field itself
// counts as zero, so the same function produces the value to store and the
// value to verify against. A trailing partial word is zero-padded.
func RecordChecksum(record []byte) uint32 {
	var sum uint32
	n := len(record) / 4
	for i := 0; i < n; i++ {
		if i == checksumWord {
			continue
		}
		sum += buf.U32BE(record[i*4:])
	}
	if rem := len(record) % 4; rem != 0 {
		var tail [4]byte
		copy(tail[:], record[n*4:])
		if n != checksumWord {
			sum += buf.U32BE(tail[:])
		}
	}
	return sum
}
