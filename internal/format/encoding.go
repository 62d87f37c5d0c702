package format

import "encoding/binary"

// Big-endian field writer. Reads go through buf.U32BE.
//
// LAR stores every integer in network byte order so archives built on one
// machine can be read on any other.

// PutU32 writes a uint32 value to the buffer at the specified offset in big-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:off+4], v)
}
