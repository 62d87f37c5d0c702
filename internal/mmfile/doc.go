// Package mmfile provides platform-specific helpers for memory-mapping the
// source files packed into an archive.
//
// A mapping stays valid only while the file keeps its length. Reads that
// may race with a truncation should run inside Guard.
package mmfile
