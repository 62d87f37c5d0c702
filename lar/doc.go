/*
Package lar reads and writes LAR archives: flat, fixed-size, memory-mapped
files holding named (optionally compressed) blobs followed by a reserved
bootblock at the tail, as used to assemble firmware images.

# Layout

Entries are packed from offset 0, each header on a 16-byte boundary. The
first position whose bytes do not start with the "LARCHIVE" magic is free
space. The bootblock lives at a fixed offset computed from the archive size
and its last 12 bytes record that size:

	0x0000  entry 0  [header | name | payload] pad to 16
	....    entry n
	....    0xFF erase pattern (free space)
	size-0x402C  bootblock header | "bootblock" | 16 KiB payload | size trailer

# Usage

	a, err := lar.Create("fw.img", 1<<20, nil)
	if err != nil {
	    return err
	}
	defer a.Close()

	if err := a.Add("stage1.bin", nil); err != nil {
	    return err
	}
	entries, err := a.List(nil)

# Safety

The mapping is the archive's canonical state. Writes are visible to other
processes mapping the same file as soon as they happen, but they are only
durable once Sync returns. Add has no rollback: a failure while
writing leaves a partially written entry behind. The package performs no
locking; callers must serialize writers to the same file.
*/
package lar
