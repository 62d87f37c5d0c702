package lar

import (
	"fmt"
	"io"

	"github.com/joshuapare/larkit/internal/buf"
	"github.com/joshuapare/larkit/internal/format"
)

// Entry is a zero-copy view of one entry in the mapping.
type Entry struct {
	Offset    uint32 // absolute offset of the header
	Header    format.Header
	Name      []byte // stored name, without the NUL
	Bootblock bool   // the virtual bootblock entry

	record []byte // header + payload
}

// Payload returns the stored (possibly compressed) bytes.
func (e Entry) Payload() []byte {
	return e.record[e.Header.PayloadOffset : e.Header.PayloadOffset+e.Header.StoredLen]
}

// Record returns the header and payload as written.
func (e Entry) Record() []byte { return e.record }

// PayloadOffset returns the absolute offset of the payload.
func (e Entry) PayloadOffset() uint32 { return e.Offset + e.Header.PayloadOffset }

// EntryIterator walks committed entries from offset 0 towards the
// bootblock. It never visits the bootblock itself.
type EntryIterator struct {
	a     *Archive
	next  uint32 // absolute offset of the next header to try
	limit uint32 // bootblock offset
	done  bool
}

// Entries returns an iterator positioned at offset 0.
func (a *Archive) Entries() (*EntryIterator, error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	return &EntryIterator{a: a, limit: a.BootblockOffset()}, nil
}

// Next returns the next entry or io.EOF. Bytes without the magic at a header
// position end the walk; they are the start of free space.
func (it *EntryIterator) Next() (Entry, error) {
	if it.done {
		return Entry{}, io.EOF
	}
	if it.next >= it.limit {
		it.done = true
		return Entry{}, io.EOF
	}

	data := it.a.data
	if !format.HasMagic(data[it.next:it.limit]) {
		it.done = true
		return Entry{}, io.EOF
	}

	hdr, err := format.ParseHeader(data[it.next:it.limit])
	if err != nil {
		it.done = true
		return Entry{}, fmt.Errorf("entry at 0x%x: %w", it.next, err)
	}
	if err := hdr.Validate(it.limit - it.next); err != nil {
		it.done = true
		return Entry{}, fmt.Errorf("entry at 0x%x: %w", it.next, err)
	}

	rec, ok := buf.Slice(data, it.next, hdr.PayloadOffset+hdr.StoredLen)
	if !ok {
		it.done = true
		return Entry{}, fmt.Errorf("entry at 0x%x: %w", it.next, ErrCorrupt)
	}
	e := Entry{
		Offset: it.next,
		Header: hdr,
		Name:   format.ReadName(rec, hdr.PayloadOffset),
		record: rec,
	}

	next := uint64(it.next) + uint64(format.NextEntryOffset(hdr))
	if next >= uint64(it.limit) {
		it.next = it.limit
	} else {
		it.next = uint32(next)
	}
	return e, nil
}

// Offset returns where the iterator will look for the next header. Once
// Next has returned io.EOF it is the first free offset, or the bootblock
// offset if there is none.
func (it *EntryIterator) Offset() uint32 { return it.next }

// FreeOffset returns the offset of the first free slot. It fails with
// ErrArchiveFull when entries reach the bootblock.
func (a *Archive) FreeOffset() (uint32, error) {
	it, err := a.Entries()
	if err != nil {
		return 0, err
	}
	for {
		if _, err := it.Next(); err == io.EOF {
			break
		} else if err != nil {
			return 0, err
		}
	}
	if it.Offset() >= it.limit {
		return 0, ErrArchiveFull
	}
	return it.Offset(), nil
}
