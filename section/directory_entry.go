package section

import (
	"encoding/binary"
	"fmt"

	"github.com/ftirkit/opus/errs"
)

// DirectoryEntry is one 12-byte slot of the directory table.
//
// Layout (little-endian):
//
//	Bytes  | Field     | Type  | Description
//	-------|-----------|-------|----------------------------------
//	0-3    | Type      | int32 | packed block type code
//	4-7    | SizeWords | int32 | block size in 32-bit words
//	8-11   | Start     | int32 | byte offset of the block
//
// A slot whose Start is zero or negative terminates the directory scan;
// the remaining reserved slots are unwritten capacity.
type DirectoryEntry struct {
	Type      BlockType // bytes 0-3
	SizeWords int32     // bytes 4-7
	Start     int32     // bytes 8-11
}

// Parse decodes one directory slot from the start of data.
func (e *DirectoryEntry) Parse(data []byte) error {
	if len(data) < DirectoryEntrySize {
		return fmt.Errorf("%w: directory slot needs %d bytes, have %d",
			errs.ErrTruncatedRead, DirectoryEntrySize, len(data))
	}

	e.Type = BlockType(binary.LittleEndian.Uint32(data))
	e.SizeWords = int32(binary.LittleEndian.Uint32(data[4:]))
	e.Start = int32(binary.LittleEndian.Uint32(data[8:]))

	return nil
}

// Bytes serializes the slot.
func (e *DirectoryEntry) Bytes() []byte {
	buf := make([]byte, 0, DirectoryEntrySize)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Type))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(e.SizeWords))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(e.Start))

	return buf
}

// Length returns the block length in bytes.
func (e *DirectoryEntry) Length() int {
	return int(e.SizeWords) * 4
}

// End returns the byte offset one past the block.
func (e *DirectoryEntry) End() int {
	return int(e.Start) + e.Length()
}

// Validate checks the slot range against the file size. A zero length or a
// range extending past the end of the file fails with an error wrapping
// errs.ErrInvalidDirectoryEntry; such slots are skipped by the directory
// walk, never fatal to the parse.
func (e *DirectoryEntry) Validate(fileSize int) error {
	if e.Length() <= 0 {
		return fmt.Errorf("%w: %s at offset %d has zero length",
			errs.ErrInvalidDirectoryEntry, e.Type, e.Start)
	}
	if int(e.Start) < HeaderSize {
		return fmt.Errorf("%w: %s starts at %d inside the file header",
			errs.ErrInvalidDirectoryEntry, e.Type, e.Start)
	}
	if e.End() > fileSize {
		return fmt.Errorf("%w: %s spans [%d, %d) beyond file size %d",
			errs.ErrInvalidDirectoryEntry, e.Type, e.Start, e.End(), fileSize)
	}

	return nil
}

// ParseDirectoryEntry decodes and returns one directory slot.
func ParseDirectoryEntry(data []byte) (DirectoryEntry, error) {
	var e DirectoryEntry
	if err := e.Parse(data); err != nil {
		return DirectoryEntry{}, err
	}

	return e, nil
}
