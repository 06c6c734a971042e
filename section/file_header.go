package section

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ftirkit/opus/errs"
)

// FileHeader is the fixed-size header at the start of every OPUS file.
//
// Layout (little-endian):
//
//	Bytes  | Field             | Type    | Description
//	-------|-------------------|---------|----------------------------------
//	0-3    | Magic             | [4]byte | signature 0x0A 0x0A 0xFE 0xFE
//	4-11   | Version           | float64 | program version as a date number
//	12-15  | DirectoryStart    | int32   | byte offset of the directory
//	16-19  | DirectoryCapacity | int32   | directory slots reserved
//	20-23  | BlockCount        | int32   | blocks actually present
type FileHeader struct {
	Version           float64 // bytes 4-11
	DirectoryStart    int32   // bytes 12-15
	DirectoryCapacity int32   // bytes 16-19
	BlockCount        int32   // bytes 20-23
}

// NewFileHeader creates a header with the given directory geometry, for
// building synthetic files in tests and fixtures.
func NewFileHeader(directoryStart, capacity, count int32) *FileHeader {
	return &FileHeader{
		Version:           520.5, // typical modern OPUS software version
		DirectoryStart:    directoryStart,
		DirectoryCapacity: capacity,
		BlockCount:        count,
	}
}

// Parse decodes the header from the start of data.
//
// Returns an error wrapping errs.ErrHeaderTruncated when data is shorter
// than HeaderSize, or errs.ErrInvalidMagicNumber when the signature is
// absent. Both are fatal to a parse: nothing before the directory can be
// trusted without them.
func (h *FileHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes, header needs %d", errs.ErrHeaderTruncated, len(data), HeaderSize)
	}
	if !bytes.Equal(data[:MagicSize], Magic) {
		return fmt.Errorf("%w: % x", errs.ErrInvalidMagicNumber, data[:MagicSize])
	}

	h.Version = math.Float64frombits(binary.LittleEndian.Uint64(data[VersionOffset:]))
	h.DirectoryStart = int32(binary.LittleEndian.Uint32(data[DirectoryStartOffset:]))
	h.DirectoryCapacity = int32(binary.LittleEndian.Uint32(data[DirectoryCapacityOffset:]))
	h.BlockCount = int32(binary.LittleEndian.Uint32(data[BlockCountOffset:]))

	return nil
}

// Bytes serializes the header, magic included.
func (h *FileHeader) Bytes() []byte {
	buf := make([]byte, 0, HeaderSize)
	buf = append(buf, Magic...)
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(h.Version))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.DirectoryStart))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.DirectoryCapacity))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.BlockCount))

	return buf
}

// ParseFileHeader decodes and returns the header from the start of data.
func ParseFileHeader(data []byte) (FileHeader, error) {
	var h FileHeader
	if err := h.Parse(data); err != nil {
		return FileHeader{}, err
	}

	return h, nil
}

// IsOpusData reports whether data begins with the OPUS magic signature.
// It reads only the first four bytes and never fails.
func IsOpusData(data []byte) bool {
	return len(data) >= MagicSize && bytes.Equal(data[:MagicSize], Magic)
}
