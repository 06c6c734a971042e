package section

import (
	"encoding/binary"
	"fmt"

	"github.com/ftirkit/opus/errs"
)

// SeriesHeader is the fixed sub-header at the start of a native
// data-series (3-D) block.
//
// Layout (little-endian):
//
//	Bytes  | Field      | Type  | Description
//	-------|------------|-------|------------------------------------------
//	0-3    | Version    | int32 | sub-format version (0 in known files)
//	4-7    | BlockCount | int32 | number of sub-blocks (planes)
//	8-11   | DataOffset | int32 | byte offset of the first plane, relative
//	       |            |       | to the series block start
//	12-15  | DataSize   | int32 | bytes of sample data per plane
//	16-19  | InfoSize   | int32 | bytes of per-plane info record
//	20-23  | StoreCount | int32 | store table entries that follow
//
// The store table of StoreCount × two int32 run numbers begins at byte 24;
// planes follow at DataOffset, each DataSize bytes of samples immediately
// followed by an InfoSize-byte info record.
type SeriesHeader struct {
	Version    int32 // bytes 0-3
	BlockCount int32 // bytes 4-7
	DataOffset int32 // bytes 8-11
	DataSize   int32 // bytes 12-15
	InfoSize   int32 // bytes 16-19
	StoreCount int32 // bytes 20-23
}

// StoreRange is one store table entry: the run numbers of the first and
// last plane kept, tracking spectra skipped during acquisition.
type StoreRange struct {
	First int32
	Last  int32
}

// Parse decodes the sub-header from the start of data.
func (h *SeriesHeader) Parse(data []byte) error {
	if len(data) < SeriesHeaderSize {
		return fmt.Errorf("%w: series header needs %d bytes, have %d",
			errs.ErrInvalidSeriesBlock, SeriesHeaderSize, len(data))
	}

	h.Version = int32(binary.LittleEndian.Uint32(data))
	h.BlockCount = int32(binary.LittleEndian.Uint32(data[4:]))
	h.DataOffset = int32(binary.LittleEndian.Uint32(data[8:]))
	h.DataSize = int32(binary.LittleEndian.Uint32(data[12:]))
	h.InfoSize = int32(binary.LittleEndian.Uint32(data[16:]))
	h.StoreCount = int32(binary.LittleEndian.Uint32(data[20:]))

	return nil
}

// Bytes serializes the sub-header.
func (h *SeriesHeader) Bytes() []byte {
	buf := make([]byte, 0, SeriesHeaderSize)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.Version))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.BlockCount))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.DataOffset))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.DataSize))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.InfoSize))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.StoreCount))

	return buf
}

// Validate checks the declared geometry against the series block size.
func (h *SeriesHeader) Validate(blockSize int) error {
	if h.BlockCount <= 0 {
		return fmt.Errorf("%w: block count %d", errs.ErrInvalidSeriesBlock, h.BlockCount)
	}
	if h.DataSize <= 0 || h.InfoSize < 0 {
		return fmt.Errorf("%w: plane geometry data=%d info=%d",
			errs.ErrInvalidSeriesBlock, h.DataSize, h.InfoSize)
	}
	if h.StoreCount < 0 {
		return fmt.Errorf("%w: store table length %d", errs.ErrInvalidSeriesBlock, h.StoreCount)
	}

	tableEnd := SeriesStoreTableOffset + int(h.StoreCount)*SeriesStoreEntrySize
	if tableEnd > blockSize {
		return fmt.Errorf("%w: store table ends at %d beyond block size %d",
			errs.ErrInvalidSeriesBlock, tableEnd, blockSize)
	}

	stride := int(h.DataSize) + int(h.InfoSize)
	end := int(h.DataOffset) + stride*int(h.BlockCount)
	if int(h.DataOffset) < tableEnd || end > blockSize {
		return fmt.Errorf("%w: %d planes of %d bytes from offset %d exceed block size %d",
			errs.ErrInvalidSeriesBlock, h.BlockCount, stride, h.DataOffset, blockSize)
	}

	return nil
}

// ParseSeriesHeader decodes and returns the sub-header.
func ParseSeriesHeader(data []byte) (SeriesHeader, error) {
	var h SeriesHeader
	if err := h.Parse(data); err != nil {
		return SeriesHeader{}, err
	}

	return h, nil
}
