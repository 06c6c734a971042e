package section

// Sizes and offsets of the fixed-layout structures. All multi-byte fields
// in an OPUS file are little-endian.
const (
	// MagicSize is the length of the file signature.
	MagicSize = 4

	// HeaderSize is the fixed size of the file header: the magic signature
	// followed by the version, directory start, directory capacity and
	// block count fields.
	HeaderSize = 24

	// VersionOffset locates the float64 program version within the header.
	VersionOffset = 4
	// DirectoryStartOffset locates the int32 directory start pointer.
	DirectoryStartOffset = 12
	// DirectoryCapacityOffset locates the int32 directory capacity.
	DirectoryCapacityOffset = 16
	// BlockCountOffset locates the int32 block count.
	BlockCountOffset = 20

	// DirectoryEntrySize is the fixed size of one directory slot:
	// three int32 values {type code, size in 32-bit words, start}.
	DirectoryEntrySize = 12

	// ParamKeySize is the length of a parameter key.
	ParamKeySize = 3
	// ParamHeaderSize is the fixed framing before a parameter payload:
	// 3-byte key, 1 pad byte, int16 type tag, int16 size in 16-bit words.
	ParamHeaderSize = 8

	// SeriesHeaderSize is the fixed sub-header of a data-series block:
	// six int32 values {version, block count, data offset, data size,
	// info size, store table length}.
	SeriesHeaderSize = 24
	// SeriesStoreTableOffset locates the store table within a series block.
	SeriesStoreTableOffset = 24
	// SeriesStoreEntrySize is the size of one store table entry (two int32
	// run numbers).
	SeriesStoreEntrySize = 8

	// SeriesInfoSize is the size of the known per-plane info record of a
	// data-series block. Declared info sizes may exceed this; the surplus
	// is skipped.
	SeriesInfoSize = 40
)

// Bit layout of the packed 32-bit block type code.
const (
	FormMask       = 0x3  // bits 0-1: data form
	ChannelShift   = 2    // bits 2-3: channel
	ChannelMask    = 0x3
	ParamKindShift = 4 // bits 4-9: parameter kind
	ParamKindMask  = 0x3F
	DataKindShift  = 10 // bits 10-16: data kind (with channel multiplier)
	DataKindMask   = 0x7F
	DerivShift     = 17 // bits 17-18: derivative order
	DerivMask      = 0x3
	ExtShift       = 19 // bits 19-21: extension
	ExtMask        = 0x7
)

// DataKindChannelStep is the multiplier folded into the data kind field for
// multi-channel acquisitions: a raw kind of base+32*n means n extra
// channels of the base kind.
const DataKindChannelStep = 32

// ParamTerminator is the parameter key that ends a parameter block scan.
const ParamTerminator = "END"

// Magic is the OPUS file signature at offset 0.
var Magic = []byte{0x0A, 0x0A, 0xFE, 0xFE}
