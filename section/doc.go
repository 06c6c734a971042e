// Package section defines the low-level binary structures and constants of
// the OPUS file format.
//
// This package provides the types that define the physical layout of an
// OPUS file: the fixed-size file header, the directory table slots, the
// packed block type code, and the sub-header of native data-series blocks.
// Each structure offers a symmetric Parse/Bytes pair so decoders and test
// fixtures share one byte-level representation.
//
// # File Structure
//
// An OPUS file is a flat container of blocks located through a directory
// table:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ FileHeader (24 bytes, fixed)                            │
//	│  - Magic (4 bytes): 0x0A 0x0A 0xFE 0xFE                 │
//	│  - Version (8 bytes, float64)                           │
//	│  - DirectoryStart, DirectoryCapacity, BlockCount        │
//	├─────────────────────────────────────────────────────────┤
//	│ Blocks (variable, in any order)                         │
//	│  - parameter blocks: scanned key/tag/length entries     │
//	│  - data blocks: packed sample arrays                    │
//	│  - data-series blocks: SeriesHeader + store table +     │
//	│    planes of samples + per-plane info records           │
//	│  - file log: NUL-separated strings                      │
//	│  - report blocks: header triple + mini parameter blocks │
//	├─────────────────────────────────────────────────────────┤
//	│ Directory (DirectoryCapacity × 12 bytes)                │
//	│  - one DirectoryEntry per block: type, size, start      │
//	│  - a slot with start <= 0 terminates the table          │
//	└─────────────────────────────────────────────────────────┘
//
// The directory may physically precede some of the blocks it points at;
// only DirectoryStart fixes its location.
//
// # Block Type Code
//
// Every directory slot carries a packed 32-bit type code with six fields:
//
//	Bits   | Field      | Values
//	-------|------------|--------------------------------------------------
//	0-1    | DataForm   | real, imaginary, amplitude
//	2-3    | Channel    | sample, reference, ratioed
//	4-9    | ParamKind  | data status, instrument, acquisition, FT, ...
//	10-16  | DataKind   | spectrum, interferogram, absorbance, ... ; the
//	       |            | field folds a ×32 multiplier for extra channels
//	17-18  | Derivative | first, second, higher
//	19-21  | Extension  | parameters, data series, report, compact, log
//
// BlockType decodes the fields once into format package enums and derives
// the block's category (IsParameter, IsData, IsDataSeries, IsFileLog,
// IsReport, ...) and its shorthand data key ("sm", "igrf", "a", ...).
//
// The format has no published specification; these layouts were recovered
// from instrument output. Unknown codes must stay representable, so
// BlockType keeps the raw word and every classification is a predicate
// rather than an enum of known categories.
//
// All multi-byte values are little-endian. This package performs no I/O
// and no allocation beyond returned byte slices; the block and param
// packages build the actual decoders on top of it.
package section
