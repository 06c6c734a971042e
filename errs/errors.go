// Package errs defines the sentinel errors shared by all opus packages.
//
// Call sites wrap these with fmt.Errorf("%w: ...") to add context such as
// offsets and block types, so callers can match the condition with errors.Is
// while still seeing the detail in the message.
package errs

import "errors"

// Fatal format errors. Parsing aborts and no file object is returned.
var (
	// ErrInvalidMagicNumber indicates the buffer does not begin with the
	// OPUS magic signature.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrHeaderTruncated indicates the buffer ends before the fixed-size
	// file header is complete.
	ErrHeaderTruncated = errors.New("file header truncated")
)

// Recoverable block-level errors. The offending block is skipped and the
// condition is recorded as a diagnostic on the returned file; parsing
// continues.
var (
	// ErrTruncatedRead indicates a fixed-width read past the end of a
	// buffer or block range.
	ErrTruncatedRead = errors.New("truncated read")

	// ErrInvalidDirectoryEntry indicates a directory slot whose range is
	// inconsistent with the file size (zero length or extent beyond EOF).
	ErrInvalidDirectoryEntry = errors.New("invalid directory entry")

	// ErrInvalidParameterBlock indicates a parameter block whose entry
	// framing cannot be scanned.
	ErrInvalidParameterBlock = errors.New("invalid parameter block")

	// ErrInvalidSeriesBlock indicates a data-series block whose sub-header
	// or sub-block layout is inconsistent with its byte range.
	ErrInvalidSeriesBlock = errors.New("invalid data series block")

	// ErrInvalidReportBlock indicates a report block whose summary or
	// subreport structure cannot be decoded.
	ErrInvalidReportBlock = errors.New("invalid report block")

	// ErrUnknownBlockType indicates a directory entry whose type code does
	// not map to any known block category. The entry is counted and skipped.
	ErrUnknownBlockType = errors.New("unknown block type")
)

// Recoverable assembly conditions.
var (
	// ErrAxisUnresolved annotates a data block for which no matching
	// data-status parameter block supplies axis bounds. The block keeps a
	// raw index axis.
	ErrAxisUnresolved = errors.New("axis parameters unresolved")

	// ErrSeriesShapeMismatch indicates data blocks of one series disagree
	// on point count or axis bounds; the 3-D grouping is abandoned and the
	// member blocks remain independent.
	ErrSeriesShapeMismatch = errors.New("series shape mismatch")
)

// Archive errors.
var (
	// ErrArchiveTooLarge indicates a compressed input whose decompressed
	// size exceeds the configured safety limit.
	ErrArchiveTooLarge = errors.New("archive too large")

	// ErrNotOpusFile indicates a file whose content is neither an OPUS
	// buffer nor a recognized compressed archive of one.
	ErrNotOpusFile = errors.New("not an OPUS file")
)

// Misuse errors.
var (
	// ErrAssemblerState indicates an assembler stage invoked out of order.
	ErrAssemblerState = errors.New("invalid assembler state")

	// ErrInvalidOption indicates an option value that cannot be applied.
	ErrInvalidOption = errors.New("invalid option")
)
