package archive

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ftirkit/opus/errs"
)

// Format identifies the archive container a buffer is wrapped in.
type Format uint8

const (
	// FormatNone marks a buffer with no recognized archive signature; it is
	// passed through untouched.
	FormatNone Format = iota
	FormatGzip
	FormatZstd
	FormatLZ4
	FormatS2
)

// String returns the conventional short name of the format.
func (f Format) String() string {
	switch f {
	case FormatGzip:
		return "gzip"
	case FormatZstd:
		return "zstd"
	case FormatLZ4:
		return "lz4"
	case FormatS2:
		return "s2"
	default:
		return "none"
	}
}

// Archive container signatures, in sniffing order. s2 and snappy streams
// share the identifier chunk framing with different body text; the reader
// accepts both.
var (
	magicGzip    = []byte{0x1F, 0x8B}
	magicZstd    = []byte{0x28, 0xB5, 0x2F, 0xFD}
	magicLZ4     = []byte{0x04, 0x22, 0x4D, 0x18}
	magicS2Chunk = []byte{0xFF, 0x06, 0x00, 0x00}
	magicS2Body  = []byte("S2sTwO")
	magicSnappy  = []byte("sNaPpY")
)

// maxDecodedSize caps the decompressed size of a single archive. Spectra
// run to a few megabytes; anything expanding past this is a damaged or
// hostile input, not a measurement.
var maxDecodedSize = 256 << 20

// Decompressor inflates one archived buffer fully into memory.
//
// Implementations must be safe for concurrent use; they pool their
// internal reader state.
type Decompressor interface {
	// Decompress inflates data and returns a newly allocated result. The
	// input is not modified. Inputs expanding beyond the package size cap
	// fail with an error wrapping errs.ErrArchiveTooLarge.
	Decompress(data []byte) ([]byte, error)
}

// builtin holds one shared codec per format; all are stateless values
// whose pooled internals make them safe to share.
var builtin = map[Format]Decompressor{
	FormatGzip: NewGzipCodec(),
	FormatZstd: NewZstdCodec(),
	FormatLZ4:  NewLZ4Codec(),
	FormatS2:   NewS2Codec(),
}

// For returns the built-in codec for the given format.
func For(f Format) (Decompressor, bool) {
	c, ok := builtin[f]
	return c, ok
}

// Detect sniffs the archive container from the leading signature bytes.
// Buffers without a recognized signature, OPUS files included, report
// FormatNone.
func Detect(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, magicGzip):
		return FormatGzip
	case bytes.HasPrefix(data, magicZstd):
		return FormatZstd
	case bytes.HasPrefix(data, magicLZ4):
		return FormatLZ4
	case bytes.HasPrefix(data, magicS2Chunk) &&
		(bytes.HasPrefix(data[4:], magicS2Body) || bytes.HasPrefix(data[4:], magicSnappy)):
		return FormatS2
	default:
		return FormatNone
	}
}

// Decompress sniffs data and inflates it with the matching codec. Buffers
// without an archive signature are returned unchanged, so callers can feed
// any candidate file through and let the OPUS magic check decide after.
func Decompress(data []byte) ([]byte, Format, error) {
	f := Detect(data)
	if f == FormatNone {
		return data, FormatNone, nil
	}

	c, ok := For(f)
	if !ok {
		return nil, f, fmt.Errorf("no codec for %s", f)
	}

	out, err := c.Decompress(data)
	if err != nil {
		return nil, f, fmt.Errorf("%s: %w", f, err)
	}

	return out, f, nil
}

// readCapped drains r up to the package size cap. One byte past the cap
// fails the whole read; a truncated result is never returned.
func readCapped(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, int64(maxDecodedSize)+1))
	if err != nil {
		return nil, err
	}
	if n > int64(maxDecodedSize) {
		return nil, fmt.Errorf("%w: decompressed size exceeds %d bytes",
			errs.ErrArchiveTooLarge, maxDecodedSize)
	}

	return buf.Bytes(), nil
}
