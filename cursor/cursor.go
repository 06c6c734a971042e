// Package cursor provides bounds-checked typed reads over an immutable byte
// buffer. It is the sole access layer the decoders use to touch raw file
// bytes.
//
// A Cursor is positionless: every read takes an explicit offset and never
// consumes or mutates state, so decoders can jump arbitrarily per directory
// entries without sequential bookkeeping. The OPUS format is little-endian
// throughout; the cursor is fixed to that order.
package cursor

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ftirkit/opus/errs"
)

// Cursor reads fixed-width values from an immutable buffer at explicit
// offsets. The zero value is usable and reads from an empty buffer.
//
// Reads that would cross the end of the buffer fail with an error wrapping
// errs.ErrTruncatedRead; no partial values are returned.
type Cursor struct {
	buf []byte
}

// New creates a Cursor over data. The buffer is not copied; callers must
// not mutate it for the lifetime of the cursor.
func New(data []byte) *Cursor {
	return &Cursor{buf: data}
}

// Len returns the buffer length in bytes.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// check validates that width bytes starting at off lie inside the buffer.
func (c *Cursor) check(off, width int) error {
	if off < 0 || width < 0 || off+width > len(c.buf) || off+width < 0 {
		return fmt.Errorf("%w: %d bytes at offset %d, buffer length %d",
			errs.ErrTruncatedRead, width, off, len(c.buf))
	}

	return nil
}

// Uint16 reads a little-endian uint16 at off.
func (c *Cursor) Uint16(off int) (uint16, error) {
	if err := c.check(off, 2); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(c.buf[off:]), nil
}

// Int16 reads a little-endian int16 at off.
func (c *Cursor) Int16(off int) (int16, error) {
	v, err := c.Uint16(off)
	return int16(v), err
}

// Uint32 reads a little-endian uint32 at off.
func (c *Cursor) Uint32(off int) (uint32, error) {
	if err := c.check(off, 4); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(c.buf[off:]), nil
}

// Int32 reads a little-endian int32 at off.
func (c *Cursor) Int32(off int) (int32, error) {
	v, err := c.Uint32(off)
	return int32(v), err
}

// Float32 reads a little-endian IEEE-754 single at off.
func (c *Cursor) Float32(off int) (float32, error) {
	v, err := c.Uint32(off)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// Float64 reads a little-endian IEEE-754 double at off.
func (c *Cursor) Float64(off int) (float64, error) {
	if err := c.check(off, 8); err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(c.buf[off:])), nil
}

// Bytes returns a copy of n bytes starting at off.
func (c *Cursor) Bytes(off, n int) ([]byte, error) {
	if err := c.check(off, n); err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, c.buf[off:off+n])

	return out, nil
}

// View returns a sub-cursor over n bytes starting at off, sharing the
// underlying buffer. Offsets of the sub-cursor are relative to off.
func (c *Cursor) View(off, n int) (*Cursor, error) {
	if err := c.check(off, n); err != nil {
		return nil, err
	}

	return &Cursor{buf: c.buf[off : off+n]}, nil
}

// FixedString decodes a fixed-width byte run at off as latin-1 text,
// truncating at the first NUL and trimming trailing padding. Strings in
// OPUS files are stored with a size designation frequently larger than the
// text itself.
func (c *Cursor) FixedString(off, width int) (string, error) {
	if err := c.check(off, width); err != nil {
		return "", err
	}

	return DecodeLatin1(c.buf[off : off+width]), nil
}

// DecodeLatin1 converts a latin-1 byte run to a string, truncating at the
// first NUL and trimming trailing spaces. Latin-1 bytes map one-to-one onto
// Unicode code points, so the conversion never fails.
func DecodeLatin1(raw []byte) string {
	end := len(raw)
	for i, b := range raw {
		if b == 0 {
			end = i
			break
		}
	}
	raw = raw[:end]
	for end > 0 && raw[end-1] == ' ' {
		end--
	}
	raw = raw[:end]

	ascii := true
	for _, b := range raw {
		if b >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(raw)
	}

	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}

	return string(runes)
}
