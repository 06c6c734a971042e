// Package param decodes OPUS parameter blocks: sequences of three-letter
// keys with typed values that carry all file metadata, from axis bounds
// (data status blocks) to instrument settings and sample descriptions.
package param

import (
	"fmt"

	"github.com/ftirkit/opus/cursor"
	"github.com/ftirkit/opus/errs"
	"github.com/ftirkit/opus/format"
	"github.com/ftirkit/opus/section"
)

// ParseBlock decodes a parameter block from data. The scan walks entries
// by their self-declared payload lengths until the "END" terminator or the
// end of data; unknown value tags become opaque entries and never break
// the walk, since the declared length is what advances it.
//
// On a malformed entry the block decoded so far is returned together with
// an error wrapping errs.ErrInvalidParameterBlock, so callers keep the
// metadata that precedes the damage.
func ParseBlock(data []byte, typ section.BlockType) (*Block, error) {
	cur := cursor.New(data)
	block := newBlock(typ)

	for loc := 0; loc < cur.Len(); {
		if cur.Len()-loc < section.ParamHeaderSize {
			return block, fmt.Errorf("%w: %d trailing bytes without terminator",
				errs.ErrInvalidParameterBlock, cur.Len()-loc)
		}

		key, err := cur.FixedString(loc, section.ParamKeySize)
		if err != nil {
			return block, fmt.Errorf("%w: entry key at offset %d: %v",
				errs.ErrInvalidParameterBlock, loc, err)
		}
		if key == section.ParamTerminator || key == "" {
			break
		}

		entry, advance, err := parseEntry(cur, loc, key)
		if err != nil {
			return block, err
		}

		block.add(entry)
		loc += advance
	}

	return block, nil
}

// parseEntry decodes the entry starting at loc and returns it with the
// total entry width in bytes. The caller has verified the 8-byte entry
// header is in bounds.
func parseEntry(cur *cursor.Cursor, loc int, key string) (Entry, int, error) {
	tag, _ := cur.Int16(loc + 4)
	words, _ := cur.Int16(loc + 6)
	if words < 0 {
		return Entry{}, 0, fmt.Errorf("%w: parameter %q declares negative length %d",
			errs.ErrInvalidParameterBlock, key, words)
	}

	size := int(words) * 2
	payload := loc + section.ParamHeaderSize

	entry := Entry{Key: toUpperKey(key), Tag: tag}

	var err error
	switch tag {
	case 0:
		entry.Kind = format.ValueInt32
		entry.Int, err = cur.Int32(payload)
	case 1:
		entry.Kind = format.ValueFloat64
		entry.Float, err = cur.Float64(payload)
	case 2, 3:
		if tag == 2 {
			entry.Kind = format.ValueString
		} else {
			entry.Kind = format.ValueEnum
		}
		entry.Str, err = cur.FixedString(payload, size)
	default:
		entry.Kind = format.ValueOpaque
		entry.Raw, err = cur.Bytes(payload, size)
	}
	if err != nil {
		return Entry{}, 0, fmt.Errorf("%w: parameter %q payload: %v",
			errs.ErrInvalidParameterBlock, key, err)
	}

	return entry, section.ParamHeaderSize + size, nil
}

// toUpperKey upper-cases a three-letter ASCII key without allocating for
// the already-upper common case.
func toUpperKey(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] >= 'a' && key[i] <= 'z' {
			buf := []byte(key)
			for j := i; j < len(buf); j++ {
				if buf[j] >= 'a' && buf[j] <= 'z' {
					buf[j] -= 'a' - 'A'
				}
			}

			return string(buf)
		}
	}

	return key
}
