package param

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/ftirkit/opus/format"
	"github.com/ftirkit/opus/section"
)

// Entry is one decoded parameter: a three-letter key and a typed value.
//
// Wire layout of an entry:
//
//	Bytes  | Field   | Type  | Description
//	-------|---------|-------|------------------------------------
//	0-2    | Key     | bytes | three-letter key, e.g. "NPT"
//	3      | -       | byte  | padding
//	4-5    | Tag     | int16 | value type tag
//	6-7    | Words   | int16 | payload length in 16-bit words
//	8-     | payload |       | value, Words*2 bytes
//
// Tag 0 is an int32, tag 1 a float64, tags 2 and 3 latin-1 strings. Any
// other tag is preserved as an opaque payload rather than dropped, so the
// presence of unknown parameters survives decoding.
type Entry struct {
	Key  string // upper-cased
	Kind format.ValueKind
	Tag  int16 // wire tag as stored

	Int   int32
	Float float64
	Str   string
	Raw   []byte // opaque payload
}

// Value returns the decoded value as int32, float64, string or []byte
// depending on the entry kind.
func (e Entry) Value() any {
	switch e.Kind {
	case format.ValueInt32:
		return e.Int
	case format.ValueFloat64:
		return e.Float
	case format.ValueString, format.ValueEnum:
		return e.Str
	default:
		return e.Raw
	}
}

// Numeric returns the value widened to float64 and whether the entry is
// numeric.
func (e Entry) Numeric() (float64, bool) {
	switch e.Kind {
	case format.ValueInt32:
		return float64(e.Int), true
	case format.ValueFloat64:
		return e.Float, true
	default:
		return 0, false
	}
}

// String returns "KEY = value" for diagnostics and examples.
func (e Entry) String() string {
	switch e.Kind {
	case format.ValueInt32:
		return e.Key + " = " + strconv.FormatInt(int64(e.Int), 10)
	case format.ValueFloat64:
		return e.Key + " = " + strconv.FormatFloat(e.Float, 'g', -1, 64)
	case format.ValueString, format.ValueEnum:
		return e.Key + " = " + e.Str
	default:
		return e.Key + " = " + fmt.Sprintf("opaque tag %d, %d bytes", e.Tag, len(e.Raw))
	}
}

// Bytes serializes the entry in wire layout. String payloads gain a NUL
// terminator and are padded to a 16-bit boundary.
func (e Entry) Bytes() []byte {
	var payload []byte
	tag := e.Tag

	switch e.Kind {
	case format.ValueInt32:
		tag = 0
		payload = binary.LittleEndian.AppendUint32(nil, uint32(e.Int))
	case format.ValueFloat64:
		tag = 1
		payload = binary.LittleEndian.AppendUint64(nil, uint64(math.Float64bits(e.Float)))
	case format.ValueString, format.ValueEnum:
		if tag < 2 {
			tag = 2
		}
		payload = append([]byte(e.Str), 0)
	default:
		payload = append([]byte(nil), e.Raw...)
	}

	if len(payload)%2 != 0 {
		payload = append(payload, 0)
	}

	key := e.Key
	if len(key) > section.ParamKeySize {
		key = key[:section.ParamKeySize]
	}

	buf := make([]byte, 0, section.ParamHeaderSize+len(payload))
	buf = append(buf, key...)
	for len(buf) < section.ParamKeySize+1 {
		buf = append(buf, 0)
	}
	buf = binary.LittleEndian.AppendUint16(buf, uint16(tag))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(len(payload)/2))

	return append(buf, payload...)
}
