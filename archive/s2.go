package archive

import (
	"bytes"
	"sync"

	"github.com/klauspost/compress/s2"
)

// s2ReaderPool pools stream readers for reuse via Reset.
var s2ReaderPool = sync.Pool{
	New: func() any {
		return s2.NewReader(nil)
	},
}

// S2Codec inflates s2 framed streams. The reader also accepts plain
// snappy frames, which share the stream identifier.
type S2Codec struct{}

var _ Decompressor = S2Codec{}

// NewS2Codec creates an s2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Decompress inflates an s2 or snappy framed stream.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr, _ := s2ReaderPool.Get().(*s2.Reader)
	defer s2ReaderPool.Put(zr)

	zr.Reset(bytes.NewReader(data))

	return readCapped(zr)
}
