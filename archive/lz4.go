package archive

import (
	"bytes"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4ReaderPool pools frame readers for reuse via Reset.
var lz4ReaderPool = sync.Pool{
	New: func() any {
		return lz4.NewReader(nil)
	},
}

// LZ4Codec inflates lz4 frame archives.
type LZ4Codec struct{}

var _ Decompressor = LZ4Codec{}

// NewLZ4Codec creates an lz4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Decompress inflates an lz4 frame stream.
func (LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr, _ := lz4ReaderPool.Get().(*lz4.Reader)
	defer lz4ReaderPool.Put(zr)

	zr.Reset(bytes.NewReader(data))

	return readCapped(zr)
}
