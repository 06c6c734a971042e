package archive

import (
	"bytes"
	"sync"

	"github.com/klauspost/compress/gzip"
)

// gzipReaderPool pools gzip readers for reuse; the zero-value reader is
// initialized through Reset.
var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// GzipCodec inflates gzip archives, the most common wrapper around
// instrument files copied off measurement PCs. Multi-member streams are
// read to the end.
type GzipCodec struct{}

var _ Decompressor = GzipCodec{}

// NewGzipCodec creates a gzip codec.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Decompress inflates a gzip stream.
func (GzipCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr, _ := gzipReaderPool.Get().(*gzip.Reader)
	defer gzipReaderPool.Put(zr)

	if err := zr.Reset(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	return readCapped(zr)
}
