//go:build cgo

package archive

import (
	"bytes"
	"sync"

	"github.com/valyala/gozstd"
)

// zstdReaderPool pools libzstd stream readers for reuse via Reset.
var zstdReaderPool = sync.Pool{
	New: func() any {
		return gozstd.NewReader(nil)
	},
}

// Decompress inflates a zstd stream through libzstd.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr, _ := zstdReaderPool.Get().(*gozstd.Reader)
	defer zstdReaderPool.Put(zr)

	zr.Reset(bytes.NewReader(data), nil)

	return readCapped(zr)
}
