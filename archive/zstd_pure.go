//go:build !cgo

package archive

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdReaderPool pools zstd decoders for reuse. The decoder is designed to
// operate without allocations after a warmup, so pooling eliminates the
// per-call setup cost.
var zstdReaderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			// unreachable with valid static options
			panic(fmt.Sprintf("zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// Decompress inflates a zstd stream.
func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	zr, _ := zstdReaderPool.Get().(*zstd.Decoder)
	defer zstdReaderPool.Put(zr)

	if err := zr.Reset(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	return readCapped(zr)
}
