package archive

// ZstdCodec inflates Zstandard archives. The implementation is selected at
// build time: cgo builds bind libzstd through valyala/gozstd, pure Go
// builds use klauspost/compress/zstd.
type ZstdCodec struct{}

var _ Decompressor = ZstdCodec{}

// NewZstdCodec creates a zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
