// Package hash provides the content fingerprint used to identify parsed
// buffers. Instruments rewrite measurement files in place; a stable
// digest lets callers deduplicate repeated dumps without re-parsing.
package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 digest of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// SumString computes the xxHash64 digest of a string without copying it.
func SumString(data string) uint64 {
	return xxhash.Sum64String(data)
}
