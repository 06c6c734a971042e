// Package archive transparently inflates compressed OPUS files.
//
// Measurement PCs archive spectra folders before they are copied off the
// instrument, so files arrive wrapped in whatever the site's tooling
// produces. This package sniffs the container from the leading signature
// bytes and inflates the buffer fully into memory; buffers without a
// recognized signature pass through untouched, leaving the OPUS magic
// check to decide what they are.
//
// # Supported containers
//
//   - gzip (signature 1f 8b), via klauspost/compress/gzip
//   - zstd (28 b5 2f fd), via libzstd under cgo and
//     klauspost/compress/zstd otherwise
//   - lz4 frames (04 22 4d 18), via pierrec/lz4
//   - s2 and snappy framed streams (ff 06 00 00 "S2sTwO" or "sNaPpY"),
//     via klauspost/compress/s2
//
// # Usage
//
// The common entry point sniffs and inflates in one step:
//
//	raw, format, err := archive.Decompress(buf)
//	if err != nil {
//	    return err
//	}
//	if format != archive.FormatNone {
//	    log.Printf("inflated %s archive", format)
//	}
//	file, err := block.Parse(raw)
//
// Individual codecs are available through Detect and For when the caller
// wants to handle formats differently.
//
// # Safety
//
// A hostile or damaged archive can declare an absurd decompressed size.
// Every codec streams through a hard cap (256 MiB) and fails with
// errs.ErrArchiveTooLarge rather than exhausting memory; a capped result
// is never silently truncated.
//
// All codecs are stateless values that pool their internal reader state,
// safe for concurrent use.
package archive
