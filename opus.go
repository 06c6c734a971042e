// Package opus reads Bruker OPUS binary files, the block-structured format
// FTIR spectrometers write for measurements.
//
// An OPUS file is a directory of typed blocks: spectra and interferograms,
// the parameter blocks describing how they were acquired, multi-plane data
// series, evaluation reports and the instrument log. This package decodes
// all of them into one File value with the numeric axes reconstructed from
// the acquisition parameters.
//
// # Core Features
//
//   - Full block directory decoding with per-block damage recovery
//   - Axis reconstruction (wavenumber, wavelength, frequency) from the
//     data-status parameters
//   - 3-D data series support, both native series blocks and repeated
//     measurements grouped across blocks
//   - Label-resolved metadata ("SNM" to "Sample Name") with a replaceable
//     dictionary
//   - Evaluation report and instrument log decoding
//   - Transparent decompression of gzip, zstd, lz4 and s2 archives
//   - xxHash64 content fingerprints for deduplicating repeated dumps
//
// # Basic Usage
//
// Reading a measurement file:
//
//	import "github.com/ftirkit/opus"
//
//	file, err := opus.ReadFile("sample.0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Absorbance spectrum with its wavenumber axis
//	if ab, ok := file.Absorbance(); ok {
//	    x := ab.X()
//	    for i, y := range ab.Samples {
//	        fmt.Printf("%.1f cm-1: %.4f\n", x[i], y)
//	    }
//	}
//
//	// Label-resolved acquisition metadata
//	fmt.Println(file.Metadata.Labeled()["Sample Name"])
//
// Sweeping a directory of measurements:
//
//	files, err := opus.ReadDir("/data/run-2021-12")
//	for _, f := range files {
//	    fmt.Println(f.DataKeys(), f.Fingerprint)
//	}
//
// Damaged files parse as far as possible; recovered conditions are listed
// in File.Diagnostics and counted in File.Skipped rather than failing the
// read. Only a missing magic number or truncated header is fatal.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the block
// package, simplifying the most common use cases. For advanced usage and
// fine-grained control, use the block package directly: its Assembler
// exposes the parse pipeline stage by stage, and the section, param and
// format packages give access to the raw wire structures.
package opus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/ftirkit/opus/archive"
	"github.com/ftirkit/opus/block"
	"github.com/ftirkit/opus/errs"
	"github.com/ftirkit/opus/internal/hash"
	"github.com/ftirkit/opus/internal/pool"
	"github.com/ftirkit/opus/label"
)

// Option configures parsing. This is a type alias for the block package's
// assembler option, so options from both packages mix freely.
type Option = block.AssemblerOption

// WithLabels sets the dictionary used to resolve parameter keys to
// human-readable labels.
//
// The default dictionary covers the standard acquisition, optics and
// instrument parameters. Supply a custom dictionary to add site-specific
// keys or translations:
//
//	dict := label.New(map[string]string{"SNM": "Probe"})
//	file, err := opus.ReadFile("sample.0", opus.WithLabels(dict))
func WithLabels(dict *label.Dictionary) Option {
	return block.WithLabels(dict)
}

// WithReports toggles evaluation report decoding. Enabled by default;
// disable it when sweeping large archives where only the spectra matter.
func WithReports(enabled bool) Option {
	return block.WithReports(enabled)
}

// WithFileLog toggles instrument log decoding. Enabled by default.
func WithFileLog(enabled bool) Option {
	return block.WithFileLog(enabled)
}

// Parse decodes an OPUS file from an in-memory buffer.
//
// The buffer is not retained: no field of the returned File aliases data,
// so the caller may reuse the buffer immediately.
//
// Parameters:
//   - data: The raw file bytes, uncompressed
//   - opts: Optional configuration (WithLabels, WithReports, WithFileLog)
//
// Returns:
//   - *block.File: The decoded file.
//   - error: ErrInvalidMagicNumber or ErrHeaderTruncated for non-OPUS
//     input, ErrInvalidOption for a bad option. Block-level damage is
//     reported through File.Diagnostics, not through the error.
//
// Example:
//
//	file, err := opus.Parse(buf)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, key := range file.DataKeys() {
//	    d, _ := file.Data(key)
//	    fmt.Printf("%s: %d points\n", key, len(d.Samples))
//	}
func Parse(data []byte, opts ...Option) (*block.File, error) {
	return block.Parse(data, opts...)
}

// ReadFile reads, decompresses and decodes one measurement file.
//
// The file is read through a pooled buffer. If the content carries a
// recognized archive signature (gzip, zstd, lz4, s2) it is inflated first;
// plain OPUS files pass straight to the decoder.
//
// Parameters:
//   - path: The measurement file, e.g. "sample.0" or "sample.0.gz"
//   - opts: Optional configuration (see Parse)
//
// Returns:
//   - *block.File: The decoded file.
//   - error: The open or read failure, ErrArchiveTooLarge for an archive
//     expanding past the safety cap, or ErrNotOpusFile when the content is
//     neither an OPUS buffer nor an archive of one.
//
// Example:
//
//	file, err := opus.ReadFile("run/absorbance.0.zst")
//	if errors.Is(err, errs.ErrNotOpusFile) {
//	    // some other instrument's file, skip it
//	}
func ReadFile(path string, opts ...Option) (*block.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open measurement file: %w", err)
	}
	defer f.Close()

	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)

	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	raw, _, err := archive.Decompress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	file, err := block.Parse(raw, opts...)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidMagicNumber) || errors.Is(err, errs.ErrHeaderTruncated) {
			return nil, fmt.Errorf("%s: %w: %w", path, errs.ErrNotOpusFile, err)
		}

		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return file, nil
}

// Fingerprint computes the xxHash64 digest of a raw file buffer.
//
// Instruments rewrite measurement files in place and batch exports often
// duplicate them; the fingerprint identifies repeated content without
// parsing. The same digest is computed into File.Fingerprint during
// parsing, so an index built from raw bytes matches one built from decoded
// files.
//
// The hash guarantees:
//   - Deterministic: same bytes always produce the same digest
//   - Collision-resistant: ~1 in 2^64 for distinct inputs
//   - Fast: a few GB/s on modern CPUs
//
// Example:
//
//	seen := make(map[uint64]bool)
//	for _, path := range paths {
//	    raw, _ := os.ReadFile(path)
//	    if seen[opus.Fingerprint(raw)] {
//	        continue // duplicate dump
//	    }
//	    seen[opus.Fingerprint(raw)] = true
//	}
func Fingerprint(data []byte) uint64 {
	return hash.Sum(data)
}

// FindFiles walks a directory tree and returns the measurement files in
// it, sorted by path.
//
// OPUS software names files with numeric extensions, one counter per
// sample: "probe.0", "probe.1", "probe.2". Anything with a purely numeric
// extension is collected; content is not inspected.
//
// Example:
//
//	paths, err := opus.FindFiles("/data/run-2021-12")
//	// ["/data/run-2021-12/a/probe.0", "/data/run-2021-12/a/probe.1", ...]
func FindFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isOpusName(d.Name()) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	slices.Sort(paths)

	return paths, nil
}

// isOpusName reports whether name carries the instrument's numeric
// extension convention.
func isOpusName(name string) bool {
	ext := filepath.Ext(name)
	if len(ext) < 2 {
		return false
	}
	for _, r := range ext[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// ReadDir finds and decodes every measurement file under root.
//
// Files that fail to read or decode are skipped; their errors are joined
// into the returned error while the successfully decoded files are still
// returned. A sweep over a directory with one corrupt file yields the
// other files plus a non-nil error describing the corrupt one.
//
// Parameters:
//   - root: The directory tree to sweep
//   - opts: Optional configuration applied to every file (see Parse)
//
// Example:
//
//	files, err := opus.ReadDir("/data/run-2021-12")
//	if err != nil {
//	    log.Printf("some files skipped: %v", err)
//	}
//	for _, f := range files {
//	    // ...
//	}
func ReadDir(root string, opts ...Option) ([]*block.File, error) {
	paths, err := FindFiles(root)
	if err != nil {
		return nil, err
	}

	files := make([]*block.File, 0, len(paths))
	var failures []error
	for _, path := range paths {
		file, err := ReadFile(path, opts...)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		files = append(files, file)
	}

	return files, errors.Join(failures...)
}
