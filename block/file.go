package block

import (
	"slices"
	"time"

	"github.com/ftirkit/opus/label"
	"github.com/ftirkit/opus/param"
	"github.com/ftirkit/opus/section"
)

// File is the decoded form of one OPUS file. It owns all of its data; no
// field aliases the parsed buffer, so the buffer may be released once
// parsing returns.
type File struct {
	Header    section.FileHeader
	Directory []section.DirectoryEntry

	Metadata Metadata

	// Spectra holds the 1-D spectra keyed by data kind ("sm", "rf", "a",
	// "igsm", ...). Series members are excluded; they live in Series.
	Spectra map[string]*Data

	// Series holds the 3-D spectra under the same key vocabulary.
	Series map[string]*Series

	// Log is the instrument history, one entry per logged line.
	Log []string

	Reports []*Report

	// Diagnostics records every recovered condition in parse order.
	// Skipped counts the blocks omitted from the output entirely.
	Diagnostics []Diagnostic
	Skipped     int

	// Fingerprint is the xxHash64 digest of the parsed buffer.
	Fingerprint uint64
}

// Data returns the 1-D spectrum stored under key.
func (f *File) Data(key string) (*Data, bool) {
	d, ok := f.Spectra[key]
	return d, ok
}

// DataKeys returns the stored 1-D spectrum keys, sorted.
func (f *File) DataKeys() []string {
	keys := make([]string, 0, len(f.Spectra))
	for k := range f.Spectra {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// SeriesKeys returns the stored 3-D spectrum keys, sorted.
func (f *File) SeriesKeys() []string {
	keys := make([]string, 0, len(f.Series))
	for k := range f.Series {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// Sample returns the sample single-channel spectrum.
func (f *File) Sample() (*Data, bool) {
	return f.Data("sm")
}

// Reference returns the reference single-channel spectrum.
func (f *File) Reference() (*Data, bool) {
	return f.Data("rf")
}

// Absorbance returns the absorbance spectrum.
func (f *File) Absorbance() (*Data, bool) {
	return f.Data("a")
}

// Transmittance returns the transmittance spectrum.
func (f *File) Transmittance() (*Data, bool) {
	return f.Data("t")
}

// SampleInterferogram returns the sample interferogram.
func (f *File) SampleInterferogram() (*Data, bool) {
	return f.Data("igsm")
}

// ReferenceInterferogram returns the reference interferogram.
func (f *File) ReferenceInterferogram() (*Data, bool) {
	return f.Data("igrf")
}

// Timestamp returns the most recent acquisition time recorded by any
// spectrum in the file.
func (f *File) Timestamp() (time.Time, bool) {
	var (
		latest time.Time
		found  bool
	)
	for _, d := range f.Spectra {
		if ts, ok := d.Timestamp(); ok && ts.After(latest) {
			latest, found = ts, true
		}
	}
	for _, s := range f.Series {
		if ts, ok := s.Timestamp(); ok && ts.After(latest) {
			latest, found = ts, true
		}
	}

	return latest, found
}

// Metadata aggregates the parameter blocks of a file with label-resolved
// views. Sample and Reference are always non-nil after assembly, possibly
// empty.
type Metadata struct {
	// Sample merges the sample-side acquisition, optics and instrument
	// parameter blocks in directory order.
	Sample *param.Block

	// Reference merges the reference-channel parameter blocks.
	Reference *param.Block

	// Blocks lists every decoded parameter block in directory order,
	// including the sources of the merged views.
	Blocks []*param.Block

	labels *label.Dictionary
}

// Label resolves a parameter key to its human-readable label, falling
// back to the upper-cased key itself.
func (m *Metadata) Label(key string) string {
	return m.labels.Label(key)
}

// Value returns the sample-side value of key as its natural Go type.
func (m *Metadata) Value(key string) (any, bool) {
	e, ok := m.Sample.Get(key)
	if !ok {
		return nil, false
	}

	return e.Value(), true
}

// Labeled returns the sample-side parameters keyed by resolved label.
func (m *Metadata) Labeled() map[string]any {
	out := make(map[string]any, m.Sample.Len())
	for _, key := range m.Sample.Keys() {
		e, _ := m.Sample.Get(key)
		out[m.labels.Label(key)] = e.Value()
	}

	return out
}
