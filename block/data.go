package block

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/ftirkit/opus/format"
	"github.com/ftirkit/opus/param"
	"github.com/ftirkit/opus/section"
)

// laserHz converts a scanner velocity setting to modulation frequency per
// wavenumber: OPUS velocity settings are in kHz of the reference laser,
// whose line sits at 7900 per cm.
const laserHz = 1000.0 / 7900.0

// Data is one decoded 1-D data block: the sample values and the axis
// recovered from the paired data-status parameter block.
//
// The x axis is not stored in the file; it is the linear span of
// [XStart, XStop] over PointCount points. When no status block could be
// paired the samples are still returned with AxisUnresolved set and a raw
// 0..N-1 index axis.
type Data struct {
	Key   string
	Type  section.BlockType
	Start int // byte offset of the block within the file

	Samples    []float64
	XStart     float64
	XStop      float64
	PointCount int
	Unit       format.XUnit

	AxisUnresolved bool
	Status         *param.Block // nil when AxisUnresolved

	// Velocity is the scanner velocity setting of the measurement, used
	// for modulation frequency conversion. Zero when unknown.
	Velocity float64
}

// X returns the axis values, one per sample. Each call allocates a fresh
// slice; no aliasing of internal state escapes.
func (d *Data) X() []float64 {
	if d.AxisUnresolved {
		return indexAxis(len(d.Samples))
	}

	return span(d.XStart, d.XStop, d.PointCount)
}

// Label returns the human-readable block type label, e.g. "Amplitude
// Ratioed Absorbance".
func (d *Data) Label() string {
	return d.Type.String()
}

// Timestamp returns the acquisition time recorded in the paired status
// block.
func (d *Data) Timestamp() (time.Time, bool) {
	if d.Status == nil {
		return time.Time{}, false
	}

	return d.Status.Timestamp()
}

// Spectral reports whether the axis can be converted between wavenumber
// and wavelength. Interferogram-like axes (points, minutes) cannot.
func (d *Data) Spectral() bool {
	return !d.AxisUnresolved && d.Unit.Spectral()
}

// Wavenumbers returns the axis in wavenumbers (1/cm) regardless of the
// stored unit. Reports false for non-spectral axes.
func (d *Data) Wavenumbers() ([]float64, bool) {
	if !d.Spectral() {
		return nil, false
	}

	x := d.X()
	switch d.Unit {
	case format.UnitMicron:
		for i, v := range x {
			x[i] = 10000 / v
		}
	case format.UnitLogWavenumber:
		for i, v := range x {
			x[i] = math.Exp(v)
		}
	}

	return x, true
}

// Wavelengths returns the axis in microns regardless of the stored unit.
// Reports false for non-spectral axes.
func (d *Data) Wavelengths() ([]float64, bool) {
	if !d.Spectral() {
		return nil, false
	}

	x := d.X()
	switch d.Unit {
	case format.UnitWavenumber:
		for i, v := range x {
			x[i] = 10000 / v
		}
	case format.UnitLogWavenumber:
		for i, v := range x {
			x[i] = 10000 / math.Exp(v)
		}
	}

	return x, true
}

// Frequencies returns the axis as modulation frequency in Hz, derived
// from the wavenumber axis and the scanner velocity. Reports false for
// non-spectral axes or when the velocity is unknown.
func (d *Data) Frequencies() ([]float64, bool) {
	if d.Velocity == 0 {
		return nil, false
	}

	wn, ok := d.Wavenumbers()
	if !ok {
		return nil, false
	}

	floats.Scale(laserHz*d.Velocity, wn)

	return wn, true
}

// XIn returns the axis converted to the requested unit. Requesting the
// stored unit returns the plain axis; wavenumber and micron requests
// convert. Reports false for conversions the stored unit cannot serve.
func (d *Data) XIn(unit format.XUnit) ([]float64, bool) {
	if !d.AxisUnresolved && unit == d.Unit {
		return d.X(), true
	}

	switch unit {
	case format.UnitWavenumber:
		return d.Wavenumbers()
	case format.UnitMicron:
		return d.Wavelengths()
	default:
		return nil, false
	}
}

// span materializes a linear axis of n points from first to last.
func span(first, last float64, n int) []float64 {
	switch n {
	case 0:
		return nil
	case 1:
		return []float64{first}
	}

	return floats.Span(make([]float64, n), first, last)
}

// indexAxis returns the raw 0..n-1 axis used when no status block
// resolves the real one.
func indexAxis(n int) []float64 {
	return span(0, float64(n-1), n)
}
