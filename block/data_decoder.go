package block

import (
	"encoding/binary"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ftirkit/opus/cursor"
	"github.com/ftirkit/opus/format"
	"github.com/ftirkit/opus/param"
	"github.com/ftirkit/opus/section"
)

// Data point formats declared by the DPF status parameter.
const (
	dpfFloat32 = 1
	dpfInt32   = 2
)

// rawSamples decodes every whole sample in the entry's byte range into
// float64. dpf selects the stored value type; wide overrides it for
// blocks that store 8-byte floats.
func rawSamples(cur *cursor.Cursor, entry section.DirectoryEntry, dpf int, wide bool) ([]float64, error) {
	width := 4
	if wide {
		width = 8
	}

	count := entry.Length() / width
	raw, err := cur.Bytes(int(entry.Start), count*width)
	if err != nil {
		return nil, err
	}

	out := make([]float64, count)
	switch {
	case wide:
		for i := range out {
			out[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
		}
	case dpf == dpfInt32:
		for i := range out {
			out[i] = float64(int32(binary.LittleEndian.Uint32(raw[i*4:])))
		}
	default:
		for i := range out {
			out[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:])))
		}
	}

	return out, nil
}

// wideMinPoints is the smallest spectrum the float64 inference applies
// to. Below it a word-padded float32 block can reach NPT*8 bytes on
// padding alone, which would flip the decode.
const wideMinPoints = 4

// inferWide reports whether the block stores 8-byte floats: the status
// block declares NPT points and the block holds exactly NPT samples at
// eight bytes each. Files processed by some OPUS versions store doubles
// while DPF still reads 1. Compact blocks are exempt because their
// leading metadata inflates the byte count.
func inferWide(status *param.Block, entry section.DirectoryEntry, compact bool) bool {
	if compact {
		return false
	}

	npt, ok := status.Numeric("NPT")
	if !ok || npt < wideMinPoints {
		return false
	}

	return entry.Length() == int(npt)*8
}

// statusInt reads an integer-valued status parameter with a default.
func statusInt(status *param.Block, key string, def int) int {
	if v, ok := status.Numeric(key); ok {
		return int(v)
	}

	return def
}

// buildData assembles a Data from a directory entry and its paired status
// block. A nil status produces the degraded form: raw float32 samples and
// a 0..N-1 index axis, flagged AxisUnresolved. With a status the samples
// are decoded per DPF, compact metadata is dropped, the sample count is
// trimmed to NPT, CSF scaling is applied and the axis bounds are taken
// from FXV/LXV.
func buildData(cur *cursor.Cursor, entry section.DirectoryEntry, status *param.Block, key string) (*Data, error) {
	d := &Data{
		Key:   key,
		Type:  entry.Type,
		Start: int(entry.Start),
	}

	if status == nil {
		samples, err := rawSamples(cur, entry, dpfFloat32, false)
		if err != nil {
			return nil, err
		}

		d.Samples = samples
		d.PointCount = len(samples)
		d.AxisUnresolved = true

		return d, nil
	}

	compact := entry.Type.IsCompactData()
	dpf := statusInt(status, "DPF", dpfFloat32)
	npt := statusInt(status, "NPT", 0)

	samples, err := rawSamples(cur, entry, dpf, inferWide(status, entry, compact))
	if err != nil {
		return nil, err
	}

	// Compact blocks carry metadata ahead of the samples; the spectrum is
	// the last NPT values.
	if compact && npt > 0 && len(samples) > npt {
		samples = samples[len(samples)-npt:]
	}
	// Padding past NPT is common on regular blocks.
	if npt > 0 && len(samples) > npt {
		samples = samples[:npt]
	}

	if csf, ok := status.Numeric("CSF"); ok && csf != 1 {
		floats.Scale(csf, samples)
	}

	d.Samples = samples
	d.PointCount = len(samples)

	fxv, okFirst := status.Numeric("FXV")
	lxv, okLast := status.Numeric("LXV")
	if npt <= 0 || !okFirst || !okLast || len(samples) < npt {
		// The status matched but cannot describe the axis.
		d.AxisUnresolved = true
		return d, nil
	}

	d.XStart = fxv
	d.XStop = lxv
	d.Status = status
	if dxu, ok := status.Str("DXU"); ok {
		d.Unit = format.ParseXUnit(dxu)
	}

	return d, nil
}
