package block

import (
	"fmt"
	"time"

	"github.com/ftirkit/opus/cursor"
	"github.com/ftirkit/opus/errs"
	"github.com/ftirkit/opus/format"
	"github.com/ftirkit/opus/param"
	"github.com/ftirkit/opus/section"
)

// Series is a 3-D spectrum: an ordered stack of same-shape planes sharing
// one axis, acquired over time. It comes from either a native data-series
// block (one block holding every plane with per-plane info records) or
// from grouping repeated same-type 1-D blocks after the scan.
type Series struct {
	Key   string
	Type  section.BlockType
	Start int

	Planes     [][]float64
	XStart     float64
	XStop      float64
	PointCount int
	Unit       format.XUnit

	AxisUnresolved bool
	Status         *param.Block

	// Index holds one value per plane: the elapsed-time axis when the
	// file records acquisition times, the plane index otherwise.
	Index []float64

	// Per-plane info records, present only for native series blocks.
	PointCounts []int32
	MinY        []float64
	MaxY        []float64
	StartTimes  []float64
	EndTimes    []float64
	ScanCounts  []int32

	// Stores tracks the run numbers of kept planes, exposing acquisition
	// gaps (skipped spectra) in native series.
	Stores []section.StoreRange
}

// Len returns the number of planes.
func (s *Series) Len() int {
	return len(s.Planes)
}

// X returns the shared axis, one value per point. Each call allocates.
func (s *Series) X() []float64 {
	if s.AxisUnresolved {
		return indexAxis(s.PointCount)
	}

	return span(s.XStart, s.XStop, s.PointCount)
}

// Label returns the human-readable block type label.
func (s *Series) Label() string {
	return s.Type.String()
}

// Timestamp returns the acquisition time recorded in the paired status
// block.
func (s *Series) Timestamp() (time.Time, bool) {
	if s.Status == nil {
		return time.Time{}, false
	}

	return s.Status.Timestamp()
}

// buildSeries decodes a native data-series block: a fixed sub-header, a
// store table, then BlockCount planes of DataSize sample bytes each
// followed by an InfoSize-byte info record. The stride uses the declared
// sizes, so info fields beyond the known record stay skipped rather than
// mis-read.
func buildSeries(cur *cursor.Cursor, entry section.DirectoryEntry, status *param.Block, key string) (*Series, error) {
	view, err := cur.View(int(entry.Start), entry.Length())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSeriesBlock, err)
	}

	hdrRaw, err := view.Bytes(0, section.SeriesHeaderSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidSeriesBlock, err)
	}
	hdr, err := section.ParseSeriesHeader(hdrRaw)
	if err != nil {
		return nil, err
	}
	if err := hdr.Validate(view.Len()); err != nil {
		return nil, err
	}

	s := &Series{
		Key:   key,
		Type:  entry.Type,
		Start: int(entry.Start),
	}

	for i := 0; i < int(hdr.StoreCount); i++ {
		off := section.SeriesStoreTableOffset + i*section.SeriesStoreEntrySize
		first, _ := view.Int32(off)
		last, _ := view.Int32(off + 4)
		s.Stores = append(s.Stores, section.StoreRange{First: first, Last: last})
	}

	var (
		dpf = dpfFloat32
		npt = 0
	)
	if status != nil {
		dpf = statusInt(status, "DPF", dpfFloat32)
		npt = statusInt(status, "NPT", 0)
	}

	count := int(hdr.DataSize) / 4
	planes := make([][]float64, hdr.BlockCount)
	s.allocInfo(int(hdr.BlockCount))

	offset := int(hdr.DataOffset)
	for i := range planes {
		raw, err := view.Bytes(offset, count*4)
		if err != nil {
			return nil, fmt.Errorf("%w: plane %d: %v", errs.ErrInvalidSeriesBlock, i, err)
		}

		plane := decodePlane(raw, count, dpf)
		if npt > 0 && len(plane) > npt {
			plane = plane[:npt]
		}
		planes[i] = plane
		offset += int(hdr.DataSize)

		s.readInfo(view, offset, int(hdr.InfoSize), i)
		offset += int(hdr.InfoSize)
	}

	s.Planes = planes
	if len(planes) > 0 {
		s.PointCount = len(planes[0])
	}

	s.resolveAxis(status, npt)
	s.Index = s.timeIndex()

	return s, nil
}

// decodePlane converts one plane's raw bytes per the data point format.
func decodePlane(raw []byte, count, dpf int) []float64 {
	cur := cursor.New(raw)
	out := make([]float64, count)
	for i := range out {
		if dpf == dpfInt32 {
			v, _ := cur.Int32(i * 4)
			out[i] = float64(v)
		} else {
			v, _ := cur.Float32(i * 4)
			out[i] = float64(v)
		}
	}

	return out
}

// allocInfo sizes the per-plane info arrays.
func (s *Series) allocInfo(n int) {
	s.PointCounts = make([]int32, n)
	s.MinY = make([]float64, n)
	s.MaxY = make([]float64, n)
	s.StartTimes = make([]float64, n)
	s.EndTimes = make([]float64, n)
	s.ScanCounts = make([]int32, n)
}

// readInfo decodes the info record of plane i when the declared record is
// large enough to hold the known layout.
func (s *Series) readInfo(view *cursor.Cursor, off, infoSize, i int) {
	if infoSize < section.SeriesInfoSize {
		return
	}

	s.PointCounts[i], _ = view.Int32(off)
	s.MinY[i], _ = view.Float64(off + 4)
	s.MaxY[i], _ = view.Float64(off + 12)
	s.StartTimes[i], _ = view.Float64(off + 20)
	s.EndTimes[i], _ = view.Float64(off + 28)
	s.ScanCounts[i], _ = view.Int32(off + 36)
}

// resolveAxis fills the axis bounds from the status block, degrading to
// the unresolved form when the status is missing or incomplete.
func (s *Series) resolveAxis(status *param.Block, npt int) {
	if status == nil {
		s.AxisUnresolved = true
		return
	}

	fxv, okFirst := status.Numeric("FXV")
	lxv, okLast := status.Numeric("LXV")
	if npt <= 0 || !okFirst || !okLast || s.PointCount < npt {
		s.AxisUnresolved = true
		return
	}

	s.XStart = fxv
	s.XStop = lxv
	s.Status = status
	if dxu, ok := status.Str("DXU"); ok {
		s.Unit = format.ParseXUnit(dxu)
	}
}

// timeIndex derives the per-plane index: acquisition end times when the
// info records carry them, the plane index otherwise.
func (s *Series) timeIndex() []float64 {
	for _, t := range s.EndTimes {
		if t != 0 {
			return append([]float64(nil), s.EndTimes...)
		}
	}

	return indexAxis(len(s.Planes))
}

// groupSeries stacks same-type 1-D blocks into a Series. Members arrive
// in directory order, which matches acquisition order. Every member must
// agree on point count, axis bounds and unit; a mismatch fails with
// errs.ErrSeriesShapeMismatch and the members stay independent 1-D data.
func groupSeries(members []*Data, key string) (*Series, error) {
	first := members[0]
	for _, m := range members[1:] {
		if m.PointCount != first.PointCount {
			return nil, fmt.Errorf("%w: %s blocks disagree on point count (%d vs %d)",
				errs.ErrSeriesShapeMismatch, key, first.PointCount, m.PointCount)
		}
		if m.AxisUnresolved != first.AxisUnresolved || m.XStart != first.XStart ||
			m.XStop != first.XStop || m.Unit != first.Unit {
			return nil, fmt.Errorf("%w: %s blocks disagree on axis bounds",
				errs.ErrSeriesShapeMismatch, key)
		}
	}

	s := &Series{
		Key:            key,
		Type:           first.Type,
		Start:          first.Start,
		XStart:         first.XStart,
		XStop:          first.XStop,
		PointCount:     first.PointCount,
		Unit:           first.Unit,
		AxisUnresolved: first.AxisUnresolved,
		Status:         first.Status,
		Planes:         make([][]float64, len(members)),
	}
	for i, m := range members {
		s.Planes[i] = m.Samples
	}
	s.Index = groupIndex(members)

	return s, nil
}

// groupIndex derives the index axis for a grouped series: elapsed seconds
// since the first member when every member has a timestamp, the plain
// plane index otherwise.
func groupIndex(members []*Data) []float64 {
	times := make([]time.Time, len(members))
	for i, m := range members {
		ts, ok := m.Timestamp()
		if !ok {
			return indexAxis(len(members))
		}
		times[i] = ts
	}

	index := make([]float64, len(members))
	for i, t := range times {
		index[i] = t.Sub(times[0]).Seconds()
	}

	return index
}
