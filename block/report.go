package block

import (
	"fmt"
	"strconv"

	"github.com/ftirkit/opus/cursor"
	"github.com/ftirkit/opus/errs"
	"github.com/ftirkit/opus/format"
	"github.com/ftirkit/opus/param"
	"github.com/ftirkit/opus/section"
)

// reportLeadSize is the fixed int32 triple before the header parameters.
const reportLeadSize = 12

// Cell type codes seen in report tables. Codes above 1000 mark strings of
// declared width; the numeric codes share the parameter tag vocabulary.
const (
	cellInt32   = 0
	cellFloat64 = 1
)

// Report is a decoded report block, such as a multi-evaluation test
// report: a header parameter block, a summary table, and the subreport
// tables the summary points at.
type Report struct {
	Type  section.BlockType
	Start int

	// Lead holds the three int32 values preceding the header parameters.
	Lead [3]int32

	// Header is the mini parameter block at byte 12. TIT titles the
	// report; F00 locates the summary table within the block.
	Header *param.Block

	// Summary is the table at F00. Its SUB parameter counts the
	// subreports, G00.. locate them relative to the summary start and
	// U00.. title them.
	Summary *Subreport

	Subreports []*Subreport
}

// Title returns the report title from the header parameters.
func (r *Report) Title() string {
	title, _ := r.Header.Str("TIT")
	return title
}

// Subreport is one table within a report: a mini parameter block
// describing the geometry, followed by packed row-major cells.
type Subreport struct {
	// Title is assigned by the report summary; the summary table itself
	// has none.
	Title string

	// Info holds the geometry and header parameters: NCO columns, NLN
	// rows, SIZ parameter-block size, SRC row stride, Fnn column offsets,
	// Tnn column type codes, Snn column header labels.
	Info *param.Block

	Rows [][]Cell
}

// Columns returns the column header labels, one per table column.
func (s *Subreport) Columns() []string {
	cols, _ := s.Info.Int("NCO")
	if cols <= 0 {
		return nil
	}

	labels := make([]string, cols)
	for c := range labels {
		labels[c], _ = s.Info.Str(colKey('S', c))
	}

	return labels
}

// Cell is one decoded table cell.
type Cell struct {
	Kind  format.ValueKind
	Int   int32
	Float float64
	Str   string
	Raw   []byte
}

// Value returns the cell value as its natural Go type.
func (c Cell) Value() any {
	switch c.Kind {
	case format.ValueInt32:
		return c.Int
	case format.ValueFloat64:
		return c.Float
	case format.ValueString:
		return c.Str
	default:
		return c.Raw
	}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	switch c.Kind {
	case format.ValueInt32:
		return strconv.Itoa(int(c.Int))
	case format.ValueFloat64:
		return strconv.FormatFloat(c.Float, 'g', -1, 64)
	case format.ValueString:
		return c.Str
	default:
		return fmt.Sprintf("%x", c.Raw)
	}
}

// buildReport decodes a report block. The block opens with three int32
// values and a mini parameter block whose F00 locates the summary table;
// the summary's SUB/Gnn/Unn parameters enumerate the subreports. Any
// structural failure rejects the whole report.
func buildReport(cur *cursor.Cursor, entry section.DirectoryEntry) (*Report, error) {
	raw, err := cur.Bytes(int(entry.Start), entry.Length())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidReportBlock, err)
	}

	r := &Report{Type: entry.Type, Start: int(entry.Start)}

	lead := cursor.New(raw)
	for i := range r.Lead {
		if r.Lead[i], err = lead.Int32(i * 4); err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrInvalidReportBlock, err)
		}
	}

	r.Header, err = param.ParseBlock(raw[reportLeadSize:], entry.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: header parameters: %v", errs.ErrInvalidReportBlock, err)
	}

	summaryStart, ok := r.Header.Int("F00")
	if !ok || summaryStart < reportLeadSize || int(summaryStart) >= len(raw) {
		return nil, fmt.Errorf("%w: summary offset %d out of range", errs.ErrInvalidReportBlock, summaryStart)
	}

	r.Summary, err = parseSubreport(raw[summaryStart:], entry.Type)
	if err != nil {
		return nil, err
	}

	count, ok := r.Summary.Info.Int("SUB")
	if !ok || count < 0 {
		return nil, fmt.Errorf("%w: summary subreport count missing", errs.ErrInvalidReportBlock)
	}

	for idx := 0; idx < int(count); idx++ {
		g, ok := r.Summary.Info.Int(colKey('G', idx))
		if !ok {
			return nil, fmt.Errorf("%w: subreport %d offset missing", errs.ErrInvalidReportBlock, idx)
		}

		offset := int(summaryStart) + int(g)
		if offset < 0 || offset >= len(raw) {
			return nil, fmt.Errorf("%w: subreport %d at %d out of range", errs.ErrInvalidReportBlock, idx, offset)
		}

		sub, err := parseSubreport(raw[offset:], entry.Type)
		if err != nil {
			return nil, err
		}
		sub.Title, _ = r.Summary.Info.Str(colKey('U', idx))
		r.Subreports = append(r.Subreports, sub)
	}

	return r, nil
}

// parseSubreport decodes one table starting at the head of raw. Trailing
// bytes beyond the table are permitted; the geometry parameters bound all
// reads.
func parseSubreport(raw []byte, typ section.BlockType) (*Subreport, error) {
	info, err := param.ParseBlock(raw, typ)
	if err != nil {
		return nil, fmt.Errorf("%w: table parameters: %v", errs.ErrInvalidReportBlock, err)
	}

	cols, okCols := info.Int("NCO")
	rows, okRows := info.Int("NLN")
	paramSize, okSize := info.Int("SIZ")
	stride, okStride := info.Int("SRC")
	if !okCols || !okRows || !okSize || !okStride {
		return nil, fmt.Errorf("%w: table geometry incomplete", errs.ErrInvalidReportBlock)
	}
	if cols < 0 || rows < 0 || paramSize < 0 || stride < 0 {
		return nil, fmt.Errorf("%w: table geometry nco=%d nln=%d siz=%d src=%d",
			errs.ErrInvalidReportBlock, cols, rows, paramSize, stride)
	}

	// The geometry must fit the block before anything is allocated from
	// it. Every row must start inside the table (cells in a final short
	// row clamp, but rows placed entirely past the end hold no data) and
	// every column needs its descriptor entries in the parameter region.
	if rows > 1 && stride == 0 {
		return nil, fmt.Errorf("%w: %d rows with zero stride", errs.ErrInvalidReportBlock, rows)
	}
	if rows > 0 && int64(paramSize)+int64(rows-1)*int64(stride) >= int64(len(raw)) {
		return nil, fmt.Errorf("%w: %d rows of %d bytes exceed the %d-byte table",
			errs.ErrInvalidReportBlock, rows, stride, len(raw))
	}
	if int(cols) > info.Len() {
		return nil, fmt.Errorf("%w: %d columns declared by a %d-parameter block",
			errs.ErrInvalidReportBlock, cols, info.Len())
	}

	offsets := make([]int, cols)
	types := make([]int, cols)
	for c := range offsets {
		f, okF := info.Int(colKey('F', c))
		t, okT := info.Int(colKey('T', c))
		if !okF || !okT {
			return nil, fmt.Errorf("%w: column %d offset or type missing", errs.ErrInvalidReportBlock, c)
		}
		offsets[c] = int(f)
		types[c] = int(t)
	}

	sub := &Subreport{Info: info, Rows: make([][]Cell, rows)}
	cur := cursor.New(raw)
	for row := range sub.Rows {
		cells := make([]Cell, cols)
		for c := range cells {
			offset := int(paramSize) + row*int(stride) + offsets[c]

			// A column runs to the next column's offset, the last to the
			// end of the row; string columns are further bounded by the
			// width their type code declares.
			var size int
			if c < len(cells)-1 {
				size = offsets[c+1] - offsets[c]
				if w := types[c] - 1000; w < size {
					size = w
				}
			} else {
				size = int(stride) - offsets[c]
			}

			cells[c], err = decodeCell(cur, offset, size, types[c])
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %v", errs.ErrInvalidReportBlock, row, c, err)
			}
		}
		sub.Rows[row] = cells
	}

	return sub, nil
}

// decodeCell reads one cell. String and raw cells clamp to the bytes
// available; fixed-width numeric reads past the end are structural errors.
func decodeCell(cur *cursor.Cursor, offset, size, typeCode int) (Cell, error) {
	switch {
	case typeCode > 1000:
		size = clampSpan(cur, offset, size)
		if size <= 0 {
			return Cell{Kind: format.ValueString}, nil
		}
		s, err := cur.FixedString(offset, size)
		if err != nil {
			return Cell{}, err
		}
		return Cell{Kind: format.ValueString, Str: s}, nil

	case typeCode == cellInt32:
		v, err := cur.Int32(offset)
		if err != nil {
			return Cell{}, err
		}
		return Cell{Kind: format.ValueInt32, Int: v}, nil

	case typeCode == cellFloat64:
		v, err := cur.Float64(offset)
		if err != nil {
			return Cell{}, err
		}
		return Cell{Kind: format.ValueFloat64, Float: v}, nil

	default:
		size = clampSpan(cur, offset, size)
		if size <= 0 {
			return Cell{Kind: format.ValueOpaque}, nil
		}
		raw, err := cur.Bytes(offset, size)
		if err != nil {
			return Cell{}, err
		}
		return Cell{Kind: format.ValueOpaque, Raw: raw}, nil
	}
}

// clampSpan trims size to the bytes remaining at offset.
func clampSpan(cur *cursor.Cursor, offset, size int) int {
	if rem := cur.Len() - offset; size > rem {
		return rem
	}

	return size
}

// colKey forms a per-column parameter key such as F00 or T07.
func colKey(prefix byte, idx int) string {
	return fmt.Sprintf("%c%02d", prefix, idx)
}
