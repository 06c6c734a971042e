package block

import (
	"encoding/binary"
	"math"

	"github.com/ftirkit/opus/format"
	"github.com/ftirkit/opus/param"
	"github.com/ftirkit/opus/section"
)

// Block type codes shared by the fixtures.
var (
	typeSampleData = section.MakeBlockType(format.FormAmplitude, format.ChannelSample,
		format.ParamNone, int(format.DataSpectrum), format.DerivativeNone, format.ExtensionNone)
	typeSampleStatus = section.MakeBlockType(format.FormAmplitude, format.ChannelSample,
		format.ParamDataStatus, int(format.DataSpectrum), format.DerivativeNone, format.ExtensionNone)

	typeAbsorbance = section.MakeBlockType(format.FormAmplitude, format.ChannelRatioed,
		format.ParamNone, int(format.DataAbsorbance), format.DerivativeNone, format.ExtensionNone)
	typeAbsorbanceStatus = section.MakeBlockType(format.FormAmplitude, format.ChannelRatioed,
		format.ParamDataStatus, int(format.DataAbsorbance), format.DerivativeNone, format.ExtensionNone)

	typeSeriesData = section.MakeBlockType(format.FormAmplitude, format.ChannelSample,
		format.ParamNone, int(format.DataSpectrum), format.DerivativeNone, format.ExtensionSeries)
	typeSeriesStatus = section.MakeBlockType(format.FormAmplitude, format.ChannelSample,
		format.ParamDataStatus, int(format.DataSpectrum), format.DerivativeNone, format.ExtensionSeries)

	typeAcquisition = section.MakeBlockType(format.FormNone, format.ChannelNone,
		format.ParamAcquisition, 0, format.DerivativeNone, format.ExtensionNone)
	typeOptical = section.MakeBlockType(format.FormNone, format.ChannelNone,
		format.ParamOptical, 0, format.DerivativeNone, format.ExtensionNone)
	typeRfAcquisition = section.MakeBlockType(format.FormNone, format.ChannelReference,
		format.ParamAcquisition, 0, format.DerivativeNone, format.ExtensionNone)

	typeFileLog = section.MakeBlockType(format.FormNone, format.ChannelNone,
		format.ParamNone, 0, format.DerivativeNone, format.ExtensionLog)
	typeReport = section.MakeBlockType(format.FormNone, format.ChannelNone,
		format.ParamNone, 0, format.DerivativeNone, format.ExtensionReport)
	typeDirectory = section.MakeBlockType(format.FormNone, format.ChannelNone,
		format.ParamNone, int(format.DataDirectory), format.DerivativeNone, format.ExtensionNone)
)

// opusFixture assembles a synthetic OPUS buffer: the fixed header, the
// block payloads in order, then the directory with a self entry last.
type opusFixture struct {
	blocks []fixtureBlock
}

type fixtureBlock struct {
	typ     section.BlockType
	payload []byte
}

func (f *opusFixture) add(typ section.BlockType, payload []byte) *opusFixture {
	f.blocks = append(f.blocks, fixtureBlock{typ: typ, payload: payload})
	return f
}

func (f *opusFixture) bytes() []byte {
	offset := section.HeaderSize
	starts := make([]int32, len(f.blocks))
	for i, b := range f.blocks {
		starts[i] = int32(offset)
		offset += padWord(len(b.payload))
	}

	dirStart := offset
	slots := len(f.blocks) + 1

	buf := section.NewFileHeader(int32(dirStart), int32(slots), int32(slots)).Bytes()
	for _, b := range f.blocks {
		buf = append(buf, b.payload...)
		buf = append(buf, make([]byte, padWord(len(b.payload))-len(b.payload))...)
	}
	for i, b := range f.blocks {
		entry := section.DirectoryEntry{
			Type:      b.typ,
			SizeWords: int32(padWord(len(b.payload)) / 4),
			Start:     starts[i],
		}
		buf = append(buf, entry.Bytes()...)
	}
	self := section.DirectoryEntry{
		Type:      typeDirectory,
		SizeWords: int32(slots * section.DirectoryEntrySize / 4),
		Start:     int32(dirStart),
	}

	return append(buf, self.Bytes()...)
}

func padWord(n int) int {
	return (n + 3) &^ 3
}

func intEntry(key string, v int32) param.Entry {
	return param.Entry{Key: key, Kind: format.ValueInt32, Int: v}
}

func floatEntry(key string, v float64) param.Entry {
	return param.Entry{Key: key, Kind: format.ValueFloat64, Float: v}
}

func strEntry(key, v string) param.Entry {
	return param.Entry{Key: key, Kind: format.ValueString, Str: v}
}

// paramPayload serializes entries followed by the END terminator.
func paramPayload(entries ...param.Entry) []byte {
	var buf []byte
	for _, e := range entries {
		buf = append(buf, e.Bytes()...)
	}

	return append(buf, "END\x00\x00\x00\x00\x00"...)
}

// axisStatus builds a data-status payload with the standard axis
// parameters.
func axisStatus(dpf, npt int32, fxv, lxv float64, extra ...param.Entry) []byte {
	entries := []param.Entry{
		intEntry("DPF", dpf),
		intEntry("NPT", npt),
		floatEntry("FXV", fxv),
		floatEntry("LXV", lxv),
		floatEntry("CSF", 1),
		strEntry("DXU", "WN"),
	}

	return paramPayload(append(entries, extra...)...)
}

func float64Payload(vals ...float64) []byte {
	var buf []byte
	for _, v := range vals {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

func float32Payload(vals ...float32) []byte {
	var buf []byte
	for _, v := range vals {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}

	return buf
}

func int32Payload(vals ...int32) []byte {
	var buf []byte
	for _, v := range vals {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(v))
	}

	return buf
}

// seriesInfo is one per-plane info record of a native series fixture.
type seriesInfo struct {
	npt      int32
	mny, mxy float64
	srt, ert float64
	nsn      int32
}

// seriesPayload builds a native data-series block: sub-header, store
// table, then each plane's samples followed by its info record.
func seriesPayload(planes [][]float32, infos []seriesInfo, stores []section.StoreRange) []byte {
	hdr := section.SeriesHeader{
		BlockCount: int32(len(planes)),
		DataOffset: int32(section.SeriesStoreTableOffset + len(stores)*section.SeriesStoreEntrySize),
		DataSize:   int32(len(planes[0]) * 4),
		InfoSize:   section.SeriesInfoSize,
		StoreCount: int32(len(stores)),
	}

	buf := hdr.Bytes()
	for _, st := range stores {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(st.First))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(st.Last))
	}
	for i, plane := range planes {
		buf = append(buf, float32Payload(plane...)...)
		info := infos[i]
		buf = binary.LittleEndian.AppendUint32(buf, uint32(info.npt))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(info.mny))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(info.mxy))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(info.srt))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(info.ert))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(info.nsn))
	}

	return buf
}

// tableCol describes one report table column for the fixtures.
type tableCol struct {
	offset   int32
	typeCode int32
	label    string
}

// tablePayload builds one report table: geometry parameters, the extra
// parameters (SUB/Gnn/Unn for a summary), then packed row-major cells.
func tablePayload(stride int32, cols []tableCol, rows [][]any, extra ...param.Entry) []byte {
	build := func(siz int32) []byte {
		entries := []param.Entry{
			intEntry("NCO", int32(len(cols))),
			intEntry("NLN", int32(len(rows))),
			intEntry("SIZ", siz),
			intEntry("SRC", stride),
		}
		for i, c := range cols {
			entries = append(entries,
				intEntry(colKey('F', i), c.offset),
				intEntry(colKey('T', i), c.typeCode),
				strEntry(colKey('S', i), c.label))
		}

		return paramPayload(append(entries, extra...)...)
	}

	// SIZ names the parameter region's own length; int entries are
	// fixed-width, so a rebuild with the measured value keeps the layout.
	params := build(0)
	params = build(int32(len(params)))

	buf := params
	for _, row := range rows {
		buf = append(buf, packRow(stride, cols, row)...)
	}

	return buf
}

func packRow(stride int32, cols []tableCol, vals []any) []byte {
	row := make([]byte, stride)
	for i, c := range cols {
		switch v := vals[i].(type) {
		case string:
			copy(row[c.offset:], v)
		case int32:
			binary.LittleEndian.PutUint32(row[c.offset:], uint32(v))
		case float64:
			binary.LittleEndian.PutUint64(row[c.offset:], math.Float64bits(v))
		}
	}

	return row
}

// reportPayload builds a report block: the int32 lead triple, header
// parameters locating the summary, the summary table, then the
// subreport tables at the offsets the summary declares.
func reportPayload(title string, summary func(extra ...param.Entry) []byte, subs ...[]byte) []byte {
	lead := make([]byte, reportLeadSize)

	build := func(f00 int32, extra ...param.Entry) ([]byte, []byte) {
		hdr := paramPayload(strEntry("TIT", title), intEntry("F00", f00))
		return hdr, summary(extra...)
	}

	// Offsets are self-referential; int entries are fixed-width, so a
	// second build with the measured values keeps the layout.
	hdr, sum := build(0, summaryExtras(0, subs)...)
	f00 := int32(reportLeadSize + len(hdr))
	hdr, sum = build(f00, summaryExtras(int32(len(sum)), subs)...)

	buf := append(lead, hdr...)
	buf = append(buf, sum...)
	for _, sub := range subs {
		buf = append(buf, sub...)
	}

	return buf
}

// summaryExtras forms the SUB/Gnn/Unn parameters for consecutive
// subreports beginning at first (relative to the summary start).
func summaryExtras(first int32, subs [][]byte) []param.Entry {
	extras := []param.Entry{intEntry("SUB", int32(len(subs)))}
	offset := first
	for i, sub := range subs {
		extras = append(extras,
			intEntry(colKey('G', i), offset),
			strEntry(colKey('U', i), "Subreport"))
		offset += int32(len(sub))
	}

	return extras
}
