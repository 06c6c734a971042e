package block

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/ftirkit/opus/cursor"
	"github.com/ftirkit/opus/errs"
	"github.com/ftirkit/opus/internal/hash"
	"github.com/ftirkit/opus/internal/options"
	"github.com/ftirkit/opus/param"
	"github.com/ftirkit/opus/section"
)

// state tracks the assembler's position in its linear pipeline.
type state uint8

const (
	stateInit state = iota
	stateDirectoryRead
	stateBlockScan
	stateAxisReconciliation
	stateSeriesAssembly
	stateDone
)

func (s state) String() string {
	switch s {
	case stateInit:
		return "Init"
	case stateDirectoryRead:
		return "DirectoryRead"
	case stateBlockScan:
		return "BlockScan"
	case stateAxisReconciliation:
		return "AxisReconciliation"
	case stateSeriesAssembly:
		return "SeriesAssembly"
	case stateDone:
		return "Done"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

// dataEntry carries a data or data-series directory entry through the
// pipeline. Sample decodes are cached per width because candidate status
// blocks may disagree on the data point format.
type dataEntry struct {
	entry section.DirectoryEntry
	cache map[widthKey][]float64
}

type widthKey struct {
	dpf  int
	wide bool
}

// statusBlock is a decoded data-status parameter block together with its
// directory entry; the entry start identifies the block during pairing.
type statusBlock struct {
	entry section.DirectoryEntry
	block *param.Block
}

// pair links a data block to the status block supplying its axis.
type pair struct {
	data   *dataEntry
	status *statusBlock
}

// Assembler decodes one OPUS buffer through the linear pipeline
//
//	Init -> DirectoryRead -> BlockScan -> AxisReconciliation -> SeriesAssembly -> Done
//
// Each stage runs once, in order; a stage invoked out of turn fails with
// errs.ErrAssemblerState. Parse drives all stages for the common case.
// Only New can reject the buffer outright; every condition after the
// header check is recorded as a Diagnostic on the assembled File.
type Assembler struct {
	cfg *AssemblerConfig
	cur *cursor.Cursor
	st  state

	header  section.FileHeader
	entries []section.DirectoryEntry

	sampleParams []*param.Block
	refParams    []*param.Block
	paramBlocks  []*param.Block
	statuses     []*statusBlock
	datas        []*dataEntry
	log          []string
	reports      []*Report

	pairs    []pair
	unpaired []*dataEntry

	spectra []*Data
	series  []*Series

	diags   []Diagnostic
	skipped int

	fingerprint uint64
}

// New validates the magic number and fixed header and readies an
// assembler over data. The buffer must stay unmodified until Done; the
// assembled File owns copies of everything it exposes.
func New(data []byte, opts ...AssemblerOption) (*Assembler, error) {
	cfg := newAssemblerConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	hdr, err := section.ParseFileHeader(data)
	if err != nil {
		return nil, err
	}

	return &Assembler{
		cfg:         cfg,
		cur:         cursor.New(data),
		header:      hdr,
		fingerprint: hash.Sum(data),
	}, nil
}

// Parse runs the whole pipeline over data and returns the assembled File.
func Parse(data []byte, opts ...AssemblerOption) (*File, error) {
	a, err := New(data, opts...)
	if err != nil {
		return nil, err
	}

	for _, stage := range []func() error{
		a.DirectoryRead,
		a.BlockScan,
		a.AxisReconciliation,
		a.SeriesAssembly,
	} {
		if err := stage(); err != nil {
			return nil, err
		}
	}

	return a.Done()
}

// require asserts the stage precondition.
func (a *Assembler) require(op string, want state) error {
	if a.st != want {
		return fmt.Errorf("%w: %s requires %s, assembler is %s", errs.ErrAssemblerState, op, want, a.st)
	}

	return nil
}

// diag records a recovered condition against a directory entry.
func (a *Assembler) diag(stage Stage, entry section.DirectoryEntry, err error) {
	a.diags = append(a.diags, Diagnostic{
		Stage:  stage,
		Type:   entry.Type,
		Offset: int(entry.Start),
		Err:    err,
	})
}

// DirectoryRead walks the block directory. Corrupt slots become
// diagnostics; the valid entries proceed to the scan.
func (a *Assembler) DirectoryRead() error {
	if err := a.require("DirectoryRead", stateInit); err != nil {
		return err
	}

	entries, diags := ParseDirectory(a.cur, a.header)
	a.entries = entries
	a.diags = append(a.diags, diags...)
	a.skipped += len(diags)
	a.st = stateDirectoryRead

	return nil
}

// BlockScan classifies every directory entry and decodes the
// self-contained categories: parameter blocks, the file log and reports.
// Data and data-series entries are collected for the later stages, which
// need the full set of status blocks first.
func (a *Assembler) BlockScan() error {
	if err := a.require("BlockScan", stateDirectoryRead); err != nil {
		return err
	}

	for _, entry := range a.entries {
		a.scan(entry)
	}
	a.st = stateBlockScan

	return nil
}

func (a *Assembler) scan(entry section.DirectoryEntry) {
	typ := entry.Type
	switch {
	case typ.IsDirectory():
		// the directory indexes itself; nothing to decode

	case typ.IsFileLog():
		if !a.cfg.fileLog {
			return
		}
		raw, err := a.cur.Bytes(int(entry.Start), entry.Length())
		if err != nil {
			a.diag(StageScan, entry, err)
			a.skipped++
			return
		}
		a.log = append(a.log, parseLog(raw)...)

	case typ.IsReport():
		if !a.cfg.reports {
			return
		}
		r, err := buildReport(a.cur, entry)
		if err != nil {
			a.diag(StageScan, entry, err)
			a.skipped++
			return
		}
		a.reports = append(a.reports, r)

	case typ.IsParameter():
		raw, err := a.cur.Bytes(int(entry.Start), entry.Length())
		if err != nil {
			a.diag(StageScan, entry, err)
			a.skipped++
			return
		}
		blk, err := param.ParseBlock(raw, typ)
		if err != nil {
			a.diag(StageScan, entry, err)
			// ParseBlock returns the entries decoded before the damage;
			// keep them when there are any instead of dropping the block.
			if blk == nil || blk.Len() == 0 {
				a.skipped++
				return
			}
		}
		a.paramBlocks = append(a.paramBlocks, blk)
		switch {
		case typ.IsDataStatus():
			a.statuses = append(a.statuses, &statusBlock{entry: entry, block: blk})
		case typ.IsReferenceParam():
			a.refParams = append(a.refParams, blk)
		default:
			a.sampleParams = append(a.sampleParams, blk)
		}

	case typ.IsDataSeries(), typ.IsData():
		a.datas = append(a.datas, &dataEntry{entry: entry})

	default:
		a.diag(StageScan, entry, fmt.Errorf("%w: %s", errs.ErrUnknownBlockType, typ))
		a.skipped++
	}
}

// AxisReconciliation pairs every data block with the status block that
// supplies its axis, then decodes the 1-D blocks. Pairing runs after the
// scan because the directory does not order status blocks before their
// data. Unpaired blocks are still decoded, flagged AxisUnresolved with a
// diagnostic.
func (a *Assembler) AxisReconciliation() error {
	if err := a.require("AxisReconciliation", stateBlockScan); err != nil {
		return err
	}

	a.pairs, a.unpaired = a.pairStatuses()

	for _, p := range a.pairs {
		if p.data.entry.Type.IsDataSeries() {
			continue
		}
		d, err := buildData(a.cur, p.data.entry, p.status.block, p.data.entry.Type.DataKey())
		if err != nil {
			a.diag(StageAxis, p.data.entry, err)
			a.skipped++
			continue
		}
		if d.AxisUnresolved {
			a.diag(StageAxis, p.data.entry,
				fmt.Errorf("%w: status block at %d lacks axis bounds", errs.ErrAxisUnresolved, p.status.entry.Start))
		}
		a.spectra = append(a.spectra, d)
	}

	for _, de := range a.unpaired {
		if de.entry.Type.IsDataSeries() {
			continue
		}
		d, err := buildData(a.cur, de.entry, nil, de.entry.Type.DataKey())
		if err != nil {
			a.diag(StageAxis, de.entry, err)
			a.skipped++
			continue
		}
		a.diag(StageAxis, de.entry,
			fmt.Errorf("%w: no data status match for %q", errs.ErrAxisUnresolved, d.Key))
		a.spectra = append(a.spectra, d)
	}

	a.st = stateAxisReconciliation

	return nil
}

// SeriesAssembly decodes native data-series blocks and stacks repeated
// same-type 1-D blocks into grouped series.
func (a *Assembler) SeriesAssembly() error {
	if err := a.require("SeriesAssembly", stateAxisReconciliation); err != nil {
		return err
	}

	for _, p := range a.pairs {
		if !p.data.entry.Type.IsDataSeries() {
			continue
		}
		a.buildNativeSeries(p.data, p.status.block)
	}
	for _, de := range a.unpaired {
		if !de.entry.Type.IsDataSeries() {
			continue
		}
		a.buildNativeSeries(de, nil)
	}

	a.groupSpectra()
	a.st = stateSeriesAssembly

	return nil
}

func (a *Assembler) buildNativeSeries(de *dataEntry, status *param.Block) {
	s, err := buildSeries(a.cur, de.entry, status, de.entry.Type.DataKey())
	if err != nil {
		a.diag(StageSeries, de.entry, err)
		a.skipped++
		return
	}
	if s.AxisUnresolved {
		a.diag(StageSeries, de.entry,
			fmt.Errorf("%w: series %q", errs.ErrAxisUnresolved, s.Key))
	}
	a.series = append(a.series, s)
}

// dataID identifies a built data block by its type code and start offset.
type dataID struct {
	typ   section.BlockType
	start int
}

// groupSpectra stacks 1-D blocks that share an identical full type code
// into one Series per type, in directory order. A shape mismatch keeps
// the group as independent 1-D blocks with a diagnostic.
func (a *Assembler) groupSpectra() {
	built := make(map[dataID]*Data, len(a.spectra))
	for _, d := range a.spectra {
		built[dataID{d.Type, d.Start}] = d
	}

	groups := make(map[section.BlockType][]*Data)
	var order []section.BlockType
	for _, de := range a.datas {
		if de.entry.Type.IsDataSeries() {
			continue
		}
		d, ok := built[dataID{de.entry.Type, int(de.entry.Start)}]
		if !ok {
			continue
		}
		if _, seen := groups[de.entry.Type]; !seen {
			order = append(order, de.entry.Type)
		}
		groups[de.entry.Type] = append(groups[de.entry.Type], d)
	}

	grouped := make(map[*Data]bool)
	for _, typ := range order {
		members := groups[typ]
		if len(members) < 2 {
			continue
		}
		s, err := groupSeries(members, typ.DataKey())
		if err != nil {
			a.diags = append(a.diags, Diagnostic{
				Stage:  StageSeries,
				Type:   typ,
				Offset: members[0].Start,
				Err:    err,
			})
			continue
		}
		a.series = append(a.series, s)
		for _, m := range members {
			grouped[m] = true
		}
	}

	if len(grouped) == 0 {
		return
	}
	kept := a.spectra[:0]
	for _, d := range a.spectra {
		if !grouped[d] {
			kept = append(kept, d)
		}
	}
	a.spectra = kept
}

// Done builds the File: merged metadata views, key-claimed spectra and
// series, the scanner velocity pushed onto every spectrum.
func (a *Assembler) Done() (*File, error) {
	if err := a.require("Done", stateSeriesAssembly); err != nil {
		return nil, err
	}

	sample := param.Merge(0, a.sampleParams...)
	if vel := resolveVelocity(sample); vel != 0 {
		for _, d := range a.spectra {
			d.Velocity = vel
		}
	}

	f := &File{
		Header:    a.header,
		Directory: a.entries,
		Metadata: Metadata{
			Sample:    sample,
			Reference: param.Merge(0, a.refParams...),
			Blocks:    a.paramBlocks,
			labels:    a.cfg.labels,
		},
		Spectra:     claimDataKeys(a.spectra),
		Series:      claimSeriesKeys(a.series),
		Log:         a.log,
		Reports:     a.reports,
		Diagnostics: a.diags,
		Skipped:     a.skipped,
		Fingerprint: a.fingerprint,
	}
	a.st = stateDone

	return f, nil
}

// pairStatuses ports the pairing sequence: type matches isolate singular
// pairs; duplicate candidates are narrowed by the declared y extrema,
// then by removing statuses a singular pair already claims; pairs whose
// data cannot cover the declared point count are dropped; the survivors
// sort by descending data start so the last-stored spectrum claims its
// key first.
func (a *Assembler) pairStatuses() ([]pair, []*dataEntry) {
	type candidate struct {
		data    *dataEntry
		matches []*statusBlock
	}

	var (
		singles []pair
		multis  []candidate
	)
	for _, d := range a.datas {
		var matches []*statusBlock
		for _, s := range a.statuses {
			if d.entry.Type.StatusMatches(s.entry.Type) {
				matches = append(matches, s)
			}
		}
		switch len(matches) {
		case 0:
		case 1:
			singles = append(singles, pair{d, matches[0]})
		default:
			multis = append(multis, candidate{d, matches})
		}
	}

	var still []candidate
	for _, c := range multis {
		var kept []*statusBlock
		for _, s := range c.matches {
			if a.valMatch(c.data, s) {
				kept = append(kept, s)
			}
		}
		switch len(kept) {
		case 0:
		case 1:
			singles = append(singles, pair{c.data, kept[0]})
		default:
			still = append(still, candidate{c.data, kept})
		}
	}

	claimed := make(map[int32]bool, len(singles))
	for _, p := range singles {
		claimed[p.status.entry.Start] = true
	}
	for _, c := range still {
		var kept []*statusBlock
		for _, s := range c.matches {
			if !claimed[s.entry.Start] {
				kept = append(kept, s)
			}
		}
		// anything still ambiguous stays unpaired
		if len(kept) == 1 {
			singles = append(singles, pair{c.data, kept[0]})
		}
	}

	valid := singles[:0]
	for _, p := range singles {
		if a.validPair(p) {
			valid = append(valid, p)
		}
	}
	singles = valid

	slices.SortStableFunc(singles, func(x, y pair) int {
		return cmp.Compare(y.data.entry.Start, x.data.entry.Start)
	})

	paired := make(map[*dataEntry]bool, len(singles))
	for _, p := range singles {
		paired[p.data] = true
	}
	var unpaired []*dataEntry
	for _, d := range a.datas {
		if !paired[d] {
			unpaired = append(unpaired, d)
		}
	}

	return singles, unpaired
}

// samplesFor decodes the entry's samples with the width the candidate
// status implies, caching per width.
func (a *Assembler) samplesFor(d *dataEntry, status *param.Block) []float64 {
	dpf := statusInt(status, "DPF", dpfFloat32)
	wide := inferWide(status, d.entry, d.entry.Type.IsCompactData())

	k := widthKey{dpf: dpf, wide: wide}
	if s, ok := d.cache[k]; ok {
		return s
	}

	s, err := rawSamples(a.cur, d.entry, dpf, wide)
	if err != nil {
		s = nil
	}
	if d.cache == nil {
		d.cache = make(map[widthKey][]float64, 1)
	}
	d.cache[k] = s

	return s
}

// valMatch reports whether the samples scaled by the candidate's CSF hit
// exactly the MNY/MXY extrema the candidate declares. A missing parameter
// cannot rule a candidate out; only a definite mismatch does. Series
// blocks are never ruled out here.
func (a *Assembler) valMatch(d *dataEntry, s *statusBlock) bool {
	if d.entry.Type.IsDataSeries() {
		return true
	}

	npt := statusInt(s.block, "NPT", 0)
	if npt <= 0 {
		return true
	}
	samples := a.samplesFor(d, s.block)
	if len(samples) < npt {
		return false
	}

	csf, ok := s.block.Numeric("CSF")
	if !ok {
		return true
	}
	mny, okMin := s.block.Numeric("MNY")
	mxy, okMax := s.block.Numeric("MXY")
	if !okMin || !okMax {
		return true
	}

	y := append([]float64(nil), samples[:npt]...)
	if csf != 1 {
		floats.Scale(csf, y)
	}

	return floats.Min(y) == mny && floats.Max(y) == mxy
}

// validPair rejects a pair whose data block is shorter than the point
// count its status declares.
func (a *Assembler) validPair(p pair) bool {
	if p.data.entry.Type.IsDataSeries() {
		return true
	}

	npt := statusInt(p.status.block, "NPT", 0)
	if npt <= 0 {
		return true
	}

	return len(a.samplesFor(p.data, p.status.block)) >= npt
}

// claimDataKeys assigns map keys in claim order; a taken key gains a
// numeric suffix instead of displacing the earlier claim.
func claimDataKeys(list []*Data) map[string]*Data {
	out := make(map[string]*Data, len(list))
	for _, d := range list {
		d.Key = claimKey(d.Key, func(k string) bool { _, taken := out[k]; return taken })
		out[d.Key] = d
	}

	return out
}

func claimSeriesKeys(list []*Series) map[string]*Series {
	out := make(map[string]*Series, len(list))
	for _, s := range list {
		s.Key = claimKey(s.Key, func(k string) bool { _, taken := out[k]; return taken })
		out[s.Key] = s
	}

	return out
}

func claimKey(key string, taken func(string) bool) string {
	if !taken(key) {
		return key
	}
	for n := 1; ; n++ {
		next := key + "_" + strconv.Itoa(n)
		if !taken(next) {
			return next
		}
	}
}

// resolveVelocity reads the scanner velocity from the merged sample
// parameters. Some firmware revisions write VEL as an enum string.
func resolveVelocity(sample *param.Block) float64 {
	if v, ok := sample.Numeric("VEL"); ok {
		return v
	}
	if s, ok := sample.Str("VEL"); ok {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return v
		}
	}

	return 0
}
