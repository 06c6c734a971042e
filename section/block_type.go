package section

import (
	"strconv"
	"strings"

	"github.com/ftirkit/opus/format"
)

// BlockType is the packed 32-bit type code stored in a directory slot. Six
// fields share the word (see the bit layout constants in const.go); they
// are decoded here once and matched structurally downstream, never by
// re-inspecting raw bits at decode sites.
type BlockType uint32

// MakeBlockType packs the six fields into a type code. kindRaw is the raw
// data kind field including any multi-channel multiplier.
func MakeBlockType(form format.DataForm, ch format.Channel, pk format.ParamKind, kindRaw int, drv format.Derivative, ext format.Extension) BlockType {
	v := uint32(form) & FormMask
	v |= (uint32(ch) & ChannelMask) << ChannelShift
	v |= (uint32(pk) & ParamKindMask) << ParamKindShift
	v |= (uint32(kindRaw) & DataKindMask) << DataKindShift
	v |= (uint32(drv) & DerivMask) << DerivShift
	v |= (uint32(ext) & ExtMask) << ExtShift

	return BlockType(v)
}

// Form returns the data form field (bits 0-1).
func (t BlockType) Form() format.DataForm {
	return format.DataForm(uint32(t) & FormMask)
}

// Channel returns the channel field (bits 2-3).
func (t BlockType) Channel() format.Channel {
	return format.Channel((uint32(t) >> ChannelShift) & ChannelMask)
}

// ParamKind returns the parameter kind field (bits 4-9).
func (t BlockType) ParamKind() format.ParamKind {
	return format.ParamKind((uint32(t) >> ParamKindShift) & ParamKindMask)
}

// DataKindRaw returns the raw data kind field (bits 10-16) including the
// multi-channel multiplier.
func (t BlockType) DataKindRaw() int {
	return int((uint32(t) >> DataKindShift) & DataKindMask)
}

// DataKind returns the base data kind with the multi-channel multiplier
// stripped.
func (t BlockType) DataKind() format.DataKind {
	return format.DataKind(t.DataKindRaw() % DataKindChannelStep)
}

// ExtraChannels returns the number of acquisition channels beyond the
// first encoded in the data kind field.
func (t BlockType) ExtraChannels() int {
	return t.DataKindRaw() / DataKindChannelStep
}

// Derivative returns the derivative order field (bits 17-18).
func (t BlockType) Derivative() format.Derivative {
	return format.Derivative((uint32(t) >> DerivShift) & DerivMask)
}

// Extension returns the extension field (bits 19-21).
func (t BlockType) Extension() format.Extension {
	return format.Extension((uint32(t) >> ExtShift) & ExtMask)
}

// onlyExtension reports whether every field except the extension is zero.
// Several special block categories (misc parameters, reports, the file
// log) are coded this way.
func (t BlockType) onlyExtension() bool {
	return uint32(t)&^(ExtMask<<ExtShift) == 0
}

// IsParameter reports whether the block is any parameter block, including
// data status and the extension-only misc parameter code.
func (t BlockType) IsParameter() bool {
	if t.ParamKind() > format.ParamNone {
		return true
	}

	return t.onlyExtension() && t.Extension() == format.ExtensionParameters
}

// IsDataStatus reports whether the block is a data status parameter block,
// the block that carries axis bounds, scaling and units for a data block.
func (t BlockType) IsDataStatus() bool {
	return t.ParamKind() == format.ParamDataStatus
}

// IsReferenceParam reports whether the block holds parameters of the
// reference measurement (data status excluded).
func (t BlockType) IsReferenceParam() bool {
	return t.ParamKind() > format.ParamDataStatus && t.Channel() == format.ChannelReference
}

// IsSampleParam reports whether the block holds parameters of the sample
// or result measurement (data status excluded).
func (t BlockType) IsSampleParam() bool {
	return t.IsParameter() && !t.IsDataStatus() && !t.IsReferenceParam()
}

// IsDirectory reports whether the block is the directory's own self-entry.
func (t BlockType) IsDirectory() bool {
	return t == MakeBlockType(0, 0, 0, int(format.DataDirectory), 0, 0)
}

// IsFileLog reports whether the block is the file log (history) block.
func (t BlockType) IsFileLog() bool {
	return t.onlyExtension() && t.Extension() == format.ExtensionLog
}

// IsReport reports whether the block is a test report block.
func (t BlockType) IsReport() bool {
	if t.onlyExtension() {
		switch t.Extension() {
		case format.ExtensionSeries, format.ExtensionReport, format.ExtensionCompact:
			return true
		}

		return false
	}

	return t.ParamKind() == format.ParamNone && t.hasDataKind() && t.Extension() == format.ExtensionLog
}

// hasDataKind reports whether the raw kind field selects actual data
// (directory self-entries are excluded).
func (t BlockType) hasDataKind() bool {
	raw := t.DataKindRaw()
	return raw != 0 && raw != int(format.DataDirectory)
}

// IsData reports whether the block is a 1-D numeric data block.
func (t BlockType) IsData() bool {
	if t.ParamKind() != format.ParamNone || !t.hasDataKind() {
		return false
	}

	switch t.Extension() {
	case format.ExtensionSeries, format.ExtensionLog:
		return false
	}

	return true
}

// IsDataSeries reports whether the block is a native data-series (3-D)
// block containing multiple spectra with per-plane metadata.
func (t BlockType) IsDataSeries() bool {
	return t.ParamKind() == format.ParamNone && t.hasDataKind() && t.Extension() == format.ExtensionSeries
}

// IsCompactData reports whether the block is a compact 1-D data block, in
// which metadata precedes the sample array.
func (t BlockType) IsCompactData() bool {
	return t.IsData() && t.Extension() == format.ExtensionCompact
}

// StatusMatches reports whether a data-status block of type s supplies the
// axis metadata for a data block of type t: every field except the
// parameter kind must agree.
func (t BlockType) StatusMatches(s BlockType) bool {
	if !s.IsDataStatus() {
		return false
	}

	mask := BlockType(ParamKindMask << ParamKindShift)

	return t&^mask == s&^mask
}

// DataKey returns the shorthand key under which this block's data is
// exposed: "sm" for the sample spectrum, "igrf" for the reference
// interferogram, "a" for absorbance and so on. Unknown kinds key as
// "_<kind>" so they stay addressable, multi-channel acquisitions append
// "_<n>ch" and compact storage appends "_c". Returns "" for non-data
// blocks.
func (t BlockType) DataKey() string {
	if !t.IsData() && !t.IsDataSeries() {
		return ""
	}

	var key string
	if abbr, ok := t.DataKind().Abbrev(); ok {
		key = abbr
	} else {
		key = "_" + strconv.Itoa(t.DataKindRaw())
	}

	switch t.Channel() {
	case format.ChannelSample:
		key += "sm"
	case format.ChannelReference:
		key += "rf"
	}

	if n := t.ExtraChannels(); n > 0 {
		key += "_" + strconv.Itoa(n+1) + "ch"
	}
	if t.Extension() == format.ExtensionCompact {
		key += "_c"
	}

	return key
}

// String returns a human-readable label assembled from the non-empty field
// labels in field order, e.g. "Sample Data Status Parameters" or "Ratioed
// Absorbance". An all-zero code reads "Undefined".
func (t BlockType) String() string {
	var parts []string

	if s := t.Form().String(); s != "" {
		parts = append(parts, s)
	}
	if s := t.Channel().String(); s != "" {
		parts = append(parts, s)
	}
	if s := t.ParamKind().String(); s != "" {
		parts = append(parts, s)
	}
	if kind := t.DataKind(); kind != format.DataNone {
		s := kind.String()
		if s == "" {
			s = "Unknown Data " + strconv.Itoa(t.DataKindRaw())
		}
		if n := t.ExtraChannels(); n > 0 {
			s += " " + strconv.Itoa(n+1) + "-Channel"
		}
		parts = append(parts, s)
	}
	if s := t.Derivative().String(); s != "" {
		parts = append(parts, s)
	}
	if s := t.Extension().String(); s != "" {
		parts = append(parts, s)
	}

	if len(parts) == 0 {
		return "Undefined"
	}

	return strings.Join(parts, " ")
}
