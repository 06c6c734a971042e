// Package format defines the decoded vocabulary of the OPUS block format:
// the six fields packed into a directory type code, the value kinds carried
// by parameter entries, and the x-axis units declared by data-status blocks.
//
// These types are produced by decoding a packed type code once (see the
// section package); downstream code matches on them structurally and never
// re-inspects raw bits.
package format

import "strings"

// DataForm identifies the numeric form of a data block (bits 0-1 of the
// packed type code).
type DataForm uint8

const (
	FormNone      DataForm = 0 // undefined or not applicable
	FormReal      DataForm = 1 // real part of complex data
	FormImag      DataForm = 2 // imaginary part of complex data
	FormAmplitude DataForm = 3 // amplitude
)

// String returns a human-readable name of the data form.
func (f DataForm) String() string {
	switch f {
	case FormReal:
		return "Real"
	case FormImag:
		return "Imaginary"
	case FormAmplitude:
		return "Amplitude"
	default:
		return ""
	}
}

// Channel identifies the acquisition channel of a block (bits 2-3).
type Channel uint8

const (
	ChannelNone      Channel = 0 // undefined or not applicable
	ChannelSample    Channel = 1 // sample measurement
	ChannelReference Channel = 2 // reference measurement
	ChannelRatioed   Channel = 3 // ratioed result (sample against reference)
)

// String returns a human-readable name of the channel.
func (c Channel) String() string {
	switch c {
	case ChannelSample:
		return "Sample"
	case ChannelReference:
		return "Reference"
	case ChannelRatioed:
		return "Ratioed"
	default:
		return ""
	}
}

// ParamKind identifies the category of a parameter block (bits 4-9).
// A non-zero ParamKind marks the block as a parameter block.
type ParamKind uint8

const (
	ParamNone             ParamKind = 0  // not a parameter block
	ParamDataStatus       ParamKind = 1  // data status (axis bounds, scaling, units)
	ParamInstrumentStatus ParamKind = 2  // instrument status
	ParamAcquisition      ParamKind = 3  // standard acquisition settings
	ParamFourierTransform ParamKind = 4  // Fourier transform settings
	ParamPlotDisplay      ParamKind = 5  // plot and display settings
	ParamOptical          ParamKind = 6  // optical bench settings
	ParamGC               ParamKind = 7  // gas chromatography settings
	ParamLibrarySearch    ParamKind = 8  // library search settings
	ParamCommunication    ParamKind = 9  // communication settings
	ParamSampleOrigin     ParamKind = 10 // sample origin description
)

// String returns a human-readable name of the parameter kind.
func (p ParamKind) String() string {
	switch p {
	case ParamDataStatus:
		return "Data Status Parameters"
	case ParamInstrumentStatus:
		return "Instrument Status Parameters"
	case ParamAcquisition:
		return "Acquisition Parameters"
	case ParamFourierTransform:
		return "Fourier Transform Parameters"
	case ParamPlotDisplay:
		return "Plot and Display Parameters"
	case ParamOptical:
		return "Optical Parameters"
	case ParamGC:
		return "GC Parameters"
	case ParamLibrarySearch:
		return "Library Search Parameters"
	case ParamCommunication:
		return "Communication Parameters"
	case ParamSampleOrigin:
		return "Sample Origin Parameters"
	default:
		return ""
	}
}

// DataKind identifies what a data block holds (bits 10-16, modulo the
// extra-channel multiplier; see section.BlockType.ExtraChannels).
type DataKind uint8

const (
	DataNone            DataKind = 0  // not a data block
	DataSpectrum        DataKind = 1  // single-channel spectrum
	DataInterferogram   DataKind = 2  // interferogram
	DataPhase           DataKind = 3  // phase spectrum
	DataAbsorbance      DataKind = 4  // absorbance
	DataTransmittance   DataKind = 5  // transmittance
	DataKubelkaMunk     DataKind = 6  // Kubelka-Munk
	DataTrace           DataKind = 7  // trace (intensity over time)
	DataGCInterferogram DataKind = 8  // GC series of interferograms
	DataGCSpectrum      DataKind = 9  // GC series of spectra
	DataRaman           DataKind = 10 // Raman spectrum
	DataEmission        DataKind = 11 // emission spectrum
	DataReflectance     DataKind = 12 // reflectance
	DataDirectory       DataKind = 13 // the directory block itself
	DataPower           DataKind = 14 // power spectrum
	DataLogReflectance  DataKind = 15 // log(reflectance)
	DataATR             DataKind = 16 // attenuated total reflectance
	DataPhotoacoustic   DataKind = 17 // photoacoustic
)

// String returns a human-readable name of the data kind.
func (d DataKind) String() string {
	switch d {
	case DataSpectrum:
		return "Spectrum"
	case DataInterferogram:
		return "Interferogram"
	case DataPhase:
		return "Phase"
	case DataAbsorbance:
		return "Absorbance"
	case DataTransmittance:
		return "Transmittance"
	case DataKubelkaMunk:
		return "Kubelka-Munk"
	case DataTrace:
		return "Trace"
	case DataGCInterferogram:
		return "GC Interferogram Series"
	case DataGCSpectrum:
		return "GC Spectrum Series"
	case DataRaman:
		return "Raman"
	case DataEmission:
		return "Emission"
	case DataReflectance:
		return "Reflectance"
	case DataDirectory:
		return "Directory"
	case DataPower:
		return "Power"
	case DataLogReflectance:
		return "Log Reflectance"
	case DataATR:
		return "ATR"
	case DataPhotoacoustic:
		return "Photoacoustic"
	default:
		return ""
	}
}

// Abbrev returns the shorthand used to build spectrum keys (e.g. "ig" for
// interferograms, "a" for absorbance). Kinds without an established
// shorthand return false and callers fall back to a numeric key.
func (d DataKind) Abbrev() (string, bool) {
	switch d {
	case DataSpectrum:
		return "", true // bare channel suffix: "sm", "rf"
	case DataInterferogram:
		return "ig", true
	case DataPhase:
		return "ph", true
	case DataAbsorbance:
		return "a", true
	case DataTransmittance:
		return "t", true
	case DataKubelkaMunk:
		return "km", true
	case DataTrace:
		return "tr", true
	case DataGCInterferogram:
		return "gcig", true
	case DataGCSpectrum:
		return "gcsc", true
	case DataRaman:
		return "ra", true
	case DataEmission:
		return "e", true
	case DataReflectance:
		return "r", true
	case DataDirectory:
		return "dir", true
	case DataPower:
		return "p", true
	case DataLogReflectance:
		return "logr", true
	case DataATR:
		return "atr", true
	case DataPhotoacoustic:
		return "pas", true
	default:
		return "", false
	}
}

// Derivative identifies the derivative order of a data block (bits 17-18).
type Derivative uint8

const (
	DerivativeNone     Derivative = 0 // underived data
	DerivativeFirst    Derivative = 1 // first derivative
	DerivativeSecond   Derivative = 2 // second derivative
	DerivativeExtended Derivative = 3 // higher-order derivative
)

// String returns a human-readable name of the derivative order.
func (d Derivative) String() string {
	switch d {
	case DerivativeFirst:
		return "1st Derivative"
	case DerivativeSecond:
		return "2nd Derivative"
	case DerivativeExtended:
		return "n-th Derivative"
	default:
		return ""
	}
}

// Extension carries the secondary type of a block (bits 19-21). Its meaning
// depends on the rest of the code: on a data block 2 marks a series and 4
// compact storage, while on an otherwise-zero code 1 marks a parameter
// block, 2-4 report variants and 5 the file log. The section package owns
// that contextual classification.
type Extension uint8

const (
	ExtensionNone       Extension = 0 // standard block
	ExtensionParameters Extension = 1 // miscellaneous parameter block
	ExtensionSeries     Extension = 2 // data series (3-D) payload
	ExtensionReport     Extension = 3 // report payload
	ExtensionCompact    Extension = 4 // compact data storage
	ExtensionLog        Extension = 5 // report or file-log context
)

// String returns a human-readable name of the extension code.
func (e Extension) String() string {
	switch e {
	case ExtensionParameters:
		return "Parameters"
	case ExtensionSeries:
		return "Data Series"
	case ExtensionReport:
		return "Report"
	case ExtensionCompact:
		return "Compact"
	case ExtensionLog:
		return "Log"
	default:
		return ""
	}
}

// ValueKind identifies the decoded type of a parameter entry value.
type ValueKind uint8

const (
	ValueInt32   ValueKind = 0 // 32-bit signed integer (wire tag 0)
	ValueFloat64 ValueKind = 1 // IEEE-754 double (wire tag 1)
	ValueString  ValueKind = 2 // latin-1 string (wire tag 2)
	ValueEnum    ValueKind = 3 // enumerated string (wire tag 3)
	ValueOpaque  ValueKind = 4 // unrecognized tag, raw payload preserved
)

// String returns a human-readable name of the value kind.
func (v ValueKind) String() string {
	switch v {
	case ValueInt32:
		return "Int32"
	case ValueFloat64:
		return "Float64"
	case ValueString:
		return "String"
	case ValueEnum:
		return "Enum"
	case ValueOpaque:
		return "Opaque"
	default:
		return ""
	}
}

// XUnit identifies the unit of a reconstructed x axis, declared by the DXU
// parameter of a data-status block.
type XUnit uint8

const (
	UnitNone          XUnit = 0 // no unit declared
	UnitWavenumber    XUnit = 1 // wavenumber, cm⁻¹ ("WN")
	UnitMicron        XUnit = 2 // wavelength, µm ("MI")
	UnitLogWavenumber XUnit = 3 // natural log of wavenumber ("LGW")
	UnitMinutes       XUnit = 4 // minutes, trace time axis ("MIN")
	UnitPoints        XUnit = 5 // raw point index ("PNT")
)

// ParseXUnit maps a DXU parameter value to its XUnit. Unknown codes map to
// UnitNone; the stored axis is still usable, only conversions are refused.
func ParseXUnit(code string) XUnit {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "WN":
		return UnitWavenumber
	case "MI":
		return UnitMicron
	case "LGW":
		return UnitLogWavenumber
	case "MIN":
		return UnitMinutes
	case "PNT":
		return UnitPoints
	default:
		return UnitNone
	}
}

// String returns the wire code of the unit ("WN", "MI", ...).
func (u XUnit) String() string {
	switch u {
	case UnitWavenumber:
		return "WN"
	case UnitMicron:
		return "MI"
	case UnitLogWavenumber:
		return "LGW"
	case UnitMinutes:
		return "MIN"
	case UnitPoints:
		return "PNT"
	default:
		return ""
	}
}

// Spectral reports whether x values in this unit describe an optical
// spectrum axis convertible between wavenumber and wavelength.
func (u XUnit) Spectral() bool {
	return u == UnitWavenumber || u == UnitMicron || u == UnitLogWavenumber
}
