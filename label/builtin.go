package label

// builtinLabels is the built-in OPUS parameter vocabulary. It covers the
// parameters written by mainstream OPUS versions; instrument-specific
// additions come in through Merged.
var builtinLabels = map[string]string{
	// Data status
	"DPF": "Data Point Format",
	"NPT": "Number of Data Points",
	"FXV": "Frequency of First Point",
	"LXV": "Frequency of Last Point",
	"CSF": "Y Scaling Factor",
	"MXY": "Y Maximum",
	"MNY": "Y Minimum",
	"DXU": "X Units",
	"DAT": "Date of Measurement",
	"TIM": "Time of Measurement",

	// Optical
	"ACC": "Accessory",
	"APR": "ATR Pressure",
	"APT": "Aperture Setting",
	"BMS": "Beamsplitter",
	"CHN": "Measurement Channel",
	"DTC": "Detector",
	"HPF": "High Pass Filter",
	"LPF": "Low Pass Filter",
	"LPV": "Variable Low Pass Filter (cm-1)",
	"OPF": "Optical Filter Setting",
	"PGN": "Preamplifier Gain",
	"PGR": "Reference Preamplifier Gain",
	"RCH": "Reference Measurement Channel",
	"RDX": "Extended Ready Check",
	"SRC": "Source",
	"VEL": "Scanner Velocity",
	"ADC": "External Analog Signals",
	"SON": "External Sync",

	// Fourier transform
	"APF": "Apodization Function",
	"HFQ": "End Frequency Limit for File",
	"LFQ": "Start Frequency Limit for File",
	"NLI": "Nonlinearity Correction",
	"PHR": "Phase Resolution",
	"PHZ": "Phase Correction Mode",
	"SPZ": "Stored Phase Mode",
	"ZFF": "Zero Filling Factor",

	// Acquisition
	"ADT": "Additional Data Treatment",
	"AQM": "Acquisition Mode",
	"CFE": "Low Intensity Power Mode with DTGS",
	"COR": "Correlation Test Mode",
	"DEL": "Delay Before Measurement",
	"DLY": "Stabilization Delay",
	"HFW": "Wanted High Freq Limit",
	"LFW": "Wanted Low Freq Limit",
	"NSS": "Number of Sample Scans",
	"NSR": "Number of Background Scans",
	"PLF": "Result Spectrum Type",
	"RES": "Resolution (cm-1)",
	"RGN": "Reference Signal Gain",
	"SGN": "Sample Signal Gain",
	"SOT": "Sample Scans or Time",
	"STR": "Scans or Time (Reference)",
	"TCL": "Command Line for Additional Data Treatment",
	"TDL": "To Do List",

	// Sample origin
	"BLD": "Building",
	"CNM": "Operator Name",
	"CPY": "Company",
	"DPM": "Department",
	"EXP": "Experiment",
	"LCT": "Location",
	"SFM": "Sample Form",
	"SNM": "Sample Name",
	"XPP": "Experiment Path",
	"IST": "Instrument Status",
	"CPG": "Character Encoding Code Page",
	"UID": "Universally Unique Identifier",

	// Instrument status
	"HFL": "High Folding Limit",
	"LFL": "Low Folding Limit",
	"LWN": "Laser Wavenumber",
	"ABP": "Absolute Peak Pos in Laser*2",
	"SSP": "Sample Spacing Divisor",
	"SSM": "Sample Spacing Multiplier",
	"ASG": "Actual Signal Gain",
	"AG2": "Actual Signal Gain Channel 2",
	"ARG": "Actual Reference Gain",
	"ASS": "Number of Sample Scans",
	"ARS": "Number of Reference Scans",
	"GFW": "Number of Good Forward Scans",
	"GBW": "Number of Good Backward Scans",
	"BFW": "Number of Bad Forward Scans",
	"BBW": "Number of Bad Backward Scans",
	"PKA": "Peak Amplitude",
	"PKL": "Peak Location",
	"PRA": "Backward Peak Amplitude",
	"PRL": "Backward Peak Location",
	"P2A": "Peak Amplitude Channel 2",
	"P2L": "Peak Location Channel 2",
	"P2R": "Backward Peak Amplitude Channel 2",
	"P2K": "Backward Peak Location Channel 2",
	"DAQ": "Data Acquisition Status",
	"HUM": "Relative Humidity Interferometer",
	"RSN": "Running Sample Number",
	"CRR": "Correlation Rejection Reason",
	"SRT": "Start Time (sec)",
	"DUR": "Duration (sec)",
	"TSC": "Scanner Temperature",
	"MVD": "Max Velocity Deviation",
	"PRS": "Pressure Interferometer (hPa)",
	"AN1": "Analog Signal 1",
	"AN2": "Analog Signal 2",
	"VSN": "Firmware Version",
	"SRN": "Instrument Serial Number",
	"CAM": "Coaddition Mode",
	"INS": "Instrument Type",
	"FOC": "Focal Length",
	"RDY": "Ready Check",
}
