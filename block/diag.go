package block

import (
	"fmt"

	"github.com/ftirkit/opus/section"
)

// Stage identifies where in the decode pipeline a diagnostic was recorded.
type Stage uint8

const (
	StageDirectory Stage = iota + 1 // directory table walk
	StageScan                       // per-block decode
	StageAxis                       // axis reconciliation
	StageSeries                     // series assembly
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageDirectory:
		return "directory"
	case StageScan:
		return "scan"
	case StageAxis:
		return "axis"
	case StageSeries:
		return "series"
	default:
		return "unknown"
	}
}

// Diagnostic records one recovered decode problem: a skipped directory
// slot, a partially decoded block, an unresolved axis. Diagnostics are
// data, not failures; they ride on the returned File so callers can audit
// what a damaged file did and did not yield.
type Diagnostic struct {
	Stage  Stage
	Type   section.BlockType // zero when no block type applies
	Offset int               // byte offset of the subject, -1 when unknown
	Err    error
}

// String renders the diagnostic for logs and reports.
func (d Diagnostic) String() string {
	if d.Offset < 0 {
		return fmt.Sprintf("%s: %v", d.Stage, d.Err)
	}

	return fmt.Sprintf("%s: offset %d: %v", d.Stage, d.Offset, d.Err)
}
