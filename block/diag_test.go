package block

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_String(t *testing.T) {
	assert.Equal(t, "directory", StageDirectory.String())
	assert.Equal(t, "scan", StageScan.String())
	assert.Equal(t, "axis", StageAxis.String())
	assert.Equal(t, "series", StageSeries.String())
	assert.Equal(t, "unknown", Stage(99).String())
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Stage: StageScan, Offset: 504, Err: errors.New("bad block")}
	require.Equal(t, "scan: offset 504: bad block", d.String())

	d = Diagnostic{Stage: StageDirectory, Offset: -1, Err: errors.New("bad table")}
	require.Equal(t, "directory: bad table", d.String())
}
