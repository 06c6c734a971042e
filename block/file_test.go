package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftirkit/opus/format"
	"github.com/ftirkit/opus/section"
)

func TestFile_WellKnownAccessors(t *testing.T) {
	dataType := func(ch format.Channel, kind format.DataKind) section.BlockType {
		return section.MakeBlockType(format.FormAmplitude, ch, format.ParamNone,
			int(kind), format.DerivativeNone, format.ExtensionNone)
	}
	statusType := func(ch format.Channel, kind format.DataKind) section.BlockType {
		return section.MakeBlockType(format.FormAmplitude, ch, format.ParamDataStatus,
			int(kind), format.DerivativeNone, format.ExtensionNone)
	}

	fix := &opusFixture{}
	kinds := []struct {
		ch   format.Channel
		kind format.DataKind
		peak float32
	}{
		{format.ChannelSample, format.DataSpectrum, 10},
		{format.ChannelReference, format.DataSpectrum, 20},
		{format.ChannelRatioed, format.DataAbsorbance, 30},
		{format.ChannelRatioed, format.DataTransmittance, 40},
		{format.ChannelSample, format.DataInterferogram, 50},
		{format.ChannelReference, format.DataInterferogram, 60},
	}
	for _, k := range kinds {
		fix.add(dataType(k.ch, k.kind), float32Payload(k.peak, 1)).
			add(statusType(k.ch, k.kind), axisStatus(1, 2, 4000, 400))
	}

	f, err := Parse(fix.bytes())
	require.NoError(t, err)
	require.Empty(t, f.Diagnostics)

	require.Equal(t, []string{"a", "igrf", "igsm", "rf", "sm", "t"}, f.DataKeys())
	require.Empty(t, f.SeriesKeys())

	check := func(d *Data, ok bool, peak float64) {
		t.Helper()
		require.True(t, ok)
		require.Equal(t, peak, d.Samples[0])
	}

	d, ok := f.Sample()
	check(d, ok, 10)
	d, ok = f.Reference()
	check(d, ok, 20)
	d, ok = f.Absorbance()
	check(d, ok, 30)
	d, ok = f.Transmittance()
	check(d, ok, 40)
	d, ok = f.SampleInterferogram()
	check(d, ok, 50)
	d, ok = f.ReferenceInterferogram()
	check(d, ok, 60)

	_, ok = f.Data("km")
	assert.False(t, ok)
}

func TestFile_KeyListings(t *testing.T) {
	f := &File{
		Spectra: map[string]*Data{"t": {}, "a": {}, "sm": {}},
		Series:  map[string]*Series{"tr": {}, "gcig": {}},
	}

	require.Equal(t, []string{"a", "sm", "t"}, f.DataKeys())
	require.Equal(t, []string{"gcig", "tr"}, f.SeriesKeys())
}

func TestFile_Timestamp_NoneRecorded(t *testing.T) {
	buf := (&opusFixture{}).
		add(typeSampleData, float32Payload(1, 2)).
		add(typeSampleStatus, axisStatus(1, 2, 4000, 400)).
		bytes()

	f, err := Parse(buf)
	require.NoError(t, err)

	_, ok := f.Timestamp()
	require.False(t, ok)
}
