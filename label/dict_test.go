package label

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	d := Default()

	require.Greater(t, d.Len(), 90)
	require.Equal(t, "Beamsplitter", d.Label("BMS"))
	require.Equal(t, "Sample Name", d.Label("snm"))
	require.Equal(t, "Frequency of First Point", d.Label("Fxv"))
}

func TestDictionary_Lookup(t *testing.T) {
	d := New(map[string]string{"abc": "Alphabet", "XYZ": "Coordinates"})

	label, ok := d.Lookup("ABC")
	require.True(t, ok)
	require.Equal(t, "Alphabet", label)

	label, ok = d.Lookup("xyz")
	require.True(t, ok)
	require.Equal(t, "Coordinates", label)

	_, ok = d.Lookup("QQQ")
	require.False(t, ok)
}

func TestDictionary_LabelFallback(t *testing.T) {
	d := New(nil)

	require.Equal(t, "QQQ", d.Label("qqq"))
	require.Equal(t, "BMS", d.Label("bms"))
}

func TestNew_CopiesTable(t *testing.T) {
	src := map[string]string{"AAA": "first"}
	d := New(src)

	src["AAA"] = "mutated"
	src["BBB"] = "added"

	require.Equal(t, "first", d.Label("AAA"))
	_, ok := d.Lookup("BBB")
	require.False(t, ok)
}

func TestDictionary_Merged(t *testing.T) {
	base := Default()
	d := base.Merged(map[string]string{
		"bms": "Custom Beamsplitter",
		"ZZZ": "Vendor Extension",
	})

	require.Equal(t, "Custom Beamsplitter", d.Label("BMS"))
	require.Equal(t, "Vendor Extension", d.Label("zzz"))
	require.Equal(t, "Sample Name", d.Label("SNM"))

	// The base dictionary is untouched.
	require.Equal(t, "Beamsplitter", base.Label("BMS"))
	_, ok := base.Lookup("ZZZ")
	require.False(t, ok)
}
