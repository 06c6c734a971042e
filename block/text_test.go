package block

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLog(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want []string
	}{
		{
			name: "nul separated lines",
			raw:  []byte("Measurement started\x00Measurement done\x00"),
			want: []string{"Measurement started", "Measurement done"},
		},
		{
			name: "empty runs dropped",
			raw:  []byte("\x00\x00one\x00\x00two\x00\x00\x00"),
			want: []string{"one", "two"},
		},
		{
			name: "trailing spaces trimmed",
			raw:  []byte("padded entry   \x00"),
			want: []string{"padded entry"},
		},
		{
			name: "latin-1 fallback",
			raw:  []byte{'2', '5', 0xB0, 'C', 0x00, 0xB5, 'm', 0x00},
			want: []string{"25°C", "µm"},
		},
		{
			name: "latin-1 trailing spaces trimmed",
			raw:  []byte{0xB0, 'C', ' ', ' ', 0x00},
			want: []string{"°C"},
		},
		{
			name: "space-only run dropped",
			raw:  []byte("   \x00kept\x00"),
			want: []string{"kept"},
		},
		{
			name: "utf-8 kept verbatim",
			raw:  []byte("25°C\x00"),
			want: []string{"25°C"},
		},
		{
			name: "empty block",
			raw:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseLog(tt.raw))
		})
	}
}
