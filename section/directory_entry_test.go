package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ftirkit/opus/errs"
	"github.com/ftirkit/opus/format"
)

func TestDirectoryEntry_RoundTrip(t *testing.T) {
	original := DirectoryEntry{
		Type:      MakeBlockType(format.FormAmplitude, format.ChannelSample, 0, int(format.DataSpectrum), 0, 0),
		SizeWords: 512,
		Start:     2048,
	}

	data := original.Bytes()
	require.Len(t, data, DirectoryEntrySize)

	parsed, err := ParseDirectoryEntry(data)

	require.NoError(t, err)
	require.Equal(t, original, parsed)
	require.Equal(t, 2048, int(parsed.Start))
	require.Equal(t, 512*4, parsed.Length())
	require.Equal(t, 2048+512*4, parsed.End())
}

func TestDirectoryEntry_ParseTruncated(t *testing.T) {
	var e DirectoryEntry
	err := e.Parse(make([]byte, DirectoryEntrySize-1))

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTruncatedRead)
}

func TestDirectoryEntry_Validate(t *testing.T) {
	const fileSize = 4096

	tests := []struct {
		name      string
		entry     DirectoryEntry
		wantValid bool
	}{
		{"well formed", DirectoryEntry{SizeWords: 16, Start: 512}, true},
		{"ends exactly at file size", DirectoryEntry{SizeWords: 16, Start: fileSize - 64}, true},
		{"zero length", DirectoryEntry{SizeWords: 0, Start: 512}, false},
		{"negative length", DirectoryEntry{SizeWords: -4, Start: 512}, false},
		{"starts inside header", DirectoryEntry{SizeWords: 16, Start: HeaderSize - 1}, false},
		{"extends past file end", DirectoryEntry{SizeWords: 16, Start: fileSize - 63}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate(fileSize)
			if tt.wantValid {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInvalidDirectoryEntry)
		})
	}
}
