package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ftirkit/opus/errs"
)

func TestFileHeader_Parse(t *testing.T) {
	t.Run("valid header", func(t *testing.T) {
		original := NewFileHeader(24, 16, 3)
		original.Version = 920.1234

		data := original.Bytes()
		require.Len(t, data, HeaderSize)

		parsed := &FileHeader{}
		err := parsed.Parse(data)

		require.NoError(t, err)
		require.Equal(t, original.Version, parsed.Version)
		require.Equal(t, original.DirectoryStart, parsed.DirectoryStart)
		require.Equal(t, original.DirectoryCapacity, parsed.DirectoryCapacity)
		require.Equal(t, original.BlockCount, parsed.BlockCount)
	})

	t.Run("too short", func(t *testing.T) {
		parsed := &FileHeader{}
		err := parsed.Parse([]byte{0x0A, 0x0A, 0xFE})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrHeaderTruncated)
	})

	t.Run("missing magic", func(t *testing.T) {
		data := NewFileHeader(24, 4, 1).Bytes()
		data[0] = 'M'
		data[1] = 'Z'

		parsed := &FileHeader{}
		err := parsed.Parse(data)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("extra data ignored", func(t *testing.T) {
		data := append(NewFileHeader(24, 4, 1).Bytes(), 1, 2, 3, 4)

		parsed, err := ParseFileHeader(data)

		require.NoError(t, err)
		require.Equal(t, int32(24), parsed.DirectoryStart)
	})
}

func TestIsOpusData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"valid magic", []byte{0x0A, 0x0A, 0xFE, 0xFE, 0xFF}, true},
		{"header bytes", NewFileHeader(24, 4, 0).Bytes(), true},
		{"wrong magic", []byte{0x0A, 0x0A, 0xFE, 0xFD}, false},
		{"text file", []byte("plain text"), false},
		{"short", []byte{0x0A, 0x0A}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsOpusData(tt.data))
		})
	}
}
