package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRoundTrip(t *testing.T) {
	f := sampleFile(t)
	f.Preamble = []byte{0xEF, 0xBB}
	f.Notes = "Solved in pen"
	f.Reserved2 = []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	f.Sections = []Section{{Name: "GEXT", Data: []byte{0, 0, 0x80, 0, 0, 0, 0, 0, 0}}}
	require.NoError(t, Seal(f))

	b, err := Encode(f)
	require.NoError(t, err)
	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, f, got)

	again, err := Encode(got)
	require.NoError(t, err)
	assert.Equal(t, b, again)
}

func TestEncodeDefaults(t *testing.T) {
	f := sampleFile(t)
	f.Magic = ""
	f.Version = ""
	f.Reserved2 = nil

	b, err := Encode(f)
	require.NoError(t, err)
	assert.Equal(t, []byte("1.3\x00"), b[0x18:0x1C])

	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, "ACROSS&DOWN", got.Magic)
	assert.Equal(t, "1.3\x00", got.Version)
	assert.Equal(t, make([]byte, Reserved2Size), got.Reserved2)
}

func TestEncodeRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*File)
		want   error
	}{
		{"zero width", func(f *File) { f.Width = 0 }, ErrMalformedHeader},
		{"short puzzle", func(f *File) { f.Puzzle = "PUZ" }, ErrInvalidCharacterGrid},
		{"long state", func(f *File) { f.State += "-" }, ErrInvalidCharacterGrid},
		{"non-ascii grid", func(f *File) { f.Puzzle = "PUZO.OPOÉ" }, ErrInvalidCharacterGrid},
		{"nul in grid", func(f *File) { f.State = "----\x00----" }, ErrInvalidCharacterGrid},
		{"clue count", func(f *File) { f.Clues = f.Clues[:3] }, ErrUnencodable},
		{"version size", func(f *File) { f.Version = "1.3.0" }, ErrUnencodable},
		{"section name", func(f *File) { f.Sections = []Section{{Name: "GX"}} }, ErrUnencodable},
		{"title charset", func(f *File) { f.Title = "日本" }, ErrUnencodable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := sampleFile(t)
			tt.mutate(f)
			_, err := Encode(f)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTextCodec(t *testing.T) {
	assert.Equal(t, "plain", DecodeText([]byte("plain")))
	assert.Equal(t, "Ærø", DecodeText([]byte{0xC6, 'r', 0xF8}))

	raw, err := EncodeText("Ærø")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xC6, 'r', 0xF8}, raw)

	_, err = EncodeText("→")
	require.ErrorIs(t, err, ErrUnencodable)
}
