package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamStartsWithCurrentValue(t *testing.T) {
	src := NewStaticSource("5")
	s := NewStream("width", src, ParseWidth)

	var got []Value[float32]
	s.Subscribe(func(v Value[float32]) { got = append(got, v) })
	require.Len(t, got, 1, "present value must arrive before Subscribe returns")
	assert.Equal(t, float32(5), got[0].V)

	src.Set("7")
	src.Set("9.5")
	assert.Equal(t, []Value[float32]{{V: 5}, {V: 7}, {V: 9.5}}, got)
}

func TestStreamLatestTracksChanges(t *testing.T) {
	src := NewStaticSource("#000")
	s := NewStream("color", src, ParseColor)

	c, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 0xff}, c)

	src.Set("red")
	c, err = s.Latest()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, c)

	s.Stop()
	src.Set("blue")
	c, _ = s.Latest()
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, c)
}

func TestStreamReportsParseError(t *testing.T) {
	src := NewStaticSource("wide")
	s := NewStream("width", src, ParseWidth)

	_, err := s.Latest()
	assert.ErrorIs(t, err, ErrInvalidWidth)

	var got []Value[float32]
	s.Subscribe(func(v Value[float32]) { got = append(got, v) })
	require.Len(t, got, 1)
	assert.ErrorIs(t, got[0].Err, ErrInvalidWidth)

	src.Set("3")
	w, err := s.Latest()
	require.NoError(t, err)
	assert.Equal(t, float32(3), w)
}

func TestParseWidth(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want float32
		ok   bool
	}{
		{"5", 5, true},
		{" 2.5 ", 2.5, true},
		{"100", 100, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"101", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"", 0, false},
		{"abc", 0, false},
	} {
		got, err := ParseWidth(tc.raw)
		if tc.ok {
			assert.NoError(t, err, tc.raw)
			assert.Equal(t, tc.want, got, tc.raw)
		} else {
			assert.ErrorIs(t, err, ErrInvalidWidth, tc.raw)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want color.NRGBA
	}{
		{"#000", color.NRGBA{A: 0xff}},
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#ABC", color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}},
		{"#1e90ff", color.NRGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}},
		{"Green", color.NRGBA{G: 0x80, A: 0xff}},
	} {
		got, err := ParseColor(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}

	for _, raw := range []string{"", "#12", "#12345", "#ggg", "notacolor"} {
		_, err := ParseColor(raw)
		assert.ErrorIs(t, err, ErrInvalidColor, raw)
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#1e90ff", FormatColor(color.NRGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}))
}

func TestLoadSettings(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)

	s, err = LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)

	path := filepath.Join(t.TempDir(), "board.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
width = 12
color = "#ff0000"
canvas_width = 640
snapshot_png = "out.png"
debug = true
`), 0o644))

	s, err = LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, float32(12), s.Width)
	assert.Equal(t, "#ff0000", s.Color)
	assert.Equal(t, 640, s.CanvasWidth)
	assert.Equal(t, 768, s.CanvasHeight)
	assert.Equal(t, "out.png", s.SnapshotPNG)
	assert.True(t, s.Debug)
}

func TestLoadSettingsRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`color = "mauve-ish"`), 0o644))
	_, err := LoadSettings(bad)
	assert.ErrorIs(t, err, ErrInvalidColor)

	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte(`width = [`), 0o644))
	_, err = LoadSettings(broken)
	assert.Error(t, err)
}
