package ansi

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRender(t *testing.T) {
	img := solid(40, 60, color.NRGBA{R: 200, G: 30, B: 30, A: 255})

	plain := Render(img, 4, 3, false)
	assert.Equal(t, "▀▀▀▀\n▀▀▀▀\n▀▀▀▀\n", plain)

	colored := Render(img, 4, 3, true)
	assert.Contains(t, colored, "\x1b[38;2;")
	assert.Contains(t, colored, "\x1b[48;2;")
	assert.Equal(t, plain, Strip(colored))

	assert.Empty(t, Render(img, 0, 3, true))
}

func TestRender_OffsetBounds(t *testing.T) {
	base := solid(20, 20, color.White)
	sub := base.(*image.NRGBA).SubImage(image.Rect(10, 10, 20, 20))

	out := Render(sub, 2, 2, false)
	assert.Equal(t, "▀▀\n▀▀\n", out)
}

func TestAverageColor(t *testing.T) {
	avg := averageColor(colorful.Color{R: 1}, colorful.Color{B: 1})
	assert.InDelta(t, 0.5, avg.R, 1e-9)
	assert.InDelta(t, 0, avg.G, 1e-9)
	assert.InDelta(t, 0.5, avg.B, 1e-9)
}

func TestColorAt_OutsideIsBlack(t *testing.T) {
	img := solid(2, 2, color.White)
	assert.Equal(t, colorful.Color{}, colorAt(img, 5, 5))
	assert.NotEqual(t, colorful.Color{}, colorAt(img, 1, 1))
}

func TestStrip(t *testing.T) {
	assert.Equal(t, "▀ab", Strip("\x1b[38;2;1;2;3m\x1b[48;2;4;5;6m▀\x1b[0mab"))
	assert.Equal(t, 3, VisibleWidth("\x1b[31mКуб\x1b[0m"))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "empty", text: "  ", width: 20, want: []string{""}},
		{name: "fits", text: "short text", width: 20, want: []string{"short text"}},
		{
			name:  "cyrillic counted by rune",
			text:  "Гости будут довольны, но бюджет",
			width: 12,
			want:  []string{"Гости будут", "довольны, но", "бюджет"},
		},
		{name: "narrow width falls back", text: strings.Repeat("a ", 30), width: 3, want: []string{strings.TrimSpace(strings.Repeat("a ", 20)), strings.TrimSpace(strings.Repeat("a ", 10))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width))
		})
	}
}

func TestSideBySide(t *testing.T) {
	var buf bytes.Buffer
	art := "\x1b[31m▀▀\x1b[0m\n▀▀\n▀▀\n"

	require.NoError(t, SideBySide(&buf, art, []string{"Card", "Meaning"}, 3))

	assert.Equal(t, "  \x1b[31m▀▀\x1b[0m   Card\n  ▀▀   Meaning\n  ▀▀\n", buf.String())
}

func TestSideBySide_TextOnly(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, SideBySide(&buf, "", []string{"one", "two"}, 4))

	assert.Equal(t, "  one\n  two\n", buf.String())
}
