// Package ansi turns card images into half-block terminal art and lays the
// art out next to text.
package ansi

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// HalfBlock is the glyph for one character cell: the foreground paints the
// upper pixel pair and the background the lower one.
const HalfBlock = '▀'

// Render converts img to width x height character cells. With trueColor
// unset the cells are plain half blocks.
func Render(img image.Image, width, height int, trueColor bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	// two pixels per cell in each direction
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			upper := averageColor(colorAt(resized, x, y), colorAt(resized, x+1, y))
			lower := averageColor(colorAt(resized, x, y+1), colorAt(resized, x+1, y+1))
			buffer.WriteString(cell(HalfBlock, upper, lower, trueColor))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// colorAt returns the color at x, y relative to the image origin; black when
// outside the image
func colorAt(img image.Image, x, y int) colorful.Color {
	bounds := img.Bounds()
	x += bounds.Min.X
	y += bounds.Min.Y
	if x < bounds.Max.X && y < bounds.Max.Y {
		if c, ok := colorful.MakeColor(img.At(x, y)); ok {
			return c
		}
	}
	return colorful.Color{}
}

func averageColor(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}.Clamped()
}

func cell(char rune, fg, bg colorful.Color, trueColor bool) string {
	if !trueColor {
		return string(char)
	}
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// Strip removes ANSI escape sequences from s
func Strip(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// VisibleWidth is the number of runes s occupies on screen
func VisibleWidth(s string) int {
	return len([]rune(Strip(s)))
}

// Wrap breaks text into lines of at most width runes. Words longer than
// width get a line of their own.
func Wrap(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var result []string
	var line []rune
	for _, word := range words {
		w := []rune(word)
		switch {
		case len(line) == 0:
			line = w
		case len(line)+1+len(w) <= width:
			line = append(append(line, ' '), w...)
		default:
			result = append(result, string(line))
			line = w
		}
	}
	return append(result, string(line))
}

// SideBySide writes art on the left and info on the right, separated by
// spacing columns. Either side may be empty.
func SideBySide(w io.Writer, art string, info []string, spacing int) error {
	artLines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	if art == "" {
		artLines = nil
	}

	artWidth := 0
	for _, line := range artLines {
		artWidth = max(artWidth, VisibleWidth(line))
	}
	infoStart := artWidth + spacing
	if len(artLines) == 0 {
		infoStart = 0
	}

	for i := 0; i < max(len(artLines), len(info)); i++ {
		var b strings.Builder
		b.WriteString("  ")
		if i < len(artLines) {
			b.WriteString(artLines[i])
			b.WriteString(strings.Repeat(" ", infoStart-VisibleWidth(artLines[i])))
		} else {
			b.WriteString(strings.Repeat(" ", infoStart))
		}
		if i < len(info) {
			b.WriteString(info[i])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
