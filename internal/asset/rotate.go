package asset

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/webp"
)

// Transform decodes an image, rotates it 180° if reversed is set and
// encodes the result as PNG.
func Transform(data []byte, reversed bool) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if reversed {
		img = Rotate180(img)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// Rotate180 returns src turned upside down. The result has the same width
// and height as src with its origin at (0, 0).
func Rotate180(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	// Pix is contiguous for a fresh image, so a 180° turn reverses the
	// pixel order
	pix := dst.Pix
	for i, j := 0, len(pix)-4; i < j; i, j = i+4, j-4 {
		pix[i], pix[j] = pix[j], pix[i]
		pix[i+1], pix[j+1] = pix[j+1], pix[i+1]
		pix[i+2], pix[j+2] = pix[j+2], pix[i+2]
		pix[i+3], pix[j+3] = pix[j+3], pix[i+3]
	}
	return dst
}
