package asset

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate180(t *testing.T) {
	src := testImage()
	rotated := Rotate180(src)

	require.Equal(t, image.Rect(0, 0, 3, 2), rotated.Bounds())
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, src.NRGBAAt(x, y), rotated.NRGBAAt(2-x, 1-y), "pixel %d,%d", x, y)
		}
	}
}

func TestRotate180_RoundTrip(t *testing.T) {
	src := testImage()

	twice := Rotate180(Rotate180(src))

	assert.Equal(t, src.Bounds(), twice.Bounds())
	assert.Equal(t, src.Pix, twice.Pix)
}

func TestRotate180_OffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 9, 6))
	src.Set(5, 5, color.RGBA{R: 255, A: 255})
	src.Set(8, 5, color.RGBA{B: 255, A: 255})

	rotated := Rotate180(src)

	require.Equal(t, image.Rect(0, 0, 4, 1), rotated.Bounds())
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, rotated.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, rotated.NRGBAAt(3, 0))
}

func TestTransform_RoundTrip(t *testing.T) {
	src := testImage()

	once, err := Transform(encodePNG(t, src), true)
	require.NoError(t, err)
	twice, err := Transform(once, true)
	require.NoError(t, err)

	img := decodePNG(t, twice)
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, src.NRGBAAt(x, y), nrgbaAt(img, x, y))
		}
	}
}

func TestTransform_InvalidData(t *testing.T) {
	_, err := Transform([]byte("not an image"), false)
	require.Error(t, err)
}
