package asset

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testImage is a 3x2 image with a distinct colour per pixel
func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 80), G: uint8(y * 120), B: uint8(10 + x + y), A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	b := img.Bounds()
	return color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
}

func TestHTTPAcquirer_Acquire(t *testing.T) {
	src := testImage()
	body := encodePNG(t, src)

	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.URL.Query().Get("id")
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	a := NewHTTPAcquirer(srv.URL+"/uc", time.Second)

	t.Run("upright", func(t *testing.T) {
		data, err := a.Acquire(context.Background(), "id-fool", false)
		require.NoError(t, err)
		assert.Equal(t, "id-fool", gotID)

		img := decodePNG(t, data)
		assert.Equal(t, 3, img.Bounds().Dx())
		assert.Equal(t, 2, img.Bounds().Dy())
		assert.Equal(t, src.NRGBAAt(0, 0), nrgbaAt(img, 0, 0))
		assert.Equal(t, src.NRGBAAt(2, 1), nrgbaAt(img, 2, 1))
	})

	t.Run("reversed", func(t *testing.T) {
		data, err := a.Acquire(context.Background(), "id-fool", true)
		require.NoError(t, err)

		img := decodePNG(t, data)
		assert.Equal(t, 3, img.Bounds().Dx())
		assert.Equal(t, 2, img.Bounds().Dy())
		assert.Equal(t, src.NRGBAAt(2, 1), nrgbaAt(img, 0, 0))
		assert.Equal(t, src.NRGBAAt(0, 0), nrgbaAt(img, 2, 1))
	})
}

func TestHTTPAcquirer_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not an image",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>virus scan warning</html>"))
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(2 * time.Second):
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			a := NewHTTPAcquirer(srv.URL+"/uc", 100*time.Millisecond)
			_, err := a.Acquire(context.Background(), "id", false)
			require.ErrorIs(t, err, ErrAcquisition)
		})
	}
}

func TestHTTPAcquirer_DownloadLink(t *testing.T) {
	a := NewHTTPAcquirer("", 0)
	assert.Equal(t, "https://drive.google.com/uc?id=abc123", a.DownloadLink("abc123"))
}
