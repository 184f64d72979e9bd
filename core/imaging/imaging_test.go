package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestProcess_PNGDownscaled(t *testing.T) {
	res, err := Process(encodePNG(t, 400, 200), 100)
	require.NoError(t, err)
	assert.Equal(t, "image/png", res.MIME)
	assert.Equal(t, "png", res.Ext)

	cfg, err := png.DecodeConfig(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestProcess_JPEGWithinBounds(t *testing.T) {
	res, err := Process(encodeJPEG(t, 40, 80), 100)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", res.MIME)
	assert.Equal(t, "jpg", res.Ext)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 80, cfg.Height)
}

func TestProcess_Unsupported(t *testing.T) {
	_, err := Process([]byte("plain text, not an image"), 100)
	assert.ErrorContains(t, err, "unsupported image format")
}

func TestProcess_Corrupt(t *testing.T) {
	data := encodePNG(t, 10, 10)
	_, err := Process(data[:20], 100)
	assert.ErrorContains(t, err, "decoding image")
}
