package asset

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngFile(t *testing.T, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	p := filepath.Join(t.TempDir(), "bike.png")
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o644))
	return p
}

func TestImageLoader_ScalesToWidth(t *testing.T) {
	res := NewImageLoader(pngFile(t, 400, 200), 100).Load(context.Background())

	require.True(t, res.OK())
	assert.Empty(t, res.Warning)
	assert.Equal(t, "image/png", res.ContentType)
	assert.Equal(t, 100, res.Width)
	assert.Equal(t, 50, res.Height)

	decoded, err := png.Decode(bytes.NewReader(res.Image))
	require.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
}

func TestImageLoader_KeepsSmallImage(t *testing.T) {
	res := NewImageLoader(pngFile(t, 80, 60), 300).Load(context.Background())

	require.True(t, res.OK())
	assert.Equal(t, 80, res.Width)
	assert.Equal(t, 60, res.Height)
}

func TestImageLoader_Missing(t *testing.T) {
	res := NewImageLoader(filepath.Join(t.TempDir(), "bike.png"), 300).Load(context.Background())

	assert.False(t, res.OK())
	assert.Equal(t, WarningImage, res.Warning)
	assert.Contains(t, res.Detail, "no such file")
	assert.Empty(t, res.Image)
}

func TestImageLoader_Undecodable(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bike.png")
	require.NoError(t, os.WriteFile(p, []byte("not an image"), 0o644))

	res := NewImageLoader(p, 300).Load(context.Background())
	assert.False(t, res.OK())
	assert.Equal(t, WarningImage, res.Warning)
	assert.Contains(t, res.Detail, "decode image")
	assert.NotContains(t, res.Detail, "no such file")
}

func TestImageLoader_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewImageLoader(pngFile(t, 10, 10), 300).Load(ctx)
	assert.False(t, res.OK())
	assert.Equal(t, context.Canceled.Error(), res.Detail)
}
