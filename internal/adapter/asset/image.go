package asset

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"

	// decoders beyond png for the sidebar image
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/image/draw"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/models"
)

// WarningImage is shown instead of the sidebar image when it cannot be loaded.
const WarningImage = "Could not load bike image"

// ImageLoader reads a decorative image and scales it to a fixed width.
type ImageLoader struct {
	path  string
	width int
}

func NewImageLoader(path string, width int) *ImageLoader {
	return &ImageLoader{path: path, width: width}
}

// Load never fails: problems are reported through the result's warning.
func (l *ImageLoader) Load(ctx context.Context) models.AssetResult {
	if err := ctx.Err(); err != nil {
		return models.AssetWarning(WarningImage, err.Error())
	}

	raw, err := os.ReadFile(l.path)
	if err != nil {
		return models.AssetWarning(WarningImage, err.Error())
	}

	img, err := Scale(raw, l.width)
	if err != nil {
		return models.AssetWarning(WarningImage, fmt.Sprintf("%s: %v", l.path, err))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return models.AssetWarning(WarningImage, fmt.Sprintf("encode %s: %v", l.path, err))
	}

	b := img.Bounds()
	return models.AssetOK(buf.Bytes(), "image/png", b.Dx(), b.Dy())
}

// Scale decodes raw and resizes it to width, keeping the aspect ratio. A
// non-positive width or an image already narrower keeps the original size.
func Scale(raw []byte, width int) (image.Image, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return nil, fmt.Errorf("decode image: empty bounds %v", sb)
	}
	if width <= 0 || sb.Dx() <= width {
		return src, nil
	}

	height := max(1, sb.Dy()*width/sb.Dx())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, sb, draw.Over, nil)

	return dst, nil
}
