package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Temutjin2k/bike-sharing-dashboard/internal/domain/types"
)

// Placeholder draws an empty panel with the chart title and a notice. It is
// served instead of a chart when there is nothing to plot.
func (r *Renderer) Placeholder(title, notice string, format types.ImageFormat) ([]byte, error) {
	switch format {
	case types.FormatPNG, "":
		return r.placeholderPNG(title, notice)
	case types.FormatSVG:
		return r.placeholderSVG(title, notice)
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidFormat, format)
	}
}

func (r *Renderer) placeholderPNG(title, notice string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()

	drawCentered(img, face, title, r.height/2-lineHeight, color.RGBA{R: 51, G: 51, B: 51, A: 255})
	drawCentered(img, face, notice, r.height/2+lineHeight, color.RGBA{R: 128, G: 128, B: 128, A: 255})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}

func drawCentered(dst draw.Image, face font.Face, text string, y int, col color.Color) {
	if text == "" {
		return
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face}
	w := d.MeasureString(text).Ceil()
	x := max(0, (dst.Bounds().Dx()-w)/2)
	d.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	d.DrawString(text)
}

func (r *Renderer) placeholderSVG(title, notice string) ([]byte, error) {
	rr, err := chart.SVG(r.width, r.height)
	if err != nil {
		return nil, err
	}
	f, err := chart.GetDefaultFont()
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	rr.SetFillColor(drawing.ColorWhite)
	rr.SetStrokeColor(drawing.ColorWhite)
	rr.MoveTo(0, 0)
	rr.LineTo(r.width, 0)
	rr.LineTo(r.width, r.height)
	rr.LineTo(0, r.height)
	rr.Close()
	rr.FillStroke()

	rr.SetFont(f)
	for i, line := range []struct {
		text string
		size float64
		col  drawing.Color
	}{
		{title, 14, drawing.ColorFromHex("333333")},
		{notice, 12, drawing.ColorFromHex("808080")},
	} {
		if line.text == "" {
			continue
		}
		rr.SetFontSize(line.size)
		rr.SetFontColor(line.col)
		box := rr.MeasureText(line.text)
		rr.Text(line.text, (r.width-box.Width())/2, r.height/2+i*24)
	}

	var buf bytes.Buffer
	if err := rr.Save(&buf); err != nil {
		return nil, fmt.Errorf("encode placeholder: %w", err)
	}
	return buf.Bytes(), nil
}
