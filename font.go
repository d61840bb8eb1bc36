package trellis

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TTFFont wraps Ebitengine's text/v2 for TrueType measurement and rendering.
// It satisfies Font, so it can serve as the UI's measurer, and TextDrawer
// produces the matching draw function for UI.SetTextDrawer so labels render
// with the same face they measure with.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("trellis: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	w, h := text.Measure(s, f.face, f.lh)
	return w, h
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 use.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// TextDrawer returns a TextDrawFunc that renders through text/v2 with this
// face. Install it with UI.SetTextDrawer.
func (f *TTFFont) TextDrawer() TextDrawFunc {
	return func(dst *ebiten.Image, content string, x, y, scale float64, tint Color) {
		op := &text.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		op.ColorScale.Scale(
			float32(tint.R*tint.A),
			float32(tint.G*tint.A),
			float32(tint.B*tint.A),
			float32(tint.A),
		)
		op.LineSpacing = f.lh
		text.Draw(dst, content, f.face, op)
	}
}
