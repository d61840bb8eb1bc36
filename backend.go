package trellis

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FrameSlice describes a 9-slice border: the widths of the source image's
// non-stretching edges, in source pixels.
type FrameSlice struct {
	Left, Top, Right, Bottom float64
}

// IsZero reports whether the slice has no border (plain stretch).
func (s FrameSlice) IsZero() bool {
	return s == FrameSlice{}
}

// RenderBackend accepts the draw calls the widget tree produces: tinted
// quads, stretched or 9-sliced textures, text, and push/pop of offscreen
// render targets (used by clipping panels). The core computes rectangles
// and delegates everything else here.
type RenderBackend interface {
	// DrawQuad fills rect with a solid color.
	DrawQuad(rect Rect, tint Color)
	// DrawImage stretches img over rect with a color tint.
	DrawImage(img *ebiten.Image, rect Rect, tint Color)
	// DrawNineSlice draws img over rect keeping the border edges unscaled.
	DrawNineSlice(img *ebiten.Image, rect Rect, tint Color, border FrameSlice)
	// DrawText renders a string at pos. Rendering quality is backend-defined;
	// the core only requires that something legible appears.
	DrawText(text string, pos Vec2, scale float64, tint Color)
	// PushTarget redirects subsequent draws to an offscreen image. Draw
	// coordinates are translated by -origin so a screen-space rect lands at
	// the right buffer position.
	PushTarget(img *ebiten.Image, origin Vec2)
	// PopTarget restores the previous render target.
	PopTarget()
}

// TextDrawFunc renders text onto dst at a position already translated into
// the current render target's space. Install one via UI.SetTextDrawer to
// replace the debug-font fallback.
type TextDrawFunc func(dst *ebiten.Image, text string, x, y, scale float64, tint Color)

// targetEntry is one level of the render target stack.
type targetEntry struct {
	img    *ebiten.Image
	origin Vec2
}

// ebitenBackend is the built-in RenderBackend over an ebiten screen image.
type ebitenBackend struct {
	stack    []targetEntry
	textFunc TextDrawFunc
}

// reset points the backend at a fresh screen for this frame.
func (b *ebitenBackend) reset(screen *ebiten.Image) {
	b.stack = append(b.stack[:0], targetEntry{img: screen})
}

func (b *ebitenBackend) top() targetEntry {
	return b.stack[len(b.stack)-1]
}

func (b *ebitenBackend) PushTarget(img *ebiten.Image, origin Vec2) {
	b.stack = append(b.stack, targetEntry{img: img, origin: origin})
}

func (b *ebitenBackend) PopTarget() {
	if len(b.stack) <= 1 {
		panic("trellis: PopTarget without matching PushTarget")
	}
	b.stack[len(b.stack)-1] = targetEntry{}
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *ebitenBackend) DrawQuad(rect Rect, tint Color) {
	b.DrawImage(WhitePixel, rect, tint)
}

func (b *ebitenBackend) DrawImage(img *ebiten.Image, rect Rect, tint Color) {
	if rect.Width <= 0 || rect.Height <= 0 || tint.A <= 0 {
		return
	}
	t := b.top()
	bounds := img.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(rect.Width/iw, rect.Height/ih)
	op.GeoM.Translate(rect.X-t.origin.X, rect.Y-t.origin.Y)
	applyTint(&op, tint)
	t.img.DrawImage(img, &op)
}

// DrawNineSlice splits img into a 3x3 grid by the border widths and draws
// the corners unscaled, the edges stretched along one axis, and the center
// stretched along both.
func (b *ebitenBackend) DrawNineSlice(img *ebiten.Image, rect Rect, tint Color, border FrameSlice) {
	if border.IsZero() {
		b.DrawImage(img, rect, tint)
		return
	}
	bounds := img.Bounds()
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())

	srcX := [4]float64{0, border.Left, iw - border.Right, iw}
	srcY := [4]float64{0, border.Top, ih - border.Bottom, ih}
	dstX := [4]float64{rect.X, rect.X + border.Left, rect.Right() - border.Right, rect.Right()}
	dstY := [4]float64{rect.Y, rect.Y + border.Top, rect.Bottom() - border.Bottom, rect.Bottom()}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sw := srcX[col+1] - srcX[col]
			sh := srcY[row+1] - srcY[row]
			dw := dstX[col+1] - dstX[col]
			dh := dstY[row+1] - dstY[row]
			if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
				continue
			}
			sub := subImage(img, bounds.Min.X+int(srcX[col]), bounds.Min.Y+int(srcY[row]), int(sw), int(sh))
			b.DrawImage(sub, Rect{X: dstX[col], Y: dstY[row], Width: dw, Height: dh}, tint)
		}
	}
}

// DrawText renders via the installed TextDrawFunc, falling back to ebiten's
// debug font so a bare UI is still legible without a font pipeline.
func (b *ebitenBackend) DrawText(text string, pos Vec2, scale float64, tint Color) {
	t := b.top()
	x := pos.X - t.origin.X
	y := pos.Y - t.origin.Y
	if b.textFunc != nil {
		b.textFunc(t.img, text, x, y, scale, tint)
		return
	}
	ebitenutil.DebugPrintAt(t.img, text, int(x), int(y))
}

func subImage(img *ebiten.Image, x, y, w, h int) *ebiten.Image {
	r := img.Bounds()
	r.Min.X, r.Min.Y = x, y
	r.Max.X, r.Max.Y = x+w, y+h
	return img.SubImage(r).(*ebiten.Image)
}

// applyTint premultiplies a Color into the draw options' color scale.
func applyTint(op *ebiten.DrawImageOptions, c Color) {
	op.ColorScale.Scale(
		float32(c.R*c.A),
		float32(c.G*c.A),
		float32(c.B*c.A),
		float32(c.A),
	)
}
