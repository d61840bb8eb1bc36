package trellis

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders the widget tree onto screen, bottom-up in (Layer, insertion
// index) order so later and higher-layer siblings paint on top. Hidden
// subtrees are skipped entirely.
func (u *UI) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if u.debug {
		t0 = time.Now()
		u.stats.widgetsDrawn = 0
		u.stats.widgetsClipped = 0
	}

	if u.root.destRect == (Rect{}) {
		bounds := screen.Bounds()
		u.SetScreenSize(bounds.Dx(), bounds.Dy())
	}
	if u.backend == nil {
		u.backend = &ebitenBackend{}
	}
	u.backend.reset(screen)
	u.drawWidget(u.root, u.backend)
	u.flushScreenshots(screen)

	if u.debug {
		u.stats.drawTime = time.Since(t0)
		u.debugLog()
	}
}

// SetTextDrawer installs a text rendering function on the built-in backend,
// replacing the debug-font fallback.
func (u *UI) SetTextDrawer(fn TextDrawFunc) {
	if u.backend == nil {
		u.backend = &ebitenBackend{}
	}
	u.backend.textFunc = fn
}

func (u *UI) drawWidget(w *Widget, b RenderBackend) {
	if w.disposed || !w.visible {
		return
	}
	w.ensureRect()
	if u.debug {
		u.stats.widgetsDrawn++
	}

	if w.background != nil {
		u.drawBackground(w, b)
	}
	u.drawShadow(w, b)
	u.drawOutline(w, b)
	u.drawSelf(w, b)

	if w.Panel != nil && w.Panel.overflow != Overflow {
		u.drawClippedChildren(w, b)
		return
	}
	for _, child := range w.sorted() {
		u.drawWidget(child, b)
	}
}

// drawBackground renders the detached background widget pinned to this
// widget's rectangle. The parent link is attached only for the duration of
// the draw so the background stays out of tree bookkeeping.
func (u *UI) drawBackground(w *Widget, b RenderBackend) {
	bg := w.background
	bg.parent = w
	bg.destRect = w.destRect
	bg.internalRect = bg.computeInternalRect(bg.destRect)
	bg.dirty = false
	bg.parentVersion = w.rectVersion
	bg.state = w.state
	u.drawWidget(bg, b)
	bg.parent = nil
}

// drawShadow paints the drop shadow quad behind the widget when the theme
// defines a shadow color for its current state.
func (u *UI) drawShadow(w *Widget, b RenderBackend) {
	prop := w.StyleFor(StyleShadowColor, w.state)
	if prop.IsZero() {
		return
	}
	col := prop.AsColor()
	if col.A <= 0 {
		return
	}
	off := w.StyleFor(StyleShadowOffset, w.state).AsVector().Mul(w.uiScale())
	grow := 1.0
	if p := w.StyleFor(StyleShadowScale, w.state); !p.IsZero() {
		grow = p.AsFloat()
	}
	r := w.destRect
	r.X += off.X - r.Width*(grow-1)/2
	r.Y += off.Y - r.Height*(grow-1)/2
	r.Width *= grow
	r.Height *= grow
	b.DrawQuad(r, col)
}

// drawOutline paints a quad grown by the outline width behind the widget's
// own fill.
func (u *UI) drawOutline(w *Widget, b RenderBackend) {
	width := w.StyleFor(StyleOutlineWidth, w.state).AsFloat() * w.uiScale()
	if width <= 0 {
		return
	}
	prop := w.StyleFor(StyleOutlineColor, w.state)
	if prop.IsZero() {
		return
	}
	col := prop.AsColor()
	if col.A <= 0 {
		return
	}
	r := w.destRect
	r.X -= width
	r.Y -= width
	r.Width += width * 2
	r.Height += width * 2
	b.DrawQuad(r, col)
}

func (u *UI) drawSelf(w *Widget, b RenderBackend) {
	switch w.Kind {
	case KindRoot:
	case KindLabel:
		u.drawLabel(w, b)
	case KindSlider, KindScrollbar:
		u.drawRange(w, b)
	case KindProgressBar:
		u.drawProgress(w, b)
	default:
		u.drawFill(w, b, w.destRect)
	}
}

// drawFill paints the widget's skin or solid fill over r.
func (u *UI) drawFill(w *Widget, b RenderBackend, r Rect) {
	prop := w.StyleFor(StyleFillColor, w.state)
	if prop.IsZero() {
		return
	}
	col := prop.AsColor()
	if w.Skin != nil {
		b.DrawNineSlice(w.Skin, r, col, w.SkinBorder)
		return
	}
	b.DrawQuad(r, col)
}

func (u *UI) drawLabel(w *Widget, b RenderBackend) {
	if w.Text == nil || w.Text.Content == "" {
		return
	}
	col := w.StyleFor(StyleFillColor, w.state).AsColor()
	scale := w.styleFloatDefault(StyleScale, 1) * w.uiScale()
	b.DrawText(w.Text.Content, Vec2{X: w.destRect.X, Y: w.destRect.Y}, scale, col)
}

// drawRange paints a slider or scrollbar as a track quad plus a handle quad
// positioned by the control's value.
func (u *UI) drawRange(w *Widget, b RenderBackend) {
	if w.Range == nil {
		return
	}
	r := w.destRect
	track := w.StyleFor(StyleTrackColor, w.state)
	handle := w.StyleFor(StyleHandleColor, w.state)
	pct := w.Percent()
	vertical := w.Range.Vertical || w.Kind == KindScrollbar

	if w.Kind == KindSlider {
		// Thin centered track, square handle.
		trackRect := r
		if vertical {
			trackRect.X = r.CenterX() - r.Width/6
			trackRect.Width = r.Width / 3
		} else {
			trackRect.Y = r.CenterY() - r.Height/6
			trackRect.Height = r.Height / 3
		}
		if !track.IsZero() {
			b.DrawQuad(trackRect, track.AsColor())
		}
		var handleRect Rect
		if vertical {
			side := r.Width
			handleRect = Rect{X: r.X, Y: r.Y + pct*(r.Height-side), Width: side, Height: side}
		} else {
			side := r.Height
			handleRect = Rect{X: r.X + pct*(r.Width-side), Y: r.Y, Width: side, Height: side}
		}
		if !handle.IsZero() {
			b.DrawQuad(handleRect, handle.AsColor())
		}
		return
	}

	// Scrollbar: full-width track, handle length proportional to the number
	// of scroll positions, with a minimum grab size.
	if !track.IsZero() {
		b.DrawQuad(r, track.AsColor())
	}
	span := r.Height
	positions := w.Range.Max - w.Range.Min + 1
	if positions < 1 {
		positions = 1
	}
	length := span / positions
	if length < 16 {
		length = 16
	}
	if length > span {
		length = span
	}
	handleRect := Rect{X: r.X, Y: r.Y + pct*(span-length), Width: r.Width, Height: length}
	if !handle.IsZero() {
		b.DrawQuad(handleRect, handle.AsColor())
	}
}

// drawProgress paints a track quad plus a fill portion sized by the value.
func (u *UI) drawProgress(w *Widget, b RenderBackend) {
	if w.Range == nil {
		return
	}
	r := w.destRect
	if track := w.StyleFor(StyleTrackColor, w.state); !track.IsZero() {
		b.DrawQuad(r, track.AsColor())
	}
	pct := w.Percent()
	if pct <= 0 {
		return
	}
	fill := r
	if w.Range.Vertical {
		// Fills bottom-up.
		fill.Height = r.Height * pct
		fill.Y = r.Bottom() - fill.Height
	} else {
		fill.Width = r.Width * pct
	}
	u.drawFill(w, b, fill)
}

// drawClippedChildren renders a clipping panel's children into an offscreen
// buffer sized to the panel's visible region, then blits the buffer. Children
// outside the buffer are clipped by the render target bounds.
func (u *UI) drawClippedChildren(w *Widget, b RenderBackend) {
	visible := w.visibleInternalRect()
	bw, bh := int(visible.Width), int(visible.Height)
	if bw < 1 || bh < 1 {
		if u.debug {
			u.stats.widgetsClipped += len(w.children)
		}
		return
	}
	buf := w.Panel.ensureBuffer(bw, bh)
	buf.Clear()

	b.PushTarget(buf, Vec2{X: visible.X, Y: visible.Y})
	for _, child := range w.sorted() {
		if child.anchorToVisible {
			// Scrollbars draw outside the clipped region, after the blit.
			continue
		}
		u.drawWidget(child, b)
	}
	b.PopTarget()

	b.DrawImage(buf, visible, ColorWhite)

	for _, child := range w.sorted() {
		if child.anchorToVisible {
			u.drawWidget(child, b)
		}
	}
}
