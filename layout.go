package trellis

import "math"

// ComputeRect returns the widget's outer rectangle in screen coordinates,
// recomputing it only when the widget is dirty or its parent's rectangle
// changed since the last computation. Calling it again without any mutation
// returns the identical rectangle without bumping the version counter.
func (w *Widget) ComputeRect() Rect {
	w.ensureRect()
	return w.destRect
}

// InternalRect returns the widget's outer rectangle shrunk by its scaled
// padding: the coordinate frame children anchor against. Scrolling panels
// additionally shift this rect by the scroll position and narrow it by the
// scrollbar width.
func (w *Widget) InternalRect() Rect {
	w.ensureRect()
	return w.internalRect
}

// EffectiveRect returns the content-fitted rectangle used for hit-testing
// and auto-flow placement. For most widgets this equals the outer rectangle;
// text-bearing widgets report the measured text extent instead.
func (w *Widget) EffectiveRect() Rect {
	w.ensureRect()
	if w.Kind == KindLabel && w.Text != nil {
		return w.textEffectiveRect()
	}
	return w.destRect
}

// RectVersion returns the monotonically increasing counter bumped on every
// rectangle recomputation. Children compare it against the value they cached
// to decide whether they must recompute too.
func (w *Widget) RectVersion() uint64 { return w.rectVersion }

// ensureRect lazily recomputes the cached rectangles. The parent (and, for
// flow anchors, the previous visible sibling) is forced up to date first, so
// invalidation propagates downward on demand.
func (w *Widget) ensureRect() {
	if w.parent == nil {
		// Roots are sized externally; a detached widget has a zero rect.
		if w.Kind != KindRoot && (w.dirty || w.destRect != (Rect{})) {
			w.destRect = Rect{}
			w.internalRect = Rect{}
			w.dirty = false
		}
		return
	}
	w.parent.ensureRect()
	if !w.dirty && w.parentVersion == w.parent.rectVersion {
		return
	}
	w.computeRect()
}

// computeRect runs the placement algorithm and refreshes the cached
// rectangles and version counters.
func (w *Widget) computeRect() {
	parent := w.parent
	pr := parent.internalRect
	if w.anchorToVisible && parent.Panel != nil {
		pr = parent.visibleInternalRect()
	}

	width, height := w.resolveSize(pr)
	scale := w.uiScale()
	off := w.offset.Mul(scale)

	anchor := w.anchor
	if w.draggable && !w.needDragOffset {
		// Dragging reuses the top-left placement formula with the
		// accumulated drag offset, which is kept in raw pixels.
		anchor = AnchorTopLeft
		off = w.dragOffset
	}

	var x, y float64
	switch anchor {
	case AnchorTopLeft:
		x, y = pr.X+off.X, pr.Y+off.Y
	case AnchorTopCenter:
		x, y = pr.CenterX()-width/2+off.X, pr.Y+off.Y
	case AnchorTopRight:
		x, y = pr.Right()-width-off.X, pr.Y+off.Y
	case AnchorCenterLeft:
		x, y = pr.X+off.X, pr.CenterY()-height/2+off.Y
	case AnchorCenter:
		x, y = pr.CenterX()-width/2+off.X, pr.CenterY()-height/2+off.Y
	case AnchorCenterRight:
		x, y = pr.Right()-width-off.X, pr.CenterY()-height/2+off.Y
	case AnchorBottomLeft:
		x, y = pr.X+off.X, pr.Bottom()-height-off.Y
	case AnchorBottomCenter:
		x, y = pr.CenterX()-width/2+off.X, pr.Bottom()-height-off.Y
	case AnchorBottomRight:
		x, y = pr.Right()-width-off.X, pr.Bottom()-height-off.Y
	default:
		x, y = w.flowPosition(pr, width, off)
	}

	rect := Rect{X: x, Y: y, Width: width, Height: height}

	if w.draggable {
		if w.needDragOffset {
			// First placement after becoming draggable: capture the
			// computed position relative to the parent's internal origin.
			w.dragOffset = Vec2{X: rect.X - pr.X, Y: rect.Y - pr.Y}
			w.needDragOffset = false
		}
		if w.LimitDragToParent {
			rect = clampRectInto(rect, pr)
			w.dragOffset = Vec2{X: rect.X - pr.X, Y: rect.Y - pr.Y}
		}
	}

	w.destRect = rect
	w.internalRect = w.computeInternalRect(rect)
	w.dirty = false
	w.parentVersion = parent.rectVersion
	w.rectVersion++
}

// resolveSize maps the per-axis size semantics against the parent's internal
// rect: negative uses the themed default size, 0 fills the parent, (0,1) is
// a fraction, >= 1 is absolute pixels. Each axis is clamped to 1 pixel.
func (w *Widget) resolveSize(pr Rect) (width, height float64) {
	size := w.Size
	if size.X < 0 || size.Y < 0 {
		def := w.Style(StyleDefaultSize).AsVector()
		if size.X < 0 {
			size.X = def.X
		}
		if size.Y < 0 {
			size.Y = def.Y
		}
	}
	width = resolveSizeAxis(size.X, pr.Width)
	height = resolveSizeAxis(size.Y, pr.Height)
	return width, height
}

func resolveSizeAxis(v, parent float64) float64 {
	var out float64
	switch {
	case v <= 0:
		out = parent
	case v < 1:
		out = math.Round(parent * v)
	default:
		out = v
	}
	if out < 1 {
		out = 1
	}
	return out
}

// flowPosition places a widget with one of the three auto-flow anchors
// relative to the nearest preceding visible sibling.
func (w *Widget) flowPosition(pr Rect, width float64, off Vec2) (x, y float64) {
	prev := w.previousVisibleSibling()
	if prev == nil {
		// No previous sibling: fall back to the static equivalent.
		if w.anchor == AnchorAutoCenter {
			return pr.CenterX() - width/2 + off.X, pr.Y + off.Y
		}
		return pr.X + off.X, pr.Y + off.Y
	}

	prev.ensureRect()
	prevEff := prev.EffectiveRect()
	scale := w.uiScale()
	after := prev.Style(StyleSpaceAfter).AsVector().Mul(scale)
	before := w.Style(StyleSpaceBefore).AsVector().Mul(scale)

	if w.anchor == AnchorAutoInline {
		x = prevEff.Right() + after.X + before.X
		y = prev.destRect.Y
		// The offset counts toward the overflow check: an offset widget
		// wraps when its placed right edge would exceed the parent's.
		if x+off.X+width <= pr.Right() {
			return x + off.X, y + off.Y
		}
	}

	y = prevEff.Bottom() + after.Y + before.Y
	if w.anchor == AnchorAutoCenter {
		x = pr.CenterX() - width/2
	} else {
		x = pr.X
	}
	return x + off.X, y + off.Y
}

// previousVisibleSibling returns the nearest preceding sibling (by insertion
// order) whose own visibility flag is set, or nil.
func (w *Widget) previousVisibleSibling() *Widget {
	if w.parent == nil {
		return nil
	}
	for i := w.indexInParent - 1; i >= 0; i-- {
		sibling := w.parent.children[i]
		if sibling.visible && !sibling.anchorToVisible {
			return sibling
		}
	}
	return nil
}

// computeInternalRect shrinks the outer rect by the scaled padding, then
// applies the scroll shift and scrollbar inset for scrolling panels.
func (w *Widget) computeInternalRect(dest Rect) Rect {
	pad := w.Style(StylePadding).AsVector().Mul(w.uiScale())
	internal := shrinkRect(dest, pad)

	if w.Panel != nil && w.Panel.overflow == VerticalScroll {
		internal.Y -= w.Panel.scrollY()
		internal.Width -= w.Panel.scrollbarWidth(w)
		if internal.Width < 1 {
			internal.Width = 1
		}
	}
	return internal
}

// visibleInternalRect returns the padded rect without the scroll shift or
// scrollbar inset: the on-screen region a scrolling panel actually shows.
func (w *Widget) visibleInternalRect() Rect {
	pad := w.Style(StylePadding).AsVector().Mul(w.uiScale())
	return shrinkRect(w.destRect, pad)
}

// shrinkRect insets r by pad on all sides, clamping to non-negative size.
func shrinkRect(r Rect, pad Vec2) Rect {
	out := Rect{
		X:      r.X + pad.X,
		Y:      r.Y + pad.Y,
		Width:  r.Width - pad.X*2,
		Height: r.Height - pad.Y*2,
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// clampRectInto shifts r so it never exits bounds on any edge. When r is
// larger than bounds the top-left edges win.
func clampRectInto(r, bounds Rect) Rect {
	if r.Right() > bounds.Right() {
		r.X = bounds.Right() - r.Width
	}
	if r.Bottom() > bounds.Bottom() {
		r.Y = bounds.Bottom() - r.Height
	}
	if r.X < bounds.X {
		r.X = bounds.X
	}
	if r.Y < bounds.Y {
		r.Y = bounds.Y
	}
	return r
}

// textEffectiveRect reports the measured text extent anchored at the dest
// rect origin, clamped to at least the nominal box height for hit comfort.
func (w *Widget) textEffectiveRect() Rect {
	font := w.Text.Font
	if font == nil && w.ui != nil {
		font = w.ui.measurer
	}
	if font == nil || w.Text.Content == "" {
		return w.destRect
	}
	tw, th := font.MeasureString(w.Text.Content)
	textScale := w.styleFloatDefault(StyleScale, 1) * w.uiScale()
	return Rect{
		X:      w.destRect.X,
		Y:      w.destRect.Y,
		Width:  tw * textScale,
		Height: th * textScale,
	}
}
