package trellis

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// scrollWheelStep is the pixel distance one wheel notch scrolls a panel.
const scrollWheelStep = 24

// PanelData holds the container-specific state of a panel widget: the
// overflow mode, the offscreen clipping buffer, and the managed scrollbar.
type PanelData struct {
	overflow  OverflowMode
	buffer    *ebiten.Image
	bufW      int
	bufH      int
	scrollbar *Widget
	scroll    float64
}

// NewPanel creates a container widget. Panels default to Overflow mode:
// children render even outside the panel's bounds.
func NewPanel(size Vec2) *Widget {
	w := newWidget(KindPanel, size)
	w.Panel = &PanelData{overflow: Overflow}
	return w
}

// mustPanel returns the panel data, panicking when the widget is not a
// container (panels and select lists carry one).
func (w *Widget) mustPanel() *PanelData {
	if w.Panel == nil {
		panic("trellis: operation requires a container widget")
	}
	return w.Panel
}

// OverflowMode returns the panel's current overflow mode.
func (w *Widget) OverflowMode() OverflowMode {
	return w.mustPanel().overflow
}

// SetOverflow switches how the panel treats children outside its bounds.
// Entering VerticalScroll attaches a managed scrollbar; leaving it detaches
// the scrollbar and resets the scroll position. Leaving a clipping mode
// releases the offscreen buffer.
func (w *Widget) SetOverflow(mode OverflowMode) {
	p := w.mustPanel()
	if p.overflow == mode {
		return
	}
	p.overflow = mode

	if mode == VerticalScroll {
		if p.scrollbar == nil {
			p.scrollbar = w.newPanelScrollbar()
		}
	} else if p.scrollbar != nil {
		sb := p.scrollbar
		p.scrollbar = nil
		p.scroll = 0
		w.RemoveChild(sb)
		sb.dispose()
	}
	if mode == Overflow && p.buffer != nil {
		p.buffer.Deallocate()
		p.buffer = nil
		p.bufW, p.bufH = 0, 0
	}
	markSubtreeDirty(w)
}

// newPanelScrollbar builds the scrollbar a VerticalScroll panel manages.
// It anchors against the unscrolled rect so it never moves with the content,
// and it keeps working while the panel itself is locked.
func (w *Widget) newPanelScrollbar() *Widget {
	sb := NewScrollbar(Vec2{X: -1, Y: 0}, 0, 0)
	sb.SetAnchor(AnchorTopRight)
	sb.anchorToVisible = true
	sb.IgnoreParentLock = true
	sb.SetVisible(false)
	w.AddChild(sb)
	return sb
}

// Scrollbar returns the managed scrollbar of a VerticalScroll panel, or nil.
func (w *Widget) Scrollbar() *Widget {
	return w.mustPanel().scrollbar
}

// ScrollPosition returns the current vertical scroll offset in pixels.
func (w *Widget) ScrollPosition() float64 {
	return w.mustPanel().scroll
}

// SetScroll jumps the scroll position, clamped to the scrollable range.
func (w *Widget) SetScroll(y float64) {
	p := w.mustPanel()
	if p.scrollbar == nil {
		return
	}
	p.scrollbar.SetValue(y)
	if p.scroll != p.scrollbar.Range.Value {
		p.scroll = p.scrollbar.Range.Value
		markSubtreeDirty(w)
	}
}

// SmoothScrollTo animates the scroll position over the given duration in
// seconds. On a detached tree it falls back to an immediate jump.
func (w *Widget) SmoothScrollTo(y float64, seconds float64) {
	p := w.mustPanel()
	if w.ui == nil || seconds <= 0 {
		w.SetScroll(y)
		return
	}
	w.ui.addTween(newTween(p.scroll, y, seconds, func(v float64) {
		w.SetScroll(v)
	}))
}

// scrollY returns the pixel shift applied to the internal rect, zero unless
// the panel scrolls.
func (p *PanelData) scrollY() float64 {
	if p.overflow != VerticalScroll {
		return 0
	}
	return p.scroll
}

// scrollbarWidth returns the horizontal space the managed scrollbar reserves
// inside the internal rect.
func (p *PanelData) scrollbarWidth(w *Widget) float64 {
	sb := p.scrollbar
	if sb == nil || !sb.visible {
		return 0
	}
	width := sb.Size.X
	if width < 0 {
		width = sb.Style(StyleDefaultSize).AsVector().X
	}
	if width < 1 {
		width = 1
	}
	return width
}

// ensureBuffer returns the offscreen clipping buffer, recreating it when the
// wanted dimensions changed.
func (p *PanelData) ensureBuffer(width, height int) *ebiten.Image {
	if p.buffer != nil && p.bufW == width && p.bufH == height {
		return p.buffer
	}
	if p.buffer != nil {
		p.buffer.Deallocate()
	}
	p.buffer = ebiten.NewImage(width, height)
	p.bufW, p.bufH = width, height
	return p.buffer
}

// panelUpdate refreshes the scrollable range from the content extent, hides
// the scrollbar when nothing overflows, and applies wheel scrolling over the
// panel body.
func (u *UI) panelUpdate(w *Widget, f *Frame) {
	p := w.Panel
	if p == nil || p.overflow != VerticalScroll {
		return
	}
	sb := p.scrollbar
	if sb == nil {
		return
	}

	max := u.panelMaxScroll(w)
	if sb.Range.Max != max {
		sb.Range.Max = max
		if sb.Range.Value > max {
			sb.SetValue(max)
		}
		w.MarkDirty()
	}
	sb.SetVisible(max > 0)

	if f.Wheel != 0 && max > 0 &&
		w.visibleInternalRect().Contains(f.CursorX, f.CursorY) &&
		!(sb.visible && sb.ComputeRect().Contains(f.CursorX, f.CursorY)) {
		sb.SetValue(sb.Range.Value - f.Wheel*scrollWheelStep)
	}

	if p.scroll != sb.Range.Value {
		p.scroll = sb.Range.Value
		markSubtreeDirty(w)
	}
}

// panelMaxScroll measures how far the content extends past the visible
// region. The internal rect's top already carries the scroll shift, so the
// extent is scroll-independent.
func (u *UI) panelMaxScroll(w *Widget) float64 {
	visible := w.visibleInternalRect()
	top := w.InternalRect().Y
	content := 0.0
	for _, child := range w.children {
		if !child.visible || child.anchorToVisible {
			continue
		}
		child.ensureRect()
		if extent := child.EffectiveRect().Bottom() - top; extent > content {
			content = extent
		}
	}
	max := content - visible.Height
	if max <= 0 {
		return 0
	}
	return math.Ceil(max)
}
