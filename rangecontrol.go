package trellis

import "math"

// RangeData holds the value model shared by sliders, scrollbars, and
// progress bars.
type RangeData struct {
	// Min and Max bound the value, inclusive. Max < Min is treated as an
	// empty range pinned at Min.
	Min, Max float64
	// Value is the current position. Mutate through SetValue so clamping,
	// quantization, and change events apply.
	Value float64
	// StepsCount > 0 quantizes values to that many equal steps across the
	// range. 0 keeps the value continuous.
	StepsCount int
	// Vertical flips the drag axis. Scrollbars are always vertical.
	Vertical bool
}

func newRange(kind WidgetKind, size Vec2, min, max float64) *Widget {
	w := newWidget(kind, size)
	w.Range = &RangeData{Min: min, Max: max, Value: min}
	return w
}

// NewSlider creates a horizontal slider over [min, max].
func NewSlider(size Vec2, min, max float64) *Widget {
	return newRange(KindSlider, size, min, max)
}

// NewScrollbar creates a vertical scrollbar over [min, max]. Panels in
// VerticalScroll mode manage their own; free-standing scrollbars work too.
func NewScrollbar(size Vec2, min, max float64) *Widget {
	w := newRange(KindScrollbar, size, min, max)
	w.Range.Vertical = true
	return w
}

// NewProgressBar creates a display-only range control over [min, max]. It is
// locked, so it never responds to pointer input; drive it with SetValue.
func NewProgressBar(size Vec2, min, max float64) *Widget {
	w := newRange(KindProgressBar, size, min, max)
	w.locked = true
	return w
}

// mustRange returns the range data, panicking when the widget is not a range
// control.
func (w *Widget) mustRange() *RangeData {
	if w.Range == nil {
		panic("trellis: operation requires a range control widget")
	}
	return w.Range
}

// Value returns the current value.
func (w *Widget) Value() float64 { return w.mustRange().Value }

// SetValue clamps v to the range, quantizes it when StepsCount is set, and
// fires OnValueChange if the stored value actually changed.
func (w *Widget) SetValue(v float64) {
	r := w.mustRange()
	v = r.normalize(v)
	if v == r.Value {
		return
	}
	r.Value = v
	w.MarkDirty()
	if w.ui != nil {
		w.ui.fireValueChange(w)
	} else if w.OnValueChange != nil {
		w.OnValueChange(w)
	}
}

// normalize clamps and quantizes a candidate value.
func (r *RangeData) normalize(v float64) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	if v < r.Min {
		v = r.Min
	}
	if v > r.Max {
		v = r.Max
	}
	if r.StepsCount > 0 {
		step := (r.Max - r.Min) / float64(r.StepsCount)
		v = r.Min + math.Round((v-r.Min)/step)*step
	}
	return v
}

// Percent returns the value's position within the range as [0, 1].
func (w *Widget) Percent() float64 {
	r := w.mustRange()
	if r.Max <= r.Min {
		return 0
	}
	return (r.Value - r.Min) / (r.Max - r.Min)
}

// SetStepsCount changes the quantization and re-normalizes the current value.
func (w *Widget) SetStepsCount(n int) {
	r := w.mustRange()
	if n < 0 {
		n = 0
	}
	if r.StepsCount == n {
		return
	}
	r.StepsCount = n
	w.SetValue(r.Value)
	w.MarkDirty()
}

// SetValueRange rebounds the control. Returns ErrInvalidValue when
// max < min. The current value is re-clamped into the new range.
func (w *Widget) SetValueRange(min, max float64) error {
	r := w.mustRange()
	if max < min {
		return ErrInvalidValue
	}
	r.Min, r.Max = min, max
	w.SetValue(r.Value)
	w.MarkDirty()
	return nil
}

// rangeUpdate drives the pointer gesture on the control. A bare press on the
// track nudges the value one step toward the cursor; only a sustained drag
// maps the cursor position onto the value directly.
func (u *UI) rangeUpdate(w *Widget, f *Frame, ctx *frameContext) {
	r := w.Range
	if r == nil || w.Kind == KindProgressBar {
		return
	}
	if ctx.dragTarget != w || !f.LeftDown() {
		return
	}
	target := r.Min + w.cursorPercent(f)*(r.Max-r.Min)
	if f.LeftPressed() {
		switch {
		case target > r.Value:
			u.rangeNudge(w, 1)
		case target < r.Value:
			u.rangeNudge(w, -1)
		}
		return
	}
	if f.DeltaX == 0 && f.DeltaY == 0 {
		return
	}
	w.SetValue(target)
}

// cursorPercent maps the cursor onto the control's gesture axis as [0, 1].
// The whole rect acts as the gesture surface.
func (w *Widget) cursorPercent(f *Frame) float64 {
	rect := w.destRect
	var pct float64
	if w.Range.Vertical {
		if rect.Height > 1 {
			pct = (f.CursorY - rect.Y) / rect.Height
		}
	} else {
		if rect.Width > 1 {
			pct = (f.CursorX - rect.X) / rect.Width
		}
	}
	return clamp01(pct)
}

// rangeNudge moves the value by delta discrete steps: the quantization step
// when set, a wheel notch for scrollbars, 1 otherwise.
func (u *UI) rangeNudge(w *Widget, delta int) {
	r := w.Range
	if r == nil || delta == 0 || w.Kind == KindProgressBar {
		return
	}
	step := 1.0
	switch {
	case r.StepsCount > 0:
		step = (r.Max - r.Min) / float64(r.StepsCount)
	case w.Kind == KindScrollbar:
		step = scrollWheelStep
	}
	w.SetValue(r.Value + float64(delta)*step)
}
