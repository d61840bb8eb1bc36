package trellis

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates up to 2 scalar values, feeding them through an apply
// function each frame. Tweens registered on a UI (smooth scrolling, offset
// animation) are advanced automatically by Update; free-standing tweens can
// be stepped by hand.
type Tween struct {
	tweens [2]*gween.Tween
	count  int
	apply  func(x, y float64)
	target *Widget
	Done   bool
}

// newTween builds a single-value tween with the default easing.
func newTween(from, to, seconds float64, apply func(float64)) *Tween {
	t := &Tween{count: 1, apply: func(x, _ float64) { apply(x) }}
	t.tweens[0] = gween.New(float32(from), float32(to), float32(seconds), ease.OutQuad)
	return t
}

// Update advances the tween by dt seconds and applies the current values.
// A tween whose target widget was disposed stops immediately without
// applying.
func (t *Tween) Update(dt float64) {
	if t.Done {
		return
	}
	if t.target != nil && t.target.IsDisposed() {
		t.Done = true
		return
	}

	var vals [2]float64
	allDone := true
	for i := 0; i < t.count; i++ {
		v, finished := t.tweens[i].Update(float32(dt))
		vals[i] = float64(v)
		if !finished {
			allDone = false
		}
	}
	t.apply(vals[0], vals[1])
	t.Done = allDone
}

// TweenOffset animates the widget's anchor offset to the given value over
// the duration in seconds, using the easing function (nil for the default).
// The tween is registered on the widget's UI; on a detached tree the offset
// is set immediately.
func (w *Widget) TweenOffset(to Vec2, seconds float64, fn ease.TweenFunc) {
	if w.ui == nil || seconds <= 0 {
		w.SetOffset(to)
		return
	}
	if fn == nil {
		fn = ease.OutQuad
	}
	from := w.offset
	t := &Tween{count: 2, target: w, apply: func(x, y float64) {
		w.SetOffset(Vec2{X: x, Y: y})
	}}
	t.tweens[0] = gween.New(float32(from.X), float32(to.X), float32(seconds), fn)
	t.tweens[1] = gween.New(float32(from.Y), float32(to.Y), float32(seconds), fn)
	w.ui.addTween(t)
}
