package trellis

import "testing"

func TestTweenOffsetImmediateWhenDetached(t *testing.T) {
	w := NewPanel(Vec2{X: 50, Y: 50})
	w.TweenOffset(Vec2{X: 40, Y: 10}, 0.5, nil)
	if w.Offset() != (Vec2{X: 40, Y: 10}) {
		t.Errorf("detached TweenOffset left offset %v", w.Offset())
	}
}

func TestTweenOffsetAnimatesToTarget(t *testing.T) {
	u := newTestUI(400, 300)
	w := NewPanel(Vec2{X: 50, Y: 50})
	w.SetAnchor(AnchorTopLeft)
	u.Root().AddChild(w)

	w.TweenOffset(Vec2{X: 60, Y: 30}, 0.2, nil)
	if w.Offset() != (Vec2{}) {
		t.Fatalf("offset moved before any frame elapsed: %v", w.Offset())
	}

	step(u, frameAt(390, 290))
	mid := w.Offset()
	if mid == (Vec2{}) || mid == (Vec2{X: 60, Y: 30}) {
		t.Errorf("offset after one frame = %v, want a value in flight", mid)
	}

	for i := 0; i < 30; i++ {
		step(u, frameAt(390, 290))
	}
	if w.Offset() != (Vec2{X: 60, Y: 30}) {
		t.Errorf("final offset = %v, want (60, 30)", w.Offset())
	}
	if len(u.tweens) != 0 {
		t.Errorf("finished tweens still registered: %d", len(u.tweens))
	}
}

func TestTweenStopsWhenTargetDisposed(t *testing.T) {
	u := newTestUI(400, 300)
	w := NewPanel(Vec2{X: 50, Y: 50})
	w.SetAnchor(AnchorTopLeft)
	u.Root().AddChild(w)

	w.TweenOffset(Vec2{X: 100, Y: 0}, 1.0, nil)
	step(u, frameAt(390, 290))

	w.Dispose()
	step(u, frameAt(390, 290))
	if len(u.tweens) != 0 {
		t.Errorf("tween outlived its disposed target: %d registered", len(u.tweens))
	}
}

func TestStandaloneTweenUpdate(t *testing.T) {
	var got float64
	tw := newTween(0, 10, 1.0, func(v float64) { got = v })

	tw.Update(0.5)
	if tw.Done {
		t.Fatal("tween finished halfway through")
	}
	if got <= 0 || got >= 10 {
		t.Errorf("halfway value = %v, want strictly between 0 and 10", got)
	}

	tw.Update(1.0)
	if !tw.Done {
		t.Error("tween not done after overshooting the duration")
	}
	if got != 10 {
		t.Errorf("final value = %v, want 10", got)
	}
}
