package trellis

import "testing"

// newScrollPanel builds a 200x120 VerticalScroll panel with zero padding and
// ten stacked 50x30 children (300px of content, 180px of overflow).
func newScrollPanel(u *UI) *Widget {
	panel := NewPanel(Vec2{X: 200, Y: 120})
	panel.SetAnchor(AnchorTopLeft)
	panel.SetStyle(StylePadding, VectorProp(Vec2{}))
	panel.SetOverflow(VerticalScroll)
	u.Root().AddChild(panel)
	for i := 0; i < 10; i++ {
		panel.AddChild(NewPanel(Vec2{X: 50, Y: 30}))
	}
	return panel
}

func TestSetOverflowManagesScrollbar(t *testing.T) {
	panel := NewPanel(Vec2{X: 100, Y: 100})
	if panel.OverflowMode() != Overflow {
		t.Fatalf("default overflow = %v, want Overflow", panel.OverflowMode())
	}

	panel.SetOverflow(VerticalScroll)
	sb := panel.Scrollbar()
	if sb == nil {
		t.Fatal("VerticalScroll panel has no managed scrollbar")
	}
	if sb.Visible() {
		t.Error("scrollbar should start hidden")
	}
	if !sb.IgnoreParentLock || !sb.anchorToVisible {
		t.Error("scrollbar must ignore the parent lock and anchor to the visible rect")
	}

	panel.SetOverflow(Clipped)
	if panel.Scrollbar() != nil {
		t.Error("leaving VerticalScroll must detach the scrollbar")
	}
	if panel.ScrollPosition() != 0 {
		t.Error("leaving VerticalScroll must reset the scroll position")
	}
}

func TestPanelScrollRangeAndChildShift(t *testing.T) {
	u := newTestUI(400, 300)
	panel := newScrollPanel(u)

	step(u, frameAt(390, 290))

	sb := panel.Scrollbar()
	if sb.Range.Max != 180 {
		t.Fatalf("scroll range max = %v, want 180", sb.Range.Max)
	}
	if !sb.Visible() {
		t.Error("overflowing panel must show its scrollbar")
	}

	first := panel.Children()[0]
	if got := first.ComputeRect().Y; got != 0 {
		t.Fatalf("unscrolled first child Y = %v, want 0", got)
	}
	panel.SetScroll(100)
	if got := panel.ScrollPosition(); got != 100 {
		t.Fatalf("scroll position = %v, want 100", got)
	}
	if got := first.ComputeRect().Y; got != -100 {
		t.Errorf("scrolled first child Y = %v, want -100", got)
	}
}

func TestSetScrollClamps(t *testing.T) {
	u := newTestUI(400, 300)
	panel := newScrollPanel(u)
	step(u, frameAt(390, 290))

	panel.SetScroll(500)
	if got := panel.ScrollPosition(); got != 180 {
		t.Errorf("over-scrolled position = %v, want 180", got)
	}
	panel.SetScroll(-40)
	if got := panel.ScrollPosition(); got != 0 {
		t.Errorf("under-scrolled position = %v, want 0", got)
	}
}

func TestScrollbarHiddenWhenContentFits(t *testing.T) {
	u := newTestUI(400, 300)
	panel := NewPanel(Vec2{X: 200, Y: 120})
	panel.SetAnchor(AnchorTopLeft)
	panel.SetStyle(StylePadding, VectorProp(Vec2{}))
	panel.SetOverflow(VerticalScroll)
	u.Root().AddChild(panel)
	panel.AddChild(NewPanel(Vec2{X: 50, Y: 30}))
	panel.AddChild(NewPanel(Vec2{X: 50, Y: 30}))

	step(u, frameAt(390, 290))

	sb := panel.Scrollbar()
	if sb.Range.Max != 0 {
		t.Errorf("scroll range max = %v, want 0", sb.Range.Max)
	}
	if sb.Visible() {
		t.Error("scrollbar must stay hidden when content fits")
	}
}

func TestWheelOverPanelBodyScrolls(t *testing.T) {
	u := newTestUI(400, 300)
	panel := newScrollPanel(u)
	step(u, frameAt(390, 290))

	// Wheel-down over the panel body scrolls the content down one notch.
	f := frameAt(100, 60)
	f.Wheel = -1
	step(u, f)
	if got := panel.ScrollPosition(); got != scrollWheelStep {
		t.Errorf("scroll after wheel-down = %v, want %v", got, float64(scrollWheelStep))
	}

	// Wheel outside the panel does nothing.
	f = frameAt(390, 290)
	f.Wheel = -1
	step(u, f)
	if got := panel.ScrollPosition(); got != scrollWheelStep {
		t.Errorf("scroll after wheel elsewhere = %v, want %v", got, float64(scrollWheelStep))
	}
}

func TestClippedPanelGatesPointerOutsideVisibleRect(t *testing.T) {
	u := newTestUI(400, 300)
	panel := NewPanel(Vec2{X: 100, Y: 50})
	panel.SetAnchor(AnchorTopLeft)
	panel.SetStyle(StylePadding, VectorProp(Vec2{}))
	panel.SetOverflow(Clipped)
	u.Root().AddChild(panel)

	child := NewPanel(Vec2{X: 50, Y: 100})
	child.SetAnchor(AnchorTopLeft)
	panel.AddChild(child)

	var enter, leave int
	child.OnMouseEnter = func(*Widget) { enter++ }
	child.OnMouseLeave = func(*Widget) { leave++ }

	step(u, frameAt(25, 25))
	if enter != 1 {
		t.Fatalf("enter inside visible region = %d, want 1", enter)
	}
	// The child extends past the panel's bottom, but that part is clipped
	// away, so the pointer must not reach it.
	step(u, frameAt(25, 75))
	if enter != 1 || leave != 1 {
		t.Errorf("enter/leave over clipped region = %d/%d, want 1/1", enter, leave)
	}

	panel.SetOverflow(Overflow)
	step(u, frameAt(25, 75))
	if enter != 2 {
		t.Errorf("enter over unclipped overhang = %d, want 2", enter)
	}
}

func TestSmoothScrollToImmediateWhenDetached(t *testing.T) {
	panel := NewPanel(Vec2{X: 100, Y: 100})
	panel.SetOverflow(VerticalScroll)
	panel.Scrollbar().Range.Max = 200

	panel.SmoothScrollTo(120, 0.5)
	if got := panel.ScrollPosition(); got != 120 {
		t.Errorf("detached SmoothScrollTo position = %v, want 120", got)
	}
}

func TestSmoothScrollToAnimates(t *testing.T) {
	u := newTestUI(400, 300)
	panel := newScrollPanel(u)
	step(u, frameAt(390, 290))

	panel.SmoothScrollTo(100, 0.2)
	if got := panel.ScrollPosition(); got != 0 {
		t.Fatalf("scroll moved before any frame elapsed: %v", got)
	}
	for i := 0; i < 30; i++ {
		step(u, frameAt(390, 290))
	}
	if got := panel.ScrollPosition(); got != 100 {
		t.Errorf("scroll after animation = %v, want 100", got)
	}
	if len(u.tweens) != 0 {
		t.Errorf("finished tweens still registered: %d", len(u.tweens))
	}
}

func TestMustPanelPanicsOnNonContainer(t *testing.T) {
	w := NewLabel("x")
	mustPanic(t, "SetOverflow on label", func() { w.SetOverflow(Clipped) })
	mustPanic(t, "ScrollPosition on label", func() { w.ScrollPosition() })
}
