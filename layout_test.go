package trellis

import "testing"

// newTestUI builds a UI with a fixed root rectangle, ready for layout and
// event tests without a window.
func newTestUI(width, height int) *UI {
	u := New()
	u.SetScreenSize(width, height)
	return u
}

// --- Static anchors ---

func TestStaticAnchorPlacement(t *testing.T) {
	tests := []struct {
		name   string
		anchor Anchor
		wantX  float64
		wantY  float64
	}{
		{"TopLeft", AnchorTopLeft, 10, 10},
		{"TopCenter", AnchorTopCenter, 185, 10},
		{"TopRight", AnchorTopRight, 340, 10},
		{"CenterLeft", AnchorCenterLeft, 10, 135},
		{"Center", AnchorCenter, 185, 135},
		{"CenterRight", AnchorCenterRight, 340, 135},
		{"BottomLeft", AnchorBottomLeft, 10, 240},
		{"BottomCenter", AnchorBottomCenter, 185, 240},
		{"BottomRight", AnchorBottomRight, 340, 240},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newTestUI(400, 300)
			w := NewPanel(Vec2{X: 50, Y: 50})
			w.SetAnchorAndOffset(tt.anchor, Vec2{X: 10, Y: 10})
			u.Root().AddChild(w)

			r := w.ComputeRect()
			if r.X != tt.wantX || r.Y != tt.wantY {
				t.Errorf("rect origin = (%v, %v), want (%v, %v)", r.X, r.Y, tt.wantX, tt.wantY)
			}
			if r.Width != 50 || r.Height != 50 {
				t.Errorf("rect size = (%v, %v), want (50, 50)", r.Width, r.Height)
			}
		})
	}
}

// --- Size semantics ---

func TestSizeResolution(t *testing.T) {
	tests := []struct {
		name  string
		size  Vec2
		wantW float64
		wantH float64
	}{
		{"fill", Vec2{0, 0}, 400, 300},
		{"fraction", Vec2{0.5, 0.5}, 200, 150},
		{"absolute", Vec2{120, 80}, 120, 80},
		{"themed default", Vec2{-1, -1}, 200, 150},
		{"mixed", Vec2{0.25, 90}, 100, 90},
		{"minimum one pixel", Vec2{0.001, 0.001}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newTestUI(400, 300)
			w := NewPanel(tt.size)
			w.SetAnchor(AnchorTopLeft)
			u.Root().AddChild(w)

			r := w.ComputeRect()
			if r.Width != tt.wantW || r.Height != tt.wantH {
				t.Errorf("size = (%v, %v), want (%v, %v)", r.Width, r.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

// --- Auto flow ---

func TestAutoFlowStacksBelowPreviousSibling(t *testing.T) {
	u := newTestUI(400, 300)
	a := NewPanel(Vec2{X: 50, Y: 20})
	b := NewPanel(Vec2{X: 50, Y: 20})
	hidden := NewPanel(Vec2{X: 50, Y: 20})
	hidden.SetVisible(false)
	c := NewPanel(Vec2{X: 50, Y: 20})
	u.Root().AddChild(a)
	u.Root().AddChild(b)
	u.Root().AddChild(hidden)
	u.Root().AddChild(c)

	if got := a.ComputeRect().Y; got != 0 {
		t.Errorf("first child Y = %v, want 0", got)
	}
	if got := b.ComputeRect().Y; got != 20 {
		t.Errorf("second child Y = %v, want 20", got)
	}
	// The hidden sibling is skipped, so c flows from b.
	if got := c.ComputeRect().Y; got != 40 {
		t.Errorf("third child Y = %v, want 40", got)
	}
}

func TestAutoCenterFlow(t *testing.T) {
	u := newTestUI(400, 300)
	a := NewPanel(Vec2{X: 50, Y: 20})
	a.SetAnchor(AnchorAutoCenter)
	b := NewPanel(Vec2{X: 100, Y: 20})
	b.SetAnchor(AnchorAutoCenter)
	u.Root().AddChild(a)
	u.Root().AddChild(b)

	if got := a.ComputeRect().X; got != 175 {
		t.Errorf("first centered child X = %v, want 175", got)
	}
	rb := b.ComputeRect()
	if rb.X != 150 || rb.Y != 20 {
		t.Errorf("second centered child = (%v, %v), want (150, 20)", rb.X, rb.Y)
	}
}

func TestAutoInlineWrapsAtParentEdge(t *testing.T) {
	u := newTestUI(400, 300)
	container := NewPanel(Vec2{X: 100, Y: 100})
	container.SetAnchor(AnchorTopLeft)
	container.SetStyle(StylePadding, VectorProp(Vec2{}))
	u.Root().AddChild(container)

	var items []*Widget
	for i := 0; i < 3; i++ {
		item := NewPanel(Vec2{X: 40, Y: 20})
		item.SetAnchor(AnchorAutoInline)
		container.AddChild(item)
		items = append(items, item)
	}

	r0 := items[0].ComputeRect()
	r1 := items[1].ComputeRect()
	r2 := items[2].ComputeRect()
	if r0.X != 0 || r0.Y != 0 {
		t.Errorf("item 0 = (%v, %v), want (0, 0)", r0.X, r0.Y)
	}
	if r1.X != 40 || r1.Y != 0 {
		t.Errorf("item 1 = (%v, %v), want (40, 0)", r1.X, r1.Y)
	}
	// 80+40 exceeds the container's right edge, so item 2 breaks to a new row.
	if r2.X != 0 || r2.Y != 20 {
		t.Errorf("item 2 = (%v, %v), want (0, 20)", r2.X, r2.Y)
	}
}

func TestAutoInlineOffsetCountsTowardWrap(t *testing.T) {
	u := newTestUI(400, 300)
	a := NewPanel(Vec2{X: 200, Y: 30})
	b := NewPanel(Vec2{X: 150, Y: 30})
	b.SetAnchorAndOffset(AnchorAutoInline, Vec2{X: 60})
	u.Root().AddChild(a)
	u.Root().AddChild(b)

	// Inline at x=200 the offset pushes b's right edge to 410, past the
	// parent's edge, so b must break to a new row instead of overflowing.
	r := b.ComputeRect()
	if r.X != 60 || r.Y != 30 {
		t.Errorf("offset inline sibling = (%v, %v), want (60, 30)", r.X, r.Y)
	}
}

func TestFlowSpacing(t *testing.T) {
	u := newTestUI(400, 300)
	a := NewPanel(Vec2{X: 50, Y: 20})
	a.SetStyle(StyleSpaceAfter, VectorProp(Vec2{Y: 6}))
	b := NewPanel(Vec2{X: 50, Y: 20})
	b.SetStyle(StyleSpaceBefore, VectorProp(Vec2{Y: 4}))
	u.Root().AddChild(a)
	u.Root().AddChild(b)

	if got := b.ComputeRect().Y; got != 30 {
		t.Errorf("spaced sibling Y = %v, want 30 (20 + 6 + 4)", got)
	}
}

// --- Lazy recomputation ---

func TestComputeRectIsIdempotent(t *testing.T) {
	u := newTestUI(400, 300)
	w := NewPanel(Vec2{X: 50, Y: 50})
	w.SetAnchor(AnchorTopLeft)
	u.Root().AddChild(w)

	first := w.ComputeRect()
	version := w.RectVersion()
	second := w.ComputeRect()
	if first != second {
		t.Errorf("repeated ComputeRect changed the rect: %v then %v", first, second)
	}
	if w.RectVersion() != version {
		t.Errorf("repeated ComputeRect bumped the version: %d -> %d", version, w.RectVersion())
	}

	w.SetOffset(Vec2{X: 5, Y: 5})
	moved := w.ComputeRect()
	if moved.X != 5 || moved.Y != 5 {
		t.Errorf("after SetOffset rect = (%v, %v), want (5, 5)", moved.X, moved.Y)
	}
	if w.RectVersion() != version+1 {
		t.Errorf("version after mutation = %d, want %d", w.RectVersion(), version+1)
	}
}

func TestParentInvalidationPropagates(t *testing.T) {
	u := newTestUI(400, 300)
	parent := NewPanel(Vec2{X: 200, Y: 200})
	parent.SetAnchor(AnchorTopLeft)
	parent.SetStyle(StylePadding, VectorProp(Vec2{}))
	child := NewPanel(Vec2{X: 50, Y: 50})
	child.SetAnchor(AnchorTopLeft)
	u.Root().AddChild(parent)
	parent.AddChild(child)

	if got := child.ComputeRect().X; got != 0 {
		t.Fatalf("child X = %v, want 0", got)
	}
	parent.SetOffset(Vec2{X: 30, Y: 0})
	// The child was not marked dirty itself; it must recompute because the
	// parent's rect version moved.
	if got := child.ComputeRect().X; got != 30 {
		t.Errorf("child X after parent move = %v, want 30", got)
	}
}

func TestDetachedWidgetHasZeroRect(t *testing.T) {
	w := NewPanel(Vec2{X: 50, Y: 50})
	if r := w.ComputeRect(); r != (Rect{}) {
		t.Errorf("detached rect = %v, want zero", r)
	}
}

// --- Drag geometry ---

func TestDragOffsetCaptureKeepsPosition(t *testing.T) {
	u := newTestUI(400, 300)
	w := NewPanel(Vec2{X: 50, Y: 50})
	w.SetAnchorAndOffset(AnchorCenter, Vec2{})
	u.Root().AddChild(w)

	before := w.ComputeRect()
	w.SetDraggable(true)
	after := w.ComputeRect()
	if before != after {
		t.Errorf("enabling drag moved the widget: %v -> %v", before, after)
	}
	if w.dragOffset != (Vec2{X: 175, Y: 125}) {
		t.Errorf("captured drag offset = %v, want (175, 125)", w.dragOffset)
	}
}

func TestLimitDragToParentClamps(t *testing.T) {
	u := newTestUI(400, 300)
	w := NewPanel(Vec2{X: 50, Y: 50})
	w.SetAnchor(AnchorTopLeft)
	w.SetDraggable(true)
	w.LimitDragToParent = true
	u.Root().AddChild(w)
	w.ComputeRect()

	w.dragOffset = Vec2{X: 900, Y: -900}
	w.MarkDirty()
	r := w.ComputeRect()
	if r.X != 350 || r.Y != 0 {
		t.Errorf("clamped rect origin = (%v, %v), want (350, 0)", r.X, r.Y)
	}
	if w.dragOffset != (Vec2{X: 350, Y: 0}) {
		t.Errorf("drag offset after clamp = %v, want (350, 0)", w.dragOffset)
	}
}

// --- Scaling ---

func TestScaleMultipliesOffsets(t *testing.T) {
	u := newTestUI(400, 300)
	u.SetScale(2)
	w := NewPanel(Vec2{X: 50, Y: 50})
	w.SetAnchorAndOffset(AnchorTopLeft, Vec2{X: 10, Y: 5})
	u.Root().AddChild(w)

	r := w.ComputeRect()
	if r.X != 20 || r.Y != 10 {
		t.Errorf("scaled origin = (%v, %v), want (20, 10)", r.X, r.Y)
	}
	// Absolute sizes stay in pixels; only offsets, padding, and spacing scale.
	if r.Width != 50 {
		t.Errorf("scaled width = %v, want 50", r.Width)
	}
}

// --- Rect primitives ---

func TestRectContainsEdges(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner", 30, 30, true},
		{"left of", 9.9, 15, false},
		{"below", 15, 30.1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: Contains(%v, %v) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}
