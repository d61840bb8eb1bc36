package trellis

// UI owns one widget tree, its theme, scale, input bookkeeping, and
// tree-wide event listeners. Multiple UI instances are independent; a single
// instance must only be updated from one goroutine (the frame loop).
type UI struct {
	root     *Widget
	theme    *Theme
	scale    float64
	measurer Font

	handlers handlerRegistry

	// Per-frame resolution results.
	target     *Widget
	dragTarget *Widget
	active     *Widget

	prevFrame   *Frame
	injectQueue []syntheticEvent

	backend *ebitenBackend
	tweens  []*Tween

	screenshotQueue []screenshotRequest
	screenshotDir   string

	debug bool
	stats debugStats
}

// New creates a UI with the built-in default theme and scale 1.
func New() *UI {
	return NewWithTheme(DefaultTheme())
}

// NewWithTheme creates a UI using an explicit theme.
func NewWithTheme(theme *Theme) *UI {
	root := newWidget(KindRoot, Vec2{})
	// The root itself never owns pointer interaction.
	root.ClickThrough = true
	u := &UI{
		root:  root,
		theme: theme,
		scale: 1,
	}
	root.ui = u
	return u
}

// Root returns the implicit root widget. Add top-level widgets to it.
func (u *UI) Root() *Widget { return u.root }

// Theme returns the UI's theme registry.
func (u *UI) Theme() *Theme { return u.theme }

// SetTheme swaps the theme and invalidates the whole tree.
func (u *UI) SetTheme(theme *Theme) {
	u.theme = theme
	markSubtreeDirty(u.root)
}

// Scale returns the global UI scale factor.
func (u *UI) Scale() float64 { return u.scale }

// SetScale changes the global UI scale (offsets, padding, and flow spacing
// multiply by it) and invalidates the whole tree.
func (u *UI) SetScale(s float64) {
	if s <= 0 || s == u.scale {
		return
	}
	u.scale = s
	markSubtreeDirty(u.root)
}

// Measurer returns the default font used by labels without an explicit one.
func (u *UI) Measurer() Font { return u.measurer }

// SetMeasurer sets the default text measurer for the tree.
func (u *UI) SetMeasurer(f Font) {
	u.measurer = f
	markSubtreeDirty(u.root)
}

// SetScreenSize resizes the root rectangle. Call when the window or layout
// size changes; Run does this automatically.
func (u *UI) SetScreenSize(width, height int) {
	rect := Rect{Width: float64(width), Height: float64(height)}
	if u.root.destRect == rect {
		return
	}
	u.root.destRect = rect
	u.root.internalRect = u.root.computeInternalRect(rect)
	u.root.rectVersion++
}

// TargetWidget returns the widget that owned pointer interaction on the most
// recent update, or nil.
func (u *UI) TargetWidget() *Widget { return u.target }

// ActiveWidget returns the widget holding pointer focus, or nil.
func (u *UI) ActiveWidget() *Widget { return u.active }

// Find searches the whole tree for the first widget with the given ID.
func (u *UI) Find(id string) *Widget { return u.root.FindRecursive(id) }

// setFocus updates a widget's focus flag, maintains the active widget, and
// fires focus-change events on transitions.
func (u *UI) setFocus(w *Widget, focused bool) {
	if w.focused == focused {
		return
	}
	w.focused = focused
	if focused {
		u.active = w
	} else if u.active == w {
		u.active = nil
	}
	u.fireFocusChange(w, focused)
}

// addTween registers a tween to be advanced by Update until it finishes.
func (u *UI) addTween(t *Tween) {
	u.tweens = append(u.tweens, t)
}

// advanceTweens steps all live tweens and compacts out the finished ones.
func (u *UI) advanceTweens(dt float64) {
	if len(u.tweens) == 0 {
		return
	}
	live := u.tweens[:0]
	for _, t := range u.tweens {
		t.Update(dt)
		if !t.Done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(u.tweens); i++ {
		u.tweens[i] = nil
	}
	u.tweens = live
}

// markSubtreeDirty schedules rect recomputation for a widget and all its
// descendants.
func markSubtreeDirty(w *Widget) {
	w.dirty = true
	for _, child := range w.children {
		markSubtreeDirty(child)
	}
}
