package trellis

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Widget is the fundamental UI element. A single flat struct is used for all
// widget kinds to avoid interface dispatch on the hot path; kind-specific
// data hangs off the Panel/Range/List/Text/Drop side structs.
type Widget struct {
	// Identity. ID is not required to be unique; Find returns the first match.
	ID       string
	UserData any
	Kind     WidgetKind

	// Hierarchy.
	parent        *Widget
	children      []*Widget
	indexInParent int
	ui            *UI

	// Geometry inputs. Size semantics per axis: negative uses the themed
	// DefaultSize, 0 fills the parent, (0,1) is a fraction of the parent,
	// >= 1 is absolute pixels.
	Size   Vec2
	anchor Anchor
	offset Vec2

	// Layer raises the widget above siblings on lower layers for both
	// drawing and event priority. Ties break by insertion index.
	Layer int

	// Geometry outputs (cached).
	destRect      Rect
	internalRect  Rect
	rectVersion   uint64
	parentVersion uint64
	dirty         bool

	// Interaction flags. The effective visible/locked/disabled state also
	// considers ancestors; see IsVisible, IsLocked, IsDisabled.
	visible  bool
	locked   bool
	disabled bool

	// ClickThrough passes pointer events to whatever is behind the widget;
	// the widget itself is never the event target.
	ClickThrough bool
	// PromiscuousClicks fires OnClick on release even when the press landed
	// on a different widget.
	PromiscuousClicks bool
	// IgnoreParentLock lets the widget receive events while its direct
	// parent is locked. Used by panel scrollbars.
	IgnoreParentLock bool
	// inheritParentState makes the widget copy its parent's interaction
	// state verbatim instead of computing its own (decorative attachments).
	inheritParentState bool

	// Drag state. draggable is managed through SetDraggable so the initial
	// drag offset is captured from the next computed position.
	draggable         bool
	LimitDragToParent bool
	dragOffset        Vec2
	dragged           bool
	needDragOffset    bool

	// Interaction state (managed by the per-frame update).
	state     State
	mouseOver bool
	focused   bool
	spawned   bool
	rightDown bool

	// Style.
	styles     StyleSheet
	background *Widget

	// Skin, when set, replaces the solid fill with a texture stretched over
	// the widget's rectangle; a non-zero SkinBorder draws it 9-sliced.
	Skin       *ebiten.Image
	SkinBorder FrameSlice

	// anchorToVisible makes layout resolve against the parent's unscrolled
	// internal rect. Set for panel scrollbars, which must not move with the
	// content they scroll.
	anchorToVisible bool

	// Per-widget event callbacks (nil by default; zero cost when unused).
	// UI-level listeners registered via the UI.On* methods fire first.
	OnSpawn            func(*Widget)
	BeforeUpdate       func(*Widget)
	AfterUpdate        func(*Widget)
	OnMouseEnter       func(*Widget)
	OnMouseLeave       func(*Widget)
	OnMouseHover       func(*Widget)
	OnMouseDown        func(*Widget)
	OnMousePressed     func(*Widget)
	OnMouseReleased    func(*Widget)
	OnClick            func(*Widget)
	OnRightClick       func(*Widget)
	OnWheel            func(*Widget, float64)
	OnStartDrag        func(*Widget)
	OnDrag             func(*Widget)
	OnStopDrag         func(*Widget)
	OnFocusChange      func(*Widget, bool)
	OnValueChange      func(*Widget)
	OnVisibilityChange func(*Widget)

	// Kind-specific data.
	Panel *PanelData
	Range *RangeData
	List  *ListData
	Text  *TextData
	Drop  *DropDownData

	// Internal.
	disposed       bool
	childrenSorted bool
	sortedChildren []*Widget // reused buffer for (Layer, index)-sorted traversal
}

// newWidget initializes the common fields shared by all constructors.
func newWidget(kind WidgetKind, size Vec2) *Widget {
	return &Widget{
		Kind:           kind,
		Size:           size,
		anchor:         AnchorAuto,
		visible:        true,
		dirty:          true,
		childrenSorted: true,
	}
}

// --- Property accessors ---

// Anchor returns the widget's anchor.
func (w *Widget) Anchor() Anchor { return w.anchor }

// SetAnchor changes the anchor and marks the widget dirty.
func (w *Widget) SetAnchor(a Anchor) {
	if w.anchor == a {
		return
	}
	w.anchor = a
	w.MarkDirty()
}

// Offset returns the widget's offset from its anchor point, in unscaled pixels.
func (w *Widget) Offset() Vec2 { return w.offset }

// SetOffset changes the anchor offset and marks the widget dirty.
func (w *Widget) SetOffset(o Vec2) {
	if w.offset == o {
		return
	}
	w.offset = o
	w.MarkDirty()
}

// SetAnchorAndOffset changes both placement inputs at once.
func (w *Widget) SetAnchorAndOffset(a Anchor, o Vec2) {
	w.anchor = a
	w.offset = o
	w.MarkDirty()
}

// SetSize changes the widget's size and marks it dirty.
func (w *Widget) SetSize(s Vec2) {
	if w.Size == s {
		return
	}
	w.Size = s
	w.MarkDirty()
}

// Visible returns the widget's own visibility flag.
func (w *Widget) Visible() bool { return w.visible }

// SetVisible toggles the widget's own visibility flag, marks it dirty, and
// fires OnVisibilityChange when the flag changes.
func (w *Widget) SetVisible(v bool) {
	if w.visible == v {
		return
	}
	w.visible = v
	w.MarkDirty()
	if w.ui != nil {
		w.ui.fireVisibilityChange(w)
	} else if w.OnVisibilityChange != nil {
		w.OnVisibilityChange(w)
	}
}

// IsVisible reports the effective visibility: false if the widget or any
// ancestor is hidden.
func (w *Widget) IsVisible() bool {
	for p := w; p != nil; p = p.parent {
		if !p.visible {
			return false
		}
	}
	return true
}

// Locked returns the widget's own lock flag.
func (w *Widget) Locked() bool { return w.locked }

// SetLocked toggles the widget's own lock flag. A locked widget keeps
// updating layout but receives no events.
func (w *Widget) SetLocked(v bool) { w.locked = v }

// IsLocked reports the effective lock state. A widget with IgnoreParentLock
// skips its direct parent's flag but still honors flags above it.
func (w *Widget) IsLocked() bool {
	if w.locked {
		return true
	}
	p := w.parent
	if p != nil && w.IgnoreParentLock {
		p = p.parent
	}
	for ; p != nil; p = p.parent {
		if p.locked {
			return true
		}
	}
	return false
}

// Disabled returns the widget's own disabled flag.
func (w *Widget) Disabled() bool { return w.disabled }

// SetDisabled toggles the widget's own disabled flag.
func (w *Widget) SetDisabled(v bool) { w.disabled = v }

// IsDisabled reports the effective disabled state: true if the widget or any
// ancestor is disabled. Not cached, so toggling an ancestor is visible on
// the next query.
func (w *Widget) IsDisabled() bool {
	for p := w; p != nil; p = p.parent {
		if p.disabled {
			return true
		}
	}
	return false
}

// Draggable reports whether the widget follows pointer drags.
func (w *Widget) Draggable() bool { return w.draggable }

// SetDraggable toggles dragging. Enabling schedules the drag offset to be
// captured from the widget's next computed position.
func (w *Widget) SetDraggable(v bool) {
	if w.draggable == v {
		return
	}
	w.draggable = v
	w.needDragOffset = v
	w.MarkDirty()
}

// State returns the widget's current discrete interaction state.
func (w *Widget) State() State { return w.state }

// IsMouseOver reports whether the pointer was over the widget last update.
func (w *Widget) IsMouseOver() bool { return w.mouseOver }

// IsFocused reports whether the widget holds pointer focus.
func (w *Widget) IsFocused() bool { return w.focused }

// IsDragged reports whether the widget is currently being dragged.
func (w *Widget) IsDragged() bool { return w.dragged }

// Parent returns the owning parent, or nil for a root or detached widget.
func (w *Widget) Parent() *Widget { return w.parent }

// IndexInParent returns the widget's position in its parent's child list.
func (w *Widget) IndexInParent() int { return w.indexInParent }

// Children returns the child list in insertion order. The returned slice
// MUST NOT be mutated by the caller.
func (w *Widget) Children() []*Widget { return w.children }

// NumChildren returns the number of children.
func (w *Widget) NumChildren() int { return len(w.children) }

// MarkDirty schedules the widget's rectangle for recomputation on next access.
func (w *Widget) MarkDirty() { w.dirty = true }

// theme returns the theme of the attached UI tree, or nil when detached.
func (w *Widget) theme() *Theme {
	if w.ui == nil {
		return nil
	}
	return w.ui.theme
}

// uiScale returns the global scale of the attached UI tree (1 when detached).
func (w *Widget) uiScale() float64 {
	if w.ui == nil {
		return 1
	}
	return w.ui.scale
}

// --- Tree manipulation ---

// AddChild appends child to this widget's children. Panics if child is nil,
// already has a parent, or is an ancestor of this widget.
func (w *Widget) AddChild(child *Widget) {
	w.AddChildAt(child, len(w.children))
}

// AddChildAt inserts child at the given index among this widget's children.
// Panics on nil child, an already-parented child, a cycle, or an
// out-of-range index.
func (w *Widget) AddChildAt(child *Widget, index int) {
	if child == nil {
		panic("trellis: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(w, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if child.parent != nil {
		panic("trellis: child already has a parent; remove it first")
	}
	if isAncestor(child, w) {
		panic("trellis: adding child would create a cycle")
	}
	if index < 0 || index > len(w.children) {
		panic("trellis: child index out of range")
	}

	child.parent = w
	w.children = append(w.children, nil)
	copy(w.children[index+1:], w.children[index:])
	w.children[index] = child
	w.fixChildIndices(index)
	w.childrenSorted = false
	child.setUI(w.ui)
	child.MarkDirty()
	w.MarkDirty()
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(w)
	}
}

// AddChildInherit appends a decorative child that copies this widget's
// interaction state verbatim instead of computing its own (e.g. a button's
// label).
func (w *Widget) AddChildInherit(child *Widget) {
	w.AddChild(child)
	child.inheritParentState = true
}

// RemoveChild detaches child from this widget and renumbers the remaining
// siblings. Panics if child's parent is not this widget. The child is
// detached, not disposed.
func (w *Widget) RemoveChild(child *Widget) {
	if globalDebug {
		debugCheckDisposed(w, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child == nil || child.parent != w {
		panic("trellis: widget is not a child of this widget")
	}
	idx := child.indexInParent
	copy(w.children[idx:], w.children[idx+1:])
	w.children[len(w.children)-1] = nil
	w.children = w.children[:len(w.children)-1]
	w.fixChildIndices(idx)
	child.parent = nil
	child.indexInParent = 0
	child.setUI(nil)
	child.MarkDirty()
	w.childrenSorted = false
	w.MarkDirty()
}

// ClearChildren detaches all children. Children are NOT disposed.
func (w *Widget) ClearChildren() {
	for _, child := range w.children {
		child.parent = nil
		child.indexInParent = 0
		child.setUI(nil)
		child.MarkDirty()
	}
	w.children = w.children[:0]
	w.childrenSorted = true
	w.MarkDirty()
}

// BringToFront moves the widget to the end of its parent's child list so it
// renders above its siblings on the same layer. No-op when detached.
func (w *Widget) BringToFront() {
	p := w.parent
	if p == nil || w.indexInParent == len(p.children)-1 {
		return
	}
	idx := w.indexInParent
	copy(p.children[idx:], p.children[idx+1:])
	p.children[len(p.children)-1] = w
	p.fixChildIndices(idx)
	p.childrenSorted = false
	w.MarkDirty()
}

// fixChildIndices renumbers children starting at the given index so sibling
// indices stay contiguous and zero-based.
func (w *Widget) fixChildIndices(from int) {
	for i := from; i < len(w.children); i++ {
		w.children[i].indexInParent = i
	}
}

// setUI propagates the owning UI pointer through a subtree on attach/detach.
func (w *Widget) setUI(u *UI) {
	if w.ui == u {
		return
	}
	w.ui = u
	if w.background != nil {
		w.background.ui = u
	}
	for _, child := range w.children {
		child.setUI(u)
	}
}

// isAncestor reports whether candidate is w or an ancestor of w.
func isAncestor(candidate, w *Widget) bool {
	for p := w; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// Find returns the first direct child with the given ID, or nil.
func (w *Widget) Find(id string) *Widget {
	for _, child := range w.children {
		if child.ID == id {
			return child
		}
	}
	return nil
}

// FindRecursive returns the first widget with the given ID in a depth-first
// search of the subtree (self excluded), or nil.
func (w *Widget) FindRecursive(id string) *Widget {
	for _, child := range w.children {
		if child.ID == id {
			return child
		}
		if found := child.FindRecursive(id); found != nil {
			return found
		}
	}
	return nil
}

// --- Background widget ---

// SetBackground attaches a widget drawn behind this one every frame at this
// widget's rectangle. The background is excluded from tree bookkeeping and
// never receives events. Panics if bg already has a parent. Passing nil
// clears the background.
func (w *Widget) SetBackground(bg *Widget) {
	if bg != nil && bg.parent != nil {
		panic("trellis: background widget already has a parent")
	}
	if w.background != nil {
		w.background.ui = nil
	}
	w.background = bg
	if bg != nil {
		bg.ui = w.ui
		bg.MarkDirty()
	}
	w.MarkDirty()
}

// Background returns the attached background widget, or nil.
func (w *Widget) Background() *Widget { return w.background }

// --- Priority ordering ---

// sorted returns the children ordered by (Layer, insertion index) ascending.
// Drawing iterates this order front-to-back-last; event dispatch iterates it
// backward so the topmost widget claims events first.
func (w *Widget) sorted() []*Widget {
	if len(w.children) == 0 {
		return nil
	}
	if w.childrenSorted && len(w.sortedChildren) == len(w.children) {
		return w.sortedChildren
	}
	w.sortedChildren = append(w.sortedChildren[:0], w.children...)
	sort.SliceStable(w.sortedChildren, func(i, j int) bool {
		a, b := w.sortedChildren[i], w.sortedChildren[j]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		return a.indexInParent < b.indexInParent
	})
	w.childrenSorted = true
	return w.sortedChildren
}

// SetLayer changes the widget's layer and invalidates the parent's sort order.
func (w *Widget) SetLayer(layer int) {
	if w.Layer == layer {
		return
	}
	w.Layer = layer
	if w.parent != nil {
		w.parent.childrenSorted = false
	}
}

// --- Disposal ---

// Dispose removes the widget from its parent, releases owned resources
// (offscreen buffers), and recursively disposes all descendants.
func (w *Widget) Dispose() {
	if w.disposed {
		return
	}
	if w.parent != nil {
		w.parent.RemoveChild(w)
	}
	w.dispose()
}

func (w *Widget) dispose() {
	w.disposed = true
	for _, child := range w.children {
		child.parent = nil
		child.dispose()
	}
	w.children = nil
	w.sortedChildren = nil
	w.parent = nil
	w.ui = nil
	if w.background != nil {
		w.background.dispose()
		w.background = nil
	}
	if w.Panel != nil && w.Panel.buffer != nil {
		w.Panel.buffer.Deallocate()
		w.Panel.buffer = nil
	}
	w.UserData = nil
	w.OnSpawn = nil
	w.BeforeUpdate = nil
	w.AfterUpdate = nil
	w.OnMouseEnter = nil
	w.OnMouseLeave = nil
	w.OnMouseHover = nil
	w.OnMouseDown = nil
	w.OnMousePressed = nil
	w.OnMouseReleased = nil
	w.OnClick = nil
	w.OnRightClick = nil
	w.OnWheel = nil
	w.OnStartDrag = nil
	w.OnDrag = nil
	w.OnStopDrag = nil
	w.OnFocusChange = nil
	w.OnValueChange = nil
	w.OnVisibilityChange = nil
}

// IsDisposed reports whether the widget has been disposed.
func (w *Widget) IsDisposed() bool { return w.disposed }
