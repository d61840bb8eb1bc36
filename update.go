package trellis

import "time"

// frameContext carries the three recursion-scoped accumulators threaded
// through one Update call tree: the widget claiming pointer interaction this
// frame, the candidate for drag start, and the consumed short-circuit. It is
// never shared across frames or goroutines.
type frameContext struct {
	target     *Widget
	dragTarget *Widget
	consumed   bool
}

// Update runs one frame of the event state machine over the whole tree.
// The snapshot must have been sampled exactly once for this frame. Update
// never mutates tree structure on its own except drag promotion, which
// re-inserts the dragged widget at the end of its parent's child list.
func (u *UI) Update(f *Frame) {
	var t0 time.Time
	if u.debug {
		t0 = time.Now()
	}

	ctx := frameContext{dragTarget: u.dragTarget}
	u.updateWidget(u.root, f, &ctx)
	u.advanceTweens(f.Elapsed)

	u.target = ctx.target
	u.dragTarget = ctx.dragTarget
	if !f.LeftDown() {
		u.dragTarget = nil
	}

	if u.debug {
		u.stats.updateTime = time.Since(t0)
	}
}

// updateWidget advances one widget (and recursively its children) through
// the per-frame state machine described in the package documentation.
func (u *UI) updateWidget(w *Widget, f *Frame, ctx *frameContext) {
	if w.disposed {
		return
	}

	// One-time spawn notification.
	if !w.spawned {
		w.spawned = true
		u.fireSpawn(w)
		if w.parent != nil {
			w.parent.MarkDirty()
		}
	}

	// Decorative attachments copy the parent's state verbatim and do no
	// event processing of their own.
	if w.inheritParentState {
		if p := w.parent; p != nil {
			w.state = p.state
			w.mouseOver = p.mouseOver
			w.focused = p.focused
		}
		return
	}

	effVisible := w.IsVisible()
	effDisabled := w.IsDisabled()
	effLocked := w.IsLocked()
	if !effVisible || effDisabled || effLocked {
		// A locked (but visible, enabled) container may still host children
		// that opted out of the parent lock, e.g. panel scrollbars. Those
		// keep their interaction state; everything else resets.
		if effLocked && !effDisabled && effVisible {
			sorted := w.sorted()
			for i := len(sorted) - 1; i >= 0; i-- {
				if sorted[i].IgnoreParentLock {
					u.updateWidget(sorted[i], f, ctx)
				}
			}
			u.resetOwnInteraction(w)
			for _, child := range w.children {
				if !child.IgnoreParentLock {
					u.resetInteraction(child)
				}
			}
			return
		}
		u.resetInteraction(w)
		return
	}

	if w.ClickThrough {
		// Events pass through to whatever is behind; this widget is never
		// the event target but its children still are.
		u.recurseChildren(w, f, ctx)
		return
	}

	w.ensureRect()
	u.fireBeforeUpdate(w)

	wasOver := w.mouseOver
	prevState := w.state

	if !ctx.consumed {
		inside := w.EffectiveRect().Contains(f.CursorX, f.CursorY)
		// A widget may claim the target from its own ancestors (deepest
		// wins) but not from an earlier, topmost sibling subtree.
		if inside && (ctx.target == nil || isAncestor(ctx.target, w)) {
			ctx.target = w
			w.mouseOver = true
		} else {
			w.mouseOver = false
		}
	} else {
		w.mouseOver = false
	}

	// Pointer focus follows the press edge even when the event was already
	// consumed elsewhere, so unrelated widgets lose focus.
	if f.LeftPressed() {
		u.setFocus(w, w.mouseOver)
	}

	// The discrete state is resolved before children recurse so that
	// inherit-state attachments copy this frame's state, not last frame's.
	// It is reset below when another widget ends up winning the target.
	newState := StateDefault
	if w.mouseOver {
		newState = StateHover
		if f.LeftDown() && (w.focused || w.PromiscuousClicks || prevState == StateDown) {
			newState = StateDown
		}
	} else if w.PromiscuousClicks && prevState == StateDown && f.LeftDown() {
		newState = StateDown
	}
	w.state = newState

	u.recurseChildren(w, f, ctx)

	// Children had first refusal on the drag claim.
	if f.LeftPressed() && w.mouseOver && ctx.dragTarget == nil &&
		(w.draggable || w.naturallyInteractive()) {
		ctx.dragTarget = w
	}

	if ctx.target == w {
		ctx.consumed = true

		if !wasOver {
			u.fireEnter(w)
		}
		if f.LeftPressed() && w.state == StateDown {
			u.firePressed(w)
		}
		if f.LeftReleased() && prevState == StateDown {
			u.fireReleased(w)
			u.fireClick(w)
			u.kindClick(w)
		}
		if f.RightPressed() {
			w.rightDown = true
		}
		if f.RightReleased() && w.rightDown {
			u.fireRightClick(w)
		}

		if w.state == StateDown {
			u.fireWhileDown(w)
		} else {
			u.fireHover(w)
		}
	} else {
		// Promiscuous widgets complete their click even when the release
		// lands elsewhere, so they hold the Down state while the button
		// stays pressed.
		if f.LeftReleased() && prevState == StateDown && w.PromiscuousClicks {
			u.fireReleased(w)
			u.fireClick(w)
		}
		if !(w.PromiscuousClicks && prevState == StateDown && f.LeftDown()) {
			w.state = StateDefault
		}
	}

	// A right click requires the press and release to land on the same
	// widget, so the latch drops as soon as the button is up.
	if !f.RightDown() {
		w.rightDown = false
	}

	if wasOver && !w.mouseOver {
		u.fireLeave(w)
	}

	if f.Wheel != 0 && (ctx.target == w || u.active == w) {
		u.fireWheel(w, f.Wheel)
		u.handleWheel(w, f.Wheel)
	}

	u.updateDrag(w, f, ctx)
	u.kindUpdate(w, f, ctx)
	u.fireAfterUpdate(w)
}

// recurseChildren updates children back-to-front in (Layer, index) priority
// order so the topmost child claims events first. Clipping panels gate
// pointer interaction on containment within their visible region so
// scrolled-away children never receive spurious hover.
func (u *UI) recurseChildren(w *Widget, f *Frame, ctx *frameContext) {
	sorted := w.sorted()
	if len(sorted) == 0 {
		return
	}
	gated := w.Panel != nil && w.Panel.overflow != Overflow &&
		!w.visibleInternalRect().Contains(f.CursorX, f.CursorY)
	for i := len(sorted) - 1; i >= 0; i-- {
		child := sorted[i]
		if gated && !child.anchorToVisible {
			u.resetInteraction(child)
			continue
		}
		u.updateWidget(child, f, ctx)
	}
}

// resetInteraction synthesizes the release/leave events a subtree would
// otherwise miss when it stops being interactive (hidden, disabled, locked,
// or scrolled out of a clipping panel), then resets it to the default state.
func (u *UI) resetInteraction(w *Widget) {
	u.resetOwnInteraction(w)
	for _, child := range w.children {
		u.resetInteraction(child)
	}
}

// resetOwnInteraction resets a single widget without touching its children.
func (u *UI) resetOwnInteraction(w *Widget) {
	if w.mouseOver {
		if w.state == StateDown {
			u.fireReleased(w)
		}
		w.mouseOver = false
		u.fireLeave(w)
	}
	w.state = StateDefault
}

// updateDrag runs the drag lifecycle for draggable widgets that hold the
// persistent drag claim.
func (u *UI) updateDrag(w *Widget, f *Frame, ctx *frameContext) {
	if w.draggable && ctx.dragTarget == w && w.focused && f.LeftDown() {
		moved := f.DeltaX != 0 || f.DeltaY != 0
		if moved || w.dragged {
			if !w.dragged {
				w.dragged = true
				// Render the dragged widget topmost among its siblings.
				w.BringToFront()
				u.fireStartDrag(w)
			}
			if moved {
				w.dragOffset.X += f.DeltaX
				w.dragOffset.Y += f.DeltaY
				u.fireDrag(w)
			}
		}
		if w.dragged {
			w.MarkDirty()
		}
		return
	}
	if w.dragged {
		w.dragged = false
		u.fireStopDrag(w)
		w.MarkDirty()
	}
}

// naturallyInteractive reports widget kinds that claim the drag target even
// without the Draggable flag because their value responds to drag gestures.
func (w *Widget) naturallyInteractive() bool {
	switch w.Kind {
	case KindSlider, KindScrollbar:
		return true
	}
	return false
}

// handleWheel routes a forwarded wheel movement to kind-specific behavior.
func (u *UI) handleWheel(w *Widget, wheel float64) {
	switch w.Kind {
	case KindScrollbar:
		// Wheel-up moves content up, so the scroll position decreases.
		u.rangeNudge(w, -int(sign(wheel)))
	case KindSlider:
		u.rangeNudge(w, int(sign(wheel)))
	}
}

// kindUpdate dispatches per-kind frame logic after the shared machinery.
func (u *UI) kindUpdate(w *Widget, f *Frame, ctx *frameContext) {
	switch w.Kind {
	case KindSlider, KindScrollbar:
		u.rangeUpdate(w, f, ctx)
	case KindPanel:
		u.panelUpdate(w, f)
	case KindSelectList:
		u.listUpdate(w, f)
	case KindDropDown:
		u.dropDownUpdate(w, f)
	}
}

// kindClick runs built-in post-click behavior after user callbacks.
func (u *UI) kindClick(w *Widget) {
	if w.Kind == KindDropDown {
		u.dropDownToggle(w)
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
