package trellis

// NewButton creates a clickable button with an attached label. The label
// inherits the button's interaction state, so hover and press styling apply
// to both, and it never competes for events.
func NewButton(text string, size Vec2) *Widget {
	w := newWidget(KindButton, size)
	label := NewLabel(text)
	label.SetAnchor(AnchorCenter)
	w.AddChildInherit(label)
	return w
}

// ButtonLabel returns the button's attached label widget, or nil when the
// label was removed.
func (w *Widget) ButtonLabel() *Widget {
	for _, child := range w.children {
		if child.Kind == KindLabel && child.inheritParentState {
			return child
		}
	}
	return nil
}
