package trellis

// DropDownData holds the collapsed header label and the select list a
// dropdown shows while open.
type DropDownData struct {
	header      *Widget
	list        *Widget
	open        bool
	placeholder string
}

// NewDropDown creates a collapsed selection control. Clicking the header
// opens an attached select list below it; choosing an item updates the
// header, closes the list, and fires OnValueChange on the dropdown itself.
func NewDropDown(size Vec2, items []string) *Widget {
	w := newWidget(KindDropDown, size)
	d := &DropDownData{placeholder: "Select..."}
	w.Drop = d

	d.header = NewLabel(d.placeholder)
	d.header.SetAnchor(AnchorCenterLeft)
	w.AddChildInherit(d.header)

	d.list = NewSelectList(Vec2{X: 0, Y: -1})
	d.list.SetAnchor(AnchorTopLeft)
	d.list.SetLayer(1)
	d.list.SetVisible(false)
	d.list.SetItems(items)
	d.list.OnValueChange = func(lw *Widget) {
		if v := lw.SelectedValue(); v != "" {
			d.header.SetText(v)
		} else {
			d.header.SetText(d.placeholder)
		}
		d.open = false
		if w.ui != nil {
			w.ui.fireValueChange(w)
		} else if w.OnValueChange != nil {
			w.OnValueChange(w)
		}
	}
	w.AddChild(d.list)
	return w
}

// mustDrop returns the dropdown data, panicking when the widget is not a
// dropdown.
func (w *Widget) mustDrop() *DropDownData {
	if w.Drop == nil {
		panic("trellis: operation requires a dropdown widget")
	}
	return w.Drop
}

// DropDownList returns the dropdown's attached select list. Use it to read
// or change the selection programmatically.
func (w *Widget) DropDownList() *Widget { return w.mustDrop().list }

// IsOpen reports whether the dropdown's list is showing.
func (w *Widget) IsOpen() bool { return w.mustDrop().open }

// SetPlaceholder changes the header text shown while nothing is selected.
func (w *Widget) SetPlaceholder(text string) {
	d := w.mustDrop()
	d.placeholder = text
	if d.list.SelectedIndex() < 0 {
		d.header.SetText(text)
	}
}

// dropDownToggle flips the open state on a header click. Opening promotes
// the dropdown above its siblings so the list draws over them.
func (u *UI) dropDownToggle(w *Widget) {
	d := w.Drop
	if d == nil {
		return
	}
	d.open = !d.open
	if d.open {
		w.BringToFront()
	}
}

// dropDownUpdate keeps the list placed under the header, syncs its
// visibility to the open state, and closes on a press outside the control.
func (u *UI) dropDownUpdate(w *Widget, f *Frame) {
	d := w.Drop
	if d == nil {
		return
	}
	if d.open {
		d.list.SetOffset(Vec2{Y: w.destRect.Height / w.uiScale()})
		// Any button press outside the header and the open list dismisses it.
		if f.AnyPressed() &&
			!w.destRect.Contains(f.CursorX, f.CursorY) &&
			!d.list.ComputeRect().Contains(f.CursorX, f.CursorY) {
			d.open = false
		}
	}
	if d.list.visible != d.open {
		d.list.SetVisible(d.open)
	}
}
