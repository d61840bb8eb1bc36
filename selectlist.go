package trellis

import "math"

// ListData holds a select list's item model and its windowed row pool. The
// pool holds one label per visible row, not per item; each pooled row shows
// the item at topRow plus its slot index. Rows are refreshed lazily on the
// next update after the model or the window moves.
type ListData struct {
	items    []string
	selected int
	labels   []*Widget
	topRow   int
	rebuild  bool
	silent   bool
}

// NewSelectList creates a scrollable list of selectable string items. The
// list clips its rows and manages its own scrollbar, which appears only when
// the items overflow.
func NewSelectList(size Vec2) *Widget {
	w := newWidget(KindSelectList, size)
	w.List = &ListData{selected: -1}
	w.Panel = &PanelData{overflow: Overflow}
	w.SetOverflow(VerticalScroll)
	return w
}

// mustList returns the list data, panicking when the widget is not a list.
func (w *Widget) mustList() *ListData {
	if w.List == nil {
		panic("trellis: operation requires a select list widget")
	}
	return w.List
}

// Items returns a copy of the current item values.
func (w *Widget) Items() []string {
	l := w.mustList()
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// NumItems returns the number of items.
func (w *Widget) NumItems() int { return len(w.mustList().items) }

// SetItems replaces the item model. The selection index is kept when still
// in range, otherwise cleared without firing a change event.
func (w *Widget) SetItems(items []string) {
	l := w.mustList()
	l.items = append(l.items[:0], items...)
	if l.selected >= len(l.items) {
		l.selected = -1
	}
	l.rebuild = true
	w.MarkDirty()
}

// AddItem appends an item.
func (w *Widget) AddItem(value string) {
	l := w.mustList()
	l.items = append(l.items, value)
	l.rebuild = true
	w.MarkDirty()
}

// RemoveItem deletes the item at index. Returns ErrInvalidValue when index is
// out of range. Removing the selected item clears the selection and fires a
// change event; the selection index shifts down when an earlier item goes.
func (w *Widget) RemoveItem(index int) error {
	l := w.mustList()
	if index < 0 || index >= len(l.items) {
		return ErrInvalidValue
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	switch {
	case l.selected == index:
		l.selected = -1
		w.fireListChange()
	case l.selected > index:
		l.selected--
	}
	l.rebuild = true
	w.MarkDirty()
	return nil
}

// Select chooses the item at index, or clears the selection with -1. Returns
// ErrInvalidValue for any other out-of-range index. Fires a change event when
// the selection actually moves, unless the list is silent.
func (w *Widget) Select(index int) error {
	l := w.mustList()
	if index < -1 || index >= len(l.items) {
		return ErrInvalidValue
	}
	if l.selected == index {
		return nil
	}
	l.selected = index
	l.rebuild = true
	w.MarkDirty()
	w.fireListChange()
	return nil
}

// SelectValue chooses the first item equal to value. Returns ErrNotFound
// when no item matches.
func (w *Widget) SelectValue(value string) error {
	l := w.mustList()
	for i, item := range l.items {
		if item == value {
			return w.Select(i)
		}
	}
	return ErrNotFound
}

// SelectedIndex returns the selected item index, or -1 when nothing is
// selected.
func (w *Widget) SelectedIndex() int { return w.mustList().selected }

// SelectedValue returns the selected item's value, or "" when nothing is
// selected.
func (w *Widget) SelectedValue() string {
	l := w.mustList()
	if l.selected < 0 || l.selected >= len(l.items) {
		return ""
	}
	return l.items[l.selected]
}

// SetSilent suppresses the list's value-change events while set. Useful when
// programmatically syncing the selection to external state.
func (w *Widget) SetSilent(silent bool) { w.mustList().silent = silent }

// ScrollToSelected moves the window just far enough to bring the selected
// row into view.
func (w *Widget) ScrollToSelected() {
	l := w.mustList()
	if l.selected < 0 || l.selected >= len(l.items) {
		return
	}
	sb := w.Panel.scrollbar
	if sb == nil {
		return
	}
	rows := w.listVisibleRows()
	switch {
	case l.selected < l.topRow:
		sb.SetValue(float64(l.selected))
	case l.selected >= l.topRow+rows:
		sb.SetValue(float64(l.selected - rows + 1))
	default:
		return
	}
	w.syncListWindow()
}

// TopRow returns the item index of the first row the window shows.
func (w *Widget) TopRow() int { return w.mustList().topRow }

// syncListWindow pulls the window position from the scrollbar and schedules a
// row refresh when it moved.
func (w *Widget) syncListWindow() {
	l := w.List
	sb := w.Panel.scrollbar
	if top := int(math.Round(sb.Range.Value)); top != l.topRow {
		l.topRow = top
		l.rebuild = true
		w.MarkDirty()
	}
}

func (w *Widget) fireListChange() {
	if w.List.silent {
		return
	}
	if w.ui != nil {
		w.ui.fireValueChange(w)
	} else if w.OnValueChange != nil {
		w.OnValueChange(w)
	}
}

// listRowMetrics returns the vertical advance per row and the flow gap
// between rows, resolved from the theme's label sheet.
func (w *Widget) listRowMetrics() (advance, gap float64) {
	height := 22.0
	gap = 4.0
	if t := w.theme(); t != nil {
		if p, ok := t.lookup(KindLabel, StyleDefaultSize, StateDefault); ok {
			height = p.AsVector().Y
		}
		if p, ok := t.lookup(KindLabel, StyleSpaceAfter, StateDefault); ok {
			gap = p.AsVector().Y
		}
	}
	scale := w.uiScale()
	return (height + gap) * scale, gap * scale
}

// listVisibleRows returns how many rows fit the visible region, at least 1.
func (w *Widget) listVisibleRows() int {
	advance, gap := w.listRowMetrics()
	if advance <= 0 {
		return 1
	}
	w.ensureRect()
	n := int((w.visibleInternalRect().Height + gap) / advance)
	if n < 1 {
		n = 1
	}
	return n
}

// listUpdate drives the windowed row pool. The scrollbar counts in whole
// rows over [0, itemCount - visibleCount]; the pool holds one label per
// visible row, refreshed to show the items under the window.
func (u *UI) listUpdate(w *Widget, f *Frame) {
	l := w.List
	if l == nil {
		return
	}
	rows := w.listVisibleRows()
	maxTop := len(l.items) - rows
	if maxTop < 0 {
		maxTop = 0
	}

	if sb := w.Panel.scrollbar; sb != nil {
		if sb.Range.Max != float64(maxTop) {
			sb.Range.Max = float64(maxTop)
			// Quantize the scrollbar to whole rows.
			sb.Range.StepsCount = maxTop
			if sb.Range.Value > sb.Range.Max {
				sb.SetValue(sb.Range.Max)
			}
			w.MarkDirty()
		}
		sb.SetVisible(maxTop > 0)

		// Wheel over the body moves the window one row per notch; wheel
		// over the scrollbar is handled by the scrollbar itself.
		if f.Wheel != 0 && maxTop > 0 &&
			w.visibleInternalRect().Contains(f.CursorX, f.CursorY) &&
			!(sb.visible && sb.ComputeRect().Contains(f.CursorX, f.CursorY)) {
			sb.SetValue(sb.Range.Value - f.Wheel)
		}
		w.syncListWindow()
	}

	pool := len(l.items) - l.topRow
	if pool > rows {
		pool = rows
	}
	if pool != len(l.labels) {
		l.rebuild = true
	}
	if !l.rebuild {
		return
	}
	l.rebuild = false

	for len(l.labels) < pool {
		slot := len(l.labels)
		row := NewLabel("")
		row.OnClick = func(*Widget) { _ = w.Select(w.List.topRow + slot) }
		w.AddChild(row)
		l.labels = append(l.labels, row)
	}
	for len(l.labels) > pool {
		last := l.labels[len(l.labels)-1]
		l.labels = l.labels[:len(l.labels)-1]
		w.RemoveChild(last)
		last.dispose()
	}

	highlight := w.Style(StyleSelectedColor)
	for i, row := range l.labels {
		item := l.topRow + i
		row.SetText(l.items[item])
		if item == l.selected && !highlight.IsZero() {
			row.SetStyle(StyleFillColor, highlight)
		} else {
			row.ClearStyle(StyleFillColor)
		}
	}
}
