package trellis

import (
	"errors"
	"fmt"
	"testing"
)

// drain feeds every queued synthetic event through the update loop.
func drain(u *UI) {
	for u.HasPendingInput() {
		f := u.NextFrame()
		u.Update(&f)
	}
}

func TestSelectListModel(t *testing.T) {
	list := NewSelectList(Vec2{X: 200, Y: 120})

	list.SetItems([]string{"a", "b", "c"})
	if list.NumItems() != 3 {
		t.Fatalf("NumItems = %d, want 3", list.NumItems())
	}

	items := list.Items()
	items[0] = "mutated"
	if list.Items()[0] != "a" {
		t.Error("Items must return a copy")
	}

	list.AddItem("d")
	if list.NumItems() != 4 {
		t.Errorf("NumItems after add = %d, want 4", list.NumItems())
	}

	if err := list.Select(2); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if list.SelectedIndex() != 2 || list.SelectedValue() != "c" {
		t.Errorf("selection = %d %q, want 2 %q", list.SelectedIndex(), list.SelectedValue(), "c")
	}

	if err := list.Select(-1); err != nil {
		t.Fatalf("Select(-1): %v", err)
	}
	if list.SelectedIndex() != -1 || list.SelectedValue() != "" {
		t.Error("Select(-1) must clear the selection")
	}

	if err := list.Select(10); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("out-of-range Select error = %v, want ErrInvalidValue", err)
	}
	if err := list.SelectValue("b"); err != nil {
		t.Fatalf("SelectValue: %v", err)
	}
	if list.SelectedIndex() != 1 {
		t.Errorf("SelectValue index = %d, want 1", list.SelectedIndex())
	}
	if err := list.SelectValue("zzz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing SelectValue error = %v, want ErrNotFound", err)
	}
}

func TestSelectListChangeEvents(t *testing.T) {
	list := NewSelectList(Vec2{X: 200, Y: 120})
	list.SetItems([]string{"a", "b", "c"})
	events := 0
	list.OnValueChange = func(*Widget) { events++ }

	_ = list.Select(1)
	_ = list.Select(1) // no move, no event
	if events != 1 {
		t.Fatalf("events after repeated select = %d, want 1", events)
	}

	list.SetSilent(true)
	_ = list.Select(2)
	if events != 1 {
		t.Errorf("silent select fired an event")
	}
	if list.SelectedIndex() != 2 {
		t.Errorf("silent select did not move the selection")
	}
	list.SetSilent(false)
	_ = list.Select(0)
	if events != 2 {
		t.Errorf("events after unsilencing = %d, want 2", events)
	}

	// Replacing the model keeps an in-range selection without firing.
	list.SetItems([]string{"x", "y"})
	if list.SelectedIndex() != 0 || events != 2 {
		t.Errorf("SetItems kept selection %d with %d events, want 0 with 2", list.SelectedIndex(), events)
	}
	// Shrinking it below the selection clears silently.
	_ = list.Select(1)
	list.SetItems([]string{"only"})
	if list.SelectedIndex() != -1 || events != 3 {
		t.Errorf("SetItems clear: selection %d, events %d; want -1, 3", list.SelectedIndex(), events)
	}
}

func TestRemoveItemAdjustsSelection(t *testing.T) {
	list := NewSelectList(Vec2{X: 200, Y: 120})
	list.SetItems([]string{"a", "b", "c", "d"})
	events := 0
	list.OnValueChange = func(*Widget) { events++ }
	_ = list.Select(2)
	events = 0

	if err := list.RemoveItem(0); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if list.SelectedIndex() != 1 || list.SelectedValue() != "c" {
		t.Errorf("selection after removing earlier item = %d %q, want 1 %q",
			list.SelectedIndex(), list.SelectedValue(), "c")
	}
	if events != 0 {
		t.Errorf("index shift fired %d events, want 0", events)
	}

	if err := list.RemoveItem(1); err != nil {
		t.Fatalf("RemoveItem selected: %v", err)
	}
	if list.SelectedIndex() != -1 {
		t.Error("removing the selected item must clear the selection")
	}
	if events != 1 {
		t.Errorf("removing the selected item fired %d events, want 1", events)
	}

	if err := list.RemoveItem(9); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("out-of-range RemoveItem error = %v, want ErrInvalidValue", err)
	}
}

func TestSelectListBuildsRowPool(t *testing.T) {
	u := newTestUI(400, 300)
	list := NewSelectList(Vec2{X: 200, Y: 120})
	list.SetAnchor(AnchorTopLeft)
	u.Root().AddChild(list)
	list.SetItems([]string{"a", "b", "c"})

	step(u, frameAt(390, 290))

	l := list.List
	if len(l.labels) != 3 {
		t.Fatalf("row pool size = %d, want 3", len(l.labels))
	}
	for i, row := range l.labels {
		if row.TextContent() != l.items[i] {
			t.Errorf("row %d text = %q, want %q", i, row.TextContent(), l.items[i])
		}
		if row.Parent() != list {
			t.Errorf("row %d not parented to the list", i)
		}
	}

	list.SetItems([]string{"x"})
	step(u, frameAt(390, 290))
	if len(l.labels) != 1 {
		t.Errorf("row pool after shrink = %d, want 1", len(l.labels))
	}
	if l.labels[0].TextContent() != "x" {
		t.Errorf("surviving row text = %q, want %q", l.labels[0].TextContent(), "x")
	}
}

func TestRowClickSelectsAndHighlights(t *testing.T) {
	u := newTestUI(400, 300)
	list := NewSelectList(Vec2{X: 200, Y: 120})
	list.SetAnchor(AnchorTopLeft)
	u.Root().AddChild(list)
	list.SetItems([]string{"a", "b", "c"})
	events := 0
	list.OnValueChange = func(*Widget) { events++ }

	step(u, frameAt(390, 290))

	row := list.List.labels[1].ComputeRect()
	u.InjectClick(row.CenterX(), row.CenterY())
	drain(u)

	if list.SelectedIndex() != 1 {
		t.Fatalf("selection after row click = %d, want 1", list.SelectedIndex())
	}
	if events != 1 {
		t.Errorf("value-change events = %d, want 1", events)
	}

	// The highlight lands on the next update.
	step(u, frameAt(390, 290))
	want := list.Style(StyleSelectedColor)
	if got := list.List.labels[1].Style(StyleFillColor); got != want {
		t.Errorf("selected row fill = %v, want highlight %v", got, want)
	}
	if got := list.List.labels[0].Style(StyleFillColor); got == want {
		t.Error("unselected row carries the highlight")
	}
}

func TestListWindowsRowsToVisibleArea(t *testing.T) {
	u := newTestUI(400, 300)
	list := NewSelectList(Vec2{X: 200, Y: 120})
	list.SetAnchor(AnchorTopLeft)
	u.Root().AddChild(list)

	items := make([]string, 20)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i)
	}
	list.SetItems(items)
	step(u, frameAt(390, 290))

	// The pool covers the visible rows, not the whole model.
	l := list.List
	rows := list.listVisibleRows()
	if rows != 4 || len(l.labels) != rows {
		t.Fatalf("pool size = %d with %d visible rows, want 4 and 4", len(l.labels), rows)
	}

	sb := list.Panel.scrollbar
	if sb == nil || !sb.IsVisible() {
		t.Fatal("overflowing list must show its scrollbar")
	}
	if sb.Range.Max != 16 {
		t.Errorf("scrollbar max = %v, want 16 (items minus visible rows)", sb.Range.Max)
	}

	// One wheel notch over the body advances the window by one row.
	f := frameAt(100, 60)
	f.Wheel = -1
	step(u, f)
	if got := list.TopRow(); got != 1 {
		t.Fatalf("top row after wheel = %d, want 1", got)
	}
	step(u, frameAt(390, 290))
	if got := l.labels[0].TextContent(); got != "item 1" {
		t.Errorf("top row text after wheel = %q, want %q", got, "item 1")
	}
}

func TestScrollToSelected(t *testing.T) {
	u := newTestUI(400, 300)
	list := NewSelectList(Vec2{X: 200, Y: 120})
	list.SetAnchor(AnchorTopLeft)
	u.Root().AddChild(list)

	items := make([]string, 20)
	for i := range items {
		items[i] = fmt.Sprintf("item %d", i)
	}
	list.SetItems(items)
	step(u, frameAt(390, 290))
	rows := list.listVisibleRows()

	list.SetSilent(true)
	_ = list.Select(15)
	list.ScrollToSelected()
	if got := list.TopRow(); got != 15-rows+1 {
		t.Fatalf("top row after scrolling to 15 = %d, want %d", got, 15-rows+1)
	}
	step(u, frameAt(390, 290))

	last := list.List.labels[rows-1]
	if got := last.TextContent(); got != "item 15" {
		t.Errorf("bottom row text = %q, want %q", got, "item 15")
	}
	row := last.ComputeRect()
	visible := list.visibleInternalRect()
	if row.Y < visible.Y || row.Bottom() > visible.Bottom() {
		t.Errorf("selected row %v not inside visible region %v", row, visible)
	}

	_ = list.Select(0)
	list.ScrollToSelected()
	if got := list.TopRow(); got != 0 {
		t.Errorf("top row after scrolling back up = %d, want 0", got)
	}
	step(u, frameAt(390, 290))
	if got := list.List.labels[0].TextContent(); got != "item 0" {
		t.Errorf("top row text = %q, want %q", got, "item 0")
	}
}

func TestMustListPanicsOnNonList(t *testing.T) {
	w := NewPanel(Vec2{X: 10, Y: 10})
	mustPanic(t, "Select on panel", func() { _ = w.Select(0) })
	mustPanic(t, "Items on panel", func() { w.Items() })
}
