package trellis

// TextData holds a label's content and optional per-widget font. A nil Font
// falls back to the UI's measurer.
type TextData struct {
	Content string
	Font    Font
}

// NewLabel creates a text widget sized by the theme's label defaults. Labels
// hit-test and flow against their measured text extent, not the nominal box.
func NewLabel(text string) *Widget {
	w := newWidget(KindLabel, Vec2{X: -1, Y: -1})
	w.Text = &TextData{Content: text}
	return w
}

// mustText returns the text data, panicking when the widget carries none.
func (w *Widget) mustText() *TextData {
	if w.Text == nil {
		panic("trellis: operation requires a text widget")
	}
	return w.Text
}

// TextContent returns the label's current text.
func (w *Widget) TextContent() string { return w.mustText().Content }

// SetText replaces the label's text and invalidates its layout, since the
// effective rect tracks the measured extent.
func (w *Widget) SetText(text string) {
	t := w.mustText()
	if t.Content == text {
		return
	}
	t.Content = text
	w.MarkDirty()
}

// SetFont overrides the measuring font for this label only.
func (w *Widget) SetFont(f Font) {
	t := w.mustText()
	t.Font = f
	w.MarkDirty()
}
