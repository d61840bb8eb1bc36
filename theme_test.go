package trellis

import (
	"errors"
	"testing"
)

func TestDefaultThemeCoversEveryKind(t *testing.T) {
	theme := DefaultTheme()
	kinds := []WidgetKind{
		KindPanel, KindButton, KindLabel, KindSlider,
		KindScrollbar, KindProgressBar, KindSelectList, KindDropDown,
	}
	for _, kind := range kinds {
		if _, ok := theme.lookup(kind, StyleDefaultSize, StateDefault); !ok {
			t.Errorf("%s: no themed default size", kind)
		}
	}
}

func TestThemeCloneIsIndependent(t *testing.T) {
	orig := DefaultTheme()
	clone := orig.Clone()

	red := ColorProp(Color{R: 1, A: 1})
	clone.Set(KindPanel, StyleFillColor, StateDefault, red)

	if got, _ := orig.lookup(KindPanel, StyleFillColor, StateDefault); got == red {
		t.Error("mutating the clone changed the original")
	}
	if got, _ := clone.lookup(KindPanel, StyleFillColor, StateDefault); got != red {
		t.Error("clone did not take the mutation")
	}
}

func TestLoadThemeTOML(t *testing.T) {
	doc := []byte(`
[button]
fill_color = "#ff0000"
padding = [4, 6]
scale = 1.5

[button.hover]
fill_color = "#00ff0080"

[panel]
outline_width = 2
`)
	theme, err := LoadThemeTOML(doc)
	if err != nil {
		t.Fatalf("LoadThemeTOML: %v", err)
	}

	fill, ok := theme.lookup(KindButton, StyleFillColor, StateDefault)
	if !ok || fill.AsColor() != (Color{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("button fill = %v", fill.AsColor())
	}
	pad, _ := theme.lookup(KindButton, StylePadding, StateDefault)
	if pad.AsVector() != (Vec2{X: 4, Y: 6}) {
		t.Errorf("button padding = %v, want (4, 6)", pad.AsVector())
	}
	scale, _ := theme.lookup(KindButton, StyleScale, StateDefault)
	if scale.AsFloat() != 1.5 {
		t.Errorf("button scale = %v, want 1.5", scale.AsFloat())
	}

	hover, _ := theme.lookup(KindButton, StyleFillColor, StateHover)
	want := Color{R: 0, G: 1, B: 0, A: 128.0 / 255}
	if hover.AsColor() != want {
		t.Errorf("button hover fill = %v, want %v", hover.AsColor(), want)
	}

	ow, _ := theme.lookup(KindPanel, StyleOutlineWidth, StateDefault)
	if ow.AsFloat() != 2 {
		t.Errorf("panel outline width = %v, want 2", ow.AsFloat())
	}

	// Untouched kinds keep the built-in defaults.
	if _, ok := theme.lookup(KindSlider, StyleTrackColor, StateDefault); !ok {
		t.Error("loading a theme dropped the built-in slider defaults")
	}
}

func TestLoadThemeTOMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown kind", "[gizmo]\nfill_color = \"#ffffff\""},
		{"unknown property", "[button]\nglow = 3"},
		{"unknown state", "[button.pressed]\nfill_color = \"#ffffff\""},
		{"bad hex color", "[button]\nfill_color = \"#zzz\""},
		{"wrong vector arity", "[button]\npadding = [1, 2, 3]"},
		{"non-numeric vector", "[button]\npadding = [\"a\", \"b\"]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadThemeTOML([]byte(tt.doc))
			if !errors.Is(err, ErrInvalidValue) {
				t.Errorf("error = %v, want ErrInvalidValue", err)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#ffffff", ColorWhite, true},
		{"#000000", Color{A: 1}, true},
		{"#ff000080", Color{R: 1, A: 128.0 / 255}, true},
		{"ff0000", Color{R: 1, A: 1}, true}, // leading # is optional
		{"#abc", Color{}, false},
		{"#gggggg", Color{}, false},
	}
	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if tt.ok != (err == nil) {
			t.Errorf("parseHexColor(%q) error = %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetThemeSwapsResolution(t *testing.T) {
	u := newTestUI(400, 300)
	w := NewPanel(Vec2{X: 50, Y: 50})
	u.Root().AddChild(w)

	red := ColorProp(Color{R: 1, A: 1})
	custom := DefaultTheme().Clone()
	custom.Set(KindPanel, StyleFillColor, StateDefault, red)
	u.SetTheme(custom)

	if got := w.Style(StyleFillColor); got != red {
		t.Errorf("fill after SetTheme = %v, want %v", got, red)
	}
}
