package trellis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Theme is an explicit registry of per-kind default style sheets. Widgets
// resolve properties missing from their own sheet through the theme of the
// UI tree they are attached to, which allows multiple independently themed
// trees in one process.
type Theme struct {
	kinds map[WidgetKind]*StyleSheet
}

// NewTheme creates an empty theme.
func NewTheme() *Theme {
	return &Theme{kinds: make(map[WidgetKind]*StyleSheet)}
}

// Sheet returns the style sheet for a widget kind, creating it on demand.
func (t *Theme) Sheet(kind WidgetKind) *StyleSheet {
	s := t.kinds[kind]
	if s == nil {
		s = &StyleSheet{}
		t.kinds[kind] = s
	}
	return s
}

// Set stores a property for a widget kind and interaction state.
func (t *Theme) Set(kind WidgetKind, name string, state State, p StyleProp) {
	t.Sheet(kind).Set(name, state, p)
}

// lookup resolves (kind, name, state) with default-state fallback.
func (t *Theme) lookup(kind WidgetKind, name string, state State) (StyleProp, bool) {
	if s, ok := t.kinds[kind]; ok {
		return s.lookup(name, state)
	}
	return StyleProp{}, false
}

// Clone returns a deep copy of the theme, useful as a starting point for
// variations.
func (t *Theme) Clone() *Theme {
	out := NewTheme()
	for kind, sheet := range t.kinds {
		out.kinds[kind] = sheet.clone()
	}
	return out
}

// DefaultTheme builds the built-in flat dark theme. Every widget kind gets a
// usable default size, padding, and state-dependent fill colors.
func DefaultTheme() *Theme {
	t := NewTheme()

	set := func(kind WidgetKind, name string, p StyleProp) { t.Set(kind, name, StateDefault, p) }

	// Panels: neutral surface, generous padding.
	set(KindPanel, StyleFillColor, ColorProp(Color{0.13, 0.15, 0.19, 1}))
	set(KindPanel, StyleOutlineColor, ColorProp(Color{0, 0, 0, 0.6}))
	set(KindPanel, StyleOutlineWidth, FloatProp(1))
	set(KindPanel, StylePadding, VectorProp(Vec2{10, 10}))
	set(KindPanel, StyleDefaultSize, VectorProp(Vec2{200, 150}))

	// Buttons: state-dependent fills, label centered by the attached child.
	set(KindButton, StyleFillColor, ColorProp(Color{0.23, 0.29, 0.40, 1}))
	t.Set(KindButton, StyleFillColor, StateHover, ColorProp(Color{0.29, 0.37, 0.52, 1}))
	t.Set(KindButton, StyleFillColor, StateDown, ColorProp(Color{0.18, 0.22, 0.31, 1}))
	set(KindButton, StylePadding, VectorProp(Vec2{8, 0}))
	set(KindButton, StyleDefaultSize, VectorProp(Vec2{0, 40}))
	set(KindButton, StyleSpaceAfter, VectorProp(Vec2{0, 8}))

	// Labels: content-sized, small flow spacing.
	set(KindLabel, StyleDefaultSize, VectorProp(Vec2{0, 22}))
	set(KindLabel, StyleFillColor, ColorProp(Color{0.92, 0.93, 0.95, 1}))
	t.Set(KindLabel, StyleFillColor, StateHover, ColorProp(ColorWhite))
	set(KindLabel, StyleSpaceAfter, VectorProp(Vec2{4, 4}))

	// Range controls.
	set(KindSlider, StyleTrackColor, ColorProp(Color{0.18, 0.20, 0.25, 1}))
	set(KindSlider, StyleHandleColor, ColorProp(Color{0.55, 0.62, 0.74, 1}))
	t.Set(KindSlider, StyleHandleColor, StateHover, ColorProp(Color{0.66, 0.73, 0.85, 1}))
	t.Set(KindSlider, StyleHandleColor, StateDown, ColorProp(Color{0.78, 0.84, 0.94, 1}))
	set(KindSlider, StyleDefaultSize, VectorProp(Vec2{0, 24}))
	set(KindSlider, StyleSpaceAfter, VectorProp(Vec2{0, 8}))

	set(KindScrollbar, StyleTrackColor, ColorProp(Color{0.16, 0.18, 0.22, 1}))
	set(KindScrollbar, StyleHandleColor, ColorProp(Color{0.38, 0.43, 0.52, 1}))
	t.Set(KindScrollbar, StyleHandleColor, StateHover, ColorProp(Color{0.47, 0.53, 0.64, 1}))
	t.Set(KindScrollbar, StyleHandleColor, StateDown, ColorProp(Color{0.58, 0.64, 0.76, 1}))
	set(KindScrollbar, StyleDefaultSize, VectorProp(Vec2{14, 0}))

	set(KindProgressBar, StyleTrackColor, ColorProp(Color{0.16, 0.18, 0.22, 1}))
	set(KindProgressBar, StyleFillColor, ColorProp(Color{0.22, 0.52, 0.35, 1}))
	set(KindProgressBar, StyleOutlineColor, ColorProp(Color{0, 0, 0, 0.6}))
	set(KindProgressBar, StyleOutlineWidth, FloatProp(1))
	set(KindProgressBar, StyleDefaultSize, VectorProp(Vec2{0, 20}))
	set(KindProgressBar, StyleSpaceAfter, VectorProp(Vec2{0, 8}))

	// Select list and dropdown.
	set(KindSelectList, StyleFillColor, ColorProp(Color{0.10, 0.12, 0.15, 1}))
	set(KindSelectList, StyleSelectedColor, ColorProp(Color{0.94, 0.78, 0.32, 1}))
	set(KindSelectList, StylePadding, VectorProp(Vec2{6, 6}))
	set(KindSelectList, StyleDefaultSize, VectorProp(Vec2{0, 200}))

	set(KindDropDown, StyleFillColor, ColorProp(Color{0.16, 0.19, 0.24, 1}))
	t.Set(KindDropDown, StyleFillColor, StateHover, ColorProp(Color{0.21, 0.25, 0.32, 1}))
	set(KindDropDown, StyleDefaultSize, VectorProp(Vec2{0, 36}))
	set(KindDropDown, StyleSpaceAfter, VectorProp(Vec2{0, 8}))

	return t
}

// --- TOML theme files ---

// kindByName is the inverse of kindName, used when reading theme files.
var kindByName = func() map[string]WidgetKind {
	m := make(map[string]WidgetKind, len(kindName))
	for k, n := range kindName {
		m[n] = k
	}
	return m
}()

// stateByName maps theme-file state table names to interaction states.
var stateByName = map[string]State{
	"hover": StateHover,
	"down":  StateDown,
}

// tomlPropName maps snake_case theme-file keys to style property names.
var tomlPropName = map[string]string{
	"fill_color":     StyleFillColor,
	"outline_color":  StyleOutlineColor,
	"outline_width":  StyleOutlineWidth,
	"shadow_color":   StyleShadowColor,
	"shadow_offset":  StyleShadowOffset,
	"shadow_scale":   StyleShadowScale,
	"scale":          StyleScale,
	"padding":        StylePadding,
	"space_before":   StyleSpaceBefore,
	"space_after":    StyleSpaceAfter,
	"default_size":   StyleDefaultSize,
	"track_color":    StyleTrackColor,
	"handle_color":   StyleHandleColor,
	"selected_color": StyleSelectedColor,
}

// LoadThemeTOML parses a TOML theme document into a Theme layered on top of
// the built-in defaults. The expected shape is one table per widget kind with
// optional nested state tables:
//
//	[button]
//	fill_color = "#3a4a66"
//	default_size = [0, 40]
//
//	[button.hover]
//	fill_color = "#4a5e82"
//
// Colors are "#rrggbb" or "#rrggbbaa" strings, vectors are two-element
// arrays, scalars are numbers or booleans.
func LoadThemeTOML(data []byte) (*Theme, error) {
	var doc map[string]map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("trellis: parse theme: %w", err)
	}

	theme := DefaultTheme()
	for kindKey, table := range doc {
		kind, ok := kindByName[kindKey]
		if !ok {
			return nil, fmt.Errorf("%w: unknown widget kind %q in theme", ErrInvalidValue, kindKey)
		}
		if err := applyThemeTable(theme, kind, StateDefault, table); err != nil {
			return nil, err
		}
	}
	return theme, nil
}

// applyThemeTable writes one kind table (or nested state table) into the theme.
func applyThemeTable(theme *Theme, kind WidgetKind, state State, table map[string]any) error {
	for key, raw := range table {
		if nested, ok := raw.(map[string]any); ok {
			st, ok := stateByName[key]
			if !ok {
				return fmt.Errorf("%w: unknown state %q in theme table %q", ErrInvalidValue, key, kind)
			}
			if state != StateDefault {
				return fmt.Errorf("%w: nested state table under state %q", ErrInvalidValue, key)
			}
			if err := applyThemeTable(theme, kind, st, nested); err != nil {
				return err
			}
			continue
		}

		name, ok := tomlPropName[key]
		if !ok {
			return fmt.Errorf("%w: unknown style property %q in theme table %q", ErrInvalidValue, key, kind)
		}
		prop, err := parseThemeValue(raw)
		if err != nil {
			return fmt.Errorf("theme property %s.%s: %w", kind, key, err)
		}
		theme.Set(kind, name, state, prop)
	}
	return nil
}

// parseThemeValue converts a decoded TOML value into a tagged style property.
func parseThemeValue(raw any) (StyleProp, error) {
	switch v := raw.(type) {
	case string:
		c, err := parseHexColor(v)
		if err != nil {
			return StyleProp{}, err
		}
		return ColorProp(c), nil
	case bool:
		return BoolProp(v), nil
	case int64:
		return FloatProp(float64(v)), nil
	case float64:
		return FloatProp(v), nil
	case []any:
		if len(v) != 2 {
			return StyleProp{}, fmt.Errorf("%w: vector needs exactly 2 elements, got %d", ErrInvalidValue, len(v))
		}
		var out Vec2
		for i, elem := range v {
			f, err := toFloat(elem)
			if err != nil {
				return StyleProp{}, err
			}
			if i == 0 {
				out.X = f
			} else {
				out.Y = f
			}
		}
		return VectorProp(out), nil
	default:
		return StyleProp{}, fmt.Errorf("%w: unsupported theme value type %T", ErrInvalidValue, raw)
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: expected number, got %T", ErrInvalidValue, v)
	}
}

// parseHexColor parses "#rrggbb" or "#rrggbbaa" into a Color.
func parseHexColor(s string) (Color, error) {
	hexPart := strings.TrimPrefix(s, "#")
	if len(hexPart) != 6 && len(hexPart) != 8 {
		return Color{}, fmt.Errorf("%w: color %q must be #rrggbb or #rrggbbaa", ErrInvalidValue, s)
	}
	val, err := strconv.ParseUint(hexPart, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q: %v", ErrInvalidValue, s, err)
	}
	if len(hexPart) == 6 {
		val = val<<8 | 0xff
	}
	return Color{
		R: float64(val>>24&0xff) / 255,
		G: float64(val>>16&0xff) / 255,
		B: float64(val>>8&0xff) / 255,
		A: float64(val&0xff) / 255,
	}, nil
}
