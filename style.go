package trellis

// Style property names shared by all widget kinds. A property is resolved
// for the widget's current interaction state, falling back to the
// StateDefault entry, then to the widget kind's theme sheet, then to a
// hardcoded type default.
const (
	StyleFillColor     = "FillColor"     // color: background fill tint
	StyleOutlineColor  = "OutlineColor"  // color: outline tint
	StyleOutlineWidth  = "OutlineWidth"  // float: outline thickness in pixels (0 = none)
	StyleShadowColor   = "ShadowColor"   // color: drop shadow tint (transparent = none)
	StyleShadowOffset  = "ShadowOffset"  // vector: shadow displacement in pixels
	StyleShadowScale   = "ShadowScale"   // float: shadow size multiplier
	StyleScale         = "Scale"         // float: per-widget content scale
	StylePadding       = "Padding"       // vector: internal rect inset per axis
	StyleSpaceBefore   = "SpaceBefore"   // vector: flow spacing before this widget
	StyleSpaceAfter    = "SpaceAfter"    // vector: flow spacing after this widget
	StyleDefaultSize   = "DefaultSize"   // vector: size used when Size has a negative component
	StyleTrackColor    = "TrackColor"    // color: range control track tint
	StyleHandleColor   = "HandleColor"   // color: range control handle tint
	StyleSelectedColor = "SelectedColor" // color: select list highlight for the chosen row
)

// propKind tags which field of a StyleProp is live.
type propKind uint8

const (
	propNone propKind = iota
	propColor
	propVector
	propFloat
)

// StyleProp is a tagged style value: exactly one of color, vector, or scalar
// is live. Querying against the wrong tag returns a fixed typed default.
// The fixed-size record is a deliberate memory/serialization trade-off over
// a true variant.
type StyleProp struct {
	kind  propKind
	color Color
	vec   Vec2
	num   float64
}

// ColorProp creates a color-valued style property.
func ColorProp(c Color) StyleProp {
	return StyleProp{kind: propColor, color: c}
}

// VectorProp creates a vector-valued style property.
func VectorProp(v Vec2) StyleProp {
	return StyleProp{kind: propVector, vec: v}
}

// FloatProp creates a scalar-valued style property.
func FloatProp(f float64) StyleProp {
	return StyleProp{kind: propFloat, num: f}
}

// IntProp creates a scalar-valued style property from an int.
func IntProp(i int) StyleProp {
	return StyleProp{kind: propFloat, num: float64(i)}
}

// BoolProp creates a scalar-valued style property from a bool (1 or 0).
func BoolProp(b bool) StyleProp {
	p := StyleProp{kind: propFloat}
	if b {
		p.num = 1
	}
	return p
}

// IsZero reports whether the property carries no value.
func (p StyleProp) IsZero() bool { return p.kind == propNone }

// AsColor returns the color value, or opaque white if the live tag differs.
func (p StyleProp) AsColor() Color {
	if p.kind != propColor {
		return ColorWhite
	}
	return p.color
}

// AsVector returns the vector value, or the zero vector if the live tag differs.
func (p StyleProp) AsVector() Vec2 {
	if p.kind != propVector {
		return Vec2{}
	}
	return p.vec
}

// AsFloat returns the scalar value, or 0 if the live tag differs.
func (p StyleProp) AsFloat() float64 {
	if p.kind != propFloat {
		return 0
	}
	return p.num
}

// AsInt returns the scalar value truncated to int, or 0 if the live tag differs.
func (p StyleProp) AsInt() int {
	return int(p.AsFloat())
}

// AsBool returns true if the scalar value is nonzero.
func (p StyleProp) AsBool() bool {
	return p.AsFloat() != 0
}

// styleKey is a (property name, interaction state) pair.
type styleKey struct {
	name  string
	state State
}

// StyleSheet maps (property, state) pairs to tagged values for one widget or
// one widget kind. The zero value is ready to use.
type StyleSheet struct {
	entries map[styleKey]StyleProp
}

// Set stores a property value for a specific interaction state.
func (s *StyleSheet) Set(name string, state State, p StyleProp) {
	if s.entries == nil {
		s.entries = make(map[styleKey]StyleProp)
	}
	s.entries[styleKey{name, state}] = p
}

// SetDefault stores a property value for the default state.
func (s *StyleSheet) SetDefault(name string, p StyleProp) {
	s.Set(name, StateDefault, p)
}

// Unset removes the entry for (name, state), re-exposing any fallback.
func (s *StyleSheet) Unset(name string, state State) {
	if s.entries != nil {
		delete(s.entries, styleKey{name, state})
	}
}

// lookup returns the entry for (name, state) with fallback to StateDefault.
func (s *StyleSheet) lookup(name string, state State) (StyleProp, bool) {
	if s.entries == nil {
		return StyleProp{}, false
	}
	if p, ok := s.entries[styleKey{name, state}]; ok {
		return p, true
	}
	if state != StateDefault {
		if p, ok := s.entries[styleKey{name, StateDefault}]; ok {
			return p, true
		}
	}
	return StyleProp{}, false
}

// Get resolves a property for the given state, falling back to the default
// state. Returns the zero property when absent.
func (s *StyleSheet) Get(name string, state State) StyleProp {
	p, _ := s.lookup(name, state)
	return p
}

// Has reports whether the sheet holds an entry for (name, state) or its
// default-state fallback.
func (s *StyleSheet) Has(name string, state State) bool {
	_, ok := s.lookup(name, state)
	return ok
}

// clone returns an independent copy of the sheet.
func (s *StyleSheet) clone() *StyleSheet {
	out := &StyleSheet{}
	if len(s.entries) > 0 {
		out.entries = make(map[styleKey]StyleProp, len(s.entries))
		for k, v := range s.entries {
			out.entries[k] = v
		}
	}
	return out
}

// --- Widget-level resolution ---

// Style resolves a style property for the widget's current interaction
// state: the widget's own sheet first, then the theme sheet for its kind.
func (w *Widget) Style(name string) StyleProp {
	return w.StyleFor(name, w.state)
}

// StyleFor resolves a style property for an explicit interaction state.
func (w *Widget) StyleFor(name string, state State) StyleProp {
	if p, ok := w.styles.lookup(name, state); ok {
		return p
	}
	if t := w.theme(); t != nil {
		if p, ok := t.lookup(w.Kind, name, state); ok {
			return p
		}
	}
	return StyleProp{}
}

// SetStyle stores a property on the widget's own sheet for all states that
// lack a more specific entry (the default state) and marks the widget dirty.
func (w *Widget) SetStyle(name string, p StyleProp) {
	w.styles.SetDefault(name, p)
	w.MarkDirty()
}

// SetStyleFor stores a property for one interaction state and marks the
// widget dirty.
func (w *Widget) SetStyleFor(name string, state State, p StyleProp) {
	w.styles.Set(name, state, p)
	w.MarkDirty()
}

// ClearStyle removes a default-state override from the widget's own sheet so
// the theme value shows through again.
func (w *Widget) ClearStyle(name string) {
	w.styles.Unset(name, StateDefault)
	w.MarkDirty()
}

// styleFloatDefault resolves a scalar property with a fallback used when the
// property is absent everywhere (e.g. Scale defaults to 1, not 0).
func (w *Widget) styleFloatDefault(name string, def float64) float64 {
	p := w.Style(name)
	if p.IsZero() {
		return def
	}
	return p.AsFloat()
}
