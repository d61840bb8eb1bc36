package trellis

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is the fully transparent color. Style properties that
// resolve to it are skipped when drawing.
var ColorTransparent = Color{}

// Vec2 is a 2D vector used for positions, offsets, sizes, and padding
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Mul returns v scaled by f on both axes.
func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// WhitePixel is a 1x1 white image used for solid color quads.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Right returns the X coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the X coordinate of the rectangle's horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the Y coordinate of the rectangle's vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// toRGBA converts a Color to a premultiplied color.RGBA-compatible value.
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image fills.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Anchor names the reference point inside the parent's internal rectangle a
// widget is positioned against. The nine static anchors use fixed corner,
// edge, or center arithmetic; the three auto-flow anchors position relative
// to the previous visible sibling instead.
type Anchor uint8

const (
	AnchorAuto        Anchor = iota // flow: below the previous sibling, left-aligned
	AnchorAutoInline                // flow: right of the previous sibling, wrapping on overflow
	AnchorAutoCenter                // flow: below the previous sibling, centered
	AnchorTopLeft                   // static: parent top-left corner
	AnchorTopCenter                 // static: centered on the parent's top edge
	AnchorTopRight                  // static: parent top-right corner
	AnchorCenterLeft                // static: centered on the parent's left edge
	AnchorCenter                    // static: parent center
	AnchorCenterRight               // static: centered on the parent's right edge
	AnchorBottomLeft                // static: parent bottom-left corner
	AnchorBottomCenter              // static: centered on the parent's bottom edge
	AnchorBottomRight               // static: parent bottom-right corner
)

// IsAuto reports whether the anchor is one of the three flow variants.
func (a Anchor) IsAuto() bool {
	return a == AnchorAuto || a == AnchorAutoInline || a == AnchorAutoCenter
}

// State is a widget's discrete interaction state. The ordinal values matter
// only for the style fallback chain, not for comparison logic.
type State uint8

const (
	StateDefault State = iota // not interacted with
	StateHover                // pointer over the widget, button up
	StateDown                 // pointer over the widget, button held
)

// WidgetKind distinguishes behavior and default styling for a Widget.
// A single flat struct is used for all widget kinds to avoid interface
// dispatch on the hot path; kind-specific data hangs off side structs.
type WidgetKind uint8

const (
	KindRoot        WidgetKind = iota // implicit tree root sized to the screen
	KindPanel                         // container with optional clipping/scrolling
	KindLabel                         // text-bearing widget with content-fitted rect
	KindButton                        // clickable panel with an attached label
	KindSlider                        // horizontal range control
	KindScrollbar                     // vertical range control
	KindProgressBar                   // non-interactive range display
	KindSelectList                    // scrollable list of string choices
	KindDropDown                      // collapsed selector opening a select list
)

// kindName maps widget kinds to the names used by theme files and Find dumps.
var kindName = map[WidgetKind]string{
	KindRoot:        "root",
	KindPanel:       "panel",
	KindLabel:       "label",
	KindButton:      "button",
	KindSlider:      "slider",
	KindScrollbar:   "scrollbar",
	KindProgressBar: "progress_bar",
	KindSelectList:  "select_list",
	KindDropDown:    "drop_down",
}

// String returns the theme-file name of the kind.
func (k WidgetKind) String() string {
	if s, ok := kindName[k]; ok {
		return s
	}
	return "unknown"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// OverflowMode controls how a panel treats children outside its bounds.
type OverflowMode uint8

const (
	// Overflow lets children render outside the panel bounds. No extra cost.
	Overflow OverflowMode = iota
	// Clipped renders children into an offscreen buffer sized to the panel's
	// internal rectangle, hard-clipping anything outside it.
	Clipped
	// VerticalScroll clips like Clipped and adds an owned scrollbar that
	// shifts the children's coordinate space vertically.
	VerticalScroll
)

// Font is the interface for text measurement. Text shaping and rendering are
// external capabilities; the core only needs sizes at scale 1.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}
