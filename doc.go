// Package trellis is a retained-mode GUI toolkit for [Ebitengine] games.
//
// Trellis provides the widget tree, anchor-based layout, per-frame input
// dispatch, clipping and scrolling containers, range controls, and themed
// styling that an in-game UI needs, without taking over the game loop.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	ui := trellis.New()
//	panel := trellis.NewPanel(trellis.Vec2{X: 300, Y: 200})
//	panel.SetAnchor(trellis.AnchorCenter)
//	panel.AddChild(trellis.NewButton("Start", trellis.Vec2{X: -1, Y: -1}))
//	ui.Root().AddChild(panel)
//	trellis.Run(ui, trellis.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call [UI.NextFrame],
// [UI.Update], and [UI.Draw] directly:
//
//	func (g *Game) Update() error {
//		f := g.ui.NextFrame()
//		g.ui.Update(&f)
//		return nil
//	}
//	func (g *Game) Draw(screen *ebiten.Image) { g.ui.Draw(screen) }
//
// # Widget tree
//
// Every element is a [Widget]. Widgets form a tree rooted at [UI.Root];
// create them with the typed constructors ([NewPanel], [NewButton],
// [NewLabel], [NewSlider], [NewScrollbar], [NewProgressBar],
// [NewSelectList], [NewDropDown]) and attach them with [Widget.AddChild].
//
// # Layout
//
// A widget's rectangle is derived from three inputs: an [Anchor] naming a
// point (or flow direction) in the parent's internal rectangle, an offset
// from that point, and a size whose per-axis semantics depend on magnitude:
// negative uses the themed default, 0 fills the parent, a fraction in (0, 1)
// takes that share of the parent, and values >= 1 are absolute pixels.
// Rectangles are computed lazily and cached; mutate placement through the
// setters and the affected subtree recomputes on next access.
//
// # Input
//
// [UI.Update] consumes one input snapshot per frame and resolves exactly one
// event target: the topmost widget under the pointer, where later siblings
// and higher [Widget.Layer] values are on top. Per-widget callbacks (OnClick
// and friends) and tree-wide listeners ([UI.OnClick], [UI.On]) both fire.
// Synthetic input can be queued with [UI.InjectClick] and friends, which
// makes whole interaction flows testable without a display.
//
// # Theming
//
// Visuals resolve through [StyleSheet] properties: the widget's own sheet
// first, then the [Theme] sheet for its kind. [DefaultTheme] gives a usable
// flat dark look; [LoadThemeTOML] reads a theme from a TOML document.
//
// [Ebitengine]: https://ebitengine.org
package trellis
