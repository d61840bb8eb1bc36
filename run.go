package trellis

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ClearColor fills the screen before the UI draws.
	ClearColor Color
	// ShowFPS overlays the current FPS/TPS in the top-left corner.
	ShowFPS bool
	// Resizable allows the user to resize the window; the root rect follows.
	Resizable bool
	// UpdateFunc, when set, runs every tick after the UI update. Returning a
	// non-nil error stops the loop and is returned by Run.
	UpdateFunc func() error
}

// game adapts a UI to the ebiten.Game interface.
type game struct {
	ui  *UI
	cfg RunConfig
}

func (g *game) Update() error {
	f := g.ui.NextFrame()
	g.ui.Update(&f)
	if g.cfg.UpdateFunc != nil {
		return g.cfg.UpdateFunc()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor.A > 0 {
		screen.Fill(g.cfg.ClearColor.toRGBA())
	}
	g.ui.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ui.SetScreenSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run creates a window and drives the UI's update/draw loop until the window
// closes or the update function returns an error. For full control implement
// ebiten.Game yourself and call UI.NextFrame, UI.Update, and UI.Draw.
func Run(ui *UI, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ui.SetScreenSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{ui: ui, cfg: cfg})
}
