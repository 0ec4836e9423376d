package podium

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window for Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
}

// Run opens a window and runs app until the window closes or the app quits.
// It blocks and must be called from the main goroutine.
func Run(cfg RunConfig, app *App) error {
	if cfg.Title == "" {
		cfg.Title = "Podium"
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = int(app.size.X), int(app.size.Y)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}
	defer app.Dispose()
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
