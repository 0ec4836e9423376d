package podium

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// AppConfig configures an App.
type AppConfig struct {
	Registry *Registry
	// Query is a ?deck=&slide=&section= string choosing the first view. An
	// empty query, or one naming no deck, opens Deck instead.
	Query string
	// Deck is opened at startup when Query names none. Empty shows the
	// picker.
	Deck string
	// Start applies to Deck.
	Start OpenOptions

	Size         Vec2
	Transition   string
	HideControls bool

	// Keyboard defaults to the real keyboard. Display defaults to the
	// Ebitengine window.
	Keyboard *Keyboard
	Display  Display
	Script   *Script
	Logger   *slog.Logger
	// Events receives playback events; see LoaderConfig.Events.
	Events EventSink
}

// App is the ebiten.Game running a Loader. It processes input once per
// tick, runs the playback script, and advances the mounted view.
type App struct {
	loader   *Loader
	keyboard *Keyboard
	script   *Script
	size     Vec2
	logger   *slog.Logger
	keys     KeyHandle
	quit     bool
}

var _ ebiten.Game = (*App)(nil)

// NewApp builds the loader and opens the initial view.
func NewApp(cfg AppConfig) (*App, error) {
	if cfg.Registry == nil {
		return nil, errors.New("podium: app needs a registry")
	}
	kbd := cfg.Keyboard
	if kbd == nil {
		kbd = NewKeyboard(nil)
	}
	display := cfg.Display
	if display == nil {
		display = EbitenDisplay{}
	}
	size := cfg.Size
	if size.X <= 0 || size.Y <= 0 {
		size = DefaultStageSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	a := &App{
		keyboard: kbd,
		script:   cfg.Script,
		size:     size,
		logger:   logger,
	}
	// Registered before any deck or picker, so it runs after them and only
	// sees keys they leave alone.
	a.keys = kbd.OnKey(a.handleKey)

	l, err := NewLoader(LoaderConfig{
		Registry:     cfg.Registry,
		Keyboard:     kbd,
		Display:      display,
		Size:         size,
		Logger:       logger,
		Transition:   cfg.Transition,
		HideControls: cfg.HideControls,
		Events:       cfg.Events,
	})
	if err != nil {
		a.keys.Remove()
		return nil, err
	}
	a.loader = l

	q := ParseQuery(cfg.Query)
	switch {
	case q.Deck != "":
		l.OpenQuery(cfg.Query)
	case cfg.Deck != "":
		l.OpenWith(cfg.Deck, cfg.Start)
	}
	return a, nil
}

// Loader returns the app's loader.
func (a *App) Loader() *Loader { return a.loader }

// Keyboard returns the app's keyboard.
func (a *App) Keyboard() *Keyboard { return a.keyboard }

// handleKey is the app default: Q leaves a deck for the picker, and quits
// from the picker. Ctrl+Q or Meta+Q quits from anywhere.
func (a *App) handleKey(ev KeyEvent) bool {
	if ev.Key != ebiten.KeyQ || ev.Modifiers&ModAlt != 0 {
		return false
	}
	if ev.Modifiers&(ModCtrl|ModMeta) != 0 || a.loader.ShowingPicker() {
		a.quit = true
		return true
	}
	a.loader.Close()
	return true
}

// Step runs one tick of dt seconds. Update calls it with 1/TPS.
func (a *App) Step(dt float64) error {
	if a.quit {
		return ebiten.Termination
	}
	a.keyboard.Process()
	if a.script != nil {
		a.script.step(dt, a.keyboard, a.loader)
	}
	a.loader.Update(dt)
	if a.quit {
		return ebiten.Termination
	}
	return nil
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	return a.Step(1 / float64(ebiten.TPS()))
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.loader.Draw(screen)
}

// Layout implements ebiten.Game. The stage has a fixed logical size;
// Ebitengine scales it into the window.
func (a *App) Layout(_, _ int) (int, int) {
	return int(a.size.X), int(a.size.Y)
}

// Dispose unmounts the view and releases the app's key binding.
func (a *App) Dispose() {
	a.loader.Dispose()
	a.keys.Remove()
	a.logger.Debug("app disposed")
}
