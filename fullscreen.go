package podium

import "github.com/hajimehoshi/ebiten/v2"

// Display is the platform's fullscreen control. SetFullscreen is a request
// the platform may ignore, deny, or apply later; IsFullscreen is the truth.
type Display interface {
	SetFullscreen(on bool)
	IsFullscreen() bool
}

// EbitenDisplay controls the Ebitengine window.
type EbitenDisplay struct{}

// SetFullscreen implements Display.
func (EbitenDisplay) SetFullscreen(on bool) { ebiten.SetFullscreen(on) }

// IsFullscreen implements Display.
func (EbitenDisplay) IsFullscreen() bool { return ebiten.IsFullscreen() }

// fullscreenState mirrors the display's fullscreen flag. The flag is only
// ever written from IsFullscreen, never from what was requested.
type fullscreenState struct {
	display Display
	on      bool
}

func (f *fullscreenState) request(on bool) {
	if f.display == nil {
		return
	}
	f.display.SetFullscreen(on)
	f.on = f.display.IsFullscreen()
}

// observe re-reads the display and reports whether the flag changed.
func (f *fullscreenState) observe() bool {
	if f.display == nil {
		return false
	}
	now := f.display.IsFullscreen()
	if now == f.on {
		return false
	}
	f.on = now
	return true
}
