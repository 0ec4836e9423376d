package podium

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyEvent is a single key press delivered to handlers.
type KeyEvent struct {
	Key       ebiten.Key
	Modifiers KeyModifiers
	Injected  bool // true for presses queued with InjectKey
}

// KeyHandlerFunc handles a key press. Returning true consumes the key: later
// handlers, including the app's default actions, never see it.
type KeyHandlerFunc func(KeyEvent) bool

// KeySource supplies key presses for a frame.
type KeySource interface {
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	Modifiers() KeyModifiers
}

// ebitenKeys reads the real keyboard through inpututil.
type ebitenKeys struct{}

func (ebitenKeys) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (ebitenKeys) Modifiers() KeyModifiers {
	return readModifiers()
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

type keyHandler struct {
	id uint32
	fn KeyHandlerFunc
}

// Keyboard routes key presses to registered handlers, newest first. Handlers
// are scoped: each registration returns a KeyHandle whose Remove must be
// called when the owner goes away.
type Keyboard struct {
	source   KeySource
	handlers []keyHandler
	nextID   uint32
	inject   []ebiten.Key
	buf      []ebiten.Key
}

// NewKeyboard creates a keyboard reading from src. A nil src reads the real
// keyboard through Ebitengine.
func NewKeyboard(src KeySource) *Keyboard {
	if src == nil {
		src = ebitenKeys{}
	}
	return &Keyboard{source: src}
}

// KeyHandle allows removing a registered handler.
type KeyHandle struct {
	id  uint32
	kbd *Keyboard
}

// Remove unregisters the handler so it no longer fires. Safe to call more
// than once and on the zero handle.
func (h KeyHandle) Remove() {
	if h.kbd == nil {
		return
	}
	s := h.kbd.handlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = keyHandler{}
			h.kbd.handlers = s[:len(s)-1]
			return
		}
	}
}

// OnKey registers fn. Handlers registered later run earlier.
func (k *Keyboard) OnKey(fn KeyHandlerFunc) KeyHandle {
	k.nextID++
	k.handlers = append(k.handlers, keyHandler{id: k.nextID, fn: fn})
	return KeyHandle{id: k.nextID, kbd: k}
}

// NumHandlers returns the number of registered handlers.
func (k *Keyboard) NumHandlers() int {
	return len(k.handlers)
}

// InjectKey queues synthetic presses. One queued press is delivered per
// Process call, after that frame's real presses, with no modifiers held.
func (k *Keyboard) InjectKey(keys ...ebiten.Key) {
	k.inject = append(k.inject, keys...)
}

// Pending returns the number of queued synthetic presses.
func (k *Keyboard) Pending() int {
	return len(k.inject)
}

// Dispatch delivers one event to the handlers and reports whether any
// consumed it.
func (k *Keyboard) Dispatch(ev KeyEvent) bool {
	// Iterate over a snapshot: handlers may remove themselves (or others)
	// when a key unmounts a deck.
	snapshot := make([]keyHandler, len(k.handlers))
	copy(snapshot, k.handlers)
	for i := len(snapshot) - 1; i >= 0; i-- {
		if !k.registered(snapshot[i].id) {
			continue
		}
		if snapshot[i].fn(ev) {
			return true
		}
	}
	return false
}

func (k *Keyboard) registered(id uint32) bool {
	for _, h := range k.handlers {
		if h.id == id {
			return true
		}
	}
	return false
}

// Process reads this frame's presses and dispatches them.
func (k *Keyboard) Process() {
	mods := k.source.Modifiers()
	k.buf = k.source.AppendJustPressedKeys(k.buf[:0])
	for _, key := range k.buf {
		k.Dispatch(KeyEvent{Key: key, Modifiers: mods})
	}
	if len(k.inject) > 0 {
		key := k.inject[0]
		copy(k.inject, k.inject[1:])
		k.inject = k.inject[:len(k.inject)-1]
		k.Dispatch(KeyEvent{Key: key, Injected: true})
	}
}
