package podium

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrEmptyDeck is returned by NewDeck when given no slides.
	ErrEmptyDeck = errors.New("podium: deck has no slides")
	// ErrNilSlide is returned by NewDeck when a slide is nil.
	ErrNilSlide = errors.New("podium: deck contains a nil slide")
	// ErrInvalidSection is returned by NewDeck for a section outside the deck.
	ErrInvalidSection = errors.New("podium: section start out of range")
)

// DefaultStageSize is the logical resolution slides are authored at.
var DefaultStageSize = Vec2{X: 1280, Y: 720}

// Section labels the slide a group of slides starts at. Sections are
// navigation aids only; they never change the slide order.
type Section struct {
	Label string
	Start int
}

// DeckConfig configures a Deck. The zero value is a fade deck with no
// controls, keyboard, or display.
type DeckConfig struct {
	Title        string
	ShowControls bool
	Transition   TransitionKind
	// TransitionDuration overrides the style's duration when > 0.
	TransitionDuration float64
	Sections           []Section
	// Start is the initial slide index. Out-of-range values start at 0.
	Start int
	// Size is the stage size. Zero means DefaultStageSize.
	Size Vec2

	// Keyboard, when set, receives the deck's key bindings for the deck's
	// lifetime. Dispose removes them.
	Keyboard *Keyboard
	// Display controls fullscreen. Nil disables fullscreen handling.
	Display Display
	Logger  *slog.Logger

	// OnChange runs after every index change.
	OnChange func(from, to int)
}

// Deck plays an ordered, fixed list of slides. Exactly one slide is active
// at a time; navigation outside the deck is ignored.
type Deck struct {
	title    string
	slides   []Slide
	sections []Section
	style    TransitionStyle
	size     Vec2
	logger   *slog.Logger
	onChange func(from, to int)

	index int
	stage *Node
	layer *Node // slide nodes live here, under the overlay

	// In-flight transition.
	transitioning bool
	from          int
	outgoing      Slide
	enterTween    *PoseTween
	exitTween     *PoseTween

	fs       fullscreenState
	keys     KeyHandle
	overlay  *Overlay
	disposed bool
}

// NewDeck validates slides and cfg and activates the starting slide.
func NewDeck(slides []Slide, cfg DeckConfig) (*Deck, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}
	for i, s := range slides {
		if s == nil {
			return nil, fmt.Errorf("slide %d: %w", i, ErrNilSlide)
		}
	}
	for _, sec := range cfg.Sections {
		if sec.Start < 0 || sec.Start >= len(slides) {
			return nil, fmt.Errorf("section %q starts at %d of %d: %w", sec.Label, sec.Start, len(slides), ErrInvalidSection)
		}
	}

	size := cfg.Size
	if size.X <= 0 || size.Y <= 0 {
		size = DefaultStageSize
	}
	style := Transition(cfg.Transition)
	if cfg.TransitionDuration > 0 && !style.Instant() {
		style.Duration = cfg.TransitionDuration
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	d := &Deck{
		title:    cfg.Title,
		slides:   append([]Slide(nil), slides...),
		sections: append([]Section(nil), cfg.Sections...),
		style:    style,
		size:     size,
		logger:   logger,
		onChange: cfg.OnChange,
		stage:    NewContainer("deck"),
		layer:    NewContainer("deck/slides"),
		fs:       fullscreenState{display: cfg.Display},
	}
	d.stage.Width, d.stage.Height = size.X, size.Y
	d.stage.AddChild(d.layer)

	if cfg.Start > 0 && cfg.Start < len(slides) {
		d.index = cfg.Start
	}
	if cfg.Display != nil {
		d.fs.on = cfg.Display.IsFullscreen()
	}

	current := d.slides[d.index]
	d.mount(current)
	current.SetActive(true)

	if cfg.ShowControls {
		d.overlay = newOverlay(d)
		d.stage.AddChild(d.overlay.Node())
	}
	if cfg.Keyboard != nil {
		d.keys = cfg.Keyboard.OnKey(d.handleKey)
	}
	d.logger.Debug("deck mounted",
		slog.String("title", d.title),
		slog.Int("slides", len(d.slides)),
		slog.String("transition", style.Kind.String()),
		slog.Int("start", d.index),
	)
	return d, nil
}

// --- Accessors ---

// Title returns the display title.
func (d *Deck) Title() string { return d.title }

// Len returns the number of slides.
func (d *Deck) Len() int { return len(d.slides) }

// Index returns the active slide index.
func (d *Deck) Index() int { return d.index }

// Slide returns the slide at i, or nil when out of range.
func (d *Deck) Slide(i int) Slide {
	if i < 0 || i >= len(d.slides) {
		return nil
	}
	return d.slides[i]
}

// IsActive reports whether slide i is the active slide.
func (d *Deck) IsActive(i int) bool { return i == d.index && !d.disposed }

// Progress returns (index+1)/len, in (0, 1].
func (d *Deck) Progress() float64 {
	return float64(d.index+1) / float64(len(d.slides))
}

// State returns the state machine snapshot.
func (d *Deck) State() DeckState {
	return DeckState{Index: d.index, From: d.from, Transitioning: d.transitioning}
}

// Transition returns the deck's transition style.
func (d *Deck) Transition() TransitionStyle { return d.style }

// Sections returns the configured sections. The slice MUST NOT be mutated.
func (d *Deck) Sections() []Section { return d.sections }

// CurrentSection returns the section containing the active slide: the one
// with the greatest Start not after the index.
func (d *Deck) CurrentSection() (Section, bool) {
	var best Section
	found := false
	for _, s := range d.sections {
		if s.Start <= d.index && (!found || s.Start >= best.Start) {
			best, found = s, true
		}
	}
	return best, found
}

// Fullscreen reports the display's fullscreen state as last observed.
func (d *Deck) Fullscreen() bool { return d.fs.on }

// Node returns the stage: slides plus the control overlay.
func (d *Deck) Node() *Node { return d.stage }

// Size returns the stage size.
func (d *Deck) Size() Vec2 { return d.size }

// Disposed reports whether Dispose has been called.
func (d *Deck) Disposed() bool { return d.disposed }

// --- Navigation ---

// Next moves one slide forward. No-op on the last slide.
func (d *Deck) Next() bool { return d.GoTo(d.index + 1) }

// Prev moves one slide back. No-op on the first slide.
func (d *Deck) Prev() bool { return d.GoTo(d.index - 1) }

// Home moves to the first slide.
func (d *Deck) Home() bool { return d.GoTo(0) }

// End moves to the last slide.
func (d *Deck) End() bool { return d.GoTo(len(d.slides) - 1) }

// GoToSection moves to the start of the section with the given label.
func (d *Deck) GoToSection(label string) bool {
	for _, s := range d.sections {
		if s.Label == label {
			return d.GoTo(s.Start)
		}
	}
	return false
}

// GoTo activates slide j and reports whether the index changed. Requests
// outside [0, Len) and requests for the current slide are ignored.
func (d *Deck) GoTo(j int) bool {
	if d.disposed || j < 0 || j >= len(d.slides) || j == d.index {
		return false
	}
	from := d.index
	d.slides[from].SetActive(false)
	d.index = j
	d.slides[j].SetActive(true)
	d.startTransition(from, j)

	d.logger.Debug("slide changed",
		slog.Int("from", from),
		slog.Int("to", j),
		slog.String("state", d.State().String()),
	)
	if d.overlay != nil {
		d.overlay.refresh()
	}
	if d.onChange != nil {
		d.onChange(from, j)
	}
	return true
}

// --- Fullscreen ---

// ToggleFullscreen asks the display for the opposite of the current state,
// then takes the flag from what the display reports.
func (d *Deck) ToggleFullscreen() {
	if d.disposed {
		return
	}
	d.fs.request(!d.fs.on)
	d.logger.Debug("fullscreen toggled", slog.Bool("fullscreen", d.fs.on))
}

// ExitFullscreen leaves fullscreen if the display is in it.
func (d *Deck) ExitFullscreen() {
	if d.disposed || !d.fs.on {
		return
	}
	d.fs.request(false)
}

// --- Keyboard ---

// handleKey implements the deck key bindings. Every bound key is consumed,
// so app-level default actions never see it. Chords with Ctrl or Meta are
// left for the app.
func (d *Deck) handleKey(ev KeyEvent) bool {
	if d.disposed || ev.Modifiers&(ModCtrl|ModMeta) != 0 {
		return false
	}
	switch ev.Key {
	case ebiten.KeyArrowRight, ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeyPageDown:
		d.Next()
	case ebiten.KeyArrowLeft, ebiten.KeyBackspace, ebiten.KeyPageUp:
		d.Prev()
	case ebiten.KeyHome:
		d.Home()
	case ebiten.KeyEnd:
		d.End()
	case ebiten.KeyF:
		d.ToggleFullscreen()
	case ebiten.KeyEscape:
		d.ExitFullscreen()
	case ebiten.KeyC:
		if d.overlay == nil {
			return false
		}
		d.overlay.toggle()
	default:
		return false
	}
	return true
}

// --- Transitions ---

// mount attaches s on top of the slide layer at its rest pose.
func (d *Deck) mount(s Slide) {
	n := s.Node()
	center := Vec2{X: d.size.X / 2, Y: d.size.Y / 2}
	n.SetPivot(center.X, center.Y)
	RestPose.Apply(n, center)
	d.layer.AddChild(n)
}

func (d *Deck) unmount(s Slide) {
	n := s.Node()
	if d.layer.HasChild(n) {
		d.layer.RemoveChild(n)
	}
	RestPose.Apply(n, Vec2{X: d.size.X / 2, Y: d.size.Y / 2})
}

// startTransition animates from the outgoing slide to the incoming one. A
// request during a running transition replaces it: the stale outgoing slide
// is dropped at once and the slide that was entering leaves from wherever it
// got to.
func (d *Deck) startTransition(from, to int) {
	center := Vec2{X: d.size.X / 2, Y: d.size.Y / 2}
	if d.transitioning {
		d.cancelTweens()
		if d.outgoing != nil {
			d.unmount(d.outgoing)
		}
		d.outgoing = nil
		d.transitioning = false
	}

	out := d.slides[from]
	in := d.slides[to]

	if d.style.Instant() {
		d.unmount(out)
		d.mount(in)
		return
	}

	dir := 1
	if to < from {
		dir = -1
	}
	enter, exit := d.style.poses(dir, d.size.X)

	outNode := out.Node()
	outFrom := poseOf(outNode, center)
	d.exitTween = TweenPose(outNode, center, outFrom, exit, d.style.Duration, 0, d.style.Ease)

	d.mount(in)
	d.enterTween = TweenPose(in.Node(), center, enter, RestPose, d.style.Duration, 0, d.style.Ease)

	d.outgoing = out
	d.from = from
	d.transitioning = true
}

func (d *Deck) cancelTweens() {
	if d.enterTween != nil {
		d.enterTween.Cancel()
		d.enterTween = nil
	}
	if d.exitTween != nil {
		d.exitTween.Cancel()
		d.exitTween = nil
	}
}

func (d *Deck) finishTransition() {
	d.cancelTweens()
	if d.outgoing != nil {
		d.unmount(d.outgoing)
	}
	d.outgoing = nil
	d.transitioning = false
	d.from = d.index
}

// --- Frame loop ---

// Update advances slide animations and the running transition by dt seconds
// and picks up fullscreen changes made outside the deck.
func (d *Deck) Update(dt float64) {
	if d.disposed {
		return
	}
	if d.fs.observe() {
		d.logger.Debug("fullscreen changed by platform", slog.Bool("fullscreen", d.fs.on))
	}

	d.slides[d.index].Update(dt)
	if d.outgoing != nil {
		d.outgoing.Update(dt)
	}
	if d.transitioning {
		d.enterTween.Update(dt)
		d.exitTween.Update(dt)
		if d.enterTween.Done && d.exitTween.Done {
			d.finishTransition()
		}
	}
	if d.overlay != nil {
		d.overlay.update(dt)
	}
}

// Draw renders the stage onto dst.
func (d *Deck) Draw(dst *ebiten.Image) {
	if d.disposed {
		return
	}
	Draw(dst, d.stage)
}

// Dispose releases the key bindings, cancels animations, and deactivates
// and detaches every slide. The slides themselves are left intact. Every
// later call on the deck is a no-op.
func (d *Deck) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	d.keys.Remove()
	d.keys = KeyHandle{}
	d.cancelTweens()
	if d.outgoing != nil {
		d.unmount(d.outgoing)
		d.outgoing = nil
	}
	d.transitioning = false

	current := d.slides[d.index]
	current.SetActive(false)
	d.unmount(current)
	for _, s := range d.slides {
		if r, ok := s.(resetter); ok {
			r.Reset()
		}
	}
	if d.overlay != nil {
		d.overlay.dispose()
		d.overlay = nil
	}
	d.layer.RemoveChildren()
	d.stage.Dispose()
	d.logger.Debug("deck disposed", slog.String("title", d.title))
}
