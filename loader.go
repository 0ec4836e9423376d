package podium

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoaderConfig configures a Loader.
type LoaderConfig struct {
	Registry *Registry
	Keyboard *Keyboard
	Display  Display
	// Size is the stage size shared by the picker and every deck.
	Size   Vec2
	Logger *slog.Logger

	// Transition, when non-empty, replaces every presentation's own
	// transition. It must name a TransitionKind.
	Transition string
	// HideControls turns the control overlay off for every deck.
	HideControls bool

	// OnOpen runs after a deck is mounted. OnPicker runs when the picker is
	// shown.
	OnOpen   func(id string, d *Deck)
	OnPicker func()

	// Events, when set, receives a PlaybackEvent for every open, slide
	// change and close.
	Events EventSink
}

// OpenOptions selects where a deck starts.
type OpenOptions struct {
	// Slide is the 0-based start index; negative means not set.
	Slide int
	// Section starts at the section with this label. Slide wins when both
	// are set.
	Section string
}

// Loader owns the mounted view: either one Deck or the Picker. Opening a
// deck unmounts whatever was shown before; an unknown ID or a presentation
// that fails to build falls back to the picker.
type Loader struct {
	reg        *Registry
	keyboard   *Keyboard
	display    Display
	size       Vec2
	logger     *slog.Logger
	transition *TransitionKind
	hideCtl    bool
	onOpen     func(string, *Deck)
	onPicker   func()
	events     EventSink

	picker *Picker
	deck   *Deck
	pres   *Presentation
	id     string
}

// NewLoader creates a loader showing the picker.
func NewLoader(cfg LoaderConfig) (*Loader, error) {
	if cfg.Registry == nil {
		return nil, errors.New("podium: loader needs a registry")
	}
	size := cfg.Size
	if size.X <= 0 || size.Y <= 0 {
		size = DefaultStageSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	l := &Loader{
		reg:      cfg.Registry,
		keyboard: cfg.Keyboard,
		display:  cfg.Display,
		size:     size,
		logger:   logger,
		hideCtl:  cfg.HideControls,
		onOpen:   cfg.OnOpen,
		onPicker: cfg.OnPicker,
		events:   cfg.Events,
	}
	if cfg.Transition != "" {
		kind, err := ParseTransition(cfg.Transition)
		if err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		l.transition = &kind
	}
	l.picker = newPicker(cfg.Registry, size, func(id string) { l.Open(id) })
	l.showPicker()
	return l, nil
}

// Registry returns the loader's registry.
func (l *Loader) Registry() *Registry { return l.reg }

// Deck returns the mounted deck, or nil while the picker is shown.
func (l *Loader) Deck() *Deck { return l.deck }

// Picker returns the picker.
func (l *Loader) Picker() *Picker { return l.picker }

// Current returns the ID of the mounted deck, or "" for the picker.
func (l *Loader) Current() string { return l.id }

// ShowingPicker reports whether the picker is the mounted view.
func (l *Loader) ShowingPicker() bool { return l.deck == nil }

// Open mounts the presentation registered under id from its first slide.
func (l *Loader) Open(id string) bool {
	return l.OpenWith(id, OpenOptions{Slide: -1})
}

// OpenQuery mounts the deck named by a ?deck=&slide=&section= query. An
// empty or unknown deck shows the picker.
func (l *Loader) OpenQuery(raw string) bool {
	q := ParseQuery(raw)
	if q.Deck == "" {
		l.Close()
		return false
	}
	return l.OpenWith(q.Deck, OpenOptions{Slide: q.Slide, Section: q.Section})
}

// OpenWith mounts the presentation registered under id and reports whether
// a deck is now playing. Failures are logged and leave the picker mounted.
func (l *Loader) OpenWith(id string, opts OpenOptions) bool {
	l.unmount()

	entry, ok := l.reg.Lookup(id)
	if !ok {
		l.logger.Warn("unknown presentation", slog.String("deck", id))
		l.showPicker()
		return false
	}
	pres, err := build(entry)
	if err != nil {
		l.logger.Warn("presentation failed to build",
			slog.String("deck", id),
			slog.String("error", err.Error()),
		)
		l.showPicker()
		return false
	}

	cfg := DeckConfig{
		Title:        pres.Title,
		ShowControls: pres.ShowControls && !l.hideCtl,
		Transition:   pres.Transition,
		Sections:     pres.Sections,
		Start:        l.startIndex(pres, opts),
		Size:         l.size,
		Keyboard:     l.keyboard,
		Display:      l.display,
		Logger:       l.logger.With(slog.String("deck", id)),
	}
	if cfg.Title == "" {
		cfg.Title = entry.Title
	}
	if l.transition != nil {
		cfg.Transition = *l.transition
	}
	if l.events != nil {
		n := len(pres.Slides)
		cfg.OnChange = func(from, to int) {
			l.emit(PlaybackEvent{Type: EventSlideChanged, Deck: id, From: from, To: to, Slides: n})
		}
	}
	d, err := NewDeck(pres.Slides, cfg)
	if err != nil {
		l.logger.Warn("deck rejected",
			slog.String("deck", id),
			slog.String("error", err.Error()),
		)
		pres.Dispose()
		l.showPicker()
		return false
	}

	l.picker.detach()
	l.deck, l.pres, l.id = d, pres, id
	l.logger.Info("deck opened",
		slog.String("deck", id),
		slog.Int("slides", d.Len()),
		slog.Int("start", d.Index()),
	)
	l.emit(PlaybackEvent{Type: EventDeckOpened, Deck: id, From: -1, To: d.Index(), Slides: d.Len()})
	if l.onOpen != nil {
		l.onOpen(id, d)
	}
	return true
}

func (l *Loader) emit(ev PlaybackEvent) {
	if l.events != nil {
		l.events.EmitEvent(ev)
	}
}

func (l *Loader) startIndex(p *Presentation, opts OpenOptions) int {
	if opts.Slide >= 0 {
		if opts.Slide >= len(p.Slides) {
			l.logger.Debug("start slide out of range", slog.Int("slide", opts.Slide))
			return 0
		}
		return opts.Slide
	}
	if opts.Section != "" {
		for _, s := range p.Sections {
			if s.Label == opts.Section {
				return s.Start
			}
		}
		l.logger.Debug("unknown start section", slog.String("section", opts.Section))
	}
	return 0
}

// build runs the entry constructor, turning a panic into an error.
func build(e Entry) (p *Presentation, err error) {
	defer func() {
		if r := recover(); r != nil {
			p, err = nil, fmt.Errorf("podium: presentation %q panicked: %v", e.ID, r)
		}
	}()
	p, err = e.New()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("podium: presentation %q: %w", e.ID, ErrEmptyDeck)
	}
	return p, nil
}

// Close unmounts the deck, if any, and shows the picker.
func (l *Loader) Close() {
	l.unmount()
	l.showPicker()
}

func (l *Loader) unmount() {
	if l.deck == nil {
		return
	}
	last, n := l.deck.Index(), l.deck.Len()
	l.deck.Dispose()
	l.pres.Dispose()
	l.logger.Debug("deck closed", slog.String("deck", l.id))
	l.emit(PlaybackEvent{Type: EventDeckClosed, Deck: l.id, From: last, To: -1, Slides: n})
	l.deck, l.pres, l.id = nil, nil, ""
}

func (l *Loader) showPicker() {
	l.picker.attach(l.keyboard)
	if l.onPicker != nil {
		l.onPicker()
	}
}

// Update advances the mounted deck.
func (l *Loader) Update(dt float64) {
	if l.deck != nil {
		l.deck.Update(dt)
	}
}

// Node returns the root of the mounted view.
func (l *Loader) Node() *Node {
	if l.deck != nil {
		return l.deck.Node()
	}
	return l.picker.Node()
}

// Draw renders the mounted view onto dst.
func (l *Loader) Draw(dst *ebiten.Image) {
	Draw(dst, l.Node())
}

// Dispose unmounts everything and releases the picker.
func (l *Loader) Dispose() {
	l.unmount()
	l.picker.detach()
	l.picker.Node().Dispose()
}
