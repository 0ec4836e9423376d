package podium

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func sectionEntry() Entry {
	return Entry{
		ID:    "sections",
		Title: "Sections",
		New: func() (*Presentation, error) {
			slides, _ := recSlides(5)
			return &Presentation{
				Title:        "With sections",
				Slides:       slides,
				Transition:   TransitionSlide,
				ShowControls: true,
				Sections:     []Section{{Label: "Intro", Start: 0}, {Label: "Demo", Start: 3}},
			}, nil
		},
	}
}

func newTestLoader(t *testing.T, cfg LoaderConfig, entries ...Entry) (*Loader, *Keyboard) {
	t.Helper()
	if cfg.Keyboard == nil {
		cfg.Keyboard = NewKeyboard(&fakeKeys{})
	}
	if cfg.Registry == nil {
		cfg.Registry = MustRegistry(entries...)
	}
	l, err := NewLoader(cfg)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	t.Cleanup(l.Dispose)
	return l, cfg.Keyboard
}

func TestNewLoaderShowsPicker(t *testing.T) {
	pickerShown := 0
	l, kbd := newTestLoader(t, LoaderConfig{OnPicker: func() { pickerShown++ }}, recEntry("a", 2), recEntry("b", 1))
	if !l.ShowingPicker() || l.Deck() != nil || l.Current() != "" {
		t.Fatal("loader should start on the picker")
	}
	if l.Node() != l.Picker().Node() {
		t.Error("Node should be the picker root")
	}
	if pickerShown != 1 || kbd.NumHandlers() != 1 {
		t.Errorf("pickerShown = %d, handlers = %d", pickerShown, kbd.NumHandlers())
	}
	if len(l.Picker().Entries()) != 2 {
		t.Errorf("picker lists %d entries", len(l.Picker().Entries()))
	}
}

func TestNewLoaderErrors(t *testing.T) {
	if _, err := NewLoader(LoaderConfig{}); err == nil {
		t.Error("a registry is required")
	}
	if _, err := NewLoader(LoaderConfig{Registry: MustRegistry(), Transition: "wipe"}); err == nil {
		t.Error("an unknown transition override should fail")
	}
}

func TestLoaderOpen(t *testing.T) {
	var opened string
	l, kbd := newTestLoader(t, LoaderConfig{OnOpen: func(id string, d *Deck) { opened = id }}, recEntry("a", 3))

	if !l.Open("a") {
		t.Fatal("Open(a) failed")
	}
	d := l.Deck()
	if d == nil || l.ShowingPicker() || l.Current() != "a" || opened != "a" {
		t.Fatalf("deck not mounted: current = %q", l.Current())
	}
	if d.Title() != "a" || d.Index() != 0 {
		t.Errorf("title = %q index = %d", d.Title(), d.Index())
	}
	if l.Node() != d.Node() {
		t.Error("Node should be the deck stage")
	}
	if kbd.NumHandlers() != 1 {
		t.Errorf("only the deck should hold keys, got %d handlers", kbd.NumHandlers())
	}
	press(kbd, ebiten.KeyArrowRight)
	if d.Index() != 1 {
		t.Error("deck keys should be live")
	}
}

func TestLoaderUnknownDeckShowsPicker(t *testing.T) {
	l, kbd := newTestLoader(t, LoaderConfig{}, recEntry("a", 1), recEntry("b", 1))
	l.Open("a")

	if l.OpenQuery("?deck=does-not-exist") {
		t.Fatal("unknown deck should not open")
	}
	if !l.ShowingPicker() || l.Deck() != nil {
		t.Fatal("unknown deck should fall back to the picker")
	}
	if got := len(l.Picker().Entries()); got != 2 {
		t.Errorf("picker lists %d entries, want every registered one", got)
	}
	if kbd.NumHandlers() != 1 {
		t.Errorf("handlers = %d, want only the picker's", kbd.NumHandlers())
	}
}

func TestLoaderConstructorFailures(t *testing.T) {
	tests := []struct {
		name string
		New  func() (*Presentation, error)
	}{
		{"error", func() (*Presentation, error) { return nil, errors.New("boom") }},
		{"panic", func() (*Presentation, error) { panic("kaboom") }},
		{"nil presentation", func() (*Presentation, error) { return nil, nil }},
		{"no slides", func() (*Presentation, error) { return &Presentation{}, nil }},
		{"bad section", func() (*Presentation, error) {
			slides, _ := recSlides(1)
			return &Presentation{Slides: slides, Sections: []Section{{Label: "x", Start: 4}}}, nil
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLoader(t, LoaderConfig{}, Entry{ID: "bad", New: tt.New})
			if l.Open("bad") {
				t.Fatal("Open should report failure")
			}
			if !l.ShowingPicker() {
				t.Error("failure should leave the picker mounted")
			}
		})
	}
}

func TestLoaderOpenQueryStart(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"?deck=sections", 0},
		{"?deck=sections&slide=3", 2},
		{"?deck=sections&slide=99", 0},
		{"?deck=sections&section=Demo", 3},
		{"?deck=sections&section=Nope", 0},
		{"?deck=sections&slide=2&section=Demo", 1},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			l, _ := newTestLoader(t, LoaderConfig{}, sectionEntry())
			if !l.OpenQuery(tt.query) {
				t.Fatal("OpenQuery failed")
			}
			if got := l.Deck().Index(); got != tt.want {
				t.Errorf("start = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoaderOpenQueryEmptyShowsPicker(t *testing.T) {
	l, _ := newTestLoader(t, LoaderConfig{}, recEntry("a", 1))
	l.Open("a")
	if l.OpenQuery("?slide=2") {
		t.Error("a query without a deck opens nothing")
	}
	if !l.ShowingPicker() {
		t.Error("picker expected")
	}
}

func TestLoaderOverrides(t *testing.T) {
	l, _ := newTestLoader(t, LoaderConfig{Transition: "zoom", HideControls: true}, sectionEntry())
	l.Open("sections")
	d := l.Deck()
	if d.Transition().Kind != TransitionZoom {
		t.Errorf("transition = %v, want zoom", d.Transition().Kind)
	}
	if d.overlay != nil {
		t.Error("HideControls should suppress the overlay")
	}
	if d.Title() != "With sections" {
		t.Errorf("title = %q", d.Title())
	}
}

func TestLoaderSwitchDisposesPrevious(t *testing.T) {
	built := 0
	entry := Entry{ID: "fresh", New: func() (*Presentation, error) {
		built++
		slides, _ := recSlides(2)
		return &Presentation{Slides: slides}, nil
	}}
	l, kbd := newTestLoader(t, LoaderConfig{}, entry, recEntry("other", 1))

	l.Open("fresh")
	first := l.Deck()
	firstSlide := first.Slide(0)
	l.Open("other")

	if !first.Disposed() {
		t.Error("previous deck should be disposed")
	}
	if !firstSlide.Node().IsDisposed() {
		t.Error("previous presentation should be released")
	}
	if kbd.NumHandlers() != 1 {
		t.Errorf("handlers = %d, want 1", kbd.NumHandlers())
	}

	l.Open("fresh")
	if built != 2 {
		t.Errorf("constructor ran %d times, want once per mount", built)
	}
	if l.Deck().Slide(0) == firstSlide {
		t.Error("each mount should get fresh slides")
	}
}

func TestLoaderClose(t *testing.T) {
	l, kbd := newTestLoader(t, LoaderConfig{}, recEntry("a", 2))
	l.Open("a")
	d := l.Deck()
	l.Close()
	if !d.Disposed() || !l.ShowingPicker() || l.Current() != "" {
		t.Fatal("Close should unmount to the picker")
	}
	if kbd.NumHandlers() != 1 {
		t.Errorf("handlers = %d, want only the picker's", kbd.NumHandlers())
	}
	l.Close()
	if kbd.NumHandlers() != 1 {
		t.Error("closing twice must not stack picker handlers")
	}
}

func TestLoaderUpdateForwardsToDeck(t *testing.T) {
	l, _ := newTestLoader(t, LoaderConfig{}, sectionEntry())
	l.Update(frame)
	l.Open("sections")
	l.Deck().Next()
	if !l.Deck().State().Transitioning {
		t.Fatal("slide transition expected")
	}
	for range 60 {
		l.Update(frame)
	}
	if l.Deck().State().Transitioning {
		t.Error("Update should drive the deck")
	}
}

func TestLoaderDispose(t *testing.T) {
	kbd := NewKeyboard(&fakeKeys{})
	l, err := NewLoader(LoaderConfig{Registry: MustRegistry(recEntry("a", 1)), Keyboard: kbd})
	if err != nil {
		t.Fatal(err)
	}
	l.Open("a")
	l.Dispose()
	if kbd.NumHandlers() != 0 {
		t.Errorf("handlers = %d after Dispose", kbd.NumHandlers())
	}
}

type recSink struct{ events []PlaybackEvent }

func (s *recSink) EmitEvent(ev PlaybackEvent) { s.events = append(s.events, ev) }

func TestLoaderEmitsPlaybackEvents(t *testing.T) {
	sink := &recSink{}
	l, _ := newTestLoader(t, LoaderConfig{Events: sink}, recEntry("a", 3))

	l.Open("a")
	l.Deck().Next()
	l.Deck().End()
	l.Close()
	l.Open("missing")

	want := []PlaybackEvent{
		{Type: EventDeckOpened, Deck: "a", From: -1, To: 0, Slides: 3},
		{Type: EventSlideChanged, Deck: "a", From: 0, To: 1, Slides: 3},
		{Type: EventSlideChanged, Deck: "a", From: 1, To: 2, Slides: 3},
		{Type: EventDeckClosed, Deck: "a", From: 2, To: -1, Slides: 3},
	}
	if len(sink.events) != len(want) {
		t.Fatalf("events = %+v", sink.events)
	}
	for i := range want {
		if sink.events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, sink.events[i], want[i])
		}
	}
	if EventSlideChanged.String() != "changed" || PlaybackEventType(9).String() != "unknown" {
		t.Error("event type names")
	}
}
