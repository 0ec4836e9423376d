package podium

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyID is returned by NewRegistry for an entry without an ID.
	ErrEmptyID = errors.New("podium: presentation id is empty")
	// ErrDuplicateID is returned by NewRegistry when two entries share an ID.
	ErrDuplicateID = errors.New("podium: duplicate presentation id")
	// ErrNoConstructor is returned by NewRegistry for an entry with a nil New.
	ErrNoConstructor = errors.New("podium: presentation has no constructor")
)

// Presentation is a built deck ready to mount: the slides plus the deck
// options they were authored with.
type Presentation struct {
	Title        string
	Slides       []Slide
	Transition   TransitionKind
	ShowControls bool
	Sections     []Section
}

// Dispose releases the nodes of every slide. Call it once the deck playing
// the presentation has been disposed.
func (p *Presentation) Dispose() {
	for _, s := range p.Slides {
		if s == nil {
			continue
		}
		if n := s.Node(); n != nil {
			n.Dispose()
		}
	}
}

// Entry registers one presentation. New is called on every mount so each
// playback starts from fresh slide state.
type Entry struct {
	ID          string
	Title       string
	Description string
	New         func() (*Presentation, error)
}

// Registry is the fixed set of presentations known to a Loader. It is built
// once at startup from an explicit list and never changes afterwards.
type Registry struct {
	entries []Entry
	byID    map[string]int
}

// NewRegistry validates entries and builds a registry. Entry order is kept
// for the picker.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyID)
		}
		if e.New == nil {
			return nil, fmt.Errorf("entry %q: %w", e.ID, ErrNoConstructor)
		}
		if _, dup := r.byID[e.ID]; dup {
			return nil, fmt.Errorf("entry %q: %w", e.ID, ErrDuplicateID)
		}
		if e.Title == "" {
			e.Title = e.ID
		}
		r.byID[e.ID] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error. For static
// registration lists in main packages.
func MustRegistry(entries ...Entry) *Registry {
	r, err := NewRegistry(entries...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the entry registered under id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Entries returns a copy of the entries in registration order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// IDs returns the registered IDs, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		ids = append(ids, e.ID)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.entries) }
