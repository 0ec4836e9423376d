package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/podium"
	"github.com/phanxgames/podium/slides"
)

var (
	// ErrInvalid wraps every manifest validation error.
	ErrInvalid = errors.New("manifest: invalid")
	// ErrUnknownKind is returned for a slide kind outside the known set.
	ErrUnknownKind = errors.New("manifest: unknown slide kind")
)

// Slide kinds.
const (
	KindTitle    = "title"
	KindBullets  = "bullets"
	KindTimeline = "timeline"
	KindQR       = "qr"
	KindImage    = "image"
	KindPDF      = "pdf"
)

// Kinds lists every slide kind in documentation order.
var Kinds = []string{KindTitle, KindBullets, KindTimeline, KindQR, KindImage, KindPDF}

// Manifest is one deck description.
type Manifest struct {
	ID           string    `yaml:"id"`
	Title        string    `yaml:"title,omitempty"`
	Description  string    `yaml:"description,omitempty"`
	Transition   string    `yaml:"transition,omitempty"`
	ShowControls *bool     `yaml:"show_controls,omitempty"`
	Theme        string    `yaml:"theme,omitempty"`
	Sections     []Section `yaml:"sections,omitempty"`
	Slides       []Slide   `yaml:"slides"`

	// Source is where the manifest was read from, for messages.
	Source string `yaml:"-"`
	// Assets resolves image paths. Dir resolves pdf paths, which need a real
	// file; manifests without a Dir cannot use pdf slides.
	Assets fs.FS  `yaml:"-"`
	Dir    string `yaml:"-"`
}

// Section names the manifest slide entry a section starts at (0-based).
// A pdf entry expanding to several slides counts as one entry here.
type Section struct {
	Label string `yaml:"label"`
	Start int    `yaml:"start"`
}

// Slide is one entry of the slides list. Which fields apply depends on Kind.
type Slide struct {
	Kind     string `yaml:"kind"`
	Title    string `yaml:"title,omitempty"`
	Subtitle string `yaml:"subtitle,omitempty"`

	Items        []string `yaml:"items,omitempty"`
	Variant      string   `yaml:"variant,omitempty"`
	Stagger      float64  `yaml:"stagger,omitempty"`
	InitialDelay float64  `yaml:"initial_delay,omitempty"`

	Events []Event `yaml:"events,omitempty"`

	URL     string `yaml:"url,omitempty"`
	Caption string `yaml:"caption,omitempty"`
	Path    string `yaml:"path,omitempty"`
	Pages   []int  `yaml:"pages,omitempty"`
}

// Event is one timeline point.
type Event struct {
	Label string `yaml:"label"`
	Text  string `yaml:"text,omitempty"`
}

// Parse decodes and validates a manifest. Unknown fields are errors.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// DisplayTitle returns the title shown in the picker: Title, or the ID in
// title case with dashes and underscores as spaces.
func (m *Manifest) DisplayTitle() string {
	if t := strings.TrimSpace(m.Title); t != "" {
		return t
	}
	return TitleFromID(m.ID)
}

// TitleFromID turns "getting-started" into "Getting Started". It is safe for
// concurrent use; a cases.Caser is not, so each call builds its own.
func TitleFromID(id string) string {
	r := strings.NewReplacer("-", " ", "_", " ")
	return cases.Title(language.English).String(strings.Join(strings.Fields(r.Replace(id)), " "))
}

// Validate checks the manifest without building anything.
func (m *Manifest) Validate() error {
	if err := validateID(m.ID); err != nil {
		return err
	}
	if m.Transition != "" {
		if _, err := podium.ParseTransition(m.Transition); err != nil {
			return m.errorf("transition: %v", err)
		}
	}
	if _, ok := slides.ThemeByName(m.Theme); !ok {
		return m.errorf("unknown theme %q", m.Theme)
	}
	if len(m.Slides) == 0 {
		return fmt.Errorf("%w: deck %q: %w", ErrInvalid, m.ID, podium.ErrEmptyDeck)
	}
	for i, sec := range m.Sections {
		if strings.TrimSpace(sec.Label) == "" {
			return m.errorf("section %d: empty label", i)
		}
		if sec.Start < 0 || sec.Start >= len(m.Slides) {
			return m.errorf("section %q: start %d outside 0..%d", sec.Label, sec.Start, len(m.Slides)-1)
		}
	}
	for i, s := range m.Slides {
		if err := s.validate(); err != nil {
			return fmt.Errorf("deck %q: slide %d: %w", m.ID, i+1, err)
		}
	}
	return nil
}

func (m *Manifest) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: deck %q: %s", ErrInvalid, m.ID, fmt.Sprintf(format, args...))
}

func validateID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing id", ErrInvalid)
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: id %q: use lower-case letters, digits, '-' and '_'", ErrInvalid, id)
		}
	}
	return nil
}

func (s Slide) validate() error {
	need := func(ok bool, what string) error {
		if ok {
			return nil
		}
		return fmt.Errorf("%w: %s slide needs %s", ErrInvalid, s.Kind, what)
	}
	if s.Variant != "" {
		if _, ok := podium.LookupVariant(s.Variant); !ok {
			return fmt.Errorf("%w: unknown variant %q (known: %s)", ErrInvalid, s.Variant, strings.Join(podium.VariantNames(), ", "))
		}
	}
	if s.Stagger < 0 || s.InitialDelay < 0 {
		return fmt.Errorf("%w: negative stagger timing", ErrInvalid)
	}
	switch s.Kind {
	case KindTitle:
		return need(s.Title != "", "a title")
	case KindBullets:
		return need(len(s.Items) > 0, "items")
	case KindTimeline:
		if err := need(len(s.Events) > 0, "events"); err != nil {
			return err
		}
		for i, ev := range s.Events {
			if ev.Label == "" {
				return fmt.Errorf("%w: timeline event %d has no label", ErrInvalid, i+1)
			}
		}
		return nil
	case KindQR:
		return need(s.URL != "", "a url")
	case KindImage:
		return need(s.Path != "", "a path")
	case KindPDF:
		if err := need(s.Path != "", "a path"); err != nil {
			return err
		}
		for _, p := range s.Pages {
			if p < 1 {
				return fmt.Errorf("%w: pdf page %d: pages are 1-based", ErrInvalid, p)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w %q (known: %s)", ErrUnknownKind, s.Kind, strings.Join(Kinds, ", "))
	}
}
