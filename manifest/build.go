package manifest

import (
	"fmt"
	"path/filepath"

	"github.com/phanxgames/podium"
	"github.com/phanxgames/podium/slides"
)

// Build constructs fresh slides for the manifest. Each call returns new
// slide state, so it is safe to use as a registry constructor.
func (m *Manifest) Build() (*podium.Presentation, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	th, _ := slides.ThemeByName(m.Theme)
	kind, _ := podium.ParseTransition(m.Transition)
	show := true
	if m.ShowControls != nil {
		show = *m.ShowControls
	}

	p := &podium.Presentation{
		Title:        m.DisplayTitle(),
		Transition:   kind,
		ShowControls: show,
	}
	// starts[i] is the index of the first built slide of entry i.
	starts := make([]int, len(m.Slides))
	for i, spec := range m.Slides {
		starts[i] = len(p.Slides)
		built, err := m.buildSlide(th, spec)
		if err != nil {
			p.Dispose()
			return nil, fmt.Errorf("deck %q: slide %d: %w", m.ID, i+1, err)
		}
		p.Slides = append(p.Slides, built...)
	}
	for _, sec := range m.Sections {
		p.Sections = append(p.Sections, podium.Section{Label: sec.Label, Start: starts[sec.Start]})
	}
	return p, nil
}

func (m *Manifest) buildSlide(th slides.Theme, s Slide) ([]podium.Slide, error) {
	switch s.Kind {
	case KindTitle:
		return []podium.Slide{slides.Title(th, s.Title, s.Subtitle)}, nil
	case KindBullets:
		opts := slides.BulletOptions{Stagger: s.Stagger, InitialDelay: s.InitialDelay}
		if v, ok := podium.LookupVariant(s.Variant); ok {
			opts.Variant = &v
		}
		return []podium.Slide{slides.Bullets(th, s.Title, s.Items, opts)}, nil
	case KindTimeline:
		events := make([]slides.Event, len(s.Events))
		for i, ev := range s.Events {
			events[i] = slides.Event{Label: ev.Label, Text: ev.Text}
		}
		return []podium.Slide{slides.Timeline(th, s.Title, events)}, nil
	case KindQR:
		q, err := slides.QR(th, s.Title, s.URL, s.Caption)
		if err != nil {
			return nil, err
		}
		return []podium.Slide{q}, nil
	case KindImage:
		if m.Assets == nil {
			return nil, fmt.Errorf("image %q: manifest has no asset directory", s.Path)
		}
		img, err := slides.LoadImage(m.Assets, filepath.ToSlash(s.Path))
		if err != nil {
			return nil, err
		}
		return []podium.Slide{slides.Image(th, s.Title, img, s.Caption)}, nil
	case KindPDF:
		if m.Dir == "" {
			return nil, fmt.Errorf("pdf %q: manifest is not on disk", s.Path)
		}
		path := s.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(m.Dir, path)
		}
		return slides.PDFPages(th, path, s.Pages)
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownKind, s.Kind)
}

// Entry returns a registry entry that builds the manifest on every mount.
func (m *Manifest) Entry() podium.Entry {
	return podium.Entry{
		ID:          m.ID,
		Title:       m.DisplayTitle(),
		Description: m.Description,
		New:         m.Build,
	}
}

// Entries converts manifests to registry entries, keeping their order.
func Entries(ms []*Manifest) []podium.Entry {
	out := make([]podium.Entry, len(ms))
	for i, m := range ms {
		out[i] = m.Entry()
	}
	return out
}
