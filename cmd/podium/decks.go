package main

import (
	"embed"
	"fmt"

	"github.com/phanxgames/podium"
	"github.com/phanxgames/podium/manifest"
	"github.com/phanxgames/podium/slides"
)

//go:embed decks/*.yaml
var deckFS embed.FS

// builtinManifests is the registration list for embedded decks. A file in
// decks/ that is not listed here is not registered.
var builtinManifests = []string{
	"decks/welcome.yaml",
	"decks/keyboard.yaml",
}

// builtinEntries returns the embedded manifests followed by the decks built
// in Go.
func builtinEntries() ([]podium.Entry, error) {
	entries := make([]podium.Entry, 0, len(builtinManifests)+1)
	for _, name := range builtinManifests {
		data, err := deckFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read embedded deck %s: %w", name, err)
		}
		m, err := manifest.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse embedded deck %s: %w", name, err)
		}
		m.Source = name
		m.Assets = deckFS
		entries = append(entries, m.Entry())
	}
	entries = append(entries, podium.Entry{
		ID:          "variants",
		Title:       "Animation Variants",
		Description: "Every built-in entrance variant, one per slide",
		New:         variantsDeck,
	})
	return entries, nil
}

// variantsDeck shows each built-in variant on a row of staggered cards.
func variantsDeck() (*podium.Presentation, error) {
	th := slides.DefaultTheme
	names := podium.VariantNames()
	p := &podium.Presentation{
		Title:        "Animation Variants",
		Transition:   podium.TransitionSlide,
		ShowControls: true,
	}
	p.Slides = append(p.Slides, slides.Title(th, "Animation Variants", fmt.Sprintf("%d built-in entrances", len(names))))
	for _, name := range names {
		v, _ := podium.LookupVariant(name)
		s := podium.NewBaseSlide("variant/"+name, th.Size, th.Background)

		label := podium.NewText("variant/"+name+"/label", name, podium.BoldFont(th.HeadingSize))
		label.SetPosition(th.Margin, th.Margin)
		s.AddContent(label, podium.FadeIn)

		const cards, cardW, cardH, gap = 5, 160.0, 160.0, 32.0
		left := (th.Size.X - cards*cardW - (cards-1)*gap) / 2
		row := make([]*podium.Node, cards)
		for i := range row {
			c := podium.NewRect(fmt.Sprintf("variant/%s/card/%d", name, i), cardW, cardH, th.Accent.WithAlpha(0.4+0.12*float64(i)))
			c.SetPosition(left+float64(i)*(cardW+gap), (th.Size.Y-cardH)/2)
			row[i] = c
		}
		s.AddStagger("variant/"+name+"/cards", row, v, podium.StaggerConfig{
			Delay:        podium.DefaultStaggerDelay,
			InitialDelay: 0.2,
		})
		p.Slides = append(p.Slides, s)
	}
	p.Sections = []podium.Section{{Label: "Intro", Start: 0}, {Label: "Variants", Start: 1}}
	return p, nil
}
