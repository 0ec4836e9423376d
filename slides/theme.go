package slides

import "github.com/phanxgames/podium"

// Theme holds the shared look of a deck's slides.
type Theme struct {
	Size       podium.Vec2
	Background podium.Color
	Foreground podium.Color
	Muted      podium.Color
	Accent     podium.Color

	TitleSize   float64
	HeadingSize float64
	BodySize    float64
	SmallSize   float64
	Margin      float64
}

// DefaultTheme is a dark theme at podium.DefaultStageSize.
var DefaultTheme = Theme{
	Size:        podium.DefaultStageSize,
	Background:  podium.Color{R: 0.07, G: 0.08, B: 0.11, A: 1},
	Foreground:  podium.Color{R: 0.95, G: 0.95, B: 0.97, A: 1},
	Muted:       podium.Color{R: 0.62, G: 0.65, B: 0.72, A: 1},
	Accent:      podium.Color{R: 0.35, G: 0.65, B: 1, A: 1},
	TitleSize:   72,
	HeadingSize: 48,
	BodySize:    30,
	SmallSize:   20,
	Margin:      96,
}

// LightTheme swaps the background and foreground of DefaultTheme.
var LightTheme = func() Theme {
	t := DefaultTheme
	t.Background = podium.Color{R: 0.98, G: 0.98, B: 0.97, A: 1}
	t.Foreground = podium.Color{R: 0.1, G: 0.11, B: 0.14, A: 1}
	t.Muted = podium.Color{R: 0.4, G: 0.42, B: 0.47, A: 1}
	t.Accent = podium.Color{R: 0.1, G: 0.45, B: 0.9, A: 1}
	return t
}()

// ThemeByName returns a built-in theme. Unknown names return DefaultTheme
// and false.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "dark":
		return DefaultTheme, true
	case "light":
		return LightTheme, true
	}
	return DefaultTheme, false
}

func (t Theme) withDefaults() Theme {
	if t.Size.X <= 0 || t.Size.Y <= 0 {
		t.Size = podium.DefaultStageSize
	}
	if t.TitleSize <= 0 {
		t.TitleSize = DefaultTheme.TitleSize
	}
	if t.HeadingSize <= 0 {
		t.HeadingSize = DefaultTheme.HeadingSize
	}
	if t.BodySize <= 0 {
		t.BodySize = DefaultTheme.BodySize
	}
	if t.SmallSize <= 0 {
		t.SmallSize = DefaultTheme.SmallSize
	}
	if t.Margin <= 0 {
		t.Margin = DefaultTheme.Margin
	}
	return t
}

// text creates a text node in color c.
func text(name, content string, font *podium.Font, c podium.Color) *podium.Node {
	n := podium.NewText(name, content, font)
	n.TextBlock.SetColor(c)
	return n
}

// centerX places n horizontally centered on a stage of width w at y.
func centerX(n *podium.Node, w, y float64) {
	tw, _ := n.TextBlock.Measure()
	n.SetPosition((w-tw)/2, y)
}

// heading adds the slide heading used by every content slide and returns
// the y coordinate where the body starts.
func heading(s *podium.BaseSlide, th Theme, name, title string) float64 {
	if title == "" {
		return th.Margin
	}
	h := text(name+"/heading", title, podium.BoldFont(th.HeadingSize), th.Foreground)
	h.SetPosition(th.Margin, th.Margin*0.75)
	s.AddContent(h, podium.FadeInDown)
	_, hh := h.TextBlock.Measure()
	return th.Margin*0.75 + hh + th.Margin/2
}
