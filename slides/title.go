package slides

import "github.com/phanxgames/podium"

// TitleSlide shows a large centered title with an optional subtitle.
type TitleSlide struct {
	*podium.BaseSlide
	Title    *podium.Content
	Subtitle *podium.Content // nil without a subtitle
}

// Title builds a title slide.
func Title(th Theme, title, subtitle string) *TitleSlide {
	th = th.withDefaults()
	w, h := th.Size.X, th.Size.Y
	s := &TitleSlide{BaseSlide: podium.NewBaseSlide("title", th.Size, th.Background)}

	tn := text("title/text", title, podium.BoldFont(th.TitleSize), th.Foreground)
	tn.TextBlock.WrapWidth = w - 2*th.Margin
	tn.TextBlock.Align = podium.TextAlignCenter
	_, titleH := tn.TextBlock.Measure()

	var sn *podium.Node
	var subH float64
	if subtitle != "" {
		sn = text("title/subtitle", subtitle, podium.DefaultFont(th.BodySize), th.Muted)
		sn.TextBlock.WrapWidth = w - 2*th.Margin
		sn.TextBlock.Align = podium.TextAlignCenter
		_, subH = sn.TextBlock.Measure()
	}

	gap := th.BodySize
	top := (h - titleH - subH - gap) / 2
	if sn == nil {
		top = (h - titleH) / 2
	}
	centerX(tn, w, top)
	s.Title = s.AddContent(tn, podium.FadeInUp)

	rule := podium.NewRect("title/rule", 120, 4, th.Accent)
	rule.SetPosition((w-120)/2, top+titleH+gap/2-2)
	s.Animate(podium.NewContent(rule, podium.ScaleIn, podium.WithDelay(0.2)))

	if sn != nil {
		centerX(sn, w, top+titleH+gap)
		s.Subtitle = podium.NewContent(sn, podium.FadeIn, podium.WithDelay(0.35))
		s.Animate(s.Subtitle)
	}
	return s
}
