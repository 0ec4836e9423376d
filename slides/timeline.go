package slides

import (
	"fmt"

	"github.com/phanxgames/podium"
)

// Event is one point on a timeline.
type Event struct {
	Label string
	Text  string
}

// TimelineSlide lays events out left to right on a horizontal axis. The axis
// draws in first, then the events pop in one by one.
type TimelineSlide struct {
	*podium.BaseSlide
	Events *podium.Stagger
}

// Timeline builds a timeline slide.
func Timeline(th Theme, title string, events []Event) *TimelineSlide {
	th = th.withDefaults()
	s := &TimelineSlide{BaseSlide: podium.NewBaseSlide("timeline", th.Size, th.Background)}
	heading(s.BaseSlide, th, "timeline", title)

	w := th.Size.X - 2*th.Margin
	axisY := th.Size.Y * 0.55
	axis := podium.NewRect("timeline/axis", w, 4, th.Muted)
	axis.SetPosition(th.Margin, axisY-2)
	s.Animate(podium.NewContent(axis, podium.FadeIn))

	n := len(events)
	if n == 0 {
		return s
	}
	step := w / float64(n)
	label := podium.BoldFont(th.BodySize)
	body := podium.DefaultFont(th.SmallSize)
	dot := th.BodySize * 0.6

	nodes := make([]*podium.Node, n)
	for i, ev := range events {
		cx := th.Margin + step*(float64(i)+0.5)
		g := podium.NewContainer(fmt.Sprintf("timeline/event/%d", i))

		d := podium.NewRect(g.Name+"/dot", dot, dot, th.Accent)
		d.SetPosition(cx-dot/2, axisY-dot/2)
		g.AddChild(d)

		l := text(g.Name+"/label", ev.Label, label, th.Foreground)
		lw, lh := l.TextBlock.Measure()
		l.SetPosition(cx-lw/2, axisY-dot-lh)
		g.AddChild(l)

		if ev.Text != "" {
			t := text(g.Name+"/text", ev.Text, body, th.Muted)
			t.TextBlock.WrapWidth = step - th.SmallSize
			t.TextBlock.Align = podium.TextAlignCenter
			tw, _ := t.TextBlock.Measure()
			t.SetPosition(cx-tw/2, axisY+dot)
			g.AddChild(t)
		}
		nodes[i] = g
	}
	s.Events = s.AddStagger("timeline/events", nodes, podium.PopIn, podium.StaggerConfig{
		Delay:        0.15,
		InitialDelay: 0.3,
	})
	return s
}
