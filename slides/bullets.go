package slides

import (
	"fmt"

	"github.com/phanxgames/podium"
)

// BulletOptions controls how list items enter.
type BulletOptions struct {
	// Variant defaults to podium.FadeInLeft.
	Variant *podium.Variant
	// Stagger is the gap between items; 0 means podium.DefaultStaggerDelay.
	Stagger      float64
	InitialDelay float64
}

// BulletsSlide is a heading over a staggered list.
type BulletsSlide struct {
	*podium.BaseSlide
	List *podium.Stagger
}

// Bullets builds a list slide. An empty item leaves a blank row that is not
// animated but still takes its place in the entrance order.
func Bullets(th Theme, title string, items []string, opts BulletOptions) *BulletsSlide {
	th = th.withDefaults()
	s := &BulletsSlide{BaseSlide: podium.NewBaseSlide("bullets", th.Size, th.Background)}
	top := heading(s.BaseSlide, th, "bullets", title)

	font := podium.DefaultFont(th.BodySize)
	wrap := th.Size.X - 2*th.Margin - th.BodySize
	y := top
	rows := make([]*podium.Node, len(items))
	for i, item := range items {
		row := podium.NewContainer(fmt.Sprintf("bullets/item/%d", i))
		row.SetPosition(th.Margin, y)
		if item == "" {
			rows[i] = row
			y += font.LineHeight()
			continue
		}
		dot := podium.NewRect(row.Name+"/dot", th.BodySize/3, th.BodySize/3, th.Accent)
		dot.SetPosition(0, font.LineHeight()/2-th.BodySize/6)
		t := text(row.Name+"/text", item, font, th.Foreground)
		t.TextBlock.WrapWidth = wrap
		t.SetPosition(th.BodySize, 0)
		row.AddChild(dot)
		row.AddChild(t)
		rows[i] = row

		_, h := t.TextBlock.Measure()
		y += max(h, font.LineHeight()) + th.BodySize/2
	}

	v := podium.FadeInLeft
	if opts.Variant != nil {
		v = *opts.Variant
	}
	gap := opts.Stagger
	if gap <= 0 {
		gap = podium.DefaultStaggerDelay
	}
	s.List = s.AddStagger("bullets/list", rows, v, podium.StaggerConfig{
		Delay:        gap,
		InitialDelay: opts.InitialDelay,
	})
	return s
}
