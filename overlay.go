package podium

import (
	"fmt"
	"math"
)

// Overlay colors and metrics, in stage pixels.
var (
	overlayText     = Color{R: 1, G: 1, B: 1, A: 0.75}
	overlayTrack    = Color{R: 1, G: 1, B: 1, A: 0.15}
	overlayBar      = Color{R: 0.35, G: 0.65, B: 1, A: 0.9}
	overlayMargin   = 24.0
	overlayBarH     = 4.0
	overlayFontSize = 18.0
)

// Overlay draws the deck controls on top of the slides: title, section
// label, an "n / N" counter and a progress bar.
type Overlay struct {
	deck *Deck
	root *Node

	title   *Node
	section *Node
	counter *Node
	track   *Node
	bar     *Node

	// shown is the bar fill fraction on screen; it eases toward the deck's
	// progress.
	shown float64
}

func newOverlay(d *Deck) *Overlay {
	font := DefaultFont(overlayFontSize)
	w, h := d.size.X, d.size.Y

	o := &Overlay{
		deck:    d,
		root:    NewContainer("deck/overlay"),
		title:   NewText("deck/overlay/title", d.title, font),
		section: NewText("deck/overlay/section", "", font),
		counter: NewText("deck/overlay/counter", "", font),
		track:   NewRect("deck/overlay/track", w, overlayBarH, overlayTrack),
		bar:     NewRect("deck/overlay/bar", 0, overlayBarH, overlayBar),
	}
	for _, n := range []*Node{o.title, o.section, o.counter} {
		n.TextBlock.SetColor(overlayText)
	}
	o.counter.TextBlock.Align = TextAlignRight

	o.title.SetPosition(overlayMargin, overlayMargin)
	o.track.SetPosition(0, h-overlayBarH)
	o.bar.SetPosition(0, h-overlayBarH)

	o.root.AddChild(o.title)
	o.root.AddChild(o.section)
	o.root.AddChild(o.counter)
	o.root.AddChild(o.track)
	o.root.AddChild(o.bar)

	o.shown = d.Progress()
	o.refresh()
	o.bar.Width = o.shown * w
	return o
}

// Node returns the overlay root.
func (o *Overlay) Node() *Node { return o.root }

// Visible reports whether the overlay is drawn.
func (o *Overlay) Visible() bool { return o.root.Visible }

func (o *Overlay) toggle() {
	o.root.Visible = !o.root.Visible
}

// refresh updates the labels after an index change.
func (o *Overlay) refresh() {
	d := o.deck
	w, h := d.size.X, d.size.Y
	line := o.counter.TextBlock.Font.LineHeight()
	y := h - overlayBarH - overlayMargin/2 - line

	o.counter.TextBlock.SetContent(fmt.Sprintf("%d / %d", d.index+1, len(d.slides)))
	cw, _ := o.counter.TextBlock.Measure()
	o.counter.SetPosition(w-overlayMargin-cw, y)

	label := ""
	if s, ok := d.CurrentSection(); ok {
		label = s.Label
	}
	o.section.TextBlock.SetContent(label)
	o.section.SetPosition(overlayMargin, y)
}

// update eases the progress bar toward the deck's progress.
func (o *Overlay) update(dt float64) {
	target := o.deck.Progress()
	if o.shown == target {
		return
	}
	// Exponential approach, about 90% of the way in 0.2 s.
	k := 1 - math.Exp(-dt*11.5)
	o.shown += (target - o.shown) * k
	if math.Abs(target-o.shown) < 1e-3 {
		o.shown = target
	}
	o.bar.Width = o.shown * o.deck.size.X
	o.bar.MarkDirty()
}

func (o *Overlay) dispose() {
	o.root.RemoveFromParent()
	o.root.Dispose()
}
