package slides

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"github.com/phanxgames/podium"
)

var (
	qrLight = podium.Color{R: 1, G: 1, B: 1, A: 1}
	qrDark  = podium.Color{R: 0, G: 0, B: 0, A: 1}
)

// QRSlide shows a scannable link with its URL printed underneath.
type QRSlide struct {
	*podium.BaseSlide
	Code *podium.Content
	URL  string
}

// QR builds a QR code slide for url. The code is drawn from rectangles, one
// per horizontal run of dark modules, so it stays sharp at any window size.
func QR(th Theme, title, url, caption string) (*QRSlide, error) {
	code, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr %q: %w", url, err)
	}
	th = th.withDefaults()
	s := &QRSlide{BaseSlide: podium.NewBaseSlide("qr", th.Size, th.Background), URL: url}
	top := heading(s.BaseSlide, th, "qr", title)

	label := caption
	if label == "" {
		label = url
	}
	note := text("qr/caption", label, podium.DefaultFont(th.SmallSize), th.Muted)
	_, ch := note.TextBlock.Measure()

	side := th.Size.Y - top - th.Margin/2 - ch - th.SmallSize
	node := qrNode(code.Bitmap(), side)
	node.SetPosition((th.Size.X-node.Width)/2, top)
	s.Code = s.AddContent(node, podium.PopIn)

	centerX(note, th.Size.X, top+node.Height+th.SmallSize/2)
	s.Animate(podium.NewContent(note, podium.FadeIn, podium.WithDelay(0.3)))
	return s, nil
}

// qrNode renders a module bitmap (quiet zone included) no larger than side
// pixels square. Modules are whole pixels.
func qrNode(bitmap [][]bool, side float64) *podium.Node {
	n := len(bitmap)
	module := float64(int(side) / max(n, 1))
	if module < 1 {
		module = 1
	}
	size := module * float64(n)
	root := podium.NewContainer("qr/code")
	root.Width, root.Height = size, size
	root.AddChild(podium.NewRect("qr/code/bg", size, size, qrLight))
	for y, row := range bitmap {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			r := podium.NewRect("", module*float64(x-start), module, qrDark)
			r.SetPosition(module*float64(start), module*float64(y))
			root.AddChild(r)
		}
	}
	return root
}
