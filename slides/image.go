package slides

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp"

	"github.com/phanxgames/podium"
)

// DecodeImage decodes a PNG, JPEG or WebP image.
func DecodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// LoadImage reads and decodes path from fsys.
func LoadImage(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, _, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// ImageSlide shows one picture scaled to fit below an optional heading.
type ImageSlide struct {
	*podium.BaseSlide
	Picture *podium.Content
}

// Image builds an image slide. The picture keeps its aspect ratio and is
// never scaled above its natural size.
func Image(th Theme, title string, img image.Image, caption string) *ImageSlide {
	th = th.withDefaults()
	s := &ImageSlide{BaseSlide: podium.NewBaseSlide("image", th.Size, th.Background)}
	top := th.Margin / 2
	if title != "" {
		top = heading(s.BaseSlide, th, "image", title)
	}
	bottom := th.Size.Y - th.Margin/2
	var note *podium.Node
	if caption != "" {
		note = text("image/caption", caption, podium.DefaultFont(th.SmallSize), th.Muted)
		_, ch := note.TextBlock.Measure()
		bottom -= ch + th.SmallSize/2
		centerX(note, th.Size.X, bottom+th.SmallSize/2)
	}

	pic := podium.NewImage("image/picture", ebiten.NewImageFromImage(img))
	fit(pic, podium.Rect{X: th.Margin, Y: top, Width: th.Size.X - 2*th.Margin, Height: bottom - top})
	s.Picture = s.AddContent(pic, podium.ScaleIn)
	if note != nil {
		s.Animate(podium.NewContent(note, podium.FadeIn, podium.WithDelay(0.3)))
	}
	return s
}

// fit scales n uniformly to fit inside area, centered, never enlarging it.
func fit(n *podium.Node, area podium.Rect) {
	if n.Width <= 0 || n.Height <= 0 {
		return
	}
	scale := min(area.Width/n.Width, area.Height/n.Height, 1)
	n.SetScale(scale, scale)
	n.SetPosition(
		area.X+(area.Width-n.Width*scale)/2,
		area.Y+(area.Height-n.Height*scale)/2,
	)
}
