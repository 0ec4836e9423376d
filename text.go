package podium

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps Ebitengine's text/v2 face for TrueType rendering.
type Font struct {
	face *text.GoTextFace
	size float64
	lh   float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("podium: failed to parse TTF data: %w", err)
	}
	return newFont(source, size), nil
}

func newFont(source *text.GoTextFaceSource, size float64) *Font {
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{
		face: face,
		size: size,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}
}

var (
	builtinOnce    sync.Once
	builtinRegular *text.GoTextFaceSource
	builtinBold    *text.GoTextFaceSource
	builtinErr     error
)

func loadBuiltinSources() {
	builtinRegular, builtinErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if builtinErr != nil {
		return
	}
	builtinBold, builtinErr = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
}

// DefaultFont returns Go Regular at the given size. The embedded font always
// parses, so a failure here is a programming error and panics.
func DefaultFont(size float64) *Font {
	builtinOnce.Do(loadBuiltinSources)
	if builtinErr != nil {
		panic(fmt.Sprintf("podium: builtin font: %v", builtinErr))
	}
	return newFont(builtinRegular, size)
}

// BoldFont returns Go Bold at the given size.
func BoldFont(size float64) *Font {
	builtinOnce.Do(loadBuiltinSources)
	if builtinErr != nil {
		panic(fmt.Sprintf("podium: builtin font: %v", builtinErr))
	}
	return newFont(builtinBold, size)
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Size returns the font size in pixels.
func (f *Font) Size() float64 {
	return f.size
}

// TextBlock holds text content, formatting, and the cached rendered image.
type TextBlock struct {
	Content   string
	Font      *Font
	Color     Color
	Align     TextAlign
	WrapWidth float64 // 0 disables wrapping

	dirty   bool
	lines   string // content after wrapping
	w, h    float64
	image   *ebiten.Image
	imgDirt bool
}

// SetContent replaces the text and invalidates the cached layout.
func (tb *TextBlock) SetContent(s string) {
	if tb.Content == s {
		return
	}
	tb.Content = s
	tb.dirty = true
}

// Invalidate forces a relayout after fields were assigned directly.
func (tb *TextBlock) Invalidate() {
	tb.dirty = true
}

// Measure returns the laid-out size of the block.
func (tb *TextBlock) Measure() (w, h float64) {
	tb.layout()
	return tb.w, tb.h
}

func (tb *TextBlock) layout() {
	if !tb.dirty {
		return
	}
	tb.dirty = false
	tb.imgDirt = true
	if tb.Font == nil || tb.Content == "" {
		tb.lines, tb.w, tb.h = "", 0, 0
		return
	}
	tb.lines = tb.Content
	if tb.WrapWidth > 0 {
		tb.lines = wrapText(tb.Content, tb.Font, tb.WrapWidth)
	}
	tb.w, tb.h = tb.Font.MeasureString(tb.lines)
	if tb.WrapWidth > 0 && tb.Align != TextAlignLeft {
		tb.w = max(tb.w, tb.WrapWidth)
	}
}

// wrapText breaks content into lines no wider than width, splitting on
// spaces. Explicit newlines are kept. A single word wider than width gets a
// line of its own.
func wrapText(content string, f *Font, width float64) string {
	var out strings.Builder
	for pi, para := range strings.Split(content, "\n") {
		if pi > 0 {
			out.WriteByte('\n')
		}
		var line string
		for _, word := range strings.Fields(para) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if w, _ := f.MeasureString(candidate); w > width && line != "" {
				out.WriteString(line)
				out.WriteByte('\n')
				line = word
				continue
			}
			line = candidate
		}
		out.WriteString(line)
	}
	return out.String()
}

// rendered returns the cached image, re-rendering when the layout changed.
func (tb *TextBlock) rendered() *ebiten.Image {
	tb.layout()
	if tb.w == 0 || tb.h == 0 {
		return nil
	}
	if !tb.imgDirt && tb.image != nil {
		return tb.image
	}
	tb.imgDirt = false

	w, h := int(tb.w)+1, int(tb.h)+1
	if tb.image != nil {
		if b := tb.image.Bounds(); b.Dx() != w || b.Dy() != h {
			tb.image.Deallocate()
			tb.image = nil
		} else {
			tb.image.Clear()
		}
	}
	if tb.image == nil {
		tb.image = ebiten.NewImage(w, h)
	}

	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(tb.Color.toRGBA())
	op.LineSpacing = tb.Font.lh
	switch tb.Align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(tb.w/2, 0)
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
		op.GeoM.Translate(tb.w, 0)
	}
	text.Draw(tb.image, tb.lines, tb.Font.face, op)
	return tb.image
}

func (tb *TextBlock) release() {
	if tb.image != nil {
		tb.image.Deallocate()
		tb.image = nil
	}
}

// SetColor changes the text color and invalidates the cached image.
func (tb *TextBlock) SetColor(c Color) {
	if tb.Color == c {
		return
	}
	tb.Color = c
	tb.imgDirt = true
}
