package podium

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	pickerBackground = Color{R: 0.07, G: 0.08, B: 0.11, A: 1}
	pickerHighlight  = Color{R: 0.35, G: 0.65, B: 1, A: 0.25}
	pickerDim        = Color{R: 1, G: 1, B: 1, A: 0.55}
)

const (
	pickerRowHeight = 64.0
	pickerTop       = 160.0
	pickerLeft      = 120.0
)

// Picker lists every registered presentation. Up and Down move the
// selection; Enter or Space opens it.
type Picker struct {
	entries []Entry
	sel     int
	size    Vec2

	root      *Node
	highlight *Node
	rows      []*Node

	keys   KeyHandle
	onOpen func(id string)
}

func newPicker(reg *Registry, size Vec2, onOpen func(id string)) *Picker {
	p := &Picker{
		entries: reg.Entries(),
		size:    size,
		root:    NewContainer("picker"),
		onOpen:  onOpen,
	}
	p.root.AddChild(NewRect("picker/bg", size.X, size.Y, pickerBackground))

	heading := NewText("picker/heading", "Presentations", BoldFont(40))
	heading.SetPosition(pickerLeft, pickerTop-100)
	p.root.AddChild(heading)

	if len(p.entries) == 0 {
		empty := NewText("picker/empty", "No presentations registered.", DefaultFont(24))
		empty.TextBlock.SetColor(pickerDim)
		empty.SetPosition(pickerLeft, pickerTop)
		p.root.AddChild(empty)
		return p
	}

	p.highlight = NewRect("picker/highlight", size.X-2*pickerLeft+32, pickerRowHeight-8, pickerHighlight)
	p.root.AddChild(p.highlight)

	title := BoldFont(24)
	desc := DefaultFont(16)
	for i, e := range p.entries {
		row := NewContainer("picker/row/" + e.ID)
		row.SetPosition(pickerLeft, pickerTop+float64(i)*pickerRowHeight)
		row.AddChild(NewText(row.Name+"/title", fmt.Sprintf("%d. %s", i+1, e.Title), title))
		if e.Description != "" {
			d := NewText(row.Name+"/desc", e.Description, desc)
			d.TextBlock.SetColor(pickerDim)
			d.SetPosition(0, title.LineHeight())
			row.AddChild(d)
		}
		p.root.AddChild(row)
		p.rows = append(p.rows, row)
	}
	p.place()
	return p
}

// Node returns the picker root.
func (p *Picker) Node() *Node { return p.root }

// Entries returns the listed entries.
func (p *Picker) Entries() []Entry { return p.entries }

// Selected returns the highlighted row, or -1 when the list is empty.
func (p *Picker) Selected() int {
	if len(p.entries) == 0 {
		return -1
	}
	return p.sel
}

// Select highlights row i. Out-of-range values are ignored.
func (p *Picker) Select(i int) {
	if i < 0 || i >= len(p.entries) {
		return
	}
	p.sel = i
	p.place()
}

// Move shifts the selection by delta rows, wrapping at both ends.
func (p *Picker) Move(delta int) {
	n := len(p.entries)
	if n == 0 {
		return
	}
	p.sel = ((p.sel+delta)%n + n) % n
	p.place()
}

// Open opens the selected entry.
func (p *Picker) Open() {
	if len(p.entries) == 0 || p.onOpen == nil {
		return
	}
	p.onOpen(p.entries[p.sel].ID)
}

func (p *Picker) place() {
	if p.highlight == nil {
		return
	}
	p.highlight.SetPosition(pickerLeft-16, pickerTop+float64(p.sel)*pickerRowHeight-4)
}

func (p *Picker) handleKey(ev KeyEvent) bool {
	if ev.Modifiers&(ModCtrl|ModMeta) != 0 {
		return false
	}
	switch ev.Key {
	case ebiten.KeyArrowUp, ebiten.KeyK:
		p.Move(-1)
	case ebiten.KeyArrowDown, ebiten.KeyJ:
		p.Move(1)
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace:
		p.Open()
	default:
		if d := int(ev.Key - ebiten.KeyDigit1); ev.Key >= ebiten.KeyDigit1 && ev.Key <= ebiten.KeyDigit9 && d < len(p.entries) {
			p.Select(d)
			p.Open()
			return true
		}
		return false
	}
	return true
}

func (p *Picker) attach(k *Keyboard) {
	if k == nil {
		return
	}
	p.keys.Remove()
	p.keys = k.OnKey(p.handleKey)
}

func (p *Picker) detach() {
	p.keys.Remove()
	p.keys = KeyHandle{}
}
