package podium

// Slide is one page of a deck. Its only semantic input is the active flag;
// Node and Update connect it to drawing and the frame clock. A slide owns its
// own entrance/exit animation state and must replay its entrance each time
// it becomes active again.
type Slide interface {
	SetActive(active bool)
	Node() *Node
	Update(dt float64)
}

// animatedNode is an Animator that also owns a node (Content, Stagger).
type animatedNode interface {
	Animator
	Node() *Node
}

// resetter is implemented by animators that can snap back to hidden.
type resetter interface {
	Reset()
}

// BaseSlide is a ready-made Slide: a root container with a background and a
// list of animators that follow the slide's active flag. Slide components
// embed or wrap it.
type BaseSlide struct {
	root       *Node
	background *Node
	animators  []Animator

	active bool
	played bool

	// OnActiveChange runs after the animators have been told about a change.
	OnActiveChange func(active bool)
}

// NewBaseSlide creates a slide of the given size with a solid background.
// A zero-alpha background color skips the background node.
func NewBaseSlide(name string, size Vec2, background Color) *BaseSlide {
	s := &BaseSlide{root: NewContainer(name)}
	s.root.Width, s.root.Height = size.X, size.Y
	if background.A > 0 {
		s.background = NewRect(name+"/bg", size.X, size.Y, background)
		s.root.AddChild(s.background)
	}
	return s
}

// Node returns the slide root.
func (s *BaseSlide) Node() *Node { return s.root }

// Size returns the slide dimensions.
func (s *BaseSlide) Size() Vec2 { return Vec2{X: s.root.Width, Y: s.root.Height} }

// Active reports the last value passed to SetActive.
func (s *BaseSlide) Active() bool { return s.active }

// Played reports whether the slide has run its entrance since it last became
// active. Cleared on the falling edge.
func (s *BaseSlide) Played() bool { return s.played }

// Add attaches a static node that does not animate.
func (s *BaseSlide) Add(n *Node) {
	s.root.AddChild(n)
}

// Animate attaches an animated node and ties it to the slide's active flag.
func (s *BaseSlide) Animate(a animatedNode) {
	s.root.AddChild(a.Node())
	s.animators = append(s.animators, a)
	if s.active {
		a.SetActive(true)
	}
}

// AddContent wraps child in a Content with variant v and attaches it.
func (s *BaseSlide) AddContent(child *Node, v Variant) *Content {
	c := NewContent(child, v)
	s.Animate(c)
	return c
}

// AddStagger builds a Stagger over children and attaches it.
func (s *BaseSlide) AddStagger(name string, children []*Node, v Variant, cfg StaggerConfig) *Stagger {
	st := NewStagger(name, children, v, cfg)
	s.Animate(st)
	return st
}

// SetActive forwards the flag to every animator. The played flag is set on
// the rising edge and cleared on the falling edge.
func (s *BaseSlide) SetActive(active bool) {
	if active == s.active {
		return
	}
	s.active = active
	s.played = active
	for _, a := range s.animators {
		a.SetActive(active)
	}
	if s.OnActiveChange != nil {
		s.OnActiveChange(active)
	}
}

// Reset snaps every animator to hidden and marks the slide inactive.
func (s *BaseSlide) Reset() {
	s.active = false
	s.played = false
	for _, a := range s.animators {
		if r, ok := a.(resetter); ok {
			r.Reset()
		} else {
			a.SetActive(false)
		}
	}
}

// Update advances every animator.
func (s *BaseSlide) Update(dt float64) {
	for _, a := range s.animators {
		a.Update(dt)
	}
}
