package podium

// DefaultStaggerDelay is the usual gap between consecutive item entrances.
const DefaultStaggerDelay = 0.1

// StaggerConfig controls entrance timing for a Stagger.
type StaggerConfig struct {
	// Delay is added per list position: item k starts at InitialDelay + k*Delay.
	Delay float64
	// InitialDelay offsets the whole sequence.
	InitialDelay float64
}

// Stagger wraps each child of a list in its own Content so the items enter
// one after another when the list becomes active. Exit is not staggered: all
// items collapse to hidden together.
//
// Only elements are wrapped. A nil entry or an empty container passes
// through untouched (empty containers are still attached, unanimated) and
// keeps its list position, so later items are offset as if it were animated.
type Stagger struct {
	container *Node
	items     []*Content // nil at pass-through positions
	active    bool
}

// NewStagger builds a stagger container for children using variant v.
// The variant's own Delay is replaced by the per-item stagger delay.
func NewStagger(name string, children []*Node, v Variant, cfg StaggerConfig) *Stagger {
	s := &Stagger{
		container: NewContainer(name),
		items:     make([]*Content, len(children)),
	}
	for k, child := range children {
		if !isElement(child) {
			if child != nil {
				s.container.AddChild(child)
			}
			continue
		}
		c := NewContent(child, v.WithDelay(cfg.InitialDelay+float64(k)*cfg.Delay))
		s.items[k] = c
		s.container.AddChild(c.Node())
	}
	return s
}

// isElement reports whether n is something worth animating.
func isElement(n *Node) bool {
	if n == nil {
		return false
	}
	return !(n.Type == NodeTypeContainer && len(n.children) == 0)
}

// Node returns the container holding every item.
func (s *Stagger) Node() *Node { return s.container }

// Items returns the per-position wrappers; pass-through positions are nil.
// The returned slice MUST NOT be mutated.
func (s *Stagger) Items() []*Content { return s.items }

// Active reports the last value passed to SetActive.
func (s *Stagger) Active() bool { return s.active }

// SetActive starts the staggered entrance or collapses every item.
func (s *Stagger) SetActive(active bool) {
	if active == s.active {
		return
	}
	s.active = active
	for _, c := range s.items {
		if c != nil {
			c.SetActive(active)
		}
	}
}

// Reset snaps every item to hidden without animating.
func (s *Stagger) Reset() {
	s.active = false
	for _, c := range s.items {
		if c != nil {
			c.Reset()
		}
	}
}

// Update advances every item's animation.
func (s *Stagger) Update(dt float64) {
	for _, c := range s.items {
		if c != nil {
			c.Update(dt)
		}
	}
}
