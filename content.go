package podium

// ContentState describes where a Content wrapper is in its animation cycle.
type ContentState uint8

const (
	ContentHidden   ContentState = iota // at the hidden pose, inactive
	ContentEntering                     // active, entrance delayed or running
	ContentVisible                      // active, entrance finished
	ContentExiting                      // inactive, animating back to hidden
)

// String returns a short name for the state.
func (s ContentState) String() string {
	switch s {
	case ContentHidden:
		return "hidden"
	case ContentEntering:
		return "entering"
	case ContentVisible:
		return "visible"
	case ContentExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Animator is anything that reacts to a slide's active flag and advances with
// the frame clock. Content and Stagger implement it.
type Animator interface {
	SetActive(active bool)
	Update(dt float64)
}

// Content wraps a node and animates it between a variant's hidden and visible
// poses as its active flag changes. The child keeps its own transform; the
// animation is applied to a wrapper container returned by Node.
//
// Each rising edge of the active flag replays the entrance from the hidden
// pose. The falling edge animates back to hidden without delay and clears the
// played flag so the next activation starts over.
type Content struct {
	wrapper *Node
	child   *Node
	variant Variant
	origin  Vec2

	active bool
	played bool
	state  ContentState
	tween  *PoseTween
}

// ContentOption customizes a Content at construction.
type ContentOption func(*Content)

// WithDelay sets the entrance delay in seconds, replacing the variant's.
func WithDelay(seconds float64) ContentOption {
	return func(c *Content) {
		if seconds < 0 {
			seconds = 0
		}
		c.variant.Delay = seconds
	}
}

// NewContent wraps child with the given variant. The wrapper starts at the
// hidden pose.
func NewContent(child *Node, v Variant, opts ...ContentOption) *Content {
	name := "content"
	if child != nil {
		name = child.Name + "/content"
	}
	c := &Content{
		wrapper: NewContainer(name),
		child:   child,
		variant: v,
	}
	for _, opt := range opts {
		opt(c)
	}
	if child != nil {
		c.wrapper.AddChild(child)
	}
	c.layout()
	v.Hidden.Apply(c.wrapper, c.origin)
	return c
}

// NewNamedContent wraps child with a built-in variant looked up by name.
// Unknown names fall back to FadeIn.
func NewNamedContent(child *Node, variant string, opts ...ContentOption) *Content {
	v, ok := LookupVariant(variant)
	if !ok {
		v = FadeIn
	}
	return NewContent(child, v, opts...)
}

// layout places the wrapper's pivot at the child's center so scale and
// rotation poses animate around it.
func (c *Content) layout() {
	var center Vec2
	if c.child != nil {
		b := c.child.Bounds()
		center = Vec2{
			X: c.child.X + (b.X+b.Width/2-c.child.PivotX)*c.child.ScaleX,
			Y: c.child.Y + (b.Y+b.Height/2-c.child.PivotY)*c.child.ScaleY,
		}
	}
	c.origin = center
	c.wrapper.SetPivot(center.X, center.Y)
}

// Node returns the animated wrapper. Add it to the slide instead of the child.
func (c *Content) Node() *Node { return c.wrapper }

// Child returns the wrapped node.
func (c *Content) Child() *Node { return c.child }

// Variant returns the variant in use.
func (c *Content) Variant() Variant { return c.variant }

// State returns the current animation state.
func (c *Content) State() ContentState { return c.state }

// Active reports the last value passed to SetActive.
func (c *Content) Active() bool { return c.active }

// Played reports whether the entrance has been triggered since the last
// activation.
func (c *Content) Played() bool { return c.played }

// Started reports whether the entrance animation is moving (its delay has
// elapsed) or has finished.
func (c *Content) Started() bool {
	switch c.state {
	case ContentVisible:
		return true
	case ContentEntering:
		return c.tween != nil && c.tween.Started
	}
	return false
}

// SetActive switches between the visible and hidden states. Repeated calls
// with the same value are ignored.
func (c *Content) SetActive(active bool) {
	if active == c.active {
		return
	}
	c.active = active
	if active {
		c.enter()
		return
	}
	c.exit()
}

func (c *Content) enter() {
	if c.played {
		return
	}
	c.played = true
	c.cancel()
	c.layout()
	v := c.variant
	c.state = ContentEntering
	c.tween = TweenPose(c.wrapper, c.origin, v.Hidden, v.Visible, v.Duration, v.Delay, v.Ease)
	c.tween.OnComplete = func() { c.state = ContentVisible }
}

func (c *Content) exit() {
	c.played = false
	from := poseOf(c.wrapper, c.origin)
	c.cancel()
	v := c.variant
	c.state = ContentExiting
	c.tween = TweenPose(c.wrapper, c.origin, from, v.Hidden, v.exitDuration(), 0, v.exitEase())
	c.tween.OnComplete = func() { c.state = ContentHidden }
}

func (c *Content) cancel() {
	if c.tween != nil {
		c.tween.Cancel()
		c.tween = nil
	}
}

// Reset snaps to the hidden pose and clears the played flag without
// animating. Used when a slide is unmounted.
func (c *Content) Reset() {
	c.cancel()
	c.active = false
	c.played = false
	c.state = ContentHidden
	c.variant.Hidden.Apply(c.wrapper, c.origin)
}

// Update advances the running animation by dt seconds.
func (c *Content) Update(dt float64) {
	if c.tween == nil {
		return
	}
	c.tween.Update(dt)
	if c.tween.Done {
		c.tween = nil
	}
}
