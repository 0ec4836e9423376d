package podium

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pose is the animatable part of a node's state. X and Y are offsets from the
// node's rest position; Scale multiplies around the node's pivot.
type Pose struct {
	Alpha    float64
	X, Y     float64
	Scale    float64
	Rotation float64
}

// RestPose is the fully visible, untransformed pose.
var RestPose = Pose{Alpha: 1, Scale: 1}

// Apply writes the pose to node, treating origin as the rest position.
func (p Pose) Apply(node *Node, origin Vec2) {
	node.Alpha = p.Alpha
	node.X = origin.X + p.X
	node.Y = origin.Y + p.Y
	node.ScaleX = p.Scale
	node.ScaleY = p.Scale
	node.Rotation = p.Rotation
	node.MarkDirty()
}

// poseOf reads the current pose back from node.
func poseOf(node *Node, origin Vec2) Pose {
	return Pose{
		Alpha:    node.Alpha,
		X:        node.X - origin.X,
		Y:        node.Y - origin.Y,
		Scale:    node.ScaleX,
		Rotation: node.Rotation,
	}
}

// PoseTween animates a node between two poses after an optional delay.
// Call Update(dt) each frame. If the target node is disposed the tween stops
// immediately.
//
// There is no global animation manager; owners call Update themselves.
type PoseTween struct {
	target  *Node
	origin  Vec2
	delay   float64
	tweens  [5]*gween.Tween
	to      Pose
	instant bool

	// Started reports whether the delay has elapsed and values are being written.
	Started bool
	// Done reports completion or cancellation.
	Done bool
	// OnComplete runs once when the tween reaches its end. Not called on Cancel.
	OnComplete func()
}

// TweenPose creates a tween from -> to over duration seconds, starting after
// delay seconds. The from pose is applied immediately so the node never
// flashes its old state during the delay. A zero duration completes on the
// first Update after the delay.
func TweenPose(node *Node, origin Vec2, from, to Pose, duration, delay float64, fn ease.TweenFunc) *PoseTween {
	if fn == nil {
		fn = ease.Linear
	}
	d := float32(duration)
	t := &PoseTween{target: node, origin: origin, delay: delay, to: to}
	t.tweens[0] = gween.New(float32(from.Alpha), float32(to.Alpha), d, fn)
	t.tweens[1] = gween.New(float32(from.X), float32(to.X), d, fn)
	t.tweens[2] = gween.New(float32(from.Y), float32(to.Y), d, fn)
	t.tweens[3] = gween.New(float32(from.Scale), float32(to.Scale), d, fn)
	t.tweens[4] = gween.New(float32(from.Rotation), float32(to.Rotation), d, fn)
	t.instant = duration <= 0
	from.Apply(node, origin)
	return t
}

// Update advances the tween by dt seconds.
func (t *PoseTween) Update(dt float64) {
	if t.Done {
		return
	}
	if t.target.IsDisposed() {
		t.Done = true
		return
	}
	if t.delay > 0 {
		t.delay -= dt
		if t.delay > 0 {
			return
		}
		// Carry the overshoot into the animation.
		dt = -t.delay
		t.delay = 0
	}
	t.Started = true
	if t.instant {
		t.finish()
		return
	}

	var vals [5]float32
	allDone := true
	for i, tw := range t.tweens {
		v, finished := tw.Update(float32(dt))
		vals[i] = v
		if !finished {
			allDone = false
		}
	}
	if allDone {
		t.finish()
		return
	}
	Pose{
		Alpha:    float64(vals[0]),
		X:        float64(vals[1]),
		Y:        float64(vals[2]),
		Scale:    float64(vals[3]),
		Rotation: float64(vals[4]),
	}.Apply(t.target, t.origin)
}

// finish snaps to the exact end pose; float32 tween output drifts slightly.
func (t *PoseTween) finish() {
	t.Started = true
	t.Done = true
	t.to.Apply(t.target, t.origin)
	if t.OnComplete != nil {
		t.OnComplete()
	}
}

// Cancel stops the tween where it is. OnComplete does not run.
func (t *PoseTween) Cancel() {
	t.Done = true
}
