package podium

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
)

// TransitionKind is the closed set of slide-change animations.
type TransitionKind uint8

const (
	TransitionFade  TransitionKind = iota // cross-fade
	TransitionSlide                       // horizontal push, direction follows navigation
	TransitionZoom                        // incoming grows in, outgoing grows out
	TransitionNone                        // instant cut
)

// String returns the lower-case name used in configs and manifests.
func (k TransitionKind) String() string {
	switch k {
	case TransitionFade:
		return "fade"
	case TransitionSlide:
		return "slide"
	case TransitionZoom:
		return "zoom"
	case TransitionNone:
		return "none"
	default:
		return fmt.Sprintf("TransitionKind(%d)", uint8(k))
	}
}

// ParseTransition maps a name to its kind. The empty string means fade.
func ParseTransition(name string) (TransitionKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fade":
		return TransitionFade, nil
	case "slide":
		return TransitionSlide, nil
	case "zoom":
		return TransitionZoom, nil
	case "none":
		return TransitionNone, nil
	}
	return TransitionFade, fmt.Errorf("podium: unknown transition %q", name)
}

// TransitionStyle pairs an enter pose (where the incoming slide starts) with
// an exit pose (where the outgoing slide ends) and a fixed duration. Styles
// are values; a deck copies its style once at construction.
type TransitionStyle struct {
	Kind     TransitionKind
	Enter    Pose
	Exit     Pose
	Duration float64
	Ease     ease.TweenFunc
}

const defaultTransitionDuration = 0.5

// Transition returns the built-in style for kind. For TransitionSlide the X
// offsets are in units of stage width and are scaled when a change starts.
func Transition(kind TransitionKind) TransitionStyle {
	switch kind {
	case TransitionSlide:
		return TransitionStyle{
			Kind:     kind,
			Enter:    Pose{Alpha: 1, X: 1, Scale: 1},
			Exit:     Pose{Alpha: 1, X: -1, Scale: 1},
			Duration: defaultTransitionDuration,
			Ease:     ease.InOutCubic,
		}
	case TransitionZoom:
		return TransitionStyle{
			Kind:     kind,
			Enter:    Pose{Alpha: 0, Scale: 0.8},
			Exit:     Pose{Alpha: 0, Scale: 1.2},
			Duration: defaultTransitionDuration,
			Ease:     ease.OutCubic,
		}
	case TransitionNone:
		return TransitionStyle{Kind: kind, Enter: RestPose, Exit: RestPose}
	default:
		return TransitionStyle{
			Kind:     TransitionFade,
			Enter:    Pose{Alpha: 0, Scale: 1},
			Exit:     Pose{Alpha: 0, Scale: 1},
			Duration: defaultTransitionDuration,
			Ease:     ease.InOutQuad,
		}
	}
}

// Instant reports whether changes under this style happen without animation.
func (s TransitionStyle) Instant() bool {
	return s.Kind == TransitionNone || s.Duration <= 0
}

// poses resolves the enter and exit poses for a change in direction dir
// (+1 forward, -1 backward) on a stage of width w.
func (s TransitionStyle) poses(dir int, w float64) (enter, exit Pose) {
	enter, exit = s.Enter, s.Exit
	if s.Kind == TransitionSlide {
		d := float64(dir)
		enter.X *= w * d
		exit.X *= w * d
	}
	return enter, exit
}
