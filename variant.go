package podium

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// Variant is a reusable hidden/visible pose pair with timing. Entrance
// animates Hidden -> Visible over Duration after Delay; exit animates back to
// Hidden over ExitDuration with no delay.
type Variant struct {
	Name         string
	Hidden       Pose
	Visible      Pose
	Duration     float64
	ExitDuration float64
	Delay        float64
	Ease         ease.TweenFunc
	ExitEase     ease.TweenFunc
}

// WithDelay returns a copy of v with its entrance delay replaced.
func (v Variant) WithDelay(seconds float64) Variant {
	v.Delay = seconds
	return v
}

// WithDuration returns a copy of v with its entrance duration replaced.
func (v Variant) WithDuration(seconds float64) Variant {
	v.Duration = seconds
	return v
}

func (v Variant) exitDuration() float64 {
	if v.ExitDuration > 0 {
		return v.ExitDuration
	}
	return v.Duration / 2
}

func (v Variant) exitEase() ease.TweenFunc {
	if v.ExitEase != nil {
		return v.ExitEase
	}
	return ease.InQuad
}

const (
	defaultVariantDuration = 0.5
	defaultTravel          = 30.0 // pixels moved by the directional fades
)

// Built-in variants.
var (
	FadeIn = Variant{
		Name:     "fadeIn",
		Hidden:   Pose{Alpha: 0, Scale: 1},
		Visible:  RestPose,
		Duration: defaultVariantDuration,
		Ease:     ease.OutQuad,
	}
	FadeInUp = Variant{
		Name:     "fadeInUp",
		Hidden:   Pose{Alpha: 0, Y: defaultTravel, Scale: 1},
		Visible:  RestPose,
		Duration: defaultVariantDuration,
		Ease:     ease.OutCubic,
	}
	FadeInDown = Variant{
		Name:     "fadeInDown",
		Hidden:   Pose{Alpha: 0, Y: -defaultTravel, Scale: 1},
		Visible:  RestPose,
		Duration: defaultVariantDuration,
		Ease:     ease.OutCubic,
	}
	FadeInLeft = Variant{
		Name:     "fadeInLeft",
		Hidden:   Pose{Alpha: 0, X: -defaultTravel, Scale: 1},
		Visible:  RestPose,
		Duration: defaultVariantDuration,
		Ease:     ease.OutCubic,
	}
	FadeInRight = Variant{
		Name:     "fadeInRight",
		Hidden:   Pose{Alpha: 0, X: defaultTravel, Scale: 1},
		Visible:  RestPose,
		Duration: defaultVariantDuration,
		Ease:     ease.OutCubic,
	}
	ScaleIn = Variant{
		Name:     "scaleIn",
		Hidden:   Pose{Alpha: 0, Scale: 0.8},
		Visible:  RestPose,
		Duration: defaultVariantDuration,
		Ease:     ease.OutCubic,
	}
	PopIn = Variant{
		Name:     "popIn",
		Hidden:   Pose{Alpha: 0, Scale: 0.5},
		Visible:  RestPose,
		Duration: 0.4,
		Ease:     ease.OutBack,
	}
	SlideInLeft = Variant{
		Name:     "slideInLeft",
		Hidden:   Pose{Alpha: 1, X: -200, Scale: 1},
		Visible:  RestPose,
		Duration: 0.6,
		Ease:     ease.OutExpo,
	}
	SlideInRight = Variant{
		Name:     "slideInRight",
		Hidden:   Pose{Alpha: 1, X: 200, Scale: 1},
		Visible:  RestPose,
		Duration: 0.6,
		Ease:     ease.OutExpo,
	}
	RotateIn = Variant{
		Name:     "rotateIn",
		Hidden:   Pose{Alpha: 0, Scale: 0.9, Rotation: -0.2},
		Visible:  RestPose,
		Duration: defaultVariantDuration,
		Ease:     ease.OutCubic,
	}
)

var variants = map[string]Variant{}

func init() {
	for _, v := range []Variant{
		FadeIn, FadeInUp, FadeInDown, FadeInLeft, FadeInRight,
		ScaleIn, PopIn, SlideInLeft, SlideInRight, RotateIn,
	} {
		variants[v.Name] = v
	}
}

// LookupVariant returns the built-in variant with the given name.
func LookupVariant(name string) (Variant, bool) {
	v, ok := variants[name]
	return v, ok
}

// VariantNames returns the names of all built-in variants, sorted.
func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
