package podium

import (
	"sort"
	"testing"
)

func TestVariantNamesSortedAndResolvable(t *testing.T) {
	names := VariantNames()
	if len(names) != 10 {
		t.Fatalf("len(VariantNames) = %d, want 10", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	for _, name := range names {
		v, ok := LookupVariant(name)
		if !ok {
			t.Fatalf("LookupVariant(%q) failed", name)
		}
		if v.Name != name {
			t.Errorf("variant %q reports name %q", name, v.Name)
		}
		if v.Visible != RestPose {
			t.Errorf("%s: visible pose should be the rest pose", name)
		}
		if v.Hidden == v.Visible {
			t.Errorf("%s: hidden and visible poses are equal", name)
		}
		if v.Duration <= 0 || v.Ease == nil {
			t.Errorf("%s: missing timing", name)
		}
	}
}

func TestLookupVariantUnknown(t *testing.T) {
	if _, ok := LookupVariant("bounceIn"); ok {
		t.Error("unknown variant should not resolve")
	}
}

func TestVariantCopies(t *testing.T) {
	v := FadeIn.WithDelay(0.4).WithDuration(2)
	if v.Delay != 0.4 || v.Duration != 2 {
		t.Errorf("got delay=%v duration=%v", v.Delay, v.Duration)
	}
	if FadeIn.Delay != 0 || FadeIn.Duration != defaultVariantDuration {
		t.Error("built-in variant was mutated")
	}
}

func TestVariantExitDefaults(t *testing.T) {
	v := Variant{Duration: 0.8}
	if v.exitDuration() != 0.4 {
		t.Errorf("exitDuration = %v, want half the entrance", v.exitDuration())
	}
	if v.exitEase() == nil {
		t.Error("exitEase should default")
	}
	v.ExitDuration = 0.1
	if v.exitDuration() != 0.1 {
		t.Errorf("explicit exitDuration = %v", v.exitDuration())
	}
}
