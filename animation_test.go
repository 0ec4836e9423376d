package podium

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestPoseApplyAndRead(t *testing.T) {
	n := NewContainer("n")
	origin := Vec2{X: 100, Y: 50}
	p := Pose{Alpha: 0.5, X: 10, Y: -20, Scale: 0.8, Rotation: 0.1}
	p.Apply(n, origin)

	if n.X != 110 || n.Y != 30 {
		t.Errorf("position = (%v, %v), want (110, 30)", n.X, n.Y)
	}
	if n.ScaleX != 0.8 || n.ScaleY != 0.8 {
		t.Errorf("scale = (%v, %v), want 0.8", n.ScaleX, n.ScaleY)
	}
	if got := poseOf(n, origin); got != p {
		t.Errorf("poseOf = %+v, want %+v", got, p)
	}
}

func TestTweenPoseAppliesFromImmediately(t *testing.T) {
	n := NewContainer("n")
	TweenPose(n, Vec2{}, Pose{Alpha: 0, Y: 30, Scale: 1}, RestPose, 1, 0.5, ease.Linear)
	if n.Alpha != 0 || n.Y != 30 {
		t.Errorf("from pose not applied: alpha=%v y=%v", n.Alpha, n.Y)
	}
}

func TestTweenPoseReachesTarget(t *testing.T) {
	n := NewContainer("n")
	origin := Vec2{X: 40, Y: 40}
	tw := TweenPose(n, origin, Pose{Alpha: 0, X: -30, Scale: 0.5}, RestPose, 1.0, 0, ease.Linear)

	// Exact halves avoid float32 accumulation drift.
	tw.Update(0.5)
	if math.Abs(n.Alpha-0.5) > 0.01 {
		t.Errorf("midway alpha = %v, want ~0.5", n.Alpha)
	}
	if math.Abs(n.X-(40-15)) > 0.01 {
		t.Errorf("midway X = %v, want ~25", n.X)
	}
	tw.Update(0.5)

	if !tw.Done {
		t.Fatal("expected Done after full duration")
	}
	if n.Alpha != 1 || n.X != 40 || n.ScaleX != 1 {
		t.Errorf("end pose not exact: alpha=%v x=%v scale=%v", n.Alpha, n.X, n.ScaleX)
	}
}

func TestTweenPoseDelay(t *testing.T) {
	n := NewContainer("n")
	tw := TweenPose(n, Vec2{}, Pose{Alpha: 0, Scale: 1}, RestPose, 1.0, 0.5, ease.Linear)

	tw.Update(0.25)
	if tw.Started {
		t.Fatal("should not start during the delay")
	}
	if n.Alpha != 0 {
		t.Errorf("alpha moved during delay: %v", n.Alpha)
	}

	// 0.25 finishes the delay exactly; 0.5 more is half the animation.
	tw.Update(0.25)
	if !tw.Started {
		t.Fatal("should start once the delay elapses")
	}
	tw.Update(0.5)
	if math.Abs(n.Alpha-0.5) > 0.01 {
		t.Errorf("alpha = %v, want ~0.5", n.Alpha)
	}
}

func TestTweenPoseDelayOvershootCarries(t *testing.T) {
	n := NewContainer("n")
	tw := TweenPose(n, Vec2{}, Pose{Alpha: 0, Scale: 1}, RestPose, 1.0, 0.25, ease.Linear)
	tw.Update(0.75) // 0.25 delay + 0.5 animation
	if math.Abs(n.Alpha-0.5) > 0.01 {
		t.Errorf("alpha = %v, want ~0.5", n.Alpha)
	}
}

func TestTweenPoseZeroDuration(t *testing.T) {
	n := NewContainer("n")
	completed := false
	tw := TweenPose(n, Vec2{}, Pose{Alpha: 0, Scale: 1}, RestPose, 0, 0, nil)
	tw.OnComplete = func() { completed = true }
	tw.Update(1.0 / 60)
	if !tw.Done || !completed {
		t.Fatal("zero-duration tween should finish on first update")
	}
	if n.Alpha != 1 {
		t.Errorf("alpha = %v, want 1", n.Alpha)
	}
}

func TestTweenPoseOnCompleteOnce(t *testing.T) {
	n := NewContainer("n")
	calls := 0
	tw := TweenPose(n, Vec2{}, Pose{Alpha: 0, Scale: 1}, RestPose, 0.5, 0, ease.OutQuad)
	tw.OnComplete = func() { calls++ }
	for range 10 {
		tw.Update(0.25)
	}
	if calls != 1 {
		t.Errorf("OnComplete called %d times, want 1", calls)
	}
}

func TestTweenPoseCancel(t *testing.T) {
	n := NewContainer("n")
	called := false
	tw := TweenPose(n, Vec2{}, Pose{Alpha: 0, Scale: 1}, RestPose, 1.0, 0, ease.Linear)
	tw.OnComplete = func() { called = true }
	tw.Update(0.5)
	alpha := n.Alpha

	tw.Cancel()
	tw.Update(1.0)

	if !tw.Done {
		t.Error("canceled tween should be Done")
	}
	if called {
		t.Error("OnComplete should not run on Cancel")
	}
	if n.Alpha != alpha {
		t.Errorf("alpha changed after cancel: %v -> %v", alpha, n.Alpha)
	}
}

func TestTweenPoseStopsOnDisposedNode(t *testing.T) {
	n := NewContainer("n")
	tw := TweenPose(n, Vec2{}, Pose{Alpha: 0, Scale: 1}, RestPose, 1.0, 0, ease.Linear)
	n.Dispose()
	tw.Update(0.1)
	if !tw.Done {
		t.Error("tween on a disposed node should stop")
	}
}
