package podium

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewContainer("test")
	got := computeLocalTransform(n)
	assertMatrix(t, "identity", got, [6]float64{1, 0, 0, 1, 0, 0})
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewContainer("test")
	n.X = 10
	n.Y = 20
	got := computeLocalTransform(n)
	assertMatrix(t, "translation", got, [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	n := NewContainer("test")
	n.ScaleX = 2
	n.ScaleY = 3
	got := computeLocalTransform(n)
	assertMatrix(t, "scale", got, [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformRotation90(t *testing.T) {
	n := NewContainer("test")
	n.Rotation = math.Pi / 2
	got := computeLocalTransform(n)
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", got, [6]float64{0, 1, -1, 0, 0, 0})
}

func TestLocalTransformPivot(t *testing.T) {
	n := NewContainer("test")
	n.X = 100
	n.Y = 200
	n.PivotX = 16
	n.PivotY = 16
	got := computeLocalTransform(n)
	// T(100,200) * T(-16,-16) = [1,0,0,1, 84, 184]
	assertMatrix(t, "pivot", got, [6]float64{1, 0, 0, 1, 84, 184})
}

func TestLocalTransformScaleAroundPivot(t *testing.T) {
	// A slide scaled around the stage center keeps the center fixed.
	n := NewContainer("slide")
	n.SetPivot(640, 360)
	n.SetPosition(640, 360)
	n.SetScale(0.8, 0.8)
	m := computeLocalTransform(n)
	x, y := transformPoint(m, 640, 360)
	assertNear(t, "center.x", x, 640)
	assertNear(t, "center.y", y, 360)
	x, _ = transformPoint(m, 0, 0)
	assertNear(t, "corner.x", x, 640-640*0.8)
}

func TestLocalTransformCombined(t *testing.T) {
	n := NewContainer("test")
	n.X = 50
	n.Y = 100
	n.ScaleX = 2
	n.ScaleY = 2
	n.Rotation = math.Pi / 2

	got := computeLocalTransform(n)
	assertMatrix(t, "combined", got, [6]float64{0, 2, -2, 0, 50, 100})
}

// --- multiplyAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 1, 3, 4, 5, 6}
	assertMatrix(t, "I*M", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "M*I", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 7}
	assertMatrix(t, "T*T", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 27})
}

// --- updateWorldTransform ---

func TestWorldTransformParentChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10

	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "parent.tx", parent.worldTransform[4], 100)
	assertNear(t, "child.tx", child.worldTransform[4], 110)
}

func TestAlphaPropagation(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.Alpha = 0.5
	child.Alpha = 0.5

	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "parent.worldAlpha", parent.WorldAlpha(), 0.5)
	assertNear(t, "child.worldAlpha", child.WorldAlpha(), 0.25)
}

func TestDirtyFlagSkipsClean(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, 1.0, false)

	child.transformDirty = false
	parent.transformDirty = false
	child.X = 999 // assigned without a setter, so still clean

	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx (stale)", child.worldTransform[4], 110)
}

func TestDirtyFlagRecomputes(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, 1.0, false)

	child.SetPosition(20, 0)
	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx (updated)", child.worldTransform[4], 120)
}

func TestParentRecomputedPropagates(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, 1.0, false)

	parent.SetPosition(200, 0)
	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx (from parent)", child.worldTransform[4], 210)
}

func TestMarkDirtyAfterDirectAssignment(t *testing.T) {
	n := NewContainer("n")
	n.UpdateTransforms()
	n.X = 42
	n.MarkDirty()
	updateWorldTransform(n, identityTransform, 1, false)
	assertNear(t, "tx", n.worldTransform[4], 42)
}

func TestLocalToWorld(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	parent.SetPosition(100, 50)
	child.SetPosition(10, 20)
	child.SetScale(2, 2)

	parent.UpdateTransforms()

	wx, wy := child.LocalToWorld(5, 5)
	assertNear(t, "x", wx, 120)
	assertNear(t, "y", wy, 80)
}

func TestDeepHierarchy(t *testing.T) {
	nodes := make([]*Node, 10)
	for i := range nodes {
		nodes[i] = NewContainer("")
		nodes[i].X = 10
		if i > 0 {
			nodes[i-1].AddChild(nodes[i])
		}
	}

	updateWorldTransform(nodes[0], identityTransform, 1.0, false)

	assertNear(t, "deep.tx", nodes[9].worldTransform[4], 100)
}

// --- Setters ---

func TestSettersDirty(t *testing.T) {
	tests := []struct {
		name string
		set  func(n *Node)
	}{
		{"SetPosition", func(n *Node) { n.SetPosition(1, 2) }},
		{"SetScale", func(n *Node) { n.SetScale(2, 2) }},
		{"SetPivot", func(n *Node) { n.SetPivot(3, 4) }},
		{"SetAlpha", func(n *Node) { n.SetAlpha(0.5) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewContainer("n")
			n.transformDirty = false
			tt.set(n)
			if !n.transformDirty {
				t.Error("expected transformDirty after setter")
			}
		})
	}
}

func TestHiddenSubtreeRecomputesWhenShown(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	leaf := NewContainer("leaf")
	parent.AddChild(child)
	child.AddChild(leaf)
	leaf.SetPosition(5, 0)
	// Containers draw nothing, so no target image is needed.
	drawNode(nil, parent, identityTransform, 1, false)
	assertNear(t, "leaf.tx", leaf.worldTransform[4], 5)

	child.Visible = false
	parent.SetPosition(100, 0)
	drawNode(nil, parent, identityTransform, 1, false)
	if parent.transformDirty {
		t.Fatal("parent should be clean after the draw")
	}

	child.Visible = true
	drawNode(nil, parent, identityTransform, 1, false)
	assertNear(t, "leaf.tx after show", leaf.worldTransform[4], 105)
}
