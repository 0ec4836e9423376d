package podium

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image scaled up to draw NodeTypeRect nodes.
// Created on first draw so that constructing nodes never touches the GPU.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// geoM converts an affine matrix into an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// Draw renders root and its subtree onto dst in tree order (children after
// their parent, siblings in insertion order). Invisible subtrees and fully
// transparent nodes are skipped.
func Draw(dst *ebiten.Image, root *Node) {
	if root == nil || root.disposed {
		return
	}
	drawNode(dst, root, identityTransform, 1, false)
}

func drawNode(dst *ebiten.Image, n *Node, parent [6]float64, parentAlpha float64, parentRecomputed bool) {
	if !n.Visible {
		if parentRecomputed {
			n.transformDirty = true
		}
		return
	}
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parent, computeLocalTransform(n))
		n.transformDirty = false
	}
	n.worldAlpha = parentAlpha * n.Alpha
	if n.worldAlpha <= 0 {
		// Children inherit zero alpha; keep transforms fresh for them anyway
		// so Bounds/LocalToWorld stay valid while hidden.
		for _, child := range n.children {
			updateWorldTransform(child, n.worldTransform, 0, recompute)
		}
		return
	}

	switch n.Type {
	case NodeTypeRect:
		if n.Width > 0 && n.Height > 0 {
			m := multiplyAffine(n.worldTransform, [6]float64{n.Width, 0, 0, n.Height, 0, 0})
			drawImage(dst, ensureWhitePixel(), m, n.Color, n.worldAlpha)
		}
	case NodeTypeImage:
		if n.Image != nil {
			drawImage(dst, n.Image, n.worldTransform, n.Color, n.worldAlpha)
		}
	case NodeTypeText:
		if n.TextBlock != nil {
			if img := n.TextBlock.rendered(); img != nil {
				drawImage(dst, img, n.worldTransform, n.Color, n.worldAlpha)
			}
		}
	}

	for _, child := range n.children {
		drawNode(dst, child, n.worldTransform, n.worldAlpha, recompute)
	}
}

func drawImage(dst, img *ebiten.Image, m [6]float64, tint Color, alpha float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM(m)
	a := float32(tint.A * alpha)
	op.ColorScale.Scale(float32(tint.R)*a, float32(tint.G)*a, float32(tint.B)*a, a)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
