package swipedeck

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders the visible tree onto screen in painter order.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	var op ebiten.DrawImageOptions
	s.drawNode(screen, s.root, &op)
}

func (s *Scene) drawNode(dst *ebiten.Image, n *Node, op *ebiten.DrawImageOptions) {
	if !n.Visible {
		return
	}
	if n.Renderable && n.Type == NodeTypeSprite {
		img := n.customImage
		if img == nil {
			img = WhitePixel
		}
		m := n.worldTransform
		op.GeoM.Reset()
		op.GeoM.SetElement(0, 0, m[0])
		op.GeoM.SetElement(1, 0, m[1])
		op.GeoM.SetElement(0, 1, m[2])
		op.GeoM.SetElement(1, 1, m[3])
		op.GeoM.SetElement(0, 2, m[4])
		op.GeoM.SetElement(1, 2, m[5])
		op.ColorScale.Reset()
		a := n.Color.A * n.worldAlpha
		op.ColorScale.Scale(float32(n.Color.R*a), float32(n.Color.G*a), float32(n.Color.B*a), float32(a))
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(img, op)
	}
	for _, child := range n.orderedChildren() {
		s.drawNode(dst, child, op)
	}
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
