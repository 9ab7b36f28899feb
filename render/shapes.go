package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/speedrun/common"
)

var whiteSubImage *ebiten.Image

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

func fillRect(dst *ebiten.Image, r common.Rect, clr color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}

func fillCircle(dst *ebiten.Image, c common.Vec, radius float64, clr color.Color) {
	vector.FillCircle(dst, float32(c.X), float32(c.Y), float32(radius), clr, true)
}

// fillPolygon fills a simple polygon, convex or not, offset by origin.
// Triangles fan out from the first point and the even-odd rule cancels the
// parts of the fan that fall outside the outline.
func fillPolygon(dst *ebiten.Image, origin common.Vec, points []common.Vec, clr color.Color) {
	if len(points) < 3 {
		return
	}
	r, g, b, a := clr.RGBA()
	cr, cg, cb, ca := float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff

	vertices := make([]ebiten.Vertex, 0, len(points))
	for _, p := range points {
		vertices = append(vertices, ebiten.Vertex{
			DstX:   float32(origin.X + p.X),
			DstY:   float32(origin.Y + p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	indices := make([]uint16, 0, 3*(len(points)-2))
	for i := 1; i+1 < len(points); i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleEvenOdd}
	dst.DrawTriangles(vertices, indices, whiteTexture(), op)
}

// mirror reflects a sub-rectangle of a width-w sprite around its vertical
// centre line.
func mirror(r common.Rect, w float64) common.Rect {
	r.X = w - r.X - r.Width
	return r
}
