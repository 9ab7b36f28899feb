package common

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r *Rect) SetLeft(v float64)   { r.X = v }
func (r *Rect) SetRight(v float64)  { r.X = v - r.Width }
func (r *Rect) SetTop(v float64)    { r.Y = v }
func (r *Rect) SetBottom(v float64) { r.Y = v - r.Height }

// Center returns the midpoint of the box.
func (r Rect) Center() Vec {
	return r.Min().Add(r.Size().Mult(0.5))
}

func (r Rect) Min() Vec  { return Vec{X: r.X, Y: r.Y} }
func (r Rect) Size() Vec { return Vec{X: r.Width, Y: r.Height} }

// Intersects reports strict overlap. Boxes that only share an edge do not
// intersect, so a body resting on a platform is not re-resolved sideways.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// ContainsPoint hit-tests a cursor position, treated as a 1x1 box.
func (r Rect) ContainsPoint(p Vec) bool {
	return r.Intersects(Rect{X: p.X, Y: p.Y, Width: 1, Height: 1})
}
