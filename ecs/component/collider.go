package component

import "github.com/milk9111/speedrun/common"

// Collider is the extent of an entity's box. The box's top-left corner is
// the entity Transform.
type Collider struct {
	Width  float64
	Height float64
}

// Box returns the world-space box for a transform/collider pair.
func (c *Collider) Box(t *Transform) common.Rect {
	return common.Rect{X: t.X, Y: t.Y, Width: c.Width, Height: c.Height}
}

var ColliderComponent = NewComponent[Collider]()
