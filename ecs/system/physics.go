package system

import (
	"github.com/milk9111/speedrun/common"
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

// PlayerPhysicsSystem integrates gravity and velocity for kinematic bodies
// and resolves them against every platform, one axis at a time.
type PlayerPhysicsSystem struct {
	platforms []common.Rect
}

func NewPlayerPhysicsSystem() *PlayerPhysicsSystem {
	return &PlayerPhysicsSystem{}
}

func (s *PlayerPhysicsSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	s.platforms = s.platforms[:0]
	ecs.ForEach3(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(_ ecs.Entity, _ *component.Platform, t *component.Transform, c *component.Collider) {
		s.platforms = append(s.platforms, c.Box(t))
	})

	bounds, hasBounds := levelBounds(w)

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, p *component.Player, t *component.Transform, c *component.Collider) {
		if p == nil || t == nil || c == nil {
			return
		}
		if g, ok := ecs.Get(w, e, component.GravityComponent.Kind()); ok && g != nil {
			p.VelY += g.Accel
		}

		box := c.Box(t)
		box.X += p.VelX
		ResolveHorizontal(&box, p, s.platforms)

		box.Y += p.VelY
		ResolveVertical(&box, p, s.platforms)

		if hasBounds {
			ClampHorizontal(&box, bounds.Width)
		}
		t.X, t.Y = box.X, box.Y
	})
}

// ResolveHorizontal pushes box out of every overlapping platform against
// the direction of horizontal travel.
func ResolveHorizontal(box *common.Rect, p *component.Player, platforms []common.Rect) {
	for _, hit := range overlapping(*box, platforms) {
		if p.VelX > 0 {
			box.SetRight(hit.Left())
		} else if p.VelX < 0 {
			box.SetLeft(hit.Right())
		}
	}
}

// ResolveVertical clears OnGround and then lands box on, or bumps it
// under, every overlapping platform.
func ResolveVertical(box *common.Rect, p *component.Player, platforms []common.Rect) {
	p.OnGround = false
	for _, hit := range overlapping(*box, platforms) {
		if p.VelY > 0 {
			box.SetBottom(hit.Top())
			p.Land()
		} else if p.VelY < 0 {
			box.SetTop(hit.Bottom())
			p.VelY = 0
		}
	}
}

// ClampHorizontal keeps box inside [0, width].
func ClampHorizontal(box *common.Rect, width float64) {
	box.X = common.Clamp(box.X, 0, width-box.Width)
}

// Hits are collected before any are resolved so every platform is tested
// against the same moved box.
func overlapping(box common.Rect, platforms []common.Rect) []common.Rect {
	var hits []common.Rect
	for _, r := range platforms {
		if box.Intersects(r) {
			hits = append(hits, r)
		}
	}
	return hits
}
