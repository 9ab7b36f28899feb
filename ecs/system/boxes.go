package system

import (
	"github.com/milk9111/speedrun/common"
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

// entityBox returns the world box of an entity with a Transform and Collider.
func entityBox(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		return common.Rect{}, false
	}
	c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok || c == nil {
		return common.Rect{}, false
	}
	return c.Box(t), true
}

func firstPlayer(w *ecs.World) (ecs.Entity, bool) {
	return ecs.First(w, component.PlayerTagComponent.Kind())
}

func levelBounds(w *ecs.World) (component.LevelBounds, bool) {
	e, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return component.LevelBounds{}, false
	}
	b, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind())
	if !ok || b == nil {
		return component.LevelBounds{}, false
	}
	return *b, true
}

func isBoosted(w *ecs.World, e ecs.Entity) bool {
	b, ok := ecs.Get(w, e, component.SpeedBoostComponent.Kind())
	return ok && b != nil && b.Active
}
