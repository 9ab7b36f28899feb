package system

import (
	"testing"

	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func addBox(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.ColliderComponent.Kind(), &component.Collider{Width: width, Height: height})
	return e
}

func addTestPlayer(t *testing.T, w *ecs.World, x, y float64) (ecs.Entity, *component.Player) {
	t.Helper()
	e := addBox(t, w, x, y, 30, 50)
	p := &component.Player{MoveSpeed: 5, JumpStrength: 12, DoubleJumpStrength: 10, CanDoubleJump: true, FacingRight: true}
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.PlayerComponent.Kind(), p)
	mustAdd(t, w, e, component.GravityComponent.Kind(), &component.Gravity{Accel: 0.5})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.SpeedBoostComponent.Kind(), &component.SpeedBoost{DurationFrames: 300, Multiplier: 1.7})
	return e, p
}

func addBounds(t *testing.T, w *ecs.World, width, height float64) {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{Width: width, Height: height})
}

func addPlatform(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := addBox(t, w, x, y, width, height)
	mustAdd(t, w, e, component.PlatformComponent.Kind(), &component.Platform{Kind: component.PlatformStatic})
	return e
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}
