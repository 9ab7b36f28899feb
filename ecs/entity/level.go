package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/speedrun/common"
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
	"github.com/milk9111/speedrun/levels"
)

// SpawnX and SpawnY are the player's top-left position at level start.
const (
	SpawnX = 50.0
	SpawnY = 300.0
)

var (
	staticPlatformColor = color.RGBA{100, 100, 100, 255}
	movingPlatformColor = color.RGBA{128, 0, 128, 255}
)

// LoadLevelToWorld builds every entity of lvl into world: ground, platforms,
// hazards, pickups, the finish line, the player and the per-level singletons.
// It returns the player entity.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level, bounds component.LevelBounds) (ecs.Entity, error) {
	if world == nil || lvl == nil {
		return 0, fmt.Errorf("load level: world and level are required")
	}

	if err := addSingleton(world, component.LevelBoundsComponent.Kind(), &bounds); err != nil {
		return 0, err
	}
	if err := addSingleton(world, component.CoinCounterComponent.Kind(), &component.CoinCounter{Total: lvl.TotalCoins()}); err != nil {
		return 0, err
	}
	if err := addSingleton(world, component.PickupMessageComponent.Kind(), &component.PickupMessage{}); err != nil {
		return 0, err
	}

	ground, err := NewPlatform(world, lvl.Ground, staticPlatformColor)
	if err != nil {
		return 0, fmt.Errorf("level %d: ground: %w", lvl.Number, err)
	}
	if err := ecs.Add(world, ground, component.GroundTagComponent.Kind(), &component.GroundTag{}); err != nil {
		return 0, err
	}

	for i, r := range lvl.Platforms {
		if _, err := NewPlatform(world, r, staticPlatformColor); err != nil {
			return 0, fmt.Errorf("level %d: platform %d: %w", lvl.Number, i, err)
		}
	}
	for i, mp := range lvl.MovingPlatforms {
		if _, err := NewMovingPlatform(world, mp); err != nil {
			return 0, fmt.Errorf("level %d: moving platform %d: %w", lvl.Number, i, err)
		}
	}
	for i, r := range lvl.Hazards {
		if _, err := NewHazard(world, r); err != nil {
			return 0, fmt.Errorf("level %d: hazard %d: %w", lvl.Number, i, err)
		}
	}
	for i, c := range lvl.Coins {
		if _, err := NewCoinAt(world, c.X, c.Y); err != nil {
			return 0, fmt.Errorf("level %d: coin %d: %w", lvl.Number, i, err)
		}
	}
	for i, p := range lvl.PowerUps {
		if _, err := NewPowerUpAt(world, p.X, p.Y, p.Kind); err != nil {
			return 0, fmt.Errorf("level %d: power-up %d: %w", lvl.Number, i, err)
		}
	}
	if _, err := NewFinishLineAt(world, lvl.Finish.X, lvl.Finish.Y); err != nil {
		return 0, fmt.Errorf("level %d: finish: %w", lvl.Number, err)
	}

	player, err := NewPlayerAt(world, SpawnX, SpawnY)
	if err != nil {
		return 0, fmt.Errorf("level %d: %w", lvl.Number, err)
	}
	return player, nil
}

func addSingleton[T any](w *ecs.World, kind component.ComponentKind[T], value *T) error {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, kind, value); err != nil {
		return fmt.Errorf("load level: add singleton: %w", err)
	}
	return nil
}

func addBox(w *ecs.World, r levels.Rect) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y}); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: r.Width, Height: r.Height}); err != nil {
		return 0, err
	}
	return e, nil
}

// NewPlatform adds a static platform. r.Color overrides fallback when set.
func NewPlatform(w *ecs.World, r levels.Rect, fallback color.RGBA) (ecs.Entity, error) {
	e, err := addBox(w, r)
	if err != nil {
		return 0, err
	}
	return e, ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{
		Kind:  component.PlatformStatic,
		Color: common.ParseHexColor(r.Color, fallback),
	})
}

func NewMovingPlatform(w *ecs.World, mp levels.MovingPlatform) (ecs.Entity, error) {
	e, err := addBox(w, mp.Rect)
	if err != nil {
		return 0, err
	}
	return e, ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{
		Kind:  component.PlatformMoving,
		Color: common.ParseHexColor(mp.Color, movingPlatformColor),
		Motion: component.Oscillation{
			MoveX:     mp.MoveX,
			MoveY:     mp.MoveY,
			Distance:  mp.Distance,
			Speed:     mp.Speed,
			Start:     common.Vec{X: mp.X, Y: mp.Y},
			Direction: 1,
		},
	})
}

func NewHazard(w *ecs.World, r levels.Rect) (ecs.Entity, error) {
	e, err := addBox(w, r)
	if err != nil {
		return 0, err
	}
	return e, ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{})
}
