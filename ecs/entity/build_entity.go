package entity

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/milk9111/speedrun/common"
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
	"github.com/milk9111/speedrun/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":  addPlayerTag,
	"transform":   addTransform,
	"collider":    addCollider,
	"player":      addPlayer,
	"gravity":     addGravity,
	"speed_boost": addSpeedBoost,
	"trail":       addTrail,
	"animation":   addAnimation,
	"input":       addInput,
	"coin":        addCoin,
	"power_up":    addPowerUp,
	"finish_line": addFinishLine,
}

// Components are added in this order; anything else a prefab names is
// added afterwards in name order.
var componentBuildOrder = []string{
	"player_tag",
	"transform",
	"collider",
	"player",
	"gravity",
	"speed_boost",
	"trail",
	"animation",
	"input",
	"coin",
	"power_up",
	"finish_line",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, remaining[name], ctx); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := build(name); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, err
		}
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := build(name); err != nil {
				ecs.DestroyEntity(w, e)
				return 0, err
			}
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y})
}

type colliderSpec = prefabs.ColliderComponentSpec

func addCollider(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[colliderSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collider spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("collider must have a positive size, got %vx%v", spec.Width, spec.Height)
	}
	return ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: spec.Width, Height: spec.Height})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:          spec.MoveSpeed,
		JumpStrength:       spec.JumpStrength,
		DoubleJumpStrength: spec.DoubleJumpStrength,
		CanDoubleJump:      spec.CanDoubleJump,
		FacingRight:        spec.FacingRight,
	})
}

type gravitySpec = prefabs.GravityComponentSpec

func addGravity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[gravitySpec](raw)
	if err != nil {
		return fmt.Errorf("decode gravity spec: %w", err)
	}
	return ecs.Add(w, e, component.GravityComponent.Kind(), &component.Gravity{Accel: spec.Accel})
}

type speedBoostSpec = prefabs.SpeedBoostComponentSpec

func addSpeedBoost(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[speedBoostSpec](raw)
	if err != nil {
		return fmt.Errorf("decode speed_boost spec: %w", err)
	}
	if spec.Multiplier == 0 {
		spec.Multiplier = 1
	}
	return ecs.Add(w, e, component.SpeedBoostComponent.Kind(), &component.SpeedBoost{
		Multiplier:     spec.Multiplier,
		DurationFrames: spec.DurationFrames,
	})
}

type trailSpec = prefabs.TrailComponentSpec

func addTrail(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[trailSpec](raw)
	if err != nil {
		return fmt.Errorf("decode trail spec: %w", err)
	}
	if spec.BoostedInterval <= 0 {
		spec.BoostedInterval = spec.Interval
	}
	base := common.ParseHexColor(spec.Color, color.RGBA{100, 200, 255, 255})
	return ecs.Add(w, e, component.TrailComponent.Kind(), &component.Trail{
		Interval:        spec.Interval,
		BoostedInterval: spec.BoostedInterval,
		Lifetime:        spec.Lifetime,
		Color:           base,
		BoostedColor:    common.ParseHexColor(spec.BoostedColor, base),
	})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	if spec.FrameCount <= 0 {
		spec.FrameCount = 1
	}
	if spec.BoostedInterval <= 0 {
		spec.BoostedInterval = spec.Interval
	}
	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		FrameCount:      spec.FrameCount,
		Interval:        spec.Interval,
		BoostedInterval: spec.BoostedInterval,
	})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
}

func addCoin(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CoinComponent.Kind(), &component.Coin{})
}

type powerUpSpec = prefabs.PowerUpComponentSpec

func addPowerUp(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[powerUpSpec](raw)
	if err != nil {
		return fmt.Errorf("decode power_up spec: %w", err)
	}
	kind := strings.ToLower(strings.TrimSpace(spec.Kind))
	if kind == "" {
		return fmt.Errorf("power_up requires a kind")
	}
	return ecs.Add(w, e, component.PowerUpComponent.Kind(), &component.PowerUp{Kind: kind, HoverDir: 1})
}

type finishLineSpec = prefabs.FinishLineComponentSpec

func addFinishLine(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[finishLineSpec](raw)
	if err != nil {
		return fmt.Errorf("decode finish_line spec: %w", err)
	}
	if spec.ArrowDir == 0 {
		spec.ArrowDir = 1
	}
	return ecs.Add(w, e, component.FinishLineComponent.Kind(), &component.FinishLine{ArrowDir: spec.ArrowDir})
}
