package entity

import (
	"fmt"
	"strings"

	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

func NewCoinAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, "coin.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		return 0, fmt.Errorf("coin: override transform: %w", err)
	}
	return e, nil
}

// NewPowerUpAt places a power-up whose hover is centred on y. An empty kind
// keeps the prefab's default.
func NewPowerUpAt(w *ecs.World, x, y float64, kind string) (ecs.Entity, error) {
	e, err := BuildEntity(w, "power_up.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		return 0, fmt.Errorf("power_up: override transform: %w", err)
	}
	p, ok := ecs.Get(w, e, component.PowerUpComponent.Kind())
	if !ok || p == nil {
		return 0, fmt.Errorf("power_up: prefab has no power_up component")
	}
	if kind = strings.ToLower(strings.TrimSpace(kind)); kind != "" {
		p.Kind = kind
	}
	p.BaseY = y
	p.Initialized = true
	return e, nil
}

func NewFinishLineAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, "finish_line.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		return 0, fmt.Errorf("finish_line: override transform: %w", err)
	}
	return e, nil
}
