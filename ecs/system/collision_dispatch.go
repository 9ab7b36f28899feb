package system

import (
	"log"

	"github.com/milk9111/speedrun/common"
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

// EffectApplier applies a collected power-up to the player.
type EffectApplier interface {
	Apply(w *ecs.World, player ecs.Entity, kind string) error
}

// CollisionDispatchSystem tests the player against pickups, the finish line,
// hazards and the bottom of the level, in that order. Reaching the finish
// ends the frame's checks, so finishing on a hazard completes the level.
// Outcomes are emitted as request entities.
type CollisionDispatchSystem struct {
	effects EffectApplier
}

func NewCollisionDispatchSystem(effects EffectApplier) *CollisionDispatchSystem {
	return &CollisionDispatchSystem{effects: effects}
}

func (s *CollisionDispatchSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	player, ok := firstPlayer(w)
	if !ok {
		return
	}
	box, ok := entityBox(w, player)
	if !ok {
		return
	}

	s.collectCoins(w, box)
	s.collectPowerUps(w, player, box)

	if touchesAny(w, box, component.FinishLineComponent.Kind()) {
		emit(w, component.LevelCompleteRequestComponent.Kind(), &component.LevelCompleteRequest{})
		return
	}

	if touchesAny(w, box, component.HazardComponent.Kind()) {
		emit(w, component.ResetRequestComponent.Kind(), &component.ResetRequest{Reason: component.ResetHazard})
		return
	}

	if bounds, ok := levelBounds(w); ok && box.Top() > bounds.Height {
		emit(w, component.ResetRequestComponent.Kind(), &component.ResetRequest{Reason: component.ResetFellOff})
	}
}

func (s *CollisionDispatchSystem) collectCoins(w *ecs.World, box common.Rect) {
	var counter *component.CoinCounter
	if e, ok := ecs.First(w, component.CoinCounterComponent.Kind()); ok {
		counter, _ = ecs.Get(w, e, component.CoinCounterComponent.Kind())
	}

	ecs.ForEach(w, component.CoinComponent.Kind(), func(e ecs.Entity, _ *component.Coin) {
		r, ok := entityBox(w, e)
		if !ok || !box.Intersects(r) {
			return
		}
		ecs.DestroyEntity(w, e)
		if counter != nil {
			counter.Collected++
		}
	})
}

func (s *CollisionDispatchSystem) collectPowerUps(w *ecs.World, player ecs.Entity, box common.Rect) {
	ecs.ForEach(w, component.PowerUpComponent.Kind(), func(e ecs.Entity, p *component.PowerUp) {
		r, ok := entityBox(w, e)
		if !ok || !box.Intersects(r) {
			return
		}
		kind := p.Kind
		ecs.DestroyEntity(w, e)
		if s.effects == nil {
			return
		}
		// the pickup is consumed even when its effect fails
		if err := s.effects.Apply(w, player, kind); err != nil {
			log.Printf("collision: %v", err)
		}
	})
}

func touchesAny[T any](w *ecs.World, box common.Rect, kind component.ComponentKind[T]) bool {
	hit := false
	ecs.ForEach(w, kind, func(e ecs.Entity, _ *T) {
		if hit {
			return
		}
		if r, ok := entityBox(w, e); ok && box.Intersects(r) {
			hit = true
		}
	})
	return hit
}

func emit[T any](w *ecs.World, kind component.ComponentKind[T], value *T) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, kind, value); err != nil {
		log.Printf("collision: emit request: %v", err)
	}
}
