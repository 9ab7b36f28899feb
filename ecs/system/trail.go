package system

import (
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

// TrailSystem emits a particle at the player centre every few frames while
// the player is moving and ages out old particles.
type TrailSystem struct{}

func NewTrailSystem() *TrailSystem { return &TrailSystem{} }

func (s *TrailSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.TrailComponent.Kind(), component.PlayerComponent.Kind(), func(e ecs.Entity, trail *component.Trail, player *component.Player) {
		if trail == nil || player == nil {
			return
		}

		boosted := isBoosted(w, e)
		interval, clr := trail.Interval, trail.Color
		if boosted {
			interval, clr = trail.BoostedInterval, trail.BoostedColor
		}

		trail.Timer++
		if trail.Timer > interval {
			trail.Timer = 0
			if box, ok := entityBox(w, e); ok && player.Velocity().Length() > 0 {
				trail.Particles = append(trail.Particles, component.TrailParticle{
					Position: box.Center(),
					Lifetime: trail.Lifetime,
					Color:    clr,
				})
			}
		}

		live := trail.Particles[:0]
		for _, p := range trail.Particles {
			p.Lifetime--
			if p.Lifetime > 0 {
				live = append(live, p)
			}
		}
		trail.Particles = live
	})
}
