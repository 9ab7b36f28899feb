package system

import (
	"math"

	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

const (
	hoverTickFrames = 5
	hoverStep       = 0.5
	hoverLimit      = 5.0
)

// PowerUpHoverSystem bobs power-ups around their base height. The collider
// moves with the sprite.
type PowerUpHoverSystem struct{}

func NewPowerUpHoverSystem() *PowerUpHoverSystem { return &PowerUpHoverSystem{} }

func (s *PowerUpHoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PowerUpComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.PowerUp, t *component.Transform) {
		if p == nil || t == nil {
			return
		}

		if !p.Initialized {
			p.BaseY = t.Y
			p.Initialized = true
		}
		if p.HoverDir == 0 {
			p.HoverDir = 1
		}

		p.HoverTimer++
		if p.HoverTimer >= hoverTickFrames {
			p.HoverTimer = 0
			p.HoverOffset += hoverStep * p.HoverDir
			if math.Abs(p.HoverOffset) >= hoverLimit {
				p.HoverDir = -p.HoverDir
			}
		}
		t.Y = p.BaseY - p.HoverOffset
	})
}
