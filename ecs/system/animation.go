package system

import (
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.PlayerComponent.Kind(), func(e ecs.Entity, anim *component.Animation, player *component.Player) {
		if anim == nil || player == nil {
			return
		}

		interval := anim.Interval
		if isBoosted(w, e) {
			interval = anim.BoostedInterval
		}

		anim.Timer++
		if anim.Timer > interval {
			anim.Timer = 0
			if anim.FrameCount > 0 {
				anim.Frame = (anim.Frame + 1) % anim.FrameCount
			}
			// idle shows the first frame
			if player.VelX != 0 {
				anim.Displayed = anim.Frame
			} else {
				anim.Displayed = 0
			}
		}

		if player.VelX < 0 {
			player.FacingRight = false
		} else if player.VelX > 0 {
			player.FacingRight = true
		}
	})
}
