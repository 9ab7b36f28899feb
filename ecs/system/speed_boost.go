package system

import (
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

type SpeedBoostSystem struct{}

func NewSpeedBoostSystem() *SpeedBoostSystem { return &SpeedBoostSystem{} }

func (s *SpeedBoostSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.SpeedBoostComponent.Kind(), func(_ ecs.Entity, boost *component.SpeedBoost) {
		if boost == nil || !boost.Active {
			return
		}
		boost.RemainingFrames--
		if boost.RemainingFrames <= 0 {
			boost.RemainingFrames = 0
			boost.Active = false
		}
	})
}
