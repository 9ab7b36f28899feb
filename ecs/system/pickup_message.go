package system

import (
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

// PickupMessageSystem counts down the on-screen pickup notice and clears it
// when it expires.
type PickupMessageSystem struct{}

func NewPickupMessageSystem() *PickupMessageSystem {
	return &PickupMessageSystem{}
}

func (s *PickupMessageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.PickupMessageComponent.Kind(), func(_ ecs.Entity, msg *component.PickupMessage) {
		if msg == nil || msg.Frames <= 0 {
			return
		}
		msg.Frames--
		if msg.Frames <= 0 {
			msg.Frames = 0
			msg.Text = ""
		}
	})
}
