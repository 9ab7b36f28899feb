package system

import (
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

// PlayerControllerSystem turns the Input component into jump and horizontal
// velocity. Right wins when both directions are held.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.PlayerComponent.Kind(), func(e ecs.Entity, input *component.Input, player *component.Player) {
		if input == nil || player == nil {
			return
		}

		if input.JumpPressed {
			player.Jump()
			input.JumpPressed = false
		}

		boost, _ := ecs.Get(w, e, component.SpeedBoostComponent.Kind())
		speed := boost.Speed(player.MoveSpeed)

		player.VelX = 0
		if input.Left {
			player.VelX = -speed
		}
		if input.Right {
			player.VelX = speed
		}
	})
}
