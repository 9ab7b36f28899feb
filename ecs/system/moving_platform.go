package system

import (
	"math"

	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

// MovingPlatformSystem advances every moving platform along its axes and
// reverses it after Distance has been covered. Diagonal platforms move on
// both axes at full speed.
type MovingPlatformSystem struct{}

func NewMovingPlatformSystem() *MovingPlatformSystem { return &MovingPlatformSystem{} }

func (s *MovingPlatformSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, p *component.Platform, t *component.Transform) {
		if p == nil || t == nil || p.Kind != component.PlatformMoving {
			return
		}
		StepOscillation(&p.Motion, t)
	})
}

// StepOscillation advances m by one frame and places t at Start+Offset.
// The last step of a leg is shortened so the platform stops exactly at
// Distance before reversing.
func StepOscillation(m *component.Oscillation, t *component.Transform) {
	if m.Direction == 0 {
		m.Direction = 1
	}
	engaged := math.Abs(float64(m.MoveX)) + math.Abs(float64(m.MoveY))
	if engaged == 0 {
		return
	}

	travel := math.Max(0, math.Min(m.Speed*engaged, m.Distance-m.MovedDistance))
	m.Offset = m.Offset.Add(m.Axis().Mult(travel / engaged * float64(m.Direction)))
	m.MovedDistance += travel

	pos := m.Position()
	t.X, t.Y = pos.X, pos.Y

	if m.MovedDistance >= m.Distance {
		m.Direction = -m.Direction
		m.MovedDistance = 0
	}
}
