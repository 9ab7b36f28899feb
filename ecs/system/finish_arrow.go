package system

import (
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

type FinishArrowSystem struct{}

func NewFinishArrowSystem() *FinishArrowSystem { return &FinishArrowSystem{} }

func (s *FinishArrowSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.FinishLineComponent.Kind(), func(_ ecs.Entity, f *component.FinishLine) {
		if f == nil {
			return
		}
		if f.ArrowDir == 0 {
			f.ArrowDir = 1
		}
		f.ArrowOffset += 0.5 * f.ArrowDir
		if f.ArrowOffset > 10 || f.ArrowOffset < 0 {
			f.ArrowDir = -f.ArrowDir
		}
	})
}
