package component

import (
	"image/color"

	"github.com/milk9111/speedrun/common"
)

type PlatformKind int

const (
	PlatformStatic PlatformKind = iota
	PlatformMoving
)

func (k PlatformKind) String() string {
	switch k {
	case PlatformStatic:
		return "static"
	case PlatformMoving:
		return "moving"
	}
	return "unknown"
}

// Oscillation drives a moving platform back and forth along MoveX/MoveY.
// MovedDistance counts distance travelled since the last reversal, summed
// over every engaged axis. Offset is the displacement from Start.
type Oscillation struct {
	MoveX         int
	MoveY         int
	Distance      float64
	Speed         float64
	Start         common.Vec
	Offset        common.Vec
	MovedDistance float64
	Direction     int
}

// Axis is the unnormalized direction of travel.
func (o Oscillation) Axis() common.Vec {
	return common.Vec{X: float64(o.MoveX), Y: float64(o.MoveY)}
}

func (o Oscillation) Position() common.Vec {
	return o.Start.Add(o.Offset)
}

// Platform is a solid surface. Motion is only read when Kind is
// PlatformMoving.
type Platform struct {
	Kind   PlatformKind
	Color  color.RGBA
	Motion Oscillation
}

var PlatformComponent = NewComponent[Platform]()
