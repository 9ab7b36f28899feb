package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec is the 2D vector used for positions and velocities.
type Vec = cp.Vector

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
