package component

import (
	"image/color"

	"github.com/milk9111/speedrun/common"
)

type TrailParticle struct {
	Position common.Vec
	Lifetime int
	Color    color.RGBA
}

// Trail is the fading particle track left behind a moving player.
type Trail struct {
	Particles []TrailParticle
	Timer     int

	Interval        int
	BoostedInterval int
	Lifetime        int
	Color           color.RGBA
	BoostedColor    color.RGBA
}

var TrailComponent = NewComponent[Trail]()
