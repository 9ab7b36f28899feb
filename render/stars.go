package render

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/speedrun/common"
)

type Star struct {
	Position   common.Vec
	Radius     float64
	Brightness uint8
}

// NewStarfield scatters n stars over a w×h screen. The same seed always
// yields the same sky.
func NewStarfield(n int, seed int64, w, h float64) []Star {
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed))
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			Position:   common.Vec{X: float64(rng.Intn(int(w) + 1)), Y: float64(rng.Intn(int(h) + 1))},
			Radius:     float64(1 + rng.Intn(3)),
			Brightness: uint8(100 + rng.Intn(156)),
		}
	}
	return stars
}

func (r *Renderer) drawBackground(dst *ebiten.Image) {
	dst.Fill(backgroundColor)
	for _, s := range r.stars {
		fillCircle(dst, s.Position, s.Radius, color.RGBA{R: s.Brightness, G: s.Brightness, B: s.Brightness, A: 255})
	}
}
