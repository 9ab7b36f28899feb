package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/speedrun/common"
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
	"github.com/milk9111/speedrun/session"
)

const (
	highlightHeight = 3
	highlightDelta  = 30
	spikeWidth      = 10
)

var (
	boltPoints = []common.Vec{{X: 10, Y: 0}, {X: 0, Y: 10}, {X: 8, Y: 10}, {X: 3, Y: 20}, {X: 20, Y: 7}, {X: 12, Y: 7}, {X: 16, Y: 0}}
	flagPoints = []common.Vec{{X: 5, Y: 5}, {X: 40, Y: 15}, {X: 5, Y: 25}}

	playerEyes = common.Rect{X: 5, Y: 5, Width: 20, Height: 10}
	playerFeet = common.Rect{X: 15, Y: 45, Width: 10, Height: 5}
	flagPole   = common.Rect{Width: 5, Height: 60}
)

func (r *Renderer) drawWorld(dst *ebiten.Image, s *session.Session) {
	w := s.World()
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(_ ecs.Entity, p *component.Platform, t *component.Transform, c *component.Collider) {
			drawPlatform(dst, c.Box(t), p.Color)
		})
	ecs.ForEach3(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(_ ecs.Entity, _ *component.Hazard, t *component.Transform, c *component.Collider) {
			drawSpikes(dst, c.Box(t))
		})
	ecs.ForEach3(w, component.CoinComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(_ ecs.Entity, _ *component.Coin, t *component.Transform, c *component.Collider) {
			drawCoin(dst, c.Box(t))
		})
	ecs.ForEach2(w, component.PowerUpComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, _ *component.PowerUp, t *component.Transform) {
			fillPolygon(dst, common.Vec{X: t.X, Y: t.Y}, boltPoints, boltColor)
		})
	ecs.ForEach2(w, component.FinishLineComponent.Kind(), component.TransformComponent.Kind(),
		func(_ ecs.Entity, _ *component.FinishLine, t *component.Transform) {
			drawFlag(dst, common.Vec{X: t.X, Y: t.Y})
		})

	r.drawPlayer(dst, w, s.Player())

	ecs.ForEach3(w, component.FinishLineComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(_ ecs.Entity, f *component.FinishLine, t *component.Transform, c *component.Collider) {
			drawArrow(dst, c.Box(t), f.ArrowOffset)
		})
	ecs.ForEach3(w, component.PowerUpComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(),
		func(_ ecs.Entity, _ *component.PowerUp, t *component.Transform, c *component.Collider) {
			fillCircle(dst, c.Box(t).Center(), c.Width/2+5, glowColor)
		})
}

func drawPlatform(dst *ebiten.Image, box common.Rect, clr color.RGBA) {
	fillRect(dst, box, clr)
	top := box
	top.Height = math.Min(highlightHeight, box.Height)
	fillRect(dst, top, common.Brighten(clr, highlightDelta))
}

func drawSpikes(dst *ebiten.Image, box common.Rect) {
	n := int(box.Width) / spikeWidth
	for i := 0; i < n; i++ {
		x := float64(i * spikeWidth)
		fillPolygon(dst, common.Vec{X: box.X, Y: box.Y}, []common.Vec{
			{X: x, Y: box.Height},
			{X: x + spikeWidth/2, Y: 0},
			{X: x + spikeWidth, Y: box.Height},
		}, hazardColor)
	}
}

func drawCoin(dst *ebiten.Image, box common.Rect) {
	c := common.Vec{X: box.X + 7, Y: box.Y + 7}
	fillCircle(dst, c, 7, yellowColor)
	fillCircle(dst, c, 5, orangeColor)
}

func drawFlag(dst *ebiten.Image, at common.Vec) {
	pole := flagPole
	pole.X, pole.Y = at.X, at.Y
	fillRect(dst, pole, greenColor)
	fillPolygon(dst, at, flagPoints, yellowColor)
}

func drawArrow(dst *ebiten.Image, box common.Rect, offset float64) {
	cx := box.Center().X
	y := box.Y - 30 - offset
	fillPolygon(dst, common.Vec{}, []common.Vec{
		{X: cx, Y: y},
		{X: cx - 10, Y: y - 10},
		{X: cx + 10, Y: y - 10},
	}, yellowColor)
}

func (r *Renderer) drawPlayer(dst *ebiten.Image, w *ecs.World, player ecs.Entity) {
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	c, ok := ecs.Get(w, player, component.ColliderComponent.Kind())
	if !ok {
		return
	}
	box := c.Box(t)

	facingRight := true
	if p, ok := ecs.Get(w, player, component.PlayerComponent.Kind()); ok {
		facingRight = p.FacingRight
	}
	frame := 0
	if a, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok {
		frame = a.Displayed
	}

	fillRect(dst, box, playerColor)
	for _, part := range playerParts(frame, facingRight, box.Width) {
		part.Rect.X += box.X
		part.Rect.Y += box.Y
		fillRect(dst, part.Rect, part.Color)
	}

	if trail, ok := ecs.Get(w, player, component.TrailComponent.Kind()); ok {
		for _, p := range trail.Particles {
			fillCircle(dst, p.Position, trailRadius(p.Lifetime), trailColor(p))
		}
	}
}

type spritePart struct {
	Rect  common.Rect
	Color color.RGBA
}

// playerParts lists the details drawn over the body for an animation
// frame, relative to the player's top-left corner.
func playerParts(frame int, facingRight bool, width float64) []spritePart {
	parts := []spritePart{{Rect: playerEyes, Color: eyeColor}}
	if frame == 1 {
		parts = append(parts, spritePart{Rect: playerFeet, Color: whiteColor})
	}
	if !facingRight {
		for i := range parts {
			parts[i].Rect = mirror(parts[i].Rect, width)
		}
	}
	return parts
}

func trailRadius(lifetime int) float64 {
	return math.Max(1, float64(lifetime/4))
}

// trailColor fades a particle out with its remaining lifetime.
func trailColor(p component.TrailParticle) color.RGBA {
	alpha := p.Lifetime * 17
	if alpha > 255 {
		alpha = 255
	}
	if alpha < 0 {
		alpha = 0
	}
	// ebiten expects premultiplied colours.
	a := uint32(alpha)
	return color.RGBA{
		R: uint8(uint32(p.Color.R) * a / 255),
		G: uint8(uint32(p.Color.G) * a / 255),
		B: uint8(uint32(p.Color.B) * a / 255),
		A: uint8(a),
	}
}
