package system

import (
	"testing"

	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

func TestPlayerControllerHorizontal(t *testing.T) {
	cases := []struct {
		name    string
		left    bool
		right   bool
		boosted bool
		want    float64
	}{
		{"none", false, false, false, 0},
		{"left", true, false, false, -5},
		{"right", false, true, false, 5},
		{"both_right_wins", true, true, false, 5},
		{"boosted_left", true, false, true, -8.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, p := addTestPlayer(t, w, 0, 0)
			p.VelX = 3
			input, _ := ecs.Get(w, e, component.InputComponent.Kind())
			input.Left, input.Right = c.left, c.right
			if c.boosted {
				boost, _ := ecs.Get(w, e, component.SpeedBoostComponent.Kind())
				boost.Activate()
			}
			NewPlayerControllerSystem().Update(w)
			if p.VelX != c.want {
				t.Fatalf("expected vel_x %v, got %v", c.want, p.VelX)
			}
		})
	}
}

func TestPlayerControllerConsumesJump(t *testing.T) {
	w := ecs.NewWorld()
	e, p := addTestPlayer(t, w, 0, 0)
	p.OnGround = true
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	input.JumpPressed = true

	sys := NewPlayerControllerSystem()
	sys.Update(w)
	if p.VelY != -12 || input.JumpPressed {
		t.Fatalf("expected ground jump and consumed press, got vel_y=%v pressed=%v", p.VelY, input.JumpPressed)
	}
	sys.Update(w)
	if p.VelY != -12 {
		t.Fatalf("held input must not jump again, got %v", p.VelY)
	}
}

func TestSpeedBoostExpires(t *testing.T) {
	w := ecs.NewWorld()
	e, _ := addTestPlayer(t, w, 0, 0)
	boost, _ := ecs.Get(w, e, component.SpeedBoostComponent.Kind())
	boost.Activate()

	sys := NewSpeedBoostSystem()
	for i := 0; i < 299; i++ {
		sys.Update(w)
	}
	if !boost.Active || boost.RemainingFrames != 1 {
		t.Fatalf("expected boost active with 1 frame left, got %+v", boost)
	}
	if got := boost.RemainingSeconds(60); got != 0 {
		t.Fatalf("expected 0 whole seconds left, got %d", got)
	}
	sys.Update(w)
	if boost.Active {
		t.Fatalf("expected boost to expire after its duration")
	}

	boost.Activate()
	if boost.RemainingSeconds(60) != 5 {
		t.Fatalf("expected 5 seconds after reactivation, got %d", boost.RemainingSeconds(60))
	}
}

func TestTrailEmission(t *testing.T) {
	w := ecs.NewWorld()
	e, p := addTestPlayer(t, w, 100, 100)
	trail := &component.Trail{Interval: 3, BoostedInterval: 2, Lifetime: 15}
	trail.Color.B = 255
	trail.BoostedColor.G = 255
	mustAdd(t, w, e, component.TrailComponent.Kind(), trail)
	sys := NewTrailSystem()

	for i := 0; i < 10; i++ {
		sys.Update(w)
	}
	if len(trail.Particles) != 0 {
		t.Fatalf("standing still must not leave a trail")
	}

	trail.Timer = 0
	p.VelX = 5
	for i := 0; i < 4; i++ {
		sys.Update(w)
	}
	if len(trail.Particles) != 1 {
		t.Fatalf("expected one particle after the interval, got %d", len(trail.Particles))
	}
	got := trail.Particles[0]
	if got.Lifetime != 14 || got.Position.X != 115 || got.Position.Y != 125 || got.Color.B != 255 {
		t.Fatalf("unexpected particle %+v", got)
	}

	p.VelX = 0
	for i := 0; i < 14; i++ {
		sys.Update(w)
	}
	if len(trail.Particles) != 0 {
		t.Fatalf("expected particles to expire, got %d", len(trail.Particles))
	}

	boost, _ := ecs.Get(w, e, component.SpeedBoostComponent.Kind())
	boost.Activate()
	p.VelX = 8.5
	trail.Timer = 0
	for i := 0; i < 3; i++ {
		sys.Update(w)
	}
	if len(trail.Particles) != 1 || trail.Particles[0].Color.G != 255 {
		t.Fatalf("expected one boosted particle, got %+v", trail.Particles)
	}
}

func TestAnimationFramesAndFacing(t *testing.T) {
	w := ecs.NewWorld()
	e, p := addTestPlayer(t, w, 0, 0)
	anim := &component.Animation{FrameCount: 2, Interval: 10, BoostedInterval: 5}
	mustAdd(t, w, e, component.AnimationComponent.Kind(), anim)
	sys := NewAnimationSystem()

	p.VelX = -5
	for i := 0; i < 11; i++ {
		sys.Update(w)
	}
	if anim.Frame != 1 || anim.Displayed != 1 {
		t.Fatalf("expected run frame 1, got %+v", anim)
	}
	if p.FacingRight {
		t.Fatalf("moving left should face left")
	}

	p.VelX = 0
	for i := 0; i < 11; i++ {
		sys.Update(w)
	}
	if anim.Displayed != 0 {
		t.Fatalf("idle should display frame 0, got %d", anim.Displayed)
	}
	if p.FacingRight {
		t.Fatalf("facing must not change while idle")
	}

	p.VelX = 5
	sys.Update(w)
	if !p.FacingRight {
		t.Fatalf("moving right should face right")
	}
}

func TestPowerUpHover(t *testing.T) {
	w := ecs.NewWorld()
	pu := &component.PowerUp{Kind: "speed", BaseY: 220, HoverDir: 1, Initialized: true}
	e := addTagged(t, w, component.PowerUpComponent.Kind(), pu, 350, 220, 20, 20)
	sys := NewPowerUpHoverSystem()

	for i := 0; i < 5; i++ {
		sys.Update(w)
	}
	if pu.HoverOffset != 0.5 || transformOf(t, w, e).Y != 219.5 {
		t.Fatalf("expected first hover step, got offset %v y %v", pu.HoverOffset, transformOf(t, w, e).Y)
	}

	for i := 0; i < 1000; i++ {
		sys.Update(w)
		if pu.HoverOffset > 5 || pu.HoverOffset < -5 {
			t.Fatalf("hover offset out of range: %v", pu.HoverOffset)
		}
		if got := transformOf(t, w, e).Y; got != pu.BaseY-pu.HoverOffset {
			t.Fatalf("collider must follow the hover: %v", got)
		}
	}
}

func TestFinishArrowBob(t *testing.T) {
	w := ecs.NewWorld()
	f := &component.FinishLine{ArrowDir: 1}
	addTagged(t, w, component.FinishLineComponent.Kind(), f, 700, 500, 40, 60)
	sys := NewFinishArrowSystem()

	sawTop := false
	for i := 0; i < 200; i++ {
		sys.Update(w)
		if f.ArrowOffset > 10.5 || f.ArrowOffset < -0.5 {
			t.Fatalf("arrow offset out of range: %v", f.ArrowOffset)
		}
		if f.ArrowOffset == 10.5 {
			sawTop = true
		}
	}
	if !sawTop {
		t.Fatalf("expected the arrow to reach its turning point")
	}
}

func TestPickupMessageCountdown(t *testing.T) {
	w := ecs.NewWorld()
	msg := &component.PickupMessage{Text: "Speed Boost activated!", Frames: 2}
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.PickupMessageComponent.Kind(), msg)
	sys := NewPickupMessageSystem()

	sys.Update(w)
	if msg.Text == "" || msg.Frames != 1 {
		t.Fatalf("message cleared too early %+v", msg)
	}
	sys.Update(w)
	if msg.Text != "" || msg.Frames != 0 {
		t.Fatalf("expected message cleared, got %+v", msg)
	}
}

func TestPowerUpEffectsSpeedScript(t *testing.T) {
	w := ecs.NewWorld()
	player, _ := addTestPlayer(t, w, 0, 0)
	msg := &component.PickupMessage{}
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.PickupMessageComponent.Kind(), msg)

	fx := NewPowerUpEffects()
	for i := 0; i < 2; i++ {
		if err := fx.Apply(w, player, "speed"); err != nil {
			t.Fatalf("apply speed: %v", err)
		}
	}

	boost, _ := ecs.Get(w, player, component.SpeedBoostComponent.Kind())
	if !boost.Active || boost.RemainingFrames != 300 {
		t.Fatalf("expected active boost, got %+v", boost)
	}
	if msg.Text != "Speed Boost activated!" || msg.Frames != 90 {
		t.Fatalf("unexpected message %+v", msg)
	}

	if err := fx.Apply(w, player, "warp"); err == nil {
		t.Fatalf("expected error for unknown power-up kind")
	}
	fx.Invalidate()
	if err := fx.Apply(w, player, "speed"); err != nil {
		t.Fatalf("apply after invalidate: %v", err)
	}
}
