package system

import (
	"testing"

	"github.com/milk9111/speedrun/common"
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
	"github.com/milk9111/speedrun/ecs/entity"
	"github.com/milk9111/speedrun/levels"
)

func TestResolveVerticalLanding(t *testing.T) {
	cases := []struct {
		name     string
		platform common.Rect
		box      common.Rect
		velY     float64
		armed    bool
	}{
		{"ground", common.Rect{X: 0, Y: 550, Width: 800, Height: 50}, common.Rect{X: 50, Y: 505, Width: 30, Height: 50}, 6, false},
		{"ledge_edge", common.Rect{X: 100, Y: 450, Width: 200, Height: 20}, common.Rect{X: 75, Y: 401, Width: 30, Height: 50}, 0.5, true},
		{"deep_overlap", common.Rect{X: 300, Y: 200, Width: 50, Height: 20}, common.Rect{X: 310, Y: 165, Width: 30, Height: 50}, 14, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := &component.Player{VelY: c.velY, IsJumping: true, CanDoubleJump: c.armed}
			box := c.box
			ResolveVertical(&box, p, []common.Rect{c.platform})
			if box.Bottom() != c.platform.Top() {
				t.Fatalf("expected bottom %v, got %v", c.platform.Top(), box.Bottom())
			}
			if p.VelY != 0 || !p.OnGround || p.IsJumping {
				t.Fatalf("unexpected state after landing %+v", p)
			}
			if !p.CanDoubleJump {
				t.Fatalf("landing must re-arm the double jump")
			}
		})
	}
}

func TestResolveVerticalRising(t *testing.T) {
	platform := common.Rect{X: 200, Y: 350, Width: 150, Height: 20}
	box := common.Rect{X: 210, Y: 360, Width: 30, Height: 50}
	p := &component.Player{VelY: -8, IsJumping: true}
	ResolveVertical(&box, p, []common.Rect{platform})
	if box.Top() != platform.Bottom() {
		t.Fatalf("expected top %v, got %v", platform.Bottom(), box.Top())
	}
	if p.VelY != 0 || p.OnGround {
		t.Fatalf("unexpected state after bump %+v", p)
	}
	if !p.IsJumping {
		t.Fatalf("bumping a ceiling is not a landing")
	}
}

func TestResolveVerticalTouchingIsNotOverlap(t *testing.T) {
	platform := common.Rect{X: 0, Y: 550, Width: 800, Height: 50}
	box := common.Rect{X: 50, Y: 500, Width: 30, Height: 50}
	p := &component.Player{VelY: 0.5, OnGround: true}
	ResolveVertical(&box, p, []common.Rect{platform})
	if p.OnGround {
		t.Fatalf("touching edges must not count as contact")
	}
	if box.Y != 500 {
		t.Fatalf("box moved without overlap: %v", box.Y)
	}
}

func TestResolveHorizontal(t *testing.T) {
	wall := common.Rect{X: 400, Y: 300, Width: 50, Height: 100}
	cases := []struct {
		name  string
		velX  float64
		start float64
		want  float64
	}{
		{"moving_right", 5, 372, 370},
		{"moving_left", -5, 447, 450},
		{"still", 0, 420, 420},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			box := common.Rect{X: c.start, Y: 320, Width: 30, Height: 50}
			ResolveHorizontal(&box, &component.Player{VelX: c.velX}, []common.Rect{wall})
			if box.X != c.want {
				t.Fatalf("expected x %v, got %v", c.want, box.X)
			}
		})
	}
}

func TestDoubleJumpInvariant(t *testing.T) {
	p := &component.Player{JumpStrength: 12, DoubleJumpStrength: 10, OnGround: true, CanDoubleJump: true}

	if !p.Jump() || p.VelY != -12 || p.OnGround || !p.IsJumping {
		t.Fatalf("ground jump failed %+v", p)
	}

	p.VelY = -3
	if !p.Jump() || p.VelY != -10 || p.CanDoubleJump {
		t.Fatalf("first airborne jump should double jump %+v", p)
	}

	p.VelY = -2
	if p.Jump() || p.VelY != -2 {
		t.Fatalf("second airborne jump must be a no-op %+v", p)
	}

	p.Land()
	if !p.CanDoubleJump || !p.OnGround || p.IsJumping {
		t.Fatalf("landing must re-arm %+v", p)
	}
}

func TestClampHorizontal(t *testing.T) {
	w := ecs.NewWorld()
	addBounds(t, w, 800, 600)
	e, p := addTestPlayer(t, w, 790, 100)
	p.VelX = 5
	phys := NewPlayerPhysicsSystem()

	for frame := 0; frame < 30; frame++ {
		phys.Update(w)
		tr := transformOf(t, w, e)
		if tr.X < 0 || tr.X+30 > 800 {
			t.Fatalf("frame %d: player outside screen at x=%v", frame, tr.X)
		}
	}

	p.VelX = -8.5
	for frame := 0; frame < 120; frame++ {
		phys.Update(w)
		tr := transformOf(t, w, e)
		if tr.X < 0 || tr.X+30 > 800 {
			t.Fatalf("frame %d: player outside screen at x=%v", frame, tr.X)
		}
	}
	if got := transformOf(t, w, e).X; got != 0 {
		t.Fatalf("expected player pinned at left edge, got %v", got)
	}
}

func TestGroundRestingHeightMovingRight(t *testing.T) {
	w := ecs.NewWorld()
	addBounds(t, w, 800, 600)
	addPlatform(t, w, 0, 550, 800, 50)
	e, _ := addTestPlayer(t, w, 50, 300)
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())
	input.Right = true

	sched := ecs.NewScheduler(NewPlayerControllerSystem(), NewPlayerPhysicsSystem())
	for frame := 0; frame < 200; frame++ {
		sched.Update(w)
	}

	tr := transformOf(t, w, e)
	if tr.Y != 550-50 {
		t.Fatalf("expected resting y 500, got %v", tr.Y)
	}
	if tr.X != 800-30 {
		t.Fatalf("expected player clamped at right edge, got %v", tr.X)
	}
}

func TestLevelOneRestingHeight(t *testing.T) {
	lvl, err := levels.Load(1)
	if err != nil {
		t.Fatal(err)
	}
	w := ecs.NewWorld()
	player, err := entity.LoadLevelToWorld(w, lvl, component.LevelBounds{Width: 800, Height: 600})
	if err != nil {
		t.Fatal(err)
	}

	sched := NewGameplayScheduler(NewPowerUpEffects())
	for frame := 0; frame < 120; frame++ {
		sched.Update(w)
	}

	tr := transformOf(t, w, player)
	if tr.Y != 500 || tr.X != entity.SpawnX {
		t.Fatalf("expected player resting at (50, 500), got (%v, %v)", tr.X, tr.Y)
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !p.OnGround || p.VelY != 0 {
		t.Fatalf("expected grounded player, got %+v", p)
	}
	if ecs.Count(w, component.ResetRequestComponent.Kind()) != 0 || ecs.Count(w, component.LevelCompleteRequestComponent.Kind()) != 0 {
		t.Fatalf("resting on the ground must not emit requests")
	}
}
