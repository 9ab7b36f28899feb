package entity

import (
	"testing"

	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
	"github.com/milk9111/speedrun/levels"
)

func TestNewPlayerAt(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayerAt(w, 50, 300)
	if err != nil {
		t.Fatalf("NewPlayerAt: %v", err)
	}

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || tr.X != 50 || tr.Y != 300 {
		t.Fatalf("unexpected transform %+v", tr)
	}
	col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok || col.Width != 30 || col.Height != 50 {
		t.Fatalf("unexpected collider %+v", col)
	}
	p, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		t.Fatalf("expected player component")
	}
	if p.MoveSpeed != 5 || p.JumpStrength != 12 || p.DoubleJumpStrength != 10 {
		t.Fatalf("unexpected player tuning %+v", p)
	}
	if p.OnGround || p.IsJumping || !p.CanDoubleJump || !p.FacingRight {
		t.Fatalf("unexpected initial jump state %+v", p)
	}
	boost, ok := ecs.Get(w, e, component.SpeedBoostComponent.Kind())
	if !ok || boost.Active || boost.DurationFrames != 300 || boost.Multiplier != 1.7 {
		t.Fatalf("unexpected speed boost %+v", boost)
	}
	trail, ok := ecs.Get(w, e, component.TrailComponent.Kind())
	if !ok || trail.Color.R != 100 || trail.Color.G != 200 || trail.Color.B != 255 {
		t.Fatalf("unexpected trail %+v", trail)
	}
	for name, has := range map[string]bool{
		"tag":       ecs.Has(w, e, component.PlayerTagComponent.Kind()),
		"input":     ecs.Has(w, e, component.InputComponent.Kind()),
		"gravity":   ecs.Has(w, e, component.GravityComponent.Kind()),
		"animation": ecs.Has(w, e, component.AnimationComponent.Kind()),
	} {
		if !has {
			t.Fatalf("player missing %s", name)
		}
	}
}

func TestBuildEntityMissingPrefab(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := BuildEntity(w, "does_not_exist.yaml"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
	if len(ecs.Entities(w)) != 0 {
		t.Fatalf("failed build must not leave entities behind")
	}
	if _, err := BuildEntity(nil, "player.yaml"); err == nil {
		t.Fatalf("expected error for nil world")
	}
}

func TestNewPowerUpAt(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPowerUpAt(w, 350, 220, " Speed ")
	if err != nil {
		t.Fatalf("NewPowerUpAt: %v", err)
	}
	p, _ := ecs.Get(w, e, component.PowerUpComponent.Kind())
	if p.Kind != "speed" || p.BaseY != 220 || !p.Initialized || p.HoverDir != 1 {
		t.Fatalf("unexpected power-up %+v", p)
	}
	col, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
	if col.Width != 20 || col.Height != 20 {
		t.Fatalf("unexpected collider %+v", col)
	}
}

func TestLoadLevelToWorld(t *testing.T) {
	cases := []struct {
		level     int
		platforms int
		moving    int
		hazards   int
		coins     int
		powerUps  int
	}{
		{1, 7, 0, 3, 5, 0},
		{2, 10, 0, 6, 8, 1},
		{3, 13, 1, 7, 10, 2},
		{4, 13, 4, 9, 9, 3},
	}
	for _, c := range cases {
		t.Run(levels.FileName(c.level), func(t *testing.T) {
			lvl, err := levels.Load(c.level)
			if err != nil {
				t.Fatal(err)
			}
			w := ecs.NewWorld()
			player, err := LoadLevelToWorld(w, lvl, component.LevelBounds{Width: 800, Height: 600})
			if err != nil {
				t.Fatalf("LoadLevelToWorld: %v", err)
			}

			if got := ecs.Count(w, component.PlatformComponent.Kind()); got != c.platforms {
				t.Fatalf("expected %d platforms, got %d", c.platforms, got)
			}
			moving := 0
			ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
				if p.Kind == component.PlatformMoving {
					moving++
				}
			})
			if moving != c.moving {
				t.Fatalf("expected %d moving platforms, got %d", c.moving, moving)
			}
			if got := ecs.Count(w, component.HazardComponent.Kind()); got != c.hazards {
				t.Fatalf("expected %d hazards, got %d", c.hazards, got)
			}
			if got := ecs.Count(w, component.CoinComponent.Kind()); got != c.coins {
				t.Fatalf("expected %d coins, got %d", c.coins, got)
			}
			if got := ecs.Count(w, component.PowerUpComponent.Kind()); got != c.powerUps {
				t.Fatalf("expected %d power-ups, got %d", c.powerUps, got)
			}
			if got := ecs.Count(w, component.FinishLineComponent.Kind()); got != 1 {
				t.Fatalf("expected one finish line, got %d", got)
			}
			if got := ecs.Count(w, component.GroundTagComponent.Kind()); got != 1 {
				t.Fatalf("expected one ground, got %d", got)
			}

			ce, ok := ecs.First(w, component.CoinCounterComponent.Kind())
			if !ok {
				t.Fatalf("expected coin counter")
			}
			counter, _ := ecs.Get(w, ce, component.CoinCounterComponent.Kind())
			if counter.Collected != 0 || counter.Total != c.coins {
				t.Fatalf("unexpected counter %+v", counter)
			}

			if first, ok := ecs.First(w, component.PlayerTagComponent.Kind()); !ok || first != player {
				t.Fatalf("expected returned player to be the tagged player")
			}
			tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
			if tr.X != SpawnX || tr.Y != SpawnY {
				t.Fatalf("unexpected spawn %+v", tr)
			}
		})
	}
}

func TestMovingPlatformOscillationSeed(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewMovingPlatform(w, levels.MovingPlatform{
		Rect:  levels.Rect{X: 450, Y: 350, Width: 80, Height: 20},
		MoveX: 1, Distance: 100, Speed: 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	p, _ := ecs.Get(w, e, component.PlatformComponent.Kind())
	if p.Kind != component.PlatformMoving || p.Motion.Direction != 1 || p.Motion.Start.X != 450 || p.Motion.Start.Y != 350 {
		t.Fatalf("unexpected platform %+v", p)
	}
	if p.Color.R != 128 || p.Color.G != 0 || p.Color.B != 128 {
		t.Fatalf("expected purple default, got %+v", p.Color)
	}
}
