package session

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/milk9111/speedrun/besttimes"
	"github.com/milk9111/speedrun/common"
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
	"github.com/milk9111/speedrun/ecs/entity"
	"github.com/milk9111/speedrun/ecs/system"
	"github.com/milk9111/speedrun/levels"
	"github.com/milk9111/speedrun/prefabs"
)

var (
	// ErrQuit is returned by Update when the player asks to leave the game.
	ErrQuit        = errors.New("session: quit")
	ErrNoNextLevel = errors.New("session: no next level")
	ErrNotPlaying  = errors.New("session: no level in progress")
)

type Phase int

const (
	PhaseMainMenu Phase = iota
	PhasePlaying
	PhaseLevelComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main_menu"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	}
	return "unknown"
}

// Input is one frame of player input. Left and Right are held state; the
// rest are edges for this frame. Click hit-tests the menu and overlay
// buttons for callers that drive a session without widgets.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Reset  bool
	Escape bool
	Quit   bool
	Click  *common.Vec
}

type Config struct {
	ScreenWidth  float64
	ScreenHeight float64
	TPS          int
	MaxLevel     int
}

func ConfigFromSpec(spec prefabs.GameSpec) Config {
	return Config{
		ScreenWidth:  float64(spec.ScreenWidth),
		ScreenHeight: float64(spec.ScreenHeight),
		TPS:          spec.TPS,
		MaxLevel:     levels.MaxLevel,
	}
}

// Session is the game state machine. It owns the world of the level in
// progress and rebuilds it from the level definition on every reset.
type Session struct {
	cfg       Config
	store     *besttimes.Store
	effects   *system.PowerUpEffects
	scheduler *ecs.Scheduler

	world  *ecs.World
	player ecs.Entity
	level  int
	phase  Phase
	timer  *Timer

	newRecord bool
	resets    int
}

func New(cfg Config, store *besttimes.Store) *Session {
	if cfg.MaxLevel <= 0 {
		cfg.MaxLevel = levels.MaxLevel
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	effects := system.NewPowerUpEffects()
	return &Session{
		cfg:       cfg,
		store:     store,
		effects:   effects,
		scheduler: system.NewGameplayScheduler(effects),
		level:     1,
		phase:     PhaseMainMenu,
		timer:     NewTimer(nil),
	}
}

// SetClock replaces the timer's clock.
func (s *Session) SetClock(now func() time.Time) {
	s.timer = NewTimer(now)
}

func (s *Session) Phase() Phase            { return s.phase }
func (s *Session) Level() int              { return s.level }
func (s *Session) World() *ecs.World       { return s.world }
func (s *Session) Player() ecs.Entity      { return s.player }
func (s *Session) Store() *besttimes.Store { return s.store }
func (s *Session) Config() Config          { return s.cfg }
func (s *Session) NewRecord() bool         { return s.newRecord }
func (s *Session) Elapsed() float64        { return s.timer.Elapsed() }
func (s *Session) Resets() int             { return s.resets }

// Update advances the session by one frame.
func (s *Session) Update(in Input) error {
	if in.Quit {
		return ErrQuit
	}

	switch s.phase {
	case PhaseMainMenu:
		if in.Escape {
			return ErrQuit
		}
		if in.Click == nil {
			return nil
		}
		for n := 1; n <= s.cfg.MaxLevel; n++ {
			if s.LevelButton(n).ContainsPoint(*in.Click) {
				return s.SelectLevel(n)
			}
		}

	case PhasePlaying:
		if in.Escape {
			s.Menu()
			return nil
		}
		if in.Reset {
			return s.reset()
		}
		return s.step(in)

	case PhaseLevelComplete:
		if in.Escape {
			s.Menu()
			return nil
		}
		if in.Click == nil {
			return nil
		}
		for _, opt := range s.Options() {
			if opt.Rect.ContainsPoint(*in.Click) {
				return s.Choose(opt.Action)
			}
		}
	}
	return nil
}

func (s *Session) step(in Input) error {
	if s.world == nil {
		return ErrNotPlaying
	}

	if input, ok := ecs.Get(s.world, s.player, component.InputComponent.Kind()); ok && input != nil {
		input.Left = in.Left
		input.Right = in.Right
		input.JumpPressed = in.Jump
	}

	s.scheduler.Update(s.world)

	if _, ok := ecs.First(s.world, component.LevelCompleteRequestComponent.Kind()); ok {
		s.complete()
		return nil
	}
	if e, ok := ecs.First(s.world, component.ResetRequestComponent.Kind()); ok {
		if req, ok := ecs.Get(s.world, e, component.ResetRequestComponent.Kind()); ok && req != nil {
			log.Printf("session: level %d reset (%s)", s.level, req.Reason)
		}
		return s.reset()
	}
	return nil
}

func (s *Session) complete() {
	elapsed := s.timer.Stop()
	s.phase = PhaseLevelComplete

	record, err := s.store.Record(s.level, elapsed)
	if err != nil {
		log.Printf("session: save best time: %v", err)
	}
	s.newRecord = record
}

// SelectLevel starts level n from scratch.
func (s *Session) SelectLevel(n int) error {
	if n < 1 || n > s.cfg.MaxLevel {
		return fmt.Errorf("session: select level %d: %w", n, levels.ErrLevelOutOfRange)
	}
	s.level = n
	return s.reset()
}

// Choose performs a level-complete action. Next fails at the last level.
func (s *Session) Choose(a Action) error {
	switch a {
	case ActionNext:
		if s.level >= s.cfg.MaxLevel {
			return ErrNoNextLevel
		}
		return s.SelectLevel(s.level + 1)
	case ActionRetry:
		return s.reset()
	case ActionMenu:
		s.Menu()
		return nil
	}
	return fmt.Errorf("session: unknown action %d", a)
}

// Menu abandons the current run without recording a time.
func (s *Session) Menu() {
	s.timer.Stop()
	s.phase = PhaseMainMenu
	s.newRecord = false
}

// Reload drops cached scripts and restarts a run in progress so edited
// level and prefab files take effect.
func (s *Session) Reload() error {
	s.effects.Invalidate()
	if s.phase != PhasePlaying {
		return nil
	}
	return s.reset()
}

// reset builds a fresh world for the current level and restarts the timer.
func (s *Session) reset() error {
	lvl, err := levels.Load(s.level)
	if err != nil {
		return fmt.Errorf("session: reset: %w", err)
	}

	world := ecs.NewWorld()
	player, err := entity.LoadLevelToWorld(world, lvl, component.LevelBounds{
		Width:  s.cfg.ScreenWidth,
		Height: s.cfg.ScreenHeight,
	})
	if err != nil {
		return fmt.Errorf("session: reset: %w", err)
	}

	s.world = world
	s.player = player
	s.phase = PhasePlaying
	s.newRecord = false
	s.resets++
	s.timer.Start()
	return nil
}
