package session

import (
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
)

// HUD is the text state the renderer shows for the level in progress.
type HUD struct {
	Level        int
	Elapsed      float64
	Best         float64
	Collected    int
	TotalCoins   int
	BoostActive  bool
	BoostSeconds int
	Message      string
	NewRecord    bool
}

func (s *Session) HUD() HUD {
	h := HUD{
		Level:     s.level,
		Elapsed:   s.timer.Elapsed(),
		Best:      s.store.Best(s.level),
		NewRecord: s.newRecord,
	}
	if s.world == nil {
		return h
	}

	if e, ok := ecs.First(s.world, component.CoinCounterComponent.Kind()); ok {
		if c, ok := ecs.Get(s.world, e, component.CoinCounterComponent.Kind()); ok && c != nil {
			h.Collected, h.TotalCoins = c.Collected, c.Total
		}
	}
	if boost, ok := ecs.Get(s.world, s.player, component.SpeedBoostComponent.Kind()); ok && boost.Active {
		h.BoostActive = true
		h.BoostSeconds = boost.RemainingSeconds(s.cfg.TPS)
	}
	if e, ok := ecs.First(s.world, component.PickupMessageComponent.Kind()); ok {
		if m, ok := ecs.Get(s.world, e, component.PickupMessageComponent.Kind()); ok && m != nil && m.Frames > 0 {
			h.Message = m.Text
		}
	}
	return h
}
