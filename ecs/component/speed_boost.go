package component

// SpeedBoost is the timed horizontal speed modifier granted by a speed
// power-up.
type SpeedBoost struct {
	Active          bool
	RemainingFrames int
	DurationFrames  int
	Multiplier      float64
}

// Activate starts the boost, or restarts the countdown if already running.
func (s *SpeedBoost) Activate() {
	s.Active = true
	s.RemainingFrames = s.DurationFrames
}

// Speed returns the effective horizontal speed for a base speed.
func (s *SpeedBoost) Speed(base float64) float64 {
	if s == nil || !s.Active {
		return base
	}
	return base * s.Multiplier
}

// RemainingSeconds is the whole seconds left at the given tick rate.
func (s *SpeedBoost) RemainingSeconds(tps int) int {
	if s == nil || !s.Active || tps <= 0 {
		return 0
	}
	return s.RemainingFrames / tps
}

var SpeedBoostComponent = NewComponent[SpeedBoost]()
