package session

import "github.com/milk9111/speedrun/common"

const (
	buttonWidth  = 200
	buttonHeight = 50
)

type Action int

const (
	ActionNext Action = iota
	ActionRetry
	ActionMenu
)

func (a Action) String() string {
	switch a {
	case ActionNext:
		return "Next Level"
	case ActionRetry:
		return "Retry Level"
	case ActionMenu:
		return "Main Menu"
	}
	return "unknown"
}

// Option is a clickable level-complete button.
type Option struct {
	Action Action
	Rect   common.Rect
}

// LevelButton is the main-menu button for level n.
func (s *Session) LevelButton(n int) common.Rect {
	return common.Rect{
		X:      s.cfg.ScreenWidth/2 - 100,
		Y:      200 + 60*float64(n),
		Width:  buttonWidth,
		Height: buttonHeight,
	}
}

// Options lists the level-complete buttons available for the current level.
// Next is only offered below the last level.
func (s *Session) Options() []Option {
	cx := s.cfg.ScreenWidth / 2
	opts := make([]Option, 0, 3)
	if s.level < s.cfg.MaxLevel {
		opts = append(opts, Option{Action: ActionNext, Rect: common.Rect{X: cx - 210, Y: 350, Width: buttonWidth, Height: buttonHeight}})
	}
	opts = append(opts,
		Option{Action: ActionRetry, Rect: common.Rect{X: cx + 10, Y: 350, Width: buttonWidth, Height: buttonHeight}},
		Option{Action: ActionMenu, Rect: common.Rect{X: cx - 100, Y: 420, Width: buttonWidth, Height: buttonHeight}},
	)
	return opts
}
