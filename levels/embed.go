package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed *.json
var LevelsFS embed.FS

// MaxLevel is the highest selectable level number.
const MaxLevel = 4

// Dir is the on-disk directory whose level files take precedence over the
// embedded copies.
const Dir = "levels"

var (
	ErrLevelOutOfRange = errors.New("levels: level out of range")
	ErrInvalidLevel    = errors.New("levels: invalid level")
)

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
	Color  string  `json:"color,omitempty"`
}

type MovingPlatform struct {
	Rect
	MoveX    int     `json:"move_x"`
	MoveY    int     `json:"move_y"`
	Distance float64 `json:"distance"`
	Speed    float64 `json:"speed"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PowerUp struct {
	Point
	Kind string `json:"kind"`
}

// Level is one hand-authored stage. Definitions are immutable; the world is
// rebuilt from them on every reset.
type Level struct {
	Number          int              `json:"-"`
	Name            string           `json:"name"`
	Ground          Rect             `json:"ground"`
	Platforms       []Rect           `json:"platforms"`
	MovingPlatforms []MovingPlatform `json:"moving_platforms,omitempty"`
	Hazards         []Rect           `json:"hazards"`
	Coins           []Point          `json:"coins"`
	PowerUps        []PowerUp        `json:"power_ups,omitempty"`
	Finish          Point            `json:"finish"`
}

// TotalCoins is the number of coins placed in the level.
func (l *Level) TotalCoins() int {
	if l == nil {
		return 0
	}
	return len(l.Coins)
}

// FileName returns the file a level number is stored in.
func FileName(n int) string {
	return fmt.Sprintf("level_%d.json", n)
}

// Load reads level n, preferring levels/level_<n>.json on disk.
func Load(n int) (*Level, error) {
	if n < 1 || n > MaxLevel {
		return nil, fmt.Errorf("%w: %d not in 1..%d", ErrLevelOutOfRange, n, MaxLevel)
	}
	name := FileName(n)
	data, err := os.ReadFile(filepath.Join(Dir, name))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	lvl.Number = n
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate rejects boxes without area and moving platforms that cannot move.
func (l *Level) Validate() error {
	check := func(kind string, i int, r Rect) error {
		if r.Width <= 0 || r.Height <= 0 {
			return fmt.Errorf("%w: level %d %s[%d] has size %vx%v", ErrInvalidLevel, l.Number, kind, i, r.Width, r.Height)
		}
		return nil
	}
	if err := check("ground", 0, l.Ground); err != nil {
		return err
	}
	for i, r := range l.Platforms {
		if err := check("platforms", i, r); err != nil {
			return err
		}
	}
	for i, r := range l.Hazards {
		if err := check("hazards", i, r); err != nil {
			return err
		}
	}
	for i, mp := range l.MovingPlatforms {
		if err := check("moving_platforms", i, mp.Rect); err != nil {
			return err
		}
		if !unitAxis(mp.MoveX) || !unitAxis(mp.MoveY) || (mp.MoveX == 0 && mp.MoveY == 0) {
			return fmt.Errorf("%w: level %d moving_platforms[%d] axis (%d,%d)", ErrInvalidLevel, l.Number, i, mp.MoveX, mp.MoveY)
		}
		if mp.Distance <= 0 || mp.Speed <= 0 {
			return fmt.Errorf("%w: level %d moving_platforms[%d] distance %v speed %v", ErrInvalidLevel, l.Number, i, mp.Distance, mp.Speed)
		}
	}
	for i, p := range l.PowerUps {
		if p.Kind == "" {
			return fmt.Errorf("%w: level %d power_ups[%d] has no kind", ErrInvalidLevel, l.Number, i)
		}
	}
	return nil
}

func unitAxis(v int) bool {
	return v >= -1 && v <= 1
}
