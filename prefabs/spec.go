package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec is the window and loop tuning read from game.yaml.
type GameSpec struct {
	Title         string `yaml:"title"`
	ScreenWidth   int    `yaml:"screen_width"`
	ScreenHeight  int    `yaml:"screen_height"`
	TPS           int    `yaml:"tps"`
	BestTimesPath string `yaml:"best_times_path"`
	StarCount     int    `yaml:"star_count"`
	StarSeed      int64  `yaml:"star_seed"`
}

var ErrInvalidGameSpec = errors.New("prefabs: invalid game spec")

func (g GameSpec) Validate() error {
	if g.ScreenWidth <= 0 || g.ScreenHeight <= 0 {
		return fmt.Errorf("%w: screen %dx%d", ErrInvalidGameSpec, g.ScreenWidth, g.ScreenHeight)
	}
	if g.TPS <= 0 {
		return fmt.Errorf("%w: tps %d", ErrInvalidGameSpec, g.TPS)
	}
	if g.BestTimesPath == "" {
		return fmt.Errorf("%w: best_times_path is empty", ErrInvalidGameSpec)
	}
	return nil
}

func LoadGameSpec() (GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return GameSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return GameSpec{}, err
	}
	return spec, nil
}
