package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is an entity prefab: a name and a map of component name to
// component spec, decoded lazily by the entity builders.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerComponentSpec struct {
	MoveSpeed          float64 `yaml:"move_speed"`
	JumpStrength       float64 `yaml:"jump_strength"`
	DoubleJumpStrength float64 `yaml:"double_jump_strength"`
	FacingRight        bool    `yaml:"facing_right"`
	CanDoubleJump      bool    `yaml:"can_double_jump"`
}

type GravityComponentSpec struct {
	Accel float64 `yaml:"accel"`
}

type SpeedBoostComponentSpec struct {
	Multiplier     float64 `yaml:"multiplier"`
	DurationFrames int     `yaml:"duration_frames"`
}

type TrailComponentSpec struct {
	Interval        int    `yaml:"interval"`
	BoostedInterval int    `yaml:"boosted_interval"`
	Lifetime        int    `yaml:"lifetime"`
	Color           string `yaml:"color"`
	BoostedColor    string `yaml:"boosted_color"`
}

type AnimationComponentSpec struct {
	FrameCount      int `yaml:"frame_count"`
	Interval        int `yaml:"interval"`
	BoostedInterval int `yaml:"boosted_interval"`
}

type PowerUpComponentSpec struct {
	Kind string `yaml:"kind"`
}

type FinishLineComponentSpec struct {
	ArrowDir float64 `yaml:"arrow_dir"`
}
