package component

// LevelBounds is the playfield size. The player is clamped horizontally to
// [0, Width] and falls out of the level below Height.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
