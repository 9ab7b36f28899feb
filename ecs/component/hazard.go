package component

// Hazard marks a box that resets the level when the player overlaps it.
type Hazard struct{}

var HazardComponent = NewComponent[Hazard]()
