package component

// Transform is the top-left position of an entity in screen space.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
