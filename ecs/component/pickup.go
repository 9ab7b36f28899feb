package component

// Coin is a collectible removed on contact.
type Coin struct{}

var CoinComponent = NewComponent[Coin]()

// PowerUp hovers around BaseY and applies the effect registered for Kind
// when collected.
type PowerUp struct {
	Kind        string
	BaseY       float64
	HoverOffset float64
	HoverDir    float64
	HoverTimer  int
	Initialized bool
}

var PowerUpComponent = NewComponent[PowerUp]()

// FinishLine ends the level on contact. ArrowOffset animates the marker
// drawn above it.
type FinishLine struct {
	ArrowOffset float64
	ArrowDir    float64
}

var FinishLineComponent = NewComponent[FinishLine]()
