package component

// CoinCounter tracks coins collected out of the level total.
type CoinCounter struct {
	Collected int
	Total     int
}

var CoinCounterComponent = NewComponent[CoinCounter]()
