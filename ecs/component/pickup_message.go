package component

// PickupMessage is the transient on-screen notice shown after a power-up.
type PickupMessage struct {
	Text   string
	Frames int
}

var PickupMessageComponent = NewComponent[PickupMessage]()
