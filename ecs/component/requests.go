package component

// Requests are one-shot entities emitted by systems and consumed by the
// session after the frame's systems have run. Systems only emit data; the
// session owns the world's lifecycle.

// LevelCompleteRequest is emitted when the player reaches the finish line.
type LevelCompleteRequest struct{}

var LevelCompleteRequestComponent = NewComponent[LevelCompleteRequest]()

type ResetReason string

const (
	ResetHazard    ResetReason = "hazard"
	ResetFellOff   ResetReason = "fell"
	ResetRequested ResetReason = "requested"
)

// ResetRequest asks for the current level to be rebuilt.
type ResetRequest struct {
	Reason ResetReason
}

var ResetRequestComponent = NewComponent[ResetRequest]()
