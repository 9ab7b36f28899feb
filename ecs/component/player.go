package component

import "github.com/milk9111/speedrun/common"

// Player is the kinematic body of the single controllable entity together
// with its jump state.
//
// Jump states: grounded-armed (OnGround), airborne with a double jump in hand
// (!OnGround && CanDoubleJump) and airborne-spent. Landing is the only way
// back to grounded-armed and re-arms CanDoubleJump.
type Player struct {
	MoveSpeed          float64
	JumpStrength       float64
	DoubleJumpStrength float64

	VelX float64
	VelY float64

	OnGround      bool
	IsJumping     bool
	CanDoubleJump bool
	FacingRight   bool
}

func (p *Player) Velocity() common.Vec {
	return common.Vec{X: p.VelX, Y: p.VelY}
}

// Jump applies a ground jump or the single air jump. It reports whether the
// vertical velocity changed.
func (p *Player) Jump() bool {
	switch {
	case p.OnGround && !p.IsJumping:
		p.VelY = -p.JumpStrength
		p.IsJumping = true
		p.OnGround = false
		return true
	case !p.OnGround && p.CanDoubleJump:
		p.VelY = -p.DoubleJumpStrength
		p.CanDoubleJump = false
		return true
	}
	return false
}

// Land records contact with a surface below.
func (p *Player) Land() {
	p.VelY = 0
	p.OnGround = true
	p.IsJumping = false
	p.CanDoubleJump = true
}

var PlayerComponent = NewComponent[Player]()

// Gravity is a constant per-frame downward acceleration.
type Gravity struct {
	Accel float64
}

var GravityComponent = NewComponent[Gravity]()
