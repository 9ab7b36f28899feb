package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/speedrun/session"
)

// pollInput reads the keyboard and first gamepad for one frame. Movement is
// held state; everything else is an edge. Mouse clicks go to the menu
// widgets instead.
func pollInput() session.Input {
	in := session.Input{
		Left:   ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:  ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Reset:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		Escape: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Quit:   ebiten.IsWindowBeingClosed(),
	}

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		const stickDeadzone = 0.3
		id := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		in.Left = in.Left || leftX < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		in.Right = in.Right || leftX > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		in.Jump = in.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Reset = in.Reset || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
		in.Escape = in.Escape || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	return in
}

func copyPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyC)
}
