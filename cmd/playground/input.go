package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/charactercore/character"
)

const stickDeadzone = 0.3

// readIntent polls keyboard and the first gamepad.
func readIntent() character.Intent {
	var in character.Intent

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.MoveX += 1
	}

	in.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.JumpReleased = inpututil.IsKeyJustReleased(ebiten.KeySpace)
	in.CrouchPressed = inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyDown)
	in.CrouchReleased = inpututil.IsKeyJustReleased(ebiten.KeyS) || inpututil.IsKeyJustReleased(ebiten.KeyDown)
	in.AttackPressed = inpututil.IsKeyJustPressed(ebiten.KeyJ)
	in.DodgeHeld = ebiten.IsKeyPressed(ebiten.KeyK) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft)

	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return in
	}
	gid := ids[0]

	leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if leftX < -stickDeadzone {
		in.MoveX = -1
	} else if leftX > stickDeadzone {
		in.MoveX = 1
	}
	in.JumpPressed = in.JumpPressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	in.JumpReleased = in.JumpReleased || inpututil.IsStandardGamepadButtonJustReleased(gid, ebiten.StandardGamepadButtonRightBottom)
	in.AttackPressed = in.AttackPressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
	in.DodgeHeld = in.DodgeHeld || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
	return in
}
