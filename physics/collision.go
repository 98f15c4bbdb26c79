package physics

// CheckFallCollision grounds the body on the first floor under its center
// that it reached this tick, fires land / fall transitions, and records any
// floor-side wall the body now overlaps.
//
// Resting exactly on a floor's top counts as grounded; a body that crossed
// the top from above is snapped onto it.
func (b *Body) CheckFallCollision() {
	if b == nil {
		return
	}
	wasGrounded := b.grounded
	grounded := false
	landingSpeed := b.velocity.Y

	if b.terrain != nil && !b.jumping {
		cx := b.CenterX()
		for _, floor := range b.terrain.Floors() {
			if floor.FallThrough && b.IgnorePlatforms {
				continue
			}
			y := b.Y()
			top := floor.YH()
			if cx > floor.X && cx < floor.XW() {
				if b.prevY >= top && y <= top {
					if y < top {
						b.setY(top)
					}
					grounded = true
					break
				}
				continue
			}
			if floor.FallThrough || y < floor.Y || y > top {
				continue
			}
			if floor.HasWallLeft && b.XW() > floor.X && b.XW() < floor.XW() {
				b.overlappingWall = floor.WallLeft()
			} else if floor.HasWallRight && b.X() > floor.X && b.X() < floor.XW() {
				b.overlappingWall = floor.WallRight()
			}
		}
	}

	b.grounded = grounded
	if grounded {
		b.velocity.Y = 0
		b.wallHanging = false
	}
	b.prevY = b.Y()

	switch {
	case grounded && !wasGrounded:
		if landingSpeed < -b.Tuning.PerTick(b.Tuning.HardLandingThreshold) {
			b.emit(func(s EventSink) { s.OnHardLand() })
		} else {
			b.emit(func(s EventSink) { s.OnLand() })
		}
	case wasGrounded && !grounded:
		b.emit(func(s EventSink) { s.OnFallStart() })
	}
}

// CheckHorizontalCollision stops the body flush against the first wall its
// leading edge crossed since the last horizontal resolution.
func (b *Body) CheckHorizontalCollision() {
	if b == nil {
		return
	}
	dx := b.X() - b.prevX
	b.collidingWall = nil

	if b.terrain != nil {
		switch {
		case dx > 0:
			for _, w := range b.terrain.WallsLeft() {
				if w.CheckCollision(b.prevX+b.box.W, b.XW(), b.Y(), b.box.H) {
					b.setX(w.X - b.box.W)
					b.velocity.X = min(b.velocity.X, 0)
					b.collidingWall = w
					break
				}
			}
		case dx < 0:
			for _, w := range b.terrain.WallsRight() {
				if w.CheckCollision(b.prevX, b.X(), b.Y(), b.box.H) {
					b.setX(w.X)
					b.velocity.X = max(b.velocity.X, 0)
					b.collidingWall = w
					break
				}
			}
		}
	}

	b.prevX = b.X()
}
