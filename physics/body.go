package physics

import (
	"log"
	"math"

	"github.com/milk9111/charactercore/common"
	"github.com/milk9111/charactercore/geom"
	"github.com/milk9111/charactercore/terrain"
)

// Terrain is the collision surface a body resolves against.
type Terrain interface {
	Floors() []*terrain.Tile
	Ceilings() []*terrain.Tile
	WallsLeft() []*geom.Wall
	WallsRight() []*geom.Wall
}

// Body is a kinematic walker: it integrates walk acceleration, jump arcs,
// gravity, and wall-hang each tick and resolves the result against axis
// aligned terrain. Velocity is in distance per tick.
//
// Shape and flags are read at use, never cached across a tick, so an action
// step that swaps the shape mid-tick is seen by the rest of the update.
type Body struct {
	Tuning Tuning

	AllowMovement   bool
	Paused          bool
	IgnorePlatforms bool
	// Flipped mirrors the collision box around the transform.
	Flipped bool

	Logger *log.Logger

	transform *geom.Transform
	box       *geom.HitBox
	terrain   Terrain
	listener  EventSink

	grounded    bool
	jumping     bool
	wallHanging bool
	velocity    geom.Vec
	inputX      float64

	prevX, prevY float64

	jumpElapsed  int
	jumpInitialY float64

	collidingWall   *geom.Wall
	overlappingWall *geom.Wall
}

// NewBody creates a body positioned by transform. A nil transform gets a
// private one at the origin.
func NewBody(transform *geom.Transform, tuning Tuning) *Body {
	if transform == nil {
		transform = geom.NewTransform(0, 0)
	}
	b := &Body{
		Tuning:        tuning,
		AllowMovement: true,
		transform:     transform,
		box:           geom.NewHitBox(0, 0, 1, 1),
	}
	b.prevX = b.X()
	b.prevY = b.Y()
	return b
}

// Listen registers the sink notified of transitions and returns the body.
func (b *Body) Listen(listener EventSink) *Body {
	if b == nil {
		return nil
	}
	b.listener = listener
	return b
}

func (b *Body) SetTerrain(t Terrain) {
	if b == nil {
		return
	}
	b.terrain = t
}

func (b *Body) Terrain() Terrain {
	if b == nil {
		return nil
	}
	return b.terrain
}

func (b *Body) Transform() *geom.Transform {
	if b == nil {
		return nil
	}
	return b.transform
}

// SetShape swaps the collision box. Only *geom.HitBox shapes are supported;
// anything else is reported and ignored. A nil shape keeps the current box.
func (b *Body) SetShape(shape geom.Shape) {
	if b == nil || shape == nil {
		return
	}
	box, ok := shape.(*geom.HitBox)
	if !ok || box == nil {
		b.logf("physics: tried to set body shape to %T, want *geom.HitBox", shape)
		return
	}
	b.box = box
}

func (b *Body) Shape() *geom.HitBox {
	if b == nil {
		return nil
	}
	return b.box
}

func (b *Body) Grounded() bool    { return b.grounded }
func (b *Body) Jumping() bool     { return b.jumping }
func (b *Body) WallHanging() bool { return b.wallHanging }
func (b *Body) Velocity() geom.Vec {
	return b.velocity
}
func (b *Body) Input() float64 { return b.inputX }

// CollidingWall is the wall hit by the last horizontal resolution, if any.
func (b *Body) CollidingWall() *geom.Wall { return b.collidingWall }

// OverlappingWall is the wall being compensated away from, if any.
func (b *Body) OverlappingWall() *geom.Wall { return b.overlappingWall }

func (b *Body) direction() float64 {
	if b.Flipped {
		return -1
	}
	return 1
}

func (b *Body) offsetHorizontal() float64 {
	return b.box.OffsetX*b.direction() - b.box.W/2
}

// X is the left edge of the collision box.
func (b *Body) X() float64 {
	return b.transform.Position.X + b.offsetHorizontal()
}

// Y is the bottom edge of the collision box.
func (b *Body) Y() float64 {
	return b.transform.Position.Y + b.box.OffsetY
}

func (b *Body) XW() float64      { return b.X() + b.box.W }
func (b *Body) YH() float64      { return b.Y() + b.box.H }
func (b *Body) CenterX() float64 { return b.X() + b.box.W/2 }

func (b *Body) setX(x float64) {
	b.transform.Position.X = x - b.offsetHorizontal()
}

func (b *Body) setY(y float64) {
	b.transform.Position.Y = y - b.box.OffsetY
}

// Walk sets the horizontal input intent, clamped to [-1, 1].
func (b *Body) Walk(input float64) {
	if b == nil {
		return
	}
	if math.IsNaN(input) {
		b.logf("physics: ignoring NaN walk input")
		return
	}
	b.inputX = common.Clamp(input, -1, 1)
}

// SetVelocityX overrides the horizontal velocity, in distance per tick.
func (b *Body) SetVelocityX(x float64) {
	if b == nil {
		return
	}
	b.velocity.X = x
}

// Jump starts a jump arc from the ground, or a wall jump while hanging that
// also launches the body away from the wall.
func (b *Body) Jump() {
	if b == nil {
		return
	}
	switch {
	case b.grounded:
		b.startJump()
	case b.wallHanging && b.collidingWall != nil:
		side := float64(b.collidingWall.Side)
		b.startJump()
		b.velocity.X = b.Tuning.PerTick(b.Tuning.WallJumpHorizontalSpeed) * side
	}
}

func (b *Body) startJump() {
	b.jumping = true
	b.grounded = false
	b.wallHanging = false
	b.jumpInitialY = b.Y()
	b.jumpElapsed = 0
}

// StopJump cuts a jump short. It fires the same transition as a natural end.
func (b *Body) StopJump() {
	if b == nil || !b.jumping {
		return
	}
	b.jumping = false
	b.emitJumpEnd()
}

// Displace nudges the body once and re-checks the collisions the move could
// have caused.
func (b *Body) Displace(dx, dy float64) {
	if b == nil {
		return
	}
	b.setX(b.X() + dx)
	b.setY(b.Y() + dy)
	if dy < 0 {
		b.CheckFallCollision()
	}
	if dx != 0 {
		b.CheckHorizontalCollision()
	}
}

// CheckCollision runs both resolution passes on demand.
func (b *Body) CheckCollision() {
	if b == nil {
		return
	}
	b.CheckHorizontalCollision()
	b.CheckFallCollision()
}

// Update advances the body one tick.
func (b *Body) Update() {
	if b == nil || b.Paused {
		return
	}

	b.prevX = b.X()
	b.prevY = b.Y()

	if b.jumping {
		b.updateJump()
	} else if !b.grounded {
		b.updateAirborneVertical()
		b.setY(b.Y() + b.velocity.Y)
	}

	if b.grounded {
		b.updateGroundedHorizontal()
	} else {
		b.updateAirborneHorizontal()
	}
	b.setX(b.X() + b.velocity.X)

	b.CheckFallCollision()
	b.CheckHorizontalCollision()
	b.compensateOverlap()
}

func (b *Body) updateJump() {
	b.grounded = false
	t := b.Tuning
	total := t.JumpTicks()
	progress := 1.0
	if total > 0 {
		progress = float64(b.jumpElapsed) / total
	}
	b.setY(b.jumpInitialY + t.JumpHeight*math.Sqrt(1-math.Pow(1-progress, t.JumpSharpness)))
	b.jumpElapsed++

	hitCeiling := b.checkCeiling()
	if hitCeiling || float64(b.jumpElapsed) >= total {
		b.velocity.Y = 0
		b.jumping = false
		b.emitJumpEnd()
		return
	}
	b.velocity.Y = b.Y() - b.prevY
}

// checkCeiling snaps the body under the first ceiling it rose into this tick.
func (b *Body) checkCeiling() bool {
	if b.terrain == nil {
		return false
	}
	x, xw, h := b.X(), b.XW(), b.box.H
	for _, c := range b.terrain.Ceilings() {
		spans := (x > c.X && x < c.XW()) || (xw > c.X && xw < c.XW()) || (x <= c.X && xw >= c.XW())
		if !spans {
			continue
		}
		if b.prevY+h < c.Y && b.YH() >= c.Y {
			b.setY(c.Y - h)
			return true
		}
	}
	return false
}

func (b *Body) updateAirborneVertical() {
	t := b.Tuning
	if b.canWallHang() {
		if !b.wallHanging {
			b.wallHanging = true
			b.emit(func(s EventSink) { s.OnWallSlideStart() })
		}
		if b.velocity.Y > 0 {
			b.velocity.Y = math.Max(0, b.velocity.Y-t.PerTickSquared(t.WallHangDeceleration))
		} else {
			b.velocity.Y = math.Max(-t.PerTick(t.WallHangFallSpeedMax), b.velocity.Y-t.PerTickSquared(t.WallHangFallAcceleration))
		}
		return
	}
	b.wallHanging = false
	b.velocity.Y -= t.PerTickSquared(t.GravityAcceleration)
}

// canWallHang reports whether the body is pressing away-from-open-air into
// the wall it last collided with and the hang probe band sits fully inside
// that wall's span.
func (b *Body) canWallHang() bool {
	w := b.collidingWall
	if b.inputX == 0 || w == nil {
		return false
	}
	if common.Sign(b.inputX) != -float64(w.Side) {
		return false
	}
	t := b.Tuning
	probe := b.Y() + t.WallHangOffset
	return t.WallHangSize < w.Height && probe > w.Y && probe+t.WallHangSize < w.YH()
}

func (b *Body) accelerate(rate float64) {
	max := b.Tuning.MaxSpeed()
	b.velocity.X = common.Clamp(b.velocity.X+rate*b.inputX, -max, max)
}

// bleedOverflow slows a body moving faster than max speed without letting it
// drop below max speed.
func (b *Body) bleedOverflow(rate float64) {
	max := b.Tuning.MaxSpeed()
	sign := common.Sign(b.velocity.X)
	b.velocity.X -= rate * sign * math.Abs(b.inputX)
	if math.Abs(b.velocity.X) < max {
		b.velocity.X = max * sign
	}
}

// decelerate moves velocity toward zero and snaps to zero instead of
// overshooting.
func (b *Body) decelerate(rate float64) {
	if b.velocity.X == 0 {
		return
	}
	sign := common.Sign(b.velocity.X)
	b.velocity.X -= rate * sign
	if b.velocity.X == 0 || common.Sign(b.velocity.X) != sign {
		b.velocity.X = 0
	}
}

func (b *Body) steer(accel, counter, overflow float64) {
	max := b.Tuning.MaxSpeed()
	switch {
	case b.velocity.X == 0:
		b.accelerate(accel)
	case common.Sign(b.inputX) == common.Sign(b.velocity.X):
		if math.Abs(b.velocity.X) > max {
			b.bleedOverflow(overflow)
		} else {
			b.accelerate(accel)
		}
	default:
		b.velocity.X += counter * b.inputX
	}
}

func (b *Body) updateGroundedHorizontal() {
	t := b.Tuning
	if b.inputX != 0 && b.AllowMovement {
		b.steer(t.rate(t.WalkAccelerationTime), t.rate(t.WalkDecelerationTime), t.rate(t.WalkOverflowDecelerationTime))
		return
	}
	b.decelerate(t.rate(t.WalkDecelerationTime))
}

func (b *Body) updateAirborneHorizontal() {
	t := b.Tuning
	passive := t.rate(t.AirPassiveDecelerationTime)

	if w := b.overlappingWall; w != nil && b.velocity.X != 0 && common.Sign(b.velocity.X) != float64(w.Side) {
		b.velocity.X = 0
		return
	}
	if b.inputX != 0 && b.AllowMovement {
		b.steer(t.rate(t.AirAccelerationTime), t.rate(t.AirDecelerationTime), passive)
		return
	}
	b.decelerate(passive)
}

// compensateOverlap pushes the body out of a wall it ended up inside after
// vertical resolution, never past flush with the wall.
func (b *Body) compensateOverlap() {
	w := b.overlappingWall
	if w == nil {
		return
	}
	if b.YH() < w.Y || b.Y() > w.YH() {
		b.overlappingWall = nil
		return
	}
	step := b.Tuning.PerTick(b.Tuning.CompensationRate)
	if w.Side == geom.SideLeft {
		if b.XW() <= w.X {
			b.overlappingWall = nil
			return
		}
		if b.inputX >= 0 {
			x := b.X() - step
			if x <= w.X-b.box.W {
				x = w.X - b.box.W
				b.overlappingWall = nil
			}
			b.setX(x)
		}
	} else {
		if b.X() >= w.X {
			b.overlappingWall = nil
			return
		}
		if b.inputX <= 0 {
			x := b.X() + step
			if x >= w.X {
				x = w.X
				b.overlappingWall = nil
			}
			b.setX(x)
		}
	}
	b.prevX = b.X()
}

func (b *Body) emit(fn func(EventSink)) {
	if b.listener == nil {
		return
	}
	fn(b.listener)
}

func (b *Body) emitJumpEnd() {
	b.emit(func(s EventSink) {
		s.OnJumpEnd()
		s.OnFallStart()
	})
}

func (b *Body) logf(format string, args ...any) {
	if b.Logger != nil {
		b.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
