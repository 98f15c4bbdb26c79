package geom

import "github.com/jakecoffman/cp"

// Shape is any collidable region. Bodies only resolve movement against
// *HitBox shapes.
type Shape interface {
	BB() cp.BB
}

// HitBox is an axis-aligned box positioned relative to an optional followed
// transform. When Direction is -1 the box is mirrored around the transform.
type HitBox struct {
	OffsetX, OffsetY float64
	W, H             float64

	direction int
	transform *Transform
}

func NewHitBox(offsetX, offsetY, w, h float64) *HitBox {
	return &HitBox{OffsetX: offsetX, OffsetY: offsetY, W: w, H: h, direction: 1}
}

// Clone returns a detached copy with the same offsets, size, and direction.
func (b *HitBox) Clone() *HitBox {
	if b == nil {
		return nil
	}
	c := *b
	c.transform = nil
	return &c
}

func (b *HitBox) Direction() int {
	if b == nil || b.direction == 0 {
		return 1
	}
	return b.direction
}

func (b *HitBox) SetDirection(dir int) {
	if b == nil {
		return
	}
	if dir < 0 {
		b.direction = -1
	} else {
		b.direction = 1
	}
}

// Follow attaches the box to t. Passing nil detaches it.
func (b *HitBox) Follow(t *Transform) *HitBox {
	if b == nil {
		return nil
	}
	b.transform = t
	return b
}

func (b *HitBox) Following() *Transform {
	if b == nil {
		return nil
	}
	return b.transform
}

func (b *HitBox) X() float64 {
	displacement := b.OffsetX
	if b.Direction() != 1 {
		displacement = -(b.OffsetX + b.W)
	}
	if b.transform != nil {
		return b.transform.Position.X + displacement
	}
	return displacement
}

func (b *HitBox) Y() float64 {
	if b.transform != nil {
		return b.transform.Position.Y + b.OffsetY
	}
	return b.OffsetY
}

func (b *HitBox) XW() float64 { return b.X() + b.W }
func (b *HitBox) YH() float64 { return b.Y() + b.H }

// BB returns the box bounds in chipmunk form (Y-up: B is the bottom edge).
func (b *HitBox) BB() cp.BB {
	x, y := b.X(), b.Y()
	return cp.BB{L: x, B: y, R: x + b.W, T: y + b.H}
}

// Overlaps reports whether the open interiors of both boxes intersect.
// Touching edges do not overlap.
func (b *HitBox) Overlaps(other *HitBox) bool {
	if b == nil || other == nil {
		return false
	}
	return b.X() < other.XW() && other.X() < b.XW() &&
		b.Y() < other.YH() && other.Y() < b.YH()
}

// Contains reports whether p lies strictly inside the box.
func (b *HitBox) Contains(p Vec) bool {
	if b == nil {
		return false
	}
	return p.X > b.X() && p.X < b.XW() && p.Y > b.Y() && p.Y < b.YH()
}
