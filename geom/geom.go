package geom

import "github.com/jakecoffman/cp"

// Vec is the 2D vector used throughout the core. It is the chipmunk vector so
// bounds can be handed straight to cp.BB helpers.
type Vec = cp.Vector

// Side identifies which face of a tile a wall belongs to. Its value is also
// the direction that points away from the wall.
type Side int

const (
	SideLeft  Side = -1
	SideRight Side = 1
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Transform is the externally owned position a body, its attack shapes, and
// its sprite all follow.
type Transform struct {
	Position Vec
}

func NewTransform(x, y float64) *Transform {
	return &Transform{Position: Vec{X: x, Y: y}}
}
