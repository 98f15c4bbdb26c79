package geom

import (
	"fmt"

	"github.com/milk9111/charactercore/common"
)

// Wall is a vertical collision edge at X spanning [Y, Y+Height].
type Wall struct {
	X, Y, Height float64
	Side         Side
}

func NewWall(x, y, height float64, side Side) *Wall {
	return &Wall{X: x, Y: y, Height: height, Side: side}
}

func (w *Wall) YH() float64 { return w.Y + w.Height }

// CheckCollision reports whether an edge moving from prevX to targetX crosses
// the wall while the mover's vertical span [targetY, targetY+targetH]
// overlaps the wall's span. Left walls are crossed moving right, right walls
// moving left.
func (w *Wall) CheckCollision(prevX, targetX, targetY, targetH float64) bool {
	if w == nil {
		return false
	}
	var crossed bool
	if w.Side == SideLeft {
		crossed = prevX <= w.X+common.ErrorMargin && targetX >= w.X-common.ErrorMargin
	} else {
		crossed = prevX >= w.X-common.ErrorMargin && targetX <= w.X+common.ErrorMargin
	}
	if !crossed {
		return false
	}
	return targetY < w.YH() && targetY+targetH > w.Y
}

func (w *Wall) String() string {
	return fmt.Sprintf("(%g,%g,%g,%s)", w.X, w.Y, w.Height, w.Side)
}
