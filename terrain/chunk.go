package terrain

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/charactercore/geom"
)

// Chunk indexes the terrain of one rectangular region of a level. It is built
// once at load and read-only during simulation.
type Chunk struct {
	X, Y, W, H float64

	tiles       []*Tile
	floors      []*Tile
	ceilings    []*Tile
	wallsLeft   []*geom.Wall
	wallsRight  []*geom.Wall
	damageables []Damageable

	Logger *log.Logger
}

func NewChunk(x, y, w, h float64) *Chunk {
	return &Chunk{X: x, Y: y, W: w, H: h}
}

func (c *Chunk) XW() float64 { return c.X + c.W }
func (c *Chunk) YH() float64 { return c.Y + c.H }

func (c *Chunk) Bounds() cp.BB {
	return cp.BB{L: c.X, B: c.Y, R: c.XW(), T: c.YH()}
}

// Contains reports whether p lies in the half-open region [X, XW) x [Y, YH).
func (c *Chunk) Contains(p geom.Vec) bool {
	if c == nil {
		return false
	}
	return p.X >= c.X && p.X < c.XW() && p.Y >= c.Y && p.Y < c.YH()
}

// Add indexes a tile's faces regardless of where it sits.
func (c *Chunk) Add(t *Tile) {
	if c == nil || t == nil {
		return
	}
	c.tiles = append(c.tiles, t)
	if t.HasTop {
		c.floors = append(c.floors, t)
	}
	if t.HasBottom {
		c.ceilings = append(c.ceilings, t)
	}
	if t.HasWallLeft && t.WallLeft() != nil {
		c.wallsLeft = append(c.wallsLeft, t.WallLeft())
	}
	if t.HasWallRight && t.WallRight() != nil {
		c.wallsRight = append(c.wallsRight, t.WallRight())
	}
}

// Collect adds every tile whose origin lies inside the chunk and reports how
// many were accepted.
func (c *Chunk) Collect(tiles []*Tile) int {
	if c == nil {
		return 0
	}
	n := 0
	for _, t := range tiles {
		if t == nil {
			c.logf("terrain: skipping nil tile")
			continue
		}
		if !c.Contains(geom.Vec{X: t.X, Y: t.Y}) {
			continue
		}
		c.Add(t)
		n++
	}
	return n
}

func (c *Chunk) AddDamageable(d Damageable) {
	if c == nil {
		return
	}
	if d == nil || d.Shape() == nil {
		c.logf("terrain: damageable without a shape ignored")
		return
	}
	c.damageables = append(c.damageables, d)
}

func (c *Chunk) Tiles() []*Tile            { return c.tiles }
func (c *Chunk) Floors() []*Tile           { return c.floors }
func (c *Chunk) Ceilings() []*Tile         { return c.ceilings }
func (c *Chunk) WallsLeft() []*geom.Wall   { return c.wallsLeft }
func (c *Chunk) WallsRight() []*geom.Wall  { return c.wallsRight }
func (c *Chunk) Damageables() []Damageable { return c.damageables }

// DamageablesIn returns the damageables whose shape overlaps box.
func (c *Chunk) DamageablesIn(box *geom.HitBox) []Damageable {
	if c == nil || box == nil {
		return nil
	}
	bb := box.BB()
	var out []Damageable
	for _, d := range c.damageables {
		shape := d.Shape()
		if !bb.Intersects(shape.BB()) {
			continue
		}
		if box.Overlaps(shape) {
			out = append(out, d)
		}
	}
	return out
}

func (c *Chunk) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
