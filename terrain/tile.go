package terrain

import "github.com/milk9111/charactercore/geom"

// Tile is a static axis-aligned block of level geometry. Its top is a floor,
// its bottom a ceiling, and its sides walls, each individually optional.
type Tile struct {
	X, Y, W, H float64

	HasTop       bool
	HasBottom    bool
	HasWallLeft  bool
	HasWallRight bool
	// FallThrough tiles are one-way platforms: bodies ignoring platforms
	// pass through them and they never produce wall overlap.
	FallThrough bool

	wallLeft  *geom.Wall
	wallRight *geom.Wall
}

type TileOption func(*Tile)

func WithoutTop() TileOption       { return func(t *Tile) { t.HasTop = false } }
func WithoutBottom() TileOption    { return func(t *Tile) { t.HasBottom = false } }
func WithoutWallLeft() TileOption  { return func(t *Tile) { t.HasWallLeft = false } }
func WithoutWallRight() TileOption { return func(t *Tile) { t.HasWallRight = false } }

// Platform makes the tile a one-way platform: top only, fall-through.
func Platform() TileOption {
	return func(t *Tile) {
		t.HasBottom = false
		t.HasWallLeft = false
		t.HasWallRight = false
		t.FallThrough = true
	}
}

// NewTile creates a tile with every face enabled unless options say otherwise.
// Walls are built once here and never change.
func NewTile(x, y, w, h float64, opts ...TileOption) *Tile {
	t := &Tile{
		X: x, Y: y, W: w, H: h,
		HasTop:       true,
		HasBottom:    true,
		HasWallLeft:  true,
		HasWallRight: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.HasWallLeft {
		t.wallLeft = geom.NewWall(t.X, t.Y, t.H, geom.SideLeft)
	}
	if t.HasWallRight {
		t.wallRight = geom.NewWall(t.XW(), t.Y, t.H, geom.SideRight)
	}
	return t
}

func (t *Tile) XW() float64 { return t.X + t.W }
func (t *Tile) YH() float64 { return t.Y + t.H }

func (t *Tile) WallLeft() *geom.Wall  { return t.wallLeft }
func (t *Tile) WallRight() *geom.Wall { return t.wallRight }
