package main

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/charactercore/common"
	"github.com/milk9111/charactercore/geom"
	"golang.org/x/image/colornames"
)

// camera tracks a world point; the world is Y-up, the screen Y-down.
type camera struct {
	x, y float64
	zoom float64
}

const defaultZoom = 40

func newCamera(at geom.Vec, zoom float64) camera {
	if zoom <= 0 {
		zoom = defaultZoom
	}
	return camera{x: at.X, y: at.Y, zoom: zoom}
}

const cameraLerp = 0.15

func (c *camera) follow(p geom.Vec, snap bool) {
	if snap {
		c.x, c.y = p.X, p.Y
		return
	}
	c.x = common.Lerp(c.x, p.X, cameraLerp)
	c.y = common.Lerp(c.y, p.Y, cameraLerp)
}

func (c camera) toScreen(x, y float64) (float32, float32) {
	return float32((x-c.x)*c.zoom + baseWidth/2), float32(baseHeight/2 - (y-c.y)*c.zoom)
}

// rect converts a world bounding box to a screen rectangle.
func (c camera) rect(bb cp.BB) (x, y, w, h float32) {
	x, y = c.toScreen(bb.L, bb.T)
	return x, y, float32((bb.R - bb.L) * c.zoom), float32((bb.T - bb.B) * c.zoom)
}

func (g *Game) drawTerrain(screen *ebiten.Image) {
	debug := g.world.Debug
	for _, chunk := range g.world.Chunks() {
		for _, t := range chunk.Tiles() {
			x, y, w, h := g.camera.rect(cp.BB{L: t.X, B: t.Y, R: t.XW(), T: t.YH()})
			fill := colornames.Dimgray
			if t.FallThrough {
				fill = colornames.Slategray
			}
			vector.FillRect(screen, x, y, w, h, fill, false)
		}

		if debug.DrawTerrainCollision {
			line := debug.Line()
			for _, f := range chunk.Floors() {
				x0, y0 := g.camera.toScreen(f.X, f.YH())
				x1, y1 := g.camera.toScreen(f.XW(), f.YH())
				vector.StrokeLine(screen, x0, y0, x1, y1, line, colornames.Lime, false)
			}
			for _, c := range chunk.Ceilings() {
				x0, y0 := g.camera.toScreen(c.X, c.Y)
				x1, y1 := g.camera.toScreen(c.XW(), c.Y)
				vector.StrokeLine(screen, x0, y0, x1, y1, line, colornames.Orange, false)
			}
			for _, w := range chunk.WallsLeft() {
				g.drawWall(screen, w, colornames.Deepskyblue)
			}
			for _, w := range chunk.WallsRight() {
				g.drawWall(screen, w, colornames.Magenta)
			}
		}

		for _, d := range chunk.Damageables() {
			x, y, w, h := g.camera.rect(d.Shape().BB())
			vector.StrokeRect(screen, x, y, w, h, 2, colornames.Gold, false)
			ebitenutil.DebugPrintAt(screen, strconv.Itoa(d.Health()), int(x), int(y)-16)
		}
	}
}

func (g *Game) drawWall(screen *ebiten.Image, w *geom.Wall, clr color.Color) {
	x0, y0 := g.camera.toScreen(w.X, w.Y)
	x1, y1 := g.camera.toScreen(w.X, w.YH())
	vector.StrokeLine(screen, x0, y0, x1, y1, g.world.Debug.Line(), clr, false)
}

func (g *Game) drawHero(screen *ebiten.Image) {
	body := g.hero.Body
	debug := g.world.Debug
	bb := cp.BB{L: body.X(), B: body.Y(), R: body.XW(), T: body.YH()}

	x, y, w, h := g.camera.rect(bb)
	vector.FillRect(screen, x, y, w, h, colornames.Crimson, false)

	px, py := g.camera.toScreen(body.CenterX()+g.sprites.offsetX, body.YH()+g.sprites.offsetY)
	ebitenutil.DebugPrintAt(screen, g.sprites.label(g.hero.Current()), int(px)-20, int(py)-18)

	if debug.DrawMovementCollision {
		vector.StrokeRect(screen, x, y, w, h, debug.Line(), colornames.White, false)
		if wall := body.CollidingWall(); wall != nil {
			g.drawWall(screen, wall, colornames.Red)
		}
		if wall := body.OverlappingWall(); wall != nil {
			g.drawWall(screen, wall, colornames.Yellow)
		}
		// wall hang probe band
		t := body.Tuning
		band := cp.BB{L: body.X(), B: body.Y() + t.WallHangOffset, R: body.XW(), T: body.Y() + t.WallHangOffset + t.WallHangSize}
		bx, by, bw, bh := g.camera.rect(band)
		clr := colornames.Lightgrey
		if body.WallHanging() {
			clr = colornames.Aqua
		}
		vector.StrokeRect(screen, bx, by, bw, bh, debug.Line(), clr, false)
	}

	if debug.DrawMovementInputs {
		cx, cy := g.camera.toScreen(body.CenterX(), body.Y()+body.Shape().H/2)
		in := body.Input()
		vector.StrokeLine(screen, cx, cy, cx+float32(in*g.camera.zoom), cy, debug.Line()*2, colornames.Lightgrey, true)
		v := body.Velocity()
		scale := g.camera.zoom * body.Tuning.FrameRate / 10
		vector.StrokeLine(screen, cx, cy, cx+float32(v.X*scale), cy-float32(v.Y*scale), debug.Line(), colornames.Cyan, true)
	}

	if debug.DrawAttackHitShapes {
		if step := g.hero.Actioner.CurrentStep(); step != nil && step.Attack != nil && step.Attack.Active() {
			ax, ay, aw, ah := g.camera.rect(step.Attack.Shape.BB())
			vector.StrokeRect(screen, ax, ay, aw, ah, debug.Line(), colornames.Orangered, false)
		}
	}
}
