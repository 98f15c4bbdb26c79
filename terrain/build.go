package terrain

import (
	"fmt"

	"github.com/milk9111/charactercore/geom"
	"github.com/milk9111/charactercore/levels"
)

// FromLevel builds a single chunk covering lvl. Contiguous cells of the same
// kind are merged into one tile so no internal faces exist between them.
// Grid row 0 is the top of the level; the chunk is Y-up.
func FromLevel(lvl *levels.Level, tileSize float64) (*Chunk, error) {
	if lvl == nil {
		return nil, fmt.Errorf("terrain: nil level")
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("terrain: invalid tile size %g", tileSize)
	}

	chunk := NewChunk(0, 0, float64(lvl.Width)*tileSize, float64(lvl.Height)*tileSize)
	for idx := range lvl.Layers {
		if !lvl.HasPhysics(idx) {
			continue
		}
		chunk.Collect(mergeLayer(lvl, idx, tileSize))
	}

	for _, ent := range lvl.Entities {
		if ent.Type != "dummy" {
			continue
		}
		health := 30
		if v, ok := ent.Props["health"].(float64); ok {
			health = int(v)
		}
		x, y := cellOrigin(lvl, ent.X, ent.Y, 1, tileSize)
		chunk.AddDamageable(NewDummy(x, y, health))
	}

	return chunk, nil
}

// mergeLayer greedily expands each unprocessed cell into the widest, then
// tallest, rectangle of cells sharing its value.
func mergeLayer(lvl *levels.Level, idx int, tileSize float64) []*Tile {
	var tiles []*Tile
	processed := make([]bool, lvl.Width*lvl.Height)
	for y := 0; y < lvl.Height; y++ {
		for x := 0; x < lvl.Width; x++ {
			i := y*lvl.Width + x
			if processed[i] {
				continue
			}
			val := lvl.Cell(idx, x, y)
			if val != levels.CellSolid && val != levels.CellPlatform {
				processed[i] = true
				continue
			}

			w := 1
			for x+w < lvl.Width {
				j := y*lvl.Width + (x + w)
				if processed[j] || lvl.Cell(idx, x+w, y) != val {
					break
				}
				w++
			}

			h := 1
			if val == levels.CellSolid {
			heightLoop:
				for y+h < lvl.Height {
					for xi := x; xi < x+w; xi++ {
						j := (y+h)*lvl.Width + xi
						if processed[j] || lvl.Cell(idx, xi, y+h) != val {
							break heightLoop
						}
					}
					h++
				}
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*lvl.Width+xx] = true
				}
			}

			wx, wy := cellOrigin(lvl, x, y, h, tileSize)
			var opts []TileOption
			if val == levels.CellPlatform {
				opts = append(opts, Platform())
			}
			tiles = append(tiles, NewTile(wx, wy, float64(w)*tileSize, float64(h)*tileSize, opts...))
		}
	}
	return tiles
}

// cellOrigin converts the top-left grid cell of an h-row block into the
// block's bottom-left world position.
func cellOrigin(lvl *levels.Level, x, y, h int, tileSize float64) (float64, float64) {
	return float64(x) * tileSize, float64(lvl.Height-(y+h)) * tileSize
}

// SpawnPoint is the bottom centre of the level's spawn cell, where a body
// standing on the cell below rests.
func SpawnPoint(lvl *levels.Level, tileSize float64) geom.Vec {
	if lvl == nil {
		return geom.Vec{}
	}
	x, y := cellOrigin(lvl, lvl.SpawnX, lvl.SpawnY, 1, tileSize)
	return geom.Vec{X: x + tileSize/2, Y: y}
}
