package sim

import "github.com/milk9111/charactercore/geom"

// InputSystem feeds each character the intent set for this tick. Intents are
// consumed; a character without one gets an empty intent.
type InputSystem struct{}

func (InputSystem) Update(w *World) {
	for _, c := range w.characters {
		in := w.intents[c]
		delete(w.intents, c)
		c.Controller.Apply(in)
	}
}

// TerrainSystem points each body at the chunk containing its centre. Bodies
// outside every chunk keep their last chunk.
type TerrainSystem struct{}

func (TerrainSystem) Update(w *World) {
	for _, c := range w.characters {
		box := c.Body.Shape()
		center := geom.Vec{X: c.Body.CenterX(), Y: c.Body.Y() + box.H/2}
		chunk := w.ChunkAt(center)
		if chunk == nil || w.chunkOf[c] == chunk {
			continue
		}
		w.chunkOf[c] = chunk
		c.Body.SetTerrain(chunk)
	}
}

type ActionSystem struct{}

func (ActionSystem) Update(w *World) {
	for _, c := range w.characters {
		c.Actioner.Update()
	}
}

type PhysicsSystem struct{}

func (PhysicsSystem) Update(w *World) {
	for _, c := range w.characters {
		c.Body.Update()
	}
}
