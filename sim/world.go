package sim

import (
	"fmt"
	"log"

	"github.com/milk9111/charactercore/character"
	"github.com/milk9111/charactercore/config"
	"github.com/milk9111/charactercore/geom"
	"github.com/milk9111/charactercore/physics"
	"github.com/milk9111/charactercore/terrain"
)

// World owns the terrain chunks and characters of one simulation and steps
// them with a fixed system order.
type World struct {
	Debug  *config.Debug
	Logger *log.Logger

	scheduler  *Scheduler
	chunks     []*terrain.Chunk
	characters []*character.Character
	chunkOf    map[*character.Character]*terrain.Chunk
	intents    map[*character.Character]character.Intent

	tick   uint64
	events EventQueue
}

// NewWorld creates a world over chunks. A nil scheduler uses
// DefaultScheduler.
func NewWorld(scheduler *Scheduler, chunks ...*terrain.Chunk) *World {
	if scheduler == nil {
		scheduler = DefaultScheduler()
	}
	w := &World{
		Debug:     config.NewDebug(),
		scheduler: scheduler,
		chunkOf:   make(map[*character.Character]*terrain.Chunk),
		intents:   make(map[*character.Character]character.Intent),
	}
	for _, c := range chunks {
		if c != nil {
			w.chunks = append(w.chunks, c)
		}
	}
	return w
}

func (w *World) Chunks() []*terrain.Chunk                      { return w.chunks }
func (w *World) Characters() []*character.Character            { return w.characters }
func (w *World) Tick() uint64                                  { return w.tick }
func (w *World) Events() *EventQueue                           { return &w.events }
func (w *World) Scheduler() *Scheduler                         { return w.scheduler }
func (w *World) ChunkOf(c *character.Character) *terrain.Chunk { return w.chunkOf[c] }

// ChunkAt returns the first chunk containing p, or nil.
func (w *World) ChunkAt(p geom.Vec) *terrain.Chunk {
	for _, c := range w.chunks {
		if c.Contains(p) {
			return c
		}
	}
	return nil
}

// Spawn creates a character inside the world. Its terrain is the chunk at the
// spawn point and its transitions are recorded in the event queue.
func (w *World) Spawn(opts character.Options) (*character.Character, error) {
	if opts.Name == "" {
		opts.Name = fmt.Sprintf("character_%d", len(w.characters))
	}
	for _, c := range w.characters {
		if c.Name == opts.Name {
			return nil, fmt.Errorf("sim: duplicate character %q", opts.Name)
		}
	}
	chunk := w.ChunkAt(geom.Vec{X: opts.X, Y: opts.Y})
	if opts.Terrain == nil && chunk != nil {
		opts.Terrain = chunk
	}
	if opts.Logger == nil {
		opts.Logger = w.Logger
	}
	rec := recorder{world: w, name: opts.Name}
	if opts.Events != nil {
		opts.Events = physics.MultiSink{rec, opts.Events}
	} else {
		opts.Events = rec
	}

	c := character.New(opts)
	if ch, ok := opts.Terrain.(*terrain.Chunk); ok {
		w.chunkOf[c] = ch
	}
	w.characters = append(w.characters, c)
	return c, nil
}

// Find returns the character named name.
func (w *World) Find(name string) *character.Character {
	for _, c := range w.characters {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// SetIntent sets the input c receives on the next Step.
func (w *World) SetIntent(c *character.Character, in character.Intent) {
	if c == nil {
		return
	}
	w.intents[c] = in
}

// Step runs one tick. Events recorded during the tick carry its number.
func (w *World) Step() {
	if w == nil {
		return
	}
	w.tick++
	w.scheduler.Update(w)
}

// SetTuning replaces the tuning of every character, used for hot reload.
func (w *World) SetTuning(t physics.Tuning) {
	for _, c := range w.characters {
		c.Body.Tuning = t
	}
}
