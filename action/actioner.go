package action

import (
	"log"
	"math"

	"github.com/milk9111/charactercore/common"
	"github.com/milk9111/charactercore/geom"
	"github.com/milk9111/charactercore/physics"
)

// Actioner owns the running action of one character. It arbitrates
// cancellation and picks what runs next when an action finishes.
type Actioner struct {
	Logger *log.Logger

	body *physics.Body
	sink SpriteSink

	current *Action
	queued  *Action
	def     *Action

	direction int

	// Queue calls made while an action is starting or updating are held here
	// and resolved once that call returns.
	busy    int
	pending *Action
}

func NewActioner(body *physics.Body, sink SpriteSink) *Actioner {
	return &Actioner{body: body, sink: sink, direction: 1}
}

func (a *Actioner) Body() *physics.Body        { return a.body }
func (a *Actioner) Sink() SpriteSink           { return a.sink }
func (a *Actioner) Transform() *geom.Transform { return a.body.Transform() }
func (a *Actioner) Direction() int             { return a.direction }
func (a *Actioner) CurrentAction() *Action     { return a.current }
func (a *Actioner) Queued() *Action            { return a.queued }
func (a *Actioner) Default() *Action           { return a.def }

func (a *Actioner) CurrentStep() *Step {
	if a == nil {
		return nil
	}
	return a.current.CurrentStep()
}

// Initialize sets the fallback action and starts it.
func (a *Actioner) Initialize(def *Action) {
	if a == nil {
		return
	}
	if def == nil {
		a.logf("action: initialize with nil default action")
		return
	}
	a.def = def
	a.queued = nil
	a.start(def)
}

// Queue starts candidate now if the current step allows being cancelled by
// it, otherwise remembers it for when the current action ends. Only the
// latest refused candidate is remembered.
func (a *Actioner) Queue(candidate *Action) {
	if a == nil {
		return
	}
	if candidate == nil {
		a.logf("action: queued nil action")
		return
	}
	if a.busy > 0 {
		a.pending = candidate
		return
	}
	if a.current == nil {
		a.logf("action: queue %q before initialize", candidate.Name)
		return
	}
	if a.current.IsCancellableBy(candidate) {
		a.current.cancel()
		a.start(candidate)
		return
	}
	a.queued = candidate
}

// Update runs one tick of the current action.
func (a *Actioner) Update() {
	if a == nil || a.current == nil {
		return
	}
	a.busy++
	a.current.Update()
	a.done()
}

// OnActionEnd is called by the current action when it finishes without
// looping.
func (a *Actioner) OnActionEnd() {
	if a == nil {
		return
	}
	next := a.def
	if a.queued != nil {
		next = a.queued
		a.queued = nil
	}
	if next == nil {
		a.logf("action: no action to run after %q", a.current)
		return
	}
	a.start(next)
}

// InputDirection faces the character toward value when the current step
// allows flipping. Values outside [-1, 1] are logged and ignored.
func (a *Actioner) InputDirection(value float64) {
	if a == nil || value == 0 {
		return
	}
	if math.IsNaN(value) || math.Abs(value) > 1 {
		a.logf("action: invalid input direction %v", value)
		return
	}
	step := a.CurrentStep()
	if step == nil || !step.AllowsFlip {
		return
	}
	a.SetDirection(int(common.Sign(value)))
}

// SetDirection faces the character left (-1) or right (1).
func (a *Actioner) SetDirection(dir int) {
	if a == nil {
		return
	}
	if dir != -1 && dir != 1 {
		a.logf("action: invalid direction %d", dir)
		return
	}
	a.direction = dir
	flipped := dir < 0
	if a.body != nil {
		a.body.Flipped = flipped
	}
	if a.sink != nil {
		a.sink.SetFlipped(flipped)
	}
	if step := a.CurrentStep(); step != nil && step.Attack != nil && step.Attack.Shape != nil {
		step.Attack.Shape.SetDirection(dir)
	}
}

func (a *Actioner) start(next *Action) {
	a.current = next
	a.busy++
	next.Start(a)
	a.done()
}

// done closes a busy section and resolves a held Queue once the outermost
// one returns.
func (a *Actioner) done() {
	a.busy--
	if a.busy > 0 || a.pending == nil {
		return
	}
	next := a.pending
	a.pending = nil
	a.Queue(next)
}

func (a *Actioner) setSprite(sprite Sprite, offset geom.Vec) {
	if a.sink == nil {
		return
	}
	a.sink.SetSprite(sprite)
	a.sink.SetSpriteOffset(offset.X*float64(a.direction), offset.Y)
}

func (a *Actioner) logf(format string, args ...any) {
	if a != nil && a.Logger != nil {
		a.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
