package character

import (
	"log"

	"github.com/milk9111/charactercore/action"
	"github.com/milk9111/charactercore/geom"
	"github.com/milk9111/charactercore/physics"
)

// Character bundles the pieces that make up one controllable actor.
type Character struct {
	Name       string
	Transform  *geom.Transform
	Body       *physics.Body
	Actioner   *action.Actioner
	Controller *Controller
	Actions    *Actions
}

type Options struct {
	Name string
	X, Y float64
	// Tuning defaults to physics.DefaultTuning.
	Tuning *physics.Tuning
	// Actions defaults to DefaultActions. A set must not be shared.
	Actions *Actions
	Sink    action.SpriteSink
	Terrain physics.Terrain
	// Events also receives every body transition, after the controller.
	Events physics.EventSink
	Logger *log.Logger
}

// New wires a character and starts it idle. A character placed on a floor
// starts grounded.
func New(opts Options) *Character {
	tuning := physics.DefaultTuning()
	if opts.Tuning != nil {
		tuning = *opts.Tuning
	}
	actions := opts.Actions
	if actions == nil {
		actions = DefaultActions()
	}

	transform := geom.NewTransform(opts.X, opts.Y)
	body := physics.NewBody(transform, tuning)
	body.Logger = opts.Logger
	body.SetTerrain(opts.Terrain)

	actioner := action.NewActioner(body, opts.Sink)
	actioner.Logger = opts.Logger

	controller := NewController(actioner, body, actions)
	if opts.Events != nil {
		body.Listen(physics.MultiSink{controller, opts.Events})
	} else {
		body.Listen(controller)
	}

	c := &Character{
		Name:       opts.Name,
		Transform:  transform,
		Body:       body,
		Actioner:   actioner,
		Controller: controller,
		Actions:    actions,
	}
	actioner.Initialize(actions.Idle)
	body.CheckCollision()
	return c
}

// Current is the name of the running action.
func (c *Character) Current() string {
	return c.Actioner.CurrentAction().String()
}
