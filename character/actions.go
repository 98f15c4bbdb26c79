package character

import (
	"fmt"
	"log"

	"github.com/milk9111/charactercore/action"
	"github.com/milk9111/charactercore/geom"
)

// Action names shared by DefaultActions and the actions.yaml prefab.
const (
	ActionIdle          = "idle"
	ActionCrouch        = "crouch"
	ActionWalk          = "walk"
	ActionJump          = "jump"
	ActionFall          = "fall"
	ActionWallSlide     = "wall_slide"
	ActionLand          = "land"
	ActionPreSafetyRoll = "pre_safety_roll"
	ActionSafetyRoll    = "safety_roll"
	ActionAttack        = "attack"
)

// Actions is the behavior set of one character. Actions are bound to the
// character that starts them, so every character needs its own set.
type Actions struct {
	Idle          *action.Action
	Crouch        *action.Action
	Walk          *action.Action
	Jump          *action.Action
	Fall          *action.Action
	WallSlide     *action.Action
	Land          *action.Action
	PreSafetyRoll *action.Action
	SafetyRoll    *action.Action
	Attack        *action.Action
}

func (a *Actions) All() []*action.Action {
	return []*action.Action{
		a.Idle, a.Crouch, a.Walk, a.Jump, a.Fall,
		a.WallSlide, a.Land, a.PreSafetyRoll, a.SafetyRoll, a.Attack,
	}
}

// ActionsFrom picks the named actions out of a compiled prefab set.
func ActionsFrom(m map[string]*action.Action) (*Actions, error) {
	out := &Actions{}
	slots := []struct {
		name string
		dst  **action.Action
	}{
		{ActionIdle, &out.Idle},
		{ActionCrouch, &out.Crouch},
		{ActionWalk, &out.Walk},
		{ActionJump, &out.Jump},
		{ActionFall, &out.Fall},
		{ActionWallSlide, &out.WallSlide},
		{ActionLand, &out.Land},
		{ActionPreSafetyRoll, &out.PreSafetyRoll},
		{ActionSafetyRoll, &out.SafetyRoll},
		{ActionAttack, &out.Attack},
	}
	for _, s := range slots {
		a, ok := m[s.name]
		if !ok || a == nil {
			return nil, fmt.Errorf("character: missing action %q", s.name)
		}
		*s.dst = a
	}
	return out, nil
}

func box(offsetX, w, h float64) *geom.HitBox {
	return geom.NewHitBox(offsetX, 0, w, h)
}

func vec(x, y float64) *geom.Vec {
	return &geom.Vec{X: x, Y: y}
}

// DefaultActions builds the stock player behavior set.
func DefaultActions() *Actions {
	a := &Actions{}

	a.Idle = &action.Action{
		Name: ActionIdle,
		Loop: true,
		Steps: []*action.Step{
			{Duration: 3, AllowsFlip: true, CancellableBy: action.CancellableByAll, Shape: box(0, 1, 1.7)},
		},
	}

	a.Crouch = &action.Action{
		Name: ActionCrouch,
		Loop: true,
		Steps: []*action.Step{
			{Duration: 1, AllowsFlip: true, CancellableBy: action.CancellableByAll, Shape: box(0, 1, 1), SpriteOffset: geom.Vec{X: .1}},
		},
	}

	a.Walk = &action.Action{
		Name:          ActionWalk,
		Loop:          true,
		AllowMovement: true,
		OnEnd:         func(act *action.Actioner) { act.Body().Walk(0) },
		Steps: []*action.Step{
			{
				Duration:      1,
				AllowsFlip:    true,
				CancellableBy: action.CancellableByAll,
				Shape:         box(0, 1, 1.7),
				OnUpdate:      func(act *action.Actioner) { act.Body().Walk(float64(act.Direction())) },
			},
		},
	}

	a.Jump = &action.Action{
		Name:          ActionJump,
		AllowMovement: true,
		OnStart:       func(act *action.Actioner) { act.Body().Jump() },
		Steps: []*action.Step{
			{Freeze: true, AllowsFlip: true, Shape: box(0, 1, 1.7)},
		},
	}

	a.Fall = &action.Action{
		Name:          ActionFall,
		AllowMovement: true,
		Steps: []*action.Step{
			{Duration: 15, AllowsFlip: true, Shape: box(0, 1, 1.7)},
			{Duration: 1, Freeze: true, AllowsFlip: true, Shape: box(0, 1, 1.7)},
		},
	}

	a.WallSlide = &action.Action{
		Name:          ActionWallSlide,
		Loop:          true,
		AllowMovement: true,
		Steps: []*action.Step{
			{Duration: 1, AllowsFlip: true, Shape: box(0, 1, 1.7)},
		},
	}

	a.Land = &action.Action{
		Name: ActionLand,
		Steps: []*action.Step{
			{Duration: 2, AllowsFlip: true, Shape: box(0, 1, 1)},
			{Duration: 30, AllowsFlip: true, Shape: box(0, 1, 1)},
			{Duration: 2, AllowsFlip: true, Shape: box(0, 1, 1)},
		},
	}

	a.PreSafetyRoll = &action.Action{
		Name:          ActionPreSafetyRoll,
		AllowMovement: true,
		Steps: []*action.Step{
			{Duration: 10, AllowsFlip: true, Shape: box(0, 1, 1)},
		},
	}

	none := action.CancellableByNone
	a.SafetyRoll = &action.Action{
		Name:    ActionSafetyRoll,
		OnStart: func(act *action.Actioner) { act.Body().Walk(float64(act.Direction())) },
		Steps: []*action.Step{
			{Duration: 5, AllowsFlip: true, CancellableBy: none, Shape: box(0, 1, 1), StartDisplacement: vec(0, 0), UpdateDisplacement: vec(0, 0)},
			{Duration: 5, CancellableBy: none, Shape: box(0, 1, 1), StartDisplacement: vec(.5, 0), UpdateDisplacement: vec(0, 0)},
			{Duration: 3, CancellableBy: none, Shape: box(0, 1, 1), StartDisplacement: vec(.5, 0), UpdateDisplacement: vec(.1, 0)},
			{Duration: 3, CancellableBy: none, Shape: box(0, 1, 1), StartDisplacement: vec(.5, 0), UpdateDisplacement: vec(0, 0)},
		},
	}

	a.Attack = &action.Action{
		Name: ActionAttack,
		Tags: []string{"combat"},
		Steps: []*action.Step{
			{Duration: 10, AllowsFlip: true, CancellableBy: action.CancellableByAll, Shape: box(0, .9, 1.7), SpriteOffset: geom.Vec{X: .2}},
			{Duration: 5, CancellableBy: none, Shape: box(0, .8, 1.7), SpriteOffset: geom.Vec{X: .4}},
			{
				Duration:           8,
				CancellableBy:      none,
				Shape:              box(.33, .9, 1.7),
				SpriteOffset:       geom.Vec{X: .9},
				UpdateDisplacement: vec(.3, 0),
				Attack:             &action.Attack{Damage: 10, Shape: geom.NewHitBox(1.5, .85, 1.1, .2)},
			},
		},
	}

	for _, act := range a.All() {
		if err := act.Initialize(); err != nil {
			log.Printf("character: default actions: %v", err)
		}
	}
	return a
}
