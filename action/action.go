package action

import (
	"errors"
	"fmt"
	"log"
	"slices"
)

// Action is a named, reusable sequence of steps. It is built once and
// restarted many times; Start only resets the step cursor.
type Action struct {
	Name  string
	Tags  []string
	Steps []*Step

	Loop          bool
	AllowMovement bool
	PausePhysics  bool

	// CancellableBy additionally gates the current step's policy when set.
	CancellableBy CancelPolicy

	OnStart  Hook
	OnUpdate Hook
	OnEnd    Hook

	sprites     []Sprite
	initialized bool
	active      bool
	runs        int
	cursor      int
	actioner    *Actioner
}

// Initialize binds every step to this action and to its index-matched
// sprite. A short sprite list leaves the remaining steps without a sprite.
func (a *Action) Initialize(sprites ...Sprite) error {
	if a == nil {
		return errors.New("action: initialize nil action")
	}
	if len(a.Steps) == 0 {
		return fmt.Errorf("action %q: no steps", a.Name)
	}
	for i, s := range a.Steps {
		if s == nil {
			return fmt.Errorf("action %q: step %d is nil", a.Name, i)
		}
		if s.parent != nil && s.parent != a {
			return fmt.Errorf("action %q: step %d already belongs to %q", a.Name, i, s.parent.Name)
		}
	}
	if len(sprites) > 0 && len(sprites) < len(a.Steps) {
		log.Printf("action %q: %d sprites for %d steps", a.Name, len(sprites), len(a.Steps))
	}

	a.sprites = slices.Clone(sprites)
	for i, s := range a.Steps {
		if s.Duration < 1 && !s.Freeze {
			log.Printf("action %q: step %d duration %d, using 1", a.Name, i, s.Duration)
		}
		s.parent = a
		s.sprite = nil
		if i < len(a.sprites) {
			s.sprite = a.sprites[i]
		}
	}
	a.initialized = true
	return nil
}

func (a *Action) HasTag(tag string) bool {
	return a != nil && slices.Contains(a.Tags, tag)
}

func (a *Action) Active() bool        { return a != nil && a.active }
func (a *Action) StepIndex() int      { return a.cursor }
func (a *Action) Actioner() *Actioner { return a.actioner }

// CurrentStep is nil when the cursor is outside the step list, which only
// happens briefly while the action ends.
func (a *Action) CurrentStep() *Step {
	if a == nil || a.cursor < 0 || a.cursor >= len(a.Steps) {
		return nil
	}
	return a.Steps[a.cursor]
}

// Start runs the action from its first step on behalf of actioner.
func (a *Action) Start(actioner *Actioner) {
	if a == nil || actioner == nil {
		log.Printf("action: start needs both an action and an actioner")
		return
	}
	if !a.initialized {
		if err := a.Initialize(); err != nil {
			actioner.logf("%v", err)
			return
		}
	}
	a.actioner = actioner
	a.active = true
	a.runs++
	a.OnStart.call(actioner)

	if body := actioner.Body(); body != nil {
		body.AllowMovement = a.AllowMovement
		body.Paused = a.PausePhysics
	}

	a.cursor = 0
	a.Steps[0].Start()
}

// Update runs one tick of the current step. The update hook is skipped when
// that tick finished the action, even if it restarted right away.
func (a *Action) Update() {
	step := a.CurrentStep()
	if step == nil || !a.active {
		a.misuse("update")
		return
	}
	run := a.runs
	step.Update()
	if a.active && a.runs == run {
		a.OnUpdate.call(a.actioner)
	}
}

// NextStep ends the current step and starts the following one, or ends the
// action after the last.
func (a *Action) NextStep() {
	step := a.CurrentStep()
	if step == nil || !a.active {
		a.misuse("next step")
		return
	}
	step.End()
	a.cursor++
	if a.cursor < len(a.Steps) {
		a.Steps[a.cursor].Start()
		return
	}
	a.End()
}

// End fires the end hook, then either loops or hands control back to the
// actioner.
func (a *Action) End() {
	if a == nil || !a.active {
		a.misuse("end")
		return
	}
	a.active = false
	a.OnEnd.call(a.actioner)
	if a.Loop {
		a.Start(a.actioner)
		return
	}
	a.actioner.OnActionEnd()
}

// IsCancellableBy asks the current step; the action-level policy, when set,
// can only narrow that answer.
func (a *Action) IsCancellableBy(candidate *Action) bool {
	if a == nil {
		return true
	}
	ok := true
	if step := a.CurrentStep(); step != nil {
		ok = step.IsCancellableBy(candidate)
	}
	if ok && a.CancellableBy != nil {
		ok = a.CancellableBy(candidate)
	}
	return ok
}

// cancel abandons the action without firing end hooks.
func (a *Action) cancel() {
	if step := a.CurrentStep(); step != nil {
		step.Cancel()
	}
	a.active = false
}

func (a *Action) misuse(op string) {
	name := "<nil>"
	if a != nil {
		name = a.Name
	}
	msg := fmt.Sprintf("action %q: %s while not running", name, op)
	if a != nil && a.actioner != nil {
		a.actioner.logf("%s", msg)
		return
	}
	log.Print(msg)
}

func (a *Action) String() string {
	if a == nil {
		return "<nil>"
	}
	return a.Name
}
