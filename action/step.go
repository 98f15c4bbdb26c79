package action

import (
	"log"

	"github.com/milk9111/charactercore/geom"
)

// Step is one timed phase of an Action.
type Step struct {
	// Duration in ticks. Values below 1 are treated as 1.
	Duration int
	// Freeze holds the step until something cancels it.
	Freeze     bool
	AllowsFlip bool

	Shape              *geom.HitBox
	StartDisplacement  *geom.Vec
	UpdateDisplacement *geom.Vec
	SpriteOffset       geom.Vec

	// CancellableBy is consulted by Actioner.Queue. Nil accepts everything.
	CancellableBy CancelPolicy

	OnStart  Hook
	OnUpdate Hook
	OnEnd    Hook

	Attack *Attack

	frameCount int
	sprite     Sprite
	parent     *Action
}

func (s *Step) FrameCount() int { return s.frameCount }
func (s *Step) Parent() *Action { return s.parent }
func (s *Step) Sprite() Sprite  { return s.sprite }

func (s *Step) duration() int {
	if s.Duration < 1 {
		return 1
	}
	return s.Duration
}

func (s *Step) actioner() *Actioner {
	if s.parent == nil {
		return nil
	}
	return s.parent.actioner
}

// Start enters the step and runs its first update.
func (s *Step) Start() {
	if s == nil {
		return
	}
	s.frameCount = 0
	a := s.actioner()
	if a == nil {
		log.Printf("action: step started without a running action")
		return
	}

	a.setSprite(s.sprite, s.SpriteOffset)
	body := a.Body()
	if s.Shape != nil {
		body.SetShape(s.Shape)
	}
	if d := s.StartDisplacement; d != nil {
		body.Displace(d.X*float64(a.Direction()), d.Y)
	}
	if s.Attack != nil {
		s.Attack.attach(a)
	}
	s.OnStart.call(a)

	s.Update()
}

// Update advances the step one tick. Once the duration is exceeded the parent
// moves on and nothing else happens this tick.
func (s *Step) Update() {
	if s == nil {
		return
	}
	if !s.Freeze {
		s.frameCount++
		if s.frameCount > s.duration() {
			s.parent.NextStep()
			return
		}
	}
	a := s.actioner()
	if a == nil {
		return
	}
	if d := s.UpdateDisplacement; d != nil {
		a.Body().Displace(d.X*float64(a.Direction()), d.Y)
	}
	if s.Attack != nil {
		s.Attack.strike(a)
	}
	s.OnUpdate.call(a)
}

// End leaves the step normally. The parent action calls it exactly once per
// activation.
func (s *Step) End() {
	if s == nil {
		return
	}
	s.OnEnd.call(s.actioner())
	if s.Attack != nil {
		s.Attack.detach()
	}
}

// Cancel leaves the step early. Only lingering effects are undone; the end
// hook does not fire.
func (s *Step) Cancel() {
	if s == nil {
		return
	}
	if s.Attack != nil {
		s.Attack.detach()
	}
}

func (s *Step) IsCancellableBy(candidate *Action) bool {
	if s.CancellableBy == nil {
		return true
	}
	return s.CancellableBy(candidate)
}
