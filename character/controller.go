package character

import (
	"github.com/milk9111/charactercore/action"
	"github.com/milk9111/charactercore/physics"
)

// Intent is one tick of already-decoded player input.
type Intent struct {
	MoveX          float64
	JumpPressed    bool
	JumpReleased   bool
	CrouchPressed  bool
	CrouchReleased bool
	AttackPressed  bool
	DodgeHeld      bool
}

// Controller turns intents and body transitions into action requests.
type Controller struct {
	actioner *action.Actioner
	body     *physics.Body
	actions  *Actions
}

func NewController(actioner *action.Actioner, body *physics.Body, actions *Actions) *Controller {
	return &Controller{actioner: actioner, body: body, actions: actions}
}

func (c *Controller) current() *action.Action {
	return c.actioner.CurrentAction()
}

// Apply feeds one tick of input. Call it before the actioner and body update.
func (c *Controller) Apply(in Intent) {
	if c == nil || c.actioner == nil || c.actions == nil {
		return
	}
	a := c.actions

	if in.CrouchPressed {
		c.actioner.Queue(a.Crouch)
	} else if in.CrouchReleased && c.current() == a.Crouch {
		c.actioner.Queue(a.Idle)
	}

	if c.current() == a.Idle && in.MoveX != 0 {
		c.actioner.Queue(a.Walk)
	}
	if c.current() == a.Walk && in.MoveX == 0 {
		c.actioner.Queue(a.Idle)
	}

	if in.JumpPressed {
		c.actioner.Queue(a.Jump)
	} else if in.JumpReleased {
		c.body.StopJump()
	}

	if in.AttackPressed && c.body.Grounded() {
		c.actioner.Queue(a.Attack)
	}

	if in.DodgeHeld && !c.body.Grounded() {
		c.actioner.Queue(a.PreSafetyRoll)
	}

	c.actioner.InputDirection(in.MoveX)
	c.body.Walk(in.MoveX)
}

func (c *Controller) OnFallStart() {
	c.actioner.Queue(c.actions.Fall)
}

func (c *Controller) OnJumpEnd() {}

func (c *Controller) OnLand() {
	c.actioner.Queue(c.actions.Idle)
}

func (c *Controller) OnHardLand() {
	if c.current() == c.actions.PreSafetyRoll {
		c.actioner.Queue(c.actions.SafetyRoll)
		return
	}
	c.actioner.Queue(c.actions.Land)
}

func (c *Controller) OnWallSlideStart() {
	c.actioner.Queue(c.actions.WallSlide)
}
