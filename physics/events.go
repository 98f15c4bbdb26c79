package physics

// EventSink receives a body's lifecycle transitions. The owning controller
// typically translates them into action queue requests.
type EventSink interface {
	OnFallStart()
	OnJumpEnd()
	OnLand()
	OnHardLand()
	OnWallSlideStart()
}

// EventFuncs adapts plain functions to EventSink. Nil fields are skipped.
type EventFuncs struct {
	FallStart      func()
	JumpEnd        func()
	Land           func()
	HardLand       func()
	WallSlideStart func()
}

func (f EventFuncs) OnFallStart() {
	if f.FallStart != nil {
		f.FallStart()
	}
}

func (f EventFuncs) OnJumpEnd() {
	if f.JumpEnd != nil {
		f.JumpEnd()
	}
}

func (f EventFuncs) OnLand() {
	if f.Land != nil {
		f.Land()
	}
}

func (f EventFuncs) OnHardLand() {
	if f.HardLand != nil {
		f.HardLand()
	}
}

func (f EventFuncs) OnWallSlideStart() {
	if f.WallSlideStart != nil {
		f.WallSlideStart()
	}
}

// MultiSink fans events out to every sink in order.
type MultiSink []EventSink

func (m MultiSink) OnFallStart() {
	for _, s := range m {
		s.OnFallStart()
	}
}

func (m MultiSink) OnJumpEnd() {
	for _, s := range m {
		s.OnJumpEnd()
	}
}

func (m MultiSink) OnLand() {
	for _, s := range m {
		s.OnLand()
	}
}

func (m MultiSink) OnHardLand() {
	for _, s := range m {
		s.OnHardLand()
	}
}

func (m MultiSink) OnWallSlideStart() {
	for _, s := range m {
		s.OnWallSlideStart()
	}
}
