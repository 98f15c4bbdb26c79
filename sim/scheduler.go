package sim

// System advances one concern of the world each tick.
type System interface {
	Update(w *World)
}

// Scheduler runs systems in the order they were added.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

// DefaultScheduler is the fixed per-tick order: input, terrain assignment,
// actions, then physics.
func DefaultScheduler() *Scheduler {
	return NewScheduler(InputSystem{}, TerrainSystem{}, ActionSystem{}, PhysicsSystem{})
}
