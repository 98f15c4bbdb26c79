package sim

// EventKind names a body transition.
type EventKind string

const (
	EventFallStart      EventKind = "fall_start"
	EventJumpEnd        EventKind = "jump_end"
	EventLand           EventKind = "land"
	EventHardLand       EventKind = "hard_land"
	EventWallSlideStart EventKind = "wall_slide_start"
)

// Event is a body transition recorded during a tick.
type Event struct {
	Tick      uint64
	Character string
	Kind      EventKind
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// recorder is the physics.EventSink that copies a character's transitions
// into the world queue.
type recorder struct {
	world *World
	name  string
}

func (r recorder) push(kind EventKind) {
	r.world.events.Push(Event{Tick: r.world.tick, Character: r.name, Kind: kind})
}

func (r recorder) OnFallStart()      { r.push(EventFallStart) }
func (r recorder) OnJumpEnd()        { r.push(EventJumpEnd) }
func (r recorder) OnLand()           { r.push(EventLand) }
func (r recorder) OnHardLand()       { r.push(EventHardLand) }
func (r recorder) OnWallSlideStart() { r.push(EventWallSlideStart) }
