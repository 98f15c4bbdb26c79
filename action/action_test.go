package action

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"testing"

	"github.com/milk9111/charactercore/geom"
	"github.com/milk9111/charactercore/physics"
	"github.com/milk9111/charactercore/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	sprites []Sprite
	offsets []geom.Vec
	flipped bool
}

func (r *recordingSink) SetSprite(s Sprite) { r.sprites = append(r.sprites, s) }
func (r *recordingSink) SetSpriteOffset(x, y float64) {
	r.offsets = append(r.offsets, geom.Vec{X: x, Y: y})
}
func (r *recordingSink) SetFlipped(f bool) { r.flipped = f }

func newActioner() (*Actioner, *recordingSink) {
	sink := &recordingSink{}
	body := physics.NewBody(geom.NewTransform(0, 0), physics.DefaultTuning())
	return NewActioner(body, sink), sink
}

func looping(name string, durations ...int) *Action {
	a := &Action{Name: name, Loop: true}
	for _, d := range durations {
		a.Steps = append(a.Steps, &Step{Duration: d, AllowsFlip: true})
	}
	return a
}

func TestLoopReturnsToFirstStep(t *testing.T) {
	tests := []struct {
		name      string
		durations []int
	}{
		{"single", []int{3}},
		{"two", []int{2, 3}},
		{"three", []int{1, 4, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act, _ := newActioner()
			a := looping(tt.name, tt.durations...)
			starts := 0
			a.Steps[0].OnStart = func(*Actioner) { starts++ }
			require.NoError(t, a.Initialize())

			act.Initialize(a)
			assert.Equal(t, 0, a.StepIndex())
			assert.Equal(t, 1, a.CurrentStep().FrameCount())

			total := 0
			for _, d := range tt.durations {
				total += d
			}
			for cycle := 1; cycle <= 3; cycle++ {
				for i := 0; i < total; i++ {
					act.Update()
				}
				assert.Equal(t, 0, a.StepIndex())
				assert.Equal(t, 1, a.CurrentStep().FrameCount())
				assert.Equal(t, cycle+1, starts)
			}
			assert.Same(t, a, act.CurrentAction())
		})
	}
}

func TestStepsAdvanceInOrder(t *testing.T) {
	act, _ := newActioner()
	a := looping("seq", 2, 1)
	var got []string
	for i, s := range a.Steps {
		i := i
		s.OnStart = func(*Actioner) { got = append(got, fmt.Sprintf("start%d", i)) }
		s.OnEnd = func(*Actioner) { got = append(got, fmt.Sprintf("end%d", i)) }
	}
	a.OnEnd = func(*Actioner) { got = append(got, "action_end") }
	act.Initialize(a)
	for i := 0; i < 3; i++ {
		act.Update()
	}
	assert.Equal(t, []string{"start0", "end0", "start1", "end1", "action_end", "start0"}, got)
}

func TestFrozenStepHolds(t *testing.T) {
	act, _ := newActioner()
	a := &Action{Name: "hold", Steps: []*Step{{Freeze: true}}}
	act.Initialize(a)
	for i := 0; i < 100; i++ {
		act.Update()
	}
	assert.Same(t, a, act.CurrentAction())
	assert.Zero(t, a.CurrentStep().FrameCount())
}

func TestZeroDurationActsAsOne(t *testing.T) {
	act, _ := newActioner()
	a := looping("zero", 0)
	ends := 0
	a.OnEnd = func(*Actioner) { ends++ }
	act.Initialize(a)
	act.Update()
	assert.Equal(t, 1, ends)
}

func TestNonLoopingFallsBackToDefault(t *testing.T) {
	act, _ := newActioner()
	idle := looping("idle", 3)
	land := &Action{Name: "land", Steps: []*Step{{Duration: 2}}}
	act.Initialize(idle)

	act.Queue(land)
	require.Same(t, land, act.CurrentAction())
	act.Update()
	assert.Same(t, land, act.CurrentAction())
	act.Update()
	assert.Same(t, idle, act.CurrentAction())
	assert.False(t, land.Active())
}

func TestCancelPolicies(t *testing.T) {
	attack := &Action{Name: "attack", Tags: []string{"combat"}}
	walk := &Action{Name: "walk"}
	candidates := []*Action{attack, walk, nil}

	for _, c := range candidates {
		assert.True(t, CancellableByAll(c))
		assert.False(t, CancellableByNone(c))
	}

	byTag := CancellableByTags("combat")
	assert.True(t, byTag(attack))
	assert.False(t, byTag(walk))
	assert.False(t, byTag(nil))

	byName := CancellableByTags("walk")
	assert.True(t, byName(walk))

	assert.False(t, CancellableByTags()(attack))
}

func TestQueuePreemptsWhenAllowed(t *testing.T) {
	act, _ := newActioner()
	var got []string
	idle := looping("idle", 3)
	idle.Steps[0].OnEnd = func(*Actioner) { got = append(got, "idle_end") }
	idle.Steps[0].Attack = &Attack{Shape: geom.NewHitBox(0, 0, 1, 1)}
	walk := looping("walk", 1)
	walk.Steps[0].OnStart = func(*Actioner) {
		got = append(got, "walk_start")
		assert.False(t, idle.Steps[0].Attack.Active(), "cancel runs before the new start")
	}
	act.Initialize(idle)
	require.True(t, idle.Steps[0].Attack.Active())

	act.Queue(walk)
	assert.Same(t, walk, act.CurrentAction())
	assert.Nil(t, act.Queued())
	assert.Equal(t, []string{"walk_start"}, got)
	assert.False(t, idle.Active())
}

func TestQueueDeferredOverwrites(t *testing.T) {
	act, _ := newActioner()
	roll := &Action{Name: "roll", Steps: []*Step{{Duration: 2, CancellableBy: CancellableByNone}}}
	jump := looping("jump", 1)
	fall := looping("fall", 1)
	idle := looping("idle", 1)
	act.Initialize(idle)

	act.Queue(roll)
	require.Same(t, roll, act.CurrentAction())

	act.Queue(jump)
	assert.Same(t, roll, act.CurrentAction())
	assert.Same(t, jump, act.Queued())

	act.Queue(fall)
	act.Queue(fall)
	assert.Same(t, roll, act.CurrentAction())
	assert.Same(t, fall, act.Queued())

	act.Update()
	act.Update()
	assert.Same(t, fall, act.CurrentAction())
	assert.Nil(t, act.Queued())
}

func TestActionLevelPolicyGates(t *testing.T) {
	act, _ := newActioner()
	a := looping("guarded", 5)
	a.CancellableBy = CancellableByTags("urgent")
	act.Initialize(a)

	plain := looping("plain", 1)
	urgent := looping("urgent", 1)
	assert.False(t, a.IsCancellableBy(plain))
	assert.True(t, a.IsCancellableBy(urgent))

	a.Steps[0].CancellableBy = CancellableByNone
	assert.False(t, a.IsCancellableBy(urgent))
}

func TestQueueDuringStartIsDeferred(t *testing.T) {
	act, _ := newActioner()
	idle := looping("idle", 3)
	fall := looping("fall", 1)
	dash := looping("dash", 4)
	dash.OnStart = func(a *Actioner) { a.Queue(fall) }
	dash.Steps[0].OnStart = func(a *Actioner) {
		assert.Same(t, dash, a.CurrentAction())
	}
	act.Initialize(idle)

	act.Queue(dash)
	assert.Same(t, fall, act.CurrentAction())
	assert.False(t, dash.Active())
}

func TestIdleWalkIdle(t *testing.T) {
	act, _ := newActioner()
	idle := looping("idle", 3)
	walk := looping("walk", 1)
	act.Initialize(idle)

	for i := 0; i < 10; i++ {
		act.Update()
		assert.Same(t, idle, act.CurrentAction())
	}

	act.Queue(walk)
	for i := 0; i < 5; i++ {
		act.Update()
		assert.Same(t, walk, act.CurrentAction())
	}

	act.Queue(idle)
	assert.Same(t, idle, act.CurrentAction())
	assert.Equal(t, 0, idle.StepIndex())
	assert.Equal(t, 1, idle.CurrentStep().FrameCount())
}

func TestStepAppliesShapeSpriteAndDisplacement(t *testing.T) {
	act, sink := newActioner()
	shape := geom.NewHitBox(0, 0, 1, 0.5)
	a := &Action{
		Name:          "slide",
		AllowMovement: true,
		PausePhysics:  true,
		Steps: []*Step{{
			Duration:           4,
			AllowsFlip:         true,
			Shape:              shape,
			SpriteOffset:       geom.Vec{X: 0.5, Y: 0.25},
			StartDisplacement:  &geom.Vec{X: 1},
			UpdateDisplacement: &geom.Vec{X: 0.5},
		}},
	}
	require.NoError(t, a.Initialize("frame0"))
	act.SetDirection(-1)
	act.Initialize(a)

	body := act.Body()
	assert.Same(t, shape, body.Shape())
	assert.True(t, body.AllowMovement)
	assert.True(t, body.Paused)
	assert.Equal(t, []Sprite{"frame0"}, sink.sprites)
	assert.Equal(t, []geom.Vec{{X: -0.5, Y: 0.25}}, sink.offsets)
	assert.True(t, sink.flipped)
	// start displacement plus the first update
	assert.InDelta(t, -1.5, body.Transform().Position.X, 1e-9)

	act.Update()
	assert.InDelta(t, -2.0, body.Transform().Position.X, 1e-9)
}

func TestUpdateHookSkippedWhenActionRestarts(t *testing.T) {
	tests := []struct {
		name string
		loop bool
	}{
		{"loop", true},
		{"default fallback", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act, _ := newActioner()
			starts, updates := 0, 0
			a := &Action{
				Name:     "blink",
				Loop:     tt.loop,
				Steps:    []*Step{{Duration: 2}},
				OnStart:  func(*Actioner) { starts++ },
				OnUpdate: func(*Actioner) { updates++ },
			}
			act.Initialize(a)

			for i := 0; i < 4; i++ {
				act.Update()
			}
			assert.Same(t, a, act.CurrentAction())
			assert.Equal(t, 3, starts)
			assert.Equal(t, 2, updates)
		})
	}
}

func TestInputDirectionRespectsFlipLock(t *testing.T) {
	act, sink := newActioner()
	a := looping("locked", 10)
	a.Steps[0].AllowsFlip = false
	act.Initialize(a)

	act.InputDirection(-1)
	assert.Equal(t, 1, act.Direction())

	a.Steps[0].AllowsFlip = true
	act.InputDirection(0)
	assert.Equal(t, 1, act.Direction())
	act.InputDirection(-0.4)
	assert.Equal(t, -1, act.Direction())
	assert.True(t, act.Body().Flipped)
	assert.True(t, sink.flipped)
}

func TestInputDirectionRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		log   string
	}{
		{"nan", math.NaN(), "invalid input direction NaN"},
		{"positive inf", math.Inf(1), "invalid input direction +Inf"},
		{"negative inf", math.Inf(-1), "invalid input direction -Inf"},
		{"above one", 5, "invalid input direction 5"},
		{"below minus one", -1.5, "invalid input direction -1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			act, sink := newActioner()
			act.Logger = log.New(&buf, "", 0)
			act.Initialize(looping("idle", 3))
			act.SetDirection(-1)

			act.InputDirection(tt.value)
			assert.Equal(t, -1, act.Direction())
			assert.True(t, act.Body().Flipped)
			assert.True(t, sink.flipped)
			assert.Contains(t, buf.String(), tt.log)
		})
	}
}

func TestSetDirectionRejectsInvalid(t *testing.T) {
	var buf bytes.Buffer
	act, _ := newActioner()
	act.Logger = log.New(&buf, "", 0)
	act.SetDirection(0)
	act.SetDirection(2)
	assert.Equal(t, 1, act.Direction())
	assert.Contains(t, buf.String(), "invalid direction 0")
	assert.Contains(t, buf.String(), "invalid direction 2")
}

func TestQueueNilIsLogged(t *testing.T) {
	var buf bytes.Buffer
	act, _ := newActioner()
	act.Logger = log.New(&buf, "", 0)
	idle := looping("idle", 3)
	act.Initialize(idle)
	act.Queue(nil)
	assert.Same(t, idle, act.CurrentAction())
	assert.Contains(t, buf.String(), "nil action")
}

func TestMisuseIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	act, _ := newActioner()
	act.Logger = log.New(&buf, "", 0)
	idle := looping("idle", 3)
	act.Initialize(idle)

	other := looping("other", 1)
	assert.NotPanics(t, func() {
		other.NextStep()
		other.End()
		other.Update()
	})
	assert.Same(t, idle, act.CurrentAction())
}

func TestInitializeErrors(t *testing.T) {
	assert.Error(t, (&Action{Name: "empty"}).Initialize())
	assert.Error(t, (&Action{Name: "nil", Steps: []*Step{nil}}).Initialize())

	shared := &Step{Duration: 1}
	a := &Action{Name: "a", Steps: []*Step{shared}}
	b := &Action{Name: "b", Steps: []*Step{shared}}
	require.NoError(t, a.Initialize())
	assert.NoError(t, a.Initialize())
	assert.Error(t, b.Initialize())
}

func TestAttackHitsOncePerActivation(t *testing.T) {
	chunk := terrain.NewChunk(-10, -10, 20, 20)
	dummy := terrain.NewDummy(2, 0, 50)
	chunk.AddDamageable(dummy)

	act, _ := newActioner()
	act.Body().SetTerrain(chunk)

	swing := &Action{Name: "swing", Steps: []*Step{
		{Duration: 2},
		{Duration: 3, Attack: &Attack{Damage: 10, Shape: geom.NewHitBox(1, 0.5, 1.5, 0.5)}},
	}}
	idle := looping("idle", 3)
	act.Initialize(idle)

	act.Queue(swing)
	for i := 0; i < 3; i++ {
		act.Update()
	}
	assert.Equal(t, 40, dummy.Health())
	assert.True(t, swing.Steps[1].Attack.Active())

	for i := 0; i < 10 && act.CurrentAction() == swing; i++ {
		act.Update()
	}
	assert.Equal(t, 40, dummy.Health())
	assert.False(t, swing.Steps[1].Attack.Active())

	act.Queue(swing)
	for i := 0; i < 3; i++ {
		act.Update()
	}
	assert.Equal(t, 30, dummy.Health())
}

type scoreboard struct {
	shape *geom.HitBox
	taken *[]int
	tags  []string
}

func (s scoreboard) Health() int         { return 0 }
func (s scoreboard) Shape() *geom.HitBox { return s.shape }
func (s scoreboard) Damage(n int)        { *s.taken = append(*s.taken, n) }

func TestAttackHitsValueDamageable(t *testing.T) {
	chunk := terrain.NewChunk(-10, -10, 20, 20)
	var taken []int
	chunk.AddDamageable(scoreboard{
		shape: geom.NewHitBox(0, 0, 1, 2).Follow(geom.NewTransform(2, 0)),
		taken: &taken,
		tags:  []string{"target"},
	})

	act, _ := newActioner()
	act.Body().SetTerrain(chunk)
	swing := &Action{Name: "swing", Steps: []*Step{
		{Duration: 5, Attack: &Attack{Damage: 10, Shape: geom.NewHitBox(1, 0.5, 1.5, 0.5)}},
	}}
	act.Initialize(looping("idle", 3))
	act.Queue(swing)

	assert.NotPanics(t, func() {
		for i := 0; i < 3; i++ {
			act.Update()
		}
	})
	assert.Equal(t, []int{10}, taken)
}

func TestAttackFacesActioner(t *testing.T) {
	act, _ := newActioner()
	shape := geom.NewHitBox(1, 0, 1, 1)
	a := &Action{Name: "poke", Steps: []*Step{{Duration: 5, AllowsFlip: true, Attack: &Attack{Shape: shape}}}}
	act.SetDirection(-1)
	act.Initialize(a)
	assert.Equal(t, -1, shape.Direction())
	assert.Equal(t, -2.0, shape.X())

	act.SetDirection(1)
	assert.Equal(t, 1, shape.Direction())
	assert.Equal(t, 1.0, shape.X())
}
