package action

import (
	"github.com/milk9111/charactercore/geom"
	"github.com/milk9111/charactercore/terrain"
)

// Targets is the query an attack uses to find what it hits. terrain.Chunk
// implements it.
type Targets interface {
	DamageablesIn(box *geom.HitBox) []terrain.Damageable
}

// Attack is an optional step payload: while the step is active its Shape
// follows the character and damages every overlapping target once.
type Attack struct {
	Damage int
	Shape  *geom.HitBox

	hit map[*geom.HitBox]struct{}
}

// Active reports whether the hit shape is currently attached.
func (k *Attack) Active() bool {
	return k != nil && k.Shape != nil && k.Shape.Following() != nil
}

func (k *Attack) attach(a *Actioner) {
	clear(k.hit)
	if k.Shape == nil {
		return
	}
	k.Shape.Follow(a.Transform())
	k.Shape.SetDirection(a.Direction())
}

func (k *Attack) detach() {
	if k.Shape != nil {
		k.Shape.Follow(nil)
	}
}

// strike damages targets overlapping the shape that were not hit yet during
// this activation. It returns how many were damaged.
func (k *Attack) strike(a *Actioner) int {
	if !k.Active() || a == nil {
		return 0
	}
	targets, ok := a.Body().Terrain().(Targets)
	if !ok || targets == nil {
		return 0
	}
	if k.hit == nil {
		k.hit = make(map[*geom.HitBox]struct{})
	}
	n := 0
	// keyed by shape, damageables need not be comparable
	for _, d := range targets.DamageablesIn(k.Shape) {
		shape := d.Shape()
		if shape == nil {
			continue
		}
		if _, done := k.hit[shape]; done {
			continue
		}
		k.hit[shape] = struct{}{}
		d.Damage(k.Damage)
		n++
	}
	return n
}
