package terrain

import "github.com/milk9111/charactercore/geom"

// Damageable is anything in a chunk an attack can hit.
type Damageable interface {
	Health() int
	Shape() *geom.HitBox
	Damage(amount int)
}

// Dummy is a stationary training target.
type Dummy struct {
	health    int
	transform *geom.Transform
	shape     *geom.HitBox
}

func NewDummy(x, y float64, health int) *Dummy {
	tr := geom.NewTransform(x, y)
	return &Dummy{
		health:    health,
		transform: tr,
		shape:     geom.NewHitBox(0, 0, 1, 2).Follow(tr),
	}
}

func (d *Dummy) Health() int {
	if d == nil {
		return 0
	}
	return d.health
}

func (d *Dummy) Shape() *geom.HitBox {
	if d == nil {
		return nil
	}
	return d.shape
}

func (d *Dummy) Damage(amount int) {
	if d == nil || amount <= 0 {
		return
	}
	d.health -= amount
}
