package config

import (
	"fmt"
	"sort"
)

// Debug holds the runtime debug drawing switches. It is passed explicitly to
// whatever draws, never read from a global.
type Debug struct {
	DrawMovementCollision bool
	DrawMovementInputs    bool
	DrawTerrainCollision  bool
	DrawAttackHitShapes   bool
	FastInspector         bool

	LineThickness float32
}

const defaultLineThickness = 1

// Toggle names accepted by Toggle and Set.
const (
	ToggleMovementCollision = "movement_collision"
	ToggleMovementInputs    = "movement_inputs"
	ToggleTerrainCollision  = "terrain_collision"
	ToggleAttackHitShapes   = "attack_hit_shapes"
	ToggleFastInspector     = "fast_inspector"
)

func NewDebug() *Debug {
	return &Debug{LineThickness: defaultLineThickness}
}

func (d *Debug) flag(name string) (*bool, error) {
	switch name {
	case ToggleMovementCollision:
		return &d.DrawMovementCollision, nil
	case ToggleMovementInputs:
		return &d.DrawMovementInputs, nil
	case ToggleTerrainCollision:
		return &d.DrawTerrainCollision, nil
	case ToggleAttackHitShapes:
		return &d.DrawAttackHitShapes, nil
	case ToggleFastInspector:
		return &d.FastInspector, nil
	default:
		return nil, fmt.Errorf("config: unknown debug toggle %q", name)
	}
}

// Toggle flips the named switch and returns its new value.
func (d *Debug) Toggle(name string) (bool, error) {
	if d == nil {
		return false, fmt.Errorf("config: nil debug")
	}
	f, err := d.flag(name)
	if err != nil {
		return false, err
	}
	*f = !*f
	return *f, nil
}

func (d *Debug) Set(name string, on bool) error {
	if d == nil {
		return fmt.Errorf("config: nil debug")
	}
	f, err := d.flag(name)
	if err != nil {
		return err
	}
	*f = on
	return nil
}

// Enabled lists the names of every switch that is on, sorted.
func (d *Debug) Enabled() []string {
	if d == nil {
		return nil
	}
	var out []string
	for _, name := range ToggleNames() {
		if f, _ := d.flag(name); *f {
			out = append(out, name)
		}
	}
	return out
}

// Line returns the stroke width for debug shapes.
func (d *Debug) Line() float32 {
	if d == nil || d.LineThickness <= 0 {
		return defaultLineThickness
	}
	return d.LineThickness
}

func ToggleNames() []string {
	names := []string{
		ToggleMovementCollision,
		ToggleMovementInputs,
		ToggleTerrainCollision,
		ToggleAttackHitShapes,
		ToggleFastInspector,
	}
	sort.Strings(names)
	return names
}
