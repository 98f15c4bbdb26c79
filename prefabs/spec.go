package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/charactercore/action"
	"github.com/milk9111/charactercore/geom"
	"github.com/milk9111/charactercore/physics"
)

// Stock prefab files.
const (
	TuningFile  = "walk_physics.yaml"
	ActionsFile = "actions.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadTuning reads movement constants. Keys missing from the file keep
// their default values.
func LoadTuning(filename string) (physics.Tuning, error) {
	tuning := physics.DefaultTuning()
	data, err := Load(filename)
	if err != nil {
		return tuning, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return physics.DefaultTuning(), fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	if tuning.FrameRate <= 0 {
		return physics.DefaultTuning(), fmt.Errorf("prefabs: %s: frame_rate must be positive", filename)
	}
	return tuning, nil
}

type HitBoxSpec struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
}

func (s *HitBoxSpec) build() *geom.HitBox {
	if s == nil {
		return nil
	}
	return geom.NewHitBox(s.OffsetX, s.OffsetY, s.W, s.H)
}

type VecSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (s *VecSpec) build() *geom.Vec {
	if s == nil {
		return nil
	}
	return &geom.Vec{X: s.X, Y: s.Y}
}

type AttackSpec struct {
	Damage int        `yaml:"damage"`
	Shape  HitBoxSpec `yaml:"shape"`
}

type StepSpec struct {
	Duration           int         `yaml:"duration"`
	Freeze             bool        `yaml:"freeze"`
	AllowsFlip         *bool       `yaml:"allows_flip"`
	Sprite             string      `yaml:"sprite"`
	Shape              *HitBoxSpec `yaml:"shape"`
	StartDisplacement  *VecSpec    `yaml:"start_displacement"`
	UpdateDisplacement *VecSpec    `yaml:"update_displacement"`
	SpriteOffset       VecSpec     `yaml:"sprite_offset"`
	// CancellableBy is "all", "none", or a list of action names/tags.
	CancellableBy any              `yaml:"cancellable_by"`
	OnStart       []map[string]any `yaml:"on_start"`
	OnUpdate      []map[string]any `yaml:"on_update"`
	OnEnd         []map[string]any `yaml:"on_end"`
	Attack        *AttackSpec      `yaml:"attack"`
}

type ActionSpec struct {
	Name          string           `yaml:"name"`
	Tags          []string         `yaml:"tags"`
	Loop          bool             `yaml:"loop"`
	AllowMovement bool             `yaml:"allow_movement"`
	PausePhysics  bool             `yaml:"pause_physics"`
	CancellableBy any              `yaml:"cancellable_by"`
	OnStart       []map[string]any `yaml:"on_start"`
	OnUpdate      []map[string]any `yaml:"on_update"`
	OnEnd         []map[string]any `yaml:"on_end"`
	Steps         []StepSpec       `yaml:"steps"`
}

type ActionsSpec struct {
	Actions []ActionSpec `yaml:"actions"`
}

// LoadActions reads and compiles an action set keyed by action name.
func LoadActions(filename string) (map[string]*action.Action, error) {
	spec, err := LoadSpec[ActionsSpec](filename)
	if err != nil {
		return nil, err
	}
	actions, err := CompileActions(spec)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return actions, nil
}

func CompileActions(spec ActionsSpec) (map[string]*action.Action, error) {
	out := make(map[string]*action.Action, len(spec.Actions))
	for i, as := range spec.Actions {
		if as.Name == "" {
			return nil, fmt.Errorf("action %d: missing name", i)
		}
		if _, dup := out[as.Name]; dup {
			return nil, fmt.Errorf("action %q: defined twice", as.Name)
		}
		a, err := CompileAction(as)
		if err != nil {
			return nil, err
		}
		out[as.Name] = a
	}
	return out, nil
}

func CompileAction(spec ActionSpec) (*action.Action, error) {
	if len(spec.Steps) == 0 {
		return nil, fmt.Errorf("action %q: no steps", spec.Name)
	}
	policy, err := compilePolicy(spec.CancellableBy)
	if err != nil {
		return nil, fmt.Errorf("action %q: %w", spec.Name, err)
	}
	a := &action.Action{
		Name:          spec.Name,
		Tags:          spec.Tags,
		Loop:          spec.Loop,
		AllowMovement: spec.AllowMovement,
		PausePhysics:  spec.PausePhysics,
		CancellableBy: policy,
	}
	if a.OnStart, err = compileHooks(spec.OnStart); err != nil {
		return nil, fmt.Errorf("action %q on_start: %w", spec.Name, err)
	}
	if a.OnUpdate, err = compileHooks(spec.OnUpdate); err != nil {
		return nil, fmt.Errorf("action %q on_update: %w", spec.Name, err)
	}
	if a.OnEnd, err = compileHooks(spec.OnEnd); err != nil {
		return nil, fmt.Errorf("action %q on_end: %w", spec.Name, err)
	}

	sprites := make([]action.Sprite, 0, len(spec.Steps))
	hasSprites := false
	for i, ss := range spec.Steps {
		step, err := compileStep(ss)
		if err != nil {
			return nil, fmt.Errorf("action %q step %d: %w", spec.Name, i, err)
		}
		a.Steps = append(a.Steps, step)
		sprites = append(sprites, ss.Sprite)
		hasSprites = hasSprites || ss.Sprite != ""
	}
	if !hasSprites {
		sprites = nil
	}
	if err := a.Initialize(sprites...); err != nil {
		return nil, err
	}
	return a, nil
}

func compileStep(spec StepSpec) (*action.Step, error) {
	policy, err := compilePolicy(spec.CancellableBy)
	if err != nil {
		return nil, err
	}
	s := &action.Step{
		Duration:           spec.Duration,
		Freeze:             spec.Freeze,
		AllowsFlip:         spec.AllowsFlip == nil || *spec.AllowsFlip,
		Shape:              spec.Shape.build(),
		StartDisplacement:  spec.StartDisplacement.build(),
		UpdateDisplacement: spec.UpdateDisplacement.build(),
		SpriteOffset:       geom.Vec{X: spec.SpriteOffset.X, Y: spec.SpriteOffset.Y},
		CancellableBy:      policy,
	}
	if spec.Attack != nil {
		s.Attack = &action.Attack{Damage: spec.Attack.Damage, Shape: spec.Attack.Shape.build()}
	}
	if s.OnStart, err = compileHooks(spec.OnStart); err != nil {
		return nil, fmt.Errorf("on_start: %w", err)
	}
	if s.OnUpdate, err = compileHooks(spec.OnUpdate); err != nil {
		return nil, fmt.Errorf("on_update: %w", err)
	}
	if s.OnEnd, err = compileHooks(spec.OnEnd); err != nil {
		return nil, fmt.Errorf("on_end: %w", err)
	}
	return s, nil
}

func compilePolicy(raw any) (action.CancelPolicy, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		switch v {
		case "all":
			return action.CancellableByAll, nil
		case "none":
			return action.CancellableByNone, nil
		default:
			return action.CancellableByTags(v), nil
		}
	case []any:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("cancellable_by: invalid entry %v", item)
			}
			tags = append(tags, s)
		}
		return action.CancellableByTags(tags...), nil
	default:
		return nil, fmt.Errorf("cancellable_by: invalid value %v", raw)
	}
}

func decodeArg[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}
