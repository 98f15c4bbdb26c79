package prefabs

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/charactercore/action"
)

// scriptRuntime is a compiled tengo hook. Scripts see one global, actor,
// exposing the running character.
type scriptRuntime struct {
	path     string
	compiled *tengo.Compiled
}

func compileScript(path string) (*scriptRuntime, error) {
	src, err := LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", path, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("actor", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("prefabs: compile script %s: %w", path, err)
	}
	return &scriptRuntime{path: path, compiled: compiled}, nil
}

func (rt *scriptRuntime) run(a *action.Actioner) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if err := rt.compiled.Set("actor", buildActor(a)); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func (rt *scriptRuntime) hook() action.Hook {
	return func(a *action.Actioner) {
		if err := rt.run(a); err != nil {
			msg := fmt.Sprintf("action: script %s: %v", rt.path, err)
			if a != nil && a.Logger != nil {
				a.Logger.Print(msg)
				return
			}
			log.Print(msg)
		}
	}
}

func buildActor(a *action.Actioner) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}
	if a == nil {
		return &tengo.ImmutableMap{Value: values}
	}
	body := a.Body()

	values["walk"] = &tengo.UserFunction{Name: "walk", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		v, ok := tengo.ToFloat64(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		body.Walk(v)
		return tengo.TrueValue, nil
	}}

	values["jump"] = &tengo.UserFunction{Name: "jump", Value: func(args ...tengo.Object) (tengo.Object, error) {
		body.Jump()
		return boolObject(body.Jumping()), nil
	}}

	values["stop_jump"] = &tengo.UserFunction{Name: "stop_jump", Value: func(args ...tengo.Object) (tengo.Object, error) {
		body.StopJump()
		return tengo.TrueValue, nil
	}}

	values["displace"] = &tengo.UserFunction{Name: "displace", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return tengo.FalseValue, nil
		}
		x, okX := tengo.ToFloat64(args[0])
		y, okY := tengo.ToFloat64(args[1])
		if !okX || !okY {
			return tengo.FalseValue, nil
		}
		body.Displace(x*float64(a.Direction()), y)
		return tengo.TrueValue, nil
	}}

	values["direction"] = &tengo.UserFunction{Name: "direction", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(a.Direction())}, nil
	}}

	values["grounded"] = &tengo.UserFunction{Name: "grounded", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObject(body.Grounded()), nil
	}}

	values["velocity"] = &tengo.UserFunction{Name: "velocity", Value: func(args ...tengo.Object) (tengo.Object, error) {
		v := body.Velocity()
		return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: v.X}, &tengo.Float{Value: v.Y}}}, nil
	}}

	values["frame"] = &tengo.UserFunction{Name: "frame", Value: func(args ...tengo.Object) (tengo.Object, error) {
		step := a.CurrentStep()
		if step == nil {
			return &tengo.Int{Value: 0}, nil
		}
		return &tengo.Int{Value: int64(step.FrameCount())}, nil
	}}

	values["action"] = &tengo.UserFunction{Name: "action", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.String{Value: a.CurrentAction().String()}, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, objectAsString(arg))
		}
		msg := "script: " + strings.Join(parts, " ")
		if a.Logger != nil {
			a.Logger.Print(msg)
		} else {
			log.Print(msg)
		}
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
