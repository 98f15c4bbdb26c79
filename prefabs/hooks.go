package prefabs

import (
	"fmt"
	"log"

	"github.com/milk9111/charactercore/action"
)

// hookRegistry maps the hook names usable in action specs to constructors
// taking the YAML argument.
var hookRegistry = map[string]func(arg any) (action.Hook, error){
	"print": func(arg any) (action.Hook, error) {
		msg := fmt.Sprint(arg)
		return func(a *action.Actioner) {
			if a != nil && a.Logger != nil {
				a.Logger.Print("action: ", msg)
				return
			}
			log.Print("action: ", msg)
		}, nil
	},
	"walk": func(arg any) (action.Hook, error) {
		v, err := decodeArg[float64](arg)
		if err != nil {
			return nil, fmt.Errorf("walk: %w", err)
		}
		return func(a *action.Actioner) {
			a.Body().Walk(v)
		}, nil
	},
	"walk_facing": func(_ any) (action.Hook, error) {
		return func(a *action.Actioner) {
			a.Body().Walk(float64(a.Direction()))
		}, nil
	},
	"jump": func(_ any) (action.Hook, error) {
		return func(a *action.Actioner) {
			a.Body().Jump()
		}, nil
	},
	"stop_jump": func(_ any) (action.Hook, error) {
		return func(a *action.Actioner) {
			a.Body().StopJump()
		}, nil
	},
	"displace": func(arg any) (action.Hook, error) {
		v, err := decodeArg[VecSpec](arg)
		if err != nil {
			return nil, fmt.Errorf("displace: %w", err)
		}
		return func(a *action.Actioner) {
			a.Body().Displace(v.X*float64(a.Direction()), v.Y)
		}, nil
	},
	"velocity_x": func(arg any) (action.Hook, error) {
		v, err := decodeArg[float64](arg)
		if err != nil {
			return nil, fmt.Errorf("velocity_x: %w", err)
		}
		return func(a *action.Actioner) {
			a.Body().SetVelocityX(v * float64(a.Direction()))
		}, nil
	},
	"script": func(arg any) (action.Hook, error) {
		path, ok := arg.(string)
		if !ok || path == "" {
			return nil, fmt.Errorf("script: want a script name, got %v", arg)
		}
		rt, err := compileScript(path)
		if err != nil {
			return nil, err
		}
		return rt.hook(), nil
	},
}

// HookNames lists the registered hook names.
func HookNames() []string {
	names := make([]string, 0, len(hookRegistry))
	for name := range hookRegistry {
		names = append(names, name)
	}
	return names
}

// compileHooks turns a list of single-key maps into one hook running each
// entry in order.
func compileHooks(list []map[string]any) (action.Hook, error) {
	if len(list) == 0 {
		return nil, nil
	}
	hooks := make([]action.Hook, 0, len(list))
	for _, entry := range list {
		if len(entry) != 1 {
			return nil, fmt.Errorf("hook entry must have exactly one key, got %d", len(entry))
		}
		for name, arg := range entry {
			makeHook, ok := hookRegistry[name]
			if !ok {
				return nil, fmt.Errorf("unknown hook %q", name)
			}
			h, err := makeHook(arg)
			if err != nil {
				return nil, err
			}
			hooks = append(hooks, h)
		}
	}
	if len(hooks) == 1 {
		return hooks[0], nil
	}
	return func(a *action.Actioner) {
		for _, h := range hooks {
			h(a)
		}
	}, nil
}
