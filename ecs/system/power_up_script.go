package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/speedrun/ecs"
	"github.com/milk9111/speedrun/ecs/component"
	"github.com/milk9111/speedrun/prefabs"
)

// Each effect script defines apply(engine); the dispatch line runs it
// against the engine bound for the current pickup.
const powerUpDispatchScript = `
apply(__engine)
`

// PowerUpEffects applies power-up effects from prefabs/scripts/<kind>.tengo.
// Compiled scripts are cached per kind until Invalidate.
type PowerUpEffects struct {
	cache map[string]*tengo.Compiled
}

func NewPowerUpEffects() *PowerUpEffects {
	return &PowerUpEffects{cache: map[string]*tengo.Compiled{}}
}

// Invalidate drops every compiled script so the next pickup reloads it.
func (p *PowerUpEffects) Invalidate() {
	if p == nil {
		return
	}
	p.cache = map[string]*tengo.Compiled{}
}

// Apply runs the effect for kind against player.
func (p *PowerUpEffects) Apply(w *ecs.World, player ecs.Entity, kind string) error {
	if p == nil || w == nil {
		return fmt.Errorf("power-up: no effect runtime")
	}
	compiled, err := p.compiled(kind)
	if err != nil {
		return fmt.Errorf("power-up %q: %w", kind, err)
	}
	if err := compiled.Set("__engine", buildPowerUpEngine(w, player)); err != nil {
		return fmt.Errorf("power-up %q: %w", kind, err)
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("power-up %q: run: %w", kind, err)
	}
	return nil
}

func (p *PowerUpEffects) compiled(kind string) (*tengo.Compiled, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		return nil, fmt.Errorf("empty kind")
	}
	if p.cache == nil {
		p.cache = map[string]*tengo.Compiled{}
	}
	if c, ok := p.cache[kind]; ok && c != nil {
		return c, nil
	}

	scriptBytes, err := prefabs.LoadScript(kind)
	if err != nil {
		return nil, err
	}

	src := string(scriptBytes) + "\n" + powerUpDispatchScript
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__engine", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	p.cache[kind] = compiled
	return compiled, nil
}

func buildPowerUpEngine(w *ecs.World, player ecs.Entity) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["speed_boost"] = &tengo.UserFunction{Name: "speed_boost", Value: func(args ...tengo.Object) (tengo.Object, error) {
		boost, ok := ecs.Get(w, player, component.SpeedBoostComponent.Kind())
		if !ok || boost == nil {
			return tengo.FalseValue, nil
		}
		boost.Activate()
		return tengo.TrueValue, nil
	}}

	values["message"] = &tengo.UserFunction{Name: "message", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 2 {
			return tengo.FalseValue, nil
		}
		text := objectAsString(args[0])
		frames, ok := tengo.ToInt(args[1])
		if !ok || frames <= 0 {
			return tengo.FalseValue, nil
		}
		e, ok := ecs.First(w, component.PickupMessageComponent.Kind())
		if !ok {
			return tengo.FalseValue, nil
		}
		msg, ok := ecs.Get(w, e, component.PickupMessageComponent.Kind())
		if !ok || msg == nil {
			return tengo.FalseValue, nil
		}
		msg.Text = text
		msg.Frames = frames
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
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
