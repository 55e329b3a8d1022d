package registry

import (
	"fmt"
	"sort"

	"github.com/lucaskalb/rapidx/gen"
)

// Strategy builds a Generator for every Schema it claims to handle.
// Priority breaks ties when more than one registered Strategy can handle
// the same Schema: the registry always tries strategies in descending
// priority order.
type Strategy interface {
	Priority() int
	CanHandle(schema Schema) bool
	Build(schema Schema) gen.Generator[any]
}

// Registry holds an ordered set of strategies plus per-schema overrides
// that bypass strategy selection entirely. The zero value is not usable;
// construct one with New.
type Registry struct {
	strategies []Strategy
	overrides  map[Schema]gen.Generator[any]
	graceful   bool
}

// New builds an empty Registry.
func New() *Registry {
	return &Registry{overrides: make(map[Schema]gen.Generator[any])}
}

// WithGracefulFallback toggles whether Build falls back to a
// type-appropriate zero-value generator instead of returning
// ErrNoStrategy when nothing claims a schema.
func (r *Registry) WithGracefulFallback(on bool) *Registry {
	r.graceful = on
	return r
}

// Register adds strategy to the registry, keeping strategies ordered by
// descending Priority(); ties preserve registration order.
func (r *Registry) Register(strategy Strategy) {
	r.strategies = append(r.strategies, strategy)
	sort.SliceStable(r.strategies, func(i, j int) bool {
		return r.strategies[i].Priority() > r.strategies[j].Priority()
	})
}

// Override pins schema to a fixed generator, bypassing strategy
// selection for every future Build(schema) call with an equal schema.
// schema must be a comparable value (the registry stores it as a map
// key); a Schema implementation holding a slice or map field will panic
// here, the same way it would panic as any other Go map key.
func (r *Registry) Override(schema Schema, g gen.Generator[any]) {
	r.overrides[schema] = g
}

// Build resolves schema to a Generator: an override if one was set,
// otherwise the highest-priority strategy reporting CanHandle(schema) ==
// true. If nothing matches, Build returns ErrNoStrategy unless graceful
// fallback is enabled, in which case it returns a generator that always
// produces schema.Kind()'s zero value ("", 0, false, an empty slice, an
// empty map, or nil).
func (r *Registry) Build(schema Schema) (gen.Generator[any], error) {
	if g, ok := r.overrides[schema]; ok {
		return g, nil
	}
	for _, strategy := range r.strategies {
		if strategy.CanHandle(schema) {
			return strategy.Build(schema), nil
		}
	}
	if r.graceful {
		return fallbackGenerator(schema.Kind()), nil
	}
	return nil, fmt.Errorf("%w: kind %d", ErrNoStrategy, schema.Kind())
}

func fallbackGenerator(k Kind) gen.Generator[any] {
	switch k {
	case KindString:
		return gen.MapGen(gen.Const(""), func(v string) any { return v })
	case KindInt:
		return gen.MapGen(gen.Const(0), func(v int) any { return v })
	case KindBool:
		return gen.MapGen(gen.Const(false), func(v bool) any { return v })
	case KindArray:
		return gen.MapGen(gen.Const([]any{}), func(v []any) any { return v })
	case KindObject:
		return gen.MapGen(gen.Const(map[string]any{}), func(v map[string]any) any { return v })
	default:
		return gen.Const[any](nil)
	}
}
