// Package registry holds the fixed target-to-action table the dispatcher
// resolves against. Keeping it a first-class value lets the set of valid
// targets be enumerated and tested without executing anything.
package registry

import (
	"fmt"

	"github.com/iorg-s/delivery-backend/internal/action"
)

// Registry maps target names to actions. Registration order is preserved so
// the usage listing stays deterministic.
type Registry struct {
	order   []string
	actions map[string]action.Action
}

func New() *Registry {
	return &Registry{actions: make(map[string]action.Action)}
}

// Register sets the action for target. It panics if target already exists.
func (r *Registry) Register(target string, act action.Action) {
	if _, exists := r.actions[target]; exists {
		panic(fmt.Sprintf("target %s already registered", target))
	}
	r.order = append(r.order, target)
	r.actions[target] = act
}

// Lookup returns the action for target and whether it exists. Matching is
// exact and case-sensitive.
func (r *Registry) Lookup(target string) (action.Action, bool) {
	act, ok := r.actions[target]
	return act, ok
}

// Targets returns the registered target names in registration order.
func (r *Registry) Targets() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
