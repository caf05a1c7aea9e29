package lint

import (
	"maps"
	"slices"
	"sync"
)

// Registry holds the known rules and the keys users may refer to them by.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule   // by ID
	names map[string]string // rule name -> ID
	alias map[string]string // alias -> ID
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]Rule),
		names: make(map[string]string),
		alias: make(map[string]string),
	}
}

// Register adds rule, replacing any rule with the same ID.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule.ID()] = rule
	r.names[rule.Name()] = rule.ID()
}

// RegisterAlias makes alias resolve to ruleID. The rule need not be
// registered yet.
func (r *Registry) RegisterAlias(alias, ruleID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alias[alias] = ruleID
}

// Resolve maps an ID, rule name, or alias to a registered rule's ID.
func (r *Registry) Resolve(key string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.rules[key]; ok {
		return key, true
	}
	if id, ok := r.names[key]; ok {
		return id, true
	}
	if id, ok := r.alias[key]; ok {
		if _, registered := r.rules[id]; registered {
			return id, true
		}
	}
	return "", false
}

// Aliases returns the sorted aliases of ruleID.
func (r *Registry) Aliases(ruleID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for alias, id := range r.alias {
		if id == ruleID {
			out = append(out, alias)
		}
	}
	slices.Sort(out)
	return out
}

// Rules returns the registered rules ordered by ID.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Rule, 0, len(r.rules))
	for _, id := range slices.Sorted(maps.Keys(r.rules)) {
		out = append(out, r.rules[id])
	}
	return out
}

// IDs returns the registered rule IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.rules))
}

// DefaultRegistry holds the built-in rules, which register themselves in init.
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
