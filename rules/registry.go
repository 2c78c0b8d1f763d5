package rules

import (
	"fmt"
	"sort"
	"sync"
)

type registry struct {
	sets map[string][]Rule
	mu   sync.RWMutex
}

var register = &registry{
	sets: map[string][]Rule{
		DefaultSetName: DefaultRules(),
	},
}

// DefaultSetName is the name under which the built-in rule set is
// pre-registered.
const DefaultSetName = "default"

// Register adds a named rule set to the global registry. The set is
// validated the same way NewMatcher validates its input. Returns
// ErrSetExists if the name is taken; use Replace to update an existing set.
// Thread-safe for concurrent registration.
func Register(name string, ruleList []Rule) error {
	if name == "" {
		return ErrEmptySetName
	}
	if _, err := NewMatcher(ruleList); err != nil {
		return fmt.Errorf("rule set %q: %w", name, err)
	}

	register.mu.Lock()
	defer register.mu.Unlock()

	if _, exists := register.sets[name]; exists {
		return fmt.Errorf("%w: %s", ErrSetExists, name)
	}

	register.sets[name] = cloneRules(ruleList)
	return nil
}

// Replace updates an existing named rule set.
// Returns ErrSetNotFound if no set with the given name is registered.
// Thread-safe for concurrent access.
func Replace(name string, ruleList []Rule) error {
	if name == "" {
		return ErrEmptySetName
	}
	if _, err := NewMatcher(ruleList); err != nil {
		return fmt.Errorf("rule set %q: %w", name, err)
	}

	register.mu.Lock()
	defer register.mu.Unlock()

	if _, exists := register.sets[name]; !exists {
		return fmt.Errorf("%w: %s", ErrSetNotFound, name)
	}

	register.sets[name] = cloneRules(ruleList)
	return nil
}

// Get builds a Matcher from a registered rule set.
// Returns ErrSetNotFound if the name is not registered.
// Thread-safe for concurrent access.
func Get(name string) (*Matcher, error) {
	register.mu.RLock()
	ruleList, exists := register.sets[name]
	register.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSetNotFound, name)
	}
	return NewMatcher(ruleList)
}

// List returns the names of all registered rule sets, sorted.
// Thread-safe for concurrent access.
func List() []string {
	register.mu.RLock()
	defer register.mu.RUnlock()

	names := make([]string, 0, len(register.sets))
	for name := range register.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func cloneRules(ruleList []Rule) []Rule {
	cloned := make([]Rule, len(ruleList))
	copy(cloned, ruleList)
	return cloned
}
