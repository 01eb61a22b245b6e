package generate

import (
	"fmt"
	"slices"

	"github.com/mmrzaf/dataforge/internal/columns"
)

// Plan is the output of dependency resolution for one selection.
//
// Order lists every column to generate, prerequisites before their dependents,
// each name at most once. Emit is the selection in the caller's original
// order; prerequisites that were not selected appear in Order but not Emit.
type Plan struct {
	Order []string
	Emit  []string
}

// Resolve walks the dependency graph of the selected columns. Selection is
// expected to be normalized already (known names, no duplicates). A cycle is
// reported as an error even though Registry.Validate rules it out at startup;
// the resolver does not assume the graph stays shallow.
func Resolve(reg *columns.Registry, selected []string) (*Plan, error) {
	if len(selected) == 0 {
		return nil, fmt.Errorf("no columns selected")
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int)
	plan := &Plan{Emit: slices.Clone(selected)}

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("cyclic dependency involving column '%s'", name)
		}
		state[name] = visiting

		rule, err := reg.Get(name)
		if err != nil {
			return err
		}
		for _, prereq := range rule.Prerequisites() {
			if err := visit(prereq); err != nil {
				return err
			}
		}

		state[name] = done
		plan.Order = append(plan.Order, name)
		return nil
	}

	for _, name := range selected {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return plan, nil
}
