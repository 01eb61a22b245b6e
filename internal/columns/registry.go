package columns

import (
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/mmrzaf/dataforge/internal/domain"
)

// Registry maps column names to rules. It is built once at startup and
// read-only afterwards.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

func (r *Registry) Register(name string, rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[name] = rule
}

func (r *Registry) Get(name string) (Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[name]
	if !ok {
		return nil, fmt.Errorf("column not found: %s", name)
	}
	return rule, nil
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rules[name]
	return ok
}

func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Infos() []domain.ColumnInfo {
	names := r.List()
	infos := make([]domain.ColumnInfo, 0, len(names))
	for _, name := range names {
		rule, _ := r.Get(name)
		infos = append(infos, domain.ColumnInfo{
			Name:          name,
			Prerequisites: rule.Prerequisites(),
		})
	}
	return infos
}

// Column and table names feed unquoted into the sql export and the database
// loader, so only simple identifiers are registrable.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// IsValidIdentifier reports whether s is safe to use unquoted as a SQL
// table or column name.
func IsValidIdentifier(s string) bool {
	return identRe.MatchString(s)
}

// Validate checks the registry as a whole: identifiers, resolvable
// prerequisites, and an acyclic dependency graph. A failure here is a
// configuration error, not a per-request fault.
func (r *Registry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	graph := make(map[string][]string, len(r.rules))
	for name, rule := range r.rules {
		if !identRe.MatchString(name) {
			return fmt.Errorf("invalid column identifier: %s", name)
		}
		prereqs := rule.Prerequisites()
		for _, p := range prereqs {
			if _, ok := r.rules[p]; !ok {
				return fmt.Errorf("column '%s' depends on unknown column '%s'", name, p)
			}
		}
		graph[name] = prereqs
	}

	if hasCycle(graph) {
		return fmt.Errorf("cyclic column dependencies detected")
	}
	return nil
}

func hasCycle(graph map[string][]string) bool {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for node := range graph {
		if !visited[node] {
			if hasCycleDFS(node, graph, visited, recStack) {
				return true
			}
		}
	}
	return false
}

func hasCycleDFS(node string, graph map[string][]string, visited, recStack map[string]bool) bool {
	visited[node] = true
	recStack[node] = true

	for _, neighbor := range graph[node] {
		if !visited[neighbor] {
			if hasCycleDFS(neighbor, graph, visited, recStack) {
				return true
			}
		} else if recStack[neighbor] {
			return true
		}
	}

	recStack[node] = false
	return false
}

// DefaultRegistry returns the built-in column set. The built-ins are
// process-wide constant state; a validation failure here means the binary
// ships a broken registry, so it aborts startup.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	registerPersonal(r)
	registerBusiness(r)
	registerTechnical(r)
	registerCredit(r)
	if err := r.Validate(); err != nil {
		panic(fmt.Sprintf("built-in column registry is invalid: %v", err))
	}
	return r
}
