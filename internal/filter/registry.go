package filter

import (
	"slices"
	"sync"
)

type Registry struct {
	mu      sync.RWMutex
	filters map[string]Func
}

func NewRegistry() *Registry {
	return &Registry{filters: make(map[string]Func)}
}

func (r *Registry) Register(name string, f Func) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filters[name] = f
}

// RegisterModule adds the filters of m, keeping any filter already
// registered under the same name.
func (r *Registry) RegisterModule(m Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, f := range m.Filters() {
		if _, ok := r.filters[name]; !ok {
			r.filters[name] = f
		}
	}
}

func (r *Registry) Get(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.filters[name]
	return f, ok
}

// Names returns the registered filter names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.filters))
	for n := range r.filters {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
