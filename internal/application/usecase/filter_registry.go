package usecase

import (
	"fmt"

	"github.com/lite-lake/infra-dnsfilters/internal/domain"
	"github.com/lite-lake/infra-dnsfilters/internal/filter"
	"github.com/lite-lake/infra-dnsfilters/internal/filter/beget"
	"github.com/lite-lake/infra-dnsfilters/internal/filter/privatedns"
)

type FilterRegistry struct {
	registry *filter.Registry
}

func NewFilterRegistry() *FilterRegistry {
	return &FilterRegistry{
		registry: filter.NewRegistry(),
	}
}

func (r *FilterRegistry) Register(name string, f filter.Func) {
	r.registry.Register(name, f)
}

func (r *FilterRegistry) Get(name string) (filter.Func, bool) {
	return r.registry.Get(name)
}

func (r *FilterRegistry) Names() []string {
	return r.registry.Names()
}

// RegisterDefaults adds the built-in filter modules without replacing
// filters that were registered earlier under the same name.
func (r *FilterRegistry) RegisterDefaults() {
	defaultModules := []filter.Module{
		privatedns.Module{},
		beget.Module{},
	}
	for _, m := range defaultModules {
		r.registry.RegisterModule(m)
	}
}

func (r *FilterRegistry) Apply(name string, input any, args ...any) (any, error) {
	f, ok := r.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", domain.ErrFilterNotFound, name, r.registry.Names())
	}
	return f(input, args...)
}
