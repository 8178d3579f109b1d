package beget

import (
	"github.com/lite-lake/infra-dnsfilters/internal/domain"
	"github.com/lite-lake/infra-dnsfilters/internal/filter"
)

type Module struct{}

func (Module) Filters() map[string]filter.Func {
	return map[string]filter.Func{
		AssembleFilterName: func(input any, args ...any) (any, error) {
			if err := filter.MaxArgs(args, 1); err != nil {
				return nil, domain.WrapOp(AssembleFilterName, err)
			}
			name, err := filter.StringArg(args, 0, "subdomain")
			if err != nil {
				return nil, domain.WrapOp(AssembleFilterName, err)
			}
			return FromPrivateDNS(input, name)
		},
		GetToChangeFilterName: func(input any, args ...any) (any, error) {
			if err := filter.MaxArgs(args, 0); err != nil {
				return nil, domain.WrapOp(GetToChangeFilterName, err)
			}
			return GetToChange(input)
		},
	}
}
