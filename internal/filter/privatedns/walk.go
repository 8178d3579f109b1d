// Package privatedns flattens the generic private DNS zone description into
// one entry per record so that a plain loop can iterate over it.
package privatedns

import (
	"github.com/lite-lake/infra-dnsfilters/internal/domain"
	"github.com/lite-lake/infra-dnsfilters/internal/domain/entity"
	"github.com/lite-lake/infra-dnsfilters/internal/filter"
)

const WalkFilterName = "walk_private_dns"

// Walk returns one entry per (domain, subdomain, record) in input order.
// Domains without subdomains and subdomains without records yield nothing.
func Walk(zone any) ([]entity.WalkEntry, error) {
	z, err := entity.DecodeZone(zone)
	if err != nil {
		return nil, domain.WrapOp(WalkFilterName, err)
	}
	return z.Walk(), nil
}

type Module struct{}

func (Module) Filters() map[string]filter.Func {
	return map[string]filter.Func{
		WalkFilterName: func(input any, args ...any) (any, error) {
			if err := filter.MaxArgs(args, 0); err != nil {
				return nil, domain.WrapOp(WalkFilterName, err)
			}
			return Walk(input)
		},
	}
}
