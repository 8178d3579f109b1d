package cli

import (
	"github.com/spf13/cobra"

	"github.com/lite-lake/infra-dnsfilters/internal/filter/privatedns"
)

func newWalkCommand(ctx *Context) *cobra.Command {
	opts := defaultIOOptions()

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Flatten a private DNS zone",
		Long:  "Flatten a private DNS zone into one (domain, subdomain, record) entry per record.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyFilter(cmd, ctx, privatedns.WalkFilterName, nil, opts)
		},
	}

	addIOFlags(cmd, &opts)
	return cmd
}
