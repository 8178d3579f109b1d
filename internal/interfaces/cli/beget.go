package cli

import (
	"github.com/spf13/cobra"

	"github.com/lite-lake/infra-dnsfilters/internal/filter/beget"
)

func newBegetCommand(ctx *Context) *cobra.Command {
	begetCmd := &cobra.Command{
		Use:   "beget",
		Short: "Beget DNS API conversions",
		Long:  "Convert records between the private DNS zone and the Beget DNS API layout.",
	}

	assembleOpts := defaultIOOptions()
	assembleCmd := &cobra.Command{
		Use:   "assemble <subdomain>",
		Short: "Build a changeRecords payload for one subdomain",
		Long:  "Build a dns/changeRecords payload from a domain's subdomains list for the named subdomain (@ for the apex).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyFilter(cmd, ctx, beget.AssembleFilterName, []any{args[0]}, assembleOpts)
		},
	}
	addIOFlags(assembleCmd, &assembleOpts)

	changeOpts := defaultIOOptions()
	changeCmd := &cobra.Command{
		Use:   "get-to-change",
		Short: "Convert a getData response into a changeRecords payload",
		Long:  "Convert the records of a dns/getData response into the dns/changeRecords layout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyFilter(cmd, ctx, beget.GetToChangeFilterName, nil, changeOpts)
		},
	}
	addIOFlags(changeCmd, &changeOpts)

	begetCmd.AddCommand(assembleCmd)
	begetCmd.AddCommand(changeCmd)

	return begetCmd
}
