package cli

import (
	"github.com/spf13/cobra"
)

func newRunCommand(ctx *Context) *cobra.Command {
	opts := defaultIOOptions()

	cmd := &cobra.Command{
		Use:   "run <filter> [args...]",
		Short: "Apply a registered filter",
		Long:  "Apply any registered filter to a document. Extra arguments are passed to the filter as strings.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filterArgs := make([]any, 0, len(args)-1)
			for _, a := range args[1:] {
				filterArgs = append(filterArgs, a)
			}
			return applyFilter(cmd, ctx, args[0], filterArgs, opts)
		},
	}

	addIOFlags(cmd, &opts)
	return cmd
}
