package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lite-lake/infra-dnsfilters/internal/domain/entity"
	"github.com/lite-lake/infra-dnsfilters/internal/filter/beget"
)

var errZoneInvalid = errors.New("zone is invalid")

func newValidateCommand(ctx *Context) *cobra.Command {
	opts := defaultIOOptions()

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a private DNS zone",
		Long:  "Check that every domain, subdomain and record of a private DNS zone can be converted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, ctx, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", opts.File, "Zone YAML/JSON document (- for stdin)")
	cmd.Flags().StringVarP(&opts.Key, "key", "k", "", "Dotted key path of the zone inside the document")

	return cmd
}

func runValidate(cmd *cobra.Command, ctx *Context, opts IOOptions) error {
	input, err := loadInput(cmd, ctx, opts)
	if err != nil {
		return err
	}

	zone, err := entity.DecodeZone(input)
	if err != nil {
		return err
	}

	problems := errors.Join(zone.Validate(), beget.CheckZone(zone))
	if problems == nil {
		fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Zone is valid."))
		return nil
	}

	w := cmd.ErrOrStderr()
	for _, p := range flatten(problems) {
		fmt.Fprintln(w, ErrorStyle.Render("✗ "+p.Error()))
	}
	return errZoneInvalid
}

// flatten expands joined errors into their leaves.
func flatten(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var result []error
	for _, e := range joined.Unwrap() {
		result = append(result, flatten(e)...)
	}
	return result
}
