package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lite-lake/infra-dnsfilters/internal/application/usecase"
	"github.com/lite-lake/infra-dnsfilters/internal/infrastructure/logger"
	"github.com/lite-lake/infra-dnsfilters/internal/infrastructure/output"
	"github.com/lite-lake/infra-dnsfilters/internal/infrastructure/persistence"
)

func addIOFlags(cmd *cobra.Command, opts *IOOptions) {
	cmd.Flags().StringVarP(&opts.File, "file", "f", opts.File, "Input YAML/JSON document (- for stdin)")
	cmd.Flags().StringVarP(&opts.Key, "key", "k", "", "Dotted key path inside the document, e.g. private_dns.0.subdomains")
	cmd.Flags().StringVarP(&opts.Format, "output", "o", opts.Format, "Output format (yaml/json)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Write the result to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.Stats, "stats", false, "Print filter timing to stderr")
}

func loadInput(cmd *cobra.Command, ctx *Context, opts IOOptions) (any, error) {
	loader := persistence.NewDocumentLoader(ctx.BaseDir).WithStdin(cmd.InOrStdin())
	return loader.Load(cmd.Context(), opts.File, opts.Key)
}

func applyFilter(cmd *cobra.Command, ctx *Context, name string, args []any, opts IOOptions) error {
	input, err := loadInput(cmd, ctx, opts)
	if err != nil {
		return err
	}

	result, err := ctx.Executor.Run(cmd.Context(), usecase.Request{
		Filter: name,
		Input:  input,
		Args:   args,
	})
	if err != nil {
		return err
	}

	data, err := output.Marshal(result, opts.Format)
	if err != nil {
		return err
	}

	if opts.Out != "" {
		if err := output.NewFileWriter(opts.Out).Write(cmd.Context(), data); err != nil {
			return err
		}
		logger.Info("result written", "filter", name, "path", opts.Out)
	} else if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}

	if opts.Stats {
		printStats(cmd.ErrOrStderr())
	}
	return nil
}

func printStats(w io.Writer) {
	stats := logger.GetMetrics()
	for _, name := range logger.MetricNames() {
		s := stats[name]
		fmt.Fprintf(w, "%s %s\n", NameStyle.Render(name),
			HelpStyle.Render(fmt.Sprintf("calls=%d failed=%d avg=%.3fms", s.Total, s.Failed, s.AvgLatencyMs)))
	}
}
