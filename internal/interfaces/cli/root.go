package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lite-lake/infra-dnsfilters/internal/infrastructure/logger"
)

var Version = "dev"

func newRootCommand(ctx *Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dnsfilters",
		Short:         "Private DNS data filters",
		Long:          "Dnsfilters applies the private DNS zone filters used by playbooks to YAML or JSON documents.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogger(ctx, cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.BaseDir, "dir", "C", ".", "Base directory for relative document paths")
	rootCmd.PersistentFlags().StringVar(&ctx.LogFormat, "log-format", "", "Log format (text/json)")
	rootCmd.PersistentFlags().BoolVar(&ctx.Debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newWalkCommand(ctx))
	rootCmd.AddCommand(newBegetCommand(ctx))
	rootCmd.AddCommand(newValidateCommand(ctx))

	return rootCmd
}

func configureLogger(ctx *Context, cmd *cobra.Command) {
	if ctx.LogFormat == "" && !ctx.Debug {
		return
	}
	cfg := logger.ConfigFromEnv()
	cfg.Output = cmd.ErrOrStderr()
	if ctx.LogFormat != "" {
		cfg.Format = ctx.LogFormat
	}
	if ctx.Debug {
		cfg.Level = slog.LevelDebug
		cfg.AddSource = true
	}
	logger.Init(cfg)
}

func Execute() {
	if err := newRootCommand(NewContext()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
