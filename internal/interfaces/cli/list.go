package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func newListCommand(ctx *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered filters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runList(cmd, ctx)
		},
	}
}

func runList(cmd *cobra.Command, ctx *Context) {
	w := cmd.OutOrStdout()
	title := cases.Title(language.English)

	fmt.Fprintln(w, TitleStyle.Render("Filters:"))
	for _, name := range ctx.Executor.Registry().Names() {
		fmt.Fprintf(w, "  - %s %s\n", NameStyle.Render(name),
			HelpStyle.Render("("+title.String(strings.ReplaceAll(name, "_", " "))+")"))
	}
}
