package cli

import (
	"github.com/lite-lake/infra-dnsfilters/internal/application/usecase"
	"github.com/lite-lake/infra-dnsfilters/internal/constants"
)

type Context struct {
	BaseDir   string
	LogFormat string
	Debug     bool
	Executor  *usecase.Executor
}

func NewContext() *Context {
	return &Context{
		BaseDir:  ".",
		Executor: usecase.NewExecutor(nil),
	}
}

// IOOptions are the per-command document and output flags.
type IOOptions struct {
	File   string
	Key    string
	Format string
	Out    string
	Stats  bool
}

func defaultIOOptions() IOOptions {
	return IOOptions{
		File:   "-",
		Format: constants.OutputFormatYAML,
	}
}
