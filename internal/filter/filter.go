// Package filter holds the lookup table through which the automation host
// finds data-transformation filters by name.
package filter

import (
	"fmt"

	"github.com/lite-lake/infra-dnsfilters/internal/domain"
)

// Func transforms decoded YAML/JSON input. Positional arguments follow the
// input the same way they follow the piped value in a template expression.
type Func func(input any, args ...any) (any, error)

// Module is implemented by every filter package.
type Module interface {
	Filters() map[string]Func
}

// StringArg returns the i-th positional argument, which must be a string.
func StringArg(args []any, i int, name string) (string, error) {
	if i >= len(args) {
		return "", domain.NewInputError(fmt.Sprintf("args[%d]", i), "missing argument "+name, domain.ErrInvalidArgument)
	}
	s, ok := args[i].(string)
	if !ok {
		return "", domain.NewInputError(fmt.Sprintf("args[%d]", i), fmt.Sprintf("argument %s must be a string, got %T", name, args[i]), domain.ErrInvalidArgument)
	}
	return s, nil
}

// MaxArgs fails when more than n positional arguments were passed.
func MaxArgs(args []any, n int) error {
	if len(args) > n {
		return domain.NewInputError("args", fmt.Sprintf("expected at most %d arguments, got %d", n, len(args)), domain.ErrInvalidArgument)
	}
	return nil
}
