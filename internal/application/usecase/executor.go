package usecase

import (
	"context"

	"github.com/lite-lake/infra-dnsfilters/internal/infrastructure/logger"
)

type ExecutorConfig struct {
	Registry *FilterRegistry
}

// Executor runs filters by name, logging and timing each invocation.
type Executor struct {
	registry *FilterRegistry
}

func NewExecutor(cfg *ExecutorConfig) *Executor {
	if cfg == nil {
		cfg = &ExecutorConfig{}
	}

	registry := cfg.Registry
	if registry == nil {
		registry = NewFilterRegistry()
		registry.RegisterDefaults()
	}

	return &Executor{registry: registry}
}

type Request struct {
	Filter string
	Input  any
	Args   []any
}

func (e *Executor) Registry() *FilterRegistry {
	return e.registry
}

func (e *Executor) Run(ctx context.Context, req Request) (any, error) {
	ctx = logger.WithOperation(ctx, "filter")
	logger.FromContext(ctx).Debug("applying filter", "filter", req.Filter, "args", len(req.Args))

	var out any
	err := logger.TimedOperation(ctx, req.Filter, func() error {
		var err error
		out, err = e.registry.Apply(req.Filter, req.Input, req.Args...)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
