package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/lite-lake/infra-dnsfilters/internal/domain"
	"github.com/lite-lake/infra-dnsfilters/internal/filter/beget"
	"github.com/lite-lake/infra-dnsfilters/internal/infrastructure/logger"
)

func TestExecutor_Run(t *testing.T) {
	logger.ResetMetrics()
	e := NewExecutor(nil)

	out, err := e.Run(context.Background(), Request{
		Filter: beget.GetToChangeFilterName,
		Input:  map[string]any{"DNS": []any{map[string]any{"value": "ns1.beget.com"}}},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	records, ok := out.(beget.Records)
	if !ok || len(records[beget.GroupDNS]) != 1 {
		t.Errorf("Run() = %#v", out)
	}

	_, err = e.Run(context.Background(), Request{Filter: beget.GetToChangeFilterName, Input: []any{}})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Run() error = %v, want %v", err, domain.ErrInvalidInput)
	}

	stats := logger.GetMetrics()[beget.GetToChangeFilterName]
	if stats.Total != 2 || stats.Failed != 1 {
		t.Errorf("metrics = %+v, want 2 total and 1 failed", stats)
	}
}

func TestExecutor_RunUnknownFilter(t *testing.T) {
	e := NewExecutor(&ExecutorConfig{Registry: NewFilterRegistry()})

	_, err := e.Run(context.Background(), Request{Filter: beget.AssembleFilterName})
	if !errors.Is(err, domain.ErrFilterNotFound) {
		t.Errorf("Run() error = %v, want %v", err, domain.ErrFilterNotFound)
	}
}
