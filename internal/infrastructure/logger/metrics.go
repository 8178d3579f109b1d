package logger

import (
	"context"
	"slices"
	"sync"
	"time"
)

// OperationStats counts invocations of one filter within this process.
type OperationStats struct {
	Total        int64
	Failed       int64
	AvgLatencyMs float64

	latency time.Duration
}

var (
	metricsMu sync.Mutex
	metrics   = make(map[string]*OperationStats)
)

func RecordOperation(operation string, err error, duration time.Duration) {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	stats, ok := metrics[operation]
	if !ok {
		stats = &OperationStats{}
		metrics[operation] = stats
	}
	stats.Total++
	stats.latency += duration
	if err != nil {
		stats.Failed++
	}
}

func GetMetrics() map[string]OperationStats {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	result := make(map[string]OperationStats, len(metrics))
	for op, stats := range metrics {
		s := *stats
		if s.Total > 0 {
			s.AvgLatencyMs = float64(s.latency) / float64(s.Total) / 1e6
		}
		result[op] = s
	}
	return result
}

// MetricNames returns the recorded operations in lexical order.
func MetricNames() []string {
	metricsMu.Lock()
	defer metricsMu.Unlock()

	names := make([]string, 0, len(metrics))
	for op := range metrics {
		names = append(names, op)
	}
	slices.Sort(names)
	return names
}

func TimedOperation(ctx context.Context, operation string, fn func() error) error {
	start := time.Now()
	log := FromContext(ctx).With("filter", operation)
	log.Debug("starting filter")

	err := fn()
	duration := time.Since(start)

	RecordOperation(operation, err, duration)

	if err != nil {
		log.Warn("filter failed", "error", err, "duration", duration)
	} else {
		log.Debug("filter completed", "duration", duration)
	}

	return err
}

func ResetMetrics() {
	metricsMu.Lock()
	defer metricsMu.Unlock()
	metrics = make(map[string]*OperationStats)
}
