// Package timing records how long startup work takes, per operation.
package timing

import (
	"context"
	"sync"
	"time"

	"audiology/internal/logger"
)

type timingKey struct{}

type timingInfo struct {
	operation string
	start     time.Time
}

type Tracker struct {
	timings map[string][]time.Duration
	mu      sync.RWMutex
	logger  logger.Logger
	enabled bool
}

func NewTracker(log logger.Logger) *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		logger:  log,
		enabled: true,
	}
}

// Start returns a context carrying the start time of operation. Pass it to
// End when the work completes.
func (t *Tracker) Start(operation string) context.Context {
	if !t.Enabled() {
		return context.Background()
	}
	return context.WithValue(context.Background(), timingKey{}, timingInfo{
		operation: operation,
		start:     time.Now(),
	})
}

// End records the elapsed time since the matching Start. A context that did
// not come from Start records nothing and returns zero.
func (t *Tracker) End(ctx context.Context) time.Duration {
	info, ok := ctx.Value(timingKey{}).(timingInfo)
	if !ok {
		return 0
	}

	duration := time.Since(info.start)

	t.mu.Lock()
	t.timings[info.operation] = append(t.timings[info.operation], duration)
	t.mu.Unlock()

	t.logger.Debug("Timing", "operation completed", map[string]interface{}{
		"operation":   info.operation,
		"duration_ms": duration.Milliseconds(),
	})
	return duration
}

func (t *Tracker) Timings(operation string) []time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()

	timings := t.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

func (t *Tracker) Average(operation string) time.Duration {
	timings := t.Timings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range timings {
		total += d
	}
	return total / time.Duration(len(timings))
}

// Summary reports count and average per operation, ready for a log line.
func (t *Tracker) Summary() map[string]interface{} {
	t.mu.RLock()
	ops := make([]string, 0, len(t.timings))
	for op := range t.timings {
		ops = append(ops, op)
	}
	t.mu.RUnlock()

	summary := make(map[string]interface{}, len(ops)*2)
	for _, op := range ops {
		summary[op+"_count"] = len(t.Timings(op))
		summary[op+"_avg_ms"] = t.Average(op).Milliseconds()
	}
	return summary
}

func (t *Tracker) Enabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}

func (t *Tracker) SetEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = enabled
}

// Reset clears one operation, or everything when operation is empty.
func (t *Tracker) Reset(operation string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if operation == "" {
		t.timings = make(map[string][]time.Duration)
	} else {
		delete(t.timings, operation)
	}
}
