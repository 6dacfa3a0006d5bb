package invariant

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricViolationTotal is the counter name for violated invariants.
const MetricViolationTotal = "invariant_violated_total"

// MaxMetricLabelLength bounds label values to prevent metric cardinality
// explosion in OTEL backends.
const MaxMetricLabelLength = 64

// ViolationMetrics provides violation counting using OpenTelemetry.
type ViolationMetrics struct {
	counter metric.Int64Counter
}

var (
	violationMetricsInstance *ViolationMetrics
	violationMetricsMu       sync.RWMutex
)

// InitViolationMetrics initializes violation metrics with the provided meter.
// This should be called once during application startup after telemetry is
// initialized. It is safe to call multiple times; subsequent calls are no-ops.
func InitViolationMetrics(meter metric.Meter) error {
	violationMetricsMu.Lock()
	defer violationMetricsMu.Unlock()

	if meter == nil {
		return nil
	}

	if violationMetricsInstance != nil {
		return nil
	}

	counter, err := meter.Int64Counter(
		MetricViolationTotal,
		metric.WithUnit("1"),
		metric.WithDescription("Total number of violated invariants"),
	)
	if err != nil {
		return fmt.Errorf("failed to create %s counter: %w", MetricViolationTotal, err)
	}

	violationMetricsInstance = &ViolationMetrics{counter: counter}

	return nil
}

// GetViolationMetrics returns the singleton ViolationMetrics instance.
// Returns nil if InitViolationMetrics has not been called.
func GetViolationMetrics() *ViolationMetrics {
	violationMetricsMu.RLock()
	defer violationMetricsMu.RUnlock()

	return violationMetricsInstance
}

// ResetViolationMetrics clears the violation metrics singleton (useful for tests).
func ResetViolationMetrics() {
	violationMetricsMu.Lock()
	defer violationMetricsMu.Unlock()

	violationMetricsInstance = nil
}

// RecordViolation increments the invariant_violated_total counter with labels.
// If metrics are not initialized, this is a no-op.
func (vm *ViolationMetrics) RecordViolation(ctx context.Context, component, operation, op string) {
	if vm == nil || vm.counter == nil {
		return
	}

	vm.counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("component", sanitizeMetricLabel(component)),
		attribute.String("operation", sanitizeMetricLabel(operation)),
		attribute.String("invariant", sanitizeMetricLabel(op)),
	))
}

func recordViolationMetric(ctx context.Context, component, operation, op string) {
	vm := GetViolationMetrics()
	if vm != nil {
		vm.RecordViolation(ctx, component, operation, op)
	}
}

// sanitizeMetricLabel truncates a label value to MaxMetricLabelLength.
func sanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
