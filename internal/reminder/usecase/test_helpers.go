package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"smart-reminders/pkg/nlparse"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Tuesday, May 7, 2024 10:00 UTC.
var testNow = time.Date(2024, 5, 7, 10, 0, 0, 0, time.UTC)

// newTestUseCase builds a use case on a UTC parser with a fresh registry,
// a fixed clock and sequential IDs.
func newTestUseCase(t *testing.T, cfg Config) (*implUseCase, *prometheus.Registry) {
	t.Helper()

	parser, err := nlparse.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}
	reg := prometheus.NewRegistry()
	uc := New(&mockLogger{}, parser, NewMetrics(reg), cfg)
	uc.clock = func() time.Time { return testNow }

	seq := 0
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return uc, reg
}

// counterValue sums the counter samples of family name whose labels include
// every pair in labels.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	var total float64
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metrics:
		for _, metric := range family.GetMetric() {
			have := map[string]string{}
			for _, pair := range metric.GetLabel() {
				have[pair.GetName()] = pair.GetValue()
			}
			for k, v := range labels {
				if have[k] != v {
					continue metrics
				}
			}
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}
