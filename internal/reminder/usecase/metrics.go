package usecase

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"smart-reminders/internal/model"
	"smart-reminders/pkg/nlparse"
)

const (
	metricsNamespace = "smart_reminders"
	metricsSubsystem = "parser"
)

// Rejection reasons.
const (
	reasonEmpty             = "empty"
	reasonTooShort          = "too_short"
	reasonTooManySegments   = "too_many_segments"
	reasonUnsupportedFormat = "unsupported_format"
)

// Metrics are the Prometheus collectors for the parser. A nil *Metrics
// records nothing.
type Metrics struct {
	// Labels: source (http, cli), category
	parsedTotal *prometheus.CounterVec
	// Labels: recurrence
	recurrenceTotal *prometheus.CounterVec
	// Labels: reason
	rejectedTotal *prometheus.CounterVec
	confidence    prometheus.Histogram
	duration      prometheus.Histogram
}

// NewMetrics registers the parser collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		parsedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "reminders_parsed_total",
				Help:      "Total number of reminders parsed by source and detected category",
			},
			[]string{"source", "category"},
		),
		recurrenceTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "recurrence_total",
				Help:      "Total number of parsed reminders by recurrence kind",
			},
			[]string{"recurrence"},
		),
		rejectedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "requests_rejected_total",
				Help:      "Total number of parse requests rejected before parsing",
			},
			[]string{"reason"},
		),
		confidence: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "confidence",
				Help:      "Confidence score of parsed reminders",
				Buckets:   prometheus.LinearBuckets(0, 10, 11),
			},
		),
		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: metricsSubsystem,
				Name:      "parse_duration_seconds",
				Help:      "Time spent parsing a single phrase in seconds",
				Buckets:   []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
			},
		),
	}
}

func (m *Metrics) observeParsed(source model.Source, r nlparse.ParsedReminder, took time.Duration) {
	if m == nil {
		return
	}
	if source == "" {
		source = model.SourceHTTP
	}
	m.parsedTotal.WithLabelValues(string(source), string(r.Category)).Inc()
	m.recurrenceTotal.WithLabelValues(string(r.Recurrence)).Inc()
	m.confidence.Observe(float64(r.Confidence))
	m.duration.Observe(took.Seconds())
}

func (m *Metrics) observeRejected(reason string) {
	if m == nil {
		return
	}
	m.rejectedTotal.WithLabelValues(reason).Inc()
}
