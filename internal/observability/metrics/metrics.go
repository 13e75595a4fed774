// Package metrics exposes Prometheus instrumentation for the voice engine.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// VoiceMetrics exposes counters/histograms for the voice turn loop.
type VoiceMetrics struct {
	turnsTotal        *prometheus.CounterVec
	completionLatency prometheus.Histogram
	bookingsRecorded  prometheus.Counter
}

func NewVoiceMetrics(reg prometheus.Registerer) *VoiceMetrics {
	m := &VoiceMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agentia",
			Subsystem: "voice",
			Name:      "turns_total",
			Help:      "Total processed voice turns by outcome",
		}, []string{"outcome"}),
		completionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "agentia",
			Subsystem: "voice",
			Name:      "completion_latency_seconds",
			Help:      "Latency of completion service calls",
			Buckets:   prometheus.DefBuckets,
		}),
		bookingsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "agentia",
			Subsystem: "voice",
			Name:      "bookings_recorded_total",
			Help:      "Total bookings written from confirmation markers",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.completionLatency, m.bookingsRecorded)
	return m
}

func (m *VoiceMetrics) ObserveTurn(outcome string) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(outcome).Inc()
}

func (m *VoiceMetrics) ObserveCompletionLatency(seconds float64) {
	if m == nil {
		return
	}
	m.completionLatency.Observe(seconds)
}

func (m *VoiceMetrics) ObserveBookingRecorded() {
	if m == nil {
		return
	}
	m.bookingsRecorded.Inc()
}
