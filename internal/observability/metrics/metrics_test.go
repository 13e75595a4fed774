package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestVoiceMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewVoiceMetrics(reg)
	m.ObserveTurn("greeting")
	m.ObserveTurn("booking_recorded")
	m.ObserveCompletionLatency(0.25)
	m.ObserveBookingRecorded()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	var bookingFamily *dto.MetricFamily
	for _, mf := range families {
		if mf.GetName() == "agentia_voice_bookings_recorded_total" {
			bookingFamily = mf
		}
	}
	if bookingFamily == nil {
		t.Fatal("expected bookings counter to be registered")
	}
	if got := bookingFamily.GetMetric()[0].GetCounter().GetValue(); got != 1 {
		t.Errorf("expected 1 recorded booking, got %v", got)
	}
}

func TestVoiceMetricsNilSafe(t *testing.T) {
	var m *VoiceMetrics
	m.ObserveTurn("greeting")
	m.ObserveCompletionLatency(0.1)
	m.ObserveBookingRecorded()
}
