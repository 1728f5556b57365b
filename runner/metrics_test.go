package runner

import (
	"testing"
	"time"
)

func TestMetricsNilReceiver(t *testing.T) {
	var m *Metrics
	// All helpers must be safe without a registry wired up.
	m.IncTag("success")
	m.ObserveFetch(time.Second)
	m.AddListings(3)
	m.IncError("timeout")
	m.IncPersistError()
}

func TestMetricsGather(t *testing.T) {
	m := NewMetrics()
	m.IncTag("success")
	m.IncTag("success")
	m.IncTag("failure")
	m.AddListings(7)
	m.IncError("no_listings")
	m.ObserveFetch(250 * time.Millisecond)

	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	found := map[string]bool{}
	for _, family := range families {
		found[family.GetName()] = true
	}
	for _, name := range []string{
		"pipeline_tags_processed_total",
		"pipeline_fetch_duration_seconds",
		"pipeline_listings_stored_total",
		"pipeline_errors_total",
	} {
		if !found[name] {
			t.Errorf("metric %s not gathered", name)
		}
	}
}
