package prometheus

import (
	"net/http"
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/abczzz13/ipfilter"
)

func newFilterRequest(remoteAddr, path string) *http.Request {
	req, _ := http.NewRequest(http.MethodGet, "http://example.test"+path, nil)
	req.RemoteAddr = remoteAddr
	return req
}

func TestWithRegisterer_Option(t *testing.T) {
	registry := prom.NewRegistry()

	filter, err := ipfilter.New(
		ipfilter.WithMode(ipfilter.ModeAllow),
		ipfilter.CIDRBlocks("192.168.1.0/24"),
		ipfilter.ExcludePaths(`^/healthz$`),
		WithRegisterer(registry),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	filter.Decide(newFilterRequest("192.168.1.10:443", "/api"))
	filter.Decide(newFilterRequest("8.8.8.8:443", "/api"))
	filter.Decide(newFilterRequest("8.8.8.8:443", "/healthz"))

	if got := counterValue(t, registry, "ip_filter_decisions_total", map[string]string{"verdict": "allow"}); got != 1 {
		t.Errorf("decisions allow = %v, want 1", got)
	}
	if got := counterValue(t, registry, "ip_filter_decisions_total", map[string]string{"verdict": "deny"}); got != 1 {
		t.Errorf("decisions deny = %v, want 1", got)
	}
	if got := counterValue(t, registry, "ip_filter_resolutions_total", map[string]string{"source": "remote_addr"}); got != 2 {
		t.Errorf("resolutions remote_addr = %v, want 2", got)
	}
	if got := counterValue(t, registry, "ip_filter_out_of_scope_total", nil); got != 1 {
		t.Errorf("out of scope = %v, want 1", got)
	}
}

func TestNewWithRegisterer_ReusesExistingCollectors(t *testing.T) {
	registry := prom.NewRegistry()

	first, err := NewWithRegisterer(registry)
	if err != nil {
		t.Fatalf("NewWithRegisterer() error = %v", err)
	}

	second, err := NewWithRegisterer(registry)
	if err != nil {
		t.Fatalf("NewWithRegisterer() second call error = %v", err)
	}

	first.RecordDecision("deny")
	second.RecordDecision("deny")

	if got := counterValue(t, registry, "ip_filter_decisions_total", map[string]string{"verdict": "deny"}); got != 2 {
		t.Errorf("decisions deny = %v, want 2 (shared collector)", got)
	}
}

func TestNewWithRegisterer_IncompatibleCollector(t *testing.T) {
	registry := prom.NewRegistry()

	gauge := prom.NewGauge(prom.GaugeOpts{Name: "ip_filter_decisions_total"})
	if err := registry.Register(gauge); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := NewWithRegisterer(registry); err == nil {
		t.Error("NewWithRegisterer() expected error for incompatible collector, got nil")
	}
}

func counterValue(t *testing.T, registry *prom.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if matchLabels(metric, labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}

	return 0
}

func matchLabels(metric *dto.Metric, labels map[string]string) bool {
	if len(labels) == 0 {
		return len(metric.GetLabel()) == 0
	}

	got := make(map[string]string, len(metric.GetLabel()))
	for _, pair := range metric.GetLabel() {
		got[pair.GetName()] = pair.GetValue()
	}

	for name, value := range labels {
		if got[name] != value {
			return false
		}
	}

	return true
}
