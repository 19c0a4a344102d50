package prometheus

import (
	"errors"
	"fmt"

	"github.com/abczzz13/ipfilter"
	prom "github.com/prometheus/client_golang/prometheus"
)

// Metrics is a Prometheus-backed implementation of ipfilter.Metrics.
type Metrics struct {
	decisionsTotal   *prom.CounterVec
	resolutionsTotal *prom.CounterVec
	outOfScopeTotal  prom.Counter
}

var _ ipfilter.Metrics = (*Metrics)(nil)

// WithMetrics returns an ipfilter option that installs Prometheus-backed
// metrics using prom.DefaultRegisterer.
func WithMetrics() ipfilter.Option {
	return withMetricsFactory(New)
}

// WithRegisterer returns an ipfilter option that installs Prometheus-backed
// metrics using the provided registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used.
func WithRegisterer(registerer prom.Registerer) ipfilter.Option {
	return withMetricsFactory(func() (*Metrics, error) {
		return NewWithRegisterer(registerer)
	})
}

// withMetricsFactory adapts a Metrics constructor into an ipfilter.Option.
func withMetricsFactory(factory func() (*Metrics, error)) ipfilter.Option {
	return ipfilter.WithMetricsFactory(func() (ipfilter.Metrics, error) {
		return factory()
	})
}

// New creates Metrics and registers its collectors on
// prom.DefaultRegisterer.
func New() (*Metrics, error) {
	return NewWithRegisterer(prom.DefaultRegisterer)
}

// NewWithRegisterer creates Metrics and registers its collectors on the given
// registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used. If the metrics are
// already registered, existing compatible collectors are reused.
func NewWithRegisterer(registerer prom.Registerer) (*Metrics, error) {
	if registerer == nil {
		registerer = prom.DefaultRegisterer
	}

	decisionsCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "ip_filter_decisions_total",
			Help: "Total number of access decisions for in-scope requests, labeled by verdict (allow, deny).",
		},
		[]string{"verdict"},
	)
	resolutionsCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "ip_filter_resolutions_total",
			Help: "Client address resolutions, labeled by source (x_forwarded_for, remote_addr, cf_connecting_ip, none).",
		},
		[]string{"source"},
	)
	outOfScopeCollector := prom.NewCounter(
		prom.CounterOpts{
			Name: "ip_filter_out_of_scope_total",
			Help: "Requests admitted without an access decision because their path fell outside the filtering scope.",
		},
	)

	decisionsTotal, err := registerCounterVec(registerer, decisionsCollector, "ip_filter_decisions_total")
	if err != nil {
		return nil, err
	}

	resolutionsTotal, err := registerCounterVec(registerer, resolutionsCollector, "ip_filter_resolutions_total")
	if err != nil {
		return nil, err
	}

	outOfScopeTotal, err := registerCounter(registerer, outOfScopeCollector, "ip_filter_out_of_scope_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		decisionsTotal:   decisionsTotal,
		resolutionsTotal: resolutionsTotal,
		outOfScopeTotal:  outOfScopeTotal,
	}, nil
}

func registerCounterVec(registerer prom.Registerer, collector *prom.CounterVec, metricName string) (*prom.CounterVec, error) {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prom.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(*prom.CounterVec)
			if ok {
				return existing, nil
			}
			return nil, fmt.Errorf("metric %q already registered with incompatible collector type %T", metricName, alreadyRegistered.ExistingCollector)
		}

		return nil, fmt.Errorf("register metric %q: %w", metricName, err)
	}

	return collector, nil
}

func registerCounter(registerer prom.Registerer, collector prom.Counter, metricName string) (prom.Counter, error) {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prom.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(prom.Counter)
			if ok {
				return existing, nil
			}
			return nil, fmt.Errorf("metric %q already registered with incompatible collector type %T", metricName, alreadyRegistered.ExistingCollector)
		}

		return nil, fmt.Errorf("register metric %q: %w", metricName, err)
	}

	return collector, nil
}

// RecordDecision increments ip_filter_decisions_total for the verdict.
func (m *Metrics) RecordDecision(verdict string) {
	m.decisionsTotal.WithLabelValues(verdict).Inc()
}

// RecordOutOfScope increments ip_filter_out_of_scope_total.
func (m *Metrics) RecordOutOfScope() {
	m.outOfScopeTotal.Inc()
}

// RecordResolution increments ip_filter_resolutions_total for the source.
func (m *Metrics) RecordResolution(source string) {
	m.resolutionsTotal.WithLabelValues(source).Inc()
}
