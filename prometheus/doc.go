// Package prometheus provides a Prometheus-backed implementation of
// ipfilter.Metrics.
//
// Install it at filter construction time:
//
//	filter, err := ipfilter.New(
//	    ipfilter.WithMode(ipfilter.ModeDeny),
//	    ipfilter.CIDRBlocks("203.0.113.0/24"),
//	    ipfilterprom.WithMetrics(),
//	)
//
// Collectors register on prom.DefaultRegisterer unless WithRegisterer or
// NewWithRegisterer is used. Registering twice reuses the existing compatible
// collectors, so multiple filters can share one process-wide set of counters.
package prometheus
