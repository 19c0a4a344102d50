package ipfilter

// Metrics records decision outcomes emitted by Filter.
//
// Implementations should be safe for concurrent use, as a single Filter
// instance is typically shared across many goroutines.
type Metrics interface {
	// RecordDecision is called once per in-scope request with the verdict
	// label ("allow" or "deny").
	RecordDecision(verdict string)
	// RecordOutOfScope is called when a request path falls outside the
	// filtering scope and is admitted without consulting the IP set.
	RecordOutOfScope()
	// RecordResolution is called once per in-scope request with the source
	// the client address was resolved from ("x_forwarded_for",
	// "remote_addr", "cf_connecting_ip", or "none").
	RecordResolution(source string)
}

// noopMetrics is the default Metrics implementation when metrics are not
// explicitly configured.
type noopMetrics struct{}

func (noopMetrics) RecordDecision(string) {}

func (noopMetrics) RecordOutOfScope() {}

func (noopMetrics) RecordResolution(string) {}
