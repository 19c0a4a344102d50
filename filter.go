package ipfilter

import (
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
)

// Filter is an immutable access-control decision engine. It is invoked
// synchronously once per request by the hosting framework and performs no
// I/O of its own.
//
// Filter instances are safe for concurrent reuse.
type Filter struct {
	config *config

	// rules yields the compiled rule set. It is guarded by sync.OnceValues:
	// compilation runs at most once per Filter, concurrent first callers all
	// observe the same completed result, and late readers never see a
	// partially built set.
	rules func() (*ruleSet, error)

	// parseOps counts per-entry parsing work performed during compilation,
	// making compile idempotence observable in tests.
	parseOps atomic.Int64
}

// ruleSet is the compiled, read-only form of a Filter's configuration.
type ruleSet struct {
	ipset  *compiledIPSet
	routes *routePatterns
}

// New creates a Filter from one or more Option builders.
//
// All address entries and path patterns are compiled here; a malformed entry
// fails construction with a ConfigurationError and the Filter is not usable.
func New(opts ...Option) (*Filter, error) {
	cfg, err := configFromOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	filter := &Filter{config: cfg}
	filter.rules = sync.OnceValues(filter.compile)

	if _, err := filter.rules(); err != nil {
		return nil, err
	}

	return filter, nil
}

func (f *Filter) compile() (*ruleSet, error) {
	ipset, err := compileIPSet(f.config, &f.parseOps)
	if err != nil {
		return nil, err
	}

	routes, err := compileRoutePatterns(f.config)
	if err != nil {
		return nil, err
	}

	return &ruleSet{ipset: ipset, routes: routes}, nil
}

// Decide evaluates the request and returns a verdict.
func (f *Filter) Decide(r *http.Request) Decision {
	if r == nil {
		r = &http.Request{}
	}

	path := ""
	if r.URL != nil {
		path = r.URL.Path
	}

	var headers HeaderValues
	if r.Header != nil {
		headers = r.Header
	}

	return f.DecideFrom(RequestInput{
		Context:    r.Context(),
		RemoteAddr: r.RemoteAddr,
		Path:       path,
		Headers:    headers,
	})
}

// DecideFrom evaluates framework-agnostic request input and returns a
// verdict.
//
// Requests whose path falls outside the filtering scope are admitted without
// consulting the IP set. Everything else flows through client address
// resolution and the access rule; an unresolvable address still produces a
// deterministic verdict.
func (f *Filter) DecideFrom(input RequestInput) Decision {
	// A zero Filter denies everything; construct through New.
	if f == nil || f.rules == nil {
		return Decision{Verdict: Deny, Reason: "filter not initialized"}
	}

	rules, err := f.rules()
	if err != nil {
		// New fails when compilation fails, so this is unreachable through
		// the public constructor.
		return Decision{Verdict: Deny, Reason: err.Error()}
	}

	if !rules.routes.inScope(input.Path) {
		f.config.metrics.RecordOutOfScope()
		return Decision{Verdict: Allow, Reason: reasonPathExcluded}
	}

	address, source := resolveClientAddress(input.Headers, input.RemoteAddr)
	f.config.metrics.RecordResolution(source)

	decision := decideAccess(address, rules.ipset, f.config.mode, f.config.allowPrivate)
	f.config.metrics.RecordDecision(decision.Verdict.String())

	if decision.Verdict == Deny && f.config.logEnabled {
		f.config.logger.WarnContext(requestInputContext(input), "request denied",
			"address", address,
			"source", source,
			"path", input.Path,
			"reason", decision.Reason,
		)
	}

	return decision
}

// Mode returns the configured membership mode.
func (f *Filter) Mode() Mode {
	return f.config.mode
}

// Representation returns the configured IP set representation.
func (f *Filter) Representation() Representation {
	return f.config.representation
}
