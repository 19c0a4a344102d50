// Package ipfilter provides an access-control decision engine that gates HTTP
// requests by client IP address and request path.
//
// # Features
//
//   - Allow and deny modes over one configured IP set
//   - Three IP set representations: exact addresses, CIDR blocks, or numeric
//     [low, high] ranges (mutually exclusive, fixed at construction)
//   - Route scoping with match and exclude path patterns (exclusion is
//     authoritative)
//   - Client address resolution from X-Forwarded-For, the transport peer
//     address, and CF-Connecting-IP
//   - Private-address carve-out for internal traffic
//   - Optional observability with context-aware logging and pluggable metrics
//
// The engine performs no I/O and writes no responses itself: it consumes a
// request descriptor and returns a Decision. A net/http middleware adapter is
// provided for convenience.
//
// # Basic Usage
//
// Allow only a private subnet:
//
//	filter, err := ipfilter.New(
//	    ipfilter.WithMode(ipfilter.ModeAllow),
//	    ipfilter.CIDRBlocks("192.168.1.0/24"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decision := filter.Decide(req)
//	if !decision.Allowed() {
//	    http.Error(w, "forbidden", http.StatusForbidden)
//	    return
//	}
//
// Or mount it as middleware:
//
//	mux := http.NewServeMux()
//	srv := &http.Server{Handler: filter.Middleware(mux)}
//
// # Route Scoping
//
// Match and exclude patterns are regular expressions applied to the request
// path. A request whose path matches any exclude pattern is never filtered.
// A non-empty match list does not exempt unmatched paths: a path that matches
// nothing and is excluded by nothing is still filtered. Configure exclude
// patterns to carve paths out of filtering.
//
//	filter, _ := ipfilter.New(
//	    ipfilter.WithMode(ipfilter.ModeDeny),
//	    ipfilter.CIDRBlocks("203.0.113.0/24"),
//	    ipfilter.ExcludePaths(`^/healthz$`, `^/static/`),
//	)
//
// # Client Address Resolution
//
// The client address is resolved in a fixed precedence order: the first
// comma-separated entry of X-Forwarded-For, then the transport peer address,
// and finally CF-Connecting-IP, which overrides both when present. The
// resolved value is truncated at its last ':' to strip port suffixes.
//
// X-Forwarded-For is trivially spoofable by the client unless the proxy chain
// in front of the application is trusted. The CF-Connecting-IP override
// reflects a deployment behind Cloudflare, where that header is authoritative.
// Deployments not behind such an edge should treat it accordingly.
//
// When no address can be resolved, the decision still completes
// deterministically: an unknown address is never a member of any set and is
// never private, so it is denied in allow mode and allowed in deny mode.
//
// # Observability
//
// Logging and metrics are injected collaborators with no-op defaults. The
// logger receives the request context, so trace and span IDs flow through.
// A Prometheus metrics adapter lives in the prometheus subpackage and a zap
// logging adapter in the zaplog subpackage.
//
//	metrics, _ := ipfilterprom.New()
//
//	filter, err := ipfilter.New(
//	    ipfilter.WithMode(ipfilter.ModeDeny),
//	    ipfilter.CIDRBlocks("203.0.113.0/24"),
//	    ipfilter.WithLogger(slog.Default()),
//	    ipfilter.WithMetrics(metrics),
//	)
//
// # Thread Safety
//
// Filter instances are safe for concurrent use. The configured IP set and
// route patterns are compiled exactly once and are read-only afterward.
// Filters are typically created once at application startup and reused across
// all requests.
package ipfilter
