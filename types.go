package ipfilter

import (
	"fmt"
	"net/netip"
)

// Verdict is the outcome of an access decision.
type Verdict int

const (
	// Start at 1 to avoid zero-value confusion and make uninitialized
	// verdicts explicit.
	//
	// Allow permits the request to proceed.
	Allow Verdict = iota + 1
	// Deny rejects the request.
	Deny
)

// String returns the canonical text representation of v.
func (v Verdict) String() string {
	switch v {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	default:
		return "unknown"
	}
}

// valid reports whether v is a supported verdict.
func (v Verdict) valid() bool {
	return v == Allow || v == Deny
}

// Decision is the result of evaluating one request against a Filter.
//
// Reason is a human-readable diagnostic for observability; it carries no
// functional meaning.
type Decision struct {
	Verdict Verdict
	Reason  string
}

// Allowed reports whether the request may proceed.
func (d Decision) Allowed() bool {
	return d.Verdict == Allow
}

// ConfigurationError reports a malformed configuration value detected at
// construction time. Construction never partially succeeds: a Filter whose
// configuration fails to compile is not usable.
type ConfigurationError struct {
	// Field names the configuration surface the entry came from, for
	// example "cidr" or "exclude_paths".
	Field string
	// Entry is the offending raw value.
	Entry string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Entry == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: invalid entry %q: %v", e.Field, e.Entry, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// RangeEntry is one element of a numeric-range IP set.
//
// An entry is either a single exact address (Exact set, Low/High empty) or an
// inclusive [Low, High] pair of IPv4 addresses. Exact entries are matched by
// string equality; range bounds are converted to unsigned 32-bit integers.
type RangeEntry struct {
	Exact string
	Low   string
	High  string
}

// RangeAddress returns a RangeEntry matching a single address exactly.
func RangeAddress(address string) RangeEntry {
	return RangeEntry{Exact: address}
}

// Range returns a RangeEntry matching every address in [low, high].
func Range(low, high string) RangeEntry {
	return RangeEntry{Low: low, High: high}
}

// ParseCIDRs parses CIDR strings into netip prefixes.
//
// It is a convenience for callers that keep their own prefix lists; the
// CIDRBlocks option accepts raw strings directly.
func ParseCIDRs(cidrs ...string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(cidrs))
	for _, cidr := range cidrs {
		prefix, err := netip.ParsePrefix(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid CIDR %q: %w", cidr, err)
		}
		prefixes = append(prefixes, prefix)
	}
	return prefixes, nil
}
