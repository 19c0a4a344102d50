package ipfilter

import "fmt"

// WithMode sets how membership in the IP set is interpreted.
//
// The default is ModeDeny, which with an empty set admits every request.
func WithMode(mode Mode) Option {
	return func(c *config) error {
		if !mode.valid() {
			return fmt.Errorf("invalid mode %d (must be ModeAllow=1 or ModeDeny=2)", mode)
		}

		c.mode = mode
		return nil
	}
}

// ExactAddresses adds addresses matched by string equality.
//
// Using this option fixes the set representation to RepresentationExact; it
// cannot be combined with CIDRBlocks or AddressRanges.
func ExactAddresses(addresses ...string) Option {
	addresses = cloneStrings(addresses)

	return func(c *config) error {
		if err := c.setRepresentation(RepresentationExact); err != nil {
			return err
		}

		c.exactEntries = append(c.exactEntries, addresses...)
		return nil
	}
}

// CIDRBlocks adds CIDR strings such as "192.168.1.0/24".
//
// Each block must parse as a valid network/prefix string; a malformed block
// fails construction. Using this option fixes the set representation to
// RepresentationCIDR.
func CIDRBlocks(cidrs ...string) Option {
	cidrs = cloneStrings(cidrs)

	return func(c *config) error {
		if err := c.setRepresentation(RepresentationCIDR); err != nil {
			return err
		}

		c.cidrEntries = append(c.cidrEntries, cidrs...)
		return nil
	}
}

// AddressRanges adds numeric-range entries built with Range and RangeAddress.
//
// Range bounds must be IPv4 dotted-quad addresses; a malformed bound fails
// construction. Using this option fixes the set representation to
// RepresentationRange.
func AddressRanges(entries ...RangeEntry) Option {
	entries = cloneRangeEntries(entries)

	return func(c *config) error {
		if err := c.setRepresentation(RepresentationRange); err != nil {
			return err
		}

		c.rangeEntries = append(c.rangeEntries, entries...)
		return nil
	}
}

// AllowPrivateAddresses enables the private-address carve-out.
//
// When enabled, clients from private ranges (10/8, 172.16/12, 192.168/16,
// loopback, link-local) are admitted even when the set verdict would deny
// them, except when the address is explicitly matched in deny mode.
func AllowPrivateAddresses(allow bool) Option {
	return func(c *config) error {
		c.allowPrivate = allow
		return nil
	}
}

// MatchPaths adds regular expressions selecting request paths subject to
// filtering.
//
// Matching is advisory only: exclusion is authoritative, and a path matched
// by nothing is still filtered. An empty match list means every path is in
// scope.
func MatchPaths(patterns ...string) Option {
	patterns = cloneStrings(patterns)

	return func(c *config) error {
		c.matchPatterns = append(c.matchPatterns, patterns...)
		return nil
	}
}

// ExcludePaths adds regular expressions exempting request paths from
// filtering. A path matching any exclude pattern is always admitted without
// consulting the IP set.
func ExcludePaths(patterns ...string) Option {
	patterns = cloneStrings(patterns)

	return func(c *config) error {
		c.excludePatterns = append(c.excludePatterns, patterns...)
		return nil
	}
}

// WithLogger sets the logger invoked for deny decisions.
//
// Logging is disabled unless a logger is explicitly configured; there is no
// implicit process-wide output.
func WithLogger(logger Logger) Option {
	return func(c *config) error {
		c.logger = logger
		c.logEnabled = true
		return nil
	}
}

// WithMetrics sets a concrete metrics implementation.
//
// If previously configured, a metrics factory is disabled.
func WithMetrics(metrics Metrics) Option {
	return func(c *config) error {
		c.metrics = metrics
		c.metricsFactory = nil
		c.useMetricsFactory = false
		return nil
	}
}

// WithMetricsFactory configures a lazy metrics constructor.
//
// The factory is invoked only after option validation succeeds.
func WithMetricsFactory(factory func() (Metrics, error)) Option {
	return func(c *config) error {
		if factory == nil {
			return fmt.Errorf("metrics factory cannot be nil")
		}

		c.metricsFactory = factory
		c.useMetricsFactory = true
		return nil
	}
}
