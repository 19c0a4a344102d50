package ipfilter

// Mode controls how membership in the configured IP set is interpreted.
type Mode int

const (
	// Start at 1 to avoid zero-value confusion and make invalid modes
	// explicit.
	//
	// ModeAllow treats the IP set as a whitelist: listed addresses are
	// admitted, everything else is denied.
	ModeAllow Mode = iota + 1
	// ModeDeny treats the IP set as a blacklist: listed addresses are
	// denied, everything else is admitted.
	ModeDeny
)

// String returns the canonical text representation of m.
func (m Mode) String() string {
	switch m {
	case ModeAllow:
		return "allow"
	case ModeDeny:
		return "deny"
	default:
		return "unknown"
	}
}

// valid reports whether m is a supported mode.
func (m Mode) valid() bool {
	return m == ModeAllow || m == ModeDeny
}

// Representation identifies how the configured address entries are
// interpreted. The three representations are mutually exclusive and fixed at
// construction; changing representation requires a new Filter.
type Representation int

const (
	// RepresentationExact matches addresses by normalized string equality.
	RepresentationExact Representation = iota + 1
	// RepresentationCIDR matches addresses against CIDR blocks.
	RepresentationCIDR
	// RepresentationRange matches IPv4 addresses against inclusive numeric
	// [low, high] ranges, plus any exact entries mixed in.
	RepresentationRange
)

// String returns the canonical text representation of r.
func (r Representation) String() string {
	switch r {
	case RepresentationExact:
		return "exact"
	case RepresentationCIDR:
		return "cidr"
	case RepresentationRange:
		return "range"
	default:
		return "unknown"
	}
}

// valid reports whether r is a supported representation.
func (r Representation) valid() bool {
	return r == RepresentationExact || r == RepresentationCIDR || r == RepresentationRange
}

// Option configures a Filter.
//
// Construct options using package-provided option builder functions.
type Option func(*config) error

// config holds filter configuration state.
//
// It is mutated by Option functions during construction and is read-only once
// New returns.
type config struct {
	mode Mode

	representation    Representation
	representationSet bool
	exactEntries      []string
	cidrEntries       []string
	rangeEntries      []RangeEntry

	allowPrivate bool

	matchPatterns   []string
	excludePatterns []string

	logger     Logger
	logEnabled bool
	metrics    Metrics

	metricsFactory    func() (Metrics, error)
	useMetricsFactory bool
}

func defaultConfig() *config {
	return &config{
		mode:           ModeDeny,
		representation: RepresentationExact,
		logger:         noopLogger{},
		metrics:        noopMetrics{},
	}
}

func applyOptions(c *config, opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}

	return nil
}

func configFromOptions(opts ...Option) (*config, error) {
	cfg := defaultConfig()

	if err := applyOptions(cfg, opts...); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.useMetricsFactory {
		metrics, err := cfg.metricsFactory()
		if err != nil {
			return nil, err
		}
		cfg.metrics = metrics

		if err := cfg.validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// setRepresentation records the representation implied by an address-entry
// option and rejects mixing representations.
func (c *config) setRepresentation(r Representation) error {
	if c.representationSet && c.representation != r {
		return &ConfigurationError{
			Field: "address_entries",
			Err: representationConflictError{
				configured: c.representation,
				requested:  r,
			},
		}
	}

	c.representation = r
	c.representationSet = true
	return nil
}

type representationConflictError struct {
	configured Representation
	requested  Representation
}

func (e representationConflictError) Error() string {
	return "address entries already configured as " + e.configured.String() +
		"; " + e.requested.String() + " entries cannot be combined"
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	cloned := make([]string, len(values))
	copy(cloned, values)
	return cloned
}

func cloneRangeEntries(entries []RangeEntry) []RangeEntry {
	if entries == nil {
		return nil
	}
	cloned := make([]RangeEntry, len(entries))
	copy(cloned, entries)
	return cloned
}
