package ipfilter

import (
	"errors"
	"net/netip"
	"strings"
	"sync/atomic"
)

var errNotDottedQuad = errors.New("not an IPv4 dotted-quad address")

// addressRange is an inclusive numeric address interval.
type addressRange struct {
	low  uint32
	high uint32
}

// compiledIPSet is the queryable form of the configured address entries.
//
// Exactly one representation's fields are populated, chosen at construction.
// The set is built once per Filter and is read-only afterward, so concurrent
// lookups need no locking.
type compiledIPSet struct {
	representation Representation

	exact    map[string]struct{}
	blocks   []netip.Prefix
	ranges   []addressRange
	literals []string
}

// compileIPSet turns raw configuration entries into a compiledIPSet.
//
// Malformed entries abort compilation with a ConfigurationError; nothing is
// silently dropped. parseOps counts per-entry parsing work so idempotence of
// the surrounding cache is observable.
func compileIPSet(cfg *config, parseOps *atomic.Int64) (*compiledIPSet, error) {
	set := &compiledIPSet{representation: cfg.representation}

	switch cfg.representation {
	case RepresentationExact:
		set.exact = make(map[string]struct{}, len(cfg.exactEntries))
		for _, entry := range cfg.exactEntries {
			parseOps.Add(1)
			set.exact[normalizeAddress(entry)] = struct{}{}
		}

	case RepresentationCIDR:
		set.blocks = make([]netip.Prefix, 0, len(cfg.cidrEntries))
		for _, entry := range cfg.cidrEntries {
			parseOps.Add(1)
			prefix, err := netip.ParsePrefix(strings.TrimSpace(entry))
			if err != nil {
				return nil, &ConfigurationError{Field: "cidr", Entry: entry, Err: err}
			}
			set.blocks = append(set.blocks, prefix.Masked())
		}

	case RepresentationRange:
		for _, entry := range cfg.rangeEntries {
			if entry.Exact != "" {
				set.literals = append(set.literals, entry.Exact)
				continue
			}

			parseOps.Add(1)
			low, ok := addressToUint32(entry.Low)
			if !ok {
				return nil, &ConfigurationError{Field: "ranges", Entry: entry.Low, Err: errNotDottedQuad}
			}

			parseOps.Add(1)
			high, ok := addressToUint32(entry.High)
			if !ok {
				return nil, &ConfigurationError{Field: "ranges", Entry: entry.High, Err: errNotDottedQuad}
			}

			set.ranges = append(set.ranges, addressRange{low: low, high: high})
		}
	}

	return set, nil
}

// contains reports whether address is a member of the set. The empty string
// is never contained.
func (s *compiledIPSet) contains(address string) bool {
	if address == "" {
		return false
	}

	switch s.representation {
	case RepresentationExact:
		_, ok := s.exact[normalizeAddress(address)]
		return ok

	case RepresentationCIDR:
		ip, err := netip.ParseAddr(address)
		if err != nil {
			return false
		}
		ip = normalizeIP(ip)

		// Blocks are kept in configuration order; the first containing
		// block wins.
		for _, block := range s.blocks {
			if block.Contains(ip) {
				return true
			}
		}
		return false

	case RepresentationRange:
		if v, ok := addressToUint32(address); ok {
			for _, r := range s.ranges {
				if v >= r.low && v <= r.high {
					return true
				}
			}
		}

		// Literal entries compare by plain string equality.
		for _, literal := range s.literals {
			if literal == address {
				return true
			}
		}
		return false
	}

	return false
}
