package ipfilter

import (
	"regexp"
)

// routePatterns holds the compiled match and exclude expressions, derived
// once from configuration.
type routePatterns struct {
	match   []*regexp.Regexp
	exclude []*regexp.Regexp
}

func compileRoutePatterns(cfg *config) (*routePatterns, error) {
	match, err := compilePatterns("match_paths", cfg.matchPatterns)
	if err != nil {
		return nil, err
	}

	exclude, err := compilePatterns("exclude_paths", cfg.excludePatterns)
	if err != nil {
		return nil, err
	}

	return &routePatterns{match: match, exclude: exclude}, nil
}

func compilePatterns(field string, sources []string) ([]*regexp.Regexp, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	compiled := make([]*regexp.Regexp, 0, len(sources))
	for _, source := range sources {
		re, err := regexp.Compile(source)
		if err != nil {
			return nil, &ConfigurationError{Field: field, Entry: source, Err: err}
		}
		compiled = append(compiled, re)
	}

	return compiled, nil
}

// inScope reports whether path is subject to filtering.
//
// Exclusion is authoritative: any exclude match exempts the path. A match
// hit confirms scope, but a miss does not exempt: a path matched by nothing
// and excluded by nothing falls through to being filtered. With both lists
// empty every path is in scope.
func (p *routePatterns) inScope(path string) bool {
	for _, re := range p.exclude {
		if re.MatchString(path) {
			return false
		}
	}

	for _, re := range p.match {
		if re.MatchString(path) {
			return true
		}
	}

	return true
}
