package ipfilter

import (
	"fmt"
	"reflect"
	"strings"
)

func (c *config) validate() error {
	if !c.mode.valid() {
		return fmt.Errorf("invalid mode %d (must be ModeAllow=1 or ModeDeny=2)", c.mode)
	}
	if !c.representation.valid() {
		return fmt.Errorf("invalid representation %d", c.representation)
	}

	if err := validatePatternSources("match_paths", c.matchPatterns); err != nil {
		return err
	}
	if err := validatePatternSources("exclude_paths", c.excludePatterns); err != nil {
		return err
	}

	for _, entry := range c.rangeEntries {
		if err := validateRangeEntryShape(entry); err != nil {
			return err
		}
	}

	if isNilLogger(c.logger) {
		return fmt.Errorf("logger cannot be nil")
	}
	if isNilMetrics(c.metrics) {
		return fmt.Errorf("metrics cannot be nil")
	}
	if c.useMetricsFactory && c.metricsFactory == nil {
		return fmt.Errorf("metrics factory cannot be nil")
	}

	return nil
}

func validatePatternSources(field string, patterns []string) error {
	for _, pattern := range patterns {
		if strings.TrimSpace(pattern) == "" {
			return &ConfigurationError{
				Field: field,
				Err:   fmt.Errorf("patterns cannot be empty"),
			}
		}
	}

	return nil
}

// validateRangeEntryShape rejects entries that are neither a single exact
// address nor a bounded pair. Bound parseability is checked during set
// compilation.
func validateRangeEntryShape(entry RangeEntry) error {
	if entry.Exact != "" {
		if entry.Low != "" || entry.High != "" {
			return &ConfigurationError{
				Field: "ranges",
				Entry: entry.Exact,
				Err:   fmt.Errorf("entry cannot set both an exact address and range bounds"),
			}
		}
		return nil
	}

	if entry.Low == "" || entry.High == "" {
		return &ConfigurationError{
			Field: "ranges",
			Entry: entry.Low + entry.High,
			Err:   fmt.Errorf("range entries need both a low and a high bound"),
		}
	}

	return nil
}

func isNilLogger(logger Logger) bool {
	return isNilInterface(logger)
}

func isNilMetrics(metrics Metrics) bool {
	return isNilInterface(metrics)
}

func isNilInterface(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
