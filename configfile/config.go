// Package configfile loads filter configuration from YAML files and turns it
// into ipfilter options.
//
// The file schema mirrors the ipfilter option surface:
//
//	mode: allow
//	cidrs:
//	  - 192.168.1.0/24
//	allow_private: true
//	exclude_paths:
//	  - ^/healthz$
//
// Exactly one of addresses, cidrs, or ranges may be set. Range entries are
// either a single address or a [low, high] pair:
//
//	mode: allow
//	ranges:
//	  - 203.0.113.9
//	  - ["10.0.0.1", "10.0.0.10"]
package configfile

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/abczzz13/ipfilter"
)

// File is the YAML representation of a filter configuration.
type File struct {
	Mode         string   `yaml:"mode" validate:"omitempty,oneof=allow deny"`
	Addresses    []string `yaml:"addresses" validate:"omitempty,dive,required"`
	CIDRs        []string `yaml:"cidrs" validate:"omitempty,dive,cidr"`
	Ranges       []Range  `yaml:"ranges"`
	AllowPrivate bool     `yaml:"allow_private"`
	MatchPaths   []string `yaml:"match_paths" validate:"omitempty,dive,required"`
	ExcludePaths []string `yaml:"exclude_paths" validate:"omitempty,dive,required"`
}

// Range is one numeric-range entry: a scalar address or a [low, high] pair.
type Range struct {
	Exact string
	Low   string
	High  string
}

// UnmarshalYAML accepts either a scalar address or a two-element sequence.
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&r.Exact)
	case yaml.SequenceNode:
		var pair []string
		if err := node.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("range must have exactly two endpoints, got %d", len(pair))
		}
		r.Low, r.High = pair[0], pair[1]
		return nil
	default:
		return fmt.Errorf("range must be an address or a [low, high] pair")
	}
}

// Load reads a YAML file and returns the ipfilter options it describes.
//
// The returned options still go through ipfilter.New's own compilation and
// validation; Load only rejects structural problems in the file itself.
func Load(path string) ([]ipfilter.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML bytes and returns the ipfilter options they describe.
func Parse(data []byte) ([]ipfilter.Option, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := validator.New().Struct(&file); err != nil {
		return nil, fmt.Errorf("validate config file: %w", err)
	}

	return file.Options()
}

// Options converts the decoded file into ipfilter options.
func (f *File) Options() ([]ipfilter.Option, error) {
	var opts []ipfilter.Option

	switch f.Mode {
	case "":
	case "allow":
		opts = append(opts, ipfilter.WithMode(ipfilter.ModeAllow))
	case "deny":
		opts = append(opts, ipfilter.WithMode(ipfilter.ModeDeny))
	default:
		return nil, fmt.Errorf("invalid mode %q (must be allow or deny)", f.Mode)
	}

	if len(f.Addresses) > 0 {
		opts = append(opts, ipfilter.ExactAddresses(f.Addresses...))
	}
	if len(f.CIDRs) > 0 {
		opts = append(opts, ipfilter.CIDRBlocks(f.CIDRs...))
	}
	if len(f.Ranges) > 0 {
		entries := make([]ipfilter.RangeEntry, 0, len(f.Ranges))
		for _, r := range f.Ranges {
			if r.Exact != "" {
				entries = append(entries, ipfilter.RangeAddress(r.Exact))
				continue
			}
			entries = append(entries, ipfilter.Range(r.Low, r.High))
		}
		opts = append(opts, ipfilter.AddressRanges(entries...))
	}

	if f.AllowPrivate {
		opts = append(opts, ipfilter.AllowPrivateAddresses(true))
	}
	if len(f.MatchPaths) > 0 {
		opts = append(opts, ipfilter.MatchPaths(f.MatchPaths...))
	}
	if len(f.ExcludePaths) > 0 {
		opts = append(opts, ipfilter.ExcludePaths(f.ExcludePaths...))
	}

	return opts, nil
}
