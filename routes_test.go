package ipfilter

import (
	"errors"
	"testing"
)

func TestRoutePatterns_InScope(t *testing.T) {
	tests := []struct {
		name    string
		match   []string
		exclude []string
		path    string
		want    bool
	}{
		{
			name: "empty lists filter everything",
			path: "/anything",
			want: true,
		},
		{
			name: "empty lists filter the empty path",
			path: "",
			want: true,
		},
		{
			name:    "exclude match exempts",
			exclude: []string{`^/healthz$`},
			path:    "/healthz",
			want:    false,
		},
		{
			name:    "exclude miss stays in scope",
			exclude: []string{`^/healthz$`},
			path:    "/api/users",
			want:    true,
		},
		{
			name:  "match hit is in scope",
			match: []string{`^/api/`},
			path:  "/api/users",
			want:  true,
		},
		{
			name:  "match miss does not exempt",
			match: []string{`^/api/`},
			path:  "/public/index.html",
			want:  true,
		},
		{
			name:    "exclusion is authoritative over match",
			match:   []string{`^/api/`},
			exclude: []string{`^/api/status$`},
			path:    "/api/status",
			want:    false,
		},
		{
			name:    "matched and not excluded is in scope",
			match:   []string{`^/api/`},
			exclude: []string{`^/api/status$`},
			path:    "/api/users",
			want:    true,
		},
		{
			name:    "any exclude pattern exempts",
			exclude: []string{`^/healthz$`, `\.css$`, `\.js$`},
			path:    "/static/app.js",
			want:    false,
		},
		{
			name:  "partial regex match counts",
			match: []string{`admin`},
			path:  "/internal/admin/users",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.matchPatterns = tt.match
			cfg.excludePatterns = tt.exclude

			patterns, err := compileRoutePatterns(cfg)
			if err != nil {
				t.Fatalf("compileRoutePatterns() error = %v", err)
			}

			if got := patterns.inScope(tt.path); got != tt.want {
				t.Errorf("inScope(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestCompileRoutePatterns_MalformedPattern(t *testing.T) {
	tests := []struct {
		name    string
		match   []string
		exclude []string
		field   string
	}{
		{
			name:  "malformed match pattern",
			match: []string{`^/api/(`},
			field: "match_paths",
		},
		{
			name:    "malformed exclude pattern",
			exclude: []string{`[z-a]`},
			field:   "exclude_paths",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.matchPatterns = tt.match
			cfg.excludePatterns = tt.exclude

			_, err := compileRoutePatterns(cfg)
			if err == nil {
				t.Fatal("compileRoutePatterns() expected error, got nil")
			}

			var confErr *ConfigurationError
			if !errors.As(err, &confErr) {
				t.Fatalf("compileRoutePatterns() error = %T, want *ConfigurationError", err)
			}
			if confErr.Field != tt.field {
				t.Errorf("ConfigurationError.Field = %q, want %q", confErr.Field, tt.field)
			}
		})
	}
}
