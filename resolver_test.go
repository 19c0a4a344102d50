package ipfilter

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveClientAddress(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
		wantSource string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "1.1.1.1:12345",
			want:       "1.1.1.1",
			wantSource: sourceRemoteAddr,
		},
		{
			name:       "remote addr without port",
			remoteAddr: "1.1.1.1",
			want:       "1.1.1.1",
			wantSource: sourceRemoteAddr,
		},
		{
			name:       "forwarded-for takes first entry",
			headers:    map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"},
			remoteAddr: "9.9.9.9:443",
			want:       "1.2.3.4",
			wantSource: sourceForwardedFor,
		},
		{
			name:       "forwarded-for single entry with whitespace",
			headers:    map[string]string{"X-Forwarded-For": "  1.2.3.4  "},
			remoteAddr: "9.9.9.9:443",
			want:       "1.2.3.4",
			wantSource: sourceForwardedFor,
		},
		{
			name:       "connecting-ip overrides forwarded-for",
			headers:    map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8", "CF-Connecting-IP": "9.9.9.9"},
			remoteAddr: "10.0.0.1:443",
			want:       "9.9.9.9",
			wantSource: sourceConnectingIP,
		},
		{
			name:       "connecting-ip overrides remote addr",
			headers:    map[string]string{"CF-Connecting-IP": "9.9.9.9"},
			remoteAddr: "10.0.0.1:443",
			want:       "9.9.9.9",
			wantSource: sourceConnectingIP,
		},
		{
			name:       "port suffix stripped",
			remoteAddr: "1.2.3.4:8080",
			want:       "1.2.3.4",
			wantSource: sourceRemoteAddr,
		},
		{
			name:       "ipv6 with port truncated at last colon",
			remoteAddr: "2001:db8::1:443",
			want:       "2001:db8::1",
			wantSource: sourceRemoteAddr,
		},
		{
			name:       "forwarded-for with port stripped",
			headers:    map[string]string{"X-Forwarded-For": "1.2.3.4:9999"},
			remoteAddr: "5.6.7.8:443",
			want:       "1.2.3.4",
			wantSource: sourceForwardedFor,
		},
		{
			name:       "empty forwarded-for falls through to remote addr",
			headers:    map[string]string{"X-Forwarded-For": "   "},
			remoteAddr: "5.6.7.8:443",
			want:       "5.6.7.8",
			wantSource: sourceRemoteAddr,
		},
		{
			name:       "nothing resolvable",
			remoteAddr: "",
			want:       "",
			wantSource: sourceNone,
		},
		{
			name:       "empty connecting-ip is ignored",
			headers:    map[string]string{"CF-Connecting-IP": ""},
			remoteAddr: "5.6.7.8:443",
			want:       "5.6.7.8",
			wantSource: sourceRemoteAddr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := make(http.Header)
			for name, value := range tt.headers {
				header.Set(name, value)
			}

			got, gotSource := resolveClientAddress(header, tt.remoteAddr)

			want := struct{ Address, Source string }{tt.want, tt.wantSource}
			gotState := struct{ Address, Source string }{got, gotSource}
			if diff := cmp.Diff(want, gotState); diff != "" {
				t.Errorf("resolveClientAddress() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveClientAddress_NilHeaders(t *testing.T) {
	got, source := resolveClientAddress(nil, "1.1.1.1:80")
	if got != "1.1.1.1" || source != sourceRemoteAddr {
		t.Errorf("resolveClientAddress(nil headers) = (%q, %q), want (%q, %q)",
			got, source, "1.1.1.1", sourceRemoteAddr)
	}
}

func TestResolveClientAddress_HeaderValuesFunc(t *testing.T) {
	headers := HeaderValuesFunc(func(name string) []string {
		if name == headerForwardedFor {
			return []string{"1.2.3.4"}
		}
		return nil
	})

	got, source := resolveClientAddress(headers, "5.6.7.8:443")
	if got != "1.2.3.4" || source != sourceForwardedFor {
		t.Errorf("resolveClientAddress() = (%q, %q), want (%q, %q)",
			got, source, "1.2.3.4", sourceForwardedFor)
	}
}

func TestHeaderValuesFunc_Nil(t *testing.T) {
	var fn HeaderValuesFunc
	if got := fn.Values("X-Forwarded-For"); got != nil {
		t.Errorf("nil HeaderValuesFunc.Values() = %v, want nil", got)
	}
}
