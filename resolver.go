package ipfilter

import (
	"strings"
)

// Header names in canonical MIME form, as required by HeaderValues
// implementations.
const (
	headerForwardedFor = "X-Forwarded-For"
	headerConnectingIP = "Cf-Connecting-Ip"
)

// resolveClientAddress extracts the client address from the request's headers
// and transport peer address, returning the address (possibly empty) and the
// source it came from.
//
// Precedence, each step applied only when the prior produced nothing:
//
//  1. The first comma-separated entry of X-Forwarded-For — the client-nearest
//     hop as recorded by the nearest proxy. Trivially spoofable unless the
//     proxy chain is trusted; a known limitation, not silently repaired here.
//  2. The transport peer address.
//  3. CF-Connecting-IP, which overrides both unconditionally when present.
//     This reflects a deployment behind Cloudflare where the edge injects the
//     header; see the package documentation.
//
// The resolved value is truncated at its last ':' to strip a port suffix.
// This also mangles bare IPv6 literals, which is accepted and documented
// behavior. The empty string means the address is unknown; the decider
// handles it deterministically.
func resolveClientAddress(headers HeaderValues, remoteAddr string) (string, string) {
	address := ""
	source := sourceNone

	if forwarded := headerValue(headers, headerForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		address = strings.TrimSpace(first)
		source = sourceForwardedFor
	}

	if address == "" && remoteAddr != "" {
		address = remoteAddr
		source = sourceRemoteAddr
	}

	if connecting := headerValue(headers, headerConnectingIP); connecting != "" {
		address = connecting
		source = sourceConnectingIP
	}

	if i := strings.LastIndexByte(address, ':'); i >= 0 {
		address = address[:i]
	}

	if address == "" {
		source = sourceNone
	}

	return address, source
}

func headerValue(headers HeaderValues, name string) string {
	if isNilInterface(headers) {
		return ""
	}

	values := headers.Values(name)
	if len(values) == 0 {
		return ""
	}

	return strings.TrimSpace(values[0])
}
