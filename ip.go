package ipfilter

import (
	"encoding/binary"
	"net/netip"
	"strings"
)

// normalizeAddress returns the canonical string form of an address for
// exact-list membership. Unparseable values are kept as-is (trimmed) so that
// literal entries still compare by plain string equality.
func normalizeAddress(s string) string {
	s = strings.TrimSpace(s)
	if ip, err := netip.ParseAddr(s); err == nil {
		return normalizeIP(ip).String()
	}
	return s
}

func normalizeIP(ip netip.Addr) netip.Addr {
	if ip.Is4In6() {
		return ip.Unmap()
	}
	return ip
}

// isPrivateAddress reports whether s is an address in one of the reserved
// private ranges (10/8, 172.16/12, 192.168/16), loopback, or link-local.
// Unparseable or empty values are never private.
func isPrivateAddress(s string) bool {
	ip, err := netip.ParseAddr(s)
	if err != nil {
		return false
	}

	ip = normalizeIP(ip)
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast()
}

// addressToUint32 converts an IPv4 dotted-quad address to its unsigned 32-bit
// integer form. The second return value is false for anything that is not an
// IPv4 address.
func addressToUint32(s string) (uint32, bool) {
	ip, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}

	ip = normalizeIP(ip)
	if !ip.Is4() {
		return 0, false
	}

	quad := ip.As4()
	return binary.BigEndian.Uint32(quad[:]), true
}
