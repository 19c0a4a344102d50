package ipfilter

// PresetPrivateNetworksOnly configures an allow mode filter admitting only
// clients from private networks and loopback.
//
// Useful for admin or operations endpoints that must never be reachable from
// the public internet.
func PresetPrivateNetworksOnly() Option {
	return func(c *config) error {
		return applyOptions(c,
			WithMode(ModeAllow),
			CIDRBlocks(
				"10.0.0.0/8",
				"172.16.0.0/12",
				"192.168.0.0/16",
				"127.0.0.0/8",
				"::1/128",
				"fc00::/7",
			),
		)
	}
}

// PresetBlocklist configures a deny mode filter rejecting the given CIDR
// blocks and admitting everyone else.
func PresetBlocklist(cidrs ...string) Option {
	return func(c *config) error {
		return applyOptions(c,
			WithMode(ModeDeny),
			CIDRBlocks(cidrs...),
		)
	}
}
