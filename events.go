package ipfilter

// Diagnostic reasons attached to decisions.
const (
	reasonPathExcluded      = "path excluded from filtering"
	reasonAddressListed     = "address matched the configured set"
	reasonAddressNotListed  = "address not in the configured set"
	reasonAddressUnresolved = "client address could not be resolved"
	reasonPrivateAddress    = "private address carve-out"
)

// Resolution source labels reported to metrics.
const (
	sourceForwardedFor = "x_forwarded_for"
	sourceRemoteAddr   = "remote_addr"
	sourceConnectingIP = "cf_connecting_ip"
	sourceNone         = "none"
)
