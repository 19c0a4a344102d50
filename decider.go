package ipfilter

// decideAccess reconciles the resolved client address, the compiled IP set,
// the configured mode, and the private-address carve-out into a verdict.
//
// The empty address is never contained in any set and is never private, so
// it is denied in allow mode and allowed in deny mode.
//
// The carve-out interacts with an explicit deny-mode match asymmetrically:
// for exact and range sets a private address that is also listed in deny mode
// stays denied, while an unlisted private address is admitted even when the
// mode verdict would deny it. The CIDR path behaves the same way but checks
// containment first. This asymmetry is intentional, observable behavior; see
// the decider tests.
func decideAccess(address string, set *compiledIPSet, mode Mode, allowPrivate bool) Decision {
	contained := set.contains(address)
	private := allowPrivate && isPrivateAddress(address)

	if set.representation == RepresentationCIDR {
		if contained {
			if mode == ModeAllow {
				return Decision{Verdict: Allow, Reason: reasonAddressListed}
			}
			return Decision{Verdict: Deny, Reason: reasonAddressListed}
		}

		if mode == ModeDeny {
			return Decision{Verdict: Allow, Reason: notListedReason(address)}
		}
		if private {
			return Decision{Verdict: Allow, Reason: reasonPrivateAddress}
		}
		return Decision{Verdict: Deny, Reason: notListedReason(address)}
	}

	// Exact-list and numeric-range sets share one formula.
	if mode == ModeAllow && contained {
		return Decision{Verdict: Allow, Reason: reasonAddressListed}
	}
	if mode == ModeDeny && !contained {
		return Decision{Verdict: Allow, Reason: notListedReason(address)}
	}

	// The carve-out never overrides an explicit deny-mode match.
	if private && !(mode == ModeDeny && contained) {
		return Decision{Verdict: Allow, Reason: reasonPrivateAddress}
	}

	if contained {
		return Decision{Verdict: Deny, Reason: reasonAddressListed}
	}
	return Decision{Verdict: Deny, Reason: notListedReason(address)}
}

func notListedReason(address string) string {
	if address == "" {
		return reasonAddressUnresolved
	}
	return reasonAddressNotListed
}
