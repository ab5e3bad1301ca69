package bip32

// Prefix pairs a 4-byte wire version with its 4-character Base58 label
// (§3 Prefix). Callers may construct additional prefixes (e.g. other
// coins' version bytes) to Display keys under; parsing recognizes only
// xprv/xpub/tprv/tpub and rejects any other version with ErrUnknownPrefix.
type Prefix struct {
	Version [4]byte
	Label   string
	private bool
}

var (
	// XPrv is the Bitcoin mainnet private extended key prefix.
	XPrv = Prefix{Version: [4]byte{0x04, 0x88, 0xad, 0xe4}, Label: "xprv", private: true}
	// XPub is the Bitcoin mainnet public extended key prefix.
	XPub = Prefix{Version: [4]byte{0x04, 0x88, 0xb2, 0x1e}, Label: "xpub", private: false}
	// TPrv is the Bitcoin testnet private extended key prefix.
	TPrv = Prefix{Version: [4]byte{0x04, 0x35, 0x83, 0x94}, Label: "tprv", private: true}
	// TPub is the Bitcoin testnet public extended key prefix.
	TPub = Prefix{Version: [4]byte{0x04, 0x35, 0x87, 0xcf}, Label: "tpub", private: false}
)

var knownPrefixes = []Prefix{XPrv, XPub, TPrv, TPub}

// IsPrivate reports whether this prefix denotes a private extended key.
func (p Prefix) IsPrivate() bool {
	return p.private
}

// Public returns the public counterpart of a private prefix (XPrv -> XPub,
// TPrv -> TPub); a prefix that is already public is returned unchanged.
func (p Prefix) Public() Prefix {
	switch p.Version {
	case XPrv.Version:
		return XPub
	case TPrv.Version:
		return TPub
	default:
		return p
	}
}

// prefixForVersion looks up a registered Prefix by its 4-byte version,
// returning ok=false if none matches (§4.5 "an unknown version fails with
// UnknownPrefix").
func prefixForVersion(v [4]byte) (Prefix, bool) {
	for _, p := range knownPrefixes {
		if p.Version == v {
			return p, true
		}
	}
	return Prefix{}, false
}
