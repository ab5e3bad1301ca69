package bip32

// ExtendedKeyAttrs is the metadata shared by private and public extended
// keys: depth, parent fingerprint, child number, and chain code (§3). At
// depth 0 (the master key), ParentFingerprint is all zero and ChildNumber
// is 0.
type ExtendedKeyAttrs struct {
	Depth             uint8
	ParentFingerprint [4]byte
	ChildNumber       ChildNumber
	ChainCode         [32]byte
}

// childAttrs builds the attrs for a child one level below a, linked to
// parent by fingerprint, failing if depth would overflow (§4.4 "Parent
// fingerprint chaining").
func (a ExtendedKeyAttrs) childAttrs(fingerprint [4]byte, cn ChildNumber, chainCode []byte) (ExtendedKeyAttrs, error) {
	if a.Depth == 0xff {
		return ExtendedKeyAttrs{}, ErrMaxDepthExceeded
	}
	out := ExtendedKeyAttrs{
		Depth:             a.Depth + 1,
		ParentFingerprint: fingerprint,
		ChildNumber:       cn,
	}
	copy(out.ChainCode[:], chainCode)
	return out, nil
}
