package bip32

import "encoding/binary"

// ExtendedPublicKey is a BIP-32 extended public key: a secp256k1 point
// paired with its derivation attrs (§3 ExtendedPublicKey).
type ExtendedPublicKey struct {
	point [33]byte // compressed SEC1
	attrs ExtendedKeyAttrs
	curve Curve
}

// DeriveChild implements CKD-pub for a single non-hardened child index
// (§4.4). Hardened indices fail with ErrCannotDeriveFromHardenedChild,
// since a public-only chain has no private material to mix in.
func (k *ExtendedPublicKey) DeriveChild(cn ChildNumber) (*ExtendedPublicKey, error) {
	if cn.IsHardened() {
		return nil, ErrCannotDeriveFromHardenedChild
	}

	data := make([]byte, 0, 37)
	data = append(data, k.point[:]...)
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], uint32(cn))
	data = append(data, idx[:]...)

	il, ir, err := hmacCKD(k.attrs.ChainCode[:], data, k.curve.N())
	if err != nil {
		return nil, err
	}
	defer wipeBytes(il)
	defer wipeBytes(ir)

	ilX, ilY := k.curve.ScalarBaseMult(il)
	if ilX.Sign() == 0 && ilY.Sign() == 0 {
		return nil, ErrCrypto
	}

	parentX, parentY, err := k.curve.ParsePublicCompressed(k.point[:])
	if err != nil {
		return nil, ErrCrypto
	}

	childX, childY := k.curve.Add(ilX, ilY, parentX, parentY)
	if childX.Sign() == 0 && childY.Sign() == 0 {
		return nil, ErrCrypto
	}

	attrs, err := k.attrs.childAttrs(fingerprintOf(k.point[:]), cn, ir)
	if err != nil {
		return nil, err
	}

	child := &ExtendedPublicKey{attrs: attrs, curve: k.curve}
	child.point = k.curve.SerializePublicCompressed(childX, childY)
	return child, nil
}

// PublicKeyBytes returns a copy of the 33-byte compressed public key.
func (k *ExtendedPublicKey) PublicKeyBytes() []byte {
	out := make([]byte, 33)
	copy(out, k.point[:])
	return out
}

// Attrs returns the key's derivation attributes.
func (k *ExtendedPublicKey) Attrs() ExtendedKeyAttrs {
	return k.attrs
}

// ParseExtendedPublicKey decodes a Base58Check xpub-style string (§4.5).
func ParseExtendedPublicKey(text string, curve Curve) (*ExtendedPublicKey, error) {
	w, err := decodeWire(text)
	if err != nil {
		return nil, err
	}
	if w.prefix.IsPrivate() {
		return nil, ErrDecode
	}
	if w.keyMaterial[0] != 0x02 && w.keyMaterial[0] != 0x03 {
		return nil, ErrDecode
	}
	if _, _, err := curve.ParsePublicCompressed(w.keyMaterial); err != nil {
		return nil, ErrDecode
	}

	k := &ExtendedPublicKey{attrs: w.attrs, curve: curve}
	copy(k.point[:], w.keyMaterial)
	return k, nil
}

// Display serializes k under prefix as Base58Check text (§4.5 Display).
func (k *ExtendedPublicKey) Display(prefix Prefix) string {
	return encodeWire(prefix, k.attrs, k.point[:])
}
