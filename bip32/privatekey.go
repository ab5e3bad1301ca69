// Package bip32 implements BIP-32 hierarchical deterministic key
// derivation and extended-key serialization.
package bip32

import (
	"crypto/ecdsa"
	"encoding/binary"
	"math/big"
)

// ExtendedPrivateKey is a BIP-32 extended private key: a 32-byte scalar in
// [1, n-1] paired with its derivation attrs (§3 ExtendedPrivateKey). It is
// the sole owner of the private scalar.
type ExtendedPrivateKey struct {
	scalar [32]byte
	attrs  ExtendedKeyAttrs
	curve  Curve
}

// MasterKeyFromSeed derives the master extended private key from a seed of
// 16-64 bytes (§4.4 Master key generation). Seeds outside that range, the
// 128-512 bits BIP-32 specifies, are rejected with ErrInvalidSeed (§9 Open
// Question, resolved).
func MasterKeyFromSeed(seed []byte, curve Curve) (*ExtendedPrivateKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, ErrInvalidSeed
	}

	il, ir, err := hmacCKD([]byte("Bitcoin seed"), seed, curve.N())
	if err != nil {
		return nil, err
	}
	defer wipeBytes(il)
	defer wipeBytes(ir)

	k := &ExtendedPrivateKey{curve: curve}
	copy(k.scalar[:], il)
	copy(k.attrs.ChainCode[:], ir)
	return k, nil
}

// DeriveFromPath builds the master key from seed and walks path, applying
// CKD-priv at each level (§4.4 Path derivation).
func DeriveFromPath(seed []byte, path DerivationPath, curve Curve) (*ExtendedPrivateKey, error) {
	k, err := MasterKeyFromSeed(seed, curve)
	if err != nil {
		return nil, err
	}
	return k.Derive(path)
}

// Derive walks path from k, applying DeriveChild at each level.
func (k *ExtendedPrivateKey) Derive(path DerivationPath) (*ExtendedPrivateKey, error) {
	cur := k
	for _, cn := range path {
		next, err := cur.DeriveChild(cn)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// DeriveChild implements CKD-priv for a single child index (§4.4).
func (k *ExtendedPrivateKey) DeriveChild(cn ChildNumber) (*ExtendedPrivateKey, error) {
	data := make([]byte, 0, 37)
	if cn.IsHardened() {
		data = append(data, 0x00)
		data = append(data, k.scalar[:]...)
	} else {
		data = append(data, k.pubKeyBytes()...)
	}
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], uint32(cn))
	data = append(data, idx[:]...)

	il, ir, err := hmacCKD(k.attrs.ChainCode[:], data, k.curve.N())
	if err != nil {
		return nil, err
	}
	defer wipeBytes(il)
	defer wipeBytes(ir)

	childInt := new(big.Int).SetBytes(il)
	defer wipeBigInt(childInt)
	scalarInt := new(big.Int).SetBytes(k.scalar[:])
	defer wipeBigInt(scalarInt)
	childInt.Add(childInt, scalarInt)
	childInt.Mod(childInt, k.curve.N())
	if childInt.Sign() == 0 {
		return nil, ErrCrypto
	}

	attrs, err := k.attrs.childAttrs(fingerprintOf(k.pubKeyBytes()), cn, ir)
	if err != nil {
		return nil, err
	}

	child := &ExtendedPrivateKey{attrs: attrs, curve: k.curve}
	childBytes := childInt.Bytes()
	copyScalar(child.scalar[:], childBytes)
	wipeBytes(childBytes)
	return child, nil
}

// copyScalar left-pads src with zeros into a 32-byte destination, the same
// fix ecckd/extended.go applies when a big.Int's minimal encoding is
// shorter than 32 bytes.
func copyScalar(dst, src []byte) {
	if len(src) > len(dst) {
		src = src[len(src)-len(dst):]
	}
	copy(dst[len(dst)-len(src):], src)
}

// pubKeyBytes returns the 33-byte compressed public key for this private
// key, recomputed on every call since the scalar is the sole stored form.
func (k *ExtendedPrivateKey) pubKeyBytes() []byte {
	x, y := k.curve.ScalarBaseMult(k.scalar[:])
	out := k.curve.SerializePublicCompressed(x, y)
	return out[:]
}

// PublicKey returns the extended public key matching k.
func (k *ExtendedPrivateKey) PublicKey() (*ExtendedPublicKey, error) {
	var pk [33]byte
	copy(pk[:], k.pubKeyBytes())
	return &ExtendedPublicKey{
		point: pk,
		attrs: k.attrs,
		curve: k.curve,
	}, nil
}

// PrivateKeyBytes returns a copy of the 32-byte private scalar.
func (k *ExtendedPrivateKey) PrivateKeyBytes() []byte {
	out := make([]byte, 32)
	copy(out, k.scalar[:])
	return out
}

// Attrs returns the key's derivation attributes.
func (k *ExtendedPrivateKey) Attrs() ExtendedKeyAttrs {
	return k.attrs
}

// ECDSA adapts the derived scalar to crypto/ecdsa so an external signing
// collaborator can use it (§1 out-of-scope: ECDSA signing consumes a
// derived private scalar and is used only to prove the derived key works).
func (k *ExtendedPrivateKey) ECDSA() *ecdsa.PrivateKey {
	return privateToECDSA(k.scalar[:])
}

// ParseExtendedPrivateKey decodes a Base58Check xprv-style string (§4.5).
func ParseExtendedPrivateKey(text string, curve Curve) (*ExtendedPrivateKey, error) {
	w, err := decodeWire(text)
	if err != nil {
		return nil, err
	}
	if !w.prefix.IsPrivate() {
		return nil, ErrDecode
	}
	if w.keyMaterial[0] != 0x00 {
		return nil, ErrDecode
	}

	scalar := w.keyMaterial[1:]
	n := new(big.Int).SetBytes(scalar)
	if n.Sign() == 0 || n.Cmp(curve.N()) >= 0 {
		return nil, ErrInvalidSeed
	}

	k := &ExtendedPrivateKey{attrs: w.attrs, curve: curve}
	copy(k.scalar[:], scalar)
	return k, nil
}

// Display serializes k under prefix as Base58Check text (§4.5 Display).
// prefix must be a private prefix matching the key's intended network.
func (k *ExtendedPrivateKey) Display(prefix Prefix) string {
	keyMaterial := make([]byte, 0, 33)
	keyMaterial = append(keyMaterial, 0x00)
	keyMaterial = append(keyMaterial, k.scalar[:]...)
	return encodeWire(prefix, k.attrs, keyMaterial)
}

// Wipe overwrites the private scalar and chain code with zeros (§4.6). k is
// the sole owner of both.
func (k *ExtendedPrivateKey) Wipe() {
	for i := range k.scalar {
		k.scalar[i] = 0
	}
	for i := range k.attrs.ChainCode {
		k.attrs.ChainCode[i] = 0
	}
}
