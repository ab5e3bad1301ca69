package bip32

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"math/big"

	"github.com/ModChain/base58"
	"golang.org/x/crypto/ripemd160"
)

const serializedKeyLen = 78 // version(4) depth(1) fingerprint(4) childnum(4) chaincode(32) keydata(33)

// hmacCKD runs the HMAC-SHA-512 step shared by master-key generation and
// CKD-priv/CKD-pub, splitting the 64-byte output into IL and IR and
// rejecting IL values that are zero or at or above the curve order
// (§4.4). Grounded on ecckd/hmac.go's hmacCKD.
func hmacCKD(key, data []byte, curveOrder *big.Int) (il, ir []byte, err error) {
	mac := hmac.New(sha512.New, key)
	if _, err = mac.Write(data); err != nil {
		return nil, nil, err
	}
	sum := mac.Sum(nil)

	il = sum[:32]
	ir = sum[32:]

	ilInt := new(big.Int).SetBytes(il)
	if ilInt.Sign() == 0 || ilInt.Cmp(curveOrder) >= 0 {
		return nil, nil, ErrCrypto
	}
	return il, ir, nil
}

// wipeBytes overwrites b with zeros in place, used to erase intermediate
// HMAC output (IL/IR) once its bytes have been copied into their owning
// struct (§4.6).
func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// wipeBigInt zeros n's backing words in place via Bits(), which (unlike
// Bytes()) returns the Int's actual storage rather than a copy, then resets
// n to zero. Used to erase big.Int scratch values derived from secret
// material (§4.6).
func wipeBigInt(n *big.Int) {
	bits := n.Bits()
	for i := range bits {
		bits[i] = 0
	}
	n.SetInt64(0)
}

// doubleSha256 computes SHA-256(SHA-256(in)), used for Base58Check
// checksums.
func doubleSha256(in []byte) []byte {
	a := sha256.Sum256(in)
	b := sha256.Sum256(a[:])
	return b[:]
}

// fingerprintOf computes RIPEMD160(SHA256(compressedPubKey))[:4], the
// parent-fingerprint linking hash (§4.4).
func fingerprintOf(compressedPubKey []byte) [4]byte {
	a := sha256.Sum256(compressedPubKey)
	h := ripemd160.New()
	h.Write(a[:])
	sum := h.Sum(nil)

	var out [4]byte
	copy(out[:], sum[:4])
	return out
}

// encodeWire assembles the 78-byte wire record and wraps it in Base58Check
// under prefix (§4.5).
func encodeWire(prefix Prefix, attrs ExtendedKeyAttrs, keyMaterial []byte) string {
	buf := make([]byte, 0, serializedKeyLen+4)
	buf = append(buf, prefix.Version[:]...)
	buf = append(buf, attrs.Depth)
	buf = append(buf, attrs.ParentFingerprint[:]...)

	var cn [4]byte
	binary.BigEndian.PutUint32(cn[:], uint32(attrs.ChildNumber))
	buf = append(buf, cn[:]...)
	buf = append(buf, attrs.ChainCode[:]...)
	buf = append(buf, keyMaterial...)

	checksum := doubleSha256(buf)[:4]
	buf = append(buf, checksum...)
	return base58.Bitcoin.Encode(buf)
}

// decodedWire is the parsed form of a 78-byte extended-key record, before
// the caller interprets keyMaterial as private or public.
type decodedWire struct {
	prefix      Prefix
	attrs       ExtendedKeyAttrs
	keyMaterial []byte // 33 bytes
}

// decodeWire reverses encodeWire: Base58 decode, checksum verification,
// prefix lookup, and field splitting (§4.5 Parsing).
func decodeWire(text string) (decodedWire, error) {
	raw, err := base58.Bitcoin.Decode(text)
	if err != nil {
		return decodedWire{}, ErrDecode
	}
	if len(raw) != serializedKeyLen+4 {
		return decodedWire{}, ErrDecode
	}

	payload := raw[:serializedKeyLen]
	checksum := raw[serializedKeyLen:]
	want := doubleSha256(payload)[:4]
	if !bytes.Equal(checksum, want) {
		return decodedWire{}, ErrInvalidChecksum
	}

	var version [4]byte
	copy(version[:], payload[:4])
	prefix, ok := prefixForVersion(version)
	if !ok {
		return decodedWire{}, ErrUnknownPrefix
	}

	attrs := ExtendedKeyAttrs{Depth: payload[4]}
	copy(attrs.ParentFingerprint[:], payload[5:9])
	attrs.ChildNumber = ChildNumber(binary.BigEndian.Uint32(payload[9:13]))
	copy(attrs.ChainCode[:], payload[13:45])

	keyMaterial := make([]byte, 33)
	copy(keyMaterial, payload[45:78])

	return decodedWire{prefix: prefix, attrs: attrs, keyMaterial: keyMaterial}, nil
}
