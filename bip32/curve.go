package bip32

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ModChain/secp256k1"
)

// Curve is the capability the derivation engine is parameterized over
// (§9 "parametric curve and wordlist"): parse/serialize compressed public
// points and perform the scalar arithmetic CKD-priv/CKD-pub need. The only
// implementation shipped is Secp256k1, backed by github.com/ModChain/secp256k1
// — the same module ecckd/extended.go already imports.
type Curve interface {
	// N returns the order of the curve's base point.
	N() *big.Int
	// ScalarBaseMult returns k*G.
	ScalarBaseMult(k []byte) (x, y *big.Int)
	// Add returns the sum of two curve points.
	Add(x1, y1, x2, y2 *big.Int) (x, y *big.Int)
	// ParsePublicCompressed parses a 33-byte SEC1-compressed point.
	ParsePublicCompressed(b []byte) (x, y *big.Int, err error)
	// SerializePublicCompressed renders a point as 33-byte SEC1-compressed.
	SerializePublicCompressed(x, y *big.Int) [33]byte
}

// Secp256k1 is the default, and only shipped, Curve implementation.
var Secp256k1 Curve = secp256k1Curve{}

type secp256k1Curve struct{}

func (secp256k1Curve) N() *big.Int {
	return secp256k1.S256().Params().N
}

func (secp256k1Curve) ScalarBaseMult(k []byte) (x, y *big.Int) {
	return secp256k1.S256().ScalarBaseMult(k)
}

func (secp256k1Curve) Add(x1, y1, x2, y2 *big.Int) (x, y *big.Int) {
	return secp256k1.S256().Add(x1, y1, x2, y2)
}

func (secp256k1Curve) ParsePublicCompressed(b []byte) (*big.Int, *big.Int, error) {
	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, nil, err
	}
	return pk.X(), pk.Y(), nil
}

func (secp256k1Curve) SerializePublicCompressed(x, y *big.Int) [33]byte {
	pk := secp256k1.NewPublicKey(asFieldVal(x), asFieldVal(y))
	var out [33]byte
	copy(out[:], pk.SerializeCompressed())
	return out
}

// asFieldVal converts a big.Int coordinate into the curve library's native
// field element type.
func asFieldVal(v *big.Int) *secp256k1.FieldVal {
	fv := new(secp256k1.FieldVal)
	fv.SetByteSlice(v.Bytes())
	return fv
}

// privateToECDSA adapts a raw 32-byte scalar to crypto/ecdsa, used only to
// prove a derived key is usable by an external signing collaborator (§1
// "out of scope: ECDSA signing").
func privateToECDSA(scalar []byte) *ecdsa.PrivateKey {
	return secp256k1.PrivKeyFromBytes(scalar).ToECDSA()
}
