package bip32

import "errors"

var (
	// ErrInvalidSeed is returned when a seed used for master-key
	// generation is outside [16, 64] bytes, or when the scalar of a
	// parsed extended private key is zero or not less than the curve
	// order.
	ErrInvalidSeed = errors.New("bip32: invalid seed")

	// ErrInvalidChildNumber is returned when a child-number token does
	// not fit in 31 bits.
	ErrInvalidChildNumber = errors.New("bip32: invalid child number")

	// ErrInvalidDerivationPath is returned when a path string is
	// malformed (empty token, missing leading m, bad separator).
	ErrInvalidDerivationPath = errors.New("bip32: invalid derivation path")

	// ErrCannotDeriveFromHardenedChild is returned when a hardened child
	// is requested from a public-only extended key.
	ErrCannotDeriveFromHardenedChild = errors.New("bip32: cannot derive hardened child from public key")

	// ErrMaxDepthExceeded is returned when a derivation would push depth
	// past 255.
	ErrMaxDepthExceeded = errors.New("bip32: max depth exceeded")

	// ErrUnknownPrefix is returned when an encoded key's version bytes
	// do not match a registered Prefix.
	ErrUnknownPrefix = errors.New("bip32: unknown version prefix")

	// ErrInvalidChecksum is returned when a Base58Check checksum does
	// not match the decoded payload.
	ErrInvalidChecksum = errors.New("bip32: bad extended key checksum")

	// ErrDecode covers malformed wire-format input: invalid Base58, wrong
	// length, or an unexpected key-material tag byte. A checksum mismatch
	// is reported as ErrInvalidChecksum instead.
	ErrDecode = errors.New("bip32: malformed extended key encoding")

	// ErrCrypto covers the negligible-probability curve failures: an
	// HMAC output at or above the curve order, a zero scalar, or a
	// derived public point at infinity.
	ErrCrypto = errors.New("bip32: derivation produced an invalid key")
)
