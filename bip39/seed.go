package bip39

import (
	"encoding/hex"
	"fmt"
)

// SeedSize is the fixed length, in bytes, of a BIP-39 seed (§3 Seed).
const SeedSize = 64

// Seed is the 64-byte value produced by to_seed and consumed by BIP-32
// master-key generation. It owns its backing bytes and must be wiped once
// the caller is done deriving keys from it (§4.6).
type Seed struct {
	b [SeedSize]byte
}

// Bytes returns the seed's raw bytes. The returned slice aliases the Seed's
// internal storage; callers must not retain it past a Wipe.
func (s *Seed) Bytes() []byte {
	return s.b[:]
}

// String renders the seed as lowercase hex (§6 "Seed hex").
func (s *Seed) String() string {
	return hex.EncodeToString(s.b[:])
}

// HexUpper renders the seed as uppercase hex.
func (s *Seed) HexUpper() string {
	return fmt.Sprintf("%X", s.b[:])
}

// Wipe overwrites the seed bytes with zeros (§4.6 Zeroization Discipline).
func (s *Seed) Wipe() {
	for i := range s.b {
		s.b[i] = 0
	}
}
