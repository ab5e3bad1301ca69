package bip32

import (
	"encoding/hex"
	"testing"
)

// Property 8: flipping any single character of a valid xprv/xpub string
// either fails Base58 decoding or fails checksum verification.
func TestBase58CheckIntegrity(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed, Secp256k1)
	if err != nil {
		t.Fatal(err)
	}
	valid := master.Display(XPrv)

	const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	for i := range valid {
		for _, c := range alphabet {
			if byte(c) == valid[i] {
				continue
			}
			mutated := valid[:i] + string(c) + valid[i+1:]
			if _, err := ParseExtendedPrivateKey(mutated, Secp256k1); err == nil {
				t.Fatalf("mutation at position %d (%q -> %q) did not fail", i, valid, mutated)
			}
			break // one mutation per position is enough to exercise the check
		}
	}
}

func TestDecodeWire_RejectsWrongLength(t *testing.T) {
	if _, err := ParseExtendedPrivateKey("2NEpo7TZRRrLZSi2U", Secp256k1); err == nil {
		t.Fatal("expected error for malformed short string")
	}
}
