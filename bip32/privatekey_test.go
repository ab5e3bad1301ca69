package bip32

import (
	"encoding/hex"
	"testing"
)

// S2: BIP-32 test vector 1.
func TestMasterKey_S2Vector(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	if err != nil {
		t.Fatal(err)
	}

	master, err := MasterKeyFromSeed(seed, Secp256k1)
	if err != nil {
		t.Fatal(err)
	}

	wantPriv := "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
	if got := master.Display(XPrv); got != wantPriv {
		t.Fatalf("got %s, want %s", got, wantPriv)
	}

	pub, err := master.PublicKey()
	if err != nil {
		t.Fatal(err)
	}
	wantPub := "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
	if got := pub.Display(XPub); got != wantPub {
		t.Fatalf("got %s, want %s", got, wantPub)
	}
}

// S3: BIP-32 deep-path test vector.
func TestDerive_S3Vector(t *testing.T) {
	seed, err := hex.DecodeString("fffcf9f6f3f0edeae7e4e1dedbd8d5d2cfccc9c6c3c0bdbab7b4b1aeaba8a5a29f9c999693908d8a8784817e7b7875726f6c696663605d5a5754514e4b484542")
	if err != nil {
		t.Fatal(err)
	}

	path, err := ParseDerivationPath("m/0/2147483647'/1/2147483646'/2")
	if err != nil {
		t.Fatal(err)
	}

	child, err := DeriveFromPath(seed, path, Secp256k1)
	if err != nil {
		t.Fatal(err)
	}

	wantPriv := "xprvA2nrNbFZABcdryreWet9Ea4LvTJcGsqrMzxHx98MMrotbir7yrKCEXw7nadnHM8Dq38EGfSh6dqA9QWTyefMLEcBYJUuekgW4BYPJcr9E7j"
	if got := child.Display(XPrv); got != wantPriv {
		t.Fatalf("got %s, want %s", got, wantPriv)
	}

	pub, err := child.PublicKey()
	if err != nil {
		t.Fatal(err)
	}
	wantPub := "xpub6FnCn6nSzZAw5Tw7cgR9bi15UV96gLZhjDstkXXxvCLsUXBGXPdSnLFbdpq8p9HmGsApME5hQTZ3emM2rnY5agb9rXpVGyy3bdW6EEgAtqt"
	if got := pub.Display(XPub); got != wantPub {
		t.Fatalf("got %s, want %s", got, wantPub)
	}
}

// Property 5: derive_from_path("m/a/b") == derive_child(a).derive_child(b).
func TestDeriveAssociativity(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")

	viaPath, err := DeriveFromPath(seed, DerivationPath{ChildNumber(HardenedBit), 1}, Secp256k1)
	if err != nil {
		t.Fatal(err)
	}

	master, err := MasterKeyFromSeed(seed, Secp256k1)
	if err != nil {
		t.Fatal(err)
	}
	a, err := master.DeriveChild(ChildNumber(HardenedBit))
	if err != nil {
		t.Fatal(err)
	}
	viaChild, err := a.DeriveChild(1)
	if err != nil {
		t.Fatal(err)
	}

	if viaPath.Display(XPrv) != viaChild.Display(XPrv) {
		t.Fatalf("path derivation and sequential derivation disagree")
	}
}

// Property 7: fingerprint link.
func TestFingerprintLink(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed, Secp256k1)
	if err != nil {
		t.Fatal(err)
	}
	child, err := master.DeriveChild(ChildNumber(HardenedBit))
	if err != nil {
		t.Fatal(err)
	}

	parentPub, _ := master.PublicKey()
	want := fingerprintOf(parentPub.PublicKeyBytes())

	if child.Attrs().ParentFingerprint != want {
		t.Fatalf("got %x, want %x", child.Attrs().ParentFingerprint, want)
	}
	if child.Attrs().Depth != master.Attrs().Depth+1 {
		t.Fatalf("got depth %d, want %d", child.Attrs().Depth, master.Attrs().Depth+1)
	}
	if child.Attrs().ChildNumber != ChildNumber(HardenedBit) {
		t.Fatalf("got child number %v", child.Attrs().ChildNumber)
	}
}

func TestMasterKeyFromSeed_RejectsBadLength(t *testing.T) {
	if _, err := MasterKeyFromSeed(make([]byte, 15), Secp256k1); err == nil {
		t.Fatal("expected error for too-short seed")
	}
	if _, err := MasterKeyFromSeed(make([]byte, 65), Secp256k1); err == nil {
		t.Fatal("expected error for too-long seed")
	}
}

// Property 4: extended-key round-trip.
func TestExtendedPrivateKeyRoundTrip(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed, Secp256k1)
	if err != nil {
		t.Fatal(err)
	}

	encoded := master.Display(XPrv)
	decoded, err := ParseExtendedPrivateKey(encoded, Secp256k1)
	if err != nil {
		t.Fatal(err)
	}

	if decoded.Display(XPrv) != encoded {
		t.Fatalf("round trip mismatch")
	}
	if decoded.Attrs() != master.Attrs() {
		t.Fatalf("attrs mismatch: got %+v, want %+v", decoded.Attrs(), master.Attrs())
	}
}

func TestExtendedPrivateKeyWipe(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed, Secp256k1)
	if err != nil {
		t.Fatal(err)
	}
	master.Wipe()
	for _, b := range master.PrivateKeyBytes() {
		if b != 0 {
			t.Fatal("expected wiped scalar")
		}
	}
}
