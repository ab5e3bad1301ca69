package bip32

import (
	"encoding/hex"
	"testing"
)

// S4: non-hardened CKD-pub equivalence.
func TestDeriveChild_S4Equivalence(t *testing.T) {
	seed, err := hex.DecodeString("fffcf9f6f3f0edeae7e4e1dedbd8d5d2cfccc9c6c3c0bdbab7b4b1aeaba8a5a29f9c999693908d8a8784817e7b7875726f6c696663605d5a5754514e4b484542")
	if err != nil {
		t.Fatal(err)
	}

	parentPath, err := ParseDerivationPath("m/0/2147483647'/1/2147483646'")
	if err != nil {
		t.Fatal(err)
	}
	parent, err := DeriveFromPath(seed, parentPath, Secp256k1)
	if err != nil {
		t.Fatal(err)
	}

	parentPub, err := parent.PublicKey()
	if err != nil {
		t.Fatal(err)
	}
	viaPub, err := parentPub.DeriveChild(2)
	if err != nil {
		t.Fatal(err)
	}

	viaPriv, err := parent.DeriveChild(2)
	if err != nil {
		t.Fatal(err)
	}
	wantPub, err := viaPriv.PublicKey()
	if err != nil {
		t.Fatal(err)
	}

	if viaPub.Display(XPub) != wantPub.Display(XPub) {
		t.Fatalf("got %s, want %s", viaPub.Display(XPub), wantPub.Display(XPub))
	}

	wantLiteral := "xpub6FnCn6nSzZAw5Tw7cgR9bi15UV96gLZhjDstkXXxvCLsUXBGXPdSnLFbdpq8p9HmGsApME5hQTZ3emM2rnY5agb9rXpVGyy3bdW6EEgAtqt"
	if got := viaPub.Display(XPub); got != wantLiteral {
		t.Fatalf("got %s, want %s", got, wantLiteral)
	}
}

// S5: hardened CKD-pub rejection.
func TestDeriveChild_S5HardenedRejection(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed, Secp256k1)
	if err != nil {
		t.Fatal(err)
	}
	pub, err := master.PublicKey()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := pub.DeriveChild(ChildNumber(HardenedBit)); err != ErrCannotDeriveFromHardenedChild {
		t.Fatalf("got %v, want ErrCannotDeriveFromHardenedChild", err)
	}
	if _, err := pub.DeriveChild(ChildNumber(HardenedBit + 7)); err != ErrCannotDeriveFromHardenedChild {
		t.Fatalf("got %v, want ErrCannotDeriveFromHardenedChild", err)
	}
}

// Property 6: public-of-derived = derived-of-public, for non-hardened i.
func TestPublicOfDerivedEqualsDerivedOfPublic(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed, Secp256k1)
	if err != nil {
		t.Fatal(err)
	}

	childPriv, err := master.DeriveChild(5)
	if err != nil {
		t.Fatal(err)
	}
	left, err := childPriv.PublicKey()
	if err != nil {
		t.Fatal(err)
	}

	masterPub, err := master.PublicKey()
	if err != nil {
		t.Fatal(err)
	}
	right, err := masterPub.DeriveChild(5)
	if err != nil {
		t.Fatal(err)
	}

	if left.Display(XPub) != right.Display(XPub) {
		t.Fatalf("got %s, want %s", left.Display(XPub), right.Display(XPub))
	}
}

func TestExtendedPublicKeyRoundTrip(t *testing.T) {
	seed, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	master, err := MasterKeyFromSeed(seed, Secp256k1)
	if err != nil {
		t.Fatal(err)
	}
	pub, err := master.PublicKey()
	if err != nil {
		t.Fatal(err)
	}

	encoded := pub.Display(XPub)
	decoded, err := ParseExtendedPublicKey(encoded, Secp256k1)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Display(XPub) != encoded {
		t.Fatal("round trip mismatch")
	}
}
