package bip32

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HardenedBit is the bit that marks a child number as hardened (§3
// ChildNumber, index >= 2^31).
const HardenedBit uint32 = 0x80000000

// ChildNumber is a 32-bit derivation index with the top bit flagging
// "hardened" (§3).
type ChildNumber uint32

// FromU32 builds a ChildNumber from a plain index, setting the hardened bit
// iff hardened is true. n must be < 2^31.
func FromU32(n uint32, hardened bool) (ChildNumber, error) {
	if n >= HardenedBit {
		return 0, ErrInvalidChildNumber
	}
	if hardened {
		n |= HardenedBit
	}
	return ChildNumber(n), nil
}

// Index returns the lower 31 bits: the index within this derivation level.
func (c ChildNumber) Index() uint32 {
	return uint32(c) &^ HardenedBit
}

// IsHardened reports whether the top bit is set.
func (c ChildNumber) IsHardened() bool {
	return uint32(c)&HardenedBit == HardenedBit
}

// String renders the child number as "<index>" or "<index>'" for hardened
// indices, matching the textual form accepted by ParseDerivationPath.
func (c ChildNumber) String() string {
	if c.IsHardened() {
		return fmt.Sprintf("%d'", c.Index())
	}
	return strconv.FormatUint(uint64(c.Index()), 10)
}

// parseChildNumber parses a single path token: a decimal integer optionally
// suffixed with ' or h to mark it hardened (§4.3).
func parseChildNumber(tok string) (ChildNumber, error) {
	if tok == "" {
		return 0, ErrInvalidDerivationPath
	}

	hardened := false
	if last := tok[len(tok)-1]; last == '\'' || last == 'h' || last == 'H' {
		hardened = true
		tok = tok[:len(tok)-1]
	}
	if tok == "" {
		return 0, ErrInvalidDerivationPath
	}

	n, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidChildNumber, tok)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidDerivationPath, tok)
	}
	if n >= uint64(HardenedBit) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChildNumber, tok)
	}

	return FromU32(uint32(n), hardened)
}

// splitPathTokens splits a path string on '/', trimming a leading "m" token.
func splitPathTokens(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	parts := strings.Split(text, "/")
	if parts[0] != "m" {
		return nil, ErrInvalidDerivationPath
	}
	return parts[1:], nil
}
