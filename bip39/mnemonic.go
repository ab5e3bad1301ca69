// Package bip39 implements BIP-39 mnemonic phrase generation, validation,
// and seed derivation.
package bip39

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// MnemonicType enumerates the five supported entropy sizes (§3).
type MnemonicType int

const (
	Words12 MnemonicType = iota // 128 bits of entropy
	Words15                     // 160 bits
	Words18                     // 192 bits
	Words21                     // 224 bits
	Words24                     // 256 bits
)

// EntropyBits returns the number of entropy bits for this type.
func (t MnemonicType) EntropyBits() int {
	switch t {
	case Words12:
		return 128
	case Words15:
		return 160
	case Words18:
		return 192
	case Words21:
		return 224
	case Words24:
		return 256
	default:
		return 0
	}
}

// EntropyBytes returns the number of entropy bytes for this type.
func (t MnemonicType) EntropyBytes() int {
	return t.EntropyBits() / 8
}

// ChecksumBits returns the number of checksum bits appended to the entropy
// before bit-packing, equal to entropy_bits/32 (§3).
func (t MnemonicType) ChecksumBits() int {
	return t.EntropyBits() / 32
}

// WordCount returns the number of words a phrase of this type has.
func (t MnemonicType) WordCount() int {
	return (t.EntropyBits() + t.ChecksumBits()) / 11
}

func mnemonicTypeForEntropyLen(n int) (MnemonicType, error) {
	switch n * 8 {
	case 128:
		return Words12, nil
	case 160:
		return Words15, nil
	case 192:
		return Words18, nil
	case 224:
		return Words21, nil
	case 256:
		return Words24, nil
	default:
		return 0, ErrInvalidEntropyLength
	}
}

func mnemonicTypeForWordCount(n int) (MnemonicType, error) {
	switch n {
	case 12:
		return Words12, nil
	case 15:
		return Words15, nil
	case 18:
		return Words18, nil
	case 21:
		return Words21, nil
	case 24:
		return Words24, nil
	default:
		return 0, ErrInvalidWordCount
	}
}

// Mnemonic is a BIP-39 phrase paired with the entropy it was derived from
// and the wordlist it was encoded under (§3).
type Mnemonic struct {
	phrase   string
	language Wordlist
	entropy  []byte
}

// Phrase returns the NFKD-normalized, single-space-joined phrase.
func (m *Mnemonic) Phrase() string { return m.phrase }

// Entropy returns the raw entropy bytes the phrase encodes. The returned
// slice aliases Mnemonic's storage; do not retain it past a Wipe.
func (m *Mnemonic) Entropy() []byte { return m.entropy }

// Language returns the wordlist the phrase was encoded under.
func (m *Mnemonic) Language() Wordlist { return m.language }

// Wipe overwrites the entropy with zeros and clears the phrase field, the
// two secret-bearing fields of a Mnemonic (§4.6). Go strings are immutable,
// so the bytes of the phrase string itself are not overwritten; only the
// Mnemonic's reference to them is dropped.
func (m *Mnemonic) Wipe() {
	for i := range m.entropy {
		m.entropy[i] = 0
	}
	if len(m.phrase) > 0 {
		b := []byte(m.phrase)
		for i := range b {
			b[i] = 0
		}
		m.phrase = ""
	}
}

// fillRandomFunc is the RNG capability the core requires (§5, §9): a
// function that fills buf with cryptographically secure random bytes and
// cannot fail silently.
type fillRandomFunc func(buf []byte) error

func defaultFillRandom(buf []byte) error {
	_, err := rand.Read(buf)
	return err
}

// Generate draws fresh entropy from fill (or crypto/rand if fill is nil),
// computes its checksum, and bit-packs the result into a phrase under lang.
func Generate(t MnemonicType, lang Wordlist, fill fillRandomFunc) (*Mnemonic, error) {
	if fill == nil {
		fill = defaultFillRandom
	}
	entropy := make([]byte, t.EntropyBytes())
	if err := fill(entropy); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRng, err)
	}
	return FromEntropy(entropy, lang)
}

// FromEntropy validates entropy's length and bit-packs entropy‖checksum into
// a phrase under lang (§4.2).
func FromEntropy(entropy []byte, lang Wordlist) (*Mnemonic, error) {
	t, err := mnemonicTypeForEntropyLen(len(entropy))
	if err != nil {
		return nil, err
	}

	checksumBits := t.ChecksumBits()
	sum := sha256.Sum256(entropy)
	checksumVal := uint32(sum[0]) >> uint(8-checksumBits)

	w := &bitWriter{}
	w.writeBytes(entropy)
	w.writeBits(checksumVal, checksumBits)

	symbols := elevenBitSymbols(w.buf)
	words := make([]string, len(symbols))
	for i, s := range symbols {
		word, err := lang.Word(int(s))
		if err != nil {
			return nil, err
		}
		words[i] = word
	}

	ent := make([]byte, len(entropy))
	copy(ent, entropy)

	return &Mnemonic{
		phrase:   strings.Join(words, " "),
		language: lang,
		entropy:  ent,
	}, nil
}

// FromPhrase normalizes, tokenizes, and validates text against lang,
// recovering the entropy it encodes (§4.2).
func FromPhrase(text string, lang Wordlist) (*Mnemonic, error) {
	tokens := strings.Fields(norm.NFKD.String(text))

	t, err := mnemonicTypeForWordCount(len(tokens))
	if err != nil {
		return nil, err
	}

	w := &bitWriter{}
	for _, tok := range tokens {
		idx, ok := lang.Index(tok)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, tok)
		}
		w.writeBits(uint32(idx), 11)
	}

	r := newBitReader(w.buf)
	entropyBytes := t.EntropyBytes()
	entropy := make([]byte, entropyBytes)
	for i := range entropy {
		entropy[i] = byte(r.readBits(8))
	}

	checksumBits := t.ChecksumBits()
	gotChecksum := r.readBits(checksumBits)

	sum := sha256.Sum256(entropy)
	wantChecksum := uint32(sum[0]) >> uint(8-checksumBits)
	if gotChecksum != wantChecksum {
		return nil, ErrInvalidChecksum
	}

	return &Mnemonic{
		phrase:   strings.Join(tokens, " "),
		language: lang,
		entropy:  entropy,
	}, nil
}

// Validate reports whether phrase is a well-formed, correctly-checksummed
// mnemonic under lang, without retaining the decoded Mnemonic.
func Validate(phrase string, lang Wordlist) error {
	m, err := FromPhrase(phrase, lang)
	if err != nil {
		return err
	}
	m.Wipe()
	return nil
}

// ToSeed derives the 64-byte BIP-32 seed from the phrase and an optional
// passphrase via PBKDF2-HMAC-SHA-512 (§3 Seed, §4.2 to_seed).
func (m *Mnemonic) ToSeed(passphrase string) *Seed {
	password := []byte(norm.NFKD.String(m.phrase))
	salt := []byte(norm.NFKD.String("mnemonic" + passphrase))

	key := pbkdf2.Key(password, salt, 2048, SeedSize, sha512.New)

	var s Seed
	copy(s.b[:], key)
	return &s
}
