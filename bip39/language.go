package bip39

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Wordlist is the capability the mnemonic codec is parameterized over (§9
// Design Notes: "parametric curve and wordlist"). A conformant wordlist has
// exactly 2048 distinct, NFKD-normalized entries addressable by an 11-bit
// index. English is the only built-in implementation; the interface exists
// so a caller can plug in another language without touching the codec.
type Wordlist interface {
	// Name identifies the wordlist, e.g. "english".
	Name() string
	// Word returns the word at index i (0 <= i < 2048).
	Word(i int) (string, error)
	// Index returns the 11-bit index of w, or ok=false if w is not present.
	Index(w string) (i int, ok bool)
}

const wordlistSize = 2048

// english is the built-in English wordlist, the only language this
// implementation ships (§1 out-of-scope: "wordlists other than English").
type english struct {
	index map[string]int
}

func newEnglish() *english {
	idx := make(map[string]int, wordlistSize)
	for i, w := range englishWords {
		idx[w] = i
	}
	return &english{index: idx}
}

var English Wordlist = newEnglish()

func (e *english) Name() string { return "english" }

func (e *english) Word(i int) (string, error) {
	if i < 0 || i >= wordlistSize {
		return "", fmt.Errorf("bip39: word index %d out of range", i)
	}
	return englishWords[i], nil
}

func (e *english) Index(w string) (int, bool) {
	i, ok := e.index[normalizeWord(w)]
	return i, ok
}

// normalizeWord applies NFKD normalization to a single token, matching the
// Mnemonic invariant that phrase and wordlist entries share one canonical
// Unicode form (§3).
func normalizeWord(w string) string {
	return norm.NFKD.String(w)
}
