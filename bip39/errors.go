package bip39

import "errors"

var (
	// ErrInvalidEntropyLength is returned when entropy is not one of
	// 16, 20, 24, 28 or 32 bytes.
	ErrInvalidEntropyLength = errors.New("bip39: invalid entropy length")

	// ErrInvalidWordCount is returned when a phrase does not have one of
	// 12, 15, 18, 21 or 24 words.
	ErrInvalidWordCount = errors.New("bip39: invalid word count")

	// ErrInvalidWord is returned when a phrase contains a token absent
	// from the wordlist.
	ErrInvalidWord = errors.New("bip39: word not found in wordlist")

	// ErrInvalidChecksum is returned when a phrase's checksum bits do not
	// match the checksum recomputed from its entropy.
	ErrInvalidChecksum = errors.New("bip39: checksum mismatch")

	// ErrRng is returned when the injected random source fails.
	ErrRng = errors.New("bip39: random source failed")
)
