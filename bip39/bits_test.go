package bip39

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitWriterReaderRoundTrip(t *testing.T) {
	w := &bitWriter{}
	w.writeBits(0x7FF, 11)
	w.writeBits(0, 11)
	w.writeBits(1, 1)

	r := newBitReader(w.buf)
	require.Equal(t, uint32(0x7FF), r.readBits(11))
	require.Equal(t, uint32(0), r.readBits(11))
	require.Equal(t, uint32(1), r.readBits(1))
}

func TestElevenBitSymbols(t *testing.T) {
	// 16 bytes of entropy plus a 4-bit checksum packs into exactly 12
	// eleven-bit symbols (132 bits), matching a 12-word phrase.
	w := &bitWriter{}
	w.writeBytes(make([]byte, 16))
	w.writeBits(0xF, 4)

	symbols := elevenBitSymbols(w.buf)
	require.Len(t, symbols, 12)
}

func TestWriteBytesPreservesValue(t *testing.T) {
	w := &bitWriter{}
	w.writeBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})

	r := newBitReader(w.buf)
	require.Equal(t, uint32(0xDE), r.readBits(8))
	require.Equal(t, uint32(0xAD), r.readBits(8))
	require.Equal(t, uint32(0xBE), r.readBits(8))
	require.Equal(t, uint32(0xEF), r.readBits(8))
}
