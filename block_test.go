// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package feistel32

import (
	"encoding/binary"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestBlockCipherRoundTrip(t *testing.T) {
	b, err := NewBlockCipher(0x075bcd15, DefaultRounds)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(b.BlockSize(), BlockSize))

	src := []byte{0x12, 0x34, 0x56, 0x78}
	dst := make([]byte, BlockSize)
	out := make([]byte, BlockSize)

	b.Encrypt(dst, src)
	b.Decrypt(out, dst)
	qt.Assert(t, qt.DeepEquals(out, src))
}

func TestBlockCipherMatchesCore(t *testing.T) {
	c, err := New(0xdeadbeef, 6)
	qt.Assert(t, qt.IsNil(err))
	b, err := NewBlockCipher(0xdeadbeef, 6)
	qt.Assert(t, qt.IsNil(err))

	rng := splitMix64(0xb10c)
	src := make([]byte, BlockSize)
	dst := make([]byte, BlockSize)
	for i := 0; i < 256; i++ {
		block := uint32(rng.next())
		binary.BigEndian.PutUint32(src, block)
		b.Encrypt(dst, src)
		qt.Assert(t, qt.Equals(binary.BigEndian.Uint32(dst), c.EncryptBlock(block)))
	}
}

func TestBlockCipherRejectsNegativeRounds(t *testing.T) {
	_, err := NewBlockCipher(1, -1)
	qt.Assert(t, qt.ErrorIs(err, StatusErrRounds))
}

func TestBlockCipherPanicsOnShortBlock(t *testing.T) {
	b, err := NewBlockCipher(1, DefaultRounds)
	qt.Assert(t, qt.IsNil(err))

	dst := make([]byte, BlockSize)
	qt.Assert(t, qt.PanicMatches(func() {
		b.Encrypt(dst, []byte{1, 2})
	}, "feistel32: input not full block"))
	qt.Assert(t, qt.PanicMatches(func() {
		b.Decrypt(make([]byte, 2), dst)
	}, "feistel32: output not full block"))
}
