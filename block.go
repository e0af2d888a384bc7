// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package feistel32

import (
	"crypto/cipher"
	"encoding/binary"
)

// BlockSize is the cipher block size in bytes.
const BlockSize = 4

// blockCipher adapts Cipher to the standard cipher.Block interface. Blocks
// are interpreted big-endian, matching the byte packing of the message
// layer.
type blockCipher struct {
	c *Cipher
}

// NewBlockCipher returns a cipher.Block view of the engine so it composes
// with standard mode wrappers. The same (key, rounds) validation as New
// applies.
func NewBlockCipher(key uint32, rounds int) (cipher.Block, error) {
	c, err := New(key, rounds)
	if err != nil {
		return nil, err
	}
	return &blockCipher{c: c}, nil
}

func (b *blockCipher) BlockSize() int {
	return BlockSize
}

func (b *blockCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("feistel32: input not full block")
	}
	if len(dst) < BlockSize {
		panic("feistel32: output not full block")
	}
	binary.BigEndian.PutUint32(dst, b.c.EncryptBlock(binary.BigEndian.Uint32(src)))
}

func (b *blockCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("feistel32: input not full block")
	}
	if len(dst) < BlockSize {
		panic("feistel32: output not full block")
	}
	binary.BigEndian.PutUint32(dst, b.c.DecryptBlock(binary.BigEndian.Uint32(src)))
}
