// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package message is the byte-oriented layer above the block cipher: it pads
// arbitrary-length plaintext to 4-byte blocks, packs the blocks big-endian,
// and encrypts each block independently. The cipher core owns none of this;
// padding and chaining are deliberately kept outside it.
package message

import (
	"encoding/binary"

	feistel32 "github.com/complex-gh/feistel32_go"
)

// blockSize is the cipher block size in bytes.
const blockSize = feistel32.BlockSize

// Status represents the result of a message-layer operation
type Status int

const (
	// StatusOK indicates success
	StatusOK Status = iota

	// StatusErrLength indicates a ciphertext that is empty or not a whole
	// number of blocks
	StatusErrLength

	// StatusErrPadding indicates malformed padding after decryption,
	// usually the result of a wrong key or round count
	StatusErrPadding

	// StatusErrFormat indicates an invalid message envelope
	StatusErrFormat
)

// Error returns the error message for the status
func (s Status) Error() string {
	switch s {
	case StatusOK:
		return "success"
	case StatusErrLength:
		return "ciphertext length is not a multiple of the block size"
	case StatusErrPadding:
		return "invalid padding"
	case StatusErrFormat:
		return "invalid message format"
	default:
		return "unknown error"
	}
}

// pad appends PKCS#7-style padding up to the next block boundary. Input
// already on a boundary gains a full padding block, so unpad is always
// unambiguous.
func pad(data []byte) []byte {
	padLen := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

// unpad validates and strips the padding appended by pad.
func unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, StatusErrLength
	}
	padLen := int(data[len(data)-1])
	if padLen < 1 || padLen > blockSize {
		return nil, StatusErrPadding
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, StatusErrPadding
		}
	}
	return data[:len(data)-padLen], nil
}

// Encrypt pads the plaintext and encrypts every 4-byte block with the same
// freshly derived schedule. Blocks are independent, so the ciphertext of
// equal blocks repeats; this layer provides reversibility, not semantic
// security.
func Encrypt(plaintext []byte, key uint32, rounds int) ([]byte, error) {
	c, err := feistel32.New(key, rounds)
	if err != nil {
		return nil, err
	}

	padded := pad(plaintext)
	out := make([]byte, 0, len(padded))
	for i := 0; i < len(padded); i += blockSize {
		block := binary.BigEndian.Uint32(padded[i:])
		out = binary.BigEndian.AppendUint32(out, c.EncryptBlock(block))
	}
	return out, nil
}

// Decrypt reverses Encrypt. A wrong key or round count surfaces as
// StatusErrPadding at best and as garbage plaintext at worst; the cipher
// itself cannot detect the mismatch.
func Decrypt(ciphertext []byte, key uint32, rounds int) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%blockSize != 0 {
		return nil, StatusErrLength
	}

	c, err := feistel32.New(key, rounds)
	if err != nil {
		return nil, err
	}

	padded := make([]byte, 0, len(ciphertext))
	for i := 0; i < len(ciphertext); i += blockSize {
		block := binary.BigEndian.Uint32(ciphertext[i:])
		padded = binary.BigEndian.AppendUint32(padded, c.DecryptBlock(block))
	}
	return unpad(padded)
}
