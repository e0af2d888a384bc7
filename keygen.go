// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package feistel32

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	kdfNumIterations = 10000

	kdfSalt = "FEISTEL32 key"
)

// pbkdf2SHA256 calculates PBKDF2 based on HMAC-SHA256
func pbkdf2SHA256(password []byte, salt []byte, iterations int, keyLen int) []byte {
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.New)
}

// utf8NFKD converts a UTF8 string to the decomposed canonical form (NFKD)
func utf8NFKD(str string) string {
	return norm.NFKD.String(str)
}

// load32 loads a 32-bit value in little-endian byte order
func load32(p []byte) uint32 {
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 | uint32(p[3])<<24
}

// KeyFromPassphrase derives the 32-bit master key from a passphrase. The
// passphrase is normalized to NFKD first, so visually identical inputs typed
// with composed or decomposed accents derive the same key. The derivation is
// PBKDF2-HMAC-SHA256 with a fixed domain-separation salt.
func KeyFromPassphrase(passphrase string) uint32 {
	passBytes := []byte(utf8NFKD(passphrase))

	salt := make([]byte, 16)
	copy(salt, kdfSalt)
	salt[13] = 0xFF
	salt[14] = 0xFF
	salt[15] = 0xFF

	key := pbkdf2SHA256(passBytes, salt, kdfNumIterations, 4)
	return load32(key)
}
