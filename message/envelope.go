// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package message

import (
	"encoding/binary"
)

const (
	envelopeMagic = "FSTL"
	magicSize     = 4

	envelopeVersion = 1
	extraByte       = 0xFF

	headerSize = 8

	maxRounds = 0xFFFF
)

// store16 stores a 16-bit value in little-endian format
func store16(p []byte, u uint16) {
	binary.LittleEndian.PutUint16(p, u)
}

// load16 loads a 16-bit value from little-endian format
func load16(p []byte) uint16 {
	return binary.LittleEndian.Uint16(p)
}

// Seal frames a ciphertext so it is self-describing: magic, format version,
// and the round count used for encryption. The key is deliberately absent;
// the envelope carries parameters, not secrets.
//
// Layout: "FSTL" | version (1 byte) | 0xFF | rounds (uint16 LE) | payload.
func Seal(ciphertext []byte, rounds int) ([]byte, error) {
	if rounds < 0 || rounds > maxRounds {
		return nil, StatusErrFormat
	}

	out := make([]byte, headerSize+len(ciphertext))
	pos := 0

	// Header
	copy(out[pos:], envelopeMagic)
	pos += magicSize

	// Version
	out[pos] = envelopeVersion
	pos++

	// Extra byte
	out[pos] = extraByte
	pos++

	// Round count
	store16(out[pos:], uint16(rounds))
	pos += 2

	copy(out[pos:], ciphertext)
	return out, nil
}

// Open validates an envelope and returns the ciphertext payload and the
// round count recorded at sealing time.
func Open(envelope []byte) ([]byte, int, error) {
	if len(envelope) < headerSize {
		return nil, 0, StatusErrFormat
	}
	pos := 0

	// Check header
	if string(envelope[pos:pos+magicSize]) != envelopeMagic {
		return nil, 0, StatusErrFormat
	}
	pos += magicSize

	// Check version
	if envelope[pos] != envelopeVersion {
		return nil, 0, StatusErrFormat
	}
	pos++

	// Check extra byte
	if envelope[pos] != extraByte {
		return nil, 0, StatusErrFormat
	}
	pos++

	// Load round count
	rounds := int(load16(envelope[pos:]))
	pos += 2

	return envelope[pos:], rounds, nil
}
