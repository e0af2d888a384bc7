// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package feistel32

// The S-box is a key-dependent permutation of the 16 nibble values. Because
// decryption must rebuild the exact table that encryption used, the
// generator is pinned bit-for-bit: SplitMix64 seeded with the zero-extended
// master key drives a Fisher-Yates shuffle of [0..15], one 64-bit output per
// swap, with the swap index taken as next() mod (i+1) for i from 15 down
// to 1. Any reimplementation that follows this convention reproduces the
// identical table for the same key.

// splitMix64 is the pinned deterministic generator behind S-box creation.
type splitMix64 uint64

// next returns the next 64-bit output of the generator.
func (s *splitMix64) next() uint64 {
	*s += 0x9e3779b97f4a7c15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// generateSBox derives the substitution table and its inverse from the
// master key. The result is a bijection over 0..15 and is identical across
// runs and platforms for the same key.
func generateSBox(key uint32) (sbox, inverse [16]uint8) {
	rng := splitMix64(key)
	for i := range sbox {
		sbox[i] = uint8(i)
	}
	for i := 15; i > 0; i-- {
		j := int(rng.next() % uint64(i+1))
		sbox[i], sbox[j] = sbox[j], sbox[i]
	}
	for i, v := range sbox {
		inverse[v] = uint8(i)
	}
	return sbox, inverse
}

// substituteHalf maps each of the four nibbles of half through the table,
// keeping nibble positions. Passing the inverse table undoes a substitution
// done with the forward table.
func substituteHalf(half uint16, table *[16]uint8) uint16 {
	return uint16(table[(half>>12)&0xF])<<12 |
		uint16(table[(half>>8)&0xF])<<8 |
		uint16(table[(half>>4)&0xF])<<4 |
		uint16(table[half&0xF])
}
