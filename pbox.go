// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package feistel32

// The P-box is a fixed, key-independent bit permutation: input bit i moves
// to output position (i*3) mod 16. gcd(3, 16) = 1, so every output position
// is hit exactly once and the mapping inverts cleanly with the multiplier
// 11 (3*11 = 33 = 1 mod 16).

var (
	// pboxTable[i] = (i * 3) mod 16
	pboxTable = [16]uint8{0, 3, 6, 9, 12, 15, 2, 5, 8, 11, 14, 1, 4, 7, 10, 13}

	// pboxInvTable[i] = (i * 11) mod 16
	pboxInvTable = [16]uint8{0, 11, 6, 1, 12, 7, 2, 13, 8, 3, 14, 9, 4, 15, 10, 5}
)

// permuteBits moves bit i of v to position table[i].
func permuteBits(v uint16, table *[16]uint8) uint16 {
	var out uint16
	for i := 0; i < 16; i++ {
		bit := (v >> i) & 1
		out |= bit << table[i]
	}
	return out
}

// permute16 applies the forward P-box.
func permute16(v uint16) uint16 {
	return permuteBits(v, &pboxTable)
}

// inversePermute16 undoes permute16. The decryption path never needs it,
// since the Feistel structure reuses the forward round function, but the
// inverse is part of the P-box contract.
func inversePermute16(v uint16) uint16 {
	return permuteBits(v, &pboxInvTable)
}
