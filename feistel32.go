// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package feistel32 implements a small, deterministic Feistel block cipher
// operating on 32-bit blocks with a 32-bit master key. The per-round subkeys
// come from a 32-bit LFSR seeded with the master key, and the round function
// runs each 16-bit half through a key-dependent 4-bit S-box followed by a
// fixed bit permutation. The cipher is a teaching primitive: it is exactly
// reversible, but it makes no security claims.
package feistel32

const (
	// BlockBits is the width of a cipher block
	BlockBits = 32

	// KeyBits is the width of the master key
	KeyBits = 32

	// HalfBits is the width of one Feistel half
	HalfBits = 16

	// DefaultRounds is the round count used when the caller has no preference
	DefaultRounds = 4
)

// Status represents the result of a feistel32 operation
type Status int

const (
	// StatusOK indicates success
	StatusOK Status = iota

	// StatusErrRounds indicates a negative round count
	StatusErrRounds
)

// Error returns the error message for the status
func (s Status) Error() string {
	switch s {
	case StatusOK:
		return "success"
	case StatusErrRounds:
		return "round count must not be negative"
	default:
		return "unknown error"
	}
}

// Cipher holds the precomputed substitution tables and subkey schedule for
// one (key, rounds) pair. It is read-only after construction and therefore
// safe for concurrent use from multiple goroutines.
type Cipher struct {
	rounds  int
	sbox    [16]uint8
	invSbox [16]uint8
	subkeys []uint16
}

// New derives the S-box pair and the subkey schedule for the given master
// key and round count. A negative round count is a contract violation and
// returns StatusErrRounds; zero rounds yields the identity cipher.
func New(key uint32, rounds int) (*Cipher, error) {
	if rounds < 0 {
		return nil, StatusErrRounds
	}
	c := &Cipher{rounds: rounds}
	c.sbox, c.invSbox = generateSBox(key)
	c.subkeys = subkeySchedule(key, rounds)
	return c, nil
}

// splitBlock decomposes a block into its 16-bit halves. L is bits 31-16.
func splitBlock(block uint32) (left, right uint16) {
	return uint16(block >> HalfBits), uint16(block)
}

// combineBlock is the inverse of splitBlock.
func combineBlock(left, right uint16) uint32 {
	return uint32(left)<<HalfBits | uint32(right)
}

// roundFunction computes F(half, subkey) = pbox(sbox(half)) XOR subkey.
// Decryption reuses the forward S-box and P-box: the Feistel structure
// undoes each round by reversing the round order and swapping the half
// roles, so the round function itself never needs to be inverted.
func (c *Cipher) roundFunction(half, subkey uint16) uint16 {
	return permute16(substituteHalf(half, &c.sbox)) ^ subkey
}

// EncryptBlock encrypts a single 32-bit block.
func (c *Cipher) EncryptBlock(plaintext uint32) uint32 {
	left, right := splitBlock(plaintext)
	for i := 0; i < c.rounds; i++ {
		f := c.roundFunction(right, c.subkeys[i])
		left, right = right, left^f
	}
	return combineBlock(left, right)
}

// DecryptBlock decrypts a single 32-bit block. Decrypting with a different
// (key, rounds) pair than was used for encryption silently produces garbage;
// an unauthenticated cipher has no way to detect the mismatch.
func (c *Cipher) DecryptBlock(ciphertext uint32) uint32 {
	left, right := splitBlock(ciphertext)
	for i := c.rounds - 1; i >= 0; i-- {
		f := c.roundFunction(left, c.subkeys[i])
		left, right = right^f, left
	}
	return combineBlock(left, right)
}

// Rounds returns the round count the cipher was built with.
func (c *Cipher) Rounds() int {
	return c.rounds
}

// SBox returns a copy of the key-dependent substitution table.
func (c *Cipher) SBox() [16]uint8 {
	return c.sbox
}

// InverseSBox returns a copy of the inverse substitution table.
func (c *Cipher) InverseSBox() [16]uint8 {
	return c.invSbox
}

// Subkeys returns a copy of the per-round subkey schedule.
func (c *Cipher) Subkeys() []uint16 {
	out := make([]uint16, len(c.subkeys))
	copy(out, c.subkeys)
	return out
}

// Encrypt encrypts one block without retaining any state between calls.
func Encrypt(plaintext, key uint32, rounds int) (uint32, error) {
	c, err := New(key, rounds)
	if err != nil {
		return 0, err
	}
	return c.EncryptBlock(plaintext), nil
}

// Decrypt decrypts one block without retaining any state between calls.
func Decrypt(ciphertext, key uint32, rounds int) (uint32, error) {
	c, err := New(key, rounds)
	if err != nil {
		return 0, err
	}
	return c.DecryptBlock(ciphertext), nil
}
