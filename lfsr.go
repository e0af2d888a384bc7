// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package feistel32

// The key scheduler is a 32-bit linear-feedback shift register with taps at
// bit positions 0, 1, 21 and 31. Each step shifts the state right by one bit
// and inserts the XOR of the tap bits at bit 31; the subkey for the round is
// the low 16 bits of the new state. The schedule is fully determined by the
// master key, so encryption and decryption regenerate identical sequences.

// lfsrStep advances the register one step and returns the new state together
// with the subkey it emits.
func lfsrStep(state uint32) (uint32, uint16) {
	feedback := (state ^ (state >> 1) ^ (state >> 21) ^ (state >> 31)) & 1
	state = (state >> 1) | (feedback << 31)
	return state, uint16(state)
}

// subkeySchedule generates the ordered subkey sequence for rounds 1..rounds,
// starting from state = key. The caller validates that rounds is not
// negative.
func subkeySchedule(key uint32, rounds int) []uint16 {
	subkeys := make([]uint16, rounds)
	state := key
	for i := range subkeys {
		state, subkeys[i] = lfsrStep(state)
	}
	return subkeys
}
