// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package message

import (
	"bytes"
	"testing"

	"github.com/go-quicktest/qt"

	feistel32 "github.com/complex-gh/feistel32_go"
)

func TestPadAlignsToBlock(t *testing.T) {
	for length := 0; length <= 9; length++ {
		data := bytes.Repeat([]byte{0xaa}, length)
		padded := pad(data)

		qt.Assert(t, qt.Equals(len(padded)%blockSize, 0))
		qt.Assert(t, qt.IsTrue(len(padded) > length))

		padLen := int(padded[len(padded)-1])
		qt.Assert(t, qt.IsTrue(padLen >= 1 && padLen <= blockSize))
		qt.Assert(t, qt.Equals(len(padded), length+padLen))
	}
}

func TestPadUnpadRoundTrip(t *testing.T) {
	for length := 0; length <= 17; length++ {
		data := make([]byte, length)
		for i := range data {
			data[i] = byte(i * 31)
		}
		out, err := unpad(pad(data))
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.DeepEquals(out, data))
	}
}

func TestUnpadErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want Status
	}{
		{"empty", nil, StatusErrLength},
		{"partial block", []byte{1, 2, 3}, StatusErrLength},
		{"zero pad length", []byte{0, 0, 0, 0}, StatusErrPadding},
		{"oversized pad length", []byte{1, 1, 1, 5}, StatusErrPadding},
		{"inconsistent fill", []byte{9, 9, 1, 2}, StatusErrPadding},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := unpad(tc.data)
			qt.Assert(t, qt.ErrorIs(err, tc.want))
		})
	}
}

func TestEncryptDecryptMessage(t *testing.T) {
	const key = 0x075bcd15
	messages := [][]byte{
		nil,
		[]byte("a"),
		[]byte("abcd"),
		[]byte("Dude, we are having a party tonight at 8pm. Don't be late."),
	}

	for _, msg := range messages {
		for _, rounds := range []int{0, 1, 4, 16} {
			ct, err := Encrypt(msg, key, rounds)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(len(ct)%blockSize, 0))

			pt, err := Decrypt(ct, key, rounds)
			qt.Assert(t, qt.IsNil(err))
			if len(msg) == 0 {
				qt.Assert(t, qt.HasLen(pt, 0))
			} else {
				qt.Assert(t, qt.DeepEquals(pt, msg))
			}
		}
	}
}

func TestCiphertextLength(t *testing.T) {
	// Aligned input gains a full padding block.
	ct, err := Encrypt([]byte("abcd"), 1, 4)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(ct, 8))

	ct, err = Encrypt([]byte("abcde"), 1, 4)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(ct, 8))
}

func TestDecryptBadLength(t *testing.T) {
	_, err := Decrypt(nil, 1, 4)
	qt.Assert(t, qt.ErrorIs(err, StatusErrLength))

	_, err = Decrypt([]byte{1, 2, 3, 4, 5}, 1, 4)
	qt.Assert(t, qt.ErrorIs(err, StatusErrLength))
}

func TestNegativeRoundsRejected(t *testing.T) {
	_, err := Encrypt([]byte("hello"), 1, -1)
	qt.Assert(t, qt.ErrorIs(err, feistel32.StatusErrRounds))

	_, err = Decrypt([]byte{1, 2, 3, 4}, 1, -1)
	qt.Assert(t, qt.ErrorIs(err, feistel32.StatusErrRounds))
}
