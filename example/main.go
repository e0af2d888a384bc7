package main

import (
	"encoding/hex"
	"fmt"

	feistel32 "github.com/complex-gh/feistel32_go"
	"github.com/complex-gh/feistel32_go/message"
)

func main() {
	// Derive a master key from a passphrase
	key := feistel32.KeyFromPassphrase("correct horse battery staple")
	fmt.Printf("Master key: %08x\n", key)

	// Encrypt a single 32-bit block
	ciphertext, err := feistel32.Encrypt(0x12345678, key, feistel32.DefaultRounds)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Block 12345678 encrypts to %08x\n", ciphertext)

	plaintext, err := feistel32.Decrypt(ciphertext, key, feistel32.DefaultRounds)
	if err != nil {
		panic(err)
	}
	fmt.Printf("And decrypts back to %08x\n", plaintext)

	// Encrypt a whole message and seal it into a self-describing envelope
	msg := []byte("Dude, we are having a party tonight at 8pm.")
	ct, err := message.Encrypt(msg, key, feistel32.DefaultRounds)
	if err != nil {
		panic(err)
	}
	envelope, err := message.Seal(ct, feistel32.DefaultRounds)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Sealed message: %s\n", hex.EncodeToString(envelope))

	// Open and decrypt it again
	payload, rounds, err := message.Open(envelope)
	if err != nil {
		panic(err)
	}
	decrypted, err := message.Decrypt(payload, key, rounds)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Decrypted message: %s\n", decrypted)
}
