// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Command feistel32 encrypts and decrypts short messages with the feistel32
// block cipher. Ciphertext is printed as a hex-encoded envelope that records
// the round count, so decryption only needs the key. Diagnostic reports (the
// generated key, the S-box table, the subkey schedule) go to stderr; stdout
// carries only the result.
package main

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	feistel32 "github.com/complex-gh/feistel32_go"
	"github.com/complex-gh/feistel32_go/message"
)

var (
	flagKey        = flag.String("key", "", "master key as 8 hex digits")
	flagPassphrase = flag.String("passphrase", "", "derive the master key from a passphrase")
	flagRounds     = flag.Int("rounds", feistel32.DefaultRounds, "number of Feistel rounds")
	flagDecrypt    = flag.Bool("d", false, "decrypt a hex envelope instead of encrypting")
	flagSBox       = flag.Bool("sbox", false, "print the key's S-box table to stderr")
	flagSubkeys    = flag.Bool("subkeys", false, "print the per-round subkeys to stderr")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: feistel32 [flags] [message]\n")
	fmt.Fprintf(os.Stderr, "       feistel32 -d [flags] [hex envelope]\n\n")
	fmt.Fprintf(os.Stderr, "With -d and no argument, the envelope is read from stdin.\n\n")
	flag.PrintDefaults()
}

func main() {
	os.Exit(main1())
}

func main1() int {
	flag.Usage = usage
	flag.Parse()

	if *flagRounds < 0 {
		fmt.Fprintln(os.Stderr, "feistel32: round count must not be negative")
		return 1
	}
	if !*flagDecrypt && flag.NArg() == 0 && !*flagSBox && !*flagSubkeys {
		usage()
		return 1
	}

	key, err := resolveKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "feistel32: %v\n", err)
		return 1
	}

	if *flagSBox || *flagSubkeys {
		if err := printReports(key); err != nil {
			fmt.Fprintf(os.Stderr, "feistel32: %v\n", err)
			return 2
		}
	}

	if *flagDecrypt {
		return runDecrypt(key)
	}
	if flag.NArg() == 0 {
		// Report-only invocation.
		return 0
	}
	return runEncrypt(key)
}

// resolveKey picks the master key from -key, -passphrase, or a fresh random
// value, in that order of preference.
func resolveKey() (uint32, error) {
	if *flagKey != "" && *flagPassphrase != "" {
		return 0, fmt.Errorf("-key and -passphrase are mutually exclusive")
	}
	if *flagKey != "" {
		k, err := strconv.ParseUint(strings.TrimPrefix(*flagKey, "0x"), 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid key %q: want 8 hex digits", *flagKey)
		}
		return uint32(k), nil
	}
	if *flagPassphrase != "" {
		return feistel32.KeyFromPassphrase(*flagPassphrase), nil
	}
	if *flagDecrypt {
		return 0, fmt.Errorf("a key is required to decrypt")
	}

	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("generating key: %v", err)
	}
	key := binary.BigEndian.Uint32(buf[:])
	fmt.Fprintf(os.Stderr, "generated key: %08x\n", key)
	return key, nil
}

// printReports writes the S-box table and subkey schedule in the classic
// tabular report format.
func printReports(key uint32) error {
	c, err := feistel32.New(key, *flagRounds)
	if err != nil {
		return err
	}

	if *flagSBox {
		fmt.Fprintf(os.Stderr, "S-box table for key %08x:\n", key)
		fmt.Fprintln(os.Stderr, "+-------+-------+")
		fmt.Fprintln(os.Stderr, "| Index | Value |")
		fmt.Fprintln(os.Stderr, "+-------+-------+")
		for i, v := range c.SBox() {
			fmt.Fprintf(os.Stderr, "| %5d | %5X |\n", i, v)
		}
		fmt.Fprintln(os.Stderr, "+-------+-------+")
	}
	if *flagSubkeys {
		for i, sk := range c.Subkeys() {
			fmt.Fprintf(os.Stderr, "round %d subkey: %04x\n", i+1, sk)
		}
	}
	return nil
}

func runEncrypt(key uint32) int {
	plaintext := strings.Join(flag.Args(), " ")

	ciphertext, err := message.Encrypt([]byte(plaintext), key, *flagRounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "feistel32: %v\n", err)
		return 2
	}
	envelope, err := message.Seal(ciphertext, *flagRounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "feistel32: %v\n", err)
		return 2
	}

	fmt.Println(hex.EncodeToString(envelope))
	return 0
}

func runDecrypt(key uint32) int {
	var input string
	if flag.NArg() > 0 {
		input = strings.Join(flag.Args(), "")
	} else {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "feistel32: reading stdin: %v\n", err)
			return 2
		}
		input = string(raw)
	}

	envelope, err := hex.DecodeString(strings.TrimSpace(input))
	if err != nil {
		fmt.Fprintf(os.Stderr, "feistel32: invalid hex input: %v\n", err)
		return 2
	}

	ciphertext, rounds, err := message.Open(envelope)
	if err != nil {
		fmt.Fprintf(os.Stderr, "feistel32: %v\n", err)
		return 2
	}
	plaintext, err := message.Decrypt(ciphertext, key, rounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "feistel32: %v\n", err)
		return 2
	}

	fmt.Println(string(plaintext))
	return 0
}
