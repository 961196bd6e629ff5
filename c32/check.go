// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package c32

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// ChecksumSize is the number of checksum bytes appended to checked
	// payloads.
	ChecksumSize = 4

	// MaxCheckVersion is the largest version that fits in the single
	// leading symbol of a checked string.
	MaxCheckVersion = len(Alphabet) - 1

	// minCheckLen is the length of the shortest string CheckDecode will
	// attempt to parse.
	minCheckLen = 3
)

// Checksum returns the first four bytes of sha256^2 of input.
func Checksum(input []byte) (cksum [ChecksumSize]byte) {
	h := chainhash.DoubleHashB(input)
	copy(cksum[:], h[:ChecksumSize])
	return
}

// CheckEncode encodes payload with a leading version symbol and a trailing
// four byte checksum.  The checksum covers the version byte followed by the
// payload.
func CheckEncode(version byte, payload []byte) (string, error) {
	if int(version) > MaxCheckVersion {
		str := fmt.Sprintf("version %d is not in the range [0, %d]",
			version, MaxCheckVersion)
		return "", MakeError(ErrInvalidVersion, str)
	}

	b := make([]byte, 0, 1+len(payload)+ChecksumSize)
	b = append(b, version)
	b = append(b, payload...)
	cksum := Checksum(b)
	b = append(b, cksum[:]...)

	return string(Alphabet[version]) + Encode(b[1:]), nil
}

// CheckDecode decodes a string that was encoded with CheckEncode and verifies
// the checksum.
func CheckDecode(input string) (version byte, payload []byte, err error) {
	if len(input) < minCheckLen {
		str := fmt.Sprintf("checked string %q is too short", input)
		return 0, nil, MakeError(ErrInvalidFormat, str)
	}

	input = Normalize(input)
	version = b32[input[0]]
	if version == invalidSymbol {
		str := fmt.Sprintf("invalid version character %q", input[0])
		return 0, nil, MakeError(ErrInvalidVersion, str)
	}

	decoded, err := Decode(input[1:])
	if err != nil {
		return 0, nil, err
	}
	if len(decoded) < ChecksumSize {
		str := fmt.Sprintf("checked string %q is missing checksum bytes",
			input)
		return 0, nil, MakeError(ErrInvalidFormat, str)
	}

	data := make([]byte, 0, 1+len(decoded)-ChecksumSize)
	data = append(data, version)
	data = append(data, decoded[:len(decoded)-ChecksumSize]...)

	var cksum [ChecksumSize]byte
	copy(cksum[:], decoded[len(decoded)-ChecksumSize:])
	if Checksum(data) != cksum {
		str := fmt.Sprintf("checksum mismatch: got %x, want %x", cksum,
			Checksum(data))
		return 0, nil, MakeError(ErrChecksumMismatch, str)
	}

	return version, data[1:], nil
}
