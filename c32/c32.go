// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package c32

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// Alphabet is the c32 alphabet.  The index of a symbol is its value.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const alphabetIdx0 = '0'

// invalidSymbol marks bytes of the reverse table that are not in Alphabet.
const invalidSymbol = 255

var bigRadix = big.NewInt(32)
var bigZero = big.NewInt(0)

// b32 maps an upper case symbol back to its value.
var b32 [256]byte

func init() {
	for i := range b32 {
		b32[i] = invalidSymbol
	}
	for i := 0; i < len(Alphabet); i++ {
		b32[Alphabet[i]] = byte(i)
	}
}

var normalizer = strings.NewReplacer("O", "0", "L", "1", "I", "1")

// Normalize upper cases s and replaces the letters that are easily mistaken
// for digits (O, L and I) with the digit they resemble.
func Normalize(s string) string {
	return normalizer.Replace(strings.ToUpper(s))
}

// digits returns the base 32 symbols of x, most significant first.  Zero has
// no digits.  x is not modified.
func digits(x *big.Int) []byte {
	x = new(big.Int).Set(x)
	answer := make([]byte, 0, x.BitLen()/5+1)
	mod := new(big.Int)
	for x.Cmp(bigZero) > 0 {
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, Alphabet[mod.Int64()])
	}

	alen := len(answer)
	for i := 0; i < alen/2; i++ {
		answer[i], answer[alen-1-i] = answer[alen-1-i], answer[i]
	}
	return answer
}

// Encode encodes a byte slice to a c32 string.  Each leading zero byte is
// encoded as a single zero symbol.
func Encode(b []byte) string {
	var numZeros int
	for numZeros = 0; numZeros < len(b); numZeros++ {
		if b[numZeros] != 0 {
			break
		}
	}

	x := new(big.Int).SetBytes(b)
	enc := digits(x)

	answer := make([]byte, numZeros, numZeros+len(enc))
	for i := range answer {
		answer[i] = alphabetIdx0
	}
	answer = append(answer, enc...)
	return string(answer)
}

// EncodeMinLen encodes b like Encode and left pads the result with zero
// symbols until it is at least minLen symbols long.
func EncodeMinLen(b []byte, minLen int) string {
	enc := Encode(b)
	if len(enc) >= minLen {
		return enc
	}
	return strings.Repeat(string(alphabetIdx0), minLen-len(enc)) + enc
}

// Decode decodes a c32 string to a byte slice.  The input is normalized
// first, and each leading zero symbol decodes to a single zero byte.
func Decode(s string) ([]byte, error) {
	s = Normalize(s)

	answer := big.NewInt(0)
	tmp := new(big.Int)
	for i := 0; i < len(s); i++ {
		v := b32[s[i]]
		if v == invalidSymbol {
			str := fmt.Sprintf("invalid character %q at position %d",
				s[i], i)
			return nil, MakeError(ErrInvalidCharacter, str)
		}
		answer.Mul(answer, bigRadix)
		answer.Add(answer, tmp.SetInt64(int64(v)))
	}

	var numZeros int
	for numZeros = 0; numZeros < len(s); numZeros++ {
		if s[numZeros] != alphabetIdx0 {
			break
		}
	}

	tmpval := answer.Bytes()
	val := make([]byte, numZeros+len(tmpval))
	copy(val[numZeros:], tmpval)
	return val, nil
}

// DecodeMinLen decodes s like Decode and left pads the result with zero bytes
// until it is at least minLen bytes long.
func DecodeMinLen(s string, minLen int) ([]byte, error) {
	b, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(b) >= minLen {
		return b, nil
	}
	padded := make([]byte, minLen)
	copy(padded[minLen-len(b):], b)
	return padded, nil
}

// EncodeBigInt returns the c32 digits of a non-negative integer.  Zero is
// encoded as a single zero symbol.  No leading zero symbols are produced for
// any other value.
func EncodeBigInt(v *big.Int) (string, error) {
	if v.Sign() < 0 {
		str := fmt.Sprintf("cannot encode negative value %v", v)
		return "", MakeError(ErrNegativeValue, str)
	}
	if v.Sign() == 0 {
		return string(alphabetIdx0), nil
	}
	return string(digits(v)), nil
}

// EncodeUint64 returns the c32 digits of v.
func EncodeUint64(v uint64) string {
	// A uint64 is never negative, so the error is always nil.
	s, _ := EncodeBigInt(new(big.Int).SetUint64(v))
	return s
}

// ParseHex decodes a hex string.  Odd length input is treated as if it had
// an extra leading zero nibble.
func ParseHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		str := fmt.Sprintf("invalid hex string: %v", err)
		return nil, MakeError(ErrInvalidHex, str)
	}
	return b, nil
}
