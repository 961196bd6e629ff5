// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package c32

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidVersion indicates a version that is outside of the range
	// allowed by the encoding, or a version symbol that is not part of the
	// alphabet.
	ErrInvalidVersion = ErrorKind("ErrInvalidVersion")

	// ErrInvalidCharacter indicates a character that is not part of the
	// alphabet was found while decoding.
	ErrInvalidCharacter = ErrorKind("ErrInvalidCharacter")

	// ErrInvalidFormat indicates an encoded string is too short to hold the
	// version and checksum, or does not carry the expected prefix.
	ErrInvalidFormat = ErrorKind("ErrInvalidFormat")

	// ErrInvalidLength indicates the decoded data is shorter than the
	// framing requires.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidHashLength indicates a hash that is not exactly the size of
	// a hash160.
	ErrInvalidHashLength = ErrorKind("ErrInvalidHashLength")

	// ErrChecksumMismatch indicates the checksum carried by an encoded
	// string does not match the checksum computed over its contents.
	ErrChecksumMismatch = ErrorKind("ErrChecksumMismatch")

	// ErrInvalidHex indicates a string that is not valid hex.
	ErrInvalidHex = ErrorKind("ErrInvalidHex")

	// ErrNegativeValue indicates an attempt to encode a negative integer.
	ErrNegativeValue = ErrorKind("ErrNegativeValue")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to c32 encoding or decoding.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// MakeError creates an Error given a set of arguments.
func MakeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
