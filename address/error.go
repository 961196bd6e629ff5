// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/btcsuite/c32check/c32"
)

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind = c32.ErrorKind

// Error identifies an error related to an address.  It has full support for
// errors.Is and errors.As, so the caller can ascertain the specific reason for
// the error by checking the underlying error.
type Error = c32.Error

// These constants are used to identify a specific Error.  They are the same
// kinds reported by the c32 package so errors from either package can be
// checked the same way.
const (
	ErrInvalidVersion    = c32.ErrInvalidVersion
	ErrInvalidCharacter  = c32.ErrInvalidCharacter
	ErrInvalidFormat     = c32.ErrInvalidFormat
	ErrInvalidLength     = c32.ErrInvalidLength
	ErrInvalidHashLength = c32.ErrInvalidHashLength
	ErrChecksumMismatch  = c32.ErrChecksumMismatch
	ErrInvalidHex        = c32.ErrInvalidHex
)

// addressError creates an Error given a set of arguments.
func addressError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
