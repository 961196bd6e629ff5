// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// B58ToC32 converts a Base58Check bitcoin address to the c32 address for the
// same hash.  The version is mapped through the registered network params.
func B58ToC32(b58Addr string) (string, error) {
	return b58ToC32(b58Addr, nil)
}

// B58ToC32WithVersion is like B58ToC32 except the c32 address is given the
// passed version instead of the mapped one.
func B58ToC32WithVersion(b58Addr string, version byte) (string, error) {
	return b58ToC32(b58Addr, &version)
}

func b58ToC32(b58Addr string, version *byte) (string, error) {
	hash, btcVersion, err := base58.CheckDecode(b58Addr)
	if err != nil {
		kind := ErrInvalidFormat
		if errors.Is(err, base58.ErrChecksum) {
			kind = ErrChecksumMismatch
		}
		str := fmt.Sprintf("invalid base58check address %q: %v",
			b58Addr, err)
		return "", addressError(kind, str)
	}
	if len(hash) != Hash160Size {
		str := fmt.Sprintf("base58check address %q carries %d bytes, "+
			"want %d", b58Addr, len(hash), Hash160Size)
		return "", addressError(ErrInvalidHashLength, str)
	}

	var c32Version byte
	if version != nil {
		c32Version = *version
	} else {
		c32Version = BitcoinToC32Version(btcVersion)
	}

	addr, err := Encode(c32Version, hash)
	if err != nil {
		return "", err
	}
	log.Tracef("Converted %s (version %d) to %s (version %d)", b58Addr,
		btcVersion, addr, c32Version)
	return addr, nil
}

// C32ToB58 converts a c32 address to the Base58Check bitcoin address for the
// same hash.  The version is mapped through the registered network params.
func C32ToB58(c32Addr string) (string, error) {
	return c32ToB58(c32Addr, nil)
}

// C32ToB58WithVersion is like C32ToB58 except the bitcoin address is given
// the passed version instead of the mapped one.
func C32ToB58WithVersion(c32Addr string, version byte) (string, error) {
	return c32ToB58(c32Addr, &version)
}

func c32ToB58(c32Addr string, version *byte) (string, error) {
	c32Version, hash, err := Decode(c32Addr)
	if err != nil {
		return "", err
	}

	var btcVersion byte
	if version != nil {
		btcVersion = *version
	} else {
		btcVersion = C32ToBitcoinVersion(c32Version)
	}

	addr := base58.CheckEncode(hash, btcVersion)
	log.Tracef("Converted %s (version %d) to %s (version %d)", c32Addr,
		c32Version, addr, btcVersion)
	return addr, nil
}
