// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
This test file is part of the address package rather than the
address_test package, so it can bridge access to the internals to properly test
cases which are either not possible or can't reliably be tested via the public
interface. The functions are only exported while the tests are being run.
*/

package address

// TstAddress makes an Address, setting the unexported fields with the
// parameters version and hash.
func TstAddress(version byte, hash [Hash160Size]byte) *Address {
	return &Address{
		version: version,
		hash:    hash,
	}
}

// TstVersionTables returns copies of the version conversion tables.
func TstVersionTables() (map[byte]byte, map[byte]byte) {
	btcToC32 := make(map[byte]byte, len(bitcoinToC32))
	for k, v := range bitcoinToC32 {
		btcToC32[k] = v
	}
	c32ToBtc := make(map[byte]byte, len(c32ToBitcoin))
	for k, v := range c32ToBitcoin {
		c32ToBtc[k] = v
	}
	return btcToC32, c32ToBtc
}
