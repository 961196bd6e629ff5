// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package address implements c32 addresses for 20-byte public key and script
hashes, and conversion between them and Base58Check bitcoin addresses.

An address is the letter S followed by the c32 encoding of

	version (1 byte) || hash160 (20 bytes) || checksum (4 bytes)

where the checksum is the first four bytes of sha256^2 of the version and
hash.  Leading zero bytes, including a zero version, are kept as leading zero
symbols so every address decodes back to exactly 25 bytes.

# Network Parameters

Each supported network has a Params value holding the c32 versions used for
pay-to-pubkey-hash and pay-to-script-hash addresses along with the matching
bitcoin chain parameters.  The params define a fixed two way table between
bitcoin and c32 versions that is used when converting addresses.  Versions
without an entry are carried over unchanged.

# Errors

Errors returned by this package are of type address.Error and wrap one of the
error kinds shared with the c32 package, so they can be checked with
errors.Is.
*/
package address
