// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package c32 provides an API for working with the c32 encoding, a base32
variant used for human-typable addresses.

The alphabet is made of the digits and the upper case letters excluding I, L,
O and U.  Decoding is case-insensitive and treats O as 0 and both I and L as 1
so that hand-copied strings still decode.

Like modified base58, c32 treats the input as a big-endian integer and
prefixes one zero symbol for every leading zero byte, so encoded values keep
their exact byte length across a round trip.

A checked encoding is also provided.  It prefixes a single symbol holding a
5-bit version and appends a four byte double-sha256 checksum to the payload
before encoding it.
*/
package c32
