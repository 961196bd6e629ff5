// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"fmt"

	"github.com/btcsuite/c32check/c32"
	"golang.org/x/crypto/ripemd160"
)

const (
	// Hash160Size is the size of the hash carried by an address.
	Hash160Size = ripemd160.Size

	// Prefix is the character every c32 address starts with.
	Prefix = 'S'

	// decodedLen is the length of version || hash160 || checksum.
	decodedLen = 1 + Hash160Size + c32.ChecksumSize

	// minAddressLen is the shortest string Decode will attempt to parse.
	minAddressLen = 6
)

// Encode returns the c32 address for the given version and hash160.
func Encode(version byte, hash []byte) (string, error) {
	if len(hash) != Hash160Size {
		str := fmt.Sprintf("hash must be %d bytes, got %d", Hash160Size,
			len(hash))
		return "", addressError(ErrInvalidHashLength, str)
	}

	b := make([]byte, 0, decodedLen)
	b = append(b, version)
	b = append(b, hash...)
	cksum := c32.Checksum(b)
	b = append(b, cksum[:]...)

	return string(Prefix) + c32.Encode(b), nil
}

// EncodeHex is like Encode except the hash is given as a hex string.
func EncodeHex(version byte, hashHex string) (string, error) {
	if len(hashHex) != Hash160Size*2 {
		str := fmt.Sprintf("hash must be %d hex characters, got %d",
			Hash160Size*2, len(hashHex))
		return "", addressError(ErrInvalidHashLength, str)
	}
	hash, err := c32.ParseHex(hashHex)
	if err != nil {
		return "", err
	}
	return Encode(version, hash)
}

// Decode parses a c32 address and returns its version and hash160.
func Decode(addr string) (version byte, hash []byte, err error) {
	if len(addr) < minAddressLen {
		str := fmt.Sprintf("address %q is too short", addr)
		return 0, nil, addressError(ErrInvalidFormat, str)
	}
	if addr[0] != Prefix {
		str := fmt.Sprintf("address %q does not start with %q", addr,
			Prefix)
		return 0, nil, addressError(ErrInvalidFormat, str)
	}

	decoded, err := c32.Decode(addr[1:])
	if err != nil {
		return 0, nil, err
	}
	if len(decoded) < decodedLen {
		str := fmt.Sprintf("address decodes to %d bytes, need at least %d",
			len(decoded), decodedLen)
		return 0, nil, addressError(ErrInvalidLength, str)
	}

	payload := decoded[:len(decoded)-c32.ChecksumSize]
	var cksum [c32.ChecksumSize]byte
	copy(cksum[:], decoded[len(decoded)-c32.ChecksumSize:])
	if c32.Checksum(payload) != cksum {
		str := fmt.Sprintf("checksum mismatch: got %x, want %x", cksum,
			c32.Checksum(payload))
		return 0, nil, addressError(ErrChecksumMismatch, str)
	}

	version, hash = payload[0], payload[1:]
	if len(hash) != Hash160Size {
		str := fmt.Sprintf("hash must be %d bytes, got %d", Hash160Size,
			len(hash))
		return 0, nil, addressError(ErrInvalidHashLength, str)
	}

	return version, hash, nil
}

// Address is a c32 address for a hash160 with a version identifying its
// network and type.
type Address struct {
	version byte
	hash    [Hash160Size]byte
}

// NewAddress returns a new Address.  hash must be 20 bytes.
func NewAddress(version byte, hash []byte) (*Address, error) {
	if len(hash) != Hash160Size {
		str := fmt.Sprintf("hash must be %d bytes, got %d", Hash160Size,
			len(hash))
		return nil, addressError(ErrInvalidHashLength, str)
	}

	addr := &Address{version: version}
	copy(addr.hash[:], hash)
	return addr, nil
}

// DecodeAddress decodes the string encoding of an address and returns the
// Address if it is valid.
func DecodeAddress(addr string) (*Address, error) {
	version, hash, err := Decode(addr)
	if err != nil {
		return nil, err
	}
	return NewAddress(version, hash)
}

// EncodeAddress returns the string encoding of the address.
func (a *Address) EncodeAddress() string {
	// The hash is always the right size, so encoding can't fail.
	addr, _ := Encode(a.version, a.hash[:])
	return addr
}

// String returns a human-readable string for the address.  This is equivalent
// to calling EncodeAddress.
func (a *Address) String() string {
	return a.EncodeAddress()
}

// Version returns the version of the address.
func (a *Address) Version() byte {
	return a.version
}

// Hash160 returns the underlying array of the hash.  This can be useful when
// an array is more appropriate than a slice (for example, when used as map
// keys).
func (a *Address) Hash160() *[Hash160Size]byte {
	return &a.hash
}

// IsForNet returns whether or not the address is associated with the passed
// network.
func (a *Address) IsForNet(params *Params) bool {
	return a.version == params.PubKeyHashAddrID ||
		a.version == params.ScriptHashAddrID
}
