// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/btcsuite/c32check/address"
	"github.com/btcsuite/c32check/c32"
)

// encodeCmd encodes a hash160 as a c32 address.
type encodeCmd struct {
	Version int  `long:"version" default:"-1" description:"Address version {0-255}, overrides --testnet and --p2sh"`
	TestNet bool `long:"testnet" description:"Use the test network versions"`
	P2SH    bool `long:"p2sh" description:"Use the pay-to-script-hash version"`
	Args    struct {
		Hash160 string `positional-arg-name:"hash160" description:"Hex encoded hash160"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the encode command.
func (c *encodeCmd) Execute(args []string) error {
	var version byte
	if c.Version != noVersion {
		v, err := parseVersion(c.Version)
		if err != nil {
			return err
		}
		version = v
	} else {
		params := &address.MainNetParams
		if c.TestNet {
			params = &address.TestNetParams
		}
		version = params.PubKeyHashAddrID
		if c.P2SH {
			version = params.ScriptHashAddrID
		}
		log.Debugf("Using %s version %d", params.Name, version)
	}

	addr, err := address.EncodeHex(version, c.Args.Hash160)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, addr)
	return nil
}

// decodeCmd decodes a c32 address.
type decodeCmd struct {
	Args struct {
		Address string `positional-arg-name:"address" description:"c32 address"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the decode command.
func (c *decodeCmd) Execute(args []string) error {
	addr, err := address.DecodeAddress(c.Args.Address)
	if err != nil {
		return err
	}

	network := "unknown"
	if params, ok := address.ParamsForVersion(addr.Version()); ok {
		network = params.Name
	}
	fmt.Fprintf(out, "version: %d\n", addr.Version())
	fmt.Fprintf(out, "hash160: %x\n", addr.Hash160()[:])
	fmt.Fprintf(out, "network: %s\n", network)
	return nil
}

// toB58Cmd converts a c32 address to a bitcoin address.
type toB58Cmd struct {
	Version int `long:"version" default:"-1" description:"Bitcoin address version {0-255} to use instead of the mapped one"`
	Args    struct {
		Address string `positional-arg-name:"c32address" description:"c32 address"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the tob58 command.
func (c *toB58Cmd) Execute(args []string) error {
	var addr string
	var err error
	if c.Version != noVersion {
		version, verr := parseVersion(c.Version)
		if verr != nil {
			return verr
		}
		addr, err = address.C32ToB58WithVersion(c.Args.Address, version)
	} else {
		addr, err = address.C32ToB58(c.Args.Address)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, addr)
	return nil
}

// toC32Cmd converts a bitcoin address to a c32 address.
type toC32Cmd struct {
	Version int `long:"version" default:"-1" description:"c32 address version {0-255} to use instead of the mapped one"`
	Args    struct {
		Address string `positional-arg-name:"b58address" description:"Base58Check bitcoin address"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the toc32 command.
func (c *toC32Cmd) Execute(args []string) error {
	var addr string
	var err error
	if c.Version != noVersion {
		version, verr := parseVersion(c.Version)
		if verr != nil {
			return verr
		}
		addr, err = address.B58ToC32WithVersion(c.Args.Address, version)
	} else {
		addr, err = address.B58ToC32(c.Args.Address)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, addr)
	return nil
}

// checkEncodeCmd encodes hex data as a c32check string.
type checkEncodeCmd struct {
	Version int `long:"version" description:"Version {0-31}" required:"yes"`
	Args    struct {
		Data string `positional-arg-name:"hex" description:"Hex encoded data"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the checkencode command.
func (c *checkEncodeCmd) Execute(args []string) error {
	version, err := parseVersion(c.Version)
	if err != nil {
		return err
	}
	data, err := c32.ParseHex(c.Args.Data)
	if err != nil {
		return err
	}
	enc, err := c32.CheckEncode(version, data)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, enc)
	return nil
}

// checkDecodeCmd decodes a c32check string.
type checkDecodeCmd struct {
	Args struct {
		Token string `positional-arg-name:"c32check" description:"c32check string"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the checkdecode command.
func (c *checkDecodeCmd) Execute(args []string) error {
	version, data, err := c32.CheckDecode(c.Args.Token)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "version: %d\n", version)
	fmt.Fprintf(out, "data: %x\n", data)
	return nil
}

// rawEncodeCmd encodes hex data as c32.
type rawEncodeCmd struct {
	MinLen int `long:"minlen" description:"Left pad the result with zero symbols to at least this length"`
	Args   struct {
		Data string `positional-arg-name:"hex" description:"Hex encoded data"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the raw-encode command.
func (c *rawEncodeCmd) Execute(args []string) error {
	data, err := c32.ParseHex(c.Args.Data)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, c32.EncodeMinLen(data, c.MinLen))
	return nil
}

// rawDecodeCmd decodes c32 to hex.
type rawDecodeCmd struct {
	MinLen int `long:"minlen" description:"Left pad the result with zero bytes to at least this length"`
	Args   struct {
		Data string `positional-arg-name:"c32" description:"c32 encoded data"`
	} `positional-args:"yes" required:"yes"`
}

// Execute runs the raw-decode command.
func (c *rawDecodeCmd) Execute(args []string) error {
	data, err := c32.DecodeMinLen(c.Args.Data, c.MinLen)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%x\n", data)
	return nil
}
