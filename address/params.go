// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

// Params defines the address versions used by a network along with the
// bitcoin network they are paired with.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// PubKeyHashAddrID is the version of pay-to-pubkey-hash addresses.
	PubKeyHashAddrID byte

	// ScriptHashAddrID is the version of pay-to-script-hash addresses.
	ScriptHashAddrID byte

	// BitcoinParams are the parameters of the bitcoin network whose
	// address versions map to the versions above.
	BitcoinParams *chaincfg.Params
}

// MainNetParams defines the address versions for the main network.
var MainNetParams = Params{
	Name:             "mainnet",
	PubKeyHashAddrID: 22, // starts with SP
	ScriptHashAddrID: 20, // starts with SM
	BitcoinParams:    &chaincfg.MainNetParams,
}

// TestNetParams defines the address versions for the test network.
var TestNetParams = Params{
	Name:             "testnet",
	PubKeyHashAddrID: 26, // starts with ST
	ScriptHashAddrID: 21, // starts with SN
	BitcoinParams:    &chaincfg.TestNet3Params,
}

var (
	bitcoinToC32 = make(map[byte]byte)
	c32ToBitcoin = make(map[byte]byte)
	c32Nets      = make(map[byte]*Params)
)

// mustRegister adds the version pairs of params to the conversion tables.  It
// panics if any version is already taken since the tables must stay one to
// one.
func mustRegister(params *Params) {
	pairs := [...][2]byte{
		{params.BitcoinParams.PubKeyHashAddrID, params.PubKeyHashAddrID},
		{params.BitcoinParams.ScriptHashAddrID, params.ScriptHashAddrID},
	}
	for _, pair := range pairs {
		btcVersion, c32Version := pair[0], pair[1]
		if _, ok := bitcoinToC32[btcVersion]; ok {
			panic(fmt.Sprintf("%s: duplicate bitcoin version %d",
				params.Name, btcVersion))
		}
		if _, ok := c32ToBitcoin[c32Version]; ok {
			panic(fmt.Sprintf("%s: duplicate c32 version %d",
				params.Name, c32Version))
		}
		bitcoinToC32[btcVersion] = c32Version
		c32ToBitcoin[c32Version] = btcVersion
		c32Nets[c32Version] = params
	}
}

func init() {
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
}

// BitcoinToC32Version returns the c32 version paired with a bitcoin address
// version.  Unknown versions are returned unchanged.
func BitcoinToC32Version(version byte) byte {
	if v, ok := bitcoinToC32[version]; ok {
		return v
	}
	log.Debugf("No c32 version registered for bitcoin version %d, "+
		"keeping it as is", version)
	return version
}

// C32ToBitcoinVersion returns the bitcoin version paired with a c32 address
// version.  Unknown versions are returned unchanged.
func C32ToBitcoinVersion(version byte) byte {
	if v, ok := c32ToBitcoin[version]; ok {
		return v
	}
	log.Debugf("No bitcoin version registered for c32 version %d, "+
		"keeping it as is", version)
	return version
}

// ParamsForVersion returns the network params a c32 version belongs to.
func ParamsForVersion(version byte) (*Params, bool) {
	params, ok := c32Nets[version]
	return params, ok
}
