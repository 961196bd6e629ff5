// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogLevel = "info"

	// noVersion is the default of the version options and means the
	// version comes from the network params instead.
	noVersion = -1

	maxVersion = 255
)

// config defines the global configuration options for c32conv.
//
// See newConfigParser for details on the configuration load process.
type config struct {
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
}

// command describes a sub-command registered with the parser.
type command struct {
	name  string
	short string
	long  string
	data  flags.Commander
}

// commands returns fresh instances of every sub-command.
func commands() []command {
	return []command{
		{"encode", "Encode a hash160 as a c32 address",
			"Encode a hex hash160 as a c32 address.  The version is " +
				"taken from the selected network unless --version " +
				"is given.", &encodeCmd{}},
		{"decode", "Decode a c32 address",
			"Decode a c32 address and print its version and hash160.",
			&decodeCmd{}},
		{"tob58", "Convert a c32 address to a bitcoin address",
			"Convert a c32 address to a Base58Check bitcoin address.",
			&toB58Cmd{}},
		{"toc32", "Convert a bitcoin address to a c32 address",
			"Convert a Base58Check bitcoin address to a c32 address.",
			&toC32Cmd{}},
		{"checkencode", "Encode hex data as a c32check string",
			"Encode hex data with a 5-bit version as a c32check string.",
			&checkEncodeCmd{}},
		{"checkdecode", "Decode a c32check string",
			"Decode a c32check string and print its version and data.",
			&checkDecodeCmd{}},
		{"raw-encode", "Encode hex data as c32",
			"Encode hex data as c32 without a version or checksum.",
			&rawEncodeCmd{}},
		{"raw-decode", "Decode c32 to hex",
			"Decode c32 without a version or checksum and print hex.",
			&rawDecodeCmd{}},
	}
}

// newConfigParser returns a parser for cfg with every sub-command registered.
// Logging is configured from the parsed global options right before the
// selected command runs.
func newConfigParser(cfg *config, options flags.Options) (*flags.Parser, error) {
	parser := flags.NewParser(cfg, options)
	for _, c := range commands() {
		_, err := parser.AddCommand(c.name, c.short, c.long, c.data)
		if err != nil {
			return nil, err
		}
	}

	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if err := setupLogging(cfg.DebugLevel); err != nil {
			return err
		}
		if cmd == nil {
			return nil
		}
		log.Debugf("Running with args %v", args)
		return cmd.Execute(args)
	}

	return parser, nil
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	_, ok := btclog.LevelFromString(logLevel)
	return ok
}

// parseVersion checks that v fits in a version byte.
func parseVersion(v int) (byte, error) {
	if v < 0 || v > maxVersion {
		str := "the specified version [%d] is out of range -- " +
			"must be between 0 and %d"
		return 0, fmt.Errorf(str, v, maxVersion)
	}
	return byte(v), nil
}
