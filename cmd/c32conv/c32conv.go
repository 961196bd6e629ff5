// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/btcsuite/c32check/address"
	flags "github.com/jessevdk/go-flags"
)

var (
	log = btclog.Disabled

	// out is where command results are written.
	out io.Writer = os.Stdout
)

// setupLogging creates the logging backend and hands the subsystem loggers
// out at the requested level.
func setupLogging(logLevel string) error {
	if !validLogLevel(logLevel) {
		return fmt.Errorf("the specified debug level [%v] is invalid",
			logLevel)
	}
	level, _ := btclog.LevelFromString(logLevel)

	backendLogger := btclog.NewBackend(os.Stderr)
	log = backendLogger.Logger("C32C")
	log.SetLevel(level)

	addrLog := backendLogger.Logger("ADDR")
	addrLog.SetLevel(level)
	address.UseLogger(addrLog)

	return nil
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain(args []string) error {
	cfg := config{
		DebugLevel: defaultLogLevel,
	}

	parser, err := newConfigParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	if err != nil {
		return err
	}

	_, err = parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Fprintln(out, err)
				return nil
			}
			fmt.Fprintln(os.Stderr, err)
			parser.WriteHelp(os.Stderr)
			return err
		}
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	return nil
}

func main() {
	if err := realMain(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
