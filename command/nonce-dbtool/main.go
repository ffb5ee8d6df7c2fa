// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncestore/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "engine", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'e'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--colour] [--engine=leveldb|badger] --file=DATABASE command [arguments...]\n"+
			"  chains                    - list the chains\n"+
			"  get ADDRESS CHAIN         - display a nonce\n"+
			"  dump CHAIN                - display all nonces of a chain\n"+
			"  create CHAIN              - add a chain\n"+
			"  set ADDRESS CHAIN NONCE   - store a nonce", program)
	}

	engine := storage.EngineLevelDB
	if len(options["engine"]) > 0 {
		engine = options["engine"][0]
	}
	if !storage.ValidEngine(engine) || storage.EngineMemory == engine {
		exitwithstatus.Message("%s: invalid engine: %q", program, engine)
	}

	colour := len(options["colour"]) > 0
	verbose := len(options["verbose"]) > 0

	filename := options["file"][0]
	command := arguments[0]
	arguments = arguments[1:]
	if verbose {
		fmt.Printf("command: %s  engine: %s  database: %q\n", command, engine, filename)
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "nonce-dbtool.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// start of main processing
	store, err := storage.OpenEngine(engine, filename)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer store.Close()

	if err := runCommand(os.Stdout, store, colour, command, arguments); nil != err {
		exitwithstatus.Message("%s: %s error: %s", program, command, err)
	}
}
