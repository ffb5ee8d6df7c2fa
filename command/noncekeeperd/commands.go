// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncestore/configuration"
	"github.com/bitmark-inc/noncestore/storage"
	"github.com/bitmark-inc/noncestore/util"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access the database or the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		dir := "."
		if len(arguments) >= 1 {
			dir = arguments[0]
		}
		certificateFilename, privateKeyFilename := configuration.DefaultCertificateFiles(dir)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "chains", "get":
		return false // defer processing until database is opened

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		certificateFilename, privateKeyFilename := configuration.DefaultCertificateFiles("DIR")
		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", privateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", certificateFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", privateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", certificateFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  chains                              - list the chains in the database\n")
		fmt.Printf("\n")

		fmt.Printf("  get ADDRESS CHAIN                   - display the nonce of ADDRESS on CHAIN\n")
		fmt.Printf("                                        ADDRESS is 0x-prefixed hex or base58\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJson("", options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the database is open so these commands can read it
func processDataCommand(log *logger.L, arguments []string, db storage.ChainDB) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "chains":
		chains, err := db.ChainIDs()
		if nil != err {
			exitwithstatus.Message("chains error: %s", err)
		}
		printJson("", chains)

	case "get":
		if len(arguments) < 2 {
			exitwithstatus.Message("missing ADDRESS CHAIN arguments")
		}

		address, err := util.DecodeAddress(arguments[0])
		if nil != err {
			exitwithstatus.Message("error: address: %q  error: %s", arguments[0], err)
		}
		chainID := storage.ChainID(arguments[1])

		n, err := db.GetTxNonce(address, chainID)
		if nil != err {
			log.Errorf("get address: %x  chain: %q  error: %s", address, chainID, err)
			exitwithstatus.Message("get error: %s", err)
		}

		printJson("", nonceReply{
			Address: util.EncodeAddress(address),
			Chain:   string(chainID),
			Nonce:   n,
		})

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

type nonceReply struct {
	Address string `json:"address"`
	Chain   string `json:"chain"`
	Nonce   uint64 `json:"nonce,string"`
}
