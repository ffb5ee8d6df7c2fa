// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/noncestore/fault"
	"github.com/bitmark-inc/noncestore/storage"
	"github.com/bitmark-inc/noncestore/util"
)

// colours
const (
	keyColour = "\033[1;36m"
	valColour = "\033[1;33m"
	endColour = "\033[0m"
)

var errNoSuchCommand = fault.InvalidError("no such command")

// run one command against an open store, output goes to w
func runCommand(w io.Writer, store *storage.Store, colour bool, command string, arguments []string) error {

	switch command {
	case "chains":
		chains, err := store.ChainIDs()
		if nil != err {
			return err
		}
		for _, c := range chains {
			fmt.Fprintf(w, "%s\n", c)
		}

	case "get":
		if len(arguments) < 2 {
			return fault.ErrMissingParameters
		}
		address, err := util.DecodeAddress(arguments[0])
		if nil != err {
			return err
		}
		n, err := store.GetTxNonce(address, storage.ChainID(arguments[1]))
		if nil != err {
			return err
		}
		printEntry(w, colour, address, n)

	case "dump":
		if len(arguments) < 1 {
			return fault.ErrMissingParameters
		}
		return store.ForEachNonce(storage.ChainID(arguments[0]), func(address storage.Address, n uint64) error {
			printEntry(w, colour, address, n)
			return nil
		})

	case "create":
		if len(arguments) < 1 {
			return fault.ErrMissingParameters
		}
		return store.CreateChain(storage.ChainID(arguments[0]))

	case "set":
		if len(arguments) < 3 {
			return fault.ErrMissingParameters
		}
		address, err := util.DecodeAddress(arguments[0])
		if nil != err {
			return err
		}
		n, err := strconv.ParseUint(arguments[2], 10, 64)
		if nil != err {
			return fault.ErrInvalidNonce
		}
		return store.SetTxNonce(address, storage.ChainID(arguments[1]), n)

	default:
		return errNoSuchCommand
	}
	return nil
}

func printEntry(w io.Writer, colour bool, address storage.Address, n uint64) {
	if colour {
		fmt.Fprintf(w, "%s%s%s: %s%d%s\n", keyColour, util.EncodeAddress(address), endColour, valColour, n, endColour)
	} else {
		fmt.Fprintf(w, "%s: %d\n", util.EncodeAddress(address), n)
	}
}
