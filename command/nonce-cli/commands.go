// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noncestore/command/nonce-cli/rpccalls"
)

func runChains(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.options, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.Chains()
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	address, err := checkAddress(c.String("address"))
	if nil != err {
		return err
	}
	chain := c.String("chain")

	client, err := rpccalls.NewClient(m.options, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetNonce(address, chain)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func checkAddress(address string) (string, error) {
	if "" == address {
		return "", fmt.Errorf("address is required")
	}
	return address, nil
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
