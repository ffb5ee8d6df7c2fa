// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/noncestore/command/nonce-cli/rpccalls"
)

type metadata struct {
	options rpccalls.Options
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "nonce-cli"
	app.Usage = "query a noncekeeperd for transaction nonces"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2150",
			Usage:  " noncekeeperd host/IP and port, `HOST:PORT`",
			EnvVar: "NONCE_CLI_CONNECT",
		},
		cli.BoolFlag{
			Name:  "tls, t",
			Usage: " connect using TLS",
		},
		cli.StringFlag{
			Name:  "fingerprint, f",
			Value: "",
			Usage: " expected SHA3-256 server certificate `HEX`, implies --tls",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "chains",
			Usage:     "list the chains known to noncekeeperd",
			ArgsUsage: " ",
			Flags:     []cli.Flag{},
			Action:    runChains,
		},
		{
			Name:      "get",
			Usage:     "get the nonce of an address on a chain",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*account address, 0x-prefixed hex or base58 `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "chain, n",
					Value: "default",
					Usage: " chain identifier `CHAIN`",
				},
			},
			Action: runGet,
		},
		{
			Name:  "version",
			Usage: "display nonce-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		fingerprint := c.GlobalString("fingerprint")

		c.App.Metadata["config"] = &metadata{
			options: rpccalls.Options{
				Connect:     c.GlobalString("connect"),
				TLS:         c.GlobalBool("tls") || "" != fingerprint,
				Fingerprint: fingerprint,
			},
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
