// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/noncestore/rpc/certificate"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// Options - how to reach a noncekeeperd
type Options struct {
	Connect string // HOST:PORT
	TLS     bool

	// hex SHA3-256 of the server certificate, checked when TLS is set
	Fingerprint string
}

// NewClient - create a RPC connection to a noncekeeperd
func NewClient(options Options, verbose bool, handle io.Writer) (*Client, error) {

	var conn net.Conn
	var err error

	if options.TLS {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}

		tlsConn, err := tls.Dial("tcp", options.Connect, tlsConfig)
		if err != nil {
			return nil, err
		}
		if err := checkFingerprint(tlsConn, options.Fingerprint); nil != err {
			tlsConn.Close()
			return nil, err
		}
		conn = tlsConn
	} else {
		conn, err = net.Dial("tcp", options.Connect)
		if err != nil {
			return nil, err
		}
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the noncekeeperd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// self signed certificates are pinned by fingerprint instead of a CA
func checkFingerprint(conn *tls.Conn, expected string) error {
	if "" == expected {
		return nil
	}

	want, err := hex.DecodeString(expected)
	if nil != err {
		return fmt.Errorf("fingerprint: %q is not hex: %s", expected, err)
	}

	if err := conn.Handshake(); nil != err {
		return err
	}
	certificates := conn.ConnectionState().PeerCertificates
	if 0 == len(certificates) {
		return fmt.Errorf("server sent no certificate")
	}

	actual := certificate.Fingerprint(certificates[0].Raw)
	if !bytes.Equal(want, actual[:]) {
		return fmt.Errorf("fingerprint mismatch: expected: %x  actual: %x", want, actual)
	}
	return nil
}
