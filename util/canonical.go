// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/bitmark-inc/noncestore/fault"
)

// CanonicalIPandPort - make the IP:Port canonical
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
func CanonicalIPandPort(hostPort string) (string, error) {

	host, port, err := net.SplitHostPort(strings.Trim(hostPort, " "))
	if nil != err {
		return "", fault.ErrInvalidIPAddress
	}

	IP := net.ParseIP(strings.Trim(host, " "))
	if nil == IP {
		return "", fault.ErrInvalidIPAddress
	}

	numericPort, err := strconv.Atoi(strings.Trim(port, " "))
	if nil != err {
		return "", fault.ErrInvalidPortNumber
	}
	if numericPort < 1 || numericPort > 65535 {
		return "", fault.ErrInvalidPortNumber
	}

	if nil != IP.To4() {
		return IP.String() + ":" + strconv.Itoa(numericPort), nil
	}
	return "[" + IP.String() + "]:" + strconv.Itoa(numericPort), nil
}

// ListenAddress - convert a configured listen entry to a network and address
//
// "*:PORT" becomes "[::]:PORT" on "tcp" on the assumption that this
// will listen on both tcp4 and tcp6
func ListenAddress(listen string) (string, string, error) {
	listen = strings.Trim(listen, " ")

	if strings.HasPrefix(listen, "*:") {
		address, err := CanonicalIPandPort("[::]" + listen[1:])
		if nil != err {
			return "", "", err
		}
		return "tcp", address, nil
	}

	address, err := CanonicalIPandPort(listen)
	if nil != err {
		return "", "", err
	}
	if '[' == address[0] {
		return "tcp6", address, nil
	}
	return "tcp4", address, nil
}
