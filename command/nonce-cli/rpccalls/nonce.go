// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/noncestore/rpc/nonce"
)

// Chains - list the chains held by the daemon
func (client *Client) Chains() (*nonce.ChainsReply, error) {
	var reply nonce.ChainsReply
	if err := client.client.Call("Nonce.Chains", nonce.ChainsArguments{}, &reply); err != nil {
		return nil, err
	}

	client.printJson("Chains Reply", reply)

	return &reply, nil
}

// GetNonce - nonce of an address on a chain
func (client *Client) GetNonce(address string, chain string) (*nonce.GetReply, error) {

	arguments := nonce.GetArguments{
		Address: address,
		Chain:   chain,
	}

	client.printJson("Get Request", arguments)

	var reply nonce.GetReply
	if err := client.client.Call("Nonce.Get", arguments, &reply); err != nil {
		return nil, err
	}

	client.printJson("Get Reply", reply)

	return &reply, nil
}
