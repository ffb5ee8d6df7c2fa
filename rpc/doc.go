// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring nonce lookups
//
// standard golang RPC services can be used on the client side to
// access these services, e.g.
//
//   conn, _ := net.Dial("tcp", "127.0.0.1:2150")
//   client := jsonrpc.NewClient(conn)
//   var reply nonce.GetReply
//   err := client.Call("Nonce.Get", nonce.GetArguments{Address: "0x0102", Chain: "default"}, &reply)
package rpc
