// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/noncestore/counter"
	"github.com/bitmark-inc/noncestore/fault"
	"github.com/bitmark-inc/noncestore/rpc/fixtures"
	"github.com/bitmark-inc/noncestore/rpc/nonce"
	"github.com/bitmark-inc/noncestore/rpc/server"
	"github.com/bitmark-inc/noncestore/storage"
)

var address string

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	db := storage.NewMemoryStore()
	_ = db.CreateChain("mainnet")
	_ = db.SetTxNonce(fixtures.AddressBytes, "mainnet", 42)

	c := counter.Counter(0)
	r := server.Create(logger.New(fixtures.LogCategory), db, rate.NewLimiter(rate.Inf, 1), &c)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		panic(err)
	}
	address = l.Addr().String()

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go r.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	rc := m.Run()

	_ = l.Close()
	_ = db.Close()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// following tests make sure proper methods are registered to server

func TestNonceChains(t *testing.T) {
	conn, err := net.Dial("tcp", address)
	assert.Nil(t, err, "dial")

	client := jsonrpc.NewClient(conn)
	defer client.Close()

	var reply nonce.ChainsReply
	err = client.Call("Nonce.Chains", &nonce.ChainsArguments{}, &reply)
	assert.Nil(t, err, "wrong Nonce.Chains")
	assert.Equal(t, []string{"default", "mainnet"}, reply.Chains, "wrong reply")
}

func TestNonceGet(t *testing.T) {
	conn, err := net.Dial("tcp", address)
	assert.Nil(t, err, "dial")

	client := jsonrpc.NewClient(conn)
	defer client.Close()

	arg := nonce.GetArguments{
		Address: fixtures.AddressHex,
		Chain:   "mainnet",
	}
	var reply nonce.GetReply
	err = client.Call("Nonce.Get", &arg, &reply)
	assert.Nil(t, err, "wrong Nonce.Get")
	assert.Equal(t, uint64(42), reply.Nonce, "wrong nonce")

	arg.Chain = "default"
	err = client.Call("Nonce.Get", &arg, &reply)
	assert.Nil(t, err, "wrong Nonce.Get")
	assert.Equal(t, uint64(0), reply.Nonce, "wrong default nonce")
}

func TestNonceGetErrors(t *testing.T) {
	conn, err := net.Dial("tcp", address)
	assert.Nil(t, err, "dial")

	client := jsonrpc.NewClient(conn)
	defer client.Close()

	arg := nonce.GetArguments{
		Address: "0xzz",
		Chain:   "mainnet",
	}
	var reply nonce.GetReply
	err = client.Call("Nonce.Get", &arg, &reply)
	assert.NotNil(t, err, "wrong Nonce.Get")
	assert.Equal(t, fault.ErrInvalidAddress.Error(), err.Error(), "wrong reply")

	arg = nonce.GetArguments{
		Address: fixtures.AddressHex,
		Chain:   "nonexistent",
	}
	err = client.Call("Nonce.Get", &arg, &reply)
	assert.NotNil(t, err, "wrong Nonce.Get")
	assert.Contains(t, err.Error(), fault.ErrPartitionNotFound.Error(), "wrong reply")
}
