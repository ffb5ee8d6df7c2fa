// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/noncestore/counter"
	"github.com/bitmark-inc/noncestore/rpc/nonce"
	"github.com/bitmark-inc/noncestore/storage"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, db storage.ChainDB, limiter *rate.Limiter, queries *counter.Counter) *rpc.Server {

	server := rpc.NewServer()

	_ = server.Register(nonce.New(log, db, limiter, queries))

	return server
}
