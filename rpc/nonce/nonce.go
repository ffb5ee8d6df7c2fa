// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nonce

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/noncestore/chain"
	"github.com/bitmark-inc/noncestore/counter"
	"github.com/bitmark-inc/noncestore/fault"
	"github.com/bitmark-inc/noncestore/rpc/ratelimit"
	"github.com/bitmark-inc/noncestore/storage"
	"github.com/bitmark-inc/noncestore/util"
)

// Nonce - type for RPC calls
type Nonce struct {
	Log     *logger.L
	Limiter *rate.Limiter
	DB      storage.ChainDB
	queries *counter.Counter
}

// ---

// ChainsArguments - empty arguments for chains request
type ChainsArguments struct{}

// ChainsReply - result from chains request
type ChainsReply struct {
	Chains []string `json:"chains"`
}

// ---

// GetArguments - arguments for RPC
type GetArguments struct {
	Address string `json:"address"`
	Chain   string `json:"chain"`
}

// GetReply - result from RPC
type GetReply struct {
	Address string `json:"address"`
	Chain   string `json:"chain"`
	Nonce   uint64 `json:"nonce,string"`
}

// New - create the nonce service
func New(log *logger.L, db storage.ChainDB, limiter *rate.Limiter, queries *counter.Counter) *Nonce {
	return &Nonce{
		Log:     log,
		Limiter: limiter,
		DB:      db,
		queries: queries,
	}
}

// Chains - list the chains held by the database
func (nonce *Nonce) Chains(_ *ChainsArguments, reply *ChainsReply) error {

	if err := ratelimit.Limit(nonce.Limiter); nil != err {
		return err
	}
	nonce.queries.Increment()

	chains, err := nonce.DB.ChainIDs()
	if nil != err {
		nonce.Log.Errorf("chains error: %s", err)
		return err
	}

	reply.Chains = make([]string, len(chains))
	for i, c := range chains {
		reply.Chains[i] = string(c)
	}

	return nil
}

// Get - the nonce of an address on one chain
func (nonce *Nonce) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(nonce.Limiter); nil != err {
		return err
	}
	nonce.queries.Increment()

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	address, err := util.DecodeAddress(arguments.Address)
	if nil != err {
		return err
	}

	if !chain.Valid(arguments.Chain) {
		return fault.ErrInvalidChainIdentifier
	}

	n, err := nonce.DB.GetTxNonce(address, storage.ChainID(arguments.Chain))
	if nil != err {
		nonce.Log.Debugf("get address: %x  chain: %q  error: %s", address, arguments.Chain, err)
		return err
	}

	nonce.Log.Tracef("get address: %x  chain: %q  nonce: %d", address, arguments.Chain, n)

	reply.Address = util.EncodeAddress(address)
	reply.Chain = arguments.Chain
	reply.Nonce = n

	return nil
}
