// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Address - opaque account identifier within a chain
type Address []byte

// ChainID - name of a chain, also the name of its partition
type ChainID string

//go:generate mockgen -destination=../rpc/mocks/chaindb.go -package=mocks github.com/bitmark-inc/noncestore/storage ChainDB

// ChainDB - read access to per chain transaction nonces
type ChainDB interface {
	// ChainIDs - the chains currently present in the database
	ChainIDs() ([]ChainID, error)

	// GetTxNonce - the nonce for address on chain, zero if never written
	GetTxNonce(address Address, chainID ChainID) (uint64, error)
}

// ChainWriter - the writer role: partitions and nonce values
//
// kept apart from ChainDB so that readers cannot modify the data
type ChainWriter interface {
	CreateChain(chainID ChainID) error
	SetTxNonce(address Address, chainID ChainID, nonce uint64) error
}

// check that Store satisfies both roles
var (
	_ ChainDB     = (*Store)(nil)
	_ ChainWriter = (*Store)(nil)
)
