// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/noncestore/chain"
	"github.com/bitmark-inc/noncestore/fault"
)

// ChainIDs - list the partitions
//
// the catalog is read from the database on every call, so chains
// created after Open are included.  Order is the engine key order.
func (s *Store) ChainIDs() ([]ChainID, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrDatabaseClosed
	}

	chains, err := readCatalog(s.db)
	if nil != err {
		s.log.Errorf("list partitions error: %s", err)
		return nil, &StorageError{Op: "chain ids", Kind: fault.ErrListFailed, Err: err}
	}
	return chains, nil
}

// GetTxNonce - read the nonce of an address on a chain
//
// an address that was never written has nonce zero; a chain without a
// partition is an error, never zero
func (s *Store) GetTxNonce(address Address, chainID ChainID) (uint64, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return 0, fault.ErrDatabaseClosed
	}

	if err := s.requireChain("get tx nonce", chainID); nil != err {
		return 0, err
	}

	value, found, err := s.db.get(nonceKey(chainID, address))
	if nil != err {
		s.log.Errorf("get: %q  address: %x  error: %s", chainID, address, err)
		return 0, &StorageError{Op: "get tx nonce", Kind: fault.ErrReadFailed, Chain: chainID, Err: err}
	}
	if !found {
		return 0, nil
	}

	nonce, err := decodeNonce(value)
	if nil != err {
		s.log.Criticalf("get: %q  address: %x  corrupt record: %x", chainID, address, value)
		return 0, &StorageError{Op: "get tx nonce", Kind: fault.ErrDataCorruption, Chain: chainID, Err: err}
	}
	return nonce, nil
}

// CreateChain - add a partition, nothing happens if it already exists
func (s *Store) CreateChain(chainID ChainID) error {
	if !chain.Valid(string(chainID)) {
		return fault.ErrInvalidChainIdentifier
	}

	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.ErrDatabaseClosed
	}

	if err := ensureCatalog(s.db, chainID); nil != err {
		s.log.Errorf("create partition: %q  error: %s", chainID, err)
		return &StorageError{Op: "create chain", Kind: fault.ErrWriteFailed, Chain: chainID, Err: err}
	}
	s.log.Infof("partition: %q  ready", chainID)
	return nil
}

// SetTxNonce - store the nonce of an address on an existing chain
func (s *Store) SetTxNonce(address Address, chainID ChainID, nonce uint64) error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.ErrDatabaseClosed
	}

	if err := s.requireChain("set tx nonce", chainID); nil != err {
		return err
	}

	if err := s.db.put(nonceKey(chainID, address), encodeNonce(nonce)); nil != err {
		s.log.Errorf("set: %q  address: %x  error: %s", chainID, address, err)
		return &StorageError{Op: "set tx nonce", Kind: fault.ErrWriteFailed, Chain: chainID, Err: err}
	}
	return nil
}

type nonceEntry struct {
	address Address
	nonce   uint64
}

// ForEachNonce - visit every stored nonce of a chain in address order
//
// the partition is read completely before f is first called, so f may
// use the store; an error from f stops the iteration and is returned
// unchanged
func (s *Store) ForEachNonce(chainID ChainID, f func(address Address, nonce uint64) error) error {
	entries, err := s.scanNonces(chainID)
	if nil != err {
		return err
	}

	for _, entry := range entries {
		if err := f(entry.address, entry.nonce); nil != err {
			return err
		}
	}
	return nil
}

func (s *Store) scanNonces(chainID ChainID) ([]nonceEntry, error) {
	s.RLock()
	defer s.RUnlock()

	if nil == s.db {
		return nil, fault.ErrDatabaseClosed
	}

	if err := s.requireChain("for each nonce", chainID); nil != err {
		return nil, err
	}

	prefix := partitionPrefix(chainID)
	entries := make([]nonceEntry, 0, 64)

	var corrupt error
	err := s.db.iterate(prefix, func(key []byte, value []byte) error {
		address := Address(key[len(prefix):])
		nonce, err := decodeNonce(value)
		if nil != err {
			s.log.Criticalf("scan: %q  address: %x  corrupt record: %x", chainID, address, value)
			corrupt = &StorageError{Op: "for each nonce", Kind: fault.ErrDataCorruption, Chain: chainID, Err: err}
			return corrupt
		}
		entries = append(entries, nonceEntry{address: address, nonce: nonce})
		return nil
	})
	if nil != corrupt {
		return nil, corrupt
	}
	if nil != err {
		return nil, &StorageError{Op: "for each nonce", Kind: fault.ErrReadFailed, Chain: chainID, Err: err}
	}
	return entries, nil
}

// lock must be held
func (s *Store) requireChain(op string, chainID ChainID) error {
	_, found, err := s.db.get(catalogKey(chainID))
	if nil != err {
		return &StorageError{Op: op, Kind: fault.ErrReadFailed, Chain: chainID, Err: err}
	}
	if !found {
		return &StorageError{Op: op, Kind: fault.ErrPartitionNotFound, Chain: chainID}
	}
	return nil
}
