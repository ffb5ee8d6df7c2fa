// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncestore/fault"
)

var errEngine = errors.New("engine failure")

// memory engine that fails selected operations
type failingEngine struct {
	*memoryEngine
	failIterate bool
	failNonce   bool // get of nonce records only
}

func (e *failingEngine) get(key []byte) ([]byte, bool, error) {
	if e.failNonce && noncePrefix == key[0] {
		return nil, false, errEngine
	}
	return e.memoryEngine.get(key)
}

func (e *failingEngine) iterate(prefix []byte, f func(key []byte, value []byte) error) error {
	if e.failIterate {
		return errEngine
	}
	return e.memoryEngine.iterate(prefix, f)
}

func newFailingStore(t *testing.T, db *failingEngine) *Store {
	require.Nil(t, ensureCatalog(db, DefaultChain))
	return &Store{
		log:  logger.New("storage"),
		name: "failing",
		db:   db,
	}
}

func TestKeyLayout(t *testing.T) {
	assert.Equal(t, []byte{'C', 'd', 'e', 'f', 'a', 'u', 'l', 't'}, catalogKey(DefaultChain), "catalog key")
	assert.Equal(t, []byte{'N', 0x00, 0x07, 'm', 'a', 'i', 'n', 'n', 'e', 't', 0x01, 0x02}, nonceKey("mainnet", Address{0x01, 0x02}), "nonce key")
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0x2a}, encodeNonce(42), "nonce encoding")

	n, err := decodeNonce([]byte{0x01, 0, 0, 0, 0, 0, 0, 0x02})
	assert.Nil(t, err)
	assert.Equal(t, uint64(0x0100000000000002), n, "big endian decode")
}

// the bytes an external writer would store
func TestStoredBytes(t *testing.T) {
	for _, name := range []string{EngineLevelDB, EngineBadger, EngineMemory} {
		s, err := OpenEngine(name, filepath.Join(t.TempDir(), "x"))
		require.Nil(t, err, "%s: open", name)

		require.Nil(t, s.SetTxNonce(Address{0x01, 0x02}, DefaultChain, 42), "%s: set", name)

		value, found, err := s.db.get(nonceKey(DefaultChain, Address{0x01, 0x02}))
		assert.Nil(t, err, "%s: get", name)
		assert.True(t, found, "%s: not found", name)
		assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2a}, value, "%s: wrong bytes", name)

		s.Close()
	}
}

func TestDataCorruption(t *testing.T) {
	badValues := [][]byte{
		{},
		{0x2a},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2a},
		{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2a},
	}

	for _, name := range []string{EngineLevelDB, EngineBadger, EngineMemory} {
		s, err := OpenEngine(name, filepath.Join(t.TempDir(), "x"))
		require.Nil(t, err, "%s: open", name)

		for i, value := range badValues {
			require.Nil(t, s.db.put(nonceKey(DefaultChain, Address{0x07}), value), "%s: %d: put", name, i)

			nonce, err := s.GetTxNonce(Address{0x07}, DefaultChain)
			assert.Equal(t, uint64(0), nonce, "%s: %d: nonce returned", name, i)
			assert.True(t, errors.Is(err, fault.ErrDataCorruption), "%s: %d: wrong error: %v", name, i, err)
			assert.True(t, fault.IsErrRecord(err), "%s: %d: wrong class: %v", name, i, err)

			err = s.ForEachNonce(DefaultChain, func(Address, uint64) error { return nil })
			assert.True(t, errors.Is(err, fault.ErrDataCorruption), "%s: %d: scan error: %v", name, i, err)
		}

		s.Close()
	}
}

func TestListFailedPropagates(t *testing.T) {
	db := &failingEngine{memoryEngine: newMemory()}
	s := newFailingStore(t, db)

	db.failIterate = true

	chains, err := s.ChainIDs()
	assert.Nil(t, chains)
	assert.True(t, errors.Is(err, fault.ErrListFailed), "wrong kind: %v", err)
	assert.True(t, errors.Is(err, errEngine), "cause lost: %v", err)
}

func TestReadFailedPropagates(t *testing.T) {
	db := &failingEngine{memoryEngine: newMemory(), failNonce: true}
	s := newFailingStore(t, db)

	nonce, err := s.GetTxNonce(Address{0x01}, DefaultChain)
	assert.Equal(t, uint64(0), nonce)
	assert.True(t, errors.Is(err, fault.ErrReadFailed), "wrong kind: %v", err)
	assert.True(t, errors.Is(err, errEngine), "cause lost: %v", err)
	assert.False(t, errors.Is(err, fault.ErrPartitionNotFound), "read failure reported as missing partition")

	// missing partition is detected before the failing read
	_, err = s.GetTxNonce(Address{0x01}, "mainnet")
	assert.True(t, errors.Is(err, fault.ErrPartitionNotFound), "wrong kind: %v", err)
}

// enumeration of a fresh root fails, which Open treats as no partitions
func TestListFreshRoot(t *testing.T) {
	for _, name := range []string{EngineLevelDB, EngineBadger, EngineMemory} {
		path := filepath.Join(t.TempDir(), "x")

		chains, err := listPartitions(drivers[name], path)
		assert.NotNil(t, err, "%s: fresh root listed", name)
		assert.Nil(t, chains, "%s: chains returned", name)

		s, err := OpenEngine(name, path)
		require.Nil(t, err, "%s: open", name)
		s.Close()
	}
}

func TestListExistingRoot(t *testing.T) {
	for _, name := range []string{EngineLevelDB, EngineBadger} {
		path := filepath.Join(t.TempDir(), "x")

		s, err := OpenEngine(name, path)
		require.Nil(t, err, "%s: open", name)
		require.Nil(t, s.CreateChain("mainnet"), "%s: create", name)
		require.Nil(t, s.Close(), "%s: close", name)

		chains, err := listPartitions(drivers[name], path)
		assert.Nil(t, err, "%s: list", name)
		assert.Equal(t, []ChainID{"default", "mainnet"}, chains, "%s: not in key order", name)

		// reopening leaves the catalog as it was
		s, err = OpenEngine(name, path)
		require.Nil(t, err, "%s: reopen", name)
		chains, err = s.ChainIDs()
		assert.Nil(t, err, "%s: ChainIDs", name)
		assert.Equal(t, []ChainID{"default", "mainnet"}, chains, "%s: catalog changed by reopen", name)
		s.Close()
	}
}

func TestVersion(t *testing.T) {
	tests := []struct {
		version []byte
		kind    error
	}{
		{[]byte{0x00, 0x00, 0x00, 0x02}, fault.ErrIncompatibleVersion},
		{[]byte{0x00, 0x01}, fault.ErrVersionLength},
	}

	for i, item := range tests {
		path := filepath.Join(t.TempDir(), "x")

		db, err := openLevelDB(path, false)
		require.Nil(t, err, "%d: create", i)
		require.Nil(t, db.put(versionKey, item.version), "%d: put version", i)
		require.Nil(t, db.close(), "%d: close", i)

		s, err := Open(path)
		assert.Nil(t, s, "%d: store returned", i)
		assert.True(t, errors.Is(err, fault.ErrOpenFailed), "%d: wrong kind: %v", i, err)
		assert.True(t, errors.Is(err, item.kind), "%d: wrong cause: %v", i, err)
	}

	// an empty database is tagged with the current version
	path := filepath.Join(t.TempDir(), "x")
	s, err := Open(path)
	require.Nil(t, err)
	value, found, err := s.db.get(versionKey)
	assert.Nil(t, err)
	assert.True(t, found, "version not written")
	assert.True(t, bytes.Equal([]byte{0, 0, 0, currentVersion}, value), "wrong version: %x", value)
	s.Close()
}

func TestStorageErrorText(t *testing.T) {
	err := &StorageError{Op: "get tx nonce", Kind: fault.ErrPartitionNotFound, Chain: "mainnet"}
	assert.Equal(t, `get tx nonce: partition not found  chain: "mainnet"`, err.Error())

	err = &StorageError{Op: "open", Kind: fault.ErrOpenFailed, Err: errEngine}
	assert.Equal(t, "open: open database failed  error: engine failure", err.Error())
}
