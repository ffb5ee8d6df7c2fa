// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncestore/chain"
	"github.com/bitmark-inc/noncestore/fault"
)

// DefaultChain - partition present in every database
const DefaultChain = ChainID(chain.Default)

// Store - the nonce database, one partition per chain
type Store struct {
	sync.RWMutex // orders operations against Close

	log  *logger.L
	name string // engine name
	path string
	db   engine
}

// Open - open or create a LevelDB nonce database at path
func Open(path string) (*Store, error) {
	return OpenEngine(EngineLevelDB, path)
}

// NewMemoryStore - a store that only lives in this process
func NewMemoryStore() *Store {
	s, err := OpenEngine(EngineMemory, "")
	if nil != err {
		logger.Panicf("storage: memory store: error: %s", err)
	}
	return s
}

// OpenEngine - open or create a nonce database using the named engine
//
// partitions already present are discovered first; a path that does
// not hold a database yet simply has none.  The default partition is
// added when missing.
func OpenEngine(name string, path string) (*Store, error) {
	d, ok := drivers[name]
	if !ok {
		return nil, fault.ErrInvalidEngine
	}

	log := logger.New("storage")

	// the partitions present before this open, for the log; their
	// catalog records live in the same database so need no rewrite
	chains, err := listPartitions(d, path)
	if nil != err {
		log.Infof("%s: %q  no existing partitions: %s", name, path, err)
		chains = nil
	}

	db, err := d.open(path)
	if nil != err {
		log.Errorf("%s: %q  open error: %s", name, path, err)
		return nil, &StorageError{Op: "open", Kind: fault.ErrOpenFailed, Err: err}
	}

	ok = false
	defer func() {
		if !ok {
			db.close()
		}
	}()

	if err := checkVersion(db); nil != err {
		log.Criticalf("%s: %q  version error: %s", name, path, err)
		return nil, &StorageError{Op: "open", Kind: fault.ErrOpenFailed, Err: err}
	}

	if err := ensureCatalog(db, DefaultChain); nil != err {
		log.Errorf("%s: %q  create partition: %q  error: %s", name, path, DefaultChain, err)
		return nil, &StorageError{Op: "open", Kind: fault.ErrOpenFailed, Chain: DefaultChain, Err: err}
	}

	log.Infof("%s: %q  opened with: %d existing partitions", name, path, len(chains))

	ok = true // prevent db close
	return &Store{
		log:  log,
		name: name,
		path: path,
		db:   db,
	}, nil
}

// Close - release the database, no further operations are possible
func (s *Store) Close() error {
	s.Lock()
	defer s.Unlock()

	if nil == s.db {
		return fault.ErrDatabaseClosed
	}

	err := s.db.close()
	s.db = nil
	s.log.Infof("%s: %q  closed", s.name, s.path)
	s.log.Flush()
	return err
}

// read the catalog of a database without keeping it open
func listPartitions(d driver, path string) ([]ChainID, error) {
	db, err := d.openReadOnly(path)
	if nil != err {
		return nil, err
	}
	defer db.close()

	return readCatalog(db)
}

func readCatalog(db engine) ([]ChainID, error) {
	chains := make([]ChainID, 0, 8)
	err := db.iterate([]byte{catalogPrefix}, func(key []byte, _ []byte) error {
		chains = append(chains, ChainID(key[1:]))
		return nil
	})
	if nil != err {
		return nil, err
	}
	return chains, nil
}

func ensureCatalog(db engine, chainID ChainID) error {
	key := catalogKey(chainID)
	_, found, err := db.get(key)
	if nil != err || found {
		return err
	}
	return db.put(key, []byte{})
}

// tag an empty database with the current version and
// refuse to downgrade a newer one
func checkVersion(db engine) error {
	value, found, err := db.get(versionKey)
	if nil != err {
		return err
	}

	if !found {
		version := make([]byte, 4)
		binary.BigEndian.PutUint32(version, currentVersion)
		return db.put(versionKey, version)
	}

	if 4 != len(value) {
		return fault.ErrVersionLength
	}
	if binary.BigEndian.Uint32(value) > currentVersion {
		return fault.ErrIncompatibleVersion
	}
	return nil
}
