// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

type levelDBEngine struct {
	db *leveldb.DB
}

// a read-only open never creates the database
func openLevelDB(path string, readOnly bool) (engine, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(path, opt)
	if nil != err {
		return nil, err
	}
	return &levelDBEngine{db: db}, nil
}

func (e *levelDBEngine) get(key []byte) ([]byte, bool, error) {
	value, err := e.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil, false, nil
	} else if nil != err {
		return nil, false, err
	}
	return value, true, nil
}

func (e *levelDBEngine) put(key []byte, value []byte) error {
	return e.db.Put(key, value, nil)
}

func (e *levelDBEngine) iterate(prefix []byte, f func(key []byte, value []byte) error) error {
	iter := e.db.NewIterator(ldb_util.BytesPrefix(prefix), nil)
	defer iter.Release()

	for iter.Next() {

		// contents of the returned slices must not be modified, and are
		// only valid until the next call to Next
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())
		value := make([]byte, len(iter.Value()))
		copy(value, iter.Value())

		if err := f(key, value); nil != err {
			return err
		}
	}
	return iter.Error()
}

func (e *levelDBEngine) close() error {
	return e.db.Close()
}
