// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/dgraph-io/badger/v4"

	"github.com/bitmark-inc/logger"
)

type badgerEngine struct {
	db *badger.DB
}

// route badger's own messages to a logger channel
type badgerLogger struct {
	log *logger.L
}

func (l badgerLogger) Errorf(format string, arguments ...interface{}) {
	l.log.Errorf(format, arguments...)
}

func (l badgerLogger) Warningf(format string, arguments ...interface{}) {
	l.log.Warnf(format, arguments...)
}

func (l badgerLogger) Infof(format string, arguments ...interface{}) {
	l.log.Debugf(format, arguments...)
}

func (l badgerLogger) Debugf(format string, arguments ...interface{}) {
	l.log.Tracef(format, arguments...)
}

// read-only open fails on a missing directory
func openBadger(path string, readOnly bool) (engine, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(badgerLogger{log: logger.New("badger")}).
		WithReadOnly(readOnly)

	db, err := badger.Open(opts)
	if nil != err {
		return nil, err
	}
	return &badgerEngine{db: db}, nil
}

func (e *badgerEngine) get(key []byte) ([]byte, bool, error) {
	var value []byte
	found := false

	err := e.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if badger.ErrKeyNotFound == err {
			return nil
		} else if nil != err {
			return err
		}
		value, err = item.ValueCopy(nil)
		if nil != err {
			return err
		}
		found = true
		return nil
	})
	if nil != err {
		return nil, false, err
	}
	return value, found, nil
}

func (e *badgerEngine) put(key []byte, value []byte) error {
	return e.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (e *badgerEngine) iterate(prefix []byte, f func(key []byte, value []byte) error) error {
	return e.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix

		iter := txn.NewIterator(options)
		defer iter.Close()

		for iter.Seek(prefix); iter.ValidForPrefix(prefix); iter.Next() {
			item := iter.Item()
			key := item.KeyCopy(nil)
			value, err := item.ValueCopy(nil)
			if nil != err {
				return err
			}
			if err := f(key, value); nil != err {
				return err
			}
		}
		return nil
	})
}

func (e *badgerEngine) close() error {
	return e.db.Close()
}
