// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/noncestore/fault"
)

// names of the available engines
const (
	EngineLevelDB = "leveldb"
	EngineBadger  = "badger"
	EngineMemory  = "memory"
)

// ordered key->value database underneath the store
//
// keys and values passed to callers are copies
type engine interface {
	get(key []byte) ([]byte, bool, error)
	put(key []byte, value []byte) error
	iterate(prefix []byte, f func(key []byte, value []byte) error) error
	close() error
}

// how to reach an engine at a path
type driver struct {
	open         func(path string) (engine, error)
	openReadOnly func(path string) (engine, error)
}

var drivers = map[string]driver{
	EngineLevelDB: {
		open:         func(path string) (engine, error) { return openLevelDB(path, false) },
		openReadOnly: func(path string) (engine, error) { return openLevelDB(path, true) },
	},
	EngineBadger: {
		open:         func(path string) (engine, error) { return openBadger(path, false) },
		openReadOnly: func(path string) (engine, error) { return openBadger(path, true) },
	},
	EngineMemory: {
		open:         func(string) (engine, error) { return newMemory(), nil },
		openReadOnly: func(string) (engine, error) { return nil, errNoRoot },
	},
}

// ValidEngine - check an engine name from configuration
func ValidEngine(name string) bool {
	_, ok := drivers[name]
	return ok
}

// the memory engine never has anything on disk
var errNoRoot = fault.NotFoundError("memory engine has no database root")
