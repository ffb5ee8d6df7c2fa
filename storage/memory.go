// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"sort"
	"sync"
)

// process local engine, contents are lost on close
type memoryEngine struct {
	sync.RWMutex
	data map[string][]byte
}

func newMemory() *memoryEngine {
	return &memoryEngine{
		data: make(map[string][]byte),
	}
}

func (e *memoryEngine) get(key []byte) ([]byte, bool, error) {
	e.RLock()
	defer e.RUnlock()

	value, ok := e.data[string(key)]
	if !ok {
		return nil, false, nil
	}
	return append([]byte{}, value...), true, nil
}

func (e *memoryEngine) put(key []byte, value []byte) error {
	e.Lock()
	e.data[string(key)] = append([]byte{}, value...)
	e.Unlock()
	return nil
}

// iterates over a copy so f never runs under the engine lock
func (e *memoryEngine) iterate(prefix []byte, f func(key []byte, value []byte) error) error {
	e.RLock()
	keys := make([]string, 0, len(e.data))
	values := make(map[string][]byte)
	for k, v := range e.data {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
			values[k] = append([]byte{}, v...)
		}
	}
	e.RUnlock()

	sort.Strings(keys)

	for _, k := range keys {
		if err := f([]byte(k), values[k]); nil != err {
			return err
		}
	}
	return nil
}

func (e *memoryEngine) close() error {
	e.Lock()
	e.data = nil
	e.Unlock()
	return nil
}
