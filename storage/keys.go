// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
)

// key prefixes, see doc.go
const (
	catalogPrefix = 'C'
	noncePrefix   = 'N'
)

// size of an encoded nonce
const nonceLength = 8

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentVersion = 1

func catalogKey(chainID ChainID) []byte {
	key := make([]byte, 1, len(chainID)+1)
	key[0] = catalogPrefix
	return append(key, chainID...)
}

// the length field keeps "main" from matching keys of "mainnet"
func partitionPrefix(chainID ChainID) []byte {
	key := make([]byte, 3, len(chainID)+3)
	key[0] = noncePrefix
	binary.BigEndian.PutUint16(key[1:3], uint16(len(chainID)))
	return append(key, chainID...)
}

func nonceKey(chainID ChainID, address Address) []byte {
	key := partitionPrefix(chainID)
	return append(key, address...)
}

func encodeNonce(nonce uint64) []byte {
	value := make([]byte, nonceLength)
	binary.BigEndian.PutUint64(value, nonce)
	return value
}

func decodeNonce(value []byte) (uint64, error) {
	if nonceLength != len(value) {
		return 0, fmt.Errorf("value length expected: %d  actual: %d", nonceLength, len(value))
	}
	return binary.BigEndian.Uint64(value), nil
}
