// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk nonce store
//
// Keeps one partition per chain identifier inside a single ordered
// key->value database (LevelDB by default, Badger or memory by
// configuration).  The engines have a flat key space so each
// partition is a key prefix and the set of partitions is held in a
// catalog.
//
// Notes:
// 1. ++        = concatenation of byte data
// 2. chain     = chain identifier as UTF-8 bytes (1..255 bytes)
// 3. length    = byte length of chain as big endian uint16 (2 bytes)
// 4. address   = opaque address bytes, not validated
// 5. nonce     = big endian uint64 (8 bytes)
//
// Version:
//
//   0x00 ++ "VERSION"         - layout version
//                               data: big endian uint32 (4 bytes)
//
// Catalog:
//
//   C ++ chain                - one record per partition
//                               data: empty
//
// Nonces:
//
//   N ++ length ++ chain ++ address
//                             - next transaction nonce for address on chain
//                               data: nonce
//
// A key absent from its partition is nonce zero.  A value of any
// length other than 8 bytes is reported as corruption.
package storage
