// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/noncestore/fault"
	"github.com/bitmark-inc/noncestore/rpc/fixtures"
	"github.com/bitmark-inc/noncestore/storage"
)

func TestRunCommand(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	store, err := storage.Open(filepath.Join(t.TempDir(), "nonces"))
	require.Nil(t, err, "open")
	defer store.Close()

	// steps share the database, in order
	testData := []struct {
		command   string
		arguments []string
		output    string
		err       error
	}{
		{"chains", nil, "default\n", nil},
		{"create", []string{"mainnet"}, "", nil},
		{"create", []string{"mainnet"}, "", nil},
		{"chains", nil, "default\nmainnet\n", nil},
		{"get", []string{fixtures.AddressHex, "mainnet"}, "0x0102: 0\n", nil},
		{"set", []string{fixtures.AddressHex, "mainnet", "42"}, "", nil},
		{"get", []string{fixtures.AddressBase58, "mainnet"}, "0x0102: 42\n", nil},
		{"set", []string{"0x0a", "mainnet", "7"}, "", nil},
		{"dump", []string{"mainnet"}, "0x0102: 42\n0x0a: 7\n", nil},
		{"dump", []string{"default"}, "", nil},

		{"create", []string{""}, "", fault.ErrInvalidChainIdentifier},
		{"get", []string{fixtures.AddressHex}, "", fault.ErrMissingParameters},
		{"get", []string{"0xzz", "mainnet"}, "", fault.ErrInvalidAddress},
		{"get", []string{fixtures.AddressHex, "testnet"}, "", fault.ErrPartitionNotFound},
		{"dump", nil, "", fault.ErrMissingParameters},
		{"dump", []string{"testnet"}, "", fault.ErrPartitionNotFound},
		{"set", []string{fixtures.AddressHex, "mainnet"}, "", fault.ErrMissingParameters},
		{"set", []string{fixtures.AddressHex, "mainnet", "-1"}, "", fault.ErrInvalidNonce},
		{"set", []string{fixtures.AddressHex, "testnet", "1"}, "", fault.ErrPartitionNotFound},
		{"remove", nil, "", errNoSuchCommand},
	}

	for i, item := range testData {
		buffer := &bytes.Buffer{}
		err := runCommand(buffer, store, false, item.command, item.arguments)
		if nil == item.err {
			assert.Nil(t, err, "%d: %s: error", i, item.command)
		} else {
			assert.True(t, errors.Is(err, item.err), "%d: %s: wrong error: %v", i, item.command, err)
		}
		assert.Equal(t, item.output, buffer.String(), "%d: %s: wrong output", i, item.command)
	}

	// failed set left the stored value alone
	n, err := store.GetTxNonce(storage.Address{0x01, 0x02}, "mainnet")
	assert.Nil(t, err, "get")
	assert.Equal(t, uint64(42), n, "wrong nonce")
}

func TestRunCommandColour(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	store := storage.NewMemoryStore()
	defer store.Close()

	require.Nil(t, store.SetTxNonce(fixtures.AddressBytes, storage.DefaultChain, 3), "set")

	buffer := &bytes.Buffer{}
	err := runCommand(buffer, store, true, "get", []string{fixtures.AddressHex, "default"})
	assert.Nil(t, err, "get")
	assert.Equal(t, keyColour+"0x0102"+endColour+": "+valColour+"3"+endColour+"\n", buffer.String(), "wrong output")
}
