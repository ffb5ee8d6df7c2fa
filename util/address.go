// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/noncestore/fault"
)

const hexPrefix = "0x"

// DecodeAddress - convert the text form of an account address to bytes
//
// "0x" or "0X" prefix selects hex, anything else is base58
func DecodeAddress(s string) ([]byte, error) {
	s = strings.TrimSpace(s)

	if len(s) >= len(hexPrefix) && strings.EqualFold(s[:len(hexPrefix)], hexPrefix) {
		s = s[len(hexPrefix):]
		if 0 == len(s) {
			return nil, fault.ErrInvalidAddress
		}
		b, err := hex.DecodeString(s)
		if nil != err {
			return nil, fault.ErrInvalidAddress
		}
		return b, nil
	}

	if 0 == len(s) {
		return nil, fault.ErrInvalidAddress
	}
	b, err := base58.Decode(s)
	if nil != err || 0 == len(b) {
		return nil, fault.ErrInvalidAddress
	}
	return b, nil
}

// EncodeAddress - the canonical text form of an address
func EncodeAddress(address []byte) string {
	return hexPrefix + hex.EncodeToString(address)
}
