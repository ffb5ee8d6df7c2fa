// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"unicode/utf8"
)

// Default - the partition every database holds, created on first open
const Default = "default"

// MaximumLength - longest chain identifier in bytes
//
// the on-disk key stores the length as a big endian uint16, the
// lower limit keeps keys short
const MaximumLength = 255

// Valid - validate a chain identifier before creating a partition for it
//
// identifiers are opaque to the store, only the encoding limits apply
func Valid(name string) bool {
	if 0 == len(name) || len(name) > MaximumLength {
		return false
	}
	return utf8.ValidString(name)
}
