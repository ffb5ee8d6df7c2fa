// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
)

// StorageError - a failed store operation
//
// Kind is one of the fault instances (fault.ErrOpenFailed,
// fault.ErrListFailed, fault.ErrPartitionNotFound, fault.ErrReadFailed,
// fault.ErrWriteFailed, fault.ErrDataCorruption) and Err the engine
// error, if any.  errors.Is matches either of them.
type StorageError struct {
	Op    string
	Kind  error
	Chain ChainID
	Err   error
}

func (e *StorageError) Error() string {
	s := e.Op + ": " + e.Kind.Error()
	if "" != e.Chain {
		s += fmt.Sprintf("  chain: %q", string(e.Chain))
	}
	if nil != e.Err {
		s += "  error: " + e.Err.Error()
	}
	return s
}

func (e *StorageError) Unwrap() []error {
	if nil == e.Err {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
