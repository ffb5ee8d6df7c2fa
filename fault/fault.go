// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrCertificateFileExists   = ExistsError("certificate file already exists")
	ErrDatabaseClosed          = ProcessError("database is closed")
	ErrDataCorruption          = RecordError("nonce record length is invalid")
	ErrIncompatibleVersion     = RecordError("database version is incompatible")
	ErrInvalidAddress          = InvalidError("address is invalid")
	ErrInvalidChainIdentifier  = InvalidError("chain identifier is invalid")
	ErrInvalidEngine           = InvalidError("storage engine is invalid")
	ErrInvalidIPAddress        = InvalidError("invalid IP address")
	ErrInvalidNonce            = InvalidError("nonce is invalid")
	ErrInvalidPortNumber       = InvalidError("invalid port number")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrKeyFileExists           = ExistsError("key file already exists")
	ErrListFailed              = ProcessError("list partitions failed")
	ErrMissingParameters       = InvalidError("missing parameters")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrOpenFailed              = ProcessError("open database failed")
	ErrPartitionNotFound       = NotFoundError("partition not found")
	ErrRateLimiting            = ProcessError("rate limiting")
	ErrReadFailed              = ProcessError("read failed")
	ErrVersionLength           = LengthError("database version length is invalid")
	ErrWriteFailed             = ProcessError("write failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool   { var t RecordError; return errors.As(e, &t) }
