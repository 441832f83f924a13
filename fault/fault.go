// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBlockNotFound         = NotFoundError("block not found")
	ErrBlockVersionDecreased = InvalidError("block version must not decrease")
	ErrBufferTooSmall        = LengthError("buffer too small for stored value")
	ErrClosed                = ProcessError("database is closed")
	ErrCoinNotFound          = NotFoundError("coin not found")
	ErrColumnFamilyMissing   = NotFoundError("column family missing")
	ErrGenesisBlock          = InvalidError("genesis block has no previous block")
	ErrHeightNotFound        = NotFoundError("chain height not found")
	ErrHeightOutOfSequence   = InvalidError("block height out of sequence")
	ErrInvalidBlockHeader    = InvalidError("invalid block header version")
	ErrInvalidBlockRecord    = LengthError("invalid block record")
	ErrInvalidChunkResult    = InvalidError("configuration must return a table")
	ErrInvalidCoinRecord     = LengthError("invalid coin record")
	ErrInvalidColumnFamily   = InvalidError("invalid column family record")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidContractState  = LengthError("invalid contract state record")
	ErrInvalidDigest         = LengthError("invalid digest length")
	ErrInvalidOperation      = InvalidError("invalid write operation type")
	ErrInvalidPath           = InvalidError("invalid path")
	ErrInvalidPrefixKey      = LengthError("key shorter than column prefix")
	ErrInvalidStructPointer  = InvalidError("configuration target must be a struct pointer")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrPreviousBlockMismatch = InvalidError("previous block digest does not match")
	ErrReadOnly              = InvalidError("database is read only")
	ErrSchemaDrift           = InvalidError("persisted columns do not match schema")
	ErrTransactionAborted    = ProcessError("transaction aborted")
	ErrTransactionClosed     = ProcessError("transaction already committed or aborted")
	ErrTransactionNested     = ProcessError("transaction has an open nested transaction")
	ErrUnknownColumn         = NotFoundError("unknown column")
	ErrUnsupportedDBVersion  = InvalidError("unsupported database version")
	ErrZeroLengthMerkleInput = InvalidError("no digests for merkle root")
)

// the error interface methods
func (e GenericError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

// IsErrAborted - true only for a deliberately discarded transaction
func IsErrAborted(e error) bool { return e == ErrTransactionAborted }

// BackendError - opaque wrapper around any storage engine failure
//
// the native cause is kept only for the log message and is not
// reachable through errors.Unwrap
type BackendError struct {
	operation string
	message   string
}

// Backend - wrap an engine error, nil stays nil
func Backend(operation string, err error) error {
	if nil == err {
		return nil
	}
	if be, ok := err.(*BackendError); ok {
		return be
	}
	return &BackendError{
		operation: operation,
		message:   err.Error(),
	}
}

func (e *BackendError) Error() string {
	return "backend error: " + e.operation + ": " + e.message
}

// IsErrBackend - determine if error came from the storage engine
func IsErrBackend(e error) bool { _, ok := e.(*BackendError); return ok }
