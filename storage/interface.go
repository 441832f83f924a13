// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/statedb/column"
)

// Direction - order of iteration
type Direction int

// iteration directions
const (
	Forward Direction = iota
	Reverse
)

// String - for logging and tools
func (d Direction) String() string {
	switch d {
	case Forward:
		return "Forward"
	case Reverse:
		return "Reverse"
	default:
		return "*Unknown*"
	}
}

// Iterator - lazy sequence of key/value pairs
//
// Key and Value return copies owned by the caller.  An iterator pins
// engine resources so Release must always be called.  After Next
// returns false, Error reports any failure that ended the sequence.
type Iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Error() error
	Release()
}

// KeyValueStore - single key access to a column
//
// A missing key is not an error: the boolean result is false.
//
// Put, Delete, Replace and Take read the previous value and then
// write.  The two steps are not atomic: under concurrent writers of the
// same key the returned previous value may not belong to the most
// recent writer.  Engines may close this window (see
// Options.SerializeReadModifyWrite) but callers must not assume it.
type KeyValueStore interface {
	// Get - value for key, nil if absent
	Get(key []byte, c column.Column) ([]byte, bool, error)

	// Put - store value, return the previous value
	Put(key []byte, c column.Column, value []byte) ([]byte, bool, error)

	// Delete - remove key, return the removed value
	Delete(key []byte, c column.Column) ([]byte, bool, error)

	// Exists - probe without copying the value
	Exists(key []byte, c column.Column) (bool, error)

	// SizeOfValue - length of the stored value, without copying it
	SizeOfValue(key []byte, c column.Column) (int, bool, error)

	// Write - store buf, return bytes written
	Write(key []byte, c column.Column, buf []byte) (int, error)

	// Read - copy the value into buf, fault.ErrBufferTooSmall if it
	// does not fit
	Read(key []byte, c column.Column, buf []byte) (int, bool, error)

	// ReadAlloc - same as Get
	ReadAlloc(key []byte, c column.Column) ([]byte, bool, error)

	// Replace - store buf, return bytes written and the previous value
	Replace(key []byte, c column.Column, buf []byte) (int, []byte, bool, error)

	// Take - remove key, return the removed value
	Take(key []byte, c column.Column) ([]byte, bool, error)

	// IterAll - iterate a column, prefix and start are optional (nil)
	IterAll(c column.Column, prefix []byte, start []byte, direction Direction) Iterator
}

// BatchOperations - a store that can apply a set of writes at once
//
// Engines in this package apply the whole batch atomically: a reader
// sees either all of it or none of it.
type BatchOperations interface {
	KeyValueStore
	BatchWrite(operations []WriteOperation) error
}

// TransactableStorage - a complete engine usable behind a Handle
type TransactableStorage interface {
	BatchOperations
	Close() error
}

// OperationType - kind of a WriteOperation
type OperationType int

// operation types
const (
	Insert OperationType = iota
	Remove
)

// WriteOperation - unit of batch application
type WriteOperation struct {
	Type   OperationType
	Column column.Column
	Key    []byte
	Value  []byte // unused for Remove
}

// InsertOperation - create an insert
func InsertOperation(key []byte, c column.Column, value []byte) WriteOperation {
	return WriteOperation{
		Type:   Insert,
		Column: c,
		Key:    key,
		Value:  value,
	}
}

// RemoveOperation - create a removal
func RemoveOperation(key []byte, c column.Column) WriteOperation {
	return WriteOperation{
		Type:   Remove,
		Column: c,
		Key:    key,
	}
}
