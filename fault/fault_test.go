// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/statedb/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrBackendOne  = fault.Backend("get", errors.New("leveldb: closed"))
)

// test that the various error classes can be told apart
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		backend  bool
	}{
		{ErrExistsOne, true, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false},
		{ErrLengthOne, false, false, true, false, false, false},
		{ErrLengthTwo, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, false, true, false},
		{ErrBackendOne, false, false, false, false, false, true},
		{fault.ErrBufferTooSmall, false, false, true, false, false, false},
		{fault.ErrTransactionAborted, false, false, false, false, true, false},
	}

	for i, e := range errorList {
		err := e.err
		assert.Equal(t, e.exists, fault.IsErrExists(err), "%d: 'exists' for err = %v", i, err)
		assert.Equal(t, e.invalid, fault.IsErrInvalid(err), "%d: 'invalid' for err = %v", i, err)
		assert.Equal(t, e.length, fault.IsErrLength(err), "%d: 'length' for err = %v", i, err)
		assert.Equal(t, e.notFound, fault.IsErrNotFound(err), "%d: 'not found' for err = %v", i, err)
		assert.Equal(t, e.process, fault.IsErrProcess(err), "%d: 'process' for err = %v", i, err)
		assert.Equal(t, e.backend, fault.IsErrBackend(err), "%d: 'backend' for err = %v", i, err)
	}
}

func TestAbortedIsNotBackend(t *testing.T) {
	assert.True(t, fault.IsErrAborted(fault.ErrTransactionAborted))
	assert.False(t, fault.IsErrBackend(fault.ErrTransactionAborted))
	assert.False(t, fault.IsErrAborted(ErrBackendOne))
	assert.False(t, fault.IsErrAborted(fault.ErrTransactionClosed))
}

func TestBackendIsOpaque(t *testing.T) {
	cause := errors.New("corruption: block checksum mismatch")
	err := fault.Backend("iterate", cause)

	assert.False(t, errors.Is(err, cause), "native cause must not be reachable")
	assert.Nil(t, errors.Unwrap(err))
	assert.Contains(t, err.Error(), "iterate")

	assert.Equal(t, err, fault.Backend("again", err), "wrapping twice must keep the first wrapper")
	assert.Nil(t, fault.Backend("nothing", nil))
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() { fault.PanicIfError("no error", nil) })
	assert.Panics(t, func() { fault.PanicIfError("with error", ErrProcessOne) })
	assert.PanicsWithValue(t, fault.ErrTransactionClosed, func() { fault.Panic(fault.ErrTransactionClosed) })
}
