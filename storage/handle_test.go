// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/fault"
	"github.com/bitmark-inc/statedb/storage"
	"github.com/bitmark-inc/statedb/storage/mocks"
)

func TestHandleReferenceCount(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	engine := mocks.NewMockTransactableStorage(ctl)
	engine.EXPECT().Close().Return(nil).Times(1)

	first := storage.NewHandle(engine)
	second := first.Clone()
	third := second.Clone()
	assert.Equal(t, 3, first.References(), "references")

	require.NoError(t, second.Close(), "close second")
	assert.Equal(t, fault.ErrNotInitialised, second.Close(), "second close of one clone")
	assert.Equal(t, 2, first.References(), "references")

	require.NoError(t, first.Close(), "close first")
	require.NoError(t, third.Close(), "last close closes the engine")
	assert.Equal(t, 0, third.References(), "references")
}

func TestHandleSharesEngine(t *testing.T) {
	db, _ := openTestDB(t, nil)

	writer := storage.NewHandle(db)
	reader := writer.Clone()

	_, err := writer.Write([]byte("k"), column.Metadata, []byte("v"))
	require.NoError(t, err, "write")

	value, found, err := reader.Get([]byte("k"), column.Metadata)
	require.NoError(t, err, "get")
	assert.True(t, found, "found")
	assert.Equal(t, []byte("v"), value, "value")

	require.NoError(t, writer.Close(), "close writer")

	// the engine stays open for the remaining clone
	_, found, err = reader.Get([]byte("k"), column.Metadata)
	require.NoError(t, err, "get after writer close")
	assert.True(t, found, "found")

	require.NoError(t, reader.Close(), "close reader")

	_, _, err = reader.Get([]byte("k"), column.Metadata)
	assert.True(t, fault.IsErrBackend(err), "engine closed")
}

func TestCloneClosedHandlePanics(t *testing.T) {
	handle := storage.NewHandle(storage.NewMemoryStore())
	require.NoError(t, handle.Close(), "close")

	assert.PanicsWithValue(t, fault.ErrNotInitialised, func() {
		handle.Clone()
	}, "clone after close")
}
