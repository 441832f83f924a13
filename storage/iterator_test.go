// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/storage"
)

// keys of a plain column
var plainKeys = []string{"a-1", "a-2", "a-3", "b-1", "b-2", "c-1"}

func fillPlain(t *testing.T, db storage.KeyValueStore) {
	for _, k := range plainKeys {
		_, err := db.Write([]byte(k), column.Metadata, []byte("v"+k))
		require.NoError(t, err, "write")
	}
	// neighbouring columns must never leak into an iteration
	_, err := db.Write([]byte("a-0"), column.ContractsRawCode, []byte("x"))
	require.NoError(t, err, "write")
}

func TestIterateWholeColumn(t *testing.T) {
	for name, db := range engines(t) {
		fillPlain(t, db)

		forward := collect(t, db.IterAll(column.Metadata, nil, nil, storage.Forward))
		assert.Equal(t, plainKeys, keysOf(forward), name)
		assert.Equal(t, "va-1", forward[0].value, name)

		reverse := collect(t, db.IterAll(column.Metadata, nil, nil, storage.Reverse))
		assert.Equal(t, []string{"c-1", "b-2", "b-1", "a-3", "a-2", "a-1"}, keysOf(reverse), name)
	}
}

func TestIterateFromStart(t *testing.T) {
	for name, db := range engines(t) {
		fillPlain(t, db)

		forward := collect(t, db.IterAll(column.Metadata, nil, []byte("a-3"), storage.Forward))
		assert.Equal(t, []string{"a-3", "b-1", "b-2", "c-1"}, keysOf(forward), name)

		// start between keys
		forward = collect(t, db.IterAll(column.Metadata, nil, []byte("a-25"), storage.Forward))
		assert.Equal(t, []string{"a-3", "b-1", "b-2", "c-1"}, keysOf(forward), name)

		// reverse includes an exact start key
		reverse := collect(t, db.IterAll(column.Metadata, nil, []byte("b-1"), storage.Reverse))
		assert.Equal(t, []string{"b-1", "a-3", "a-2", "a-1"}, keysOf(reverse), name)

		// reverse from between keys starts at the key before
		reverse = collect(t, db.IterAll(column.Metadata, nil, []byte("a-25"), storage.Reverse))
		assert.Equal(t, []string{"a-2", "a-1"}, keysOf(reverse), name)

		// reverse from beyond the last key starts at the last key
		reverse = collect(t, db.IterAll(column.Metadata, nil, []byte("z"), storage.Reverse))
		assert.Equal(t, []string{"c-1", "b-2", "b-1", "a-3", "a-2", "a-1"}, keysOf(reverse), name)

		// forward from beyond the last key is empty
		assert.Empty(t, collect(t, db.IterAll(column.Metadata, nil, []byte("z"), storage.Forward)), name)
	}
}

func TestIteratePrefixHintOnPlainColumn(t *testing.T) {
	for name, db := range engines(t) {
		fillPlain(t, db)

		// a plain column has no prefix extractor so the prefix is a
		// seek position only
		forward := collect(t, db.IterAll(column.Metadata, []byte("b"), nil, storage.Forward))
		assert.Equal(t, []string{"b-1", "b-2", "c-1"}, keysOf(forward), name)
	}
}

func TestIteratePrefixAndStart(t *testing.T) {
	for name, db := range engines(t) {
		fillPlain(t, db)

		forward := collect(t, db.IterAll(column.Metadata, []byte("a"), []byte("a-2"), storage.Forward))
		assert.Equal(t, []string{"a-2", "a-3"}, keysOf(forward), name)

		reverse := collect(t, db.IterAll(column.Metadata, []byte("b"), []byte("b-2"), storage.Reverse))
		assert.Equal(t, []string{"b-2", "b-1"}, keysOf(reverse), name)

		// start must carry the prefix
		assert.Empty(t, collect(t, db.IterAll(column.Metadata, []byte("a"), []byte("b-1"), storage.Forward)), name)
		assert.Empty(t, collect(t, db.IterAll(column.Metadata, []byte("b"), []byte("a-1"), storage.Reverse)), name)
	}
}

func TestIterateCompositeKeys(t *testing.T) {
	for name, db := range engines(t) {
		for _, owner := range []byte{1, 2, 3} {
			for _, utxo := range []string{"x", "y", "z"} {
				_, err := db.Write(composite(owner, utxo), column.OwnedCoins, []byte{owner})
				require.NoError(t, err, name)
			}
		}

		// the entity prefix bounds the iteration to one owner
		forward := collect(t, db.IterAll(column.OwnedCoins, entity(2), nil, storage.Forward))
		assert.Equal(t, []string{
			string(composite(2, "x")),
			string(composite(2, "y")),
			string(composite(2, "z")),
		}, keysOf(forward), name)

		// a longer prefix is still bounded to the entity
		forward = collect(t, db.IterAll(column.OwnedCoins, composite(2, "y"), nil, storage.Forward))
		assert.Equal(t, []string{
			string(composite(2, "y")),
			string(composite(2, "z")),
		}, keysOf(forward), name)

		// reverse within one owner needs a start key
		reverse := collect(t, db.IterAll(column.OwnedCoins, entity(2), composite(2, "\xff"), storage.Reverse))
		assert.Equal(t, []string{
			string(composite(2, "z")),
			string(composite(2, "y")),
			string(composite(2, "x")),
		}, keysOf(reverse), name)

		// unknown owner
		assert.Empty(t, collect(t, db.IterAll(column.OwnedCoins, entity(9), nil, storage.Forward)), name)
	}
}

func TestIteratorSnapshot(t *testing.T) {
	for name, db := range engines(t) {
		fillPlain(t, db)

		iter := db.IterAll(column.Metadata, nil, nil, storage.Forward)
		_, err := db.Write([]byte("0-new"), column.Metadata, []byte("late"))
		require.NoError(t, err, name)

		keys := keysOf(collect(t, iter))
		assert.Equal(t, plainKeys, keys, name)
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "Forward", storage.Forward.String())
	assert.Equal(t, "Reverse", storage.Reverse.String())
	assert.Equal(t, "*Unknown*", storage.Direction(7).String())
}
