// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/storage"
)

const racingWriters = 32

// concurrent puts to one key, returning every previous value seen
func racePuts(t *testing.T, db storage.KeyValueStore) ([]string, string) {
	key := []byte("contended")

	var wg sync.WaitGroup
	var mu sync.Mutex
	previous := make([]string, 0, racingWriters)

	for i := 0; i < racingWriters; i += 1 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value, found, err := db.Put(key, column.ContractsInfo, []byte(fmt.Sprintf("writer-%02d", i)))
			assert.NoError(t, err, "put")
			if found {
				mu.Lock()
				previous = append(previous, string(value))
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	final, found, err := db.Get(key, column.ContractsInfo)
	require.NoError(t, err, "get")
	require.True(t, found, "found")
	return previous, string(final)
}

// with serialised read-modify-write the previous values form a chain:
// every value except the final one is returned as previous exactly once
func TestSerializedPutChain(t *testing.T) {
	db, _ := openTestDB(t, &storage.Options{SerializeReadModifyWrite: true})
	defer db.Close()

	previous, final := racePuts(t, db)
	assert.Len(t, previous, racingWriters-1, "one put saw no previous value")

	seen := make(map[string]struct{}, len(previous))
	for _, p := range previous {
		_, duplicate := seen[p]
		assert.False(t, duplicate, "previous value returned twice: %s", p)
		seen[p] = struct{}{}
	}
	_, overwritten := seen[final]
	assert.False(t, overwritten, "final value reported as overwritten")
}

// without locks the window exists: only the weaker guarantees hold
func TestUnserializedPut(t *testing.T) {
	db, _ := openTestDB(t, nil)
	defer db.Close()

	previous, final := racePuts(t, db)
	assert.NotEmpty(t, previous, "some put saw a previous value")
	assert.LessOrEqual(t, len(previous), racingWriters, "previous values")
	assert.Regexp(t, `^writer-\d\d$`, final, "final value")
}
