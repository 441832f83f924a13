// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
)

const lockStripes = 256

// striped per-key write locks
//
// a nil *keyLocks does no locking
type keyLocks struct {
	stripes [lockStripes]sync.Mutex
}

func nothing() {}

func stripe(key []byte) int {
	return int(xxhash.Sum64(key) % lockStripes)
}

// lock the stripe of a key and return its unlock
func (l *keyLocks) lock(key []byte) func() {
	if nil == l {
		return nothing
	}
	m := &l.stripes[stripe(key)]
	m.Lock()
	return m.Unlock
}

// lock the stripes of all keys in ascending stripe order
func (l *keyLocks) lockAll(keys [][]byte) func() {
	if nil == l || 0 == len(keys) {
		return nothing
	}

	seen := make(map[int]struct{}, len(keys))
	indices := make([]int, 0, len(keys))
	for _, k := range keys {
		s := stripe(k)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		indices = append(indices, s)
	}
	sort.Ints(indices)

	for _, s := range indices {
		l.stripes[s].Lock()
	}
	return func() {
		for i := len(indices) - 1; i >= 0; i -= 1 {
			l.stripes[indices[i]].Unlock()
		}
	}
}
