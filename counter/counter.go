// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free reference counting
package counter

import (
	"sync/atomic"

	"github.com/bitmark-inc/statedb/fault"
)

// Counter - number of live references, never negative
type Counter uint64

// New - a counter holding its first reference
func New() *Counter {
	c := Counter(1)
	return &c
}

// Acquire - add a reference unless the count already reached zero
//
// a zero count means the resource was released and cannot be revived
func (c *Counter) Acquire() bool {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if 0 == n {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n+1) {
			return true
		}
	}
}

// Release - drop a reference, true when it was the last one
//
// releasing more references than were acquired is a programming error
func (c *Counter) Release() bool {
	for {
		n := atomic.LoadUint64((*uint64)(c))
		if 0 == n {
			fault.Panic(fault.ErrNotInitialised)
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), n, n-1) {
			return 1 == n
		}
	}
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
