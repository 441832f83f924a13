// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync/atomic"

	"github.com/bitmark-inc/statedb/counter"
	"github.com/bitmark-inc/statedb/fault"
)

// Handle - shared reference to an engine
//
// every subsystem holds its own clone; the engine is closed when the
// last clone is closed
type Handle struct {
	TransactableStorage
	references *counter.Counter
	closed     int32
}

// NewHandle - first reference to an engine
func NewHandle(store TransactableStorage) *Handle {
	return &Handle{
		TransactableStorage: store,
		references:          counter.New(),
	}
}

// Clone - another reference to the same engine
func (h *Handle) Clone() *Handle {
	if 0 != atomic.LoadInt32(&h.closed) || !h.references.Acquire() {
		fault.Panic(fault.ErrNotInitialised)
	}
	return &Handle{
		TransactableStorage: h.TransactableStorage,
		references:          h.references,
	}
}

// References - number of open clones
func (h *Handle) References() int {
	return int(h.references.Uint64())
}

// Close - release this reference, the last one closes the engine
func (h *Handle) Close() error {
	if !atomic.CompareAndSwapInt32(&h.closed, 0, 1) {
		return fault.ErrNotInitialised
	}
	if h.references.Release() {
		return h.TransactableStorage.Close()
	}
	return nil
}

// Begin - outermost view over this engine
func (h *Handle) Begin() *View {
	return NewTransaction(h.TransactableStorage)
}

// Transaction - run fn in a new transaction, committing on success
//
// an error from fn aborts the transaction and is returned unchanged
func (h *Handle) Transaction(fn func(*View) error) error {
	return h.Begin().run(fn)
}
