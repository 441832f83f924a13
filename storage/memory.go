// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"

	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/fault"
)

// initial arena size of a memory store
const memoryCapacity = 4096

// MemoryStore - an in-process engine holding every declared column
//
// iterators work on a snapshot of the column taken when IterAll is
// called so later writes are never visible to them
type MemoryStore struct {
	sync.RWMutex
	db     *memdb.DB
	closed bool
}

// NewMemoryStore - empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		db: memdb.New(comparer.DefaultComparer, memoryCapacity),
	}
}

func (m *MemoryStore) check(c column.Column) error {
	if m.closed {
		return fault.Backend(c.Name(), fault.ErrClosed)
	}
	if !c.Valid() {
		return fault.ErrUnknownColumn
	}
	return nil
}

// must hold at least the read lock
func (m *MemoryStore) get(k []byte) ([]byte, bool) {
	value, err := m.db.Get(k)
	if nil != err {
		return nil, false
	}
	return copyValue(value), true
}

// Get - value for key
func (m *MemoryStore) Get(key []byte, c column.Column) ([]byte, bool, error) {
	m.RLock()
	defer m.RUnlock()

	if err := m.check(c); nil != err {
		return nil, false, err
	}
	value, found := m.get(columnKey(c, key))
	return value, found, nil
}

// ReadAlloc - same as Get
func (m *MemoryStore) ReadAlloc(key []byte, c column.Column) ([]byte, bool, error) {
	return m.Get(key, c)
}

// Exists - probe for key
func (m *MemoryStore) Exists(key []byte, c column.Column) (bool, error) {
	m.RLock()
	defer m.RUnlock()

	if err := m.check(c); nil != err {
		return false, err
	}
	return m.db.Contains(columnKey(c, key)), nil
}

// SizeOfValue - length of stored value
func (m *MemoryStore) SizeOfValue(key []byte, c column.Column) (int, bool, error) {
	m.RLock()
	defer m.RUnlock()

	if err := m.check(c); nil != err {
		return 0, false, err
	}
	value, err := m.db.Get(columnKey(c, key))
	if nil != err {
		return 0, false, nil
	}
	return len(value), true, nil
}

// Read - copy value into a caller supplied buffer
func (m *MemoryStore) Read(key []byte, c column.Column, buf []byte) (int, bool, error) {
	m.RLock()
	defer m.RUnlock()

	if err := m.check(c); nil != err {
		return 0, false, err
	}
	value, err := m.db.Get(columnKey(c, key))
	if nil != err {
		return 0, false, nil
	}
	if len(value) > len(buf) {
		return 0, true, fault.ErrBufferTooSmall
	}
	return copy(buf, value), true, nil
}

// Put - store a value and return the previous one
func (m *MemoryStore) Put(key []byte, c column.Column, value []byte) ([]byte, bool, error) {
	_, previous, found, err := m.Replace(key, c, value)
	return previous, found, err
}

// Write - store a value
func (m *MemoryStore) Write(key []byte, c column.Column, buf []byte) (int, error) {
	n, _, _, err := m.Replace(key, c, buf)
	return n, err
}

// Replace - store a value, return bytes written and the previous value
func (m *MemoryStore) Replace(key []byte, c column.Column, buf []byte) (int, []byte, bool, error) {
	m.Lock()
	defer m.Unlock()

	if err := m.check(c); nil != err {
		return 0, nil, false, err
	}
	if err := checkWrite(c, key); nil != err {
		return 0, nil, false, err
	}

	k := columnKey(c, key)
	previous, found := m.get(k)
	if err := m.db.Put(k, buf); nil != err {
		return 0, nil, false, fault.Backend("put", err)
	}
	return len(buf), previous, found, nil
}

// Delete - remove a key and return the removed value
func (m *MemoryStore) Delete(key []byte, c column.Column) ([]byte, bool, error) {
	m.Lock()
	defer m.Unlock()

	if err := m.check(c); nil != err {
		return nil, false, err
	}

	k := columnKey(c, key)
	previous, found := m.get(k)
	if found {
		m.db.Delete(k)
	}
	return previous, found, nil
}

// Take - same as Delete
func (m *MemoryStore) Take(key []byte, c column.Column) ([]byte, bool, error) {
	return m.Delete(key, c)
}

// IterAll - iterate a snapshot of one column
func (m *MemoryStore) IterAll(c column.Column, prefix []byte, start []byte, direction Direction) Iterator {
	m.RLock()
	defer m.RUnlock()

	if err := m.check(c); nil != err {
		return &emptyIterator{err: err}
	}

	p := planIteration(c, prefix, start)
	if p.empty {
		return &emptyIterator{}
	}

	snapshot := memdb.New(comparer.DefaultComparer, 0)
	iter := m.db.NewIterator(columnRange(c))
	for iter.Next() {
		snapshot.Put(iter.Key(), iter.Value())
	}
	iter.Release()

	return newRangeIterator(snapshot.NewIterator(nil), p, direction, nil)
}

// BatchWrite - validate every operation then apply them all
func (m *MemoryStore) BatchWrite(operations []WriteOperation) error {
	m.Lock()
	defer m.Unlock()

	for _, op := range operations {
		if err := m.check(op.Column); nil != err {
			return err
		}
		switch op.Type {
		case Insert:
			if err := checkWrite(op.Column, op.Key); nil != err {
				return err
			}
		case Remove:
		default:
			return fault.ErrInvalidOperation
		}
	}

	for _, op := range operations {
		k := columnKey(op.Column, op.Key)
		if Insert == op.Type {
			if err := m.db.Put(k, op.Value); nil != err {
				return fault.Backend("batch", err)
			}
		} else {
			m.db.Delete(k)
		}
	}
	return nil
}

// Len - number of stored entries over all columns
func (m *MemoryStore) Len() int {
	m.RLock()
	defer m.RUnlock()
	return m.db.Len()
}

// Close - discard the contents
func (m *MemoryStore) Close() error {
	m.Lock()
	defer m.Unlock()

	m.closed = true
	m.db.Reset()
	return nil
}
