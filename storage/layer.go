// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb/comparer"
	"github.com/syndtr/goleveldb/leveldb/memdb"

	"github.com/bitmark-inc/statedb/column"
)

// tag byte in front of every overlay value
const (
	tagTombstone = 0x00
	tagInsert    = 0x01
)

// initial arena size of an overlay layer
const layerCapacity = 1024

// pending writes of one transaction depth
//
// keys are column prefixed, values carry a one byte tag
type layer struct {
	db *memdb.DB
}

func newLayer() *layer {
	return &layer{
		db: memdb.New(comparer.DefaultComparer, layerCapacity),
	}
}

func (l *layer) insert(k []byte, value []byte) {
	v := make([]byte, 1, 1+len(value))
	v[0] = tagInsert
	l.db.Put(k, append(v, value...))
}

func (l *layer) remove(k []byte) {
	l.db.Put(k, []byte{tagTombstone})
}

// look up a key in this layer only
//
// found is false when the layer has no entry and the next layer down
// must be consulted, deleted is true for a tombstone
//
// value aliases the layer's memory and must be copied before it
// leaves the package
func (l *layer) lookup(k []byte) (value []byte, deleted bool, found bool) {
	v, err := l.db.Get(k)
	if nil != err {
		return nil, false, false
	}
	if 0 == len(v) || tagTombstone == v[0] {
		return nil, true, true
	}
	return v[1:], false, true
}

// copy one column of this layer so iteration does not see later writes
func (l *layer) snapshot(c column.Column) *memdb.DB {
	s := memdb.New(comparer.DefaultComparer, 0)
	iter := l.db.NewIterator(columnRange(c))
	defer iter.Release()
	for iter.Next() {
		s.Put(iter.Key(), iter.Value())
	}
	return s
}

// fold all entries of this layer into another, later entries win
func (l *layer) mergeInto(parent *layer) {
	iter := l.db.NewIterator(nil)
	defer iter.Release()
	for iter.Next() {
		parent.db.Put(iter.Key(), iter.Value())
	}
}

// all entries as batch operations in key order
func (l *layer) operations() []WriteOperation {
	operations := make([]WriteOperation, 0, l.db.Len())

	iter := l.db.NewIterator(nil)
	defer iter.Release()
	for iter.Next() {
		k := iter.Key()
		v := iter.Value()
		c := column.Column(binary.BigEndian.Uint32(k[:columnIDSize]))
		key := dataKey(k)
		if 0 == len(v) || tagTombstone == v[0] {
			operations = append(operations, RemoveOperation(key, c))
		} else {
			operations = append(operations, InsertOperation(key, c, copyValue(v[1:])))
		}
	}
	return operations
}
