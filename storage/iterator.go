// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"

	"github.com/syndtr/goleveldb/leveldb/iterator"

	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/fault"
	"github.com/bitmark-inc/statedb/metrics"
)

// where an iteration starts and where it must stop
//
// all engines and the transaction overlays share this so that every
// layer yields exactly the same key sequence
type plan struct {
	empty bool   // prefix and start disagree: nothing to yield
	start []byte // column prefixed seek key, nil => column edge
	bound []byte // column prefixed prefix every key must carry, nil => none
}

// decide the iteration plan for a column
//
//   (nil, nil)       whole column
//   (prefix, nil)    seek to prefix, same-prefix hint bounds composite
//                    key columns to the entity id
//   (nil, start)     seek to start, no bound
//   (prefix, start)  empty unless start has prefix, then seek to start
//                    and stop at the first key without prefix
func planIteration(c column.Column, prefix []byte, start []byte) plan {
	switch {
	case nil == prefix && nil == start:
		return plan{}

	case nil == start:
		p := plan{
			start: columnKey(c, prefix),
		}
		if c.IsPrefixIndexed() && len(prefix) >= c.PrefixLength() {
			p.bound = columnKey(c, prefix[:c.PrefixLength()])
		}
		return p

	case nil == prefix:
		return plan{
			start: columnKey(c, start),
		}

	default:
		if !bytes.HasPrefix(start, prefix) {
			return plan{empty: true}
		}
		return plan{
			start: columnKey(c, start),
			bound: columnKey(c, prefix),
		}
	}
}

// directional iterator over one column of a goleveldb style iterator
type rangeIterator struct {
	iter      iterator.Iterator
	direction Direction
	plan      plan
	metrics   *metrics.DatabaseMetrics

	started bool
	done    bool
	key     []byte
	value   []byte
	err     error
}

// the iterator must already be restricted to the column range
func newRangeIterator(iter iterator.Iterator, p plan, direction Direction, m *metrics.DatabaseMetrics) *rangeIterator {
	return &rangeIterator{
		iter:      iter,
		direction: direction,
		plan:      p,
		metrics:   m,
	}
}

func (r *rangeIterator) Next() bool {
	if r.done {
		return false
	}

	var ok bool
	if !r.started {
		r.started = true
		ok = r.position()
	} else if Forward == r.direction {
		ok = r.iter.Next()
	} else {
		ok = r.iter.Prev()
	}

	if !ok {
		return r.finish()
	}

	// contents of the returned slice must not be modified, and are
	// only valid until the next call to Next
	k := r.iter.Key()
	if nil != r.plan.bound && !bytes.HasPrefix(k, r.plan.bound) {
		return r.finish()
	}

	r.key = dataKey(k)
	r.value = copyValue(r.iter.Value())
	r.metrics.ReadBytes(len(r.key) + len(r.value))
	return true
}

// first positioning of the cursor
func (r *rangeIterator) position() bool {
	start := r.plan.start
	switch {
	case nil == start && Forward == r.direction:
		return r.iter.First()
	case nil == start:
		return r.iter.Last()
	case Forward == r.direction:
		return r.iter.Seek(start)
	}

	// reverse from start: the last key not greater than start
	if r.iter.Seek(start) {
		if bytes.Equal(r.iter.Key(), start) {
			return true
		}
		return r.iter.Prev()
	}
	return r.iter.Last()
}

func (r *rangeIterator) finish() bool {
	r.done = true
	r.key = nil
	r.value = nil
	if err := r.iter.Error(); nil != err && nil == r.err {
		r.err = fault.Backend("iterate", err)
	}
	return false
}

func (r *rangeIterator) Key() []byte {
	return r.key
}

func (r *rangeIterator) Value() []byte {
	return r.value
}

func (r *rangeIterator) Error() error {
	return r.err
}

func (r *rangeIterator) Release() {
	r.done = true
	r.iter.Release()
}

// a sequence with nothing in it
type emptyIterator struct {
	err error
}

func (e *emptyIterator) Next() bool    { return false }
func (e *emptyIterator) Key() []byte   { return nil }
func (e *emptyIterator) Value() []byte { return nil }
func (e *emptyIterator) Error() error  { return e.err }
func (e *emptyIterator) Release()      {}
