// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/fault"
)

// ViewState - lifecycle of a view
type ViewState int

// view states, ViewCommitted and ViewAborted are terminal
const (
	ViewOpen ViewState = iota
	ViewCommitted
	ViewAborted
)

func (s ViewState) String() string {
	switch s {
	case ViewOpen:
		return "Open"
	case ViewCommitted:
		return "Committed"
	case ViewAborted:
		return "Aborted"
	default:
		return "*Unknown*"
	}
}

// Transaction - the pending layers of one outermost transaction
//
// layers[d] holds the writes of the view at depth d
type Transaction struct {
	base   BatchOperations
	layers []*layer
	views  []*View
}

// View - one nesting depth of a transaction
//
// a view belongs to a single goroutine
type View struct {
	tx    *Transaction
	depth int
	state ViewState
}

// NewTransaction - outermost view over a base store
func NewTransaction(base BatchOperations) *View {
	tx := &Transaction{
		base: base,
	}
	return tx.push()
}

func (tx *Transaction) push() *View {
	v := &View{
		tx:    tx,
		depth: len(tx.layers),
		state: ViewOpen,
	}
	tx.layers = append(tx.layers, newLayer())
	tx.views = append(tx.views, v)
	return v
}

// drop the top layer
func (tx *Transaction) pop() {
	n := len(tx.layers) - 1
	tx.layers[n] = nil
	tx.views[n] = nil
	tx.layers = tx.layers[:n]
	tx.views = tx.views[:n]
}

// State - current lifecycle state
func (v *View) State() ViewState {
	return v.state
}

// Depth - 0 for the outermost view
func (v *View) Depth() int {
	return v.depth
}

func (v *View) mustBeOpen() {
	if ViewOpen != v.state {
		fault.Panic(fault.ErrTransactionClosed)
	}
}

// open and without an open child
func (v *View) mustBeTop() {
	v.mustBeOpen()
	if v.depth != len(v.tx.layers)-1 {
		fault.Panic(fault.ErrTransactionNested)
	}
}

// Begin - open a nested view
func (v *View) Begin() *View {
	v.mustBeTop()
	return v.tx.push()
}

// Commit - publish the writes of this view
//
// the outermost view writes everything to the base store as one batch,
// a nested view folds its writes into its parent; a failed batch leaves
// the view aborted
func (v *View) Commit() error {
	v.mustBeTop()

	l := v.tx.layers[v.depth]
	if v.depth > 0 {
		l.mergeInto(v.tx.layers[v.depth-1])
		v.tx.pop()
		v.state = ViewCommitted
		return nil
	}

	operations := l.operations()
	v.tx.pop()

	if 0 != len(operations) {
		if err := v.tx.base.BatchWrite(operations); nil != err {
			v.state = ViewAborted
			return err
		}
	}
	v.state = ViewCommitted
	return nil
}

// Abort - discard this view and any open nested views
func (v *View) Abort() {
	v.mustBeOpen()
	for len(v.tx.layers) > v.depth {
		v.tx.views[len(v.tx.views)-1].state = ViewAborted
		v.tx.pop()
	}
}

// Run - execute fn in a nested view
//
// an error from fn aborts the nested view and is returned unchanged,
// fault.ErrTransactionAborted is the conventional deliberate abort
func (v *View) Run(fn func(*View) error) error {
	return v.Begin().run(fn)
}

// run fn in this view then commit or abort it
func (v *View) run(fn func(*View) error) error {
	err := fn(v)
	if nil != err {
		if ViewOpen == v.state {
			v.Abort()
		}
		return err
	}

	switch v.state {
	case ViewCommitted:
		return nil
	case ViewAborted:
		return fault.ErrTransactionAborted
	}
	return v.Commit()
}

// newest layer entry for a key, layered is false when no layer has
// one and the base must be consulted
func (v *View) find(key []byte, c column.Column) (value []byte, deleted bool, layered bool, err error) {
	v.mustBeOpen()
	if !c.Valid() {
		return nil, false, false, fault.ErrUnknownColumn
	}

	k := columnKey(c, key)
	for d := v.depth; d >= 0; d -= 1 {
		value, deleted, found := v.tx.layers[d].lookup(k)
		if found {
			return value, deleted, true, nil
		}
	}
	return nil, false, false, nil
}

func (v *View) get(key []byte, c column.Column) ([]byte, bool, error) {
	value, deleted, layered, err := v.find(key, c)
	if nil != err {
		return nil, false, err
	}
	if !layered {
		return v.tx.base.Get(key, c)
	}
	if deleted {
		return nil, false, nil
	}
	return copyValue(value), true, nil
}

// Get - value for key
func (v *View) Get(key []byte, c column.Column) ([]byte, bool, error) {
	return v.get(key, c)
}

// ReadAlloc - same as Get
func (v *View) ReadAlloc(key []byte, c column.Column) ([]byte, bool, error) {
	return v.get(key, c)
}

// Exists - probe for key
func (v *View) Exists(key []byte, c column.Column) (bool, error) {
	_, deleted, layered, err := v.find(key, c)
	if nil != err {
		return false, err
	}
	if !layered {
		return v.tx.base.Exists(key, c)
	}
	return !deleted, nil
}

// SizeOfValue - length of stored value
func (v *View) SizeOfValue(key []byte, c column.Column) (int, bool, error) {
	value, deleted, layered, err := v.find(key, c)
	if nil != err {
		return 0, false, err
	}
	if !layered {
		return v.tx.base.SizeOfValue(key, c)
	}
	if deleted {
		return 0, false, nil
	}
	return len(value), true, nil
}

// Read - copy value into a caller supplied buffer
func (v *View) Read(key []byte, c column.Column, buf []byte) (int, bool, error) {
	value, deleted, layered, err := v.find(key, c)
	if nil != err {
		return 0, false, err
	}
	if !layered {
		return v.tx.base.Read(key, c, buf)
	}
	if deleted {
		return 0, false, nil
	}
	if len(value) > len(buf) {
		return 0, true, fault.ErrBufferTooSmall
	}
	return copy(buf, value), true, nil
}

// Put - store a value and return the previous one
func (v *View) Put(key []byte, c column.Column, value []byte) ([]byte, bool, error) {
	_, previous, found, err := v.Replace(key, c, value)
	return previous, found, err
}

// Write - store a value
func (v *View) Write(key []byte, c column.Column, buf []byte) (int, error) {
	v.mustBeTop()
	if err := checkWrite(c, key); nil != err {
		return 0, err
	}
	v.tx.layers[v.depth].insert(columnKey(c, key), buf)
	return len(buf), nil
}

// Replace - store a value, return bytes written and the previous value
func (v *View) Replace(key []byte, c column.Column, buf []byte) (int, []byte, bool, error) {
	v.mustBeTop()
	if err := checkWrite(c, key); nil != err {
		return 0, nil, false, err
	}
	previous, found, err := v.get(key, c)
	if nil != err {
		return 0, nil, false, err
	}
	v.tx.layers[v.depth].insert(columnKey(c, key), buf)
	return len(buf), previous, found, nil
}

// Delete - remove a key and return the removed value
func (v *View) Delete(key []byte, c column.Column) ([]byte, bool, error) {
	v.mustBeTop()
	previous, found, err := v.get(key, c)
	if nil != err {
		return nil, false, err
	}
	v.tx.layers[v.depth].remove(columnKey(c, key))
	return previous, found, nil
}

// Take - same as Delete
func (v *View) Take(key []byte, c column.Column) ([]byte, bool, error) {
	return v.Delete(key, c)
}

// IterAll - base store iteration with this view's pending writes applied
func (v *View) IterAll(c column.Column, prefix []byte, start []byte, direction Direction) Iterator {
	v.mustBeOpen()
	if !c.Valid() {
		return &emptyIterator{err: fault.ErrUnknownColumn}
	}

	p := planIteration(c, prefix, start)
	if p.empty {
		return &emptyIterator{}
	}

	var iter Iterator = v.tx.base.IterAll(c, prefix, start, direction)
	for d := 0; d <= v.depth; d += 1 {
		snapshot := v.tx.layers[d].snapshot(c)
		overlay := newRangeIterator(snapshot.NewIterator(nil), p, direction, nil)
		iter = newMergeIterator(iter, overlay, direction)
	}
	return iter
}

// BatchWrite - apply operations to this view
func (v *View) BatchWrite(operations []WriteOperation) error {
	v.mustBeTop()
	for _, op := range operations {
		if Insert == op.Type {
			if err := checkWrite(op.Column, op.Key); nil != err {
				return err
			}
		} else if Remove != op.Type {
			return fault.ErrInvalidOperation
		} else if !op.Column.Valid() {
			return fault.ErrUnknownColumn
		}
	}
	l := v.tx.layers[v.depth]
	for _, op := range operations {
		if Insert == op.Type {
			l.insert(columnKey(op.Column, op.Key), op.Value)
		} else {
			l.remove(columnKey(op.Column, op.Key))
		}
	}
	return nil
}
