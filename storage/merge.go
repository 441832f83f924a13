// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
)

// merge a tagged overlay sequence over a lower sequence
//
// both inputs must follow the same plan and direction; on equal keys
// the overlay entry wins and tombstones hide the key
type mergeIterator struct {
	lower     Iterator
	upper     Iterator
	direction Direction

	started bool
	done    bool
	lowerOk bool
	upperOk bool

	key   []byte
	value []byte
	err   error
}

func newMergeIterator(lower Iterator, upper Iterator, direction Direction) *mergeIterator {
	return &mergeIterator{
		lower:     lower,
		upper:     upper,
		direction: direction,
	}
}

func (m *mergeIterator) Next() bool {
	if m.done {
		return false
	}
	if !m.started {
		m.started = true
		m.lowerOk = m.lower.Next()
		m.upperOk = m.upper.Next()
	}

	for {
		if !m.lowerOk && !m.upperOk {
			return m.finish()
		}

		takeLower := !m.upperOk
		if m.lowerOk && m.upperOk {
			c := bytes.Compare(m.lower.Key(), m.upper.Key())
			if Reverse == m.direction {
				c = -c
			}
			switch {
			case c < 0:
				takeLower = true
			case 0 == c:
				// shadowed by the overlay
				m.lowerOk = m.lower.Next()
			}
		}

		if takeLower {
			m.key = m.lower.Key()
			m.value = m.lower.Value()
			m.lowerOk = m.lower.Next()
			return true
		}

		k := m.upper.Key()
		v := m.upper.Value()
		m.upperOk = m.upper.Next()
		if 0 == len(v) || tagTombstone == v[0] {
			continue
		}
		m.key = k
		m.value = v[1:]
		return true
	}
}

func (m *mergeIterator) finish() bool {
	m.done = true
	m.key = nil
	m.value = nil
	if err := m.lower.Error(); nil != err {
		m.err = err
	} else if err := m.upper.Error(); nil != err {
		m.err = err
	}
	return false
}

func (m *mergeIterator) Key() []byte {
	return m.key
}

func (m *mergeIterator) Value() []byte {
	return m.value
}

func (m *mergeIterator) Error() error {
	return m.err
}

func (m *mergeIterator) Release() {
	m.done = true
	m.lower.Release()
	m.upper.Release()
}
