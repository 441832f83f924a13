// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/fault"
)

// bytes of column id in front of every stored key
const columnIDSize = 4

// prepend the column id onto the key
func columnKey(c column.Column, key []byte) []byte {
	k := make([]byte, columnIDSize, columnIDSize+len(key))
	binary.BigEndian.PutUint32(k, uint32(c))
	return append(k, key...)
}

// key range holding exactly one column
func columnRange(c column.Column) *ldb_util.Range {
	start := make([]byte, columnIDSize)
	binary.BigEndian.PutUint32(start, uint32(c))

	// reserved registry id is never a declared column so c+1 cannot wrap
	limit := make([]byte, columnIDSize)
	binary.BigEndian.PutUint32(limit, uint32(c)+1)

	return &ldb_util.Range{
		Start: start, // Start of key range, included in the range
		Limit: limit, // Limit of key range, excluded from the range
	}
}

// strip the column id, result is a copy
func dataKey(k []byte) []byte {
	key := make([]byte, len(k)-columnIDSize)
	copy(key, k[columnIDSize:])
	return key
}

// copy a value, never returning nil for an empty value
func copyValue(v []byte) []byte {
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

// validate a key before it is written
//
// composite key columns need the whole entity id in front of every key
// or prefix iteration becomes meaningless
func checkWrite(c column.Column, key []byte) error {
	if !c.Valid() {
		return fault.ErrUnknownColumn
	}
	if n := c.PrefixLength(); len(key) < n {
		return fault.ErrInvalidPrefixKey
	}
	return nil
}
