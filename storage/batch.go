// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/statedb/fault"
)

// SequentialBatchWrite - apply operations one at a time
//
// for stores without native batches: this is NOT atomic, it stops at
// the first failure and the operations before it stay applied.  The
// count of applied operations is returned.
func SequentialBatchWrite(store KeyValueStore, operations []WriteOperation) (int, error) {
	for i, op := range operations {
		var err error
		switch op.Type {
		case Insert:
			_, err = store.Write(op.Key, op.Column, op.Value)
		case Remove:
			_, _, err = store.Delete(op.Key, op.Column)
		default:
			err = fault.ErrInvalidOperation
		}
		if nil != err {
			return i, err
		}
	}
	return len(operations), nil
}
