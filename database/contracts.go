// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/fault"
	"github.com/bitmark-inc/statedb/merkle"
	"github.com/bitmark-inc/statedb/storage"
)

// StateEntry - one storage slot of a contract
type StateEntry struct {
	Slot  merkle.Digest `json:"slot"`
	Value merkle.Digest `json:"value"`
}

// SetContractState - write a storage slot, returning the previous value
func (d *Database) SetContractState(view *storage.View, contract merkle.Digest, slot merkle.Digest, value merkle.Digest) (*merkle.Digest, error) {
	previous, found, err := view.Put(compositeKey(contract, slot[:]), column.ContractsState, value[:])
	if nil != err || !found {
		return nil, err
	}
	var p merkle.Digest
	if err := merkle.DigestFromBytes(&p, previous); nil != err {
		return nil, fault.ErrInvalidContractState
	}
	return &p, nil
}

// ContractState - committed value of a storage slot
func (d *Database) ContractState(contract merkle.Digest, slot merkle.Digest) (merkle.Digest, bool, error) {
	buffer := make([]byte, merkle.DigestLength)
	n, found, err := d.handle.Read(compositeKey(contract, slot[:]), column.ContractsState, buffer)
	if fault.ErrBufferTooSmall == err {
		return merkle.Digest{}, false, fault.ErrInvalidContractState
	}
	if nil != err || !found {
		return merkle.Digest{}, false, err
	}
	var value merkle.Digest
	if err := merkle.DigestFromBytes(&value, buffer[:n]); nil != err {
		return merkle.Digest{}, false, fault.ErrInvalidContractState
	}
	return value, true, nil
}

// ContractStateEntries - all committed slots of a contract in slot order
func (d *Database) ContractStateEntries(contract merkle.Digest) ([]StateEntry, error) {
	iter := d.handle.IterAll(column.ContractsState, contract[:], nil, storage.Forward)
	defer iter.Release()

	entries := []StateEntry{}
	for iter.Next() {
		k := iter.Key()
		if 2*merkle.DigestLength != len(k) {
			return nil, fault.ErrInvalidContractState
		}
		var e StateEntry
		copy(e.Slot[:], k[merkle.DigestLength:])
		if err := merkle.DigestFromBytes(&e.Value, iter.Value()); nil != err {
			return nil, fault.ErrInvalidContractState
		}
		entries = append(entries, e)
	}
	if err := iter.Error(); nil != err {
		return nil, err
	}
	return entries, nil
}
