// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package column - the closed set of logical tables in the state database
//
// Each column is an independent keyspace identified by a small stable
// integer.  The integer is persisted as part of every key and as the
// name of the column family, so existing values must never be
// renumbered; new columns are only ever appended.
package column

import (
	"fmt"

	"github.com/bitmark-inc/statedb/fault"
)

// Column - identifier of a logical table
type Column uint32

// the declared columns - append only, never renumber
const (
	Metadata Column = iota
	ContractsRawCode
	ContractsInfo
	ContractsState
	ContractsLatestUtxo
	ContractsAssets
	Coins
	OwnedCoins
	Transactions
	TransactionStatus
	TransactionsByOwnerBlockIdx
	Receipts
	FuelBlocks
	FuelBlockSecondaryKeyBlockHeights
	Messages
	OwnedMessageIds
	FuelBlockConsensus
	FuelBlockMerkleData
	FuelBlockMerkleMetadata

	// must be last
	count
)

// EntityPrefixLength - bytes of the entity identifier (address or
// contract id) at the front of composite keys
const EntityPrefixLength = 32

// static configuration of one column
type descriptor struct {
	ID           Column
	Label        string
	PrefixLength int // 0 => no prefix extraction
}

var registry = [count]descriptor{
	{Metadata, "Metadata", 0},
	{ContractsRawCode, "ContractsRawCode", 0},
	{ContractsInfo, "ContractsInfo", 0},
	{ContractsState, "ContractsState", EntityPrefixLength},
	{ContractsLatestUtxo, "ContractsLatestUtxo", 0},
	{ContractsAssets, "ContractsAssets", EntityPrefixLength},
	{Coins, "Coins", 0},
	{OwnedCoins, "OwnedCoins", EntityPrefixLength},
	{Transactions, "Transactions", 0},
	{TransactionStatus, "TransactionStatus", 0},
	{TransactionsByOwnerBlockIdx, "TransactionsByOwnerBlockIdx", EntityPrefixLength},
	{Receipts, "Receipts", 0},
	{FuelBlocks, "FuelBlocks", 0},
	{FuelBlockSecondaryKeyBlockHeights, "FuelBlockSecondaryKeyBlockHeights", 0},
	{Messages, "Messages", 0},
	{OwnedMessageIds, "OwnedMessageIds", EntityPrefixLength},
	{FuelBlockConsensus, "FuelBlockConsensus", 0},
	{FuelBlockMerkleData, "FuelBlockMerkleData", 0},
	{FuelBlockMerkleMetadata, "FuelBlockMerkleMetadata", 0},
}

// ensure the table is in id order, a mistake here would silently
// redirect data to the wrong namespace
func init() {
	for i, d := range registry {
		if Column(i) != d.ID {
			panic(fmt.Sprintf("column registry out of order at: %d  found: %d", i, d.ID))
		}
	}
}

// All - every declared column in id order
func All() []Column {
	all := make([]Column, 0, count)
	for _, d := range registry {
		all = append(all, d.ID)
	}
	return all
}

// Valid - check if column is declared
func (c Column) Valid() bool {
	return c < count
}

// Name - the persisted namespace name, derived only from the id
func (c Column) Name() string {
	return fmt.Sprintf("column-%d", uint32(c))
}

// PrefixLength - fixed prefix extractor length, 0 if none
func (c Column) PrefixLength() int {
	if !c.Valid() {
		return 0
	}
	return registry[c].PrefixLength
}

// IsPrefixIndexed - column carries composite keys
func (c Column) IsPrefixIndexed() bool {
	return c.PrefixLength() > 0
}

// String - label for logging and tools
func (c Column) String() string {
	if !c.Valid() {
		return fmt.Sprintf("*Unknown-%d*", uint32(c))
	}
	return registry[c].Label
}

// FromName - reverse of Name
func FromName(name string) (Column, error) {
	var id uint32
	n, err := fmt.Sscanf(name, "column-%d", &id)
	if nil != err || 1 != n || Column(id).Name() != name {
		return 0, fault.ErrUnknownColumn
	}
	if !Column(id).Valid() {
		return 0, fault.ErrUnknownColumn
	}
	return Column(id), nil
}

// FromLabel - find a column by its label (case sensitive) or its
// namespace name
func FromLabel(label string) (Column, error) {
	for _, d := range registry {
		if label == d.Label {
			return d.ID, nil
		}
	}
	return FromName(label)
}

// Validate - compare the names of the families found on disk against
// the declared schema
//
// returns the declared columns that are not yet persisted, or
// fault.ErrSchemaDrift if anything persisted is not declared
func Validate(persisted []string) ([]Column, error) {
	present := make(map[Column]struct{}, len(persisted))
	for _, name := range persisted {
		c, err := FromName(name)
		if nil != err {
			return nil, fault.ErrSchemaDrift
		}
		present[c] = struct{}{}
	}

	missing := make([]Column, 0, count)
	for _, c := range All() {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing, nil
}
