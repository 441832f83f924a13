// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/statedb/database"
	"github.com/bitmark-inc/statedb/fault"
	"github.com/bitmark-inc/statedb/merkle"
	"github.com/bitmark-inc/statedb/storage"
)

func coinsFor(owner merkle.Digest, tx string, n int) []*database.Coin {
	coins := make([]*database.Coin, 0, n)
	for i := 0; i < n; i += 1 {
		coins = append(coins, &database.Coin{
			UtxoID:       database.NewUtxoID(txID(tx), uint8(i)),
			Owner:        owner,
			AssetID:      txID("asset"),
			Amount:       uint64(1000 + i),
			BlockCreated: 1,
		})
	}
	return coins
}

func TestCoins(t *testing.T) {
	db := setup(t)

	alice := txID("alice")
	bob := txID("bob")
	aliceCoins := coinsFor(alice, "funding", 4)
	bobCoins := coinsFor(bob, "funding", 1)

	err := db.Handle().Transaction(func(view *storage.View) error {
		for _, c := range append(aliceCoins, bobCoins...) {
			if err := db.PutCoin(view, c); nil != err {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err, "put coins")

	coin, err := db.Coin(aliceCoins[2].UtxoID)
	require.NoError(t, err, "coin")
	assert.Equal(t, aliceCoins[2], coin, "stored coin")
	assert.Equal(t, uint8(2), coin.UtxoID.OutputIndex(), "output index")
	assert.Equal(t, txID("funding"), coin.UtxoID.TransactionID(), "transaction id")

	owned, err := db.OwnedCoins(alice, nil, storage.Forward, 10)
	require.NoError(t, err, "owned")
	assert.Equal(t, []database.UtxoID{
		aliceCoins[0].UtxoID,
		aliceCoins[1].UtxoID,
		aliceCoins[2].UtxoID,
		aliceCoins[3].UtxoID,
	}, owned, "all of alice's coins only")

	owned, err = db.OwnedCoins(alice, nil, storage.Reverse, 2)
	require.NoError(t, err, "owned reverse")
	assert.Equal(t, []database.UtxoID{aliceCoins[3].UtxoID, aliceCoins[2].UtxoID}, owned, "last two")

	owned, err = db.OwnedCoins(alice, &aliceCoins[1].UtxoID, storage.Forward, 2)
	require.NoError(t, err, "owned from start")
	assert.Equal(t, []database.UtxoID{aliceCoins[1].UtxoID, aliceCoins[2].UtxoID}, owned, "page")

	owned, err = db.OwnedCoins(bob, nil, storage.Reverse, 10)
	require.NoError(t, err, "bob")
	assert.Equal(t, []database.UtxoID{bobCoins[0].UtxoID}, owned, "bob's coin")

	_, err = db.OwnedCoins(alice, nil, storage.Forward, 0)
	assert.Equal(t, fault.ErrInvalidCount, err, "count")
}

func TestSpendCoin(t *testing.T) {
	db := setup(t)

	owner := txID("owner")
	coins := coinsFor(owner, "spend", 2)

	err := db.Handle().Transaction(func(view *storage.View) error {
		for _, c := range coins {
			if err := db.PutCoin(view, c); nil != err {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err, "put coins")

	err = db.Handle().Transaction(func(view *storage.View) error {
		spent, err := db.SpendCoin(view, coins[0].UtxoID)
		if nil != err {
			return err
		}
		assert.Equal(t, coins[0], spent, "spent coin")

		_, err = db.SpendCoin(view, coins[0].UtxoID)
		assert.Equal(t, fault.ErrCoinNotFound, err, "double spend in one view")
		return nil
	})
	require.NoError(t, err, "spend")

	_, err = db.Coin(coins[0].UtxoID)
	assert.Equal(t, fault.ErrCoinNotFound, err, "spent")

	owned, err := db.OwnedCoins(owner, nil, storage.Forward, 10)
	require.NoError(t, err, "owned")
	assert.Equal(t, []database.UtxoID{coins[1].UtxoID}, owned, "index updated")
}

func TestContractState(t *testing.T) {
	db := setup(t)

	contract := txID("contract")
	other := txID("other")
	slots := []merkle.Digest{txID("slot-2"), txID("slot-1")}

	err := db.Handle().Transaction(func(view *storage.View) error {
		for i, slot := range slots {
			previous, err := db.SetContractState(view, contract, slot, txID(string(rune('a'+i))))
			if nil != err {
				return err
			}
			assert.Nil(t, previous, "new slot")
		}
		_, err := db.SetContractState(view, other, slots[0], txID("other-value"))
		return err
	})
	require.NoError(t, err, "set state")

	value, found, err := db.ContractState(contract, slots[1])
	require.NoError(t, err, "get")
	assert.True(t, found, "found")
	assert.Equal(t, txID("b"), value, "value")

	_, found, err = db.ContractState(contract, txID("missing"))
	require.NoError(t, err, "get missing")
	assert.False(t, found, "missing")

	err = db.Handle().Transaction(func(view *storage.View) error {
		previous, err := db.SetContractState(view, contract, slots[0], txID("z"))
		if nil != err {
			return err
		}
		assert.Equal(t, txID("a"), *previous, "previous value")
		return nil
	})
	require.NoError(t, err, "overwrite")

	entries, err := db.ContractStateEntries(contract)
	require.NoError(t, err, "entries")
	require.Len(t, entries, 2, "only this contract")

	// slot order
	first, second := slots[0], slots[1]
	if string(second[:]) < string(first[:]) {
		first, second = second, first
	}
	assert.Equal(t, first, entries[0].Slot, "first slot")
	assert.Equal(t, second, entries[1].Slot, "second slot")
}

func TestUtxoIDText(t *testing.T) {
	u := database.NewUtxoID(txID("funding"), 7)

	buffer, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Equal(t, `"`+u.String()+`"`, string(buffer))
	assert.True(t, strings.HasSuffix(u.String(), "07"), "index is the last byte")

	var decoded database.UtxoID
	require.NoError(t, json.Unmarshal(buffer, &decoded))
	assert.Equal(t, u, decoded)

	err = decoded.UnmarshalText([]byte("0102"))
	assert.Equal(t, fault.ErrInvalidCoinRecord, err)
}
