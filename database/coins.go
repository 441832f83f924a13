// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/fault"
	"github.com/bitmark-inc/statedb/merkle"
	"github.com/bitmark-inc/statedb/storage"
)

// UtxoIDLength - transaction id followed by an output index
const UtxoIDLength = merkle.DigestLength + 1

// UtxoID - identifies one transaction output
type UtxoID [UtxoIDLength]byte

// NewUtxoID - id of output index of a transaction
func NewUtxoID(tx merkle.Digest, index uint8) UtxoID {
	var u UtxoID
	copy(u[:], tx[:])
	u[merkle.DigestLength] = index
	return u
}

// TransactionID - the transaction part of the id
func (u UtxoID) TransactionID() merkle.Digest {
	var d merkle.Digest
	copy(d[:], u[:merkle.DigestLength])
	return d
}

// OutputIndex - the output part of the id
func (u UtxoID) OutputIndex() uint8 {
	return u[merkle.DigestLength]
}

// String - hex of transaction id and output index
func (u UtxoID) String() string {
	return hex.EncodeToString(u[:])
}

// MarshalText - hex text
func (u UtxoID) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(u)))
	hex.Encode(b, u[:])
	return b, nil
}

// UnmarshalText - hex text into an id
func (u *UtxoID) UnmarshalText(s []byte) error {
	if hex.EncodedLen(UtxoIDLength) != len(s) {
		return fault.ErrInvalidCoinRecord
	}
	_, err := hex.Decode(u[:], s)
	return err
}

// byte sizes of a packed coin
const (
	ownerOffset        = 0
	assetOffset        = ownerOffset + merkle.DigestLength
	amountOffset       = assetOffset + merkle.DigestLength
	blockCreatedOffset = amountOffset + 8
	packedCoinSize     = blockCreatedOffset + 4
)

// Coin - an unspent output
type Coin struct {
	UtxoID       UtxoID        `json:"utxoId"`
	Owner        merkle.Digest `json:"owner"`
	AssetID      merkle.Digest `json:"assetId"`
	Amount       uint64        `json:"amount,string"`
	BlockCreated uint32        `json:"blockCreated"`
}

func (coin *Coin) pack() []byte {
	buffer := make([]byte, packedCoinSize)
	copy(buffer[ownerOffset:], coin.Owner[:])
	copy(buffer[assetOffset:], coin.AssetID[:])
	binary.LittleEndian.PutUint64(buffer[amountOffset:], coin.Amount)
	binary.LittleEndian.PutUint32(buffer[blockCreatedOffset:], coin.BlockCreated)
	return buffer
}

func unpackCoin(utxo UtxoID, buffer []byte) (*Coin, error) {
	if packedCoinSize != len(buffer) {
		return nil, fault.ErrInvalidCoinRecord
	}
	coin := &Coin{
		UtxoID:       utxo,
		Amount:       binary.LittleEndian.Uint64(buffer[amountOffset:]),
		BlockCreated: binary.LittleEndian.Uint32(buffer[blockCreatedOffset:]),
	}
	copy(coin.Owner[:], buffer[ownerOffset:assetOffset])
	copy(coin.AssetID[:], buffer[assetOffset:amountOffset])
	return coin, nil
}

func ownedCoinKey(owner merkle.Digest, utxo UtxoID) []byte {
	return compositeKey(owner, utxo[:])
}

// PutCoin - create an unspent output and index it by owner
func (d *Database) PutCoin(view *storage.View, coin *Coin) error {
	if _, err := view.Write(coin.UtxoID[:], column.Coins, coin.pack()); nil != err {
		return err
	}
	_, err := view.Write(ownedCoinKey(coin.Owner, coin.UtxoID), column.OwnedCoins, []byte{})
	return err
}

// Coin - committed unspent output
func (d *Database) Coin(utxo UtxoID) (*Coin, error) {
	return coinFrom(d.handle, utxo)
}

func coinFrom(store storage.KeyValueStore, utxo UtxoID) (*Coin, error) {
	value, found, err := store.Get(utxo[:], column.Coins)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrCoinNotFound
	}
	return unpackCoin(utxo, value)
}

// SpendCoin - remove an unspent output and its owner index
func (d *Database) SpendCoin(view *storage.View, utxo UtxoID) (*Coin, error) {
	value, found, err := view.Take(utxo[:], column.Coins)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrCoinNotFound
	}
	coin, err := unpackCoin(utxo, value)
	if nil != err {
		return nil, err
	}
	if _, _, err := view.Delete(ownedCoinKey(coin.Owner, utxo), column.OwnedCoins); nil != err {
		return nil, err
	}
	return coin, nil
}

// OwnedCoins - up to count utxo ids of an owner
//
// start, when given, is included; a reverse scan without start begins
// at the owner's last coin
func (d *Database) OwnedCoins(owner merkle.Digest, start *UtxoID, direction storage.Direction, count int) ([]UtxoID, error) {
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	prefix := owner[:]
	var from []byte
	if nil != start {
		from = ownedCoinKey(owner, *start)
	} else if storage.Reverse == direction {
		last := UtxoID{}
		for i := range last {
			last[i] = 0xff
		}
		from = ownedCoinKey(owner, last)
	}

	iter := d.handle.IterAll(column.OwnedCoins, prefix, from, direction)
	defer iter.Release()

	result := make([]UtxoID, 0, count)
	for len(result) < count && iter.Next() {
		k := iter.Key()
		if merkle.DigestLength+UtxoIDLength != len(k) {
			return nil, fault.ErrInvalidCoinRecord
		}
		var u UtxoID
		copy(u[:], k[merkle.DigestLength:])
		result = append(result, u)
	}
	if err := iter.Error(); nil != err {
		return nil, err
	}
	return result, nil
}
