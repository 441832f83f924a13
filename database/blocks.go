// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"strconv"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/statedb/blockrecord"
	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/fault"
	"github.com/bitmark-inc/statedb/merkle"
	"github.com/bitmark-inc/statedb/storage"
)

// chain height from any store, committed or pending
func currentHeight(store storage.KeyValueStore) (uint32, error) {
	value, found, err := store.Get(chainHeightKey, column.Metadata)
	if nil != err {
		return 0, err
	}
	if !found {
		return 0, fault.ErrHeightNotFound
	}
	height, ok := heightFromBytes(value)
	if !ok {
		return 0, fault.ErrInvalidBlockRecord
	}
	return height, nil
}

// block at height from any store
func blockAt(store storage.KeyValueStore, height uint32) (*blockrecord.Block, merkle.Digest, error) {
	packed, found, err := store.Get(heightKey(height), column.FuelBlocks)
	if nil != err {
		return nil, merkle.Digest{}, err
	}
	if !found {
		return nil, merkle.Digest{}, fault.ErrBlockNotFound
	}
	return blockrecord.PackedBlock(packed).Unpack()
}

// StoreBlock - append a block to the chain inside a view
//
// the block must directly follow the current chain tip, or be the
// genesis block of an empty chain
func (d *Database) StoreBlock(view *storage.View, block *blockrecord.Block) error {
	height := block.Header.Height

	tip, err := currentHeight(view)
	switch {
	case fault.ErrHeightNotFound == err:
		if 0 != height {
			return fault.ErrHeightOutOfSequence
		}
	case nil != err:
		return err
	default:
		previous, _, err := blockAt(view, tip)
		if nil != err {
			return err
		}
		if err := blockrecord.ValidSuccessor(&previous.Header, &block.Header); nil != err {
			return err
		}
	}

	id := block.ID()
	key := heightKey(height)

	if _, err := view.Write(key, column.FuelBlocks, block.Pack()); nil != err {
		return err
	}
	if _, err := view.Write(id[:], column.FuelBlockSecondaryKeyBlockHeights, key); nil != err {
		return err
	}
	if _, err := view.Write(key, column.FuelBlockMerkleData, id[:]); nil != err {
		return err
	}
	if _, err := view.Write(chainHeightKey, column.Metadata, key); nil != err {
		return err
	}

	d.log.Debugf("stage block: %d  id: %s", height, id)
	return nil
}

// ExecuteBlock - run fn and store the block in one transaction
//
// any error from fn or the store aborts and nothing persists
func (d *Database) ExecuteBlock(block *blockrecord.Block, fn func(view *storage.View) error) error {
	err := d.handle.Transaction(func(view *storage.View) error {
		if nil != fn {
			if err := fn(view); nil != err {
				return err
			}
		}
		return d.StoreBlock(view, block)
	})
	if nil != err {
		d.log.Warnf("block: %d  not stored: %s", block.Header.Height, err)
		return err
	}

	d.log.Infof("stored block: %d", block.Header.Height)
	return nil
}

// CurrentHeight - height of the chain tip
func (d *Database) CurrentHeight() (uint32, error) {
	return currentHeight(d.handle)
}

// Block - committed block at height
func (d *Database) Block(height uint32) (*blockrecord.Block, error) {
	block, _, err := blockAt(d.handle, height)
	return block, err
}

// BlockByID - committed block with the given id
func (d *Database) BlockByID(id merkle.Digest) (*blockrecord.Block, error) {
	value, found, err := d.handle.Get(id[:], column.FuelBlockSecondaryKeyBlockHeights)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrBlockNotFound
	}
	height, ok := heightFromBytes(value)
	if !ok {
		return nil, fault.ErrInvalidBlockRecord
	}
	return d.Block(height)
}

// BlockHeader - committed header at height
//
// committed headers never change so they are cached
func (d *Database) BlockHeader(height uint32) (*blockrecord.Header, error) {
	k := strconv.FormatUint(uint64(height), 10)
	if h, found := d.headers.Get(k); found {
		header := h.(blockrecord.Header)
		return &header, nil
	}

	block, _, err := blockAt(d.handle, height)
	if nil != err {
		return nil, err
	}

	d.headers.Set(k, block.Header, cache.DefaultExpiration)
	header := block.Header
	return &header, nil
}

// BlockHeaderMerkleRoot - merkle root of the ids of blocks 0..height
//
// a height above the chain tip is ErrBlockNotFound
func (d *Database) BlockHeaderMerkleRoot(height uint32) (merkle.Digest, error) {
	tip, err := currentHeight(d.handle)
	if fault.ErrHeightNotFound == err || (nil == err && height > tip) {
		return merkle.Digest{}, fault.ErrBlockNotFound
	}
	if nil != err {
		return merkle.Digest{}, err
	}
	leaves := make([]merkle.Digest, 0, int(height)+1)

	iter := d.handle.IterAll(column.FuelBlockMerkleData, nil, nil, storage.Forward)
	defer iter.Release()

	expected := uint32(0)
	for iter.Next() {
		h, ok := heightFromBytes(iter.Key())
		if !ok || h != expected {
			return merkle.Digest{}, fault.ErrInvalidBlockRecord
		}
		var leaf merkle.Digest
		if err := merkle.DigestFromBytes(&leaf, iter.Value()); nil != err {
			return merkle.Digest{}, err
		}
		leaves = append(leaves, leaf)
		if h == height {
			break
		}
		expected += 1
	}
	if err := iter.Error(); nil != err {
		return merkle.Digest{}, err
	}
	if len(leaves) != int(height)+1 {
		return merkle.Digest{}, fault.ErrBlockNotFound
	}

	return merkle.Root(leaves)
}

// PreviousBlockInfo - height, DA height and block merkle root of the
// block before height
func (d *Database) PreviousBlockInfo(height uint32) (*PreviousBlockInfo, error) {
	if 0 == height {
		return nil, fault.ErrGenesisBlock
	}
	previous := height - 1

	header, err := d.BlockHeader(previous)
	if nil != err {
		return nil, err
	}
	root, err := d.BlockHeaderMerkleRoot(previous)
	if nil != err {
		return nil, err
	}

	return &PreviousBlockInfo{
		Height:   previous,
		DAHeight: header.DAHeight,
		Root:     root,
	}, nil
}
