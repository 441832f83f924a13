// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"encoding/binary"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/statedb/blockrecord"
	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/fault"
	"github.com/bitmark-inc/statedb/merkle"
	"github.com/bitmark-inc/statedb/storage"
)

// header cache timing
const (
	headerExpiration = time.Hour
	headerCleanup    = 2 * time.Hour
)

// ConsensusDatabase - what block verification reads
type ConsensusDatabase interface {
	BlockHeader(height uint32) (*blockrecord.Header, error)
	BlockHeaderMerkleRoot(height uint32) (merkle.Digest, error)
}

// BlockProducerDatabase - what block production reads
type BlockProducerDatabase interface {
	CurrentHeight() (uint32, error)
	Block(height uint32) (*blockrecord.Block, error)
	PreviousBlockInfo(height uint32) (*PreviousBlockInfo, error)
}

// PreviousBlockInfo - context of the block before a new one
type PreviousBlockInfo struct {
	Height   uint32        `json:"height"`
	DAHeight uint64        `json:"daHeight,string"`
	Root     merkle.Digest `json:"root"`
}

// Database - chain state over a shared storage handle
type Database struct {
	log     *logger.L
	handle  *storage.Handle
	headers *cache.Cache
}

var _ ConsensusDatabase = (*Database)(nil)
var _ BlockProducerDatabase = (*Database)(nil)

// New - attach to a storage handle
//
// the database holds its own clone of the handle; a fresh store is
// stamped with the layout version, a different version is rejected
func New(handle *storage.Handle) (*Database, error) {
	log := logger.New("database")

	h := handle.Clone()

	value, found, err := h.Get(versionKey, column.Metadata)
	if nil != err {
		h.Close()
		return nil, err
	}

	if !found {
		v := make([]byte, 4)
		binary.BigEndian.PutUint32(v, currentVersion)
		if _, err := h.Write(versionKey, column.Metadata, v); nil != err {
			h.Close()
			return nil, err
		}
		log.Infof("initialised database version: %d", currentVersion)
	} else if 4 != len(value) || currentVersion != binary.BigEndian.Uint32(value) {
		log.Criticalf("database version: %x  expected: %d", value, currentVersion)
		h.Close()
		return nil, fault.ErrUnsupportedDBVersion
	}

	return &Database{
		log:     log,
		handle:  h,
		headers: cache.New(headerExpiration, headerCleanup),
	}, nil
}

// Handle - the storage handle used by this database
func (d *Database) Handle() *storage.Handle {
	return d.handle
}

// Close - release the storage handle
func (d *Database) Close() error {
	d.headers.Flush()
	return d.handle.Close()
}
