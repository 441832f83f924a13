// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/bitmark-inc/statedb/fault"
	"github.com/bitmark-inc/statedb/merkle"
)

// PackedBlock - packed records are just a byte slice
type PackedBlock []byte

// Block - a header and the ids of its transactions
type Block struct {
	Header       Header          `json:"header"`
	Transactions []merkle.Digest `json:"transactions"`
}

// New - build a block, filling in the count and transactions root
func New(height uint32, daHeight uint64, previous merkle.Digest, timestamp uint64, transactions []merkle.Digest) (*Block, error) {
	if len(transactions) > MaximumTransactions {
		return nil, fault.ErrInvalidCount
	}

	root := merkle.Digest{}
	if 0 != len(transactions) {
		r, err := merkle.Root(transactions)
		if nil != err {
			return nil, err
		}
		root = r
	}

	return &Block{
		Header: Header{
			Version:          Version,
			TransactionCount: uint16(len(transactions)),
			Height:           height,
			DAHeight:         daHeight,
			PreviousBlock:    previous,
			TransactionsRoot: root,
			Timestamp:        timestamp,
		},
		Transactions: append([]merkle.Digest{}, transactions...),
	}, nil
}

// ID - digest of the packed header
func (block *Block) ID() merkle.Digest {
	return block.Header.Digest()
}

// Pack - header followed by the transaction ids
func (block *Block) Pack() PackedBlock {
	header := block.Header.Pack()
	buffer := make([]byte, 0, totalHeaderSize+len(block.Transactions)*merkle.DigestLength)
	buffer = append(buffer, header[:]...)
	for _, id := range block.Transactions {
		buffer = append(buffer, id[:]...)
	}
	return buffer
}

// Unpack - decode and validate a packed block
//
// the transaction count and root must agree with the ids present
func (record PackedBlock) Unpack() (*Block, merkle.Digest, error) {
	header, digest, data, err := ExtractHeader(record)
	if nil != err {
		return nil, merkle.Digest{}, err
	}

	n := int(header.TransactionCount)
	if len(data) != n*merkle.DigestLength {
		return nil, merkle.Digest{}, fault.ErrInvalidBlockRecord
	}

	transactions := make([]merkle.Digest, n)
	for i := range transactions {
		copy(transactions[i][:], data[i*merkle.DigestLength:])
	}

	root := merkle.Digest{}
	if n > 0 {
		root, err = merkle.Root(transactions)
		if nil != err {
			return nil, merkle.Digest{}, err
		}
	}
	if root != header.TransactionsRoot {
		return nil, merkle.Digest{}, fault.ErrInvalidBlockRecord
	}

	return &Block{
		Header:       *header,
		Transactions: transactions,
	}, digest, nil
}
