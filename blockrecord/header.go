// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/statedb/fault"
	"github.com/bitmark-inc/statedb/merkle"
)

// PackedHeader - use fix size array to simplify validation
type PackedHeader [totalHeaderSize]byte

// currently supported block version
const (
	Version        = 1
	MinimumVersion = 1
)

// maximum transactions in a block
// limited by uint16 field
const (
	MaximumTransactions = 0xffff
)

// byte sizes for various fields
const (
	VersionSize          = 2                   // Block version number
	TransactionCountSize = 2                   // Count of transactions
	HeightSize           = 4                   // This block's height
	DAHeightSize         = 8                   // Height of the data availability layer
	PreviousBlockSize    = merkle.DigestLength // SHA3 id of the previous block header
	TransactionsRootSize = merkle.DigestLength // merkle root of all transaction ids in the block
	TimestampSize        = 8                   // seconds since 1970-01-01T00:00 UTC
)

// offsets of the fields
const (
	versionOffset          = 0
	transactionCountOffset = versionOffset + VersionSize
	heightOffset           = transactionCountOffset + TransactionCountSize
	daHeightOffset         = heightOffset + HeightSize
	previousBlockOffset    = daHeightOffset + DAHeightSize
	transactionsRootOffset = previousBlockOffset + PreviousBlockSize
	timestampOffset        = transactionsRootOffset + TransactionsRootSize

	// to set size of header array
	totalHeaderSize = timestampOffset + TimestampSize
)

// HeaderSize - bytes in a packed header
const HeaderSize = totalHeaderSize

// Header - the unpacked header structure
type Header struct {
	Version          uint16        `json:"version"`
	TransactionCount uint16        `json:"transactionCount"`
	Height           uint32        `json:"height"`
	DAHeight         uint64        `json:"daHeight,string"`
	PreviousBlock    merkle.Digest `json:"previousBlock"`
	TransactionsRoot merkle.Digest `json:"transactionsRoot"`
	Timestamp        uint64        `json:"timestamp,string"`
}

// ExtractHeader - split a header from the front of a []byte
func ExtractHeader(block []byte) (*Header, merkle.Digest, []byte, error) {
	if len(block) < totalHeaderSize {
		return nil, merkle.Digest{}, nil, fault.ErrInvalidBlockRecord
	}
	packedHeader := PackedHeader{}
	copy(packedHeader[:], block[:totalHeaderSize])

	header, err := packedHeader.Unpack()
	if nil != err {
		return nil, merkle.Digest{}, nil, err
	}

	return header, packedHeader.Digest(), block[totalHeaderSize:], nil
}

// Unpack - turn a byte array into a header
func (record PackedHeader) Unpack() (*Header, error) {

	header := &Header{}

	header.Version = binary.LittleEndian.Uint16(record[versionOffset:])
	if header.Version < MinimumVersion {
		return nil, fault.ErrInvalidBlockHeader
	}

	header.TransactionCount = binary.LittleEndian.Uint16(record[transactionCountOffset:])
	header.Height = binary.LittleEndian.Uint32(record[heightOffset:])
	header.DAHeight = binary.LittleEndian.Uint64(record[daHeightOffset:])

	err := merkle.DigestFromBytes(&header.PreviousBlock, record[previousBlockOffset:transactionsRootOffset])
	if nil != err {
		return nil, err
	}

	err = merkle.DigestFromBytes(&header.TransactionsRoot, record[transactionsRootOffset:timestampOffset])
	if nil != err {
		return nil, err
	}

	header.Timestamp = binary.LittleEndian.Uint64(record[timestampOffset:])

	return header, nil
}

// Digest - block id of a packed header
func (record PackedHeader) Digest() merkle.Digest {
	return merkle.NewDigest(record[:])
}

// Pack - turn a header into an array of bytes
func (header *Header) Pack() PackedHeader {
	buffer := PackedHeader{}

	binary.LittleEndian.PutUint16(buffer[versionOffset:], header.Version)
	binary.LittleEndian.PutUint16(buffer[transactionCountOffset:], header.TransactionCount)
	binary.LittleEndian.PutUint32(buffer[heightOffset:], header.Height)
	binary.LittleEndian.PutUint64(buffer[daHeightOffset:], header.DAHeight)

	// these are in little endian order so can just copy them
	copy(buffer[previousBlockOffset:], header.PreviousBlock[:])
	copy(buffer[transactionsRootOffset:], header.TransactionsRoot[:])

	binary.LittleEndian.PutUint64(buffer[timestampOffset:], header.Timestamp)

	return buffer
}

// Digest - block id of a header
func (header *Header) Digest() merkle.Digest {
	return header.Pack().Digest()
}
