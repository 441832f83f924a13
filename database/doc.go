// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package database - typed access to the chain state held in storage
//
// key layouts (heights are big endian uint32):
//
//   FuelBlocks                          height             => packed block
//   FuelBlockSecondaryKeyBlockHeights   block id           => height
//   FuelBlockMerkleData                 height             => block id
//   Metadata                            "chain_height"     => height
//   Metadata                            "version"          => big endian uint32
//   Coins                               utxo id            => packed coin
//   OwnedCoins                          owner ++ utxo id   => empty
//   ContractsState                      contract ++ slot   => 32 byte value
//
// all writes happen inside a storage.View so a block and the state it
// produced become visible together
package database
