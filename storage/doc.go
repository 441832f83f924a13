// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - column-namespaced key/value state storage
//
// The LevelDB engine emulates one column family per declared column by
// prefixing every key with the big endian column id.
//
// Notes:
// 1. ++           = concatenation of byte data
// 2. column id    = big endian uint32 (4 bytes)
// 3. entity id    = 32 byte address or contract id
// 4. *others*     = byte values of various length
//
// Data:
//
//   column id ++ key                       - value for key in that column
//   column id ++ entity id ++ suffix       - composite key in a prefix indexed column
//
// Column family registry (reserved id 0xffffffff):
//
//   ff ff ff ff ++ "cf/" ++ column-<id>    - family record
//                                            data: record version ++ prefix length
//   ff ff ff ff ++ "version"               - database layout version
//                                            data: big endian uint32
//
// Transactions:
//
// A View stages writes in an in-memory sorted overlay.  Nested views
// stack further overlays on top; committing a nested view merges it
// into its parent, committing the outermost view applies everything as
// one atomic batch.
package storage
