// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"encoding/binary"

	"github.com/bitmark-inc/statedb/merkle"
)

// metadata keys
var (
	chainHeightKey = []byte("chain_height")
	versionKey     = []byte("version")
)

// database layout version
const currentVersion = 1

func heightKey(height uint32) []byte {
	k := make([]byte, 4)
	binary.BigEndian.PutUint32(k, height)
	return k
}

func heightFromBytes(b []byte) (uint32, bool) {
	if 4 != len(b) {
		return 0, false
	}
	return binary.BigEndian.Uint32(b), true
}

// entity id followed by a second component
func compositeKey(entity merkle.Digest, suffix []byte) []byte {
	k := make([]byte, 0, merkle.DigestLength+len(suffix))
	k = append(k, entity[:]...)
	return append(k, suffix...)
}
