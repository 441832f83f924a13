// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/statedb/blockrecord"
	"github.com/bitmark-inc/statedb/database"
	"github.com/bitmark-inc/statedb/merkle"
)

type blockResult struct {
	Digest merkle.Digest      `json:"digest"`
	Block  *blockrecord.Block `json:"block"`
}

// write a JSON array of blocks start..finish inclusive
func dumpBlocks(w io.Writer, db database.BlockProducerDatabase, start uint32, finish uint32) error {
	fmt.Fprintf(w, "[\n")
	for n := start; ; n += 1 {
		block, err := db.Block(n)
		if nil != err {
			return err
		}
		s, err := json.MarshalIndent(blockResult{
			Digest: block.ID(),
			Block:  block,
		}, "  ", "  ")
		if nil != err {
			return err
		}
		if n == finish {
			fmt.Fprintf(w, "  %s\n", s)
			break
		}
		fmt.Fprintf(w, "  %s,\n", s)
	}
	fmt.Fprintf(w, "]\n")
	return nil
}
