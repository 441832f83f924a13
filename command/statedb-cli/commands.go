// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/merkle"
	"github.com/bitmark-inc/statedb/storage"
)

type entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type treeLevel struct {
	Level   int             `json:"level"`
	Digests []merkle.Digest `json:"digests"`
}

// list the open columns by label, the same form -c accepts
func runColumns(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	names := m.engine.Columns()
	labels := make([]string, 0, len(names))
	for _, name := range names {
		col, err := column.FromName(name)
		if nil != err {
			return fmt.Errorf("column: %q: %s", name, err)
		}
		labels = append(labels, col.String())
	}
	return writeJSON(m.w, labels)
}

func runGet(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	col, err := columnFromFlag(c)
	if nil != err {
		return err
	}
	key, err := hexFlag(c, "key", true)
	if nil != err {
		return err
	}

	value, found, err := m.db.Handle().Get(key, col)
	if nil != err {
		return err
	}
	if !found {
		return fmt.Errorf("key: %x not found in: %s", key, col)
	}
	return writeJSON(m.w, entry{
		Key:   hex.EncodeToString(key),
		Value: hex.EncodeToString(value),
	})
}

func runDump(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	col, err := columnFromFlag(c)
	if nil != err {
		return err
	}
	prefix, err := hexFlag(c, "prefix", false)
	if nil != err {
		return err
	}
	start, err := hexFlag(c, "start", false)
	if nil != err {
		return err
	}
	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("count: %d must be positive", count)
	}

	direction := storage.Forward
	if c.Bool("reverse") {
		direction = storage.Reverse
	}
	if m.verbose {
		fmt.Fprintf(m.e, "column: %s  prefix: %x  start: %x  direction: %s\n", col, prefix, start, direction)
	}

	iter := m.db.Handle().IterAll(col, prefix, start, direction)
	defer iter.Release()

	entries := make([]entry, 0, count)
	for len(entries) < count && iter.Next() {
		entries = append(entries, entry{
			Key:   hex.EncodeToString(iter.Key()),
			Value: hex.EncodeToString(iter.Value()),
		})
	}
	if err := iter.Error(); nil != err {
		return err
	}
	return writeJSON(m.w, entries)
}

func runDelete(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	col, err := columnFromFlag(c)
	if nil != err {
		return err
	}
	key, err := hexFlag(c, "key", true)
	if nil != err {
		return err
	}

	previous, found, err := m.db.Handle().Delete(key, col)
	if nil != err {
		return err
	}
	if !found {
		return fmt.Errorf("key: %x not found in: %s", key, col)
	}
	return writeJSON(m.w, entry{
		Key:   hex.EncodeToString(key),
		Value: hex.EncodeToString(previous),
	})
}

func runHeight(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	height, err := m.db.CurrentHeight()
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%d\n", height)
	return nil
}

func runBlock(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	block, err := m.db.Block(uint32(c.Uint("height")))
	if nil != err {
		return err
	}
	return writeJSON(m.w, block)
}

func runHeader(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	header, err := m.db.BlockHeader(uint32(c.Uint("height")))
	if nil != err {
		return err
	}
	return writeJSON(m.w, header)
}

func runRoot(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	height := uint32(c.Uint("height"))
	root, err := m.db.BlockHeaderMerkleRoot(height)
	if nil != err {
		return err
	}
	if !c.Bool("tree") {
		fmt.Fprintf(m.w, "%s\n", root)
		return nil
	}

	leaves := make([]merkle.Digest, 0, height+1)
	for h := uint32(0); h <= height; h += 1 {
		block, err := m.db.Block(h)
		if nil != err {
			return err
		}
		leaves = append(leaves, block.ID())
	}
	return writeJSON(m.w, treeLevels(merkle.FullMerkleTree(leaves), len(leaves)))
}

// split a full tree into its levels, leaves first
func treeLevels(tree []merkle.Digest, leafCount int) []treeLevel {
	levels := []treeLevel{}
	for n, level := leafCount, 0; n > 0 && len(tree) > 0; level += 1 {
		levels = append(levels, treeLevel{Level: level, Digests: tree[:n]})
		tree = tree[n:]
		if 1 == n {
			break
		}
		n = (n + 1) / 2
	}
	return levels
}

func runCoins(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	owner, err := digestFlag(c, "owner")
	if nil != err {
		return err
	}
	direction := storage.Forward
	if c.Bool("reverse") {
		direction = storage.Reverse
	}

	ids, err := m.db.OwnedCoins(owner, nil, direction, c.Int("count"))
	if nil != err {
		return err
	}

	coins := []interface{}{}
	for _, id := range ids {
		coin, err := m.db.Coin(id)
		if nil != err {
			return err
		}
		coins = append(coins, coin)
	}
	return writeJSON(m.w, coins)
}

func runState(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	contract, err := digestFlag(c, "contract")
	if nil != err {
		return err
	}
	entries, err := m.db.ContractStateEntries(contract)
	if nil != err {
		return err
	}
	return writeJSON(m.w, entries)
}

func columnFromFlag(c *cli.Context) (column.Column, error) {
	name := c.String("column")
	if "" == name {
		return 0, fmt.Errorf("column name is required")
	}
	col, err := column.FromLabel(name)
	if nil != err {
		return 0, fmt.Errorf("column: %q: %s", name, err)
	}
	return col, nil
}

// ids are given in the same big endian hex that String prints
func digestFlag(c *cli.Context, name string) (merkle.Digest, error) {
	var d merkle.Digest
	s := c.String(name)
	if "" == s {
		return d, fmt.Errorf("%s is required", name)
	}
	if _, err := fmt.Sscan(s, &d); nil != err {
		return d, fmt.Errorf("%s: %s", name, err)
	}
	return d, nil
}

func hexFlag(c *cli.Context, name string, required bool) ([]byte, error) {
	s := c.String(name)
	if "" == s {
		if required {
			return nil, fmt.Errorf("%s is required", name)
		}
		return nil, nil
	}
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fmt.Errorf("%s: %s", name, err)
	}
	return b, nil
}
