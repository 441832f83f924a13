// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/statedb/blockrecord"
	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/database"
	"github.com/bitmark-inc/statedb/merkle"
	"github.com/bitmark-inc/statedb/storage"
)

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "statedb-cli-log")
	if nil != err {
		panic(fmt.Sprintf("log directory creation failed: %s", err))
	}

	logConfig := logger.Configuration{
		Directory: dir,
		File:      "statedb-cli.log",
		Size:      1048576,
		Count:     20,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logConfig); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}

	rc := m.Run()

	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

var (
	owner    = merkle.NewDigest([]byte("owner"))
	contract = merkle.NewDigest([]byte("contract"))
)

// create a database with a short chain, one coin and one contract slot
func populate(t *testing.T, blocks int) (string, []merkle.Digest) {
	path := t.TempDir()

	engine, err := storage.Open(path, column.All(), nil)
	require.NoError(t, err)
	handle := storage.NewHandle(engine)
	db, err := database.New(handle)
	require.NoError(t, err)
	handle.Close()

	ids := []merkle.Digest{}
	previous := merkle.Digest{}
	for i := 0; i < blocks; i += 1 {
		tx := merkle.NewDigest([]byte(fmt.Sprintf("tx-%d", i)))
		block, err := blockrecord.New(uint32(i), uint64(10+i), previous, uint64(1600000000+i), []merkle.Digest{tx})
		require.NoError(t, err)

		err = db.ExecuteBlock(block, func(view *storage.View) error {
			if 0 != i {
				return nil
			}
			if err := db.PutCoin(view, &database.Coin{
				UtxoID:       database.NewUtxoID(tx, 0),
				Owner:        owner,
				AssetID:      merkle.NewDigest([]byte("asset")),
				Amount:       500,
				BlockCreated: 0,
			}); nil != err {
				return err
			}
			_, err := db.SetContractState(view, contract, merkle.NewDigest([]byte("slot")), merkle.NewDigest([]byte("value")))
			return err
		})
		require.NoError(t, err)

		previous = block.ID()
		ids = append(ids, previous)
	}

	require.NoError(t, db.Close())
	return path, ids
}

func run(t *testing.T, arguments ...string) (string, error) {
	var w, e bytes.Buffer
	app := newApp(&w, &e)
	err := app.Run(append([]string{"statedb-cli"}, arguments...))
	return w.String(), err
}

func TestColumns(t *testing.T) {
	path, _ := populate(t, 1)

	out, err := run(t, "--database", path, "columns")
	require.NoError(t, err)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Contains(t, names, "Metadata")
	assert.Contains(t, names, "FuelBlocks")
	assert.Equal(t, len(column.All()), len(names))
}

func TestHeightBlockHeader(t *testing.T) {
	path, ids := populate(t, 3)

	out, err := run(t, "-d", path, "height")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = run(t, "-d", path, "block", "--height", "1")
	require.NoError(t, err)
	var block blockrecord.Block
	require.NoError(t, json.Unmarshal([]byte(out), &block))
	assert.Equal(t, uint32(1), block.Header.Height)
	assert.Equal(t, ids[0], block.Header.PreviousBlock)

	out, err = run(t, "-d", path, "header", "-n", "2")
	require.NoError(t, err)
	var header blockrecord.Header
	require.NoError(t, json.Unmarshal([]byte(out), &header))
	assert.Equal(t, uint64(12), header.DAHeight)

	_, err = run(t, "-d", path, "block", "-n", "9")
	assert.Error(t, err)
}

func TestRoot(t *testing.T) {
	path, ids := populate(t, 3)

	expected, err := merkle.Root(ids)
	require.NoError(t, err)

	out, err := run(t, "-d", path, "root", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, expected.String()+"\n", out)

	out, err = run(t, "-d", path, "root", "-n", "2", "--tree")
	require.NoError(t, err)
	var levels []treeLevel
	require.NoError(t, json.Unmarshal([]byte(out), &levels))
	require.Len(t, levels, 3)
	assert.Equal(t, ids, levels[0].Digests)
	assert.Len(t, levels[1].Digests, 2)
	assert.Equal(t, []merkle.Digest{expected}, levels[2].Digests)
}

func TestGetDumpDelete(t *testing.T) {
	path, ids := populate(t, 2)

	key := hex.EncodeToString(ids[1][:])
	out, err := run(t, "-d", path, "get", "-c", "FuelBlockSecondaryKeyBlockHeights", "-k", key)
	require.NoError(t, err)
	var e entry
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	assert.Equal(t, "00000001", e.Value)

	out, err = run(t, "-d", path, "dump", "-c", "FuelBlockMerkleData", "--reverse")
	require.NoError(t, err)
	var entries []entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "00000001", entries[0].Key)
	assert.Equal(t, hex.EncodeToString(ids[1][:]), entries[0].Value)

	out, err = run(t, "-d", path, "dump", "-c", "FuelBlockMerkleData", "-s", "00000001", "-n", "5")
	require.NoError(t, err)
	entries = nil
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, 1)

	// read only by default
	_, err = run(t, "-d", path, "delete", "-c", "FuelBlockSecondaryKeyBlockHeights", "-k", key)
	assert.Error(t, err)

	_, err = run(t, "-d", path, "--write", "delete", "-c", "FuelBlockSecondaryKeyBlockHeights", "-k", key)
	require.NoError(t, err)

	_, err = run(t, "-d", path, "get", "-c", "FuelBlockSecondaryKeyBlockHeights", "-k", key)
	assert.Error(t, err)
}

func TestCoinsAndState(t *testing.T) {
	path, _ := populate(t, 1)

	out, err := run(t, "-d", path, "coins", "-o", owner.String())
	require.NoError(t, err)
	var coins []database.Coin
	require.NoError(t, json.Unmarshal([]byte(out), &coins))
	require.Len(t, coins, 1)
	assert.Equal(t, uint64(500), coins[0].Amount)

	out, err = run(t, "-d", path, "state", "-c", contract.String())
	require.NoError(t, err)
	var state []database.StateEntry
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	require.Len(t, state, 1)
	assert.Equal(t, merkle.NewDigest([]byte("value")), state[0].Value)
}

func TestColumnByLabelOrName(t *testing.T) {
	path, ids := populate(t, 1)
	key := hex.EncodeToString(ids[0][:])

	for _, name := range []string{"FuelBlockSecondaryKeyBlockHeights", column.FuelBlockSecondaryKeyBlockHeights.Name()} {
		out, err := run(t, "-d", path, "get", "-c", name, "-k", key)
		require.NoError(t, err, name)
		var e entry
		require.NoError(t, json.Unmarshal([]byte(out), &e), name)
		assert.Equal(t, "00000000", e.Value, name)
	}

	out, err := run(t, "-d", path, "columns")
	require.NoError(t, err)
	var labels []string
	require.NoError(t, json.Unmarshal([]byte(out), &labels))
	for _, label := range labels {
		_, err := column.FromLabel(label)
		assert.NoError(t, err, "listed label: %s", label)
	}
}

func TestDigestFlagMatchesPrintedForm(t *testing.T) {
	path, _ := populate(t, 1)

	// the printed form is reversed relative to the stored bytes
	littleEndian, err := owner.MarshalText()
	require.NoError(t, err)
	require.NotEqual(t, owner.String(), string(littleEndian))

	out, err := run(t, "-d", path, "coins", "-o", string(littleEndian))
	require.NoError(t, err)
	var coins []database.Coin
	require.NoError(t, json.Unmarshal([]byte(out), &coins))
	assert.Len(t, coins, 0, "stored byte order does not name the owner")

	out, err = run(t, "-d", path, "coins", "-o", strings.ToUpper(owner.String()))
	require.NoError(t, err)
	coins = nil
	require.NoError(t, json.Unmarshal([]byte(out), &coins))
	assert.Len(t, coins, 1, "upper case hex")

	_, err = run(t, "-d", path, "coins", "-o", "1234")
	assert.Error(t, err, "short digest")

	_, err = run(t, "-d", path, "state")
	assert.Error(t, err, "missing contract")
}

func TestArgumentErrors(t *testing.T) {
	path, _ := populate(t, 1)

	_, err := run(t, "columns")
	assert.Error(t, err, "missing database")

	_, err = run(t, "-d", path, "get", "-c", "NoSuchColumn", "-k", "00")
	assert.Error(t, err)

	_, err = run(t, "-d", path, "get", "-c", "Metadata", "-k", "zz")
	assert.Error(t, err)

	_, err = run(t, "-d", path, "dump", "-c", "Metadata", "-n", "0")
	assert.Error(t, err)

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version, strings.TrimSpace(out))
}
