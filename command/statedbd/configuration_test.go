// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfiguration(t *testing.T, source string) string {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "statedbd.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(source), 0600))
	return fileName
}

func TestConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
return M
`)
	dir := filepath.Dir(fileName)

	c, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(c.DataDirectory))
	assert.Equal(t, filepath.Join(dir, "data"), c.Database.Directory)
	assert.Equal(t, filepath.Join(dir, "data", "state.leveldb"), c.DatabasePath())
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory)
	assert.Equal(t, "statedbd.log", c.Logging.File)
	assert.Equal(t, "", c.PidFile)
	assert.False(t, c.Metrics.Enabled)
	assert.Equal(t, 60*time.Second, c.StatsDelay())

	assert.DirExists(t, c.Database.Directory)
	assert.DirExists(t, c.Logging.Directory)

	o := c.StorageOptions()
	assert.False(t, o.ReadOnly)
	assert.False(t, o.SerializeReadModifyWrite)
	assert.Nil(t, o.Metrics)
}

func TestConfigurationOverrides(t *testing.T) {
	fileName := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.pidfile = "statedbd.pid"
M.database = {
    directory = "chain",
    name = "main.leveldb",
    read_only = true,
    cache_size = 8 * 1024 * 1024,
    write_buffer = 4 * 1024 * 1024,
    disable_compression = true,
    serialize_rmw = true,
}
M.metrics = {
    enabled = true,
    listen = "127.0.0.1:0",
}
M.stats_interval = 0
return M
`)
	dir := filepath.Dir(fileName)

	c, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "statedbd.pid"), c.PidFile)
	assert.Equal(t, filepath.Join(dir, "chain", "main.leveldb"), c.DatabasePath())
	assert.True(t, c.Metrics.Enabled)
	assert.Equal(t, "127.0.0.1:0", c.Metrics.Listen)
	assert.Equal(t, time.Duration(0), c.StatsDelay())

	o := c.StorageOptions()
	assert.True(t, o.ReadOnly)
	assert.True(t, o.DisableCompression)
	assert.True(t, o.SerializeReadModifyWrite)
	assert.Equal(t, 8*1024*1024, o.BlockCacheCapacity)
	assert.Equal(t, 4*1024*1024, o.WriteBuffer)
}

func TestConfigurationErrors(t *testing.T) {
	sources := map[string]string{
		"missing data directory": `return {}`,
		"home data directory":    `return { data_directory = "~" }`,
		"nonexistent directory":  `return { data_directory = "does/not/exist" }`,
		"database name is path":  `return { data_directory = ".", database = { name = "x/y.leveldb" } }`,
		"log file is path":       `return { data_directory = ".", logging = { file = "x/y.log" } }`,
		"negative interval":      `return { data_directory = ".", stats_interval = -1 }`,
		"negative cache":         `return { data_directory = ".", database = { cache_size = -1 } }`,
		"not a table":            `return "configuration"`,
	}
	for name, source := range sources {
		t.Run(name, func(t *testing.T) {
			_, err := getConfiguration(writeConfiguration(t, source))
			assert.Error(t, err)
		})
	}
}
