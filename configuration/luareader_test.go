// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/statedb/configuration"
	"github.com/bitmark-inc/statedb/fault"
)

type databaseSection struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
	ReadOnly  bool   `gluamapper:"read_only"`
	CacheSize int    `gluamapper:"cache_size"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Source        string            `gluamapper:"source"`
	Database      databaseSection   `gluamapper:"database"`
	Levels        map[string]string `gluamapper:"levels"`
}

const luaSource = `
local M = {}
M.data_directory = "/var/lib/statedb"
M.source = arg[0]
M.database = {
    name = "state.leveldb",
    read_only = true,
    cache_size = 64 * 1024 * 1024,
}
M.levels = {
    main = "info",
    DEFAULT = "error",
}
return M
`

func TestParseConfigurationFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "statedbd.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(luaSource), 0600))

	c := &testConfiguration{
		Database: databaseSection{
			Directory: "data",
			Name:      "default.leveldb",
		},
	}
	require.NoError(t, configuration.ParseConfigurationFile(fileName, c))

	assert.Equal(t, "/var/lib/statedb", c.DataDirectory)
	assert.Equal(t, fileName, c.Source, "arg[0] is the file name")
	assert.Equal(t, "data", c.Database.Directory, "default kept")
	assert.Equal(t, "state.leveldb", c.Database.Name)
	assert.True(t, c.Database.ReadOnly)
	assert.Equal(t, 64*1024*1024, c.Database.CacheSize)
	assert.Equal(t, map[string]string{"main": "info", "DEFAULT": "error"}, c.Levels)
}

func TestParseConfigurationString(t *testing.T) {
	c := &testConfiguration{}
	require.NoError(t, configuration.ParseConfigurationString(`return { data_directory = "." }`, c))
	assert.Equal(t, ".", c.DataDirectory)
	assert.Equal(t, "", c.Source)
}

func TestParseConfigurationErrors(t *testing.T) {
	c := testConfiguration{}

	err := configuration.ParseConfigurationString(`return {}`, c)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	err = configuration.ParseConfigurationString(`return 42`, &c)
	assert.Equal(t, fault.ErrInvalidChunkResult, err)

	err = configuration.ParseConfigurationString(`this is not lua`, &c)
	assert.Error(t, err)

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &c)
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/a/b/c", configuration.EnsureAbsolute("/a", "b/c"))
	assert.Equal(t, "/x/y", configuration.EnsureAbsolute("/a", "/x/y"))
	assert.Equal(t, "/a/c", configuration.EnsureAbsolute("/a/b", "../c"))

	name, err := configuration.PlainName("/data", "state.leveldb")
	require.NoError(t, err)
	assert.Equal(t, "/data/state.leveldb", name)

	_, err = configuration.PlainName("/data", "sub/state.leveldb")
	assert.Equal(t, fault.ErrInvalidPath, err)

	_, err = configuration.PlainName("/data", "")
	assert.Equal(t, fault.ErrInvalidPath, err)

	base := t.TempDir()
	d, err := configuration.EnsureDirectory(base, "log")
	require.NoError(t, err)
	assert.True(t, configuration.EnsureFileExists(d))
	assert.False(t, configuration.EnsureFileExists(filepath.Join(base, "nothing")))
}
