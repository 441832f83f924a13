// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/statedb/configuration"
	"github.com/bitmark-inc/statedb/storage"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultStateDatabase    = "state.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "statedbd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultMetricsListen = "127.0.0.1:9121"
	defaultStatsInterval = 60 // seconds
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - engine location and tuning
type DatabaseType struct {
	Directory          string `gluamapper:"directory" json:"directory"`
	Name               string `gluamapper:"name" json:"name"`
	ReadOnly           bool   `gluamapper:"read_only" json:"read_only"`
	CacheSize          int    `gluamapper:"cache_size" json:"cache_size"`
	WriteBuffer        int    `gluamapper:"write_buffer" json:"write_buffer"`
	DisableCompression bool   `gluamapper:"disable_compression" json:"disable_compression"`
	SerializeRMW       bool   `gluamapper:"serialize_rmw" json:"serialize_rmw"`
}

// MetricsType - prometheus exporter
type MetricsType struct {
	Enabled bool   `gluamapper:"enabled" json:"enabled"`
	Listen  string `gluamapper:"listen" json:"listen"`
}

// Configuration - the whole daemon configuration
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Metrics       MetricsType          `gluamapper:"metrics" json:"metrics"`
	StatsInterval int                  `gluamapper:"stats_interval" json:"stats_interval"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// DatabasePath - full path of the leveldb directory
func (c *Configuration) DatabasePath() string {
	return c.Database.Name
}

// StorageOptions - engine options from the database section
func (c *Configuration) StorageOptions() *storage.Options {
	return &storage.Options{
		ReadOnly:                 c.Database.ReadOnly,
		DisableCompression:       c.Database.DisableCompression,
		BlockCacheCapacity:       c.Database.CacheSize,
		WriteBuffer:              c.Database.WriteBuffer,
		SerializeReadModifyWrite: c.Database.SerializeRMW,
	}
}

// StatsDelay - interval between statistics reports, zero disables
func (c *Configuration) StatsDelay() time.Duration {
	return time.Duration(c.StatsInterval) * time.Second
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultStateDatabase,
		},

		Metrics: MetricsType{
			Enabled: false,
			Listen:  defaultMetricsListen,
		},

		StatsInterval: defaultStatsInterval,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = configuration.EnsureAbsolute(dataDirectory, options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	if options.StatsInterval < 0 {
		return nil, fmt.Errorf("stats_interval: %d must not be negative", options.StatsInterval)
	}
	if options.Database.CacheSize < 0 || options.Database.WriteBuffer < 0 {
		return nil, fmt.Errorf("database: cache_size and write_buffer must not be negative")
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = configuration.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d, err = configuration.EnsureDirectory(options.DataDirectory, *d)
		if nil != err {
			return nil, err
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		directory := "."
		if nil != f[1] {
			directory = *f[1]
		}
		name, err := configuration.PlainName(directory, *f[0])
		if nil != err {
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
		if nil != f[1] {
			*f[0] = name
		}
	}

	return options, nil
}
