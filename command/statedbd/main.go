// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/statedb/background"
	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/database"
	"github.com/bitmark-inc/statedb/fault"
	"github.com/bitmark-inc/statedb/metrics"
	"github.com/bitmark-inc/statedb/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// last chance logging for panics
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// database meters are only collected when exported
	storageOptions := theConfiguration.StorageOptions()
	if theConfiguration.Metrics.Enabled {
		storageOptions.Metrics = metrics.New()
	}

	log.Info("open database…")
	engine, err := storage.Open(theConfiguration.DatabasePath(), column.All(), storageOptions)
	if nil != err {
		log.Criticalf("storage open error: %s", err)
		exitwithstatus.Message("storage open error: %s", err)
	}
	log.Infof("columns: %v", engine.Columns())

	handle := storage.NewHandle(engine)
	defer handle.Close()

	db, err := database.New(handle)
	if nil != err {
		log.Criticalf("database initialise error: %s", err)
		exitwithstatus.Message("database initialise error: %s", err)
	}
	defer db.Close()

	// these commands need the database
	if len(arguments) > 0 && processDataCommand(log, arguments, engine, db) {
		return
	}

	if height, err := db.CurrentHeight(); nil == err {
		log.Infof("chain height: %d", height)
	} else if fault.IsErrNotFound(err) {
		log.Info("chain is empty")
	} else {
		log.Criticalf("chain height error: %s", err)
		exitwithstatus.Message("chain height error: %s", err)
	}

	// list of background processes to start
	processes := background.Processes{}

	if delay := theConfiguration.StatsDelay(); delay > 0 {
		processes = append(processes, newStatsReporter(engine, delay))
	}

	if theConfiguration.Metrics.Enabled {
		server, err := newMetricsServer(theConfiguration.Metrics.Listen, storageOptions.Metrics)
		if nil != err {
			log.Criticalf("metrics listen: %q  error: %s", theConfiguration.Metrics.Listen, err)
			exitwithstatus.Message("metrics listen: %q  error: %s", theConfiguration.Metrics.Listen, err)
		}
		processes = append(processes, server)
	}

	bg := background.Start(processes, nil)
	defer bg.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
