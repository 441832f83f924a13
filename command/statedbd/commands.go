// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/database"
	"github.com/bitmark-inc/statedb/storage"
)

// setup command handler
//
// commands that need neither the configuration file nor the database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "block", "b", "height", "columns", "compact":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  block S [E [FILE]]         (b)      - dump block(s) as a JSON structures to stdout/file\n")
		fmt.Printf("\n")

		fmt.Printf("  height                              - display the current chain height\n")
		fmt.Printf("\n")

		fmt.Printf("  columns                             - list the column families of the database\n")
		fmt.Printf("\n")

		fmt.Printf("  compact [COLUMN...]                 - compact some or all columns then exit\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the database is open so these commands can read and/or change it
func processDataCommand(log *logger.L, arguments []string, engine *storage.LevelDB, db *database.Database) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "block", "b":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing block number argument")
		}

		n, err := strconv.ParseUint(arguments[0], 10, 32)
		if nil != err {
			exitwithstatus.Message("error in block number: %s", err)
		}

		output := "-"

		// optional end range
		nEnd := n
		if len(arguments) > 1 {

			nEnd, err = strconv.ParseUint(arguments[1], 10, 32)
			if nil != err {
				exitwithstatus.Message("error in ending block number: %s", err)
			}
			if nEnd < n {
				exitwithstatus.Message("error: invalid ending block number: %d must not be less than: %d", nEnd, n)
			}
		}

		if len(arguments) > 2 {
			output = strings.TrimSpace(arguments[2])
		}
		fd := os.Stdout

		if output != "" && output != "-" {
			fd, err = os.Create(output)
			if nil != err {
				exitwithstatus.Message("error: creating: %q error: %s", output, err)
			}
			defer fd.Close()
		}

		err = dumpBlocks(fd, db, uint32(n), uint32(nEnd))
		if nil != err {
			log.Errorf("dump block error: %s", err)
			exitwithstatus.Message("dump block error: %s", err)
		}

	case "height":
		height, err := db.CurrentHeight()
		if nil != err {
			exitwithstatus.Message("height error: %s", err)
		}
		fmt.Printf("%d\n", height)

	case "columns":
		for _, name := range engine.Columns() {
			fmt.Printf("%s\n", name)
		}

	case "compact":
		columns := column.All()
		if len(arguments) > 0 {
			columns = columns[:0]
			for _, name := range arguments {
				c, err := column.FromName(name)
				if nil != err {
					exitwithstatus.Message("error: column: %q  error: %s", name, err)
				}
				columns = append(columns, c)
			}
		}
		for _, c := range columns {
			log.Infof("compacting: %s", c)
			if err := engine.CompactColumn(c); nil != err {
				exitwithstatus.Message("compact: %s  error: %s", c, err)
			}
		}

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}
