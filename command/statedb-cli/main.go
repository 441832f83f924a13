// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/database"
	"github.com/bitmark-inc/statedb/storage"
)

type metadata struct {
	engine  *storage.LevelDB
	db      *database.Database
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      "statedb-cli.log",
		Size:      1048576,
		Count:     2,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		fmt.Fprintf(os.Stderr, "logger setup failed with error: %s\n", err)
		os.Exit(1)
	}

	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	logger.Finalise()
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "statedb-cli"
	app.Usage = "inspect a state database"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = map[string]interface{}{}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "database, d",
			Value: "",
			Usage: "*leveldb database `DIRECTORY`",
		},
		cli.BoolFlag{
			Name:  "write, w",
			Usage: " open for writing (default is read only)",
		},
	}

	columnFlag := cli.StringFlag{
		Name:  "column, c",
		Value: "",
		Usage: "*column `LABEL` or column-N name",
	}
	keyFlag := cli.StringFlag{
		Name:  "key, k",
		Value: "",
		Usage: "*key as `HEX`",
	}
	heightFlag := cli.UintFlag{
		Name:  "height, n",
		Value: 0,
		Usage: "*block `HEIGHT`",
	}
	countFlag := cli.IntFlag{
		Name:  "count, n",
		Value: 20,
		Usage: " maximum items to list `COUNT`",
	}
	reverseFlag := cli.BoolFlag{
		Name:  "reverse, r",
		Usage: " iterate in descending key order",
	}

	app.Commands = []cli.Command{
		{
			Name:      "version",
			Usage:     "display program version",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
		{
			Name:      "columns",
			Usage:     "list the column labels of the database",
			ArgsUsage: " ",
			Action:    runColumns,
		},
		{
			Name:      "get",
			Usage:     "display a single value",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{columnFlag, keyFlag},
			Action:    runGet,
		},
		{
			Name:      "dump",
			Usage:     "list the entries of a column",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				columnFlag,
				cli.StringFlag{
					Name:  "prefix, p",
					Value: "",
					Usage: " only keys starting with `HEX`",
				},
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " first key to list `HEX`",
				},
				reverseFlag,
				countFlag,
			},
			Action: runDump,
		},
		{
			Name:      "delete",
			Usage:     "remove a single value, requires --write",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{columnFlag, keyFlag},
			Action:    runDelete,
		},
		{
			Name:      "height",
			Usage:     "display the current chain height",
			ArgsUsage: " ",
			Action:    runHeight,
		},
		{
			Name:      "block",
			Usage:     "display a block",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{heightFlag},
			Action:    runBlock,
		},
		{
			Name:      "header",
			Usage:     "display a block header",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{heightFlag},
			Action:    runHeader,
		},
		{
			Name:      "root",
			Usage:     "display the header merkle root at a height",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				heightFlag,
				cli.BoolFlag{
					Name:  "tree, t",
					Usage: " show every level of the merkle tree",
				},
			},
			Action: runRoot,
		},
		{
			Name:      "coins",
			Usage:     "list the coins of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `DIGEST`",
				},
				reverseFlag,
				countFlag,
			},
			Action: runCoins,
		},
		{
			Name:      "state",
			Usage:     "list the storage slots of a contract",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "contract, c",
					Value: "",
					Usage: "*contract `DIGEST`",
				},
			},
			Action: runState,
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress opening the database for certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		path := c.GlobalString("database")
		if "" == path {
			return fmt.Errorf("database directory is required")
		}

		options := &storage.Options{
			ReadOnly: !c.GlobalBool("write"),
		}
		if verbose {
			fmt.Fprintf(e, "open: %q  read only: %t\n", path, options.ReadOnly)
		}

		engine, err := storage.Open(path, column.All(), options)
		if nil != err {
			return err
		}

		handle := storage.NewHandle(engine)
		db, err := database.New(handle)
		handle.Close()
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			engine:  engine,
			db:      db,
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	// close the database if it was opened
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		delete(c.App.Metadata, "config")
		return m.db.Close()
	}

	return app
}
