// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/fault"
)

// database layout version
const (
	currentDBVersion    = 1
	familyRecordVersion = 1
)

// registry keys live under an id no declared column can have
var (
	registryPrefix = []byte{0xff, 0xff, 0xff, 0xff}
	familyPrefix   = append(append([]byte{}, registryPrefix...), 'c', 'f', '/')
	versionKey     = append(append([]byte{}, registryPrefix...), 'v', 'e', 'r', 's', 'i', 'o', 'n')
)

// persisted options of one column family
type family struct {
	column       column.Column
	prefixLength int
}

func familyKey(c column.Column) []byte {
	return append(append([]byte{}, familyPrefix...), c.Name()...)
}

func packFamily(c column.Column) []byte {
	return []byte{familyRecordVersion, byte(c.PrefixLength())}
}

func unpackFamily(name string, data []byte) (family, error) {
	c, err := column.FromName(name)
	if nil != err {
		return family{}, fault.ErrSchemaDrift
	}
	if 2 != len(data) || familyRecordVersion != data[0] {
		return family{}, fault.ErrInvalidColumnFamily
	}
	return family{
		column:       c,
		prefixLength: int(data[1]),
	}, nil
}

// read the layout version, 0 => fresh database
func readVersion(db *leveldb.DB) (int, error) {
	value, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, fault.Backend("version", err)
	}
	if 4 != len(value) {
		return 0, fault.ErrUnsupportedDBVersion
	}
	return int(binary.BigEndian.Uint32(value)), nil
}

func packVersion(version int) []byte {
	v := make([]byte, 4)
	binary.BigEndian.PutUint32(v, uint32(version))
	return v
}

// all column family records on disk, and the declared columns that
// have no record yet
//
// the names are checked against the schema before any record is
// decoded, so an unknown name is drift rather than a corrupt record
func loadFamilies(db *leveldb.DB) (map[column.Column]family, []column.Column, error) {
	iter := db.NewIterator(ldb_util.BytesPrefix(familyPrefix), nil)
	defer iter.Release()

	names := []string{}
	records := [][]byte{}
	for iter.Next() {
		names = append(names, string(bytes.TrimPrefix(iter.Key(), familyPrefix)))
		records = append(records, copyValue(iter.Value()))
	}
	if err := iter.Error(); nil != err {
		return nil, nil, fault.Backend("families", err)
	}

	missing, err := column.Validate(names)
	if nil != err {
		return nil, nil, err
	}

	families := make(map[column.Column]family, len(names))
	for i, name := range names {
		f, err := unpackFamily(name, records[i])
		if nil != err {
			return nil, nil, err
		}
		families[f.column] = f
	}
	return families, missing, nil
}

// open every requested column family, creating the missing ones
//
// a persisted family that is not requested, or whose options changed,
// means the schema was renumbered or a column removed: that is a
// migration, never something to repair silently
func openFamilies(log *logger.L, db *leveldb.DB, columns []column.Column, readOnly bool) (map[column.Column]struct{}, error) {

	version, err := readVersion(db)
	if nil != err {
		return nil, err
	}
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fault.ErrUnsupportedDBVersion
	}

	persisted, missing, err := loadFamilies(db)
	if nil != err {
		log.Criticalf("load column families error: %s", err)
		return nil, err
	}

	requested := make(map[column.Column]struct{}, len(columns))
	for _, c := range columns {
		if !c.Valid() {
			return nil, fault.ErrUnknownColumn
		}
		requested[c] = struct{}{}
	}

	for c, f := range persisted {
		if _, ok := requested[c]; !ok {
			log.Criticalf("persisted column family: %s not in schema", c.Name())
			return nil, fault.ErrSchemaDrift
		}
		if f.prefixLength != c.PrefixLength() {
			log.Criticalf("column family: %s prefix length: %d  expected: %d", c.Name(), f.prefixLength, c.PrefixLength())
			return nil, fault.ErrSchemaDrift
		}
	}

	// missing is in id order
	create := make([]column.Column, 0, len(missing))
	for _, c := range missing {
		if _, ok := requested[c]; ok {
			create = append(create, c)
		}
	}

	if 0 == len(create) {
		log.Debugf("opened %d column families", len(requested))
		return requested, nil
	}

	if readOnly {
		log.Criticalf("read only database is missing %d column families", len(create))
		return nil, fault.Backend("open", fault.ErrColumnFamilyMissing)
	}

	batch := new(leveldb.Batch)
	for _, c := range create {
		batch.Put(familyKey(c), packFamily(c))
		if 0 != len(persisted) {
			log.Warnf("schema addition: create column family: %s (%s)", c.Name(), c)
		}
	}
	if 0 == version {
		batch.Put(versionKey, packVersion(currentDBVersion))
	}

	err = db.Write(batch, &ldb_opt.WriteOptions{Sync: true})
	if nil != err {
		return nil, fault.Backend("create families", err)
	}
	log.Infof("created %d column families", len(create))

	return requested, nil
}
