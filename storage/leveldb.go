// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_errors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/statedb/column"
	"github.com/bitmark-inc/statedb/fault"
	"github.com/bitmark-inc/statedb/metrics"
)

// bits per key of the bloom filter
const bloomFilterBits = 10

// Options - engine configuration fixed at open time
type Options struct {
	ReadOnly           bool
	DisableCompression bool
	BlockCacheCapacity int // bytes, 0 => goleveldb default
	WriteBuffer        int // bytes, 0 => goleveldb default

	// serialise Put/Delete/Replace/Take against other writers of the
	// same key so the previous value they return is exact
	SerializeReadModifyWrite bool

	// nil => metrics disabled
	Metrics *metrics.DatabaseMetrics
}

// LevelDB - the on-disk engine
//
// safe for concurrent use; goleveldb provides the locking
type LevelDB struct {
	log      *logger.L
	db       *leveldb.DB
	families map[column.Column]struct{}
	metrics  *metrics.DatabaseMetrics
	locks    *keyLocks
}

// DefaultOpen - open with every declared column and default options
func DefaultOpen(path string) (*LevelDB, error) {
	return Open(path, column.All(), nil)
}

// Open - open or create a database with the given column families
func Open(path string, columns []column.Column, options *Options) (*LevelDB, error) {
	if nil == options {
		options = &Options{}
	}

	log := logger.New("storage")

	o := &ldb_opt.Options{
		ErrorIfExist:       false,
		ErrorIfMissing:     options.ReadOnly,
		ReadOnly:           options.ReadOnly,
		Compression:        ldb_opt.SnappyCompression,
		BlockCacheCapacity: options.BlockCacheCapacity,
		WriteBuffer:        options.WriteBuffer,
		Filter:             filter.NewBloomFilter(bloomFilterBits),
	}
	if options.DisableCompression {
		o.Compression = ldb_opt.NoCompression
	}

	db, err := leveldb.OpenFile(path, o)
	if nil != err {
		if ldb_errors.IsCorrupted(err) {
			log.Criticalf("database: %q is corrupted: %s", path, err)
		} else {
			log.Criticalf("database: %q open error: %s", path, err)
		}
		return nil, fault.Backend("open", err)
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	families, err := openFamilies(log, db, columns, options.ReadOnly)
	if nil != err {
		return nil, err
	}

	engine := &LevelDB{
		log:      log,
		db:       db,
		families: families,
		metrics:  options.Metrics,
	}
	if options.SerializeReadModifyWrite {
		engine.locks = new(keyLocks)
	}

	log.Infof("opened: %q  read only: %v  compression: %v", path, options.ReadOnly, !options.DisableCompression)

	ok = true // prevent db close
	return engine, nil
}

// check the column family was opened
func (l *LevelDB) family(c column.Column) error {
	if _, ok := l.families[c]; !ok {
		return fault.Backend(c.Name(), fault.ErrColumnFamilyMissing)
	}
	return nil
}

// family check plus key validation for writes
func (l *LevelDB) writable(c column.Column, key []byte) error {
	if err := checkWrite(c, key); nil != err {
		return err
	}
	return l.family(c)
}

// internal read of a column prefixed key
func (l *LevelDB) get(k []byte) ([]byte, bool, error) {
	l.metrics.Read()

	value, err := l.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil, false, nil
	} else if nil != err {
		return nil, false, fault.Backend("get", err)
	}

	l.metrics.ObserveRead(len(value))
	return copyValue(value), true, nil
}

// Get - value for key
func (l *LevelDB) Get(key []byte, c column.Column) ([]byte, bool, error) {
	if err := l.family(c); nil != err {
		return nil, false, err
	}
	return l.get(columnKey(c, key))
}

// ReadAlloc - same as Get
func (l *LevelDB) ReadAlloc(key []byte, c column.Column) ([]byte, bool, error) {
	return l.Get(key, c)
}

// Exists - probe for key
func (l *LevelDB) Exists(key []byte, c column.Column) (bool, error) {
	if err := l.family(c); nil != err {
		return false, err
	}
	l.metrics.Read()

	found, err := l.db.Has(columnKey(c, key), nil)
	if nil != err {
		return false, fault.Backend("has", err)
	}
	return found, nil
}

// SizeOfValue - length of stored value
func (l *LevelDB) SizeOfValue(key []byte, c column.Column) (int, bool, error) {
	if err := l.family(c); nil != err {
		return 0, false, err
	}
	l.metrics.Read()

	// Get would copy the value out, the iterator only points at it
	k := columnKey(c, key)
	iter := l.db.NewIterator(&ldb_util.Range{Start: k, Limit: columnRange(c).Limit}, nil)
	defer iter.Release()

	if !iter.First() {
		if err := iter.Error(); nil != err {
			return 0, false, fault.Backend("size", err)
		}
		return 0, false, nil
	}
	if !bytes.Equal(k, iter.Key()) {
		return 0, false, nil
	}
	return len(iter.Value()), true, nil
}

// Read - copy value into a caller supplied buffer
func (l *LevelDB) Read(key []byte, c column.Column, buf []byte) (int, bool, error) {
	if err := l.family(c); nil != err {
		return 0, false, err
	}
	l.metrics.Read()

	value, err := l.db.Get(columnKey(c, key), nil)
	if leveldb.ErrNotFound == err {
		return 0, false, nil
	} else if nil != err {
		return 0, false, fault.Backend("read", err)
	}
	if len(value) > len(buf) {
		return 0, true, fault.ErrBufferTooSmall
	}

	n := copy(buf, value)
	l.metrics.ObserveRead(n)
	return n, true, nil
}

// Put - store a value and return the previous one
func (l *LevelDB) Put(key []byte, c column.Column, value []byte) ([]byte, bool, error) {
	if err := l.writable(c, key); nil != err {
		return nil, false, err
	}
	l.metrics.WriteBytes(len(value))

	k := columnKey(c, key)
	defer l.locks.lock(k)()

	// without locks another writer can get between these two steps
	previous, found, err := l.get(k)
	if nil != err {
		return nil, false, err
	}
	if err := l.db.Put(k, value, nil); nil != err {
		return nil, false, fault.Backend("put", err)
	}
	return previous, found, nil
}

// Write - store a value without reading the previous one
func (l *LevelDB) Write(key []byte, c column.Column, buf []byte) (int, error) {
	if err := l.writable(c, key); nil != err {
		return 0, err
	}
	l.metrics.WriteBytes(len(buf))

	k := columnKey(c, key)
	defer l.locks.lock(k)()

	if err := l.db.Put(k, buf, nil); nil != err {
		return 0, fault.Backend("write", err)
	}
	return len(buf), nil
}

// Replace - store a value, return bytes written and the previous value
func (l *LevelDB) Replace(key []byte, c column.Column, buf []byte) (int, []byte, bool, error) {
	if err := l.writable(c, key); nil != err {
		return 0, nil, false, err
	}
	l.metrics.WriteBytes(len(buf))

	k := columnKey(c, key)
	defer l.locks.lock(k)()

	previous, found, err := l.get(k)
	if nil != err {
		return 0, nil, false, err
	}
	if err := l.db.Put(k, buf, nil); nil != err {
		return 0, nil, false, fault.Backend("replace", err)
	}
	return len(buf), previous, found, nil
}

// Delete - remove a key and return the removed value
func (l *LevelDB) Delete(key []byte, c column.Column) ([]byte, bool, error) {
	return l.remove("delete", key, c)
}

// Take - remove a key and return the removed value
func (l *LevelDB) Take(key []byte, c column.Column) ([]byte, bool, error) {
	return l.remove("take", key, c)
}

func (l *LevelDB) remove(operation string, key []byte, c column.Column) ([]byte, bool, error) {
	if err := l.family(c); nil != err {
		return nil, false, err
	}
	l.metrics.Write()

	k := columnKey(c, key)
	defer l.locks.lock(k)()

	previous, found, err := l.get(k)
	if nil != err {
		return nil, false, err
	}
	if err := l.db.Delete(k, nil); nil != err {
		return nil, false, fault.Backend(operation, err)
	}
	return previous, found, nil
}

// IterAll - directional iteration over a column
func (l *LevelDB) IterAll(c column.Column, prefix []byte, start []byte, direction Direction) Iterator {
	if err := l.family(c); nil != err {
		return &emptyIterator{err: err}
	}

	p := planIteration(c, prefix, start)
	if p.empty {
		return &emptyIterator{}
	}

	return newRangeIterator(l.db.NewIterator(columnRange(c), nil), p, direction, l.metrics)
}

// BatchWrite - apply all operations as one atomic unit
func (l *LevelDB) BatchWrite(operations []WriteOperation) error {
	batch := new(leveldb.Batch)
	keys := make([][]byte, 0, len(operations))

	for _, op := range operations {
		switch op.Type {
		case Insert:
			if err := l.writable(op.Column, op.Key); nil != err {
				return err
			}
			k := columnKey(op.Column, op.Key)
			batch.Put(k, op.Value)
			keys = append(keys, k)
		case Remove:
			if err := l.family(op.Column); nil != err {
				return err
			}
			k := columnKey(op.Column, op.Key)
			batch.Delete(k)
			keys = append(keys, k)
		default:
			return fault.ErrInvalidOperation
		}
	}

	l.metrics.WriteBytes(len(batch.Dump()))

	defer l.locks.lockAll(keys)()

	if err := l.db.Write(batch, nil); nil != err {
		return fault.Backend("batch", err)
	}
	return nil
}

// Columns - names of the opened column families in id order
func (l *LevelDB) Columns() []string {
	names := make([]string, 0, len(l.families))
	for _, c := range column.All() {
		if _, ok := l.families[c]; ok {
			names = append(names, c.Name())
		}
	}
	return names
}

// Stats - engine statistics for logging
func (l *LevelDB) Stats() (string, error) {
	s, err := l.db.GetProperty("leveldb.stats")
	if nil != err {
		return "", fault.Backend("stats", err)
	}
	return s, nil
}

// CompactColumn - compact the key range of one column
func (l *LevelDB) CompactColumn(c column.Column) error {
	if err := l.family(c); nil != err {
		return err
	}
	if err := l.db.CompactRange(*columnRange(c)); nil != err {
		return fault.Backend("compact", err)
	}
	return nil
}

// Close - flush and close the database
func (l *LevelDB) Close() error {
	l.log.Info("closing…")
	if err := l.db.Close(); nil != err {
		return fault.Backend("close", err)
	}
	l.log.Flush()
	return nil
}
