// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"os"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/segtree/fault"
)

// LevelDB tuning used at open time
const (
	bloomFilterBits = 10
	writeBufferSize = 24 * 1024
)

// holds the database handle
var globalData struct {
	sync.RWMutex
	log         *logger.L
	db          *leveldb.DB
	access      Access
	trx         Transaction
	initialised bool
}

// Initialise - open up the database connection
//
// this must be called before any other storage operation
//
// truncate destroys any pre-existing database directory first; a
// failure to remove old data is logged and otherwise ignored
func Initialise(database string, truncate bool) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("storage")
	globalData.log.Info("starting…")

	if truncate {
		err := os.RemoveAll(database)
		if err != nil {
			globalData.log.Criticalf("truncate of: %q failed: %s", database, err)
		}
	}

	db, err := getDB(database)
	if err != nil {
		return err
	}
	globalData.db = db

	globalData.access = newDA(db)
	globalData.trx = newTransaction(globalData.access)

	globalData.initialised = true
	return nil
}

// Finalise - close the database connection
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return
	}

	globalData.db.Close()
	globalData.db = nil
	globalData.access = nil
	globalData.trx = nil
	globalData.log.Info("finished")
	globalData.initialised = false
}

// open the database with the index tuning parameters
func getDB(name string) (*leveldb.DB, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
		Filter:         filter.NewBloomFilter(bloomFilterBits),
		WriteBuffer:    writeBufferSize,
	}

	return leveldb.OpenFile(name, opt)
}

// NewTransaction - acquire the batch transaction
//
// only one transaction may be in progress at a time
func NewTransaction() (Transaction, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	err := globalData.trx.Begin()
	if err != nil {
		return nil, err
	}
	return globalData.trx, nil
}

// Get - read a value for a given key
//
// returns nil if the key is not present
func Get(key []byte) ([]byte, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	value, err := globalData.access.Get(key)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// Has - check if a key exists
func Has(key []byte) (bool, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false, fault.ErrNotInitialised
	}

	return globalData.access.Has(key)
}
