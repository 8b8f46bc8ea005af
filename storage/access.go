// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Access - batch staging over the database
type Access interface {
	Begin()
	Put([]byte, []byte)
	Delete([]byte)
	Write() error
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
}

type accessData struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

func newDA(db *leveldb.DB) Access {
	return &accessData{
		db:    db,
		batch: new(leveldb.Batch),
	}
}

func (d *accessData) Begin() {
	d.batch.Reset()
}

func (d *accessData) Put(key []byte, value []byte) {
	d.batch.Put(key, value)
}

func (d *accessData) Delete(key []byte) {
	d.batch.Delete(key)
}

// Write - commit the staged batch, all or nothing
func (d *accessData) Write() error {
	err := d.db.Write(d.batch, nil)
	d.Begin()
	return err
}

func (d *accessData) Get(key []byte) ([]byte, error) {
	return d.db.Get(key, nil)
}

func (d *accessData) Has(key []byte) (bool, error) {
	return d.db.Has(key, nil)
}

func (d *accessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
