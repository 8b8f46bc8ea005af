// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"path"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/segtree/storage"
)

// test database and log files
const (
	testingDirName = "testing"
)

var databaseFileName = path.Join(testingDirName, "test.leveldb")

// common test setup routines

// remove all files created by test
func removeFiles() {
	os.RemoveAll(testingDirName)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); err != nil {
		t.Fatalf("logger initialise error: %s", err)
	}

	if err := storage.Initialise(databaseFileName, true); err != nil {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// commit a set of key/value pairs as one batch
func store(t *testing.T, elements map[string]string) {
	trx, err := storage.NewTransaction()
	if err != nil {
		t.Fatalf("transaction error: %s", err)
	}
	for key, value := range elements {
		trx.Put([]byte(key), []byte(value))
	}
	if err := trx.Commit(); err != nil {
		t.Fatalf("commit error: %s", err)
	}
}

// collect all keys yielded by a scan
func scanKeys(t *testing.T, start []byte, stop []byte, reverse bool, includeStart bool, includeStop bool) []string {
	keys := []string{}
	err := storage.Iterate(start, stop, reverse, includeStart, includeStop, false, func(key []byte, _ []byte) bool {
		keys = append(keys, string(key))
		return true
	})
	if err != nil {
		t.Fatalf("iterate error: %s", err)
	}
	return keys
}
