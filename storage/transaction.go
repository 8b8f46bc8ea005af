// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/segtree/fault"
)

// Transaction - a group of puts and deletes committed as one atomic
// batch
//
// partial application is never observable: either Commit succeeds and
// every staged operation is durable, or nothing is changed
type Transaction interface {
	Begin() error
	Put(key []byte, value []byte)
	Delete(key []byte)
	Commit() error
	Abort()
}

type transactionData struct {
	sync.Mutex
	inUse  bool
	access Access
}

func newTransaction(access Access) Transaction {
	return &transactionData{
		inUse:  false,
		access: access,
	}
}

func (t *transactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionInUse
	}

	t.inUse = true
	t.access.Begin()
	return nil
}

func (t *transactionData) Put(key []byte, value []byte) {
	t.access.Put(key, value)
}

func (t *transactionData) Delete(key []byte) {
	t.access.Delete(key)
}

func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	t.inUse = false
	return t.access.Write()
}

// Abort - discard all staged operations
func (t *transactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	t.inUse = false
	t.access.Begin()
}
