// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/segtree/fault"
)

// Iterate - bounded scan over the key space in strict byte order
//
// start == nil scans from the first key and stop == nil scans through
// the last key.  includeStart and includeStop select whether a key
// exactly equal to the corresponding bound is yielded; keys strictly
// between the bounds are always yielded.  When includeValues is false
// the callback receives a nil value.  The callback returns false to
// stop the scan early.
//
// key and value slices handed to the callback are copies and may be
// retained
func Iterate(start []byte, stop []byte, reverse bool, includeStart bool, includeStop bool, includeValues bool, f func(key []byte, value []byte) bool) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	searchRange := ldb_util.Range{}
	if start != nil {
		if includeStart {
			searchRange.Start = start
		} else {
			searchRange.Start = successor(start)
		}
	}
	if stop != nil {
		if includeStop {
			searchRange.Limit = successor(stop)
		} else {
			searchRange.Limit = stop
		}
	}

	iter := globalData.access.Iterator(&searchRange)

	yield := func() bool {

		// contents of the returned slices must not be modified, and
		// are only valid until the next call to Next/Prev
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key))
		copy(dataKey, key)

		var dataValue []byte
		if includeValues {
			dataValue = make([]byte, len(value))
			copy(dataValue, value)
		}

		return f(dataKey, dataValue)
	}

	if reverse {
	backward:
		for ok := iter.Last(); ok; ok = iter.Prev() {
			if !yield() {
				break backward
			}
		}
	} else {
	forward:
		for iter.Next() {
			if !yield() {
				break forward
			}
		}
	}
	iter.Release()
	return iter.Error()
}

// the smallest key that sorts after k, so that an exclusive bound can
// be widened to an inclusive one and vice versa
func successor(k []byte) []byte {
	s := make([]byte, len(k)+1)
	copy(s, k)
	return s
}
