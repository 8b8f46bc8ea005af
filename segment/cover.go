// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segment

import (
	"github.com/bitmark-inc/segtree/storage"
)

// Record - one interval yielded by a stabbing query
type Record struct {
	Owner []byte
	Level uint8
	Start uint64
	End   uint64
}

// Cover - stabbing query: every stored interval containing value
//
// walks the implicit binary tree from the root towards the leaf for
// value; every canonical node containing value is on that path, so
// scanning the store at each visited node yields exactly the live
// intervals covering the point.  Within one node entries arrive in
// reverse key order (higher level/owner first); no ordering beyond
// that is promised.  Each call is an independent scan of current
// store state.
//
// the callback returns false to stop early
func (t *Tree) Cover(value uint64, f func(Record) bool) error {
	lower := uint64(0)
	upper := 2 * t.maxEndpoint

	for {
		mid := (lower + upper) / 2
		if value <= mid {
			upper = mid
		} else {
			lower = mid + 1
		}

		ks := SegmentBound(lower, upper)
		ke := SegmentKey(lower, upper, scanLevel, nil)

		stopped := false
		var decodeErr error

		err := storage.Iterate(ks, ke, true, false, false, true, func(key []byte, data []byte) bool {
			_, _, level, owner, err := DecodeSegmentKey(key)
			if err != nil {
				decodeErr = err
				return false
			}
			start, end, err := DecodeInterval(data)
			if err != nil {
				decodeErr = err
				return false
			}

			if !f(Record{
				Owner: owner,
				Level: level,
				Start: start,
				End:   end,
			}) {
				stopped = true
				return false
			}
			return true
		})
		if err != nil {
			return err
		}
		if decodeErr != nil {
			return decodeErr
		}
		if stopped {
			return nil
		}

		if lower == upper { // leaf reached
			return nil
		}
	}
}
