// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segment

import (
	"github.com/bitmark-inc/segtree/storage"
)

// Endpoint - one boundary marker yielded by an endpoint range query
type Endpoint struct {
	Value   uint64
	Level   uint8
	IsStart bool
	Owner   []byte
}

// EndpointRange - bounds for QueryEndpoints
//
// nil Start/Stop extend the scan to the corresponding end of the
// marker space, so the zero value scans every marker in ascending
// value order
type EndpointRange struct {
	Start        *uint64
	Stop         *uint64
	Reverse      bool
	ExcludeStart bool
	ExcludeStop  bool
}

// QueryEndpoints - scan boundary markers in a value range
//
// one bounded directional iteration over the endpoint key domain; no
// pairing of start and end markers is attempted, that is left to the
// caller.  The exclude flags are handed to the underlying range scan
// unchanged.  Each call is an independent scan of current store
// state.
//
// the callback returns false to stop early
func (t *Tree) QueryEndpoints(r EndpointRange, f func(Endpoint) bool) error {
	ks := EndpointBound(0)
	if r.Start != nil {
		ks = EndpointBound(*r.Start)
	}

	// stop bound carries the reserved level so markers at the stop
	// value are inside the range for every valid level
	ke := endpointLevelBound(t.maxEndpoint, scanLevel)
	if r.Stop != nil {
		ke = endpointLevelBound(*r.Stop, scanLevel)
	}

	var decodeErr error

	err := storage.Iterate(ks, ke, r.Reverse, !r.ExcludeStart, !r.ExcludeStop, false, func(key []byte, _ []byte) bool {
		value, level, isStart, owner, err := DecodeEndpointKey(key)
		if err != nil {
			decodeErr = err
			return false
		}

		return f(Endpoint{
			Value:   value,
			Level:   level,
			IsStart: isStart,
			Owner:   owner,
		})
	})
	if err != nil {
		return err
	}
	return decodeErr
}
