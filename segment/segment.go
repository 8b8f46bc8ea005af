// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segment

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/segtree/fault"
	"github.com/bitmark-inc/segtree/storage"
)

// MaxEndpointBits - upper limit on the endpoint bit width
//
// the stabbing query starts its descent at twice the maximum
// endpoint, so the width is capped two bits short of the uint64 key
// field
const MaxEndpointBits = 62

// marker records only need to exist, the data is never read
var placeholder = []byte{0x00}

// Tree - handle to an open segment index
type Tree struct {
	log         *logger.L
	epsize      uint
	maxEndpoint uint64
}

// Open - open the index inside a database directory
//
// epsize fixes the endpoint space [0, 2^epsize]; it has to match the
// value the database was created with or keys will not line up.
// truncate destroys any previous contents first
func Open(database string, epsize uint, truncate bool) (*Tree, error) {
	if epsize < 1 || epsize > MaxEndpointBits {
		return nil, fault.ErrEndpointSizeInvalid
	}

	err := storage.Initialise(database, truncate)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		log:         logger.New("segment"),
		epsize:      epsize,
		maxEndpoint: uint64(1) << epsize,
	}
	t.log.Infof("open: %q  endpoint bits: %d", database, epsize)
	return t, nil
}

// Close - release the underlying database
func (t *Tree) Close() {
	storage.Finalise()
}

// MaxEndpoint - the highest endpoint value a record may carry
func (t *Tree) MaxEndpoint() uint64 {
	return t.maxEndpoint
}

// Put - store one interval record
//
// the record becomes one segment entry per canonical node of the
// decomposition of [start, end] plus a start and an end boundary
// marker, committed as a single atomic batch
func (t *Tree) Put(owner []byte, start uint64, end uint64, level uint8) error {
	if start > end || end > t.maxEndpoint {
		return fault.ErrOutOfRange
	}
	if level > MaxLevel {
		return fault.ErrLevelOutOfRange
	}

	trx, err := storage.NewTransaction()
	if err != nil {
		return err
	}

	data := packInterval(start, end)
	for _, n := range splitInterval(start, end, 0, t.maxEndpoint) {
		trx.Put(SegmentKey(n.lower, n.upper, level, owner), data)
	}

	trx.Put(EndpointKey(start, level, KindStart, owner), placeholder)
	trx.Put(EndpointKey(end, level, KindEnd, owner), placeholder)

	err = trx.Commit()
	if err != nil {
		return err
	}

	t.log.Debugf("put: owner: %x  level: %d  interval: [%d, %d]", owner, level, start, end)
	return nil
}

// Delete - remove one interval record
//
// key construction must match Put exactly: the same decomposition is
// recomputed and those keys removed in one atomic batch.  A record
// that was never stored, or a tuple differing from the one given to
// Put, deletes silently whatever subset of its keys exists
func (t *Tree) Delete(owner []byte, start uint64, end uint64, level uint8) error {
	if start > end || end > t.maxEndpoint {
		return fault.ErrOutOfRange
	}
	if level > MaxLevel {
		return fault.ErrLevelOutOfRange
	}

	trx, err := storage.NewTransaction()
	if err != nil {
		return err
	}

	for _, n := range splitInterval(start, end, 0, t.maxEndpoint) {
		trx.Delete(SegmentKey(n.lower, n.upper, level, owner))
	}

	trx.Delete(EndpointKey(start, level, KindStart, owner))
	trx.Delete(EndpointKey(end, level, KindEnd, owner))

	err = trx.Commit()
	if err != nil {
		return err
	}

	t.log.Debugf("delete: owner: %x  level: %d  interval: [%d, %d]", owner, level, start, end)
	return nil
}
