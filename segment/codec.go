// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segment

import (
	"encoding/binary"

	"github.com/bitmark-inc/segtree/fault"
)

// key domain tags, the first byte of every key
const (
	TagSegment  byte = 0x01
	TagEndpoint byte = 0x02
)

// boundary marker kinds
const (
	KindStart byte = 0x00
	KindEnd   byte = 0x01
)

// MaxLevel - the highest level a record may carry
//
// the next value (0xFF) is reserved: it only ever appears in the
// exclusive upper bound of a scan covering all valid levels and must
// never be assigned to a record
const MaxLevel = 0xFE

const scanLevel = MaxLevel + 1

// fixed key prefix lengths, shorter keys cannot be decoded
const (
	segmentKeyBase  = 18 // tag ++ lower ++ upper ++ level
	endpointKeyBase = 11 // tag ++ value ++ level ++ kind
)

// all numeric key fields are big endian fixed width unsigned, so that
// byte comparison of keys equals numeric comparison of the decoded
// tuples; this ordering is what every query relies on

// SegmentKey - key of one canonical node entry
func SegmentKey(lower uint64, upper uint64, level uint8, owner []byte) []byte {
	key := make([]byte, segmentKeyBase, segmentKeyBase+len(owner))
	key[0] = TagSegment
	binary.BigEndian.PutUint64(key[1:9], lower)
	binary.BigEndian.PutUint64(key[9:17], upper)
	key[17] = level
	return append(key, owner...)
}

// SegmentBound - partial segment key for scan bounds
//
// a strict prefix of every full key with the same node bounds, so it
// sorts before all of them
func SegmentBound(lower uint64, upper uint64) []byte {
	key := make([]byte, segmentKeyBase-1)
	key[0] = TagSegment
	binary.BigEndian.PutUint64(key[1:9], lower)
	binary.BigEndian.PutUint64(key[9:17], upper)
	return key
}

// DecodeSegmentKey - split a segment key into its fields
func DecodeSegmentKey(key []byte) (lower uint64, upper uint64, level uint8, owner []byte, err error) {
	if len(key) < segmentKeyBase {
		err = fault.ErrMalformedKey
		return
	}
	lower = binary.BigEndian.Uint64(key[1:9])
	upper = binary.BigEndian.Uint64(key[9:17])
	level = key[17]
	owner = key[segmentKeyBase:]
	return
}

// EndpointKey - key of one boundary marker
func EndpointKey(value uint64, level uint8, kind byte, owner []byte) []byte {
	key := make([]byte, endpointKeyBase, endpointKeyBase+len(owner))
	key[0] = TagEndpoint
	binary.BigEndian.PutUint64(key[1:9], value)
	key[9] = level
	key[10] = kind
	return append(key, owner...)
}

// EndpointBound - partial endpoint key for scan bounds
func EndpointBound(value uint64) []byte {
	key := make([]byte, endpointKeyBase-2)
	key[0] = TagEndpoint
	binary.BigEndian.PutUint64(key[1:9], value)
	return key
}

// partial endpoint key carrying a level; with scanLevel this is an
// upper bound past every marker at the value
func endpointLevelBound(value uint64, level uint8) []byte {
	key := make([]byte, endpointKeyBase-1)
	key[0] = TagEndpoint
	binary.BigEndian.PutUint64(key[1:9], value)
	key[9] = level
	return key
}

// DecodeEndpointKey - split an endpoint key into its fields
func DecodeEndpointKey(key []byte) (value uint64, level uint8, isStart bool, owner []byte, err error) {
	if len(key) < endpointKeyBase {
		err = fault.ErrMalformedKey
		return
	}
	value = binary.BigEndian.Uint64(key[1:9])
	level = key[9]
	isStart = KindStart == key[10]
	owner = key[endpointKeyBase:]
	return
}

// pack the original interval as the segment entry data
func packInterval(start uint64, end uint64) []byte {
	value := make([]byte, 16)
	binary.BigEndian.PutUint64(value[:8], start)
	binary.BigEndian.PutUint64(value[8:], end)
	return value
}

// DecodeInterval - recover the original interval from segment entry
// data
func DecodeInterval(value []byte) (start uint64, end uint64, err error) {
	if len(value) < 16 {
		err = fault.ErrMalformedValue
		return
	}
	start = binary.BigEndian.Uint64(value[:8])
	end = binary.BigEndian.Uint64(value[8:16])
	return
}
