// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// This maintains a single LevelDB database holding the segment index.
// All keys are fixed-layout byte strings whose first byte selects the
// key domain; every numeric field is big endian fixed width so that
// the byte order of keys equals the numeric order of the decoded
// fields.  All queries are plain bounded iterations over this flat
// key space.
//
// Notes:
// 1. ++       = concatenation of byte data
// 2. number   = big endian uint64 (8 bytes)
// 3. level    = single byte (0x00..0xFE, 0xFF reserved for scan bounds)
// 4. owner    = opaque identifier, raw bytes of caller defined length
//
// Segments:
//
//   0x01 ++ lower ++ upper ++ level ++ owner
//                              - one entry per canonical node of an
//                                interval's decomposition
//                                data: start ++ end (original interval)
//
// Endpoints:
//
//   0x02 ++ value ++ level ++ kind ++ owner
//                              - boundary marker, kind 0x00 = start,
//                                kind 0x01 = end
//                                data: single zero byte placeholder
//
// Mutations arrive as Transaction batches so that the group of keys
// derived from one interval is written or removed atomically.
package storage
