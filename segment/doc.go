// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package segment - a persistent segment tree over the storage layer
//
// Intervals are half-open integer ranges tagged with an opaque owner
// identifier and a one byte level.  Each interval is broken into its
// canonical decomposition: the minimal set of aligned nodes of an
// implicit binary tree over [0, maxEndpoint] whose union is exactly
// the interval.  One segment entry is stored per canonical node and
// two boundary markers per interval, all written as a single atomic
// batch.
//
// The tree is never materialised; node bounds are recomputed by
// midpoint bisection on every call so that Put, Delete and Cover
// always agree on the node set.  A stabbing query walks the bounds
// from the root to the leaf containing the query point and scans the
// store for entries at each visited node, which finds exactly the
// stored intervals containing the point.
package segment
