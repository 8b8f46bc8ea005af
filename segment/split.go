// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package segment

// a canonical node of the implicit binary tree over the endpoint
// space; bounds are only ever produced by midpoint bisection
type node struct {
	lower uint64
	upper uint64
}

// canonical decomposition of [start, end] against the node
// [lower, upper]
//
// returns the minimal set of aligned nodes whose union is exactly the
// interval, left to right; at most two nodes per tree depth.
// deterministic and side effect free, so Put and Delete derive
// identical key sets from the same record
func splitInterval(start uint64, end uint64, lower uint64, upper uint64) []node {
	if start <= lower && upper <= end {
		return []node{{lower: lower, upper: upper}}
	}

	mid := (lower + upper) / 2

	var result []node
	if start <= mid {
		result = splitInterval(start, end, lower, mid)
	}
	if end > mid {
		result = append(result, splitInterval(start, end, mid+1, upper)...)
	}

	return result
}
