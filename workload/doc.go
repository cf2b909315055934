// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - randomised exercise of avl trees
//
// Each worker owns one tree and mirrors every operation on a Go map,
// failing as soon as the two disagree or the tree reports a broken
// invariant.  Workers may share a node pool.
package workload
