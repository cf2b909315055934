// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered key/value map held in an AVL balanced
// tree with parent pointers to allow iteration in both directions
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are unique and ordered by a strict weak ordering supplied as
// a less function; two keys are equivalent when neither is less than
// the other.  Each node also records the size of its sub-tree so
// that the n'th item can be selected and a key can be ranked in
// logarithmic time.
//
// Delete does not copy data around: removing a node with two
// children relinks its in-order successor into its place.  So an
// Iterator stays valid until the node it refers to is erased, and
// the current item may be deleted while ranging over All.
//
// Nodes are obtained from an Allocator, which defaults to the Go
// heap; a PoolAllocator keeps reclaimed nodes on a free list and may
// be shared between trees.
package avl
