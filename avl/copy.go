// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Clone - an independent copy using the same allocator and policy
func (tree *Tree[K, V]) Clone() *Tree[K, V] {
	return tree.CloneWithAllocator(tree.alloc, tree.propagation)
}

// CloneWithAllocator - an independent copy whose nodes come from alloc
func (tree *Tree[K, V]) CloneWithAllocator(alloc Allocator[K, V], propagation Propagation) *Tree[K, V] {
	if nil == alloc {
		alloc = HeapAllocator[K, V]{}
	}
	return &Tree[K, V]{
		root:        cloneNodes(alloc, tree.root, nil),
		count:       tree.count,
		less:        tree.less,
		alloc:       alloc,
		propagation: propagation,
	}
}

// Assign - replace the contents with a copy of other's
//
// the allocator is replaced by other's only if other's policy is
// Propagate
func (tree *Tree[K, V]) Assign(other *Tree[K, V]) {
	if tree == other {
		return
	}
	oldRoot := tree.root
	oldAlloc := tree.alloc
	if Propagate == other.propagation {
		tree.alloc = other.alloc
		tree.propagation = other.propagation
	}
	tree.root = cloneNodes(tree.alloc, other.root, nil)
	tree.count = other.count
	tree.less = other.less
	release(oldAlloc, oldRoot)
}

// Move - a new tree taking over all nodes and the allocator, leaving
// this tree empty
func (tree *Tree[K, V]) Move() *Tree[K, V] {
	moved := *tree
	tree.root = nil
	tree.count = 0
	return &moved
}

// MoveFrom - replace the contents with other's, leaving other empty
//
// nodes are handed over when other's policy is Propagate or both
// trees share a comparable allocator; otherwise they are copied into this
// tree's allocator and other is cleared
func (tree *Tree[K, V]) MoveFrom(other *Tree[K, V]) {
	if tree == other {
		return
	}
	if Propagate != other.propagation && !sameAllocator(tree.alloc, other.alloc) {
		tree.Assign(other)
		other.Clear()
		return
	}

	release(tree.alloc, tree.root)
	if Propagate == other.propagation {
		tree.alloc = other.alloc
		tree.propagation = other.propagation
	}
	tree.root = other.root
	tree.count = other.count
	tree.less = other.less
	other.root = nil
	other.count = 0
}

// Swap - exchange contents, orderings and allocators
func (tree *Tree[K, V]) Swap(other *Tree[K, V]) {
	*tree, *other = *other, *tree
}

// internal: pre-order structural copy of a sub-tree
func cloneNodes[K, V any](alloc Allocator[K, V], src *Node[K, V], up *Node[K, V]) *Node[K, V] {
	if nil == src {
		return nil
	}
	p := alloc.New()
	if nil == p {
		panic(fault.ErrAllocationFailed)
	}
	*p = Node[K, V]{
		up:     up,
		key:    src.key,
		value:  src.value,
		height: src.height,
		nodes:  src.nodes,
	}
	p.left = cloneNodes(alloc, src.left, p)
	p.right = cloneNodes(alloc, src.right, p)
	return p
}
