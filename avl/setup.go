// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"iter"
	"unsafe"

	"github.com/bitmark-inc/avlmap/fault"
)

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root        *Node[K, V]
	count       int
	less        func(a, b K) bool
	alloc       Allocator[K, V]
	propagation Propagation
}

// Pair - a key and its value
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Option - adjusts a tree as it is created
type Option[K, V any] func(*Tree[K, V])

// WithAllocator - obtain nodes from alloc instead of the Go heap
func WithAllocator[K, V any](alloc Allocator[K, V], propagation Propagation) Option[K, V] {
	return func(tree *Tree[K, V]) {
		if nil == alloc {
			alloc = HeapAllocator[K, V]{}
		}
		tree.alloc = alloc
		tree.propagation = propagation
	}
}

// New - create an initially empty tree ordered by the natural order
// of the key type
func New[K cmp.Ordered, V any](options ...Option[K, V]) *Tree[K, V] {
	return NewFunc(cmp.Less[K], options...)
}

// NewFunc - create an initially empty tree ordered by less
func NewFunc[K, V any](less func(a, b K) bool, options ...Option[K, V]) *Tree[K, V] {
	if nil == less {
		panic(fault.ErrNilComparator)
	}
	tree := &Tree[K, V]{
		root:        nil,
		count:       0,
		less:        less,
		alloc:       HeapAllocator[K, V]{},
		propagation: Retain,
	}
	for _, option := range options {
		option(tree)
	}
	return tree
}

// FromSeq - build a tree from a sequence of pairs, where a key is
// repeated the last value is kept
func FromSeq[K cmp.Ordered, V any](seq iter.Seq2[K, V], options ...Option[K, V]) *Tree[K, V] {
	return FromSeqFunc(cmp.Less[K], seq, options...)
}

// FromSeqFunc - as FromSeq with an explicit ordering
func FromSeqFunc[K, V any](less func(a, b K) bool, seq iter.Seq2[K, V], options ...Option[K, V]) *Tree[K, V] {
	tree := NewFunc(less, options...)
	for key, value := range seq {
		tree.InsertOrAssign(key, value)
	}
	return tree
}

// FromPairs - build a tree from a list of pairs, last value wins
func FromPairs[K cmp.Ordered, V any](pairs []Pair[K, V], options ...Option[K, V]) *Tree[K, V] {
	return FromPairsFunc(cmp.Less[K], pairs, options...)
}

// FromPairsFunc - as FromPairs with an explicit ordering
func FromPairsFunc[K, V any](less func(a, b K) bool, pairs []Pair[K, V], options ...Option[K, V]) *Tree[K, V] {
	tree := NewFunc(less, options...)
	for _, p := range pairs {
		tree.InsertOrAssign(p.Key, p.Value)
	}
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Len - number of nodes currently in the tree
func (tree *Tree[K, V]) Len() int {
	return tree.count
}

// Height - height of the whole tree, zero when empty
func (tree *Tree[K, V]) Height() int {
	return tree.root.subtreeHeight()
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Less - the ordering used by the tree
func (tree *Tree[K, V]) Less() func(a, b K) bool {
	return tree.less
}

// Allocator - the node source currently in use
func (tree *Tree[K, V]) Allocator() Allocator[K, V] {
	return tree.alloc
}

// Memory - approximate bytes held by the tree header and its nodes,
// not counting anything keys or values point to
func (tree *Tree[K, V]) Memory() uintptr {
	return unsafe.Sizeof(*tree) + uintptr(tree.count)*unsafe.Sizeof(Node[K, V]{})
}

// Clear - remove every node, returning them to the allocator
func (tree *Tree[K, V]) Clear() {
	release(tree.alloc, tree.root)
	tree.root = nil
	tree.count = 0
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Height - height of the sub-tree rooted at this node
func (p *Node[K, V]) Height() int {
	return p.subtreeHeight()
}

// Depth - get the depth of a node, the root is zero
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	for parent := p.up; nil != parent; parent = parent.up {
		count += 1
	}
	return count
}
