// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"reflect"
	"sync"

	"github.com/bitmark-inc/avlmap/fault"
)

// Allocator - source of tree nodes
//
// trees decide whether nodes can be handed over by comparing
// allocators with ==, an allocator that is not comparable is never
// considered shared, not even with itself
type Allocator[K, V any] interface {
	New() *Node[K, V]      // a fresh node, nil if none available
	Free(node *Node[K, V]) // node is already unlinked from its tree
}

// Propagation - whether an allocator travels with the contents of a
// tree when it is assigned to or moved into another tree
type Propagation int

// the propagation policies
const (
	Retain    Propagation = iota // target keeps its own allocator
	Propagate                    // target adopts the source allocator
)

// a node in the tree
type Node[K, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	up     *Node[K, V] // points to parent node
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // height of this sub-tree, a leaf is 1
	nodes  int         // total nodes in this sub-tree
}

// HeapAllocator - the default allocator, nodes come from the Go heap
type HeapAllocator[K, V any] struct{}

// New - a zeroed node
func (HeapAllocator[K, V]) New() *Node[K, V] {
	return new(Node[K, V])
}

// Free - clear the node so the collector can reclaim its contents
func (HeapAllocator[K, V]) Free(node *Node[K, V]) {
	*node = Node[K, V]{}
}

// PoolAllocator - reuses reclaimed nodes, safe to share between trees
// running in different go routines
type PoolAllocator[K, V any] struct {
	sync.Mutex
	pool       *Node[K, V] // linked list of reclaimed nodes
	totalNodes int         // total nodes created
	freeNodes  int         // number of nodes in the pool
}

// NewPoolAllocator - create an empty pool
func NewPoolAllocator[K, V any]() *PoolAllocator[K, V] {
	return &PoolAllocator[K, V]{}
}

// New - allocate a node, reusing a reclaimed one if any are available
func (a *PoolAllocator[K, V]) New() *Node[K, V] {
	a.Lock()
	defer a.Unlock()

	if nil == a.pool {
		if 0 != a.freeNodes {
			panic(fault.ErrPoolCorrupt)
		}
		a.totalNodes += 1
		return new(Node[K, V])
	}
	p := a.pool
	a.pool = p.up
	p.up = nil // ensure freelist pointer is cleared
	a.freeNodes -= 1
	return p
}

// Free - reclaim a node and keep it in the pool
func (a *PoolAllocator[K, V]) Free(node *Node[K, V]) {
	a.Lock()
	defer a.Unlock()

	*node = Node[K, V]{}
	node.up = a.pool // use as free list pointer
	a.pool = node
	a.freeNodes += 1
}

// Stats - nodes ever created and nodes currently waiting for reuse
func (a *PoolAllocator[K, V]) Stats() (total int, free int) {
	a.Lock()
	defer a.Unlock()
	return a.totalNodes, a.freeNodes
}

// allocate and fill a node for a tree
func (tree *Tree[K, V]) newNode(key K, up *Node[K, V]) *Node[K, V] {
	p := tree.alloc.New()
	if nil == p {
		panic(fault.ErrAllocationFailed)
	}
	*p = Node[K, V]{
		up:     up,
		key:    key,
		height: 1,
		nodes:  1,
	}
	return p
}

// return a whole sub-tree to an allocator, children before parents
func release[K, V any](alloc Allocator[K, V], p *Node[K, V]) {
	if nil == p {
		return
	}
	release(alloc, p.left)
	release(alloc, p.right)
	alloc.Free(p)
}

// true if both trees draw nodes from the same allocator
func sameAllocator[K, V any](a Allocator[K, V], b Allocator[K, V]) bool {
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}
