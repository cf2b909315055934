// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avlmap/fault"
)

// Iterator - position in a tree, either at a node or at End
//
// remains valid until the node it refers to is erased; dereferencing
// End panics with ErrInvalidIterator
type Iterator[K, V any] struct {
	tree *Tree[K, V]
	node *Node[K, V]
}

// ReverseIterator - position in a tree moving from the highest key
// down to REnd
type ReverseIterator[K, V any] struct {
	tree *Tree[K, V]
	node *Node[K, V]
}

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// Begin - iterator at the lowest key, End if empty
func (tree *Tree[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{tree: tree, node: tree.root.first()}
}

// End - the position one past the highest key
func (tree *Tree[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{tree: tree}
}

// RBegin - reverse iterator at the highest key, REnd if empty
func (tree *Tree[K, V]) RBegin() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{tree: tree, node: tree.root.last()}
}

// REnd - the position one before the lowest key
func (tree *Tree[K, V]) REnd() ReverseIterator[K, V] {
	return ReverseIterator[K, V]{tree: tree}
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K, V]) Next() *Node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	for nil != p.up && p == p.up.right {
		p = p.up
	}
	return p.up
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if nil != p.left {
		return p.left.last()
	}
	for nil != p.up && p == p.up.left {
		p = p.up
	}
	return p.up
}

// Valid - true unless at End
func (it Iterator[K, V]) Valid() bool {
	return nil != it.node
}

// Key - key at the current position
func (it Iterator[K, V]) Key() K {
	return it.deref().key
}

// Value - value at the current position
func (it Iterator[K, V]) Value() V {
	return it.deref().value
}

// SetValue - replace the value at the current position
func (it Iterator[K, V]) SetValue(value V) {
	it.deref().value = value
}

// Node - the node at the current position, nil at End
func (it Iterator[K, V]) Node() *Node[K, V] {
	return it.node
}

// Next - the following position; End stays at End
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if nil == it.node {
		return it
	}
	return Iterator[K, V]{tree: it.tree, node: it.node.Next()}
}

// Prev - the preceding position; End moves to the highest key and
// the lowest key moves to End
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if nil == it.node {
		if nil == it.tree {
			return it
		}
		return Iterator[K, V]{tree: it.tree, node: it.tree.root.last()}
	}
	return Iterator[K, V]{tree: it.tree, node: it.node.Prev()}
}

// Equal - true if both refer to the same position of the same tree
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.tree == other.tree && it.node == other.node
}

func (it Iterator[K, V]) deref() *Node[K, V] {
	if nil == it.node {
		panic(fault.ErrInvalidIterator)
	}
	return it.node
}

// Valid - true unless at REnd
func (it ReverseIterator[K, V]) Valid() bool {
	return nil != it.node
}

// Key - key at the current position
func (it ReverseIterator[K, V]) Key() K {
	return it.deref().key
}

// Value - value at the current position
func (it ReverseIterator[K, V]) Value() V {
	return it.deref().value
}

// SetValue - replace the value at the current position
func (it ReverseIterator[K, V]) SetValue(value V) {
	it.deref().value = value
}

// Next - move towards lower keys; REnd stays at REnd
func (it ReverseIterator[K, V]) Next() ReverseIterator[K, V] {
	if nil == it.node {
		return it
	}
	return ReverseIterator[K, V]{tree: it.tree, node: it.node.Prev()}
}

// Prev - move towards higher keys; REnd moves to the lowest key
func (it ReverseIterator[K, V]) Prev() ReverseIterator[K, V] {
	if nil == it.node {
		if nil == it.tree {
			return it
		}
		return ReverseIterator[K, V]{tree: it.tree, node: it.tree.root.first()}
	}
	return ReverseIterator[K, V]{tree: it.tree, node: it.node.Next()}
}

// Base - the forward iterator one position after this one, so RBegin
// gives End and REnd gives Begin
func (it ReverseIterator[K, V]) Base() Iterator[K, V] {
	if nil == it.node {
		if nil == it.tree {
			return Iterator[K, V]{}
		}
		return it.tree.Begin()
	}
	return Iterator[K, V]{tree: it.tree, node: it.node.Next()}
}

// Equal - true if both refer to the same position of the same tree
func (it ReverseIterator[K, V]) Equal(other ReverseIterator[K, V]) bool {
	return it.tree == other.tree && it.node == other.node
}

func (it ReverseIterator[K, V]) deref() *Node[K, V] {
	if nil == it.node {
		panic(fault.ErrInvalidIterator)
	}
	return it.node
}

// All - every pair in ascending key order
//
// the pair just yielded may be deleted from inside the loop
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.root.first(); nil != p; {
			next := p.Next()
			if !yield(p.key, p.value) {
				return
			}
			p = next
		}
	}
}

// Backward - every pair in descending key order
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.root.last(); nil != p; {
			prev := p.Prev()
			if !yield(p.key, p.value) {
				return
			}
			p = prev
		}
	}
}

// Keys - keys in ascending order
func (tree *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range tree.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values - values in ascending key order
func (tree *Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range tree.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// BreadthFirst - every pair level by level from the root, left to
// right within a level
func (tree *Tree[K, V]) BreadthFirst() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if nil == tree.root {
			return
		}
		queue := []*Node[K, V]{tree.root}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			if !yield(p.key, p.value) {
				return
			}
			if nil != p.left {
				queue = append(queue, p.left)
			}
			if nil != p.right {
				queue = append(queue, p.right)
			}
		}
	}
}
