// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlmap/fault"
)

// Find - iterator at key, or End if key is absent
func (tree *Tree[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{tree: tree, node: tree.search(key)}
}

// Contains - true if key is present
func (tree *Tree[K, V]) Contains(key K) bool {
	return nil != tree.search(key)
}

// Count - number of items with key, either zero or one
func (tree *Tree[K, V]) Count(key K) int {
	if nil == tree.search(key) {
		return 0
	}
	return 1
}

// Get - value for key and whether it was present
func (tree *Tree[K, V]) Get(key K) (V, bool) {
	p := tree.search(key)
	if nil == p {
		var zero V
		return zero, false
	}
	return p.value, true
}

// At - value for key, or ErrKeyNotFound
func (tree *Tree[K, V]) At(key K) (V, error) {
	p := tree.search(key)
	if nil == p {
		var zero V
		return zero, fmt.Errorf("%w: %v", fault.ErrKeyNotFound, key)
	}
	return p.value, nil
}

// LowerBound - iterator at the first item whose key is not less than
// key, End if there is none
func (tree *Tree[K, V]) LowerBound(key K) Iterator[K, V] {
	var found *Node[K, V]
	for p := tree.root; nil != p; {
		if tree.less(p.key, key) {
			p = p.right
		} else {
			found = p
			p = p.left
		}
	}
	return Iterator[K, V]{tree: tree, node: found}
}

// UpperBound - iterator at the first item whose key is greater than
// key, End if there is none
func (tree *Tree[K, V]) UpperBound(key K) Iterator[K, V] {
	var found *Node[K, V]
	for p := tree.root; nil != p; {
		if tree.less(key, p.key) {
			found = p
			p = p.left
		} else {
			p = p.right
		}
	}
	return Iterator[K, V]{tree: tree, node: found}
}

// EqualRange - the half open range of items equivalent to key, empty
// with both ends at LowerBound(key) when key is absent
func (tree *Tree[K, V]) EqualRange(key K) (Iterator[K, V], Iterator[K, V]) {
	first := tree.LowerBound(key)
	if nil != first.node && !tree.less(key, first.node.key) {
		return first, Iterator[K, V]{tree: tree, node: first.node.Next()}
	}
	return first, first
}

// Select - iterator at the index'th item in key order, End if index
// is out of range
func (tree *Tree[K, V]) Select(index int) Iterator[K, V] {
	if index < 0 || index >= tree.count {
		return tree.End()
	}
	p := tree.root
	for nil != p {
		nl := p.left.subtreeNodes()
		switch {
		case index < nl:
			p = p.left
		case index > nl:
			// subtract left nodes + 1 (for this node)
			index -= nl + 1
			p = p.right
		default:
			return Iterator[K, V]{tree: tree, node: p}
		}
	}
	return tree.End()
}

// Rank - position of key in key order and true if present; when
// absent, the number of keys less than key and false
func (tree *Tree[K, V]) Rank(key K) (int, bool) {
	index := 0
	for p := tree.root; nil != p; {
		switch {
		case tree.less(key, p.key):
			p = p.left
		case tree.less(p.key, key):
			index += p.left.subtreeNodes() + 1
			p = p.right
		default:
			return index + p.left.subtreeNodes(), true
		}
	}
	return index, false
}

// internal: locate the node holding key
func (tree *Tree[K, V]) search(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch {
		case tree.less(key, p.key):
			p = p.left
		case tree.less(p.key, key):
			p = p.right
		default:
			return p
		}
	}
	return nil
}
