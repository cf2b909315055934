// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlmap/fault"
)

// Erase - remove the item at it
//
// returns an iterator at the item that followed it; iterators to any
// other item remain valid
func (tree *Tree[K, V]) Erase(it Iterator[K, V]) (Iterator[K, V], error) {
	if !tree.owns(it) {
		return tree.End(), fault.ErrInvalidIterator
	}
	next := tree.removeNode(it.node)
	return Iterator[K, V]{tree: tree, node: next}, nil
}

// EraseRange - remove the items from first up to but not including
// last, returns last
func (tree *Tree[K, V]) EraseRange(first Iterator[K, V], last Iterator[K, V]) (Iterator[K, V], error) {
	if first.Equal(last) {
		if first.tree != tree {
			return tree.End(), fault.ErrInvalidIterator
		}
		return last, nil
	}
	if !tree.owns(first) || last.tree != tree {
		return tree.End(), fault.ErrInvalidIterator
	}
	if nil != last.node {
		if !tree.owns(last) {
			return tree.End(), fault.ErrInvalidIterator
		}
		if tree.less(last.node.key, first.node.key) {
			return tree.End(), fault.ErrInvalidRange
		}
	}

	p := first.node
	for p != last.node {
		p = tree.removeNode(p)
	}
	return last, nil
}

// Delete - remove key if present, returns the number of items removed
func (tree *Tree[K, V]) Delete(key K) int {
	p := tree.search(key)
	if nil == p {
		return 0
	}
	tree.removeNode(p)
	return 1
}

// DeleteFunc - remove every item for which del returns true, returns
// the number of items removed
func (tree *Tree[K, V]) DeleteFunc(del func(K, V) bool) int {
	n := 0
	for p := tree.root.first(); nil != p; {
		if del(p.key, p.value) {
			p = tree.removeNode(p)
			n += 1
		} else {
			p = p.Next()
		}
	}
	return n
}

// internal: true if it refers to a node currently linked into tree
//
// a node released to a pool and reused cannot be told apart
func (tree *Tree[K, V]) owns(it Iterator[K, V]) bool {
	if it.tree != tree || nil == it.node {
		return false
	}
	p := it.node
	for nil != p.up {
		p = p.up
	}
	return p == tree.root
}

// internal: unlink q, rebalance and release it
//
// a node with two children is replaced by its in-order successor
// node, not by a copy of the successor's data; returns the node that
// followed q
func (tree *Tree[K, V]) removeNode(q *Node[K, V]) *Node[K, V] {
	next := q.Next()
	up := q.up

	var from *Node[K, V] // lowest node whose height may have changed
	if nil == q.left || nil == q.right {
		child := q.left
		if nil == child {
			child = q.right
		}
		if nil != child {
			child.up = up
		}
		tree.replaceChild(up, q, child)
		from = up
	} else {
		s := next // leftmost node of the right sub-tree
		if s == q.right {
			from = s
		} else {
			from = s.up
			from.left = s.right
			if nil != s.right {
				s.right.up = from
			}
			s.right = q.right
			s.right.up = s
		}
		s.left = q.left
		s.left.up = s
		s.up = up
		tree.replaceChild(up, q, s)
	}

	tree.count -= 1
	tree.rebalance(from)
	tree.alloc.Free(q)
	return next
}
