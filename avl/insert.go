// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Insert - add key with value if key is not already present
//
// returns an iterator at the node for key and true if a node was
// added; an existing value is left untouched
func (tree *Tree[K, V]) Insert(key K, value V) (Iterator[K, V], bool) {
	p, added := tree.findOrCreate(nil, key)
	if added {
		p.value = value
	}
	return Iterator[K, V]{tree: tree, node: p}, added
}

// InsertHint - as Insert but start the search near hint, which makes
// inserting keys in sorted order cheaper when hint is the item just
// after (or just before) the new key
//
// any iterator of this tree, including End, is an acceptable hint
func (tree *Tree[K, V]) InsertHint(hint Iterator[K, V], key K, value V) Iterator[K, V] {
	p, added := tree.findOrCreate(tree.hintStart(hint, key), key)
	if added {
		p.value = value
	}
	return Iterator[K, V]{tree: tree, node: p}
}

// InsertOrAssign - add key with value, or overwrite the value of an
// existing key
//
// returns true if a node was added
func (tree *Tree[K, V]) InsertOrAssign(key K, value V) (Iterator[K, V], bool) {
	p, added := tree.findOrCreate(nil, key)
	p.value = value
	return Iterator[K, V]{tree: tree, node: p}, added
}

// InsertOrAssignHint - InsertOrAssign starting the search near hint
func (tree *Tree[K, V]) InsertOrAssignHint(hint Iterator[K, V], key K, value V) Iterator[K, V] {
	p, _ := tree.findOrCreate(tree.hintStart(hint, key), key)
	p.value = value
	return Iterator[K, V]{tree: tree, node: p}
}

// InsertSeq - Insert every pair of a sequence, keys already present
// keep their value
func (tree *Tree[K, V]) InsertSeq(seq iter.Seq2[K, V]) {
	for key, value := range seq {
		tree.Insert(key, value)
	}
}

// InsertPairs - Insert each pair in turn
func (tree *Tree[K, V]) InsertPairs(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		tree.Insert(p.Key, p.Value)
	}
}

// Ref - pointer to the value stored for key, adding a node holding
// the zero value if key is absent
//
// the pointer stays valid until the node is erased
func (tree *Tree[K, V]) Ref(key K) *V {
	p, _ := tree.findOrCreate(nil, key)
	return &p.value
}

// internal: descend from start (the root if nil) to the node for key,
// creating and balancing in a new node if there is none
func (tree *Tree[K, V]) findOrCreate(start *Node[K, V], key K) (*Node[K, V], bool) {
	if nil == tree.root {
		tree.root = tree.newNode(key, nil)
		tree.count = 1
		return tree.root, true
	}

	p := start
	if nil == p {
		p = tree.root
	}

	var up *Node[K, V]
	toLeft := false
	for nil != p {
		up = p
		switch {
		case tree.less(key, p.key):
			toLeft = true
			p = p.left
		case tree.less(p.key, key):
			toLeft = false
			p = p.right
		default:
			return p, false
		}
	}

	p = tree.newNode(key, up)
	if toLeft {
		up.left = p
	} else {
		up.right = p
	}
	tree.count += 1
	tree.rebalance(up)
	return p, true
}

// internal: choose where a hinted search starts
//
// climbs from the hint until the sub-tree reached is bounded on both
// sides by ancestors that bracket key, or until the root.  The bound
// from the nearest ancestor entered from its left is the upper bound,
// from its right the lower bound; further ancestors on the same side
// only give looser bounds.  Should an ancestor fall on the wrong side
// of key the search restarts from that ancestor.
func (tree *Tree[K, V]) hintStart(hint Iterator[K, V], key K) *Node[K, V] {
	if hint.tree != tree || nil == hint.node {
		return nil
	}

	start := hint.node
	haveLower := false
	haveUpper := false
	for p := start; nil != p.up && !(haveLower && haveUpper); p = p.up {
		up := p.up
		if p == up.left {
			if haveUpper || tree.less(key, up.key) {
				haveUpper = true
				continue
			}
		} else {
			if haveLower || tree.less(up.key, key) {
				haveLower = true
				continue
			}
		}
		start = up
		haveLower = false
		haveUpper = false
	}
	return start
}
