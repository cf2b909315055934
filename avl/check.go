// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlmap/fault"
)

// Check - verify the parent links, stored heights and counts, the
// balance of every node and the ordering of the keys
//
// returns nil for a consistent tree
func (tree *Tree[K, V]) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return fmt.Errorf("%w: root has a parent", fault.ErrParentLink)
	}
	n, err := tree.checkNode(tree.root, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: nodes: %d  count: %d", fault.ErrCountMismatch, n, tree.count)
	}

	var previous *Node[K, V]
	for p := tree.root.first(); nil != p; p = p.Next() {
		if nil != previous && !tree.less(previous.key, p.key) {
			return fmt.Errorf("%w at key: %v  previous: %v", fault.ErrOrderViolation, p.key, previous.key)
		}
		previous = p
	}
	return nil
}

// internal: consistency checker, returns the number of nodes below
// and including p
func (tree *Tree[K, V]) checkNode(p *Node[K, V], up *Node[K, V]) (int, error) {
	if nil == p {
		return 0, nil
	}
	if p.up != up {
		return 0, fmt.Errorf("%w at key: %v", fault.ErrParentLink, p.key)
	}
	nl, err := tree.checkNode(p.left, p)
	if nil != err {
		return 0, err
	}
	nr, err := tree.checkNode(p.right, p)
	if nil != err {
		return 0, err
	}

	hl := p.left.subtreeHeight()
	hr := p.right.subtreeHeight()
	if p.height != 1+max(hl, hr) {
		return 0, fmt.Errorf("%w at key: %v  stored: %d  actual: %d", fault.ErrHeightMismatch, p.key, p.height, 1+max(hl, hr))
	}
	if hl-hr > 1 || hr-hl > 1 {
		return 0, fmt.Errorf("%w at key: %v  left: %d  right: %d", fault.ErrUnbalanced, p.key, hl, hr)
	}
	if p.nodes != 1+nl+nr {
		return 0, fmt.Errorf("%w at key: %v  stored: %d  actual: %d", fault.ErrCountMismatch, p.key, p.nodes, 1+nl+nr)
	}
	return 1 + nl + nr, nil
}
