// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// the restructuring needed at a node
type rotation int

const (
	balanced rotation = iota // no rotation, just refresh height and count
	rotateLL                 // left-left: single right rotation
	rotateLR                 // left-right: left on the child then right
	rotateRR                 // right-right: single left rotation
	rotateRL                 // right-left: right on the child then left
)

func (r rotation) String() string {
	switch r {
	case balanced:
		return "balanced"
	case rotateLL:
		return "LL"
	case rotateLR:
		return "LR"
	case rotateRR:
		return "RR"
	case rotateRL:
		return "RL"
	default:
		return "*unknown*"
	}
}

// height of a possibly empty sub-tree
func (p *Node[K, V]) subtreeHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

// size of a possibly empty sub-tree
func (p *Node[K, V]) subtreeNodes() int {
	if nil == p {
		return 0
	}
	return p.nodes
}

// left height minus right height, from the children's stored values
func (p *Node[K, V]) balance() int {
	return p.left.subtreeHeight() - p.right.subtreeHeight()
}

// refresh height and count from the children
func (p *Node[K, V]) recalculate() {
	p.height = 1 + max(p.left.subtreeHeight(), p.right.subtreeHeight())
	p.nodes = 1 + p.left.subtreeNodes() + p.right.subtreeNodes()
}

// decide which rotation, if any, a node requires
//
// a heavy side whose child is itself balanced takes the single
// rotation; only deletion can produce that shape
func classify[K, V any](p *Node[K, V]) rotation {
	switch b := p.balance(); {
	case b > 1:
		if p.left.balance() >= 0 {
			return rotateLL
		}
		return rotateLR
	case b < -1:
		if p.right.balance() <= 0 {
			return rotateRR
		}
		return rotateRL
	}
	return balanced
}

// rotate right around p, returning the new sub-tree root
//
// the caller relinks the result into p's old parent
func rotateRight[K, V any](p *Node[K, V]) *Node[K, V] {
	l := p.left
	p.left = l.right
	if nil != p.left {
		p.left.up = p
	}
	l.up = p.up
	l.right = p
	p.up = l
	p.recalculate()
	l.recalculate()
	return l
}

// rotate left around p, mirror of rotateRight
func rotateLeft[K, V any](p *Node[K, V]) *Node[K, V] {
	r := p.right
	p.right = r.left
	if nil != p.right {
		p.right.up = p
	}
	r.up = p.up
	r.left = p
	p.up = r
	p.recalculate()
	r.recalculate()
	return r
}

// link q into the place p occupied below p's parent, or as the root
//
// q.up must already have been set to the parent
func (tree *Tree[K, V]) replaceChild(up *Node[K, V], p *Node[K, V], q *Node[K, V]) {
	switch {
	case nil == up:
		tree.root = q
	case p == up.left:
		up.left = q
	default:
		up.right = q
	}
}

// apply a rotation at p and return the node now rooting that sub-tree
func (tree *Tree[K, V]) rotate(p *Node[K, V], r rotation) *Node[K, V] {
	up := p.up
	var q *Node[K, V]
	switch r {
	case rotateLL:
		q = rotateRight(p)
	case rotateLR:
		p.left = rotateLeft(p.left)
		q = rotateRight(p)
	case rotateRR:
		q = rotateLeft(p)
	case rotateRL:
		p.right = rotateRight(p.right)
		q = rotateLeft(p)
	default:
		p.recalculate()
		return p
	}
	tree.replaceChild(up, p, q)
	return q
}

// walk from p to the root restoring heights, counts and balance
//
// every ancestor is visited since the counts of all of them change on
// each insert or delete
func (tree *Tree[K, V]) rebalance(p *Node[K, V]) {
	for nil != p {
		p = tree.rotate(p, classify(p)).up
	}
}
