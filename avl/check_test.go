// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/fault"
)

func sample() *Tree[int, string] {
	tree := New[int, string]()
	for _, key := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.Insert(key, "v")
	}
	return tree
}

func TestCheckDetectsDamage(t *testing.T) {
	cases := []struct {
		name     string
		damage   func(tree *Tree[int, string])
		expected error
	}{
		{"parent", func(tree *Tree[int, string]) { tree.root.left.left.up = tree.root }, fault.ErrParentLink},
		{"root parent", func(tree *Tree[int, string]) { tree.root.up = tree.root.left }, fault.ErrParentLink},
		{"height", func(tree *Tree[int, string]) { tree.root.right.height = 5 }, fault.ErrHeightMismatch},
		{"nodes", func(tree *Tree[int, string]) { tree.root.left.nodes = 2 }, fault.ErrCountMismatch},
		{"count", func(tree *Tree[int, string]) { tree.count = 6 }, fault.ErrCountMismatch},
		{"order", func(tree *Tree[int, string]) { tree.root.left.right.key = 9 }, fault.ErrOrderViolation},
		{"balance", func(tree *Tree[int, string]) {
			r := tree.root.right
			r.right.right = &Node[int, string]{key: 8, up: r.right, height: 1, nodes: 1}
			r.right.right.right = &Node[int, string]{key: 9, up: r.right.right, height: 1, nodes: 1}
			for p := r.right.right; nil != p; p = p.up {
				p.recalculate()
			}
			tree.count = 9
		}, fault.ErrUnbalanced},
	}
	for _, c := range cases {
		tree := sample()
		assert.NoError(t, tree.Check())
		c.damage(tree)
		err := tree.Check()
		assert.ErrorIs(t, err, c.expected, c.name)
		assert.True(t, fault.IsErrRecord(err), c.name)
	}
}

func TestPrint(t *testing.T) {
	tree := sample()
	b := &strings.Builder{}
	depth := tree.Print(b, false)
	assert.Equal(t, 3, depth)

	expected := "" +
		"              /------+ 7 ^6\n" +
		"       /------+ 6 ^4\n" +
		"       |      \\------+ 5 ^6\n" +
		"|------+ 4 ^<nil>\n" +
		"       |      /------+ 3 ^2\n" +
		"       \\------+ 2 ^4\n" +
		"              \\------+ 1 ^2\n"
	assert.Equal(t, expected, b.String())

	b.Reset()
	tree.Print(b, true)
	assert.Contains(t, b.String(), "4 → v ^<nil> +0 h:3 n:7")

	b.Reset()
	assert.Equal(t, 0, New[int, int]().Print(b, true))
	assert.Empty(t, b.String())
}
