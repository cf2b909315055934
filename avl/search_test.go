// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// zero stands for End
func keyOrZero(it avl.Iterator[int, int]) int {
	if !it.Valid() {
		return 0
	}
	return it.Key()
}

func TestBounds(t *testing.T) {
	tree := makeTree(10, 20, 30, 40)

	cases := []struct {
		key   int
		lower int
		upper int
	}{
		{5, 10, 10},
		{10, 10, 20},
		{15, 20, 20},
		{40, 40, 0},
		{45, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.lower, keyOrZero(tree.LowerBound(c.key)), "lower: %d", c.key)
		assert.Equal(t, c.upper, keyOrZero(tree.UpperBound(c.key)), "upper: %d", c.key)
	}

	empty := avl.New[int, int]()
	assert.True(t, empty.LowerBound(1).Equal(empty.End()))
	assert.True(t, empty.UpperBound(1).Equal(empty.End()))
}

func TestEqualRange(t *testing.T) {
	tree := makeTree(10, 20, 30)

	first, last := tree.EqualRange(20)
	assert.Equal(t, 20, first.Key())
	assert.Equal(t, 30, last.Key())

	first, last = tree.EqualRange(25)
	assert.True(t, first.Equal(last))
	assert.Equal(t, 30, first.Key())

	first, last = tree.EqualRange(30)
	assert.Equal(t, 30, first.Key())
	assert.True(t, last.Equal(tree.End()))
}

func TestLookup(t *testing.T) {
	tree := makeTree(1, 2, 3)

	assert.Equal(t, 1, tree.Count(2))
	assert.Equal(t, 0, tree.Count(4))
	assert.True(t, tree.Contains(3))
	assert.False(t, tree.Contains(0))

	value, ok := tree.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 30, value)
	value, ok = tree.Get(4)
	assert.False(t, ok)
	assert.Equal(t, 0, value)

	_, err := tree.At(4)
	assert.ErrorIs(t, err, fault.ErrKeyNotFound)
	assert.True(t, tree.Find(4).Equal(tree.End()))
}

func TestRankAbsent(t *testing.T) {
	tree := makeTree(10, 20, 30)
	cases := []struct {
		key   int
		rank  int
		found bool
	}{
		{5, 0, false},
		{10, 0, true},
		{15, 1, false},
		{30, 2, true},
		{35, 3, false},
	}
	for _, c := range cases {
		rank, found := tree.Rank(c.key)
		assert.Equal(t, c.rank, rank, "rank: %d", c.key)
		assert.Equal(t, c.found, found, "found: %d", c.key)
	}
}
