// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

func makeTree(keys ...int) *avl.Tree[int, int] {
	tree := avl.New[int, int]()
	for _, key := range keys {
		tree.Insert(key, key*10)
	}
	return tree
}

func TestEmptyIterators(t *testing.T) {
	tree := avl.New[int, int]()
	assert.True(t, tree.Begin().Equal(tree.End()))
	assert.True(t, tree.RBegin().Equal(tree.REnd()))
	assert.False(t, tree.End().Valid())
	assert.True(t, tree.End().Prev().Equal(tree.End()))
	assert.Nil(t, tree.First())
	assert.Nil(t, tree.Last())
	assert.PanicsWithValue(t, fault.ErrInvalidIterator, func() { tree.End().Key() })
	assert.PanicsWithValue(t, fault.ErrInvalidIterator, func() { tree.REnd().Value() })
}

func TestIteratorWalk(t *testing.T) {
	tree := makeTree(4, 2, 6, 1, 3, 5, 7)

	keys := []int{}
	for it := tree.Begin(); !it.Equal(tree.End()); it = it.Next() {
		keys = append(keys, it.Key())
		assert.Equal(t, it.Key()*10, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, keys)

	keys = keys[:0]
	for it := tree.End().Prev(); it.Valid(); it = it.Prev() {
		keys = append(keys, it.Key())
	}
	assert.Equal(t, []int{7, 6, 5, 4, 3, 2, 1}, keys)

	assert.True(t, tree.End().Next().Equal(tree.End()))
	assert.True(t, tree.Begin().Prev().Equal(tree.End()))
}

func TestReverseIterator(t *testing.T) {
	tree := makeTree(3, 1, 2)

	keys := []int{}
	for it := tree.RBegin(); !it.Equal(tree.REnd()); it = it.Next() {
		keys = append(keys, it.Key())
	}
	assert.Equal(t, []int{3, 2, 1}, keys)

	assert.True(t, tree.RBegin().Base().Equal(tree.End()))
	assert.True(t, tree.REnd().Base().Equal(tree.Begin()))
	assert.Equal(t, 1, tree.REnd().Prev().Key())
	assert.Equal(t, 2, tree.RBegin().Next().Base().Prev().Key())

	tree.RBegin().SetValue(99)
	assert.Equal(t, 99, tree.Last().Value())
}

func TestSetValue(t *testing.T) {
	tree := makeTree(1, 2, 3)
	it := tree.Find(2)
	it.SetValue(-2)
	value, err := tree.At(2)
	require.NoError(t, err)
	assert.Equal(t, -2, value)
}

// iterators to nodes other than the erased one keep their position
func TestIteratorsSurviveErase(t *testing.T) {
	tree := avl.New[int, int]()
	for key := 0; key < 64; key += 1 {
		tree.Insert(key, key)
	}
	held := map[int]avl.Iterator[int, int]{}
	for key := 0; key < 64; key += 1 {
		held[key] = tree.Find(key)
	}

	// erase every third key, including nodes with two children
	for key := 0; key < 64; key += 3 {
		_, err := tree.Erase(held[key])
		require.NoError(t, err)
		delete(held, key)
		checkTree(t, tree, "erase")
	}

	for key, it := range held {
		require.True(t, it.Valid())
		assert.Equal(t, key, it.Key())
		assert.Equal(t, key, it.Value())
		assert.True(t, it.Equal(tree.Find(key)))
	}
}

func TestDeleteWhileRanging(t *testing.T) {
	tree := makeTree(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	seen := []int{}
	for key := range tree.All() {
		seen = append(seen, key)
		if 0 == key%2 {
			tree.Delete(key)
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, seen)
	assert.Equal(t, []int{1, 3, 5, 7, 9}, slices.Collect(tree.Keys()))
	checkTree(t, tree, "ranging")
}

func TestSequences(t *testing.T) {
	tree := makeTree(2, 1, 3)
	assert.Equal(t, []int{10, 20, 30}, slices.Collect(tree.Values()))

	backward := []int{}
	for key, value := range tree.Backward() {
		assert.Equal(t, key*10, value)
		backward = append(backward, key)
	}
	assert.Equal(t, []int{3, 2, 1}, backward)

	// stopping early
	n := 0
	for range tree.All() {
		n += 1
		break
	}
	assert.Equal(t, 1, n)
}

func TestBreadthFirst(t *testing.T) {
	tree := makeTree(1, 2, 3, 4, 5, 6, 7)
	keys := []int{}
	for key := range tree.BreadthFirst() {
		keys = append(keys, key)
	}
	assert.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, keys)

	rebuilt := avl.New[int, int]()
	rebuilt.InsertSeq(tree.BreadthFirst())
	assert.True(t, avl.Equal(tree, rebuilt))
}

func TestNodeDepth(t *testing.T) {
	tree := makeTree(1, 2, 3, 4, 5, 6, 7)
	assert.Equal(t, uint(0), tree.Root().Depth())
	assert.Equal(t, uint(2), tree.First().Depth())
	assert.Equal(t, 1, tree.First().Height())
	assert.Equal(t, 2, tree.First().Parent().Key())
	assert.Nil(t, tree.Root().Parent())
}
