// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"maps"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/avl"
)

func TestInsertKeepsExisting(t *testing.T) {
	tree := avl.New[string, int]()
	it, added := tree.Insert("a", 1)
	require.True(t, added)
	assert.Equal(t, "a", it.Key())

	again, added := tree.Insert("a", 2)
	assert.False(t, added)
	assert.True(t, it.Equal(again))
	assert.Equal(t, 1, again.Value())
	assert.Equal(t, 1, tree.Len())

	_, added = tree.InsertOrAssign("a", 3)
	assert.False(t, added)
	assert.Equal(t, 3, it.Value())
	assert.Equal(t, 1, tree.Len())

	_, added = tree.InsertOrAssign("b", 4)
	assert.True(t, added)
	assert.Equal(t, 2, tree.Len())
}

func TestRef(t *testing.T) {
	tree := avl.New[string, int]()
	*tree.Ref("x") += 5
	*tree.Ref("x") += 5
	*tree.Ref("y") += 1
	assert.Equal(t, 2, tree.Len())
	x, _ := tree.Get("x")
	assert.Equal(t, 10, x)
}

// duplicate keys in a bulk build keep the last value
func TestFromPairsLastWins(t *testing.T) {
	tree := avl.FromPairs([]avl.Pair[string, int]{
		{Key: "k", Value: 1},
		{Key: "j", Value: 2},
		{Key: "k", Value: 3},
	})
	assert.Equal(t, 2, tree.Len())
	k, _ := tree.Get("k")
	assert.Equal(t, 3, k)

	fromSeq := avl.FromSeq(maps.All(map[string]int{"j": 2, "k": 3}))
	assert.True(t, avl.Equal(tree, fromSeq))
}

// bulk insert into an existing tree does not overwrite
func TestInsertSeqKeepsExisting(t *testing.T) {
	tree := makeTree(1, 2)
	tree.InsertSeq(maps.All(map[int]int{2: -1, 3: -1}))
	assert.Equal(t, []int{10, 20, -1}, slices.Collect(tree.Values()))
}

func TestCustomOrdering(t *testing.T) {
	descending := func(a, b int) bool { return a > b }
	tree := avl.NewFunc[int, string](descending)
	for _, key := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		tree.Insert(key, "")
	}
	assert.Equal(t, []int{9, 6, 5, 4, 3, 2, 1}, slices.Collect(tree.Keys()))

	folded := avl.NewFunc[string, int](func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})
	folded.Insert("Key", 1)
	_, added := folded.Insert("KEY", 2)
	assert.False(t, added)
	assert.True(t, folded.Contains("key"))
	checkTree(t, tree, "descending")
}

func TestNilComparator(t *testing.T) {
	assert.Panics(t, func() { avl.NewFunc[int, int](nil) })
}

func TestInsertHintAscending(t *testing.T) {
	tree := avl.New[int, int]()
	hint := tree.End()
	for key := 0; key < 1000; key += 1 {
		hint = tree.InsertHint(hint, key, key).Next()
	}
	checkTree(t, tree, "hint ascending")
	assert.Equal(t, 1000, tree.Len())

	// hint just before the position
	descending := avl.New[int, int]()
	hint = descending.End()
	for key := 999; key >= 0; key -= 1 {
		hint = descending.InsertHint(hint, key, key)
	}
	assert.True(t, avl.Equal(tree, descending))
}

// any hint, however far from the right position, gives the same tree
// contents as a plain insert
func TestInsertHintAnywhere(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	hinted := avl.New[int, int]()
	plain := avl.New[int, int]()

	for i := 0; i < 3000; i += 1 {
		key := rng.IntN(2000)
		var hint avl.Iterator[int, int]
		switch n := hinted.Len(); {
		case 0 == n || 0 == i%5:
			hint = hinted.End()
		default:
			hint = hinted.Select(rng.IntN(n))
		}
		it := hinted.InsertHint(hint, key, i)
		require.Equal(t, key, it.Key())
		plain.Insert(key, i)
	}
	checkTree(t, hinted, "hint random")
	assert.True(t, avl.Equal(hinted, plain))

	// an existing key is found, not duplicated or overwritten
	before := hinted.Len()
	first := hinted.Begin()
	it := hinted.InsertHint(hinted.Select(before-1), first.Key(), -1)
	assert.True(t, it.Equal(first))
	assert.NotEqual(t, -1, it.Value())
	assert.Equal(t, before, hinted.Len())

	// an iterator of another tree is ignored
	it = hinted.InsertOrAssignHint(plain.Begin(), first.Key(), -1)
	assert.Equal(t, -1, it.Value())
	assert.Equal(t, before, hinted.Len())
}
