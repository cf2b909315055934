// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/avl"
)

func TestEqual(t *testing.T) {
	a := makeTree(1, 2, 3)
	b := makeTree(3, 2, 1)
	assert.True(t, avl.Equal(a, b))

	b.InsertOrAssign(2, 0)
	assert.False(t, avl.Equal(a, b))

	c := makeTree(1, 2)
	assert.False(t, avl.Equal(a, c))

	d := makeTree(1, 2, 4)
	assert.False(t, avl.Equal(a, d))

	assert.True(t, avl.Equal(avl.New[int, int](), avl.New[int, int]()))
}

func TestEqualFunc(t *testing.T) {
	a := avl.New[string, string]()
	b := avl.New[string, string]()
	a.Insert("k", "Value")
	b.Insert("k", "VALUE")
	assert.False(t, avl.Equal(a, b))
	assert.True(t, avl.EqualFunc(a, b, strings.EqualFold))
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a        []int
		b        []int
		expected int
	}{
		{nil, nil, 0},
		{[]int{1, 2}, []int{1, 2}, 0},
		{[]int{1}, []int{1, 2}, -1},
		{[]int{1, 2}, []int{1}, +1},
		{[]int{1, 3}, []int{1, 2}, +1},
		{[]int{0, 9}, []int{1}, -1},
	}
	for _, c := range cases {
		a := makeTree(c.a...)
		b := makeTree(c.b...)
		assert.Equal(t, c.expected, avl.Compare(a, b), "%v <=> %v", c.a, c.b)
		assert.Equal(t, -c.expected, avl.Compare(b, a), "%v <=> %v", c.b, c.a)
	}

	// same keys, values decide
	a := makeTree(1, 2)
	b := makeTree(1, 2)
	b.InsertOrAssign(2, 21)
	assert.Equal(t, -1, avl.Compare(a, b))
	assert.Equal(t, +1, avl.CompareFunc(a, b, func(x int, y int) int { return y - x }))
}
