// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlmap/avl"
)

func TestPoolReuse(t *testing.T) {
	pool := avl.NewPoolAllocator[string, int]()
	tree := avl.NewFunc(func(a, b string) bool { return a < b }, avl.WithAllocator[string, int](pool, avl.Retain))

	for _, key := range []string{"a", "b", "c", "d"} {
		tree.Insert(key, 0)
	}
	total, free := pool.Stats()
	assert.Equal(t, 4, total)
	assert.Equal(t, 0, free)

	tree.Delete("b")
	tree.Delete("c")
	total, free = pool.Stats()
	assert.Equal(t, 4, total)
	assert.Equal(t, 2, free)

	tree.Insert("e", 0)
	tree.Insert("f", 0)
	tree.Insert("g", 0)
	total, free = pool.Stats()
	assert.Equal(t, 5, total)
	assert.Equal(t, 0, free)
	checkTree(t, tree, "pool")
}

// reclaimed nodes carry nothing over from their previous use
func TestPoolNodeCleared(t *testing.T) {
	pool := avl.NewPoolAllocator[int, []byte]()
	tree := avl.New(avl.WithAllocator[int, []byte](pool, avl.Retain))
	tree.Insert(1, []byte("payload"))
	tree.Delete(1)

	p := pool.New()
	assert.Nil(t, p.Value())
	assert.Nil(t, p.Parent())
	assert.Equal(t, 0, p.Key())
}

func TestPoolShared(t *testing.T) {
	pool := avl.NewPoolAllocator[int, int]()

	wg := sync.WaitGroup{}
	for worker := 0; worker < 4; worker += 1 {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			tree := avl.New(avl.WithAllocator[int, int](pool, avl.Retain))
			for round := 0; round < 10; round += 1 {
				for key := 0; key < 100; key += 1 {
					tree.Insert(base+key, key)
				}
				tree.Clear()
			}
		}(worker * 1000)
	}
	wg.Wait()

	total, free := pool.Stats()
	assert.Equal(t, total, free)
	assert.LessOrEqual(t, total, 400)
}

func TestHeapAllocatorFree(t *testing.T) {
	tree := avl.New[int, int]()
	tree.Insert(1, 1)
	tree.Insert(2, 2)
	p := tree.Last()
	tree.Delete(2)
	assert.Nil(t, p.Parent())
	assert.Equal(t, 0, p.Key())
}
