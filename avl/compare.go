// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Equal - true if both trees hold the same keys with equal values
//
// keys are compared for equivalence with a's ordering
func Equal[K any, V comparable](a *Tree[K, V], b *Tree[K, V]) bool {
	return EqualFunc(a, b, func(x V, y V) bool { return x == y })
}

// EqualFunc - as Equal with values compared by eq
func EqualFunc[K, V any](a *Tree[K, V], b *Tree[K, V], eq func(V, V) bool) bool {
	if a.count != b.count {
		return false
	}
	for p, q := a.root.first(), b.root.first(); nil != p && nil != q; p, q = p.Next(), q.Next() {
		if a.less(p.key, q.key) || a.less(q.key, p.key) || !eq(p.value, q.value) {
			return false
		}
	}
	return true
}

// Compare - lexicographic comparison of the (key, value) sequences,
// returning -1, 0 or +1; a proper prefix orders first
func Compare[K any, V cmp.Ordered](a *Tree[K, V], b *Tree[K, V]) int {
	return CompareFunc(a, b, cmp.Compare[V])
}

// CompareFunc - as Compare with values compared by cmpValue
func CompareFunc[K, V any](a *Tree[K, V], b *Tree[K, V], cmpValue func(V, V) int) int {
	p, q := a.root.first(), b.root.first()
	for ; nil != p && nil != q; p, q = p.Next(), q.Next() {
		if a.less(p.key, q.key) {
			return -1
		}
		if a.less(q.key, p.key) {
			return +1
		}
		if c := cmpValue(p.value, q.value); c < 0 {
			return -1
		} else if c > 0 {
			return +1
		}
	}
	switch {
	case nil == p && nil == q:
		return 0
	case nil == p:
		return -1
	default:
		return +1
	}
}
