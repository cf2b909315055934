// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package serialize

import (
	"bytes"
	"io"

	"github.com/bitmark-inc/avlmap/avl"
)

// EncodeTree - write the item count as a 64 bit little endian value
// followed by each key and value in breadth first order
//
// returns the number of bytes written
func EncodeTree[K, V any](w io.Writer, tree *avl.Tree[K, V], keys Codec[K], values Codec[V]) (int, error) {
	n, err := Uint64.Encode(w, uint64(tree.Len()))
	if nil != err {
		return n, err
	}
	for key, value := range tree.BreadthFirst() {
		m, err := keys.Encode(w, key)
		n += m
		if nil != err {
			return n, err
		}
		m, err = values.Encode(w, value)
		n += m
		if nil != err {
			return n, err
		}
	}
	return n, nil
}

// DecodeTree - clear the tree then insert each pair read from r
//
// on error the tree holds the pairs decoded so far
func DecodeTree[K, V any](r io.Reader, tree *avl.Tree[K, V], keys Codec[K], values Codec[V]) (int, error) {
	tree.Clear()

	count, n, err := Uint64.Decode(r)
	if nil != err {
		return n, err
	}
	for i := uint64(0); i < count; i += 1 {
		key, m, err := keys.Decode(r)
		n += m
		if nil != err {
			return n, err
		}
		value, m, err := values.Decode(r)
		n += m
		if nil != err {
			return n, err
		}
		tree.Insert(key, value)
	}
	return n, nil
}

// Marshal - encode a tree to a byte slice
func Marshal[K, V any](tree *avl.Tree[K, V], keys Codec[K], values Codec[V]) ([]byte, error) {
	buffer := &bytes.Buffer{}
	if _, err := EncodeTree(buffer, tree, keys, values); nil != err {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Unmarshal - decode a tree from a byte slice, trailing bytes are
// ignored
func Unmarshal[K, V any](data []byte, tree *avl.Tree[K, V], keys Codec[K], values Codec[V]) error {
	_, err := DecodeTree(bytes.NewReader(data), tree, keys, values)
	return err
}
