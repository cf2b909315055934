// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/serialize"
)

// the tree type exchanged by the commands
type keyedTree = avl.Tree[int64, string]

func readTree(r io.Reader) (*keyedTree, int, error) {
	tree := avl.New[int64, string]()
	n, err := serialize.DecodeTree(bufio.NewReader(r), tree, serialize.Int64, serialize.String)
	if nil != err {
		return nil, n, err
	}
	return tree, n, nil
}

func writeTree(w io.Writer, tree *keyedTree) (int, error) {
	b := bufio.NewWriter(w)
	n, err := serialize.EncodeTree(b, tree, serialize.Int64, serialize.String)
	if nil != err {
		return n, err
	}
	return n, b.Flush()
}
