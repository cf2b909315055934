// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/avl"
)

type verifyResult struct {
	Items  int    `json:"items"`
	Height int    `json:"height"`
	Bytes  int    `json:"bytes"`
	Memory uint64 `json:"memory"`
	First  *int64 `json:"first,omitempty"`
	Last   *int64 `json:"last,omitempty"`
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, n, err := readTree(m.r)
	if nil != err {
		return err
	}
	if err := tree.Check(); nil != err {
		return err
	}

	// re-encoding must reproduce the same tree
	buffer := &bytes.Buffer{}
	if _, err := writeTree(buffer, tree); nil != err {
		return err
	}
	again, _, err := readTree(buffer)
	if nil != err {
		return err
	}
	if !avl.Equal(tree, again) {
		return fmt.Errorf("re-encoded tree differs")
	}

	result := verifyResult{
		Items:  tree.Len(),
		Height: tree.Height(),
		Bytes:  n,
		Memory: uint64(tree.Memory()),
	}
	if first := tree.First(); nil != first {
		k := first.Key()
		result.First = &k
		l := tree.Last().Key()
		result.Last = &l
	}
	return printJson(m.w, result)
}
