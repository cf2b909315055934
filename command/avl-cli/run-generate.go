// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlmap/avl"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count < 0 {
		return fmt.Errorf("count: %d must not be negative", count)
	}
	seed := c.Uint64("seed")

	rng := rand.New(rand.NewPCG(seed, 0))
	keySpace := 10 * int64(max(count, 1))

	tree := avl.New[int64, string]()
	for tree.Len() < count {
		key := rng.Int64N(keySpace)
		tree.Insert(key, strconv.FormatInt(key, 16))
	}

	if m.verbose {
		fmt.Fprintf(m.e, "items: %d  height: %d  seed: %d\n", tree.Len(), tree.Height(), seed)
	}

	n, err := writeTree(m.w, tree)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "bytes: %d\n", n)
	}
	return nil
}
