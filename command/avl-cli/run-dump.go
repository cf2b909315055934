// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runDump(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, n, err := readTree(m.r)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "read: %d bytes\n", n)
	}

	depth := tree.Print(m.w, c.Bool("data"))
	fmt.Fprintf(m.w, "items: %d  height: %d\n", tree.Len(), depth)
	return nil
}
