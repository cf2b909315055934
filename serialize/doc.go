// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package serialize - binary stream form of an avl.Tree
//
// The stream is a 64 bit little endian item count followed by the
// key then the value of each item, visiting the tree breadth first.
// Fixed width numbers are little endian; strings and slices carry a
// 64 bit little endian length before their contents.
package serialize
