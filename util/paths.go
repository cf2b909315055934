// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - file system helpers for the commands
package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureDirectory - create a directory and its parents if missing,
// fail if the path exists but is not a directory
func EnsureDirectory(directory string) error {
	fileInfo, err := os.Stat(directory)
	if os.IsNotExist(err) {
		return os.MkdirAll(directory, 0o700)
	}
	if nil != err {
		return err
	}
	if !fileInfo.IsDir() {
		return fmt.Errorf("path: %q is not a directory", directory)
	}
	return nil
}
