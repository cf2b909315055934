// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for tests that need the logger
package fixtures

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
)

// LogCategory - name of the test log file
const LogCategory = "testing"

// SetupTestLogger - start logging into a fresh directory below dir,
// only critical messages are recorded
func SetupTestLogger(dir string) string {
	logDirectory := filepath.Join(dir, LogCategory)
	removeFiles(logDirectory)
	_ = os.MkdirAll(logDirectory, 0o700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
	return logDirectory
}

// TeardownTestLogger - stop logging and remove the log files
func TeardownTestLogger(logDirectory string) {
	logger.Finalise()
	removeFiles(logDirectory)
}

func removeFiles(dir string) {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
