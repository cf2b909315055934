// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/util"
	"github.com/bitmark-inc/avlmap/workload"
)

// basic defaults (directories and files are relative to the
// "data_directory" from the configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avlcheck.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - the table returned by the configuration file
type Configuration struct {
	DataDirectory string                 `gluamapper:"data_directory" json:"data_directory"`
	Workload      workload.Configuration `gluamapper:"workload" json:"workload"`
	Logging       logger.Configuration   `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Workload:      workload.Default(),
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "info",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.Workload.Validate(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	case ".":
		options.DataDirectory = dataDirectory
	}
	options.DataDirectory = util.EnsureAbsolute(dataDirectory, options.DataDirectory)

	// log files must be plain names inside the log directory
	if "." != filepath.Dir(options.Logging.File) {
		return nil, fmt.Errorf("file: %q is not plain name", options.Logging.File)
	}
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)

	return options, nil
}
