// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/util"
	"github.com/bitmark-inc/avlmap/workload"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--watch] --config-file=FILE", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// start logging
	if err = util.EnsureDirectory(masterConfiguration.Logging.Directory); nil != err {
		exitwithstatus.Message("%s: log directory error: %s", program, err)
	}
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	fault.PanicIfError("fault.Initialise", fault.Initialise())
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// cancel the workload on a signal
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signals
		log.Infof("received signal: %v", sig)
		cancel()
	}()

	workloadLog := logger.New("workload")
	err = runWorkload(ctx, os.Stdout, masterConfiguration.Workload, workloadLog)

	if 0 == len(options["watch"]) {
		if nil != err && !errors.Is(err, context.Canceled) {
			fault.Criticalf("workload failed: %s", err)
			exitwithstatus.Message("%s: workload failed: %s", program, err)
		}
		return
	}

	channel := newWatcherChannel()
	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix), channel)
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err := watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	log.Infof("watching: %s", configurationFile)

loop:
	for {
		select {
		case <-ctx.Done():
			break loop

		case <-channel.remove:
			log.Warn("configuration removed")
			break loop

		case <-channel.change:
			configuration, err := getConfiguration(configurationFile)
			if nil != err {
				log.Errorf("configuration reload error: %s", err)
				fmt.Fprintf(os.Stderr, "%s: configuration error: %s\n", program, err)
				continue loop
			}
			log.Info("configuration reloaded, logging changes need a restart")
			_ = runWorkload(ctx, os.Stdout, configuration.Workload, workloadLog)
		}
	}
}

// run one workload and report its result as JSON
func runWorkload(ctx context.Context, w io.Writer, cfg workload.Configuration, log *logger.L) error {
	result, err := workload.Run(ctx, cfg, log)

	report := struct {
		Workload workload.Configuration `json:"workload"`
		Result   workload.Result        `json:"result"`
		Error    string                 `json:"error,omitempty"`
	}{
		Workload: cfg,
		Result:   result,
	}
	if nil != err {
		report.Error = err.Error()
	}

	b, jsonErr := json.MarshalIndent(report, "", "  ")
	if nil != jsonErr {
		return jsonErr
	}
	fmt.Fprintf(w, "%s\n", b)
	return err
}
