// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// WatcherChannel - events delivered to the main loop, each channel
// holds at most one pending event
type WatcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

// FileWatcher - reports writes to and removal of one file
type FileWatcher struct {
	log      *logger.L
	channel  WatcherChannel
	watcher  *fsnotify.Watcher
	filePath string
}

func newFileWatcher(targetFile string, log *logger.L, channel WatcherChannel) (*FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &FileWatcher{
		log:      log,
		channel:  channel,
		watcher:  watcher,
		filePath: filePath,
	}, nil
}

// Start - watch the directory holding the file, so that editors that
// replace the file by renaming are still seen
func (w *FileWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go w.loop()
	return nil
}

// Stop - release the underlying watcher, ending the event loop
func (w *FileWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *FileWatcher) loop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %v", event)

			switch {
			case isRemove(event):
				if _, err := os.Stat(w.filePath); nil == err {
					// replaced by a rename, treat as a change
					w.sendEvent(w.channel.change, "change")
					continue
				}
				w.log.Warnf("file: %s removed", w.filePath)
				w.sendEvent(w.channel.remove, "remove")
				return
			case isChange(event):
				w.sendEvent(w.channel.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

func (w *FileWatcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
		w.log.Infof("sent %s event", name)
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func isRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func isChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
