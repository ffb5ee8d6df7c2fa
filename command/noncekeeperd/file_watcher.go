// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

const (
	fileWatcherLoggerPrefix = "file-watcher"
)

// watch the configuration file and signal when it is written
//
// the containing directory is watched so that editors that save by
// rename are still seen
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan<- struct{}
	done     chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L, change chan<- struct{}) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %v", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   change,
		done:     make(chan struct{}),
	}, nil
}

// Start - begin delivering change events
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %v, abort", err)
		_ = w.watcher.Close()
		close(w.done)
		return err
	}

	go func() {
		defer close(w.done)
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Name != w.filePath {
					continue
				}
				w.log.Debugf("file event: %v", event)
				if watcherEventFileChange(event) {
					w.sendEvent()
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Errorf("watcher error: %s", err)
			}
		}
	}()

	return nil
}

// Stop - release the watcher and wait for the event loop to end
func (w *fileWatcher) Stop() {
	_ = w.watcher.Close()
	<-w.done
}

// drop the event if one is already pending
func (w *fileWatcher) sendEvent() {
	select {
	case w.change <- struct{}{}:
	default:
		w.log.Debug("change event pending, discard event")
	}
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}
