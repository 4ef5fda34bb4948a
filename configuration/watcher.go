// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/logger"
)

// editors often write a file in several steps
const settleDelay = 500 * time.Millisecond

// Watcher - calls a function each time the configuration file changes
//
// the directory is watched rather than the file so that an editor
// replacing the file by rename is still seen
type Watcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	changed  func()
	delay    time.Duration
}

// NewWatcher - watch a configuration file
func NewWatcher(log *logger.L, fileName string, changed func()) (*Watcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		log.Errorf("parse file: %s  error: %s", fileName, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher error: %s", err)
		return nil, err
	}

	err = watcher.Add(filepath.Dir(filePath))
	if nil != err {
		log.Errorf("watcher add error: %s", err)
		watcher.Close()
		return nil, err
	}

	return &Watcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		changed:  changed,
		delay:    settleDelay,
	}, nil
}

// SetDelay - time to wait after the last event before reporting
func (w *Watcher) SetDelay(delay time.Duration) {
	w.delay = delay
}

// Run - background process
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {

	log := w.log

	log.Info("starting…")

	defer w.watcher.Close()

	// a nil channel never fires
	var settle <-chan time.Time

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue loop
			}
			log.Debugf("file event: %s", event)
			if fileRemoved(event) {
				log.Warnf("file: %s removed", w.filePath)
				continue loop
			}
			if fileChanged(event) {
				settle = time.After(w.delay)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			log.Errorf("watcher error: %s", err)

		case <-settle:
			settle = nil
			log.Infof("file: %s changed", w.filePath)
			w.changed()
		}
	}

	log.Info("shutting down…")
}

func fileRemoved(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove
}

func fileChanged(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}
