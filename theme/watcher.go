// Copyright (c) 2026, Quill UI. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the default debounce interval for theme file
// watch events.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors a theme file and reloads it when it changes.
// The reload callback runs on the watcher's goroutine; it must hand the
// loaded theme over to the goroutine that owns the widget tree before
// calling [Theme.Apply].
type Watcher struct {
	watcher   *fsnotify.Watcher
	path      string
	debounce  time.Duration
	onReload  func(*Theme)
	onError   func(error)
	stopCh    chan struct{}
	stoppedCh chan struct{}
}

// Watch starts watching the theme file at path. onReload is called
// with the freshly loaded theme after each change (debounced); onError
// is called for watch and load errors. A debounce <= 0 uses
// [DefaultDebounce]. Stop the returned watcher when done.
func Watch(path string, debounce time.Duration, onReload func(*Theme), onError func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors that replace files
	// atomically (rename over) would otherwise drop the watch.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{
		watcher:   fw,
		path:      path,
		debounce:  debounce,
		onReload:  onReload,
		onError:   onError,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Stop stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Watcher) loop() {
	defer close(w.stoppedCh)
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(w.path) {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		case <-fire:
			timer = nil
			fire = nil
			t, err := Load(w.path)
			if err != nil {
				if w.onError != nil {
					w.onError(err)
				}
				continue
			}
			if w.onReload != nil {
				w.onReload(t)
			}
		case <-w.stopCh:
			return
		}
	}
}
