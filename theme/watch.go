// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceLag is the minimum interval between reloads, so that editors
// that write a file in several operations trigger only one reload.
const debounceLag = 100 * time.Millisecond

// Watcher monitors a theme file and reloads it on change.
// Create with [Watch]; stop with [Watcher.Close].
type Watcher struct {
	filename string
	onChange func(*Theme)

	watcher *fsnotify.Watcher
	done    chan struct{}

	mu         sync.Mutex
	lastReload time.Time
}

// Watch starts watching the given theme file, calling onChange with
// the freshly loaded theme after each modification. The callback runs
// on the watcher goroutine. The file's directory is watched rather
// than the file itself, so saves that replace the file (write to temp,
// rename over) are still seen.
func Watch(filename string, onChange func(*Theme)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		fw.Close()
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		filename: abs,
		onChange: onChange,
		watcher:  fw,
		done:     make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filename {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("theme: watcher error", "file", w.filename, "err", err)
		}
	}
}

func (w *Watcher) reload() {
	w.mu.Lock()
	now := time.Now()
	if now.Sub(w.lastReload) < debounceLag {
		w.mu.Unlock()
		return
	}
	w.lastReload = now
	w.mu.Unlock()

	th, err := Open(w.filename)
	if err != nil {
		slog.Error("theme: reload failed", "file", w.filename, "err", err)
		return
	}
	w.onChange(th)
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}
