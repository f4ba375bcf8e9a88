package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"
)

// settle is how long the table must stay unchanged before regenerating.
// Editors often write a file in several steps.
const settle = 100 * time.Millisecond

// newWatcher watches the directory of the table. Watching the directory
// survives editors that replace the file on save.
func newWatcher(table string) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(table)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("error adding watcher for path %s: %w", dir, err)
	}
	return w, nil
}

// watchLoop calls fn after every change of the file at path, until ctx is
// done or the watcher is closed.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, path string, fn func()) error {
	path = filepath.Clean(path)
	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			glog.V(2).Infof("table event: %s", ev)
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			glog.Errorf("watch %s: %v", path, err)
		case <-timer.C:
			glog.Infof("%s changed, regenerating", path)
			fn()
		}
	}
}
