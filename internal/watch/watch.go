// Package watch monitors a directory for coordinate files and reports
// create/modify events so the caller can re-parse them.
package watch

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Op is the kind of change observed on a file.
type Op int

const (
	Created Op = iota
	Modified
	Removed
)

// Event is one observed change to a coordinate file.
type Event struct {
	Path string
	Op   Op
}

// Watcher reports changes to coordinate files in a directory.
type Watcher struct {
	watcher    *fsnotify.Watcher
	extensions []string
}

// New creates a watcher. If extensions is empty, the usual coordinate-file
// extensions are watched.
func New(extensions []string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if len(extensions) == 0 {
		extensions = []string{".pdb", ".ent", ".gz"}
	}

	return &Watcher{watcher: w, extensions: extensions}, nil
}

// Watch starts monitoring dir and emits events until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan Event, error) {
	if err := w.watcher.Add(dir); err != nil {
		return nil, err
	}

	events := make(chan Event, 100)

	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if !w.isWatchedExtension(event.Name) {
					continue
				}

				var op Op
				switch {
				case event.Op&fsnotify.Create == fsnotify.Create:
					op = Created
				case event.Op&fsnotify.Write == fsnotify.Write:
					op = Modified
				case event.Op&fsnotify.Remove == fsnotify.Remove:
					op = Removed
				default:
					continue
				}

				select {
				case events <- Event{Path: event.Name, Op: op}:
				case <-ctx.Done():
					return
				}
			case _, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return events, nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) isWatchedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range w.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
