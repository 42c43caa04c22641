// Package watch monitors the input tables for edits so watch mode can
// re-run the report when a source file changes.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change identifies an input file that was modified.
type Change struct {
	// File is the path as originally registered with the watcher.
	File string
}

// Watcher monitors a fixed set of input files using fsnotify. Events are
// debounced: editors produce bursts of writes for a single save.
type Watcher struct {
	Changes <-chan Change // Read-only external channel

	files   map[string]string // watched basename -> registered path
	changes chan Change       // Internal write channel
	done    chan struct{}
	watcher *fsnotify.Watcher
}

// New creates a watcher over the given files. The containing directories
// are watched, since many editors replace files on save rather than writing
// in place.
func New(files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Changes: ch,
		files:   make(map[string]string, len(files)),
		changes: ch,
		done:    make(chan struct{}),
		watcher: fw,
	}
	for _, f := range files {
		w.files[filepath.Base(f)] = f
	}
	return w, nil
}

// Start begins watching the parent directories of the registered files.
func (w *Watcher) Start() error {
	dirs := map[string]bool{}
	for _, f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track last event time per file.
	const debounce = 100 * time.Millisecond
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				for file := range pending {
					w.changes <- Change{File: file}
				}
				return
			}

			path, watched := w.files[filepath.Base(event.Name)]
			if !watched {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending[path] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= debounce {
					w.changes <- Change{File: file}
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the next event still arrives.
		}
	}
}
