package store

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// ChangeEvent reports that a watched file was modified on disk
type ChangeEvent struct {
	Path string
}

// Watcher monitors store files for changes made by other processes, such as
// the shell appending to its history file.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	files     map[string]struct{} // cleaned absolute paths of watched files
	dirs      map[string]struct{} // parent directories added to fsnotify
	mu        sync.Mutex
	stopOnce  sync.Once

	Events chan ChangeEvent
	Errors chan error
	done   chan struct{}
}

// NewWatcher creates a watcher; call Add for each file, then Start
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		fsWatcher: fsw,
		files:     make(map[string]struct{}),
		dirs:      make(map[string]struct{}),
		Events:    make(chan ChangeEvent, 16),
		Errors:    make(chan error, 4),
		done:      make(chan struct{}),
	}, nil
}

// Add starts watching path. The parent directory is watched rather than the
// file itself, since shells and editors often replace the file by renaming
// a new one over it, which would drop a watch on the old inode.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.files[abs] = struct{}{}
	dir := filepath.Dir(abs)
	if _, ok := w.dirs[dir]; ok {
		return nil
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}
	w.dirs[dir] = struct{}{}
	return nil
}

// Start begins watching for file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// Stop stops the watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
	})
	return err
}

// watchLoop handles fsnotify events
func (w *Watcher) watchLoop() {
	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
				// Error channel full, drop
			}
		}
	}
}

// handleFSEvent forwards writes, creates and renames of watched files
func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	name := filepath.Clean(event.Name)
	w.mu.Lock()
	_, watched := w.files[name]
	w.mu.Unlock()
	if !watched {
		return
	}

	select {
	case w.Events <- ChangeEvent{Path: name}:
	default:
		// A change is already pending; the reader reloads everything anyway
	}
}
