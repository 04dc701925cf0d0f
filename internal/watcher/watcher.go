// Package watcher turns filesystem churn in the working tree into a
// single "something changed" signal the UI can poll without blocking.
//
// The watcher subscribes recursively to the worktree (plus the top of the
// .git directory, so index and HEAD writes are seen) and collapses all
// events into a capacity-1 channel. WHEN a refresh actually happens is
// not decided here: the UI drains the channel once per tick and feeds the
// result through a Debouncer, keeping all refresh policy in one
// synchronous place.
//
// The watcher is optional. If the platform's notification mechanism is
// unavailable the constructor fails and the caller runs without it,
// falling back to manual refresh. It is never a fatal error.
package watcher

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher owns the fsnotify subscription and its pump goroutine.
type Watcher struct {
	fsw    *fsnotify.Watcher
	root   string
	events chan struct{}
	done   chan struct{}
}

// New starts watching the working tree rooted at root. gitDir is watched
// non-recursively so staging and commit operations (index/HEAD writes)
// also trigger a signal.
func New(root, gitDir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		root:   root,
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}

	w.addTree(root)
	if gitDir != "" {
		w.addDir(gitDir)
	}

	go w.run()
	return w, nil
}

// run pumps fsnotify events into the coalescing channel.
func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if shouldIgnore(ev.Name) {
				continue
			}
			// New directories must join the watch set or edits below
			// them would go unseen.
			if ev.Op&fsnotify.Create != 0 {
				w.maybeWatchNewDir(ev.Name)
			}
			w.signal()
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// signal performs the non-blocking coalescing send.
func (w *Watcher) signal() {
	select {
	case w.events <- struct{}{}:
	default:
	}
}

// Drain reports whether any events arrived since the last call, without
// blocking. Safe to call from the UI tick.
func (w *Watcher) Drain() bool {
	select {
	case <-w.events:
		return true
	default:
		return false
	}
}

// Stop tears the watcher down. fsnotify's Close unblocks the pump
// goroutine's channel reads, so this never hangs.
func (w *Watcher) Stop() {
	select {
	case <-w.done:
		return
	default:
	}
	close(w.done)
	_ = w.fsw.Close()
}

// addTree walks root and watches every directory, skipping the .git
// subtree (its interesting top-level files are watched separately).
func (w *Watcher) addTree(root string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}
		w.addDir(path)
		return nil
	})
}

func (w *Watcher) addDir(path string) {
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		return
	}
	// Non-fatal: a directory may vanish between walk and Add.
	_ = w.fsw.Add(path)
}

func (w *Watcher) maybeWatchNewDir(path string) {
	if filepath.Base(path) == ".git" {
		return
	}
	w.addDir(path)
}

// shouldIgnore returns true for events that should not trigger a refresh.
func shouldIgnore(path string) bool {
	base := filepath.Base(path)

	// Git lock files: transient, mid-operation. NEVER trigger on these.
	// Git holds locks during status/add/commit and re-invoking git while
	// it holds one fails.
	if strings.HasSuffix(base, ".lock") {
		return true
	}

	// Editor swap/temp/backup files.
	if strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swo") ||
		strings.HasSuffix(base, "~") || strings.HasPrefix(base, ".#") {
		return true
	}

	// COMMIT_EDITMSG fires while a commit message is being typed in an
	// editor; not useful to refresh on.
	if base == "COMMIT_EDITMSG" {
		return true
	}

	if base == "gc.log" || strings.HasPrefix(base, "fsmonitor") {
		return true
	}

	return false
}
