// Package fsnotify implements the ports.Watcher interface using
// github.com/fsnotify/fsnotify. It monitors a single input directory for new
// documents and debounces events, since download managers and office suites
// write a file in several bursts before it is complete.
package fsnotify

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceQuiet is how long a file must stay quiet before it is reported.
const debounceQuiet = 500 * time.Millisecond

// Temporary suffixes used by browsers and editors mid-download or mid-save.
var ignoreSuffixes = []string{".tmp", ".part", ".crdownload", ".swp", "~"}

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw       *fsnotify.Watcher
	supports func(ext string) bool

	mu      sync.Mutex
	pending map[string]*time.Timer
	done    chan struct{}
	stopped bool
}

// NewWatcher creates a watcher that reports files whose extension passes
// supports. A nil supports accepts every file.
func NewWatcher(supports func(ext string) bool) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if supports == nil {
		supports = func(string) bool { return true }
	}
	return &Watcher{
		fw:       fw,
		supports: supports,
		pending:  make(map[string]*time.Timer),
		done:     make(chan struct{}),
	}, nil
}

// Watch starts monitoring dir (non-recursive) and invokes onCreate with the
// absolute path of each new document once its writes have settled.
func (w *Watcher) Watch(dir string, onCreate func(path string)) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if err := w.fw.Add(absDir); err != nil {
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				if w.shouldIgnore(event.Name) {
					continue
				}
				w.schedule(event.Name, onCreate)

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// fsnotify recovers on its own; keep watching

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// schedule arms (or re-arms) the quiet timer for path. The callback fires
// only after no further events arrive for debounceQuiet.
func (w *Watcher) schedule(path string, onCreate func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}

	if timer, ok := w.pending[path]; ok {
		timer.Reset(debounceQuiet)
		return
	}
	w.pending[path] = time.AfterFunc(debounceQuiet, func() {
		w.mu.Lock()
		delete(w.pending, path)
		stopped := w.stopped
		w.mu.Unlock()
		if !stopped {
			onCreate(path)
		}
	})
}

// Stop ends monitoring and cancels pending callbacks.
// Safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	w.stopped = true
	close(w.done)
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
	w.fw.Close()
}

// shouldIgnore filters hidden files, in-progress temp files and extensions
// the extractor cannot handle.
func (w *Watcher) shouldIgnore(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	for _, suffix := range ignoreSuffixes {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return !w.supports(filepath.Ext(base))
}
