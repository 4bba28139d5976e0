// Package watch reloads a catalog file when it changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/cristianoliveira/velvetpour/internal/catalog"
	"github.com/cristianoliveira/velvetpour/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// ErrStopped is returned by Run after Stop was called.
var ErrStopped = errors.New("watch: stopped")

const defaultDebounce = 150 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	// Debounce is how long the file must stay quiet before reloading.
	Debounce time.Duration
	// OnReload receives every successfully loaded catalog.
	OnReload func(catalog.Catalog)
	// OnError receives load failures. The watcher keeps running.
	OnError func(error)
	// Load reads the catalog. Defaults to catalog.Load.
	Load func(path string) (catalog.Catalog, error)
}

// Watcher watches the directory holding a catalog file, so that editors that
// replace the file by rename are still observed.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	path     string
	opts     Options
	log      logging.Logger
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopOnce sync.Once
}

// New creates a Watcher for path. Nothing is watched until Run or Start.
func New(path string, opts Options) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	if opts.Load == nil {
		opts.Load = catalog.Load
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	return &Watcher{
		fsw:    fsw,
		path:   abs,
		opts:   opts,
		log:    logging.With("component", "watch", "path", abs),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Start runs the watcher in a goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.begin(); err != nil {
		return err
	}
	go w.loop(ctx)
	return nil
}

// Run watches until ctx is done or Stop is called. It returns nil on
// context cancellation and ErrStopped after Stop.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.begin(); err != nil {
		return err
	}
	return w.loop(ctx)
}

func (w *Watcher) begin() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return errors.New("watch: already started")
	}
	if err := w.fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch: add %s: %w", filepath.Dir(w.path), err)
	}
	w.started = true
	w.log.Debug("watching catalog")
	return nil
}

// Stop ends the watch loop, waits for it and releases the fsnotify watcher.
// It is safe to call more than once and before Start.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.mu.Lock()
		started := w.started
		w.mu.Unlock()
		if started {
			<-w.doneCh
		}
		if err := w.fsw.Close(); err != nil {
			w.log.Warn("close watcher", "error", err)
		}
	})
}

func (w *Watcher) loop(ctx context.Context) error {
	defer close(w.doneCh)

	timer := time.NewTimer(w.opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.stopCh:
			return ErrStopped
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debug("catalog event", "op", event.Op.String())
			timer.Reset(w.opts.Debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error("watcher error", "error", err)
		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0
}

func (w *Watcher) reload() {
	c, err := w.opts.Load(w.path)
	if err != nil {
		w.log.Warn("catalog reload failed", "error", err)
		if w.opts.OnError != nil {
			w.opts.OnError(err)
		}
		return
	}
	w.log.Info("catalog reloaded", "cocktails", len(c.Menu))
	if w.opts.OnReload != nil {
		w.opts.OnReload(c)
	}
}
