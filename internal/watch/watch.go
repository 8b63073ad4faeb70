// Package watch re-runs a callback whenever a file is written.
//
// The parent directory is watched rather than the file itself so that
// editors which save by renaming a temporary file into place keep
// triggering events. Bursts of events are collapsed by a debounce timer.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/pipeflow/pkg/log"
)

// DefaultDebounce is used when Config.Debounce is not positive.
const DefaultDebounce = 100 * time.Millisecond

// Config holds watcher options.
type Config struct {
	// Path is the file to watch.
	Path string

	// Debounce is the quiet period after the last event before OnChange runs.
	// Default: 100 milliseconds
	Debounce time.Duration

	// Logger receives watcher diagnostics. Default: no-op.
	Logger log.Logger
}

// Watcher calls a function each time its file changes.
type Watcher struct {
	mu    sync.Mutex
	runMu sync.Mutex

	path     string
	base     string
	debounce time.Duration
	logger   log.Logger
	onChange func(ctx context.Context)
	timer    *time.Timer
	wg       sync.WaitGroup
}

// New creates a Watcher for cfg.Path. onChange runs on its own goroutine,
// never concurrently with itself.
func New(cfg Config, onChange func(ctx context.Context)) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("watch: path is required")
	}
	if onChange == nil {
		return nil, fmt.Errorf("watch: onChange is required")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}
	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	return &Watcher{
		path:     abs,
		base:     filepath.Base(abs),
		debounce: cfg.Debounce,
		logger:   cfg.Logger,
		onChange: onChange,
	}, nil
}

// Run watches until ctx is cancelled. It returns nil on cancellation and an
// error if the watch cannot be set up. A pending callback is waited for
// before Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}
	w.logger.Info("watching file", log.String("path", w.path), log.Any("debounce", w.debounce))

	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != w.base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.logger.Debug("file event", log.String("op", event.Op.String()))
			w.schedule(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", log.Err(err))
		}
	}
}

// schedule restarts the debounce timer.
func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.wg.Add(1)
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()
		if ctx.Err() != nil {
			return
		}
		w.runMu.Lock()
		defer w.runMu.Unlock()
		w.onChange(ctx)
	})
}

// stop cancels a pending timer and waits for a running callback.
func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.mu.Unlock()
	w.wg.Wait()
}
