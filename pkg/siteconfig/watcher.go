package siteconfig

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"

	"github.com/pradeepbgs/diesel-docs/pkg/navigation"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher rebuilds the site whenever its declaration file changes. Each
// rebuild replaces the previous site wholesale; a declaration that fails to
// load leaves the last good site in place.
type Watcher struct {
	path     string
	logger   hclog.Logger
	debounce time.Duration
	onChange func(*navigation.Site)

	current atomic.Pointer[navigation.Site]
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the watcher waits after the last file event
// before reloading.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithOnChange registers a callback invoked after every successful reload.
func WithOnChange(fn func(*navigation.Site)) WatcherOption {
	return func(w *Watcher) {
		w.onChange = fn
	}
}

// NewWatcher creates a watcher for the declaration at path.
func NewWatcher(path string, logger hclog.Logger, opts ...WatcherOption) *Watcher {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	w := &Watcher{
		path:     filepath.Clean(path),
		logger:   logger.Named("watcher"),
		debounce: defaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Current returns the most recently loaded site, or nil before Run has loaded
// one.
func (w *Watcher) Current() *navigation.Site {
	return w.current.Load()
}

// Run loads the declaration and then reloads it on every change until ctx is
// done. The initial load must succeed.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating file watcher: %w", err)
	}
	defer fsw.Close()

	// Watch the directory so editors that replace the file by rename are
	// still seen. Watching starts before the first load so no edit between
	// the two is missed.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("error watching %s: %w", filepath.Dir(w.path), err)
	}

	site, err := Load(w.path)
	if err != nil {
		return err
	}
	w.current.Store(site)
	w.logger.Info("loaded site declaration", "path", w.path, "entries", site.Tree.Len())

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			w.logger.Debug("change detected", "path", event.Name, "op", event.Op.String())
			reload = time.After(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)

		case <-reload:
			reload = nil
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxElapsedTime = 2 * time.Second

	// Retry only while the file is missing, which happens briefly when an
	// editor saves by rename.
	site, err := backoff.RetryWithData(func() (*navigation.Site, error) {
		site, err := Load(w.path)
		if err != nil && !errors.Is(err, ErrConfigNotFound) {
			return nil, backoff.Permanent(err)
		}
		return site, err
	}, backoff.WithContext(b, ctx))
	if err != nil {
		w.logFailure(err)
		return
	}

	w.current.Store(site)
	w.logger.Info("rebuilt site declaration", "path", w.path, "entries", site.Tree.Len())
	if w.onChange != nil {
		w.onChange(site)
	}
}

func (w *Watcher) logFailure(err error) {
	var verrs navigation.ValidationErrors
	if errors.As(err, &verrs) {
		for _, v := range verrs {
			w.logger.Error("invalid site declaration, keeping previous build",
				"path", v.Path, "error", v.Message)
		}
		return
	}
	w.logger.Error("failed to reload site declaration, keeping previous build", "error", err)
}
