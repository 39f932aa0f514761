package twconfig

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period Watch waits for after a change before
// reloading. Editors often write a file in several steps.
const DefaultDebounce = 200 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	Validate ValidateOptions
	Debounce time.Duration // 0 = DefaultDebounce
	Logger   *log.Logger   // optional
}

// WatchFunc receives each freshly loaded document and its validation
// result. err is set when the document could not be loaded or validated;
// doc and res are nil in that case.
type WatchFunc func(doc *Document, res *Result, err error)

// Watch loads and validates the document at path, then does so again after
// every change to the file until ctx is cancelled. fn is called from the
// caller's goroutine. The parent directory is watched so that editors
// replacing the file through a rename are followed.
func Watch(ctx context.Context, path string, opts WatchOptions, fn WatchFunc) error {
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Debug("watching config file", "path", absPath)

	reload := func() {
		doc, err := Load(path)
		if err != nil {
			fn(nil, nil, err)
			return
		}
		res, err := Validate(doc, opts.Validate)
		if err != nil {
			fn(nil, nil, err)
			return
		}
		fn(doc, res, nil)
	}
	reload()

	// Armed on each relevant event.
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("config watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("config file changed", "op", event.Op.String())
			timer.Reset(debounce)

		case <-timer.C:
			reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("config watcher error", "err", err)
		}
	}
}
