package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/Drewrwhite/profile-data/internal/logger"
)

// Config holds the directory watch settings.
type Config struct {
	// Dir is the directory to monitor. It must already exist.
	Dir string

	// EventsPerSecond is the sustained trigger rate.
	EventsPerSecond float64

	// Burst is the token bucket size.
	Burst int
}

// DefaultConfig provides a conservative trigger rate: one file per
// second with a small burst allowance.
var DefaultConfig = Config{
	EventsPerSecond: 1.0,
	Burst:           3,
}

// Watcher emits paths of JSON files as they appear in a directory.
type Watcher struct {
	dir     string
	limiter *rate.Limiter
	fw      *fsnotify.Watcher
}

// New creates a watcher for cfg.Dir. Rate settings at or below zero
// fall back to DefaultConfig.
func New(cfg Config) (*Watcher, error) {
	if cfg.EventsPerSecond <= 0 {
		cfg.EventsPerSecond = DefaultConfig.EventsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultConfig.Burst
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating filesystem watcher: %w", err)
	}
	if err := fw.Add(cfg.Dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", cfg.Dir, err)
	}

	return &Watcher{
		dir:     cfg.Dir,
		limiter: rate.NewLimiter(rate.Limit(cfg.EventsPerSecond), cfg.Burst),
		fw:      fw,
	}, nil
}

// Watch returns a channel of file paths. A path is sent for every JSON
// file created in (or moved into) the watched directory. The channel
// is closed when ctx is cancelled or the underlying watcher stops.
func (w *Watcher) Watch(ctx context.Context) <-chan string {
	paths := make(chan string)

	go func() {
		defer close(paths)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path, relevant := w.handleEvent(event)
				if !relevant {
					continue
				}
				if err := w.limiter.Wait(ctx); err != nil {
					return
				}
				select {
				case paths <- path:
				case <-ctx.Done():
					return
				}

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				logger.Warn("Watch error: %v", err)
			}
		}
	}()

	return paths
}

// handleEvent decides whether an fsnotify event should trigger a run.
// Only creations of visible .json and .jsonl files count; a rename
// into the watched directory surfaces as a create.
func (w *Watcher) handleEvent(event fsnotify.Event) (string, bool) {
	if !event.Op.Has(fsnotify.Create) {
		return "", false
	}

	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return "", false
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".jsonl":
		return event.Name, true
	default:
		return "", false
	}
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
