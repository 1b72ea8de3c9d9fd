// Package dev provides the file watcher behind watch mode.
package dev

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// Watcher watches directories recursively and reports changes to files
// matching the configured patterns.
type Watcher struct {
	watcher  *fsnotify.Watcher
	patterns []string
	exclude  []string
	onChange func(path string, op fsnotify.Op)
}

// NewWatcher creates a watcher. onChange fires for every event whose path
// matches the include patterns and none of the excludes.
func NewWatcher(patterns, exclude []string, onChange func(path string, op fsnotify.Op)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &Watcher{
		watcher:  fsw,
		patterns: patterns,
		exclude:  exclude,
		onChange: onChange,
	}, nil
}

// AddDirectory registers dir and all non-excluded subdirectories.
func (w *Watcher) AddDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if w.excluded(path) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch directory %s: %w", path, err)
			}
		}
		return nil
	})
}

// Start blocks processing events until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if w.matches(event.Name) {
				w.onChange(event.Name, event.Op)
			}
			// Newly created directories join the watch set.
			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.AddDirectory(event.Name); err != nil {
						log.Warn().Err(err).Str("dir", event.Name).Msg("failed to watch new directory")
					}
				}
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			if err != nil {
				log.Warn().Err(err).Msg("watcher error")
			}
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// matches reports whether a changed path should trigger onChange.
func (w *Watcher) matches(path string) bool {
	if w.excluded(path) {
		return false
	}
	base := filepath.Base(path)
	for _, pattern := range w.patterns {
		// "**/*.ext" patterns match by suffix anywhere in the tree.
		if rest, ok := strings.CutPrefix(pattern, "**/*"); ok {
			if strings.HasSuffix(path, rest) {
				return true
			}
			continue
		}
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

func (w *Watcher) excluded(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range w.exclude {
		trimmed := strings.TrimSuffix(pattern, "/")
		if matched, _ := filepath.Match(trimmed, base); matched {
			return true
		}
		if strings.Contains(path, string(filepath.Separator)+trimmed+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
