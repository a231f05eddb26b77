// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/progress-sync/internal/logger"
)

const preferencesDebounce = 100 * time.Millisecond

// PreferencesWatcher reloads the preferences file when another process edits
// it. The parent directory is watched because editors and
// [PreferencesStore.Replace] swap the file by rename.
type PreferencesWatcher struct {
	prefs    PreferencesStore
	debounce time.Duration
	logger   *logger.Logger
}

// NewPreferencesWatcher returns a watcher for prefs.
func NewPreferencesWatcher(prefs PreferencesStore, logger *logger.Logger) *PreferencesWatcher {
	return &PreferencesWatcher{
		prefs:    prefs,
		debounce: preferencesDebounce,
		logger:   logger,
	}
}

// Run watches until ctx is done.
func (w *PreferencesWatcher) Run(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating preferences watcher: %w", err)
	}
	defer fsWatcher.Close()

	target := filepath.Clean(w.prefs.Path())
	if err = fsWatcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("error watching preferences dir: %w", err)
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			if err := w.prefs.Reload(); err != nil {
				w.logger.Err(err).Str("func", "PreferencesWatcher.Run").Msg("failed to reload preferences")
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Err(err).Str("func", "PreferencesWatcher.Run").Msg("preferences watcher error")
		}
	}
}
