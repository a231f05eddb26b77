// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/models"
)

// preferencesFile is the YAML implementation of [PreferencesStore]. The file
// holds a flat mapping; only keys listed as tracked take part in sync.
type preferencesFile struct {
	path     string
	tracked  map[string]struct{}
	notifier ChangeNotifier
	logger   *logger.Logger

	mu     sync.RWMutex
	values map[string]any
}

// OpenPreferences loads the preferences file at path. A missing file is
// treated as empty and created on the first Set.
func OpenPreferences(path string, tracked []string, notifier ChangeNotifier, logger *logger.Logger) (PreferencesStore, error) {
	p := &preferencesFile{
		path:     path,
		tracked:  make(map[string]struct{}, len(tracked)),
		notifier: notifier,
		logger:   logger,
		values:   make(map[string]any),
	}
	for _, key := range tracked {
		p.tracked[key] = struct{}{}
	}

	values, err := readPreferences(path)
	if err != nil {
		return nil, err
	}
	p.values = values

	return p, nil
}

func (p *preferencesFile) Path() string {
	return p.path
}

func (p *preferencesFile) Get(key string) (any, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	v, ok := p.values[key]
	return v, ok
}

func (p *preferencesFile) All() map[string]any {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return maps.Clone(p.values)
}

func (p *preferencesFile) Set(key string, value any) error {
	p.mu.Lock()
	previous, existed := p.values[key]
	if existed && reflect.DeepEqual(previous, value) {
		p.mu.Unlock()
		return nil
	}

	next := maps.Clone(p.values)
	next[key] = value
	if err := writePreferences(p.path, next); err != nil {
		p.mu.Unlock()
		return err
	}
	p.values = next
	p.mu.Unlock()

	_, tracked := p.tracked[key]
	p.notifier.Publish(models.StoreChange{Store: models.StorePreferences, AffectsSync: tracked, At: time.Now()})
	return nil
}

func (p *preferencesFile) Reload() error {
	p.mu.Lock()
	values, err := readPreferences(p.path)
	if err != nil {
		p.mu.Unlock()
		return err
	}
	if reflect.DeepEqual(values, p.values) {
		p.mu.Unlock()
		return nil
	}
	affectsSync := p.trackedDiffer(p.values, values)
	p.values = values
	p.mu.Unlock()

	p.logger.Debug().
		Str("func", "preferencesFile.Reload").
		Bool("affects_sync", affectsSync).
		Msg("preferences changed on disk")
	p.notifier.Publish(models.StoreChange{Store: models.StorePreferences, AffectsSync: affectsSync, At: time.Now()})
	return nil
}

func (p *preferencesFile) Replace(src string) error {
	values, err := readPreferences(src)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err = os.Rename(src, p.path); err != nil {
		return fmt.Errorf("error replacing preferences file: %w", err)
	}
	p.values = values
	return nil
}

// trackedDiffer reports whether any tracked key differs between a and b.
func (p *preferencesFile) trackedDiffer(a, b map[string]any) bool {
	for key := range p.tracked {
		va, okA := a[key]
		vb, okB := b[key]
		if okA != okB || !reflect.DeepEqual(va, vb) {
			return true
		}
	}
	return false
}

func readPreferences(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return make(map[string]any), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading preferences: %w", err)
	}

	values := make(map[string]any)
	if len(bytes.TrimSpace(raw)) == 0 {
		return values, nil
	}
	if err = yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
	}
	return values, nil
}

// writePreferences replaces path atomically through a temp file in the same
// directory.
func writePreferences(path string, values map[string]any) error {
	raw, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("error encoding preferences: %w", err)
	}

	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating preferences dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prefs-*")
	if err != nil {
		return fmt.Errorf("error creating temp preferences: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing preferences: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error writing preferences: %w", err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error replacing preferences: %w", err)
	}
	return nil
}
