// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/models"
)

func newTestPreferences(t *testing.T, initial string) (PreferencesStore, <-chan models.StoreChange) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	if initial != "" {
		require.NoError(t, os.WriteFile(path, []byte(initial), 0o600))
	}

	notifier := NewChangeNotifier()
	changes, unsubscribe := notifier.Subscribe()
	t.Cleanup(unsubscribe)

	prefs, err := OpenPreferences(path, []string{"daily_goal", "study_language"}, notifier, logger.Nop())
	require.NoError(t, err)
	return prefs, changes
}

func assertNoChange(t *testing.T, changes <-chan models.StoreChange) {
	t.Helper()
	select {
	case c := <-changes:
		t.Fatalf("unexpected change %+v", c)
	case <-time.After(20 * time.Millisecond):
	}
}

// ── Set / Get ────────────────────────────────────────────────────────────────

func TestPreferences_LoadsExistingFile(t *testing.T) {
	prefs, _ := newTestPreferences(t, "daily_goal: 20\ntheme: dark\n")

	v, ok := prefs.Get("daily_goal")
	require.True(t, ok)
	assert.Equal(t, 20, v)
	assert.Len(t, prefs.All(), 2)
}

func TestPreferences_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- just\n- a list\n"), 0o600))

	_, err := OpenPreferences(path, nil, NewChangeNotifier(), logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidPreferences)
}

func TestPreferences_SetTrackedKeyAffectsSync(t *testing.T) {
	prefs, changes := newTestPreferences(t, "")

	require.NoError(t, prefs.Set("daily_goal", 30))
	c := nextChange(t, changes)
	assert.Equal(t, models.StorePreferences, c.Store)
	assert.True(t, c.AffectsSync)

	raw, err := os.ReadFile(prefs.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "daily_goal: 30")
}

func TestPreferences_SetUntrackedKey(t *testing.T) {
	prefs, changes := newTestPreferences(t, "")

	require.NoError(t, prefs.Set("theme", "dark"))
	assert.False(t, nextChange(t, changes).AffectsSync)
}

func TestPreferences_SetSameValueIsNoop(t *testing.T) {
	prefs, changes := newTestPreferences(t, "daily_goal: 20\n")

	require.NoError(t, prefs.Set("daily_goal", 20))
	assertNoChange(t, changes)
}

// ── Reload / Replace ─────────────────────────────────────────────────────────

func TestPreferences_ReloadDetectsTrackedEdit(t *testing.T) {
	prefs, changes := newTestPreferences(t, "daily_goal: 20\ntheme: dark\n")

	require.NoError(t, os.WriteFile(prefs.Path(), []byte("daily_goal: 20\ntheme: light\n"), 0o600))
	require.NoError(t, prefs.Reload())
	assert.False(t, nextChange(t, changes).AffectsSync)

	require.NoError(t, os.WriteFile(prefs.Path(), []byte("daily_goal: 25\ntheme: light\n"), 0o600))
	require.NoError(t, prefs.Reload())
	assert.True(t, nextChange(t, changes).AffectsSync)

	require.NoError(t, prefs.Reload())
	assertNoChange(t, changes)
}

func TestPreferences_ReplaceDoesNotPublish(t *testing.T) {
	prefs, changes := newTestPreferences(t, "daily_goal: 20\n")

	src := filepath.Join(filepath.Dir(prefs.Path()), "incoming.yaml")
	require.NoError(t, os.WriteFile(src, []byte("daily_goal: 50\n"), 0o600))

	require.NoError(t, prefs.Replace(src))
	v, _ := prefs.Get("daily_goal")
	assert.Equal(t, 50, v)

	// the file watcher would reload after the rename
	require.NoError(t, prefs.Reload())
	assertNoChange(t, changes)

	_, err := os.Stat(src)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// ── PreferencesWatcher ───────────────────────────────────────────────────────

func TestPreferencesWatcher_ReloadsOnExternalEdit(t *testing.T) {
	prefs, changes := newTestPreferences(t, "daily_goal: 20\n")

	w := NewPreferencesWatcher(prefs, logger.Nop())
	w.debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// give the watcher time to register the directory
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(prefs.Path(), []byte("daily_goal: 40\n"), 0o600))

	select {
	case c := <-changes:
		assert.True(t, c.AffectsSync)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not publish the external edit")
	}
}
