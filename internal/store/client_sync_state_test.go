// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/progress-sync/models"
)

func testSyncState(t *testing.T) SyncStateStore {
	t.Helper()
	s, err := OpenSyncStateStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func ms(v int64) *int64 { return &v }

// --- open ---

func TestOpenSyncStateStore_EmptyByDefault(t *testing.T) {
	s := testSyncState(t)

	id, err := s.LocalDataID()
	require.NoError(t, err)
	assert.Empty(t, id)

	ts, err := s.LocalDataTimestamp()
	require.NoError(t, err)
	assert.Nil(t, ts)

	fp, err := s.CachedFingerprint()
	require.NoError(t, err)
	assert.Nil(t, fp)
}

func TestOpenSyncStateStore_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	s1, err := OpenSyncStateStore(path)
	require.NoError(t, err)
	require.NoError(t, s1.SetLocalDataID("abc"))
	require.NoError(t, s1.SetLocalDataTimestamp(ms(42)))
	require.NoError(t, s1.Close())

	s2, err := OpenSyncStateStore(path)
	require.NoError(t, err)
	defer s2.Close()

	id, err := s2.LocalDataID()
	require.NoError(t, err)
	assert.Equal(t, "abc", id)

	ts, err := s2.LocalDataTimestamp()
	require.NoError(t, err)
	require.NotNil(t, ts)
	assert.Equal(t, int64(42), *ts)
}

// --- timestamp ---

func TestBumpLocalDataTimestamp_NeverGoesBack(t *testing.T) {
	s := testSyncState(t)

	got, err := s.BumpLocalDataTimestamp(100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got)

	got, err = s.BumpLocalDataTimestamp(50)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got)

	got, err = s.BumpLocalDataTimestamp(150)
	require.NoError(t, err)
	assert.Equal(t, int64(150), got)
}

func TestSetLocalDataTimestamp_Nil(t *testing.T) {
	s := testSyncState(t)
	require.NoError(t, s.SetLocalDataTimestamp(ms(5)))
	require.NoError(t, s.SetLocalDataTimestamp(nil))

	ts, err := s.LocalDataTimestamp()
	require.NoError(t, err)
	assert.Nil(t, ts)
}

// --- cached fingerprint ---

func TestCachedFingerprint_RoundTrip(t *testing.T) {
	s := testSyncState(t)
	fp := &models.SyncFingerprint{DataID: "a", DataVersion: 2, DataTimestamp: ms(7)}

	require.NoError(t, s.SetCachedFingerprint(fp))
	got, err := s.CachedFingerprint()
	require.NoError(t, err)
	assert.True(t, models.FingerprintsEqual(fp, got))

	require.NoError(t, s.SetCachedFingerprint(nil))
	got, err = s.CachedFingerprint()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAdoptFingerprint_SetsAllParts(t *testing.T) {
	s := testSyncState(t)
	require.NoError(t, s.SetLocalDataID("old"))
	require.NoError(t, s.SetLocalDataTimestamp(ms(999)))

	fp := models.SyncFingerprint{DataID: "new", DataVersion: 1, DataTimestamp: ms(10)}
	require.NoError(t, s.AdoptFingerprint(fp))

	id, _ := s.LocalDataID()
	ts, _ := s.LocalDataTimestamp()
	cached, _ := s.CachedFingerprint()

	assert.Equal(t, "new", id)
	require.NotNil(t, ts)
	assert.Equal(t, int64(10), *ts, "adopted timestamp may be older than the local one")
	assert.True(t, models.FingerprintsEqual(&fp, cached))
}
