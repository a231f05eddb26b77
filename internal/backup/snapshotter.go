// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backup

import (
	"archive/zip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/store"
	"github.com/MKhiriev/progress-sync/internal/utils"
	"github.com/MKhiriev/progress-sync/migrations"
)

const (
	entryManifest    = "manifest.json"
	entryProgress    = "progress.db"
	entryPreferences = "preferences.yaml"

	// maxEntrySize bounds decompression of a single archive entry.
	maxEntrySize = 1 << 30
)

type manifest struct {
	SchemaVersion int       `json:"schemaVersion"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Snapshotter writes and restores snapshot archives of the client stores.
type Snapshotter struct {
	db      *store.DB
	prefs   store.PreferencesStore
	tempDir string
	logger  *logger.Logger
}

// NewSnapshotter returns a Snapshotter over the progress database and the
// preferences file. Intermediate files are created under tempDir.
func NewSnapshotter(db *store.DB, prefs store.PreferencesStore, tempDir string, logger *logger.Logger) *Snapshotter {
	return &Snapshotter{
		db:      db,
		prefs:   prefs,
		tempDir: tempDir,
		logger:  logger.WithComponent("snapshotter"),
	}
}

// PerformBackup writes a snapshot archive of the current local data to dst.
func (s *Snapshotter) PerformBackup(ctx context.Context, dst string) (err error) {
	work, err := os.MkdirTemp(s.tempDir, "backup-*")
	if err != nil {
		return fmt.Errorf("error creating backup work dir: %w", err)
	}
	defer os.RemoveAll(work)

	dbCopy := filepath.Join(work, entryProgress)
	if _, err = s.db.ExecContext(ctx, `VACUUM INTO ?`, dbCopy); err != nil {
		return fmt.Errorf("error copying progress database: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error creating snapshot file: %w", err)
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	zw := zip.NewWriter(out)

	m := manifest{SchemaVersion: migrations.ClientSchemaVersion, CreatedAt: time.Now().UTC()}
	if err = writeJSONEntry(zw, entryManifest, m); err != nil {
		return err
	}
	if err = writeFileEntry(ctx, zw, entryProgress, dbCopy); err != nil {
		return err
	}
	if err = s.writePreferences(ctx, zw); err != nil {
		return err
	}

	if err = zw.Close(); err != nil {
		return fmt.Errorf("error finalizing snapshot: %w", err)
	}

	s.logger.Debug().Str("func", "Snapshotter.PerformBackup").Str("dst", dst).Msg("snapshot written")
	return nil
}

func (s *Snapshotter) writePreferences(ctx context.Context, zw *zip.Writer) error {
	err := writeFileEntry(ctx, zw, entryPreferences, s.prefs.Path())
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	// never written yet
	w, err := zw.Create(entryPreferences)
	if err != nil {
		return fmt.Errorf("error adding %s: %w", entryPreferences, err)
	}
	_, err = w.Write([]byte("{}\n"))
	return err
}

// Restore replaces the local data with the snapshot at src. Nothing local is
// modified unless the archive is complete and supported.
func (s *Snapshotter) Restore(ctx context.Context, src string) error {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	defer zr.Close()

	entries := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		entries[f.Name] = f
	}
	for _, name := range []string{entryManifest, entryProgress, entryPreferences} {
		if entries[name] == nil {
			return fmt.Errorf("%w: missing %s", ErrInvalidSnapshot, name)
		}
	}

	var m manifest
	if err = readJSONEntry(entries[entryManifest], &m); err != nil {
		return err
	}
	if m.SchemaVersion > migrations.ClientSchemaVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedSnapshot, m.SchemaVersion)
	}

	work, err := os.MkdirTemp(s.tempDir, "restore-*")
	if err != nil {
		return fmt.Errorf("error creating restore work dir: %w", err)
	}
	defer os.RemoveAll(work)

	dbCopy := filepath.Join(work, entryProgress)
	if err = extractEntry(ctx, entries[entryProgress], dbCopy); err != nil {
		return err
	}

	// the preferences swap is a rename, so stage next to the target
	prefsStage, err := os.CreateTemp(filepath.Dir(s.prefs.Path()), ".prefs-restore-*")
	if err != nil {
		return fmt.Errorf("error staging preferences: %w", err)
	}
	prefsStage.Close()
	defer os.Remove(prefsStage.Name())

	if err = extractEntry(ctx, entries[entryPreferences], prefsStage.Name()); err != nil {
		return err
	}

	previous, err := s.stashPreferences()
	if err != nil {
		return err
	}
	defer os.Remove(previous)

	// the preferences swap runs inside the row transaction, right before
	// commit, and is undone if the commit fails
	swapped := false
	err = s.replaceRows(ctx, dbCopy, func() error {
		if err := s.prefs.Replace(prefsStage.Name()); err != nil {
			return fmt.Errorf("error restoring preferences: %w", err)
		}
		swapped = true
		return nil
	})
	if err != nil {
		if swapped {
			if undoErr := s.prefs.Replace(previous); undoErr != nil {
				s.logger.Err(undoErr).Str("func", "Snapshotter.Restore").Msg("failed to put previous preferences back")
			}
		}
		return err
	}

	s.logger.Info().Str("func", "Snapshotter.Restore").Int("schema_version", m.SchemaVersion).Msg("snapshot restored")
	return nil
}

// stashPreferences copies the current preferences file next to it. A missing
// file stashes as empty.
func (s *Snapshotter) stashPreferences() (string, error) {
	stash, err := os.CreateTemp(filepath.Dir(s.prefs.Path()), ".prefs-prev-*")
	if err != nil {
		return "", fmt.Errorf("error stashing preferences: %w", err)
	}
	defer stash.Close()

	current, err := os.Open(s.prefs.Path())
	if errors.Is(err, os.ErrNotExist) {
		return stash.Name(), nil
	}
	if err == nil {
		defer current.Close()
		_, err = io.Copy(stash, current)
	}
	if err != nil {
		os.Remove(stash.Name())
		return "", fmt.Errorf("error stashing preferences: %w", err)
	}
	return stash.Name(), nil
}

// replaceRows copies every progress table from the snapshot database into the
// live one inside a single transaction and runs beforeCommit last. ATTACH is
// not allowed inside a transaction, so one connection is pinned for the whole
// sequence.
func (s *Snapshotter) replaceRows(ctx context.Context, snapshotDB string, beforeCommit func() error) (err error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("error acquiring connection: %w", err)
	}
	defer conn.Close()

	if _, err = conn.ExecContext(ctx, `ATTACH DATABASE ? AS snapshot`, snapshotDB); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	defer func() {
		if _, detachErr := conn.ExecContext(context.WithoutCancel(ctx), `DETACH DATABASE snapshot`); detachErr != nil {
			s.logger.Err(detachErr).Str("func", "Snapshotter.replaceRows").Msg("failed to detach snapshot")
		}
	}()

	tables := store.ProgressTables()
	for _, table := range tables {
		var name string
		err = conn.QueryRowContext(ctx, `SELECT name FROM snapshot.sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			return fmt.Errorf("%w: table %s: %w", ErrInvalidSnapshot, table, err)
		}
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for i := len(tables) - 1; i >= 0; i-- {
		if _, err = tx.ExecContext(ctx, `DELETE FROM main.`+tables[i]); err != nil {
			return fmt.Errorf("%w: clearing %s: %w", store.ErrExecutingStatement, tables[i], err)
		}
	}
	for _, table := range tables {
		if _, err = tx.ExecContext(ctx, `INSERT INTO main.`+table+` SELECT * FROM snapshot.`+table); err != nil {
			return fmt.Errorf("%w: copying %s: %w", store.ErrExecutingStatement, table, err)
		}
	}

	if err = beforeCommit(); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrCommitingTransaction, err)
	}
	return nil
}

func writeJSONEntry(zw *zip.Writer, name string, v any) error {
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("error adding %s: %w", name, err)
	}
	if err = json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("error writing %s: %w", name, err)
	}
	return nil
}

func writeFileEntry(ctx context.Context, zw *zip.Writer, name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", name, err)
	}
	defer f.Close()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("error adding %s: %w", name, err)
	}
	if _, err = io.Copy(w, utils.NewContextReader(ctx, f)); err != nil {
		return fmt.Errorf("error writing %s: %w", name, err)
	}
	return nil
}

func readJSONEntry(f *zip.File, v any) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	defer rc.Close()

	if err = json.NewDecoder(io.LimitReader(rc, 1<<20)).Decode(v); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidSnapshot, f.Name, err)
	}
	return nil
}

func extractEntry(ctx context.Context, f *zip.File, dst string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error extracting %s: %w", f.Name, err)
	}

	_, err = io.Copy(out, utils.NewContextReader(ctx, io.LimitReader(rc, maxEntrySize)))
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %s: %w", ErrInvalidSnapshot, f.Name, err)
	}
	return nil
}
