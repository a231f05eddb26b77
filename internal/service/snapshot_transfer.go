// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/progress-sync/internal/adapter"
	"github.com/MKhiriev/progress-sync/internal/codec"
	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/tracing"
	"github.com/MKhiriev/progress-sync/internal/utils"
	"github.com/MKhiriev/progress-sync/models"
)

const (
	uploadPattern   = "upload-*.zip"
	downloadPattern = "download-*.zip"
)

type snapshotTransfer struct {
	adapter     adapter.BackupAdapter
	snapshotter Snapshotter

	tempDir          string
	supportedVersion int

	tracer *tracing.Tracer
	logger *logger.Logger
}

// NewSnapshotTransfer creates a SnapshotTransfer that stages snapshots in
// tempDir.
func NewSnapshotTransfer(backupAdapter adapter.BackupAdapter, snapshotter Snapshotter, tempDir string, supportedVersion int, tracer *tracing.Tracer, logger *logger.Logger) SnapshotTransfer {
	if tracer == nil {
		tracer = tracing.Nop()
	}

	return &snapshotTransfer{
		adapter:          backupAdapter,
		snapshotter:      snapshotter,
		tempDir:          tempDir,
		supportedVersion: supportedVersion,
		tracer:           tracer,
		logger:           logger.WithComponent("snapshot-transfer"),
	}
}

// Upload implements SnapshotTransfer.
func (t *snapshotTransfer) Upload(ctx context.Context, fp models.SyncFingerprint) (err error) {
	ctx, span := t.tracer.StartTransfer(ctx, "upload", fp.DataID)
	defer func() { span.End(err) }()

	path, err := t.createTemp(uploadPattern)
	if err != nil {
		return err
	}
	defer t.remove(path)

	if err = t.snapshotter.PerformBackup(ctx, path); err != nil {
		return fmt.Errorf("perform backup: %w", err)
	}

	if info, statErr := os.Stat(path); statErr == nil {
		span.SetBytes(info.Size())
	}

	if err = t.adapter.UploadBackup(ctx, fp, path); err != nil {
		return fmt.Errorf("upload snapshot: %w", err)
	}

	t.logger.Info().Stringer("fingerprint", fp).Msg("snapshot uploaded")
	return nil
}

// Download implements SnapshotTransfer. The blob is written to a temp file
// in full and validated before the snapshotter sees it, so a failed or
// canceled transfer never touches local data.
func (t *snapshotTransfer) Download(ctx context.Context) (fp models.SyncFingerprint, err error) {
	ctx, span := t.tracer.StartTransfer(ctx, "download", "")
	defer func() { span.End(err) }()

	stream, err := t.adapter.DownloadBackup(ctx)
	if err != nil {
		return fp, fmt.Errorf("download snapshot: %w", err)
	}
	defer stream.Close()

	header, err := codec.ReadHeader(stream)
	if err != nil {
		return fp, fmt.Errorf("read snapshot header: %w", err)
	}
	if header.DataVersion > t.supportedVersion {
		return fp, fmt.Errorf("%w: remote v%d, supported v%d", ErrUnsupportedDataVersion, header.DataVersion, t.supportedVersion)
	}

	path, err := t.createTemp(downloadPattern)
	if err != nil {
		return fp, err
	}
	defer t.remove(path)

	n, err := t.receive(ctx, stream, path)
	if err != nil {
		return fp, err
	}
	span.SetBytes(n)

	if header.Size != nil && *header.Size != n {
		return fp, fmt.Errorf("%w: announced %d bytes, received %d", ErrSizeMismatch, *header.Size, n)
	}

	if err = t.snapshotter.Restore(ctx, path); err != nil {
		return fp, fmt.Errorf("restore snapshot: %w", err)
	}

	t.logger.Info().Stringer("fingerprint", header.SyncFingerprint).Int64("bytes", n).Msg("snapshot restored")
	return header.SyncFingerprint, nil
}

func (t *snapshotTransfer) receive(ctx context.Context, stream io.Reader, path string) (int64, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return 0, fmt.Errorf("open snapshot file: %w", err)
	}

	n, err := io.Copy(f, utils.NewContextReader(ctx, stream))
	closeErr := f.Close()
	if err != nil {
		return n, fmt.Errorf("receive snapshot: %w", err)
	}
	if closeErr != nil {
		return n, fmt.Errorf("close snapshot file: %w", closeErr)
	}

	return n, nil
}

func (t *snapshotTransfer) createTemp(pattern string) (string, error) {
	if err := os.MkdirAll(t.tempDir, 0o700); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	f, err := os.CreateTemp(t.tempDir, pattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()

	if err = f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return path, nil
}

func (t *snapshotTransfer) remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		t.logger.Err(err).Str("path", path).Msg("failed to remove temp snapshot")
	}
}
