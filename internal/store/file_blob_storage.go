// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/utils"
)

// fileBlobStorage keeps snapshot blobs as files under dir. Every write goes
// to a new file so the previous blob stays readable until the metadata row
// is switched over.
type fileBlobStorage struct {
	dir    string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewFileBlobStorage creates dir if needed and returns a [BlobStorage]
// rooted at it.
func NewFileBlobStorage(dir string, logger *logger.Logger) (BlobStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("error creating blob dir: %w", err)
	}

	return &fileBlobStorage{
		dir:    dir,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func (f *fileBlobStorage) Write(ctx context.Context, userID int64, r io.Reader, limit int64) (string, int64, error) {
	tmp, err := os.CreateTemp(f.dir, ".upload-*")
	if err != nil {
		return "", 0, fmt.Errorf("error creating temp blob: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once renamed
		_ = os.Remove(tmpName)
	}()

	src := r
	if limit > 0 {
		src = io.LimitReader(r, limit+1)
	}

	size, err := io.Copy(tmp, utils.NewContextReader(ctx, src))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", 0, fmt.Errorf("error writing blob: %w", err)
	}
	if limit > 0 && size > limit {
		return "", 0, ErrBlobTooLarge
	}

	path := filepath.Join(f.dir, fmt.Sprintf("%d-%s.zip", userID, f.ids.Generate()))
	if err = os.Rename(tmpName, path); err != nil {
		return "", 0, fmt.Errorf("error moving blob into place: %w", err)
	}

	f.logger.Debug().
		Str("func", "fileBlobStorage.Write").
		Int64("user_id", userID).
		Int64("size", size).
		Str("path", path).
		Msg("blob written")

	return path, size, nil
}

func (f *fileBlobStorage) Open(path string) (io.ReadCloser, int64, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, 0, ErrBlobNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("error opening blob: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, 0, fmt.Errorf("error reading blob info: %w", err)
	}

	return file, info.Size(), nil
}

func (f *fileBlobStorage) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing blob: %w", err)
	}
	return nil
}
