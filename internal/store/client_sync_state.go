// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/progress-sync/models"
)

const (
	stateDirPerm     = fs.FileMode(0o700)
	stateFilePerm    = fs.FileMode(0o600)
	stateOpenTimeout = 5 * time.Second
)

var (
	syncBucket           = []byte("sync")
	dataIDKey            = []byte("data_id")
	dataTimestampKey     = []byte("data_timestamp")
	cachedFingerprintKey = []byte("cached_fingerprint")
)

// boltSyncState is the bbolt implementation of [SyncStateStore]. Timestamps
// are stored as 8-byte big-endian unix milliseconds, the cached fingerprint
// as JSON. A missing key reads as "not set".
type boltSyncState struct {
	db *bolt.DB
}

// OpenSyncStateStore opens the state file at path, creating it and its
// directory if needed.
func OpenSyncStateStore(path string) (SyncStateStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), stateDirPerm); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	db, err := bolt.Open(path, stateFilePerm, &bolt.Options{Timeout: stateOpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(syncBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing state db: %w", err)
	}

	return &boltSyncState{db: db}, nil
}

func (s *boltSyncState) Close() error {
	return s.db.Close()
}

func (s *boltSyncState) LocalDataID() (string, error) {
	var id string
	err := s.db.View(func(tx *bolt.Tx) error {
		id = string(tx.Bucket(syncBucket).Get(dataIDKey))
		return nil
	})
	return id, err
}

func (s *boltSyncState) SetLocalDataID(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(syncBucket).Put(dataIDKey, []byte(id))
	})
}

func (s *boltSyncState) LocalDataTimestamp() (*int64, error) {
	var ts *int64
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		ts, err = decodeTimestamp(tx.Bucket(syncBucket).Get(dataTimestampKey))
		return err
	})
	return ts, err
}

func (s *boltSyncState) SetLocalDataTimestamp(ts *int64) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return putTimestamp(tx.Bucket(syncBucket), ts)
	})
}

func (s *boltSyncState) BumpLocalDataTimestamp(now int64) (int64, error) {
	stored := now
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(syncBucket)
		current, err := decodeTimestamp(b.Get(dataTimestampKey))
		if err != nil {
			return err
		}
		if current != nil && *current > now {
			stored = *current
		}
		return putTimestamp(b, &stored)
	})
	return stored, err
}

func (s *boltSyncState) CachedFingerprint() (*models.SyncFingerprint, error) {
	var fp *models.SyncFingerprint
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(syncBucket).Get(cachedFingerprintKey)
		if raw == nil {
			return nil
		}
		fp = new(models.SyncFingerprint)
		if err := json.Unmarshal(raw, fp); err != nil {
			return fmt.Errorf("decoding cached fingerprint: %w", err)
		}
		return nil
	})
	return fp, err
}

func (s *boltSyncState) SetCachedFingerprint(fp *models.SyncFingerprint) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return putFingerprint(tx.Bucket(syncBucket), fp)
	})
}

func (s *boltSyncState) AdoptFingerprint(fp models.SyncFingerprint) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(syncBucket)
		if err := b.Put(dataIDKey, []byte(fp.DataID)); err != nil {
			return err
		}
		if err := putTimestamp(b, fp.DataTimestamp); err != nil {
			return err
		}
		return putFingerprint(b, &fp)
	})
}

func putTimestamp(b *bolt.Bucket, ts *int64) error {
	if ts == nil {
		return b.Delete(dataTimestampKey)
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(*ts))
	return b.Put(dataTimestampKey, buf)
}

func decodeTimestamp(raw []byte) (*int64, error) {
	if raw == nil {
		return nil, nil
	}
	if len(raw) != 8 {
		return nil, fmt.Errorf("decoding data timestamp: unexpected length %d", len(raw))
	}
	ts := int64(binary.BigEndian.Uint64(raw))
	return &ts, nil
}

func putFingerprint(b *bolt.Bucket, fp *models.SyncFingerprint) error {
	if fp == nil {
		return b.Delete(cachedFingerprintKey)
	}
	raw, err := json.Marshal(fp)
	if err != nil {
		return fmt.Errorf("encoding cached fingerprint: %w", err)
	}
	return b.Put(cachedFingerprintKey, raw)
}
