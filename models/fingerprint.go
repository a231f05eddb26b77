// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// SyncFingerprint describes a single revision of the user-progress dataset.
//
// Two devices holding byte-identical datasets report equal fingerprints. The
// engine never inspects the dataset itself; every sync decision is derived
// from comparing fingerprints.
type SyncFingerprint struct {
	// DataID identifies the dataset lineage. It is generated once on a fresh
	// install and replaced only when a downloaded snapshot is restored.
	DataID string `json:"dataId"`

	// DataVersion is the local storage schema version the dataset was
	// written with.
	DataVersion int `json:"dataVersion"`

	// DataTimestamp is the unix time in milliseconds of the last tracked
	// mutation, or nil if the dataset has never been modified.
	DataTimestamp *int64 `json:"dataTimestamp,omitempty"`
}

// Equal reports whether f and other are field-wise equal. Nil timestamps are
// equal only to each other.
func (f SyncFingerprint) Equal(other SyncFingerprint) bool {
	if f.DataID != other.DataID || f.DataVersion != other.DataVersion {
		return false
	}
	if f.DataTimestamp == nil || other.DataTimestamp == nil {
		return f.DataTimestamp == nil && other.DataTimestamp == nil
	}
	return *f.DataTimestamp == *other.DataTimestamp
}

// Time returns DataTimestamp as a [time.Time]. ok is false when the dataset
// has never been modified.
func (f SyncFingerprint) Time() (t time.Time, ok bool) {
	if f.DataTimestamp == nil {
		return time.Time{}, false
	}
	return time.UnixMilli(*f.DataTimestamp), true
}

// String implements [fmt.Stringer] for log output.
func (f SyncFingerprint) String() string {
	ts := "never"
	if f.DataTimestamp != nil {
		ts = fmt.Sprintf("%d", *f.DataTimestamp)
	}
	return fmt.Sprintf("%s@v%d/%s", f.DataID, f.DataVersion, ts)
}

// FingerprintsEqual compares two optional fingerprints. Two nil values are
// equal; a nil and a non-nil value are not.
func FingerprintsEqual(a, b *SyncFingerprint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// Millis returns a pointer to the unix millisecond value of t. It is a
// convenience for building fingerprints.
func Millis(t time.Time) *int64 {
	ms := t.UnixMilli()
	return &ms
}
