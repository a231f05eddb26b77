// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store contains the persistence layer of both binaries.
//
// The backup server keeps one metadata row per account in a SQL database
// (PostgreSQL through pgx, or SQLite) and the snapshot blobs as files in a
// directory. The client keeps its progress data in SQLite, its sync metadata
// in a bbolt file and its preferences in a YAML file. Every client mutation
// that affects sync is published through a [ChangeNotifier].
package store
