// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It opens the local stores, wires the sync engine to the backup server and
// runs the engine, the fingerprint provider, the preferences watcher and
// the terminal UI as one set of workers.
package client
