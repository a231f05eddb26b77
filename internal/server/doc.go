// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the backup server's HTTP listener.
//
// The server is a [workers.Worker]: it serves until its context is canceled
// and then shuts down gracefully, waiting for in-flight snapshot transfers
// up to a fixed timeout.
package server
