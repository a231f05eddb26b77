// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST surface of the reference backup server.
//
// It serves the stored fingerprint, accepts multipart snapshot uploads and
// streams framed snapshot downloads. Bearer authentication, the subscription
// check, request tracing and access logging are handled here before requests
// reach the service layer.
package http
