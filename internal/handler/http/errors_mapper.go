// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/progress-sync/internal/app"
	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/service"
	"github.com/MKhiriev/progress-sync/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponses is ordered; the first matching sentinel wins.
var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrMissingPart, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{ErrInvalidInfoPart, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidFingerprint, errorResponse{http.StatusBadRequest, app.MsgInvalidFingerprint}},
	{service.ErrHashMismatch, errorResponse{http.StatusBadRequest, app.MsgHashMismatch}},

	{ErrEmptyAuthorizationHeader, errorResponse{http.StatusUnauthorized, app.MsgNoTokenProvided}},
	{service.ErrNoToken, errorResponse{http.StatusUnauthorized, app.MsgNoTokenProvided}},
	{service.ErrTokenIsExpired, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpired}},
	{service.ErrTokenIsExpiredOrInvalid, errorResponse{http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid}},
	{service.ErrNoSubscription, errorResponse{http.StatusPaymentRequired, app.MsgNoSubscription}},

	{store.ErrBackupNotFound, errorResponse{http.StatusNotFound, app.MsgBackupNotFound}},
	{store.ErrBlobNotFound, errorResponse{http.StatusNotFound, app.MsgBackupNotFound}},
	{store.ErrBlobTooLarge, errorResponse{http.StatusRequestEntityTooLarge, app.MsgBackupTooLarge}},
	{store.ErrStorageUnavailable, errorResponse{http.StatusServiceUnavailable, app.MsgStorageUnavailable}},
}

func responseFromError(err error) errorResponse {
	for _, r := range errorResponses {
		if errors.Is(err, r.target) {
			return r.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and answers with the mapped status and message.
// Internal errors are never echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", resp.status).Msg(msg)
	}

	http.Error(w, resp.message, resp.status)
}
