// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/progress-sync/internal/codec"
	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/utils"
	"github.com/MKhiriev/progress-sync/models"
)

// maxInfoPartSize bounds the JSON fingerprint part of an upload.
const maxInfoPartSize = 16 << 10

func (h *Handler) getFingerprint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext, "fingerprint requested without user")
		return
	}

	fp, err := h.services.BackupService.GetFingerprint(ctx, userID)
	if err != nil {
		writeError(w, r, err, "error getting fingerprint")
		return
	}

	if fp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if _, err = utils.WriteJSON(w, fp, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing fingerprint")
	}
}

// uploadBackup reads the multipart body as a stream. The info part has to
// come before the data part so the snapshot never has to be buffered.
func (h *Handler) uploadBackup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext, "upload without user")
		return
	}

	reader, err := r.MultipartReader()
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMissingPart, err), "upload is not multipart")
		return
	}

	fp, err := readInfoPart(reader)
	if err != nil {
		writeError(w, r, err, "invalid info part")
		return
	}

	data, err := nextPart(reader, models.PartData)
	if err != nil {
		writeError(w, r, err, "invalid data part")
		return
	}
	defer data.Close()

	hash := r.Header.Get(models.HashHeader)
	if err = h.services.BackupService.SaveBackup(ctx, userID, fp, hash, data); err != nil {
		writeError(w, r, err, "error saving backup")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) downloadBackup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext, "download without user")
		return
	}

	record, blob, err := h.services.BackupService.OpenBackup(ctx, userID)
	if err != nil {
		writeError(w, r, err, "error opening backup")
		return
	}
	defer blob.Close()

	size := record.Size
	header := codec.Header{SyncFingerprint: record.Fingerprint, Size: &size}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)

	// The status is already sent; a failed copy can only be logged. The
	// client detects the short stream through the announced size.
	n, err := codec.WriteFrame(w, header, blob)
	if err != nil {
		log.Err(err).Int64("written", n).Msg("error streaming backup")
		return
	}

	log.Debug().Stringer("fingerprint", record.Fingerprint).Int64("written", n).Msg("backup streamed")
}

func readInfoPart(reader *multipart.Reader) (models.SyncFingerprint, error) {
	part, err := nextPart(reader, models.PartInfo)
	if err != nil {
		return models.SyncFingerprint{}, err
	}
	defer part.Close()

	var fp models.SyncFingerprint
	if err = json.NewDecoder(io.LimitReader(part, maxInfoPartSize)).Decode(&fp); err != nil {
		return models.SyncFingerprint{}, fmt.Errorf("%w: %w", ErrInvalidInfoPart, err)
	}

	return fp, nil
}

// nextPart returns the next part and checks that it is named name.
func nextPart(reader *multipart.Reader, name string) (*multipart.Part, error) {
	part, err := reader.NextPart()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %q", ErrMissingPart, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMissingPart, name, err)
	}

	if part.FormName() != name {
		part.Close()
		return nil, fmt.Errorf("%w: want %q, got %q", ErrMissingPart, name, part.FormName())
	}

	return part, nil
}
