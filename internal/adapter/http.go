// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/progress-sync/internal/config"
	"github.com/MKhiriev/progress-sync/internal/logger"
	"github.com/MKhiriev/progress-sync/internal/utils"
	"github.com/MKhiriev/progress-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpBackupAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource

	hashKey        string
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPBackupAdapter constructs an HTTP/REST implementation of
// [BackupAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and initialises the shared HMAC hasher pool used
// for transport integrity hashes when a hash key is configured.
//
// adapterCfg.RequestTimeout bounds fingerprint requests only. Snapshot
// transfers may take arbitrarily long and are bounded by their context.
func NewHTTPBackupAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, tokens TokenSource, logger *logger.Logger) (BackupAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient("progress-sync/" + appCfg.Version)
	client.SetBaseURL(baseURL)

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &httpBackupAdapter{
		client:         client,
		tokens:         tokens,
		hashKey:        appCfg.HashKey,
		requestTimeout: adapterCfg.RequestTimeout,
		logger:         logger.WithComponent("backup-adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetFingerprint implements [BackupAdapter]. It sends GET /fingerprint and
// decodes the JSON body of a 200 response. A 204 means no backup exists.
func (h *httpBackupAdapter) GetFingerprint(ctx context.Context) (*models.SyncFingerprint, error) {
	if h.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
		defer cancel()
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetHeader("Accept", "application/json").
		Get(models.PathFingerprint)
	if err != nil {
		return nil, mapTransportError("get fingerprint request", err)
	}

	if resp.StatusCode() == http.StatusNoContent {
		h.logger.Debug().Msg("server holds no backup")
		return nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var fp models.SyncFingerprint
	if err = json.Unmarshal(resp.Body(), &fp); err != nil {
		return nil, fmt.Errorf("%w: decode fingerprint: %w", ErrMalformedResponse, err)
	}
	if fp.DataID == "" {
		return nil, fmt.Errorf("%w: fingerprint without dataId", ErrMalformedResponse)
	}

	h.logger.Debug().Str("remote", fp.String()).Msg("fetched remote fingerprint")
	return &fp, nil
}

// UploadBackup implements [BackupAdapter]. It POSTs a multipart body with
// the fingerprint as the "info" part and the snapshot as the "data" part
// named data.zip. When a hash key is configured the HMAC of the snapshot is
// sent in the HashSHA256 header.
func (h *httpBackupAdapter) UploadBackup(ctx context.Context, fingerprint models.SyncFingerprint, snapshotPath string) error {
	info, err := json.Marshal(fingerprint)
	if err != nil {
		return fmt.Errorf("encode backup info: %w", err)
	}

	snapshot, err := os.Open(snapshotPath)
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	defer snapshot.Close()

	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	if h.hashKey != "" {
		sum, err := utils.HashReader(snapshot)
		if err != nil {
			return fmt.Errorf("hash snapshot: %w", err)
		}
		if _, err = snapshot.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("rewind snapshot: %w", err)
		}
		req.SetHeader(models.HashHeader, sum)
	}

	body, contentType, wait := streamMultipart(ctx, info, snapshot)
	resp, err := req.
		SetHeader("Content-Type", contentType).
		SetBody(body).
		Post(models.PathBackup)
	body.Close()
	wait()
	if err != nil {
		return mapTransportError("upload backup request", err)
	}

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Info().Str("fingerprint", fingerprint.String()).Msg("backup uploaded")
	return nil
}

// streamMultipart encodes the info part followed by the snapshot part into a
// pipe, so the snapshot is read while the request is sent. The returned wait
// blocks until the writer goroutine is done; close body first if the request
// ended early.
func streamMultipart(ctx context.Context, info []byte, snapshot io.Reader) (body *io.PipeReader, contentType string, wait func()) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	done := make(chan struct{})

	go func() {
		defer close(done)
		pw.CloseWithError(writeBackupParts(ctx, mw, info, snapshot))
	}()

	return pr, mw.FormDataContentType(), func() { <-done }
}

func writeBackupParts(ctx context.Context, mw *multipart.Writer, info []byte, snapshot io.Reader) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, models.PartInfo))
	header.Set("Content-Type", "application/json")
	w, err := mw.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err = w.Write(info); err != nil {
		return err
	}

	header = make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, models.PartData, models.SnapshotFileName))
	header.Set("Content-Type", "application/zip")
	if w, err = mw.CreatePart(header); err != nil {
		return err
	}
	if _, err = io.Copy(w, utils.NewContextReader(ctx, snapshot)); err != nil {
		return err
	}
	return mw.Close()
}

// DownloadBackup implements [BackupAdapter]. It sends GET /backup without
// buffering the response and hands the raw framed body to the caller.
func (h *httpBackupAdapter) DownloadBackup(ctx context.Context) (io.ReadCloser, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetDoNotParseResponse(true).
		SetHeader("Accept", "application/octet-stream").
		Get(models.PathBackup)
	if err != nil {
		return nil, mapTransportError("download backup request", err)
	}

	body := resp.RawBody()
	if resp.StatusCode() != http.StatusOK {
		defer body.Close()
		if resp.StatusCode() == http.StatusNoContent {
			return nil, fmt.Errorf("%w: server holds no backup", ErrNotFound)
		}
		return nil, mapRawHTTPError(resp)
	}

	return &streamBody{ReadCloser: body}, nil
}

// streamBody maps read failures of the raw response body the same way as
// failed round trips, so a connection dropped mid-transfer is reported as
// ErrNoConnection.
type streamBody struct {
	io.ReadCloser
}

func (b *streamBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, mapTransportError("read backup stream", err)
	}
	return n, err
}

func (h *httpBackupAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token, err := h.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("bearer token: %w", err)
	}

	req := h.client.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req, nil
}
