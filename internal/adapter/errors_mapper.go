// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of an error response body is kept for the
// error message.
const maxErrorBody = 4 << 10

func mapHTTPError(resp *resty.Response) error {
	return statusError(resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
}

// mapRawHTTPError is mapHTTPError for responses read with
// SetDoNotParseResponse. It drains at most maxErrorBody bytes of the body.
func mapRawHTTPError(resp *resty.Response) error {
	var body string
	if raw := resp.RawBody(); raw != nil {
		data, _ := io.ReadAll(io.LimitReader(raw, maxErrorBody))
		body = strings.TrimSpace(string(data))
	}
	return statusError(resp.StatusCode(), body)
}

func statusError(code int, body string) error {
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	switch code {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%w: %s", ErrPaymentRequired, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrRequestTooLarge, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, body)
	default:
		if body == "" {
			body = http.StatusText(code)
		}
		return fmt.Errorf("%w: http %d: %s", ErrUnexpectedStatus, code, body)
	}
}

// mapTransportError wraps a failed round trip. Cancellation is passed through
// unchanged so callers can tell it apart from a connectivity problem; deadline
// expiry and network errors become ErrNoConnection.
func mapTransportError(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w: %w", op, ErrNoConnection, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
