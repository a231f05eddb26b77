// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec implements the framed snapshot stream served by
// GET /backup:
//
//	[uint32 big-endian header length][UTF-8 JSON header][snapshot blob]
//
// The blob runs until the end of the stream.
package codec

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MKhiriev/progress-sync/models"
	"github.com/tidwall/gjson"
)

// MaxHeaderSize bounds the JSON header. A fingerprint is well under 1 KiB,
// so anything larger is treated as a corrupt stream.
const MaxHeaderSize = 64 << 10

const lengthPrefixSize = 4

var (
	// ErrMalformedFrame is returned for truncated prefixes, invalid JSON or
	// a header missing required fields.
	ErrMalformedFrame = errors.New("malformed snapshot frame")

	// ErrHeaderTooLarge is returned when the length prefix exceeds
	// MaxHeaderSize.
	ErrHeaderTooLarge = errors.New("snapshot frame header too large")
)

// Header is the metadata preceding the snapshot blob.
type Header struct {
	models.SyncFingerprint

	// Size is the blob length in bytes when the server announces it.
	Size *int64 `json:"size,omitempty"`
}

// WriteFrame writes h followed by blob to w and returns the number of bytes
// written.
func WriteFrame(w io.Writer, h Header, blob io.Reader) (int64, error) {
	payload, err := json.Marshal(h)
	if err != nil {
		return 0, fmt.Errorf("error encoding frame header: %w", err)
	}
	if len(payload) > MaxHeaderSize {
		return 0, ErrHeaderTooLarge
	}

	var prefix [lengthPrefixSize]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(payload)))

	var written int64
	n, err := w.Write(prefix[:])
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("error writing frame prefix: %w", err)
	}

	n, err = w.Write(payload)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("error writing frame header: %w", err)
	}

	copied, err := io.Copy(w, blob)
	written += copied
	if err != nil {
		return written, fmt.Errorf("error writing frame blob: %w", err)
	}

	return written, nil
}

// ReadHeader consumes the length prefix and the JSON header from r. After it
// returns successfully, r is positioned at the first blob byte.
func ReadHeader(r io.Reader) (Header, error) {
	var prefix [lengthPrefixSize]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, fmt.Errorf("%w: truncated length prefix", ErrMalformedFrame)
		}
		return Header{}, fmt.Errorf("error reading frame prefix: %w", err)
	}

	length := binary.BigEndian.Uint32(prefix[:])
	if length == 0 {
		return Header{}, fmt.Errorf("%w: empty header", ErrMalformedFrame)
	}
	if length > MaxHeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, fmt.Errorf("%w: truncated header", ErrMalformedFrame)
		}
		return Header{}, fmt.Errorf("error reading frame header: %w", err)
	}

	return ParseHeader(payload)
}

// ParseHeader decodes a JSON header. dataId must be a non-empty string and
// dataVersion a non-negative integer; dataTimestamp and size are optional
// and may be null.
func ParseHeader(payload []byte) (Header, error) {
	if !utf8.Valid(payload) || !gjson.ValidBytes(payload) {
		return Header{}, fmt.Errorf("%w: header is not valid JSON", ErrMalformedFrame)
	}

	doc := gjson.ParseBytes(payload)
	if !doc.IsObject() {
		return Header{}, fmt.Errorf("%w: header is not an object", ErrMalformedFrame)
	}

	id := doc.Get("dataId")
	if id.Type != gjson.String || id.Str == "" {
		return Header{}, fmt.Errorf("%w: missing dataId", ErrMalformedFrame)
	}

	version := doc.Get("dataVersion")
	if !isInteger(version) || version.Int() < 0 {
		return Header{}, fmt.Errorf("%w: missing dataVersion", ErrMalformedFrame)
	}

	h := Header{
		SyncFingerprint: models.SyncFingerprint{
			DataID:      id.Str,
			DataVersion: int(version.Int()),
		},
	}

	ts, err := optionalInt(doc.Get("dataTimestamp"), "dataTimestamp")
	if err != nil {
		return Header{}, err
	}
	h.DataTimestamp = ts

	size, err := optionalInt(doc.Get("size"), "size")
	if err != nil {
		return Header{}, err
	}
	if size != nil && *size < 0 {
		return Header{}, fmt.Errorf("%w: negative size", ErrMalformedFrame)
	}
	h.Size = size

	return h, nil
}

func optionalInt(v gjson.Result, field string) (*int64, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return nil, nil
	}
	if !isInteger(v) {
		return nil, fmt.Errorf("%w: %s is not an integer", ErrMalformedFrame, field)
	}
	n := v.Int()
	return &n, nil
}

func isInteger(v gjson.Result) bool {
	return v.Type == gjson.Number && float64(v.Int()) == v.Num
}
