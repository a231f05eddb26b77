// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

func TestInitHasherPoolAndHash(t *testing.T) {
	InitHasherPool(testHashKey)

	data := []byte("test-data")

	sum1 := Hash(data)
	sum2 := Hash(data)

	require.NotEmpty(t, sum1)
	assert.True(t, bytes.Equal(sum1, sum2), "hash must be deterministic for the same input")

	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(data)
	assert.Equal(t, h.Sum(nil), sum1)
}

func TestHash_DifferentKeys(t *testing.T) {
	data := []byte("snapshot bytes")

	InitHasherPool("key-one")
	hash1 := hex.EncodeToString(Hash(data))

	InitHasherPool("key-two")
	hash2 := hex.EncodeToString(Hash(data))

	assert.NotEqual(t, hash1, hash2)
}

func TestHashReader_MatchesHash(t *testing.T) {
	InitHasherPool(testHashKey)

	data := bytes.Repeat([]byte("progress"), 10_000)

	got, err := HashReader(bytes.NewReader(data))

	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(Hash(data)), got)
	assert.Equal(t, HashString(string(data), testHashKey), got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestHashReader_PropagatesReadError(t *testing.T) {
	InitHasherPool(testHashKey)

	_, err := HashReader(failingReader{})
	assert.ErrorContains(t, err, "disk gone")
}

func TestHashReader_PoolReusable(t *testing.T) {
	InitHasherPool(testHashKey)

	first, err := HashReader(strings.NewReader("a"))
	require.NoError(t, err)
	second, err := HashReader(strings.NewReader("a"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHashesEqual(t *testing.T) {
	a := HashString("x", testHashKey)

	assert.True(t, HashesEqual(a, a))
	assert.False(t, HashesEqual(a, HashString("y", testHashKey)))
	assert.False(t, HashesEqual(a, "not-hex"))
}
