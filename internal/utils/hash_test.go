// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "test-secret-key"

func TestHasher_HashMatchesHMAC(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("test-data")

	sum1 := h.Hash(data)
	sum2 := h.Hash(data)

	require.NotEmpty(t, sum1)
	assert.True(t, bytes.Equal(sum1, sum2), "hash must be deterministic for the same input")

	mac := hmac.New(sha256.New, []byte(testHashKey))
	mac.Write(data)
	assert.Equal(t, mac.Sum(nil), sum1)
}

func TestHasher_DifferentKeys(t *testing.T) {
	data := []byte(`{"a":1}`)
	assert.NotEqual(t, NewHasher("k1").HashHex(data), NewHasher("k2").HashHex(data))
}

func TestHasher_Equal(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte(`{"name":"alice"}`)

	assert.True(t, h.Equal(data, h.HashHex(data)))
	assert.False(t, h.Equal(data, h.HashHex([]byte("other"))))
	assert.False(t, h.Equal(data, "not-hex"))
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher(testHashKey)
	data := []byte("payload")
	want := h.HashHex(data)

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, h.HashHex(data))
		}()
	}
	wg.Wait()
}
