package avatar

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nightmap/config"
	"nightmap/internal/domain/service"
)

func newTestFetcher(maxBytes int64) service.ImageFetcher {
	cfg := &config.Config{
		Avatar: &config.AvatarConfig{
			FetchTimeout: 2 * time.Second,
			MaxBytes:     maxBytes,
		},
	}

	return NewImageFetcher(cfg)
}

func TestImageFetcher_Fetch(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02, 0x03}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	fetcher := newTestFetcher(1 << 20)

	data, contentType, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestImageFetcher_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	fetcher := newTestFetcher(1 << 20)

	_, _, err := fetcher.Fetch(context.Background(), server.URL)
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestImageFetcher_SizeLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte{0xAB}, 64))
	}))
	defer server.Close()

	// A body exactly at the limit passes.
	fetcher := newTestFetcher(64)
	data, _, err := fetcher.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Len(t, data, 64)

	// One byte less and the same body is rejected.
	fetcher = newTestFetcher(63)
	_, _, err = fetcher.Fetch(context.Background(), server.URL)
	assert.ErrorContains(t, err, "exceeds the 63 byte limit")
}

func TestImageFetcher_UnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	fetcher := newTestFetcher(1 << 20)

	_, _, err := fetcher.Fetch(context.Background(), url)
	assert.Error(t, err)
}
