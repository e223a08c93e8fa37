// Package avatar downloads profile pictures from external URLs.
package avatar

import (
	"context"
	"io"
	"net/http"

	"nightmap/config"
	"nightmap/internal/domain/service"

	"github.com/pkg/errors"
)

// httpImageFetcher implements service.ImageFetcher with a bounded HTTP client.
// The read is capped at the configured maximum so a hostile or broken server
// cannot exhaust memory.
type httpImageFetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewImageFetcher is the constructor for httpImageFetcher.
func NewImageFetcher(cfg *config.Config) service.ImageFetcher {
	return &httpImageFetcher{
		client:   &http.Client{Timeout: cfg.Avatar.FetchTimeout},
		maxBytes: cfg.Avatar.MaxBytes,
	}
}

// Fetch downloads the image and returns its bytes with the reported content type.
func (f *httpImageFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to build image request")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to fetch image")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", errors.Errorf("unexpected status %d fetching image", resp.StatusCode)
	}

	// Read one byte past the limit to distinguish "exactly at" from "over".
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read image body")
	}
	if int64(len(data)) > f.maxBytes {
		return nil, "", errors.Errorf("image exceeds the %d byte limit", f.maxBytes)
	}

	return data, resp.Header.Get("Content-Type"), nil
}
