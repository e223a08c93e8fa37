package service

import "context"

// ImageFetcher downloads an image from an external URL. Implementations must
// bound the request with a timeout and a maximum byte size; callers treat the
// download as unreliable and never let a failure abort their primary write.
type ImageFetcher interface {
	// Fetch returns the image bytes and the reported content type.
	Fetch(ctx context.Context, url string) (data []byte, contentType string, err error)
}
