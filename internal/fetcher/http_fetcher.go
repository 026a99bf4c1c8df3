// Package fetcher downloads and decodes remote artwork
package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG format support
	_ "image/png"  // PNG format support
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lucidonlinenet/drastic-view/internal/domain"
	"go.uber.org/zap"
)

const _maxImageSize = 10 * 1024 * 1024 // 10 MB

// HTTPFetcher downloads artwork over HTTP and decodes it into a bitmap
type HTTPFetcher struct {
	logger *zap.Logger
	token  string
	client *http.Client
}

// NewHTTPFetcher creates an authenticated image fetcher
func NewHTTPFetcher(logger *zap.Logger, token string) *HTTPFetcher {
	return &HTTPFetcher{
		logger: logger,
		token:  token,
		client: &http.Client{
			Timeout: 10 * time.Second, // Essential to prevent blocking the daemon
		},
	}
}

// Fetch downloads and decodes the image at url. An empty url returns
// (nil, nil): the pipeline treats that as "no image", not a failure.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	if url == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", domain.ErrImageFetch, err)
	}

	req.Header.Set("User-Agent", "drasticView/1.0")
	req.Header.Set("X-Plex-Token", f.token)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: network error: %w", domain.ErrImageFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code: %d", domain.ErrImageFetch, resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return nil, fmt.Errorf("%w: url is not an image: %s", domain.ErrImageFetch, ct)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, _maxImageSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %w", domain.ErrImageFetch, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image: %w", domain.ErrImageFetch, err)
	}

	f.logger.Debug("Image fetched successfully",
		zap.Int("bytes", len(data)),
		zap.String("url", url))
	return img, nil
}
