// Package maps extracts place data from map-service links.
package maps

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"nightmap/config"
	"nightmap/internal/domain/service"

	"github.com/paulmach/orb"
)

var (
	coordinatePattern = regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`)
	placeNamePattern  = regexp.MustCompile(`/place/([^/@]+)`)
)

// nameReplacer decodes the characters that show up percent-encoded in place
// segments of Romanian venue links.
var nameReplacer = strings.NewReplacer("+", " ", "%C4%83", "ă", "%C3%A2", "â")

// linkResolver implements service.PlaceLinkResolver for Google Maps style
// links. Short links are followed through their redirects before parsing.
type linkResolver struct {
	client         *http.Client
	shortLinkHosts []string
	logger         *slog.Logger
}

// NewLinkResolver is the constructor for linkResolver.
func NewLinkResolver(cfg *config.Config, logger *slog.Logger) service.PlaceLinkResolver {
	return &linkResolver{
		client:         &http.Client{Timeout: cfg.Maps.FetchTimeout},
		shortLinkHosts: cfg.Maps.ShortLinkHosts,
		logger:         logger,
	}
}

// Resolve parses the link and returns whatever place data could be
// recovered. A fetch failure on a short link, or a link carrying neither a
// coordinate nor a place segment, yields nil. Errors are logged, never
// returned: callers treat enrichment as optional.
func (r *linkResolver) Resolve(ctx context.Context, link string) *service.PlaceData {
	if r.isShortLink(link) {
		expanded, err := r.expandShortLink(ctx, link)
		if err != nil {
			r.logger.WarnContext(ctx, "Failed to expand short map link", slog.String("link", link), slog.Any("error", err))

			return nil
		}
		link = expanded
	}

	data := &service.PlaceData{}

	if match := coordinatePattern.FindStringSubmatch(link); match != nil {
		lat, latErr := strconv.ParseFloat(match[1], 64)
		lng, lngErr := strconv.ParseFloat(match[2], 64)
		if latErr == nil && lngErr == nil {
			point := orb.Point{lng, lat}
			data.Coordinate = &point
		}
	}

	if match := placeNamePattern.FindStringSubmatch(link); match != nil {
		data.Name = nameReplacer.Replace(match[1])
	}

	if data.Coordinate == nil && data.Name == "" {
		return nil
	}

	return data
}

func (r *linkResolver) isShortLink(link string) bool {
	parsed, err := url.Parse(link)
	if err != nil {
		// Fall back to substring matching for malformed but resolvable links.
		for _, host := range r.shortLinkHosts {
			if strings.Contains(link, host) {
				return true
			}
		}

		return false
	}

	for _, host := range r.shortLinkHosts {
		if parsed.Host == host {
			return true
		}
	}

	return false
}

// expandShortLink follows the redirect chain and returns the final URL.
func (r *linkResolver) expandShortLink(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	return resp.Request.URL.String(), nil
}
