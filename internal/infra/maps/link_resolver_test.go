package maps

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nightmap/config"
	"nightmap/internal/domain/service"
)

func newTestResolver(shortLinkHosts ...string) service.PlaceLinkResolver {
	cfg := &config.Config{
		Maps: &config.MapsConfig{
			ShortLinkHosts: shortLinkHosts,
			FetchTimeout:   2 * time.Second,
		},
	}

	return NewLinkResolver(cfg, slog.Default())
}

func TestLinkResolver_CoordinatesAndName(t *testing.T) {
	resolver := newTestResolver()

	link := "https://www.google.com/maps/place/Club+Example/@44.4268,26.1025,17z"
	data := resolver.Resolve(context.Background(), link)
	require.NotNil(t, data)

	assert.Equal(t, "Club Example", data.Name)
	require.NotNil(t, data.Coordinate)
	assert.InDelta(t, 44.4268, data.Coordinate.Lat(), 1e-9)
	assert.InDelta(t, 26.1025, data.Coordinate.Lon(), 1e-9)
}

func TestLinkResolver_NegativeCoordinates(t *testing.T) {
	resolver := newTestResolver()

	data := resolver.Resolve(context.Background(), "https://maps.example.com/@-33.8688,-151.2093,12z")
	require.NotNil(t, data)
	require.NotNil(t, data.Coordinate)
	assert.InDelta(t, -33.8688, data.Coordinate.Lat(), 1e-9)
	assert.InDelta(t, -151.2093, data.Coordinate.Lon(), 1e-9)
	assert.Empty(t, data.Name)
}

func TestLinkResolver_DecodesDiacritics(t *testing.T) {
	resolver := newTestResolver()

	data := resolver.Resolve(context.Background(), "https://www.google.com/maps/place/Gr%C4%83dina+Ver%C3%A2de/@44.43,26.10,17z")
	require.NotNil(t, data)
	assert.Equal(t, "Grădina Verâde", data.Name)
}

func TestLinkResolver_NameOnly(t *testing.T) {
	resolver := newTestResolver()

	data := resolver.Resolve(context.Background(), "https://www.google.com/maps/place/Control+Club")
	require.NotNil(t, data)
	assert.Equal(t, "Control Club", data.Name)
	assert.Nil(t, data.Coordinate)
	assert.Nil(t, data.Lat())
	assert.Nil(t, data.Lon())
}

func TestLinkResolver_NothingToParse(t *testing.T) {
	resolver := newTestResolver()

	assert.Nil(t, resolver.Resolve(context.Background(), "https://example.com/venues"))
	assert.Nil(t, resolver.Resolve(context.Background(), ""))
}

func TestLinkResolver_ExpandsShortLink(t *testing.T) {
	var target *httptest.Server
	target = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	shortServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL+"/maps/place/Club+Example/@44.4268,26.1025,17z", http.StatusFound)
	}))
	defer shortServer.Close()

	shortHost, err := url.Parse(shortServer.URL)
	require.NoError(t, err)

	resolver := newTestResolver(shortHost.Host)

	data := resolver.Resolve(context.Background(), shortServer.URL+"/abc123")
	require.NotNil(t, data)
	assert.Equal(t, "Club Example", data.Name)
	require.NotNil(t, data.Coordinate)
	assert.InDelta(t, 44.4268, data.Coordinate.Lat(), 1e-9)
}

func TestLinkResolver_ShortLinkFetchFailure(t *testing.T) {
	shortServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	shortHost, err := url.Parse(shortServer.URL)
	require.NoError(t, err)
	shortServer.Close()

	resolver := newTestResolver(shortHost.Host)

	// The short-link host is unreachable, so resolution yields nothing.
	assert.Nil(t, resolver.Resolve(context.Background(), shortServer.URL+"/abc123"))
}
