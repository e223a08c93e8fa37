package service

import (
	"context"

	"github.com/paulmach/orb"
)

// PlaceData is the best-effort result of parsing a map-service link.
// Fields that could not be recovered stay at their zero values; Coordinate is
// nil when the link carried no "@lat,lng" segment.
type PlaceData struct {
	Name       string
	Address    string // Never populated; address parsing is not implemented.
	City       string // Never populated; city parsing is not implemented.
	Coordinate *orb.Point
}

// Lat returns the latitude, or nil when no coordinate was parsed.
func (d *PlaceData) Lat() *float64 {
	if d.Coordinate == nil {
		return nil
	}
	lat := d.Coordinate.Lat()

	return &lat
}

// Lon returns the longitude, or nil when no coordinate was parsed.
func (d *PlaceData) Lon() *float64 {
	if d.Coordinate == nil {
		return nil
	}
	lon := d.Coordinate.Lon()

	return &lon
}

// PlaceLinkResolver extracts place data from a map-service URL,
// following short-link redirects first. Resolution is best-effort: any
// fetch or parse failure yields a nil result, never an error that would
// block the caller's primary write.
type PlaceLinkResolver interface {
	Resolve(ctx context.Context, link string) *PlaceData
}
