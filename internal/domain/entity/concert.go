package entity

import "time"

// ConcertEvent is a standalone calendar entry tracked by name, location and
// date. It has no relations to the activity catalog.
type ConcertEvent struct {
	ID        uint64
	Name      string
	Latitude  float64
	Longitude float64
	Date      time.Time
}
