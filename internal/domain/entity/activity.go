package entity

import "time"

// PointColor is the color palette entry pin types reference.
type PointColor struct {
	ID          uint64
	Name        string
	Description string
}

// PinType is the map icon classification of an activity. Deleting a pin type
// cascades to its activities.
type PinType struct {
	ID          uint64
	Name        string
	ColorID     uint64
	Color       *PointColor
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Activity is a cataloged venue or event shown as a pin on the map.
// Category references are optional; genre, event type and price category are
// nulled when the referenced row is deleted, while the pin type cascades.
type Activity struct {
	ID              uint64
	Name            string
	Description     string
	PinTypeID       *uint64
	PinType         *PinType
	Website         string
	Address         string
	URLAddress      string // Map-service link used for enrichment.
	City            string
	Phone           string
	Email           string
	Image           string // Object key in blob storage; empty when unset.
	Latitude        *float64
	Longitude       *float64
	GenreID         *uint64
	Genre           *Genre
	EventTypeID     *uint64
	EventType       *EventType
	PriceCategoryID *uint64
	PriceCategory   *PriceCategory
	Live            bool
	BroadcastedLive string
	Event           string
	Mood            string
	Music           string // Streaming/music URL.
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
