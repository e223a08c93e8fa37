package usecase

import (
	"context"
	"io"
)

// SaveActivityInput carries the full editable field set of a venue. A zero ID
// creates a new record; a non-zero ID updates the existing one. When
// URLAddress is set, location fields left blank are filled from the resolved
// map link; fields already holding a value are never overwritten.
type SaveActivityInput struct {
	ID              uint64   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	PinTypeID       *uint64  `json:"pin_type_id"`
	Website         string   `json:"website"`
	Address         string   `json:"address"`
	URLAddress      string   `json:"url_address"`
	City            string   `json:"city"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	GenreID         *uint64  `json:"genre_id"`
	EventTypeID     *uint64  `json:"event_type_id"`
	PriceCategoryID *uint64  `json:"price_category_id"`
	Live            bool     `json:"live"`
	BroadcastedLive string   `json:"broadcasted_live"`
	Event           string   `json:"event"`
	Mood            string   `json:"mood"`
	Music           string   `json:"music"`
	IsActive        bool     `json:"is_active"`
}

// ImportSummary reports the outcome of a CSV import. Row numbers in Errors
// are 1-based and count data rows, excluding the header.
type ImportSummary struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// AdminUsecase defines the staff-only catalog management operations.
type AdminUsecase interface {
	// SaveActivity creates or updates a venue, enriching blank location
	// fields from the map link when one is provided.
	SaveActivity(ctx context.Context, input *SaveActivityInput) (*ActivityView, error)

	// ImportActivities reads a CSV stream and upserts venues by name.
	// Category columns hold display names resolved against the reference
	// tables. Rows that fail validation are reported and skipped; the rest
	// are still applied.
	ImportActivities(ctx context.Context, r io.Reader) (*ImportSummary, error)

	// ExportActivities writes the full catalog as CSV, one venue per row,
	// using the same column layout the importer accepts.
	ExportActivities(ctx context.Context, w io.Writer) error
}
