package usecase

import (
	"context"
)

// ListActivitiesInput carries the filters and pagination parameters of a
// catalog listing. Page is 1-based; zero values fall back to configured
// defaults. Filters combine with logical AND.
type ListActivitiesInput struct {
	City        string
	GenreID     *uint64
	EventTypeID *uint64
	LiveOnly    bool
	Page        int
	PageSize    int
}

// PinTypeView is the projection of a map pin type with its resolved color.
type PinTypeView struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
}

// ActivityView is the denormalized projection of a cataloged venue. Category
// references are flattened to their display names; unset ones render empty.
type ActivityView struct {
	ID              uint64   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	PinType         string   `json:"pin_type"`
	Website         string   `json:"website"`
	Address         string   `json:"address"`
	URLAddress      string   `json:"url_address"`
	City            string   `json:"city"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	ImageURL        string   `json:"image_url"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Genre           string   `json:"genre"`
	EventType       string   `json:"event_type"`
	PriceCategory   string   `json:"price_category"`
	Live            bool     `json:"live"`
	BroadcastedLive string   `json:"broadcasted_live"`
	Event           string   `json:"event"`
	Mood            string   `json:"mood"`
	Music           string   `json:"music"`
	IsActive        bool     `json:"is_active"`
}

// ActivityPage is one page of activity results together with paging metadata.
type ActivityPage struct {
	Items      []*ActivityView `json:"items"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// ToggleOutput reports the new value of a flipped activity flag.
type ToggleOutput struct {
	ID    uint64 `json:"id"`
	Field string `json:"field"`
	Value bool   `json:"value"`
}

// CatalogUsecase defines the read and toggle operations over the venue
// catalog and its reference tables.
type CatalogUsecase interface {
	// ListActivities returns active venues matching the filter. LiveOnly
	// additionally restricts to the curated live feed.
	ListActivities(ctx context.Context, input *ListActivitiesInput) (*ActivityPage, error)
	GetActivity(ctx context.Context, id uint64) (*ActivityView, error)

	// ToggleActive and ToggleLive flip the respective flag and return its
	// new value. Unknown ids report not found.
	ToggleActive(ctx context.Context, id uint64) (*ToggleOutput, error)
	ToggleLive(ctx context.Context, id uint64) (*ToggleOutput, error)

	ListGenres(ctx context.Context) ([]CategoryView, error)
	ListEventTypes(ctx context.Context) ([]CategoryView, error)
	ListPriceCategories(ctx context.Context) ([]CategoryView, error)
	ListMoods(ctx context.Context) ([]CategoryView, error)
	ListPinTypes(ctx context.Context) ([]PinTypeView, error)
}
