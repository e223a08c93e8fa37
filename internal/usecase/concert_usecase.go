package usecase

import (
	"context"
	"time"
)

// CreateConcertInput carries the data of a new concert event.
type CreateConcertInput struct {
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Date      time.Time `json:"date"`
}

// ConcertView is the read projection of a concert event.
type ConcertView struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Date      time.Time `json:"date"`
}

// ConcertUsecase defines the concert event operations.
type ConcertUsecase interface {
	ListConcerts(ctx context.Context) ([]*ConcertView, error)
	CreateConcert(ctx context.Context, input *CreateConcertInput) (*ConcertView, error)
}
