// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account with its
// profile. ProfilePicture carries an uploaded image; ProfilePictureURL is the
// alternative remote source. At most one of the two is honored, upload first.
type RegisterInput struct {
	Username          string   `json:"username" form:"username"`
	Email             string   `json:"email" form:"email"`
	Password          string   `json:"password" form:"password"`
	Nickname          string   `json:"nickname" form:"nickname"`
	BirthDate         string   `json:"birth_date" form:"birth_date"` // "2006-01-02"
	MoodForTonight    *uint64  `json:"mood_for_tonight" form:"mood_for_tonight"`
	FavoriteGenres    []uint64 `json:"favorite_genres" form:"favorite_genres"`
	ProfilePictureURL string   `json:"profile_picture_url" form:"profile_picture_url"`

	// Set by the delivery layer from a multipart upload; never bound from
	// the body.
	ProfilePicture            []byte `json:"-" form:"-"`
	ProfilePictureContentType string `json:"-" form:"-"`
}

// LoginInput defines the data required to log in. Identifier matches the
// username first and falls back to the email.
type LoginInput struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// RefreshTokenInput carries the refresh token presented for renewal.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutInput carries the refresh token of the session being closed.
type LogoutInput struct {
	RefreshToken string `json:"refresh_token"`
}

// --- Output DTOs ---

// AccountView is the read-only projection of the caller's own account.
type AccountView struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CategoryView is the id+name projection shared by all reference tables.
type CategoryView struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ProfileView is the read-only projection of the caller's own profile.
// AvatarURL falls back to the configured default placeholder when unset.
type ProfileView struct {
	UUID           string         `json:"uuid"`
	Nickname       string         `json:"nickname"`
	AvatarURL      string         `json:"profile_picture_url"`
	FavoriteGenres []CategoryView `json:"favorite_genres"`
	MoodForTonight *CategoryView  `json:"mood_for_tonight"`
	BirthDate      string         `json:"birth_date"`
	IsActive       bool           `json:"is_active"`
}

// RegisterOutput returns the created account and profile summaries together
// with the session tokens issued on successful registration.
type RegisterOutput struct {
	Account      *AccountView `json:"account"`
	Profile      *ProfileView `json:"profile"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	Account      *AccountView `json:"account"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

// RefreshTokenOutput returns the renewed access token.
type RefreshTokenOutput struct {
	AccessToken string `json:"access_token"`
}

// AuthUsecase defines the interface for registration and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error

	// UsernameAvailable and EmailAvailable back the pre-registration
	// availability checks. Matching is case-sensitive and exact.
	UsernameAvailable(ctx context.Context, username string) (bool, error)
	EmailAvailable(ctx context.Context, email string) (bool, error)
}
