// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActivationPeriod is the default lifetime of a freshly provisioned profile.
// Once it elapses the profile is considered inactive until reactivated.
const ActivationPeriod = 3 * 365 * 24 * time.Hour

// Account is the core identity record. It carries only the credentials and
// the staff flag; everything presentation-related lives on the UserProfile.
type Account struct {
	ID           uint64       // Database identifier.
	Username     string       // Unique login name, matched case-sensitively.
	Email        string       // Unique contact email.
	PasswordHash string       // bcrypt hash of the password.
	IsStaff      bool         // Grants access to the admin import/export endpoints.
	Profile      *UserProfile // One-to-one profile, provisioned together with the account.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserProfile is the one-to-one extension of an Account holding the
// user-facing customization: nickname, avatar, favorite genres and mood.
type UserProfile struct {
	AccountID           uint64    // Foreign key to the owning Account.
	UUID                uuid.UUID // Public immutable identifier exposed to clients.
	Nickname            string
	Avatar              string // Object key in blob storage; empty when unset.
	FavoriteGenres      []Genre
	MoodForTonight      *Mood
	BirthDate           time.Time
	ActivationExpiresAt time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// AgeAt computes the profile owner's age in full years at the given date.
// The year difference is decremented when the birthday has not yet occurred.
func (p *UserProfile) AgeAt(now time.Time) int {
	years := now.Year() - p.BirthDate.Year()
	if now.Month() < p.BirthDate.Month() ||
		(now.Month() == p.BirthDate.Month() && now.Day() < p.BirthDate.Day()) {
		years--
	}

	return years
}

// ActiveAt reports whether the profile activation is still valid at the given
// time. Expiry is evaluated lazily on read; there is no background job.
func (p *UserProfile) ActiveAt(now time.Time) bool {
	return now.Before(p.ActivationExpiresAt)
}
