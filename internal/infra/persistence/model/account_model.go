package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(150);unique;not null"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	IsStaff      bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Profile *UserProfileModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// UserProfileModel mirrors the 'user_profiles' table. Every account owns
// exactly one profile, created in the same transaction.
type UserProfileModel struct {
	AccountID           uint64    `gorm:"primaryKey"`
	UUID                uuid.UUID `gorm:"type:uuid;unique;not null"`
	Nickname            string    `gorm:"type:varchar(100);not null"`
	Avatar              string    `gorm:"type:varchar(255)"`
	MoodForTonightID    *uint64
	BirthDate           time.Time `gorm:"type:date;not null"`
	ActivationExpiresAt time.Time `gorm:"not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	MoodForTonight *MoodModel   `gorm:"foreignKey:MoodForTonightID;constraint:OnDelete:SET NULL"`
	FavoriteGenres []GenreModel `gorm:"many2many:user_profile_favorite_genres;joinForeignKey:UserProfileID;joinReferences:GenreID"`
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
