package model

import (
	"time"
)

// PointColorModel mirrors the 'point_colors' table.
type PointColorModel struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);unique;not null"`
	Description string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (PointColorModel) TableName() string {
	return "point_colors"
}

// PinTypeModel mirrors the 'pin_types' table.
type PinTypeModel struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);unique;not null"`
	ColorID     uint64 `gorm:"not null"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Color *PointColorModel `gorm:"foreignKey:ColorID"`
}

// TableName explicitly sets the table name for GORM.
func (PinTypeModel) TableName() string {
	return "pin_types"
}

// GenreModel mirrors the 'genres' table.
type GenreModel struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (GenreModel) TableName() string {
	return "genres"
}

// EventTypeModel mirrors the 'event_types' table.
type EventTypeModel struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (EventTypeModel) TableName() string {
	return "event_types"
}

// PriceCategoryModel mirrors the 'price_categories' table.
type PriceCategoryModel struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (PriceCategoryModel) TableName() string {
	return "price_categories"
}

// MoodModel mirrors the 'moods' table.
type MoodModel struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (MoodModel) TableName() string {
	return "moods"
}

// ActivityModel mirrors the 'activities' table. Deleting a pin type cascades
// to its activities; deleting a genre, event type or price category nulls the
// reference instead.
type ActivityModel struct {
	ID              uint64  `gorm:"primaryKey;autoIncrement"`
	Name            string  `gorm:"type:varchar(255);not null;index"`
	Description     string  `gorm:"type:text"`
	PinTypeID       *uint64 `gorm:"index"`
	Website         string  `gorm:"type:varchar(255)"`
	Address         string  `gorm:"type:varchar(255)"`
	URLAddress      string  `gorm:"column:url_address;type:varchar(500)"`
	City            string  `gorm:"type:varchar(100);index"`
	Phone           string  `gorm:"type:varchar(50)"`
	Email           string  `gorm:"type:varchar(255)"`
	Image           string  `gorm:"type:varchar(255)"`
	Latitude        *float64
	Longitude       *float64
	GenreID         *uint64 `gorm:"index"`
	EventTypeID     *uint64 `gorm:"index"`
	PriceCategoryID *uint64
	Live            bool   `gorm:"not null;default:false"`
	BroadcastedLive string `gorm:"type:varchar(255)"`
	Event           string `gorm:"type:varchar(255)"`
	Mood            string `gorm:"type:varchar(100)"`
	Music           string `gorm:"type:varchar(255)"`
	IsActive        bool   `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	PinType       *PinTypeModel       `gorm:"foreignKey:PinTypeID;constraint:OnDelete:CASCADE"`
	Genre         *GenreModel         `gorm:"foreignKey:GenreID;constraint:OnDelete:SET NULL"`
	EventType     *EventTypeModel     `gorm:"foreignKey:EventTypeID;constraint:OnDelete:SET NULL"`
	PriceCategory *PriceCategoryModel `gorm:"foreignKey:PriceCategoryID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}
