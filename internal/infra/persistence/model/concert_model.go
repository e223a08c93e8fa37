package model

import "time"

// ConcertEventModel mirrors the 'concert_events' table.
type ConcertEventModel struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	Date      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConcertEventModel) TableName() string {
	return "concert_events"
}
