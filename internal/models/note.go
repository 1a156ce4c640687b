package models

import "time"

// Note is a free-form note, optionally pinned to a day. Notes have no
// done-state.
type Note struct {
	ID        string `gorm:"primarykey"`
	UserID    string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title       string `gorm:"not null"`
	Description string
	Date        *time.Time `gorm:"index"`
	ImageURL    string
	Color       string `gorm:"default:#7C3AED"`
}
