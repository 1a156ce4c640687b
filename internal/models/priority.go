package models

import "time"

// MaxPrioritiesPerDay caps how many priorities a user may plan for one day.
// Enforced at the creation path, not by the store.
const MaxPrioritiesPerDay = 3

// Priority is one of the (at most three) headline items planned for a day.
type Priority struct {
	ID        string `gorm:"primarykey"`
	UserID    string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title     string    `gorm:"not null"`
	Date      time.Time `gorm:"index"` // calendar day, midnight
	StartTime *time.Time
	EndTime   *time.Time
	Note      string
	IsDone    bool   `gorm:"default:false"`
	Color     string `gorm:"default:#7C3AED"`
}
