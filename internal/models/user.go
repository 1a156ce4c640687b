package models

import "time"

// User owns every other entity. There is no shared ownership; habit
// completions are owned transitively through their habit.
type User struct {
	ID        string `gorm:"primarykey"`
	CreatedAt time.Time

	Name string `gorm:"uniqueIndex;not null"`
}

// Session is the single local login row. Its presence decides what
// CurrentUser returns.
type Session struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	UserID string `gorm:"not null"`
}
