package models

import "time"

// Task is a day-scoped to-do item on the planner. It is independent of the
// kanban BoardTask despite the similar name.
type Task struct {
	ID        string `gorm:"primarykey"`
	UserID    string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title       string `gorm:"not null"`
	Description string
	Date        *time.Time `gorm:"index"` // calendar day, midnight; nil = undated
	LabelID     *string
	IsDone      bool   `gorm:"default:false"`
	Color       string `gorm:"default:#7C3AED"`
}
