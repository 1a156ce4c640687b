package models

import "time"

// Category buckets a reminder for list views.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryToday     Category = "today"
	CategoryScheduled Category = "scheduled"
	CategoryCompleted Category = "completed"
)

// Reminder is a dated (or undated) one-off item with a completion flag.
type Reminder struct {
	ID        string `gorm:"primarykey"`
	UserID    string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title       string `gorm:"not null"`
	DueDate     *time.Time
	IsCompleted bool `gorm:"default:false"`
	// Category is a cache of Classify evaluated at write time. Read paths
	// that need correctness as of "now" must call Classify again rather
	// than trust this column.
	Category Category `gorm:"default:all"`
	ListID   *string
	Color    string `gorm:"default:#7C3AED"`
}

// Classify derives the reminder's bucket from its due date and completion
// flag as of now. Completion wins over any due date, including a nil one.
func (r Reminder) Classify(now time.Time) Category {
	switch {
	case r.IsCompleted:
		return CategoryCompleted
	case r.DueDate == nil:
		return CategoryAll
	case SameDay(*r.DueDate, now):
		return CategoryToday
	default:
		// Any other dated reminder, past or future, lives in the
		// scheduled bucket until completed.
		return CategoryScheduled
	}
}
