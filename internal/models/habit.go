package models

import "time"

// Frequency is a habit's recurrence rule.
type Frequency string

const (
	FrequencyDaily      Frequency = "daily"
	FrequencyThreeTimes Frequency = "three_times" // fixed Mon/Wed/Fri
	FrequencyCustom     Frequency = "custom"      // weekdays in CustomDays
)

// Habit is a recurring practice. Its schedule is immutable once created
// except via explicit edit.
type Habit struct {
	ID        string `gorm:"primarykey"`
	UserID    string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title     string    `gorm:"not null"`
	Frequency Frequency `gorm:"default:daily"`
	// CustomDays holds time.Weekday indices (0 = Sunday) and is only
	// consulted when Frequency is custom.
	CustomDays      []int `gorm:"serializer:json"`
	DurationMinutes int
	DurationMonths  int
	StartDate       time.Time
	Color           string `gorm:"default:#7C3AED"`
}

// HabitCompletion records that a habit was completed on one calendar day.
// Existence of the row is the done-state; there is no flag to flip.
type HabitCompletion struct {
	ID        string `gorm:"primarykey"`
	UserID    string `gorm:"index;not null"`
	CreatedAt time.Time

	HabitID string `gorm:"index;not null"`
	Day     string `gorm:"index;not null"` // DayLayout key
}
