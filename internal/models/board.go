package models

import "time"

// BoardStatus is a kanban column id.
type BoardStatus string

const (
	StatusWillDo     BoardStatus = "will_do"
	StatusInProgress BoardStatus = "in_progress"
	StatusCompleted  BoardStatus = "completed"
)

// BoardColumns lists the columns in display order.
var BoardColumns = []BoardStatus{StatusWillDo, StatusInProgress, StatusCompleted}

// Label returns the column's display name.
func (s BoardStatus) Label() string {
	switch s {
	case StatusWillDo:
		return "Will do"
	case StatusInProgress:
		return "In progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Valid reports whether s is one of the three board columns.
func (s BoardStatus) Valid() bool {
	switch s {
	case StatusWillDo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Project groups kanban tasks.
type Project struct {
	ID        string `gorm:"primarykey"`
	UserID    string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name  string `gorm:"not null"`
	Color string `gorm:"default:#7C3AED"`
}

// BoardTask is a card on a project's kanban board. Status transitions are
// the only mutation driven by drag gestures.
type BoardTask struct {
	ID        string `gorm:"primarykey"`
	UserID    string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	ProjectID string      `gorm:"index;not null"`
	Title     string      `gorm:"not null"`
	Note      string
	Status    BoardStatus `gorm:"default:will_do"`
}
