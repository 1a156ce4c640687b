package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dayflow/internal/models"
)

// ErrDayFull is returned when a day already holds the maximum number of
// priorities.
var ErrDayFull = errors.New("priority limit reached for this day")

// ErrNotFound is returned when a write targets an id that does not exist.
var ErrNotFound = errors.New("item not found")

// PriorityRepo handles CRUD for daily priorities.
type PriorityRepo struct {
	db *gorm.DB
}

func NewPriorityRepo(db *gorm.DB) *PriorityRepo {
	return &PriorityRepo{db: db}
}

// ListByDay returns the user's priorities for one calendar day, newest first.
func (r *PriorityRepo) ListByDay(ctx context.Context, userID string, day time.Time) ([]models.Priority, error) {
	var priorities []models.Priority
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, models.DayOf(day)).
		Order("created_at DESC").
		Find(&priorities).Error; err != nil {
		return nil, fmt.Errorf("list priorities: %w", err)
	}
	return priorities, nil
}

// Insert creates a priority, enforcing the per-day cap.
func (r *PriorityRepo) Insert(ctx context.Context, p *models.Priority) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Priority{}).
		Where("user_id = ? AND date = ?", p.UserID, models.DayOf(p.Date)).
		Count(&count).Error; err != nil {
		return fmt.Errorf("count priorities: %w", err)
	}
	if count >= models.MaxPrioritiesPerDay {
		return ErrDayFull
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Date = models.DayOf(p.Date)
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create priority: %w", err)
	}
	return nil
}

// SetDone flips the done flag by id.
func (r *PriorityRepo) SetDone(ctx context.Context, id string, done bool) error {
	res := r.db.WithContext(ctx).Model(&models.Priority{}).
		Where("id = ?", id).
		Update("is_done", done)
	if res.Error != nil {
		return fmt.Errorf("update priority: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Update saves an edited priority.
func (r *PriorityRepo) Update(ctx context.Context, p *models.Priority) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("update priority: %w", err)
	}
	return nil
}

// Delete removes a priority by id.
func (r *PriorityRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).
		Delete(&models.Priority{}).Error; err != nil {
		return fmt.Errorf("delete priority: %w", err)
	}
	return nil
}
