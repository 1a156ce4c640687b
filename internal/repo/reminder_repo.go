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

// ReminderRepo handles CRUD for reminders.
type ReminderRepo struct {
	db *gorm.DB
}

func NewReminderRepo(db *gorm.DB) *ReminderRepo {
	return &ReminderRepo{db: db}
}

// ListDueBetween returns the user's reminders with a due date inside
// [start, end], newest first.
func (r *ReminderRepo) ListDueBetween(ctx context.Context, userID string, start, end time.Time) ([]models.Reminder, error) {
	var reminders []models.Reminder
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND due_date >= ? AND due_date <= ?", userID, start, end).
		Order("created_at DESC").
		Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

// ListByUser returns every reminder the user owns, newest first.
func (r *ReminderRepo) ListByUser(ctx context.Context, userID string) ([]models.Reminder, error) {
	var reminders []models.Reminder
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

// Insert creates a reminder, stamping the cached category from its due
// date and completion flag as of now.
func (r *ReminderRepo) Insert(ctx context.Context, rem *models.Reminder) error {
	if rem.ID == "" {
		rem.ID = uuid.NewString()
	}
	rem.Category = rem.Classify(time.Now())
	if err := r.db.WithContext(ctx).Create(rem).Error; err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}
	return nil
}

// SetCompleted flips the completion flag by id and refreshes the cached
// category.
func (r *ReminderRepo) SetCompleted(ctx context.Context, id string, completed bool) error {
	var rem models.Reminder
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("find reminder: %w", err)
	}
	rem.IsCompleted = completed
	rem.Category = rem.Classify(time.Now())
	if err := r.db.WithContext(ctx).Save(&rem).Error; err != nil {
		return fmt.Errorf("update reminder: %w", err)
	}
	return nil
}

// Update saves an edited reminder and refreshes the cached category.
func (r *ReminderRepo) Update(ctx context.Context, rem *models.Reminder) error {
	rem.Category = rem.Classify(time.Now())
	if err := r.db.WithContext(ctx).Save(rem).Error; err != nil {
		return fmt.Errorf("update reminder: %w", err)
	}
	return nil
}

// Delete removes a reminder by id.
func (r *ReminderRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).
		Delete(&models.Reminder{}).Error; err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}
