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

// HabitRepo handles CRUD for habits and their completion log.
type HabitRepo struct {
	db *gorm.DB
}

func NewHabitRepo(db *gorm.DB) *HabitRepo {
	return &HabitRepo{db: db}
}

// ListByUser returns every habit the user owns, newest first.
func (r *HabitRepo) ListByUser(ctx context.Context, userID string) ([]models.Habit, error) {
	var habits []models.Habit
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&habits).Error; err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

// ListCompletions returns the user's full completion log.
func (r *HabitRepo) ListCompletions(ctx context.Context, userID string) ([]models.HabitCompletion, error) {
	var completions []models.HabitCompletion
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&completions).Error; err != nil {
		return nil, fmt.Errorf("list habit completions: %w", err)
	}
	return completions, nil
}

// Insert creates a habit.
func (r *HabitRepo) Insert(ctx context.Context, h *models.Habit) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.StartDate.IsZero() {
		h.StartDate = models.DayOf(time.Now())
	}
	if err := r.db.WithContext(ctx).Create(h).Error; err != nil {
		return fmt.Errorf("create habit: %w", err)
	}
	return nil
}

// Check records a completion for (habit, day). Checking an already
// completed day is a no-op.
func (r *HabitRepo) Check(ctx context.Context, userID, habitID string, day time.Time) error {
	key := models.DayKey(day)
	var existing models.HabitCompletion
	err := r.db.WithContext(ctx).
		Where("habit_id = ? AND day = ?", habitID, key).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("find habit completion: %w", err)
	}

	completion := models.HabitCompletion{
		ID:      uuid.NewString(),
		UserID:  userID,
		HabitID: habitID,
		Day:     key,
	}
	if err := r.db.WithContext(ctx).Create(&completion).Error; err != nil {
		return fmt.Errorf("create habit completion: %w", err)
	}
	return nil
}

// Uncheck removes the completion for (habit, day), if any.
func (r *HabitRepo) Uncheck(ctx context.Context, habitID string, day time.Time) error {
	if err := r.db.WithContext(ctx).
		Where("habit_id = ? AND day = ?", habitID, models.DayKey(day)).
		Delete(&models.HabitCompletion{}).Error; err != nil {
		return fmt.Errorf("delete habit completion: %w", err)
	}
	return nil
}

// SetCompleted toggles the (habit, day) pair to the requested state. This
// is the remote call behind the habit checkbox.
func (r *HabitRepo) SetCompleted(ctx context.Context, userID, habitID string, day time.Time, completed bool) error {
	if completed {
		return r.Check(ctx, userID, habitID, day)
	}
	return r.Uncheck(ctx, habitID, day)
}

// Update saves an edited habit.
func (r *HabitRepo) Update(ctx context.Context, h *models.Habit) error {
	if err := r.db.WithContext(ctx).Save(h).Error; err != nil {
		return fmt.Errorf("update habit: %w", err)
	}
	return nil
}

// Delete removes a habit and its completion log.
func (r *HabitRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("habit_id = ?", id).
		Delete(&models.HabitCompletion{}).Error; err != nil {
		return fmt.Errorf("delete habit completions: %w", err)
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).
		Delete(&models.Habit{}).Error; err != nil {
		return fmt.Errorf("delete habit: %w", err)
	}
	return nil
}
