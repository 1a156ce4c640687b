package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dayflow/internal/models"
)

// NoteRepo handles CRUD for notes.
type NoteRepo struct {
	db *gorm.DB
}

func NewNoteRepo(db *gorm.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

// ListByDay returns the user's notes dated on one calendar day, newest first.
func (r *NoteRepo) ListByDay(ctx context.Context, userID string, day time.Time) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, models.DayOf(day)).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// ListByUser returns every note the user owns, newest first.
func (r *NoteRepo) ListByUser(ctx context.Context, userID string) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Insert creates a note.
func (r *NoteRepo) Insert(ctx context.Context, n *models.Note) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Date != nil {
		day := models.DayOf(*n.Date)
		n.Date = &day
	}
	if err := r.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// Update saves an edited note.
func (r *NoteRepo) Update(ctx context.Context, n *models.Note) error {
	if err := r.db.WithContext(ctx).Save(n).Error; err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

// Delete removes a note by id.
func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).
		Delete(&models.Note{}).Error; err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
