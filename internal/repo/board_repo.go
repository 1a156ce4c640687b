package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dayflow/internal/models"
)

// ProjectRepo handles CRUD for kanban projects.
type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// ListByUser returns the user's projects, oldest first so board order is
// stable.
func (r *ProjectRepo) ListByUser(ctx context.Context, userID string) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Insert creates a project.
func (r *ProjectRepo) Insert(ctx context.Context, p *models.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

// Delete removes a project and its cards.
func (r *ProjectRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("project_id = ?", id).
		Delete(&models.BoardTask{}).Error; err != nil {
		return fmt.Errorf("delete project tasks: %w", err)
	}
	if err := r.db.WithContext(ctx).Where("id = ?", id).
		Delete(&models.Project{}).Error; err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// BoardTaskRepo handles CRUD for kanban cards.
type BoardTaskRepo struct {
	db *gorm.DB
}

func NewBoardTaskRepo(db *gorm.DB) *BoardTaskRepo {
	return &BoardTaskRepo{db: db}
}

// ListByProject returns a project's cards, newest first.
func (r *BoardTaskRepo) ListByProject(ctx context.Context, projectID string) ([]models.BoardTask, error) {
	var tasks []models.BoardTask
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list board tasks: %w", err)
	}
	return tasks, nil
}

// Insert creates a card.
func (r *BoardTaskRepo) Insert(ctx context.Context, t *models.BoardTask) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = models.StatusWillDo
	}
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create board task: %w", err)
	}
	return nil
}

// SetStatus moves a card to another column. This is the remote call behind
// a drag-and-drop settle.
func (r *BoardTaskRepo) SetStatus(ctx context.Context, id string, status models.BoardStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid board status %q", status)
	}
	res := r.db.WithContext(ctx).Model(&models.BoardTask{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update board task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a card by id.
func (r *BoardTaskRepo) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).
		Delete(&models.BoardTask{}).Error; err != nil {
		return fmt.Errorf("delete board task: %w", err)
	}
	return nil
}
