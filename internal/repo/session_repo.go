package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dayflow/internal/models"
)

// ErrNotLoggedIn is returned when no local session exists. Mutations treat
// it as fatal to the operation.
var ErrNotLoggedIn = errors.New("not logged in")

// SessionRepo manages the local user table and the single session row.
type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// CurrentUser returns the id of the logged-in user, or ErrNotLoggedIn.
func (r *SessionRepo) CurrentUser(ctx context.Context) (string, error) {
	var session models.Session
	if err := r.db.WithContext(ctx).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotLoggedIn
		}
		return "", fmt.Errorf("load session: %w", err)
	}
	return session.UserID, nil
}

// Login finds or creates the named user and makes them the session owner.
func (r *SessionRepo) Login(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{ID: uuid.NewString(), Name: name}
		if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Session{}).Error; err != nil {
		return nil, fmt.Errorf("clear session: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(&models.Session{UserID: user.ID}).Error; err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &user, nil
}

// Logout removes the session row.
func (r *SessionRepo) Logout(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
