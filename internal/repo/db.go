package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dayflow/internal/models"
)

// NewDB opens the SQLite store at path and runs migrations.
func NewDB(path string) (*gorm.DB, error) {
	if err := ensureDir(path); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Priority{},
		&models.Task{},
		&models.Note{},
		&models.Reminder{},
		&models.Habit{},
		&models.HabitCompletion{},
		&models.Project{},
		&models.BoardTask{},
	); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}

func ensureDir(path string) error {
	if strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		return nil
	}
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// Store bundles one repository per collection over a shared connection.
type Store struct {
	DB *gorm.DB

	Sessions   *SessionRepo
	Priorities *PriorityRepo
	Tasks      *TaskRepo
	Notes      *NoteRepo
	Reminders  *ReminderRepo
	Habits     *HabitRepo
	Projects   *ProjectRepo
	BoardTasks *BoardTaskRepo
}

// Open opens the store at path and wires all repositories.
func Open(path string) (*Store, error) {
	db, err := NewDB(path)
	if err != nil {
		return nil, err
	}
	return &Store{
		DB:         db,
		Sessions:   NewSessionRepo(db),
		Priorities: NewPriorityRepo(db),
		Tasks:      NewTaskRepo(db),
		Notes:      NewNoteRepo(db),
		Reminders:  NewReminderRepo(db),
		Habits:     NewHabitRepo(db),
		Projects:   NewProjectRepo(db),
		BoardTasks: NewBoardTaskRepo(db),
	}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
