// Package store keeps a local record of completed work: quiz attempts
// and generated explanations are cached in a SQLite database so past
// sessions can be listed offline. Writes are best-effort: the backend
// remains the source of truth and a local failure never blocks the UI.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edugenie/edugenie/internal/quiz"
)

// QuizAttempt is one completed quiz, with the per-question detail
// serialized as JSON.
type QuizAttempt struct {
	ID             string `gorm:"primaryKey"`
	Topic          string `gorm:"index"`
	Level          string
	Score          int
	TotalQuestions int
	TimeSpent      int
	Detail         string // JSON-encoded []quiz.QuestionResult
	CreatedAt      time.Time
}

// Explanation is one generated topic explanation.
type Explanation struct {
	ID        string `gorm:"primaryKey"`
	Topic     string `gorm:"index"`
	Level     string
	Text      string
	CreatedAt time.Time
}

// Store wraps the local database.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite database at path and migrates the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&QuizAttempt{}, &Explanation{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. EDUGENIE_DB environment variable
// 2. $XDG_DATA_HOME/edugenie/edugenie.db
// 3. ~/.local/share/edugenie/edugenie.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("EDUGENIE_DB"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "edugenie", "edugenie.db"), nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

// SaveQuizAttempt records a completed quiz result.
func (s *Store) SaveQuizAttempt(result *quiz.Result) error {
	detail, err := json.Marshal(result.Questions)
	if err != nil {
		return fmt.Errorf("encode detail: %w", err)
	}
	attempt := QuizAttempt{
		ID:             uuid.New().String(),
		Topic:          result.Topic,
		Level:          result.Level,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		TimeSpent:      result.TimeSpent,
		Detail:         string(detail),
		CreatedAt:      time.Now(),
	}
	return s.db.Create(&attempt).Error
}

// SaveExplanation records a generated explanation.
func (s *Store) SaveExplanation(topic, level, text string) error {
	rec := Explanation{
		ID:        uuid.New().String(),
		Topic:     topic,
		Level:     level,
		Text:      text,
		CreatedAt: time.Now(),
	}
	return s.db.Create(&rec).Error
}

// RecentAttempts returns up to limit attempts, newest first.
func (s *Store) RecentAttempts(limit int) ([]QuizAttempt, error) {
	var attempts []QuizAttempt
	err := s.db.Order("created_at DESC").Limit(limit).Find(&attempts).Error
	return attempts, err
}

// AttemptDetail decodes the per-question detail of an attempt.
func (a *QuizAttempt) AttemptDetail() ([]quiz.QuestionResult, error) {
	var detail []quiz.QuestionResult
	if err := json.Unmarshal([]byte(a.Detail), &detail); err != nil {
		return nil, fmt.Errorf("decode detail: %w", err)
	}
	return detail, nil
}
