package interview

import (
	"time"

	"github.com/caseprepared/backend/internal/shared"
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Interview is one user's run through a case template.
type Interview struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	UserID       string         `gorm:"not null;index" json:"user_id"`
	TemplateID   string         `gorm:"not null;index" json:"template_id"`
	Status       string         `gorm:"not null;index" json:"status"`
	ProgressData shared.JSONMap `gorm:"type:jsonb" json:"progress_data"`
	StartedAt    *time.Time     `json:"started_at,omitempty"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (Interview) TableName() string {
	return "interviews"
}

// DefaultProgress is the progress document every fresh interview starts
// with: question one up next, nothing completed.
func DefaultProgress() shared.JSONMap {
	return shared.JSONMap{
		"current_question":    1,
		"questions_completed": []any{},
	}
}

func validStatus(status string) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
