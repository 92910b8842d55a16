package demo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	progressKeyPrefix = "demo:progress:"
	progressTTL       = 24 * time.Hour

	statusInProgress = "in-progress"
	statusCompleted  = "completed"
)

// Progress is one demo run's state. Runs are keyed by the fixed demo
// interview ID and expire a day after the last write.
type Progress struct {
	CurrentQuestion    int     `json:"current_question"`
	QuestionsCompleted []int   `json:"questions_completed"`
	Status             string  `json:"status"`
	StartedAt          string  `json:"started_at"`
	CompletedAt        *string `json:"completed_at"`
}

// Completed reports whether the question is already in the completed list.
func (p *Progress) Completed(n int) bool {
	for _, q := range p.QuestionsCompleted {
		if q == n {
			return true
		}
	}
	return false
}

type ProgressStore struct {
	redis *redis.Client
	now   func() time.Time
}

func NewProgressStore(redisClient *redis.Client) *ProgressStore {
	return &ProgressStore{
		redis: redisClient,
		now:   time.Now,
	}
}

func (s *ProgressStore) fresh() Progress {
	return Progress{
		CurrentQuestion:    1,
		QuestionsCompleted: []int{},
		Status:             statusInProgress,
		StartedAt:          s.now().UTC().Format(time.RFC3339),
	}
}

// Get returns the stored progress for a demo interview. An absent key reads
// as a fresh run starting now.
func (s *ProgressStore) Get(ctx context.Context, interviewID string) (Progress, error) {
	data, err := s.redis.Get(ctx, progressKeyPrefix+interviewID).Bytes()
	if err == redis.Nil {
		return s.fresh(), nil
	}
	if err != nil {
		return Progress{}, err
	}

	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return Progress{}, err
	}
	if p.QuestionsCompleted == nil {
		p.QuestionsCompleted = []int{}
	}
	return p, nil
}

// Save writes the progress back with the expiry refreshed.
func (s *ProgressStore) Save(ctx context.Context, interviewID string, p Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, progressKeyPrefix+interviewID, data, progressTTL).Err()
}

// Reset deletes the stored progress so the next read starts a fresh run.
func (s *ProgressStore) Reset(ctx context.Context, interviewID string) error {
	return s.redis.Del(ctx, progressKeyPrefix+interviewID).Err()
}
