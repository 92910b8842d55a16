package interview

import (
	"context"
	"errors"

	"github.com/caseprepared/backend/internal/shared"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Interview{})
}

func (s *Store) Create(ctx context.Context, iv *Interview) error {
	if iv.ID == "" {
		iv.ID = shared.NewID("int_")
	}
	if iv.ProgressData == nil {
		iv.ProgressData = DefaultProgress()
	}
	return s.db.WithContext(ctx).Create(iv).Error
}

func (s *Store) GetByID(ctx context.Context, id string) (*Interview, error) {
	var iv Interview
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&iv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	return &iv, err
}

// ListByUserID pages through a user's interviews, newest first. An empty
// status matches everything.
func (s *Store) ListByUserID(ctx context.Context, userID, status string, skip, limit int) ([]Interview, int64, error) {
	if limit <= 0 {
		limit = 100
	}
	q := s.db.WithContext(ctx).Model(&Interview{}).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var interviews []Interview
	err := q.Order("created_at DESC").Offset(skip).Limit(limit).Find(&interviews).Error
	return interviews, total, err
}

func (s *Store) Update(ctx context.Context, iv *Interview) error {
	return s.db.WithContext(ctx).Save(iv).Error
}
