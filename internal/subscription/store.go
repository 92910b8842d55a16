package subscription

import (
	"context"
	"errors"
	"time"

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
	return s.db.AutoMigrate(&Subscription{})
}

func (s *Store) Create(ctx context.Context, sub *Subscription) error {
	if sub.ID == "" {
		sub.ID = shared.NewID("sub_")
	}
	return s.db.WithContext(ctx).Create(sub).Error
}

// GetByUserID returns the user's subscription row. Each user holds at most
// one; the newest wins if legacy data carries more.
func (s *Store) GetByUserID(ctx context.Context, userID string) (*Subscription, error) {
	var sub Subscription
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	return &sub, err
}

func (s *Store) GetByStripeSubscriptionID(ctx context.Context, stripeID string) (*Subscription, error) {
	var sub Subscription
	err := s.db.WithContext(ctx).Where("stripe_subscription_id = ?", stripeID).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	return &sub, err
}

func (s *Store) ListByUserID(ctx context.Context, userID string, skip, limit int) ([]Subscription, error) {
	if limit <= 0 {
		limit = 100
	}
	var subs []Subscription
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&subs).Error
	return subs, err
}

func (s *Store) Update(ctx context.Context, sub *Subscription) error {
	return s.db.WithContext(ctx).Save(sub).Error
}

// HasUsable reports whether the user currently holds an access-granting
// subscription.
func (s *Store) HasUsable(ctx context.Context, userID string, now time.Time) (bool, error) {
	var subs []Subscription
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, []string{StatusActive, StatusTrial}).
		Find(&subs).Error
	if err != nil {
		return false, err
	}
	for i := range subs {
		if subs[i].Usable(now) {
			return true, nil
		}
	}
	return false, nil
}
