package user

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
	return s.db.AutoMigrate(&User{})
}

func (s *Store) Create(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = shared.NewID("user_")
	}
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *Store) GetByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	return &u, err
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shared.ErrNotFound
	}
	return &u, err
}

func (s *Store) Update(ctx context.Context, u *User) error {
	return s.db.WithContext(ctx).Save(u).Error
}

// FindOrCreateGoogle resolves a Google identity to a local account. An
// existing account with the same email gets the Google subject linked so the
// user keeps one row regardless of how they first signed up.
func (s *Store) FindOrCreateGoogle(ctx context.Context, sub, email, name, avatar string) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).Where("google_subject = ?", sub).First(&u).Error
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err == nil {
		u.GoogleSubject = sub
		if u.AvatarURL == "" {
			u.AvatarURL = avatar
		}
		if err := s.db.WithContext(ctx).Save(&u).Error; err != nil {
			return nil, err
		}
		return &u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	u = User{
		ID:            shared.NewID("user_"),
		Email:         email,
		FullName:      name,
		GoogleSubject: sub,
		AvatarURL:     avatar,
		IsActive:      true,
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	result := s.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Update("is_admin", isAdmin)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
