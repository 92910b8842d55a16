package user

import "time"

type User struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"not null;uniqueIndex" json:"email"`
	FullName       string    `json:"full_name,omitempty"`
	HashedPassword string    `json:"-"`
	GoogleSubject  string    `gorm:"index" json:"-"`
	AvatarURL      string    `json:"avatar_url,omitempty"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`
	IsAdmin        bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
