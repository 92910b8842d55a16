package subscription

import "time"

const (
	StatusActive    = "active"
	StatusTrial     = "trial"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
	StatusPastDue   = "past_due"
	StatusPending   = "pending"
)

type Subscription struct {
	ID                   string     `gorm:"primaryKey" json:"id"`
	UserID               string     `gorm:"not null;index" json:"user_id"`
	Plan                 string     `gorm:"not null" json:"plan"`
	Status               string     `gorm:"not null" json:"status"`
	StripeCustomerID     string     `gorm:"index" json:"stripe_customer_id,omitempty"`
	StripeSubscriptionID string     `gorm:"index" json:"stripe_subscription_id,omitempty"`
	StartDate            *time.Time `json:"start_date,omitempty"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// Usable reports whether this row grants access at the given instant.
func (s *Subscription) Usable(now time.Time) bool {
	if s.Status != StatusActive && s.Status != StatusTrial {
		return false
	}
	if s.EndDate != nil && !s.EndDate.After(now) {
		return false
	}
	return true
}
