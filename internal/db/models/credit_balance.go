package models

import "time"

// CreditBalance is the single source of truth for a user's download credits.
// One row per account, created lazily by the first top-up. RemainingCredits
// never goes negative: every mutation is a single clamped SQL statement.
type CreditBalance struct {
	UserID           string `gorm:"primaryKey;column:user_id"`
	RemainingCredits int    `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
