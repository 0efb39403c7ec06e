package models

import "time"

// Account mirrors the identity issued by the external OAuth provider.
// The ledger never trusts caller-supplied ids; it only ever sees Account.ID
// taken from a verified session.
type Account struct {
	ID        string `gorm:"primaryKey"` // UUID
	Email     string `gorm:"uniqueIndex:idx_email_provider"`
	Provider  string `gorm:"uniqueIndex:idx_email_provider"` // e.g., "google"
	Name      string
	LastLogin time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
