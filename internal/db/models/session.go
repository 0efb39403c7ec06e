package models

import "time"

// Session is a server-side login session, keyed by the random cookie token.
type Session struct {
	Token     string `gorm:"primaryKey"` // random hex, set in the cookie
	UserID    string `gorm:"index"`
	Email     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
