package models

import "time"

// WebhookEvent records every checkout notification we accept, keyed by the
// provider's event id so a replayed notification never grants credits twice.
type WebhookEvent struct {
	ID              uint   `gorm:"primaryKey"`
	Provider        string `gorm:"uniqueIndex:idx_provider_event;not null"` // e.g., "paddle"
	ProviderEventID string `gorm:"uniqueIndex:idx_provider_event;not null"`
	EventType       string `gorm:"index"`
	PayloadJSON     string `gorm:"type:text"`
	ProcessedAt     *time.Time
	CreatedAt       time.Time
}
