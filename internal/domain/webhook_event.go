package domain

import "time"

// WebhookEvent records a processed payment-provider event so redelivered
// webhooks are acknowledged without re-running fulfillment.
type WebhookEvent struct {
	ID             int64     `gorm:"primaryKey" json:"id"`
	EventID        string    `gorm:"uniqueIndex;type:varchar(191);not null" json:"event_id"`
	EventType      string    `gorm:"type:varchar(100);not null;index" json:"event_type"`
	Payload        string    `gorm:"type:text" json:"payload"`
	SignatureValid bool      `json:"signature_valid"`
	ProcessedAt    time.Time `json:"processed_at"`
	CreatedAt      time.Time `json:"created_at"`
}

func (WebhookEvent) TableName() string { return "webhook_events" }
