package models

import (
	"time"

	"gorm.io/datatypes"
)

// Known analytics event types
const (
	EventProductCreated       = "product_created"
	EventDescriptionGenerated = "description_generated"
)

// AnalyticsEvent is an append-only log entry. Rows are never updated or
// deleted once written.
type AnalyticsEvent struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        string         `json:"userId" gorm:"type:uuid;not null;index"`
	ProductID     *string        `json:"productId" gorm:"type:uuid"`
	DescriptionID *string        `json:"descriptionId" gorm:"type:uuid"`
	EventType     string         `json:"eventType" gorm:"not null"`
	EventData     datatypes.JSON `json:"eventData" gorm:"type:jsonb"`
	Timestamp     time.Time      `json:"timestamp" gorm:"autoCreateTime"`
}
