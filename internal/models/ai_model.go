package models

import "time"

type AIModelStatus string

const (
	AIModelStatusOpen   AIModelStatus = "open"
	AIModelStatusClosed AIModelStatus = "closed"
	AIModelStatusDraft  AIModelStatus = "draft"
)

// AIModel identifies a downstream generation backend a prompt version
// is configured to run against.
type AIModel struct {
	ID          uint          `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Name        string        `gorm:"index;not null" json:"name"`
	Description string        `json:"description"`
	Status      AIModelStatus `gorm:"index;not null;default:'draft'" json:"status"`
}
