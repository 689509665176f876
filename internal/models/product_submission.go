package models

import (
	"time"

	"gorm.io/datatypes"
)

type SubmissionStatus string

const (
	SubmissionStatusPending    SubmissionStatus = "pending"
	SubmissionStatusProcessing SubmissionStatus = "processing"
	SubmissionStatusCompleted  SubmissionStatus = "completed"
	SubmissionStatusFailed     SubmissionStatus = "failed"
)

// ProductSubmission is a user-authored listing request: a free-form
// description and/or an uploaded STL URL targeting one marketplace
// platform. The generation workflow writes its output back into
// Response.
type ProductSubmission struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Description string           `json:"description"`
	STLURL      string           `gorm:"column:stl_url" json:"stl_url"`
	PlatformID  uint             `gorm:"index;not null" json:"platform_id"`
	Status      SubmissionStatus `gorm:"index;not null;default:'pending'" json:"status"`
	UserID      uint             `gorm:"index;not null" json:"user_id"`
	Response    datatypes.JSON   `gorm:"type:jsonb" json:"response" swaggertype:"object"`
}

func (ProductSubmission) TableName() string {
	return "product_submissions"
}
