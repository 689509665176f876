package submission

import (
	"printlist-backend/internal/models"

	"gorm.io/datatypes"
)

type CreateSubmissionRequest struct {
	Description string `json:"description"`
	STLURL      string `json:"stl_url"`
	PlatformID  uint   `json:"platform_id" binding:"required"`
}

type SubmissionListResponse struct {
	Submissions []models.ProductSubmission `json:"submissions"`
	Total       int64                      `json:"total"`
	Page        int                        `json:"page"`
	Limit       int                        `json:"limit"`
}

type RecordResultRequest struct {
	Status   models.SubmissionStatus `json:"status" binding:"required,oneof=processing completed failed"`
	Response datatypes.JSON          `json:"response" swaggertype:"object"`
}
