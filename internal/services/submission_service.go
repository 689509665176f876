package services

import (
	"errors"
	"strings"

	"printlist-backend/internal/database"
	"printlist-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrEmptySubmission    = errors.New("either a description or an STL URL is required")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrSubmissionNotOwned = errors.New("unauthorized to access this submission")
)

// CreateSubmission records a new listing request owned by userID.
// Status starts as pending; the generation workflow reports back
// through RecordSubmissionResult.
func CreateSubmission(userID, platformID uint, description, stlURL string) (*models.ProductSubmission, error) {
	description = strings.TrimSpace(description)
	stlURL = strings.TrimSpace(stlURL)
	if description == "" && stlURL == "" {
		return nil, ErrEmptySubmission
	}

	submission := &models.ProductSubmission{
		Description: description,
		STLURL:      stlURL,
		PlatformID:  platformID,
		Status:      models.SubmissionStatusPending,
		UserID:      userID,
	}

	if err := database.DB.Create(submission).Error; err != nil {
		return nil, err
	}
	return submission, nil
}

// ListSubmissionsByUser returns the user's own submissions newest-first.
func ListSubmissionsByUser(userID uint, page, limit int) ([]models.ProductSubmission, int64, error) {
	var submissions []models.ProductSubmission
	var total int64

	db := database.DB.Model(&models.ProductSubmission{}).Where("user_id = ?", userID)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&submissions).Error
	if err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}

// GetSubmission returns one submission. Non-admin callers only see
// their own rows.
func GetSubmission(id uint, requester models.User) (*models.ProductSubmission, error) {
	var submission models.ProductSubmission
	if err := database.DB.First(&submission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}

	if !requester.IsAdmin() && submission.UserID != requester.ID {
		return nil, ErrSubmissionNotOwned
	}

	return &submission, nil
}

// RecordSubmissionResult stores the workflow's output payload and the
// final status for a submission.
func RecordSubmissionResult(id uint, status models.SubmissionStatus, response datatypes.JSON) (*models.ProductSubmission, error) {
	var submission models.ProductSubmission
	if err := database.DB.First(&submission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, err
	}

	submission.Status = status
	submission.Response = response
	if err := database.DB.Save(&submission).Error; err != nil {
		return nil, err
	}

	return &submission, nil
}
