package services

import (
	"errors"

	"printlist-backend/internal/database"
	"printlist-backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrPlatformExists   = errors.New("platform with this name already exists")
	ErrPlatformNotFound = errors.New("platform not found")
)

// ListPlatforms returns all platforms ordered by id, matching the
// stable ordering the management UI expects.
func ListPlatforms() ([]models.Platform, error) {
	var platforms []models.Platform
	if err := database.DB.Order("id").Find(&platforms).Error; err != nil {
		return nil, err
	}
	return platforms, nil
}

func CreatePlatform(name string) (*models.Platform, error) {
	var existing models.Platform
	if err := database.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		return nil, ErrPlatformExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	platform := &models.Platform{Name: name}
	if err := database.DB.Create(platform).Error; err != nil {
		return nil, err
	}
	return platform, nil
}

func RenamePlatform(id uint, name string) (*models.Platform, error) {
	var platform models.Platform
	if err := database.DB.First(&platform, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlatformNotFound
		}
		return nil, err
	}

	platform.Name = name
	if err := database.DB.Save(&platform).Error; err != nil {
		return nil, err
	}
	return &platform, nil
}

func DeletePlatform(id uint) error {
	result := database.DB.Delete(&models.Platform{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlatformNotFound
	}
	return nil
}
