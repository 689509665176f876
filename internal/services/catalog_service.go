package services

import (
	"errors"

	"printlist-backend/internal/database"
	"printlist-backend/internal/models"

	"gorm.io/gorm"
)

// Categories are read-only reference data; the listing optimizer ships
// with the two artifact kinds the generation workflow understands.
var defaultCategories = []string{"Description", "Keywords"}

// SeedCategories inserts the default categories if they are missing.
// Called once at startup after migration.
func SeedCategories() error {
	for _, name := range defaultCategories {
		var existing models.Category
		err := database.DB.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := database.DB.Create(&models.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

func ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := database.DB.Order("id").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func ListAIModels() ([]models.AIModel, error) {
	var aiModels []models.AIModel
	if err := database.DB.Order("id").Find(&aiModels).Error; err != nil {
		return nil, err
	}
	return aiModels, nil
}

func CreateAIModel(name, description string, status models.AIModelStatus) (*models.AIModel, error) {
	aiModel := &models.AIModel{
		Name:        name,
		Description: description,
		Status:      status,
	}
	if err := database.DB.Create(aiModel).Error; err != nil {
		return nil, err
	}
	return aiModel, nil
}
