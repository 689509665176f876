package services

import (
	"testing"

	"printlist-backend/internal/database"
	"printlist-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPlatformTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.Platform{}, &models.Category{}, &models.AIModel{})
	if err := db.AutoMigrate(&models.Platform{}, &models.Category{}, &models.AIModel{}); err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
}

func TestCreateAndListPlatforms(t *testing.T) {
	setupPlatformTestDB()

	etsy, err := CreatePlatform("Etsy")
	assert.NoError(t, err)
	assert.Equal(t, "Etsy", etsy.Name)

	_, err = CreatePlatform("Cults3D")
	assert.NoError(t, err)

	platforms, err := ListPlatforms()
	assert.NoError(t, err)
	assert.Len(t, platforms, 2)
	assert.Equal(t, "Etsy", platforms[0].Name)
	assert.Equal(t, "Cults3D", platforms[1].Name)
}

func TestCreatePlatformDuplicate(t *testing.T) {
	setupPlatformTestDB()

	_, err := CreatePlatform("Etsy")
	assert.NoError(t, err)

	_, err = CreatePlatform("Etsy")
	assert.ErrorIs(t, err, ErrPlatformExists)
}

func TestRenamePlatform(t *testing.T) {
	setupPlatformTestDB()

	etsy, err := CreatePlatform("Etsy")
	assert.NoError(t, err)

	renamed, err := RenamePlatform(etsy.ID, "Etsy EU")
	assert.NoError(t, err)
	assert.Equal(t, "Etsy EU", renamed.Name)

	_, err = RenamePlatform(999, "Nowhere")
	assert.ErrorIs(t, err, ErrPlatformNotFound)
}

func TestDeletePlatform(t *testing.T) {
	setupPlatformTestDB()

	etsy, err := CreatePlatform("Etsy")
	assert.NoError(t, err)

	assert.NoError(t, DeletePlatform(etsy.ID))
	assert.ErrorIs(t, DeletePlatform(etsy.ID), ErrPlatformNotFound)
}

func TestSeedCategoriesIdempotent(t *testing.T) {
	setupPlatformTestDB()

	assert.NoError(t, SeedCategories())
	assert.NoError(t, SeedCategories())

	categories, err := ListCategories()
	assert.NoError(t, err)
	assert.Len(t, categories, 2)

	names := []string{categories[0].Name, categories[1].Name}
	assert.Contains(t, names, "Description")
	assert.Contains(t, names, "Keywords")
}

func TestCreateAndListAIModels(t *testing.T) {
	setupPlatformTestDB()

	created, err := CreateAIModel("gpt-4o", "general purpose listing model", models.AIModelStatusOpen)
	assert.NoError(t, err)
	assert.Equal(t, "gpt-4o", created.Name)

	listed, err := ListAIModels()
	assert.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.Equal(t, models.AIModelStatusOpen, listed[0].Status)
}
