package services

import (
	"fmt"
	"os"
	"sync"
	"testing"

	"printlist-backend/internal/database"
	"printlist-backend/internal/models"
	"printlist-backend/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func setupPromptTestDB() {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	// Serialize writes so concurrent saves queue at the pool instead
	// of tripping SQLITE_BUSY.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	db.Migrator().DropTable(&models.PromptVersion{})
	if err := db.AutoMigrate(&models.PromptVersion{}); err != nil {
		panic("failed to migrate database")
	}

	database.DB = db
	database.RedisClient = nil
}

func setupPromptTestRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func validDraft() PromptDraft {
	return PromptDraft{
		PromptText:  "Generate keywords for {{product_description}}",
		Temperature: 0.7,
		MaxTokens:   4096,
		ModelID:     1,
	}
}

func TestSaveFirstVersion(t *testing.T) {
	setupPromptTestDB()

	pv, err := SavePromptVersion(1, 2, validDraft())
	assert.NoError(t, err)
	assert.Equal(t, 1.0, pv.Version)
	assert.True(t, pv.IsActive)
	assert.Equal(t, uint(1), pv.PlatformID)
	assert.Equal(t, uint(2), pv.CategoryID)
	assert.Equal(t, 0.7, pv.Temperature)
	assert.Equal(t, 4096, pv.MaxTokens)
}

func TestMonotonicVersioning(t *testing.T) {
	setupPromptTestDB()

	for i := 0; i < 12; i++ {
		draft := validDraft()
		draft.PromptText = fmt.Sprintf("Revision %d of {{product_description}}", i)
		pv, err := SavePromptVersion(1, 2, draft)
		assert.NoError(t, err)

		// 1.0, 1.1, ... 2.1 — exactly one decimal, no float drift.
		want := float64(10+i) / 10
		assert.Equal(t, want, pv.Version)
	}
}

func TestSingleActiveInvariant(t *testing.T) {
	setupPromptTestDB()

	_, err := SavePromptVersion(1, 2, validDraft())
	assert.NoError(t, err)
	second, err := SavePromptVersion(1, 2, validDraft())
	assert.NoError(t, err)

	var activeCount int64
	database.DB.Model(&models.PromptVersion{}).
		Where("platform_id = ? AND category_id = ? AND is_active = ?", 1, 2, true).
		Count(&activeCount)
	assert.Equal(t, int64(1), activeCount)

	active, err := GetActivePrompt(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
	assert.Equal(t, 1.1, active.Version)
}

func TestIndependentKeysDoNotInterfere(t *testing.T) {
	setupPromptTestDB()

	_, err := SavePromptVersion(1, 2, validDraft())
	assert.NoError(t, err)
	_, err = SavePromptVersion(3, 2, validDraft())
	assert.NoError(t, err)

	// Saving on one key must not deactivate the other.
	_, err = SavePromptVersion(1, 2, validDraft())
	assert.NoError(t, err)

	other, err := GetActivePrompt(3, 2)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, other.Version)
}

func TestMissingPlaceholderRejected(t *testing.T) {
	setupPromptTestDB()

	draft := validDraft()
	draft.PromptText = "Generate keywords for this product"

	_, err := SavePromptVersion(1, 2, draft)
	assert.ErrorIs(t, err, ErrMissingPlaceholder)

	// Fail fast: no row, no state change.
	var count int64
	database.DB.Model(&models.PromptVersion{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestTemperatureRangeRejected(t *testing.T) {
	setupPromptTestDB()

	draft := validDraft()
	draft.Temperature = 1.5
	_, err := SavePromptVersion(1, 2, draft)
	assert.ErrorIs(t, err, ErrTemperatureRange)

	draft.Temperature = -0.1
	_, err = SavePromptVersion(1, 2, draft)
	assert.ErrorIs(t, err, ErrTemperatureRange)
}

func TestInvalidMaxTokensRejected(t *testing.T) {
	setupPromptTestDB()

	draft := validDraft()
	draft.MaxTokens = 0
	_, err := SavePromptVersion(1, 2, draft)
	assert.ErrorIs(t, err, ErrInvalidMaxTokens)
}

func TestGetActiveNotFound(t *testing.T) {
	setupPromptTestDB()

	_, err := GetActivePrompt(42, 42)
	assert.ErrorIs(t, err, ErrNoActivePrompt)
}

func TestListVersionsNewestFirst(t *testing.T) {
	setupPromptTestDB()

	texts := []string{
		"First pass at {{product_description}}",
		"Second pass at {{product_description}}",
		"Third pass at {{product_description}}",
	}
	for _, text := range texts {
		draft := validDraft()
		draft.PromptText = text
		_, err := SavePromptVersion(1, 2, draft)
		assert.NoError(t, err)
	}

	versions, err := ListPromptVersions(1, 2)
	assert.NoError(t, err)
	assert.Len(t, versions, 3)
	assert.Equal(t, 1.2, versions[0].Version)
	assert.Equal(t, 1.1, versions[1].Version)
	assert.Equal(t, 1.0, versions[2].Version)

	// History is immutable: old rows keep the content they were saved with.
	assert.Equal(t, texts[0], versions[2].PromptText)
	assert.Equal(t, texts[1], versions[1].PromptText)
	assert.False(t, versions[1].IsActive)
	assert.False(t, versions[2].IsActive)
	assert.True(t, versions[0].IsActive)
}

func TestListVersionsEmptyKey(t *testing.T) {
	setupPromptTestDB()

	versions, err := ListPromptVersions(9, 9)
	assert.NoError(t, err)
	assert.Empty(t, versions)
}

func TestActivateHistoricalVersionBySave(t *testing.T) {
	setupPromptTestDB()

	first := validDraft()
	first.PromptText = "Original take on {{product_description}}"
	_, err := SavePromptVersion(1, 2, first)
	assert.NoError(t, err)

	second := validDraft()
	second.PromptText = "Revised take on {{product_description}}"
	_, err = SavePromptVersion(1, 2, second)
	assert.NoError(t, err)

	// "Rollback" re-saves the old content as a new version rather than
	// flipping the flag on the old row.
	restored, err := SavePromptVersion(1, 2, first)
	assert.NoError(t, err)
	assert.Equal(t, 1.2, restored.Version)
	assert.Equal(t, first.PromptText, restored.PromptText)

	versions, err := ListPromptVersions(1, 2)
	assert.NoError(t, err)
	assert.Len(t, versions, 3)
}

func TestActivePromptCache(t *testing.T) {
	setupPromptTestDB()
	mr := setupPromptTestRedis()
	defer mr.Close()

	saved, err := SavePromptVersion(1, 2, validDraft())
	assert.NoError(t, err)

	// First read populates the cache.
	active, err := GetActivePrompt(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, saved.ID, active.ID)

	// Mutate the row behind the cache; the stale value must be served.
	database.DB.Model(&models.PromptVersion{}).
		Where("id = ?", saved.ID).
		Update("max_tokens", 9999)

	cached, err := GetActivePrompt(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 4096, cached.MaxTokens)

	// A save invalidates the cache.
	_, err = SavePromptVersion(1, 2, validDraft())
	assert.NoError(t, err)

	fresh, err := GetActivePrompt(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, 1.1, fresh.Version)
}

func TestConcurrentSavesSameKey(t *testing.T) {
	setupPromptTestDB()

	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, errs[n] = SavePromptVersion(1, 2, validDraft())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}

	versions, err := ListPromptVersions(1, 2)
	assert.NoError(t, err)
	assert.Len(t, versions, workers)

	// No duplicate version numbers.
	seen := make(map[float64]bool)
	for _, v := range versions {
		assert.False(t, seen[v.Version], "duplicate version %v", v.Version)
		seen[v.Version] = true
	}
	assert.Equal(t, 1.7, versions[0].Version)

	// Exactly one row active.
	var activeCount int64
	database.DB.Model(&models.PromptVersion{}).
		Where("platform_id = ? AND category_id = ? AND is_active = ?", 1, 2, true).
		Count(&activeCount)
	assert.Equal(t, int64(1), activeCount)
}
