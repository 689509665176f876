package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"printlist-backend/internal/database"
	"printlist-backend/internal/models"

	"gorm.io/gorm"
)

const (
	ActivePromptCacheKeyPrefix = "prompt:active:"
	ActivePromptCacheDuration  = 24 * time.Hour

	// saveRetryLimit bounds how often a save recomputes after losing a
	// version race to a concurrent save on the same key.
	saveRetryLimit = 3
)

var (
	ErrMissingPlaceholder = errors.New("prompt text must contain the " + models.PlaceholderToken + " placeholder")
	ErrTemperatureRange   = errors.New("temperature must be between 0.0 and 1.0")
	ErrInvalidMaxTokens   = errors.New("max_tokens must be positive")
	ErrNoActivePrompt     = errors.New("no active prompt configured for this platform and category")
	ErrSaveConflict       = errors.New("prompt save conflicted with a concurrent save, please retry")
)

// PromptDraft carries the editable fields of a prompt configuration.
// Version and activation state are never supplied by callers.
type PromptDraft struct {
	PromptText  string
	Temperature float64
	MaxTokens   int
	ModelID     uint
}

func (d PromptDraft) validate() error {
	if !strings.Contains(d.PromptText, models.PlaceholderToken) {
		return ErrMissingPlaceholder
	}
	if d.Temperature < 0.0 || d.Temperature > 1.0 {
		return ErrTemperatureRange
	}
	if d.MaxTokens < 1 {
		return ErrInvalidMaxTokens
	}
	return nil
}

func activePromptCacheKey(platformID, categoryID uint) string {
	return fmt.Sprintf("%s%d:%d", ActivePromptCacheKeyPrefix, platformID, categoryID)
}

// GetActivePrompt returns the single active prompt version for the
// (platform, category) key, or ErrNoActivePrompt if none was ever
// saved. The generation path depends on the id, prompt_text,
// temperature, max_tokens and model_id fields of the result.
func GetActivePrompt(platformID, categoryID uint) (*models.PromptVersion, error) {
	cacheKey := activePromptCacheKey(platformID, categoryID)

	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var pv models.PromptVersion
			if err := json.Unmarshal([]byte(val), &pv); err == nil {
				return &pv, nil
			}
		}
	}

	var pv models.PromptVersion
	err := database.DB.
		Where("platform_id = ? AND category_id = ? AND is_active = ?", platformID, categoryID, true).
		First(&pv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActivePrompt
		}
		return nil, err
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(pv); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, ActivePromptCacheDuration)
		}
	}

	return &pv, nil
}

// ListPromptVersions returns the full saved history for a
// (platform, category) key, newest version first. An empty slice is a
// valid result for a key that was never saved.
func ListPromptVersions(platformID, categoryID uint) ([]models.PromptVersion, error) {
	var versions []models.PromptVersion
	err := database.DB.
		Where("platform_id = ? AND category_id = ?", platformID, categoryID).
		Order("version desc").
		Find(&versions).Error
	if err != nil {
		return nil, err
	}
	return versions, nil
}

// SavePromptVersion appends a new prompt version for the key and makes
// it the single active one. The draft is validated before any write.
//
// The deactivate-all + insert pair runs in one transaction, with the
// next version number computed inside that same transaction. If two
// saves race on the same key, the composite unique index on
// (platform_id, category_id, version) rejects the loser's insert and
// the whole transaction is recomputed, so version numbers stay
// strictly increasing and exactly one row ends up active.
func SavePromptVersion(platformID, categoryID uint, draft PromptDraft) (*models.PromptVersion, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	var saved *models.PromptVersion
	var err error
	for attempt := 0; attempt < saveRetryLimit; attempt++ {
		saved, err = trySavePromptVersion(platformID, categoryID, draft)
		if err == nil {
			break
		}
		if !isDuplicateKeyError(err) {
			return nil, err
		}
	}
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrSaveConflict
		}
		return nil, err
	}

	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, activePromptCacheKey(platformID, categoryID))
	}

	return saved, nil
}

func trySavePromptVersion(platformID, categoryID uint, draft PromptDraft) (*models.PromptVersion, error) {
	pv := &models.PromptVersion{
		PlatformID:  platformID,
		CategoryID:  categoryID,
		PromptText:  draft.PromptText,
		Temperature: draft.Temperature,
		MaxTokens:   draft.MaxTokens,
		ModelID:     draft.ModelID,
		IsActive:    true,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var priorMax float64
		err := tx.Model(&models.PromptVersion{}).
			Where("platform_id = ? AND category_id = ?", platformID, categoryID).
			Select("COALESCE(MAX(version), 0)").
			Scan(&priorMax).Error
		if err != nil {
			return err
		}

		pv.Version = nextVersion(priorMax)

		err = tx.Model(&models.PromptVersion{}).
			Where("platform_id = ? AND category_id = ? AND is_active = ?", platformID, categoryID, true).
			Update("is_active", false).Error
		if err != nil {
			return err
		}

		return tx.Create(pv).Error
	})
	if err != nil {
		return nil, err
	}

	return pv, nil
}

// nextVersion computes prior + 0.1 in integer tenths. Repeated binary
// float addition of 0.1 drifts (1.7000000000000002); rounding the
// scaled value keeps the sequence at exactly one decimal place.
func nextVersion(priorMax float64) float64 {
	return math.Round(priorMax*10+1) / 10
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Fallback for drivers without error translation.
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
