package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"printlist-backend/internal/database"
	"printlist-backend/internal/models"
	"printlist-backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")
var ErrOptimisticLock = errors.New("data has been modified by another user, please refresh and try again")

func userCacheKey(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

func FindUserByID(userID uint) (models.User, error) {
	cacheKey := userCacheKey(userID)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return user, nil
			}
		}
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return user, err
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(user); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return user, nil
}

// FindUserByIDFresh loads a user straight from the database, skipping
// the cache. The admin gate uses this so a revoked admin role takes
// effect on the next request, not when a cached profile expires.
func FindUserByIDFresh(userID uint) (models.User, error) {
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, err
	}
	return user, nil
}

// FindUsers retrieves a paginated list of users, newest first.
func FindUsers(page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	offset := (page - 1) * limit

	if err := database.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := database.DB.Order("created_at desc").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// UpdateUser applies selective field updates under an optimistic
// version lock.
func UpdateUser(id uint, updates map[string]interface{}, operator string) (*models.User, error) {
	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if password, ok := updates["password"].(string); ok && password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		updates["password"] = string(hashedPassword)
	}

	currentVersion := user.Version
	updates["version"] = currentVersion + 1

	// The version predicate makes the update atomic with the check.
	result := tx.Model(&user).Where("version = ?", currentVersion).Updates(updates)
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrOptimisticLock
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, userCacheKey(id))
	}

	logger.Log.Info("user updated",
		zap.Uint("user_id", id),
		zap.String("operator", operator),
	)

	database.DB.First(&user, id)

	return &user, nil
}
