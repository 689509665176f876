package services

import (
	"testing"

	"printlist-backend/internal/database"
	"printlist-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserTestDB(t *testing.T) *models.User {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.Migrator().DropTable(&models.User{})
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	database.DB = db
	database.RedisClient = nil

	user := &models.User{Username: "alice", Password: "x", Role: models.RoleUser}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestFindUserByIDFresh(t *testing.T) {
	seeded := setupUserTestDB(t)

	user, err := FindUserByIDFresh(seeded.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = FindUserByIDFresh(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByIDUsesCache(t *testing.T) {
	seeded := setupUserTestDB(t)
	mr := setupPromptTestRedis()
	defer mr.Close()

	// Populate the cache, then change the row behind it.
	_, err := FindUserByID(seeded.ID)
	assert.NoError(t, err)

	database.DB.Model(&models.User{}).Where("id = ?", seeded.ID).Update("username", "renamed")

	cached, err := FindUserByID(seeded.ID)
	assert.NoError(t, err)
	assert.Equal(t, "alice", cached.Username)

	// The fresh path sees the change immediately.
	fresh, err := FindUserByIDFresh(seeded.ID)
	assert.NoError(t, err)
	assert.Equal(t, "renamed", fresh.Username)
}

func TestUpdateUserRole(t *testing.T) {
	seeded := setupUserTestDB(t)

	updated, err := UpdateUser(seeded.ID, map[string]interface{}{"role": "admin"}, "admin-cli")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Equal(t, seeded.Version+1, updated.Version)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	seeded := setupUserTestDB(t)

	updated, err := UpdateUser(seeded.ID, map[string]interface{}{"password": "newsecret"}, "admin-cli")
	assert.NoError(t, err)
	assert.NotEqual(t, "newsecret", updated.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newsecret")))
}

func TestUpdateUserNotFound(t *testing.T) {
	setupUserTestDB(t)

	_, err := UpdateUser(999, map[string]interface{}{"role": "admin"}, "admin-cli")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUsersPagination(t *testing.T) {
	setupUserTestDB(t)

	for _, name := range []string{"bob", "carol", "dave"} {
		err := database.DB.Create(&models.User{Username: name, Password: "x", Role: models.RoleUser}).Error
		assert.NoError(t, err)
	}

	users, total, err := FindUsers(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, users, 2)
}
