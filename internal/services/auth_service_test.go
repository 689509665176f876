package services

import (
	"testing"

	"printlist-backend/internal/database"
	"printlist-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTestDB(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

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
}

func TestRegisterFirstUserIsAdmin(t *testing.T) {
	setupAuthTestDB(t)

	first, err := RegisterUser("alice", "password123")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, first.Role)

	second, err := RegisterUser("bob", "password123")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, second.Role)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setupAuthTestDB(t)

	_, err := RegisterUser("alice", "password123")
	assert.NoError(t, err)

	_, err = RegisterUser("alice", "otherpassword")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterHashesPassword(t *testing.T) {
	setupAuthTestDB(t)

	user, err := RegisterUser("alice", "password123")
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", user.Password)
}

func TestLoginUser(t *testing.T) {
	setupAuthTestDB(t)

	_, err := RegisterUser("alice", "password123")
	assert.NoError(t, err)

	token, user, err := LoginUser("alice", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice", user.Username)

	_, _, err = LoginUser("alice", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = LoginUser("nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
