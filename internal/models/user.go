package models

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	Role      Role   `gorm:"not null;default:'user'"`
	Version   int    `gorm:"default:1"`
}

// IsAdmin reports whether the user carries the admin role. Role is a
// typed enum so the trust boundary lives in exactly one place.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
