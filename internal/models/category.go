package models

import "time"

// Category identifies a kind of generated listing artifact, e.g.
// "Description" or "Keywords". Read-only reference data.
type Category struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
