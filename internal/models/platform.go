package models

import "time"

// Platform identifies a target marketplace (e.g. Etsy, eBay).
// Reference data, managed by admins only.
type Platform struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
