package models

import "time"

// PlaceholderToken is the literal substring every prompt template must
// contain so the product description can be interpolated before
// dispatch to the generation webhook.
const PlaceholderToken = "{{product_description}}"

// PromptVersion is one immutable revision of the prompt configuration
// for a (platform, category) pair. Saves never mutate existing rows;
// each save inserts a new row and deactivates the prior ones, so the
// table doubles as the audit history.
//
// The composite unique index on (platform_id, category_id, version)
// is what makes concurrent saves on the same key safe: two racing
// transactions that compute the same next version collide on insert
// and one of them recomputes.
type PromptVersion struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	PlatformID  uint      `gorm:"uniqueIndex:idx_prompt_key_version;index:idx_prompt_key;not null" json:"platform_id"`
	CategoryID  uint      `gorm:"uniqueIndex:idx_prompt_key_version;index:idx_prompt_key;not null" json:"category_id"`
	Version     float64   `gorm:"uniqueIndex:idx_prompt_key_version;not null" json:"version"`
	PromptText  string    `gorm:"type:text;not null" json:"prompt_text"`
	Temperature float64   `gorm:"not null" json:"temperature"`
	MaxTokens   int       `gorm:"not null" json:"max_tokens"`
	ModelID     uint      `gorm:"not null" json:"model_id"`
	IsActive    bool      `gorm:"index;not null;default:false" json:"is_active"`
}

func (PromptVersion) TableName() string {
	return "prompt_versions"
}
