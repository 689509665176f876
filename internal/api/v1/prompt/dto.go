package prompt

import "printlist-backend/internal/models"

type SavePromptRequest struct {
	PromptText  string  `json:"prompt_text" binding:"required"`
	Temperature float64 `json:"temperature" binding:"gte=0,lte=1"`
	MaxTokens   int     `json:"max_tokens" binding:"required,min=1"`
	ModelID     uint    `json:"model_id" binding:"required"`
}

type VersionListResponse struct {
	Versions []models.PromptVersion `json:"versions"`
	Total    int                    `json:"total"`
}

type TestPromptRequest struct {
	ProductDescription string `json:"product_description" binding:"required"`
}

type TestPromptResponse struct {
	PromptID uint    `json:"prompt_id"`
	Version  float64 `json:"version"`
	Rendered string  `json:"rendered_prompt"`
	Output   string  `json:"output"`
}
