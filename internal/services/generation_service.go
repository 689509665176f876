package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"printlist-backend/config"
	"printlist-backend/internal/models"
	"printlist-backend/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrWebhookNotConfigured = errors.New("generation webhook is not configured")
	ErrEmptyWebhookOutput   = errors.New("no output received from the webhook")
)

// webhookRequest is the contract of the n8n generation workflow. The
// workflow resolves the prompt row by id on its side, so the body only
// carries the id, the raw description and a correlation session id.
type webhookRequest struct {
	PromptID           uint   `json:"prompt_id"`
	ProductDescription string `json:"product_description"`
	SessionID          string `json:"session_id"`
}

type webhookResponse struct {
	Output  string `json:"output"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// webhookClient is bounded and never retries: the generation call is
// not idempotent.
var webhookClient = utils.NewHTTPClient(60 * time.Second)

// RenderPrompt interpolates the product description into a prompt
// template. Used for previewing what the workflow will execute.
func RenderPrompt(pv *models.PromptVersion, productDescription string) string {
	return strings.ReplaceAll(pv.PromptText, models.PlaceholderToken, productDescription)
}

// TestActivePrompt runs the active prompt for a (platform, category)
// key against the generation webhook with the supplied description
// and returns the generated output. ErrNoActivePrompt surfaces when
// the key was never saved.
func TestActivePrompt(platformID, categoryID uint, productDescription string) (string, error) {
	pv, err := GetActivePrompt(platformID, categoryID)
	if err != nil {
		return "", err
	}
	return DispatchGeneration(pv, productDescription)
}

// DispatchGeneration posts a single generation request to the
// configured webhook and decodes its output.
func DispatchGeneration(pv *models.PromptVersion, productDescription string) (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}
	if cfg.WebhookURL == "" {
		return "", ErrWebhookNotConfigured
	}

	payload := webhookRequest{
		PromptID:           pv.ID,
		ProductDescription: strings.TrimSpace(productDescription),
		SessionID:          uuid.New().String(),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.WebhookUsername != "" {
		req.SetBasicAuth(cfg.WebhookUsername, cfg.WebhookPassword)
	}

	resp, err := webhookClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var decoded webhookResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("webhook returned status %d", resp.StatusCode)
		}
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		msg := decoded.Message
		if msg == "" {
			msg = decoded.Error
		}
		if msg == "" {
			msg = fmt.Sprintf("webhook returned status %d", resp.StatusCode)
		}
		return "", errors.New(msg)
	}

	if decoded.Output == "" {
		return "", ErrEmptyWebhookOutput
	}

	return decoded.Output, nil
}
