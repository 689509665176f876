package prompt

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"printlist-backend/internal/database"
	"printlist-backend/internal/models"
	"printlist-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	db.Migrator().DropTable(&models.PromptVersion{})
	if err := db.AutoMigrate(&models.PromptVersion{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	database.DB = db
	database.RedisClient = nil

	router := gin.New()
	group := router.Group("/")
	RegisterRoutes(group)
	return router
}

func savePromptBody(text string) string {
	body, _ := json.Marshal(map[string]interface{}{
		"prompt_text": text,
		"temperature": 0.7,
		"max_tokens":  4096,
		"model_id":    1,
	})
	return string(body)
}

func TestSaveAndGetActive(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/prompts/1/2",
		strings.NewReader(savePromptBody("Describe {{product_description}} for buyers")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"version":1`)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/prompts/1/2/active", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Describe {{product_description}} for buyers")
}

func TestGetActiveNotFound(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/prompts/1/2/active", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no active prompt")
}

func TestSaveMissingPlaceholder(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/prompts/1/2",
		strings.NewReader(savePromptBody("Describe the product for buyers")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "{{product_description}}")
}

func TestSaveTemperatureOutOfRange(t *testing.T) {
	router := setupTestRouter(t)

	body, _ := json.Marshal(map[string]interface{}{
		"prompt_text": "Describe {{product_description}}",
		"temperature": 1.5,
		"max_tokens":  4096,
		"model_id":    1,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/prompts/1/2", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Rejected at binding, before the service runs.
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveInvalidPlatformID(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/prompts/abc/2",
		strings.NewReader(savePromptBody("Describe {{product_description}}")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid platform ID")
}

func TestListVersionsHandler(t *testing.T) {
	router := setupTestRouter(t)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/prompts/1/2",
			strings.NewReader(savePromptBody(fmt.Sprintf("Take %d on {{product_description}}", i))))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/prompts/1/2/versions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data VersionListResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 3, envelope.Data.Total)
	assert.Equal(t, 1.2, envelope.Data.Versions[0].Version)
}

func TestTestPromptNoActive(t *testing.T) {
	router := setupTestRouter(t)

	body, _ := json.Marshal(TestPromptRequest{ProductDescription: "a dragon miniature"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/prompts/1/2/test", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTestPromptAgainstWebhook(t *testing.T) {
	router := setupTestRouter(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"output":"Hand-painted dragon miniature, 15cm"}`))
	}))
	defer server.Close()
	t.Setenv("N8N_WEBHOOK_URL", server.URL)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/prompts/1/2",
		strings.NewReader(savePromptBody("Write a title for {{product_description}}")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	body, _ := json.Marshal(TestPromptRequest{ProductDescription: "a dragon miniature"})
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/prompts/1/2/test", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data TestPromptResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Write a title for a dragon miniature", envelope.Data.Rendered)
	assert.Equal(t, "Hand-painted dragon miniature, 15cm", envelope.Data.Output)
}
