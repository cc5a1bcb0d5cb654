package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"tailspin/backend/internal/models"
	"tailspin/backend/internal/repository"
)

// testEnv is a full API over an in-memory sqlite database, seeded with two
// publishers, two categories and two games.
type testEnv struct {
	router     *gin.Engine
	db         *gorm.DB
	categories []models.Category
	publishers []models.Publisher
	games      []models.Game
}

func setupTestAPI(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	env := &testEnv{db: db}

	env.categories = []models.Category{{Name: "Strategy"}, {Name: "Card Game"}}
	if err := db.Create(&env.categories).Error; err != nil {
		t.Fatalf("seed categories: %v", err)
	}
	env.publishers = []models.Publisher{{Name: "DevGames Inc"}, {Name: "Scrum Masters"}}
	if err := db.Create(&env.publishers).Error; err != nil {
		t.Fatalf("seed publishers: %v", err)
	}

	rating1, rating2 := 4.5, 4.2
	env.games = []models.Game{
		{
			Title:       "Pipeline Panic",
			Description: "Build your DevOps pipeline before chaos ensues",
			StarRating:  &rating1,
			CategoryID:  env.categories[0].ID,
			PublisherID: env.publishers[0].ID,
		},
		{
			Title:       "Agile Adventures",
			Description: "Navigate your team through sprints and releases",
			StarRating:  &rating2,
			CategoryID:  env.categories[1].ID,
			PublisherID: env.publishers[1].ID,
		},
	}
	if err := db.Create(&env.games).Error; err != nil {
		t.Fatalf("seed games: %v", err)
	}

	env.router = gin.New()
	RegisterRoutes(env.router, New(repository.NewStore(db)))
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, w.Code, w.Body.String())
	}
	body := decodeObject(t, w)
	if body["error"] != message {
		t.Fatalf("expected error %q, got %v", message, body["error"])
	}
}
