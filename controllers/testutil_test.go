package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DavidBatoDev/pup-alumni-portal-server/config"
	"github.com/DavidBatoDev/pup-alumni-portal-server/models"
	"github.com/DavidBatoDev/pup-alumni-portal-server/routes"
	"github.com/DavidBatoDev/pup-alumni-portal-server/utils"
)

// Each router gets a distinct client IP so the shared per-IP rate limiter
// never throttles one test because of another.
var testClientSeq int
var testClientIP string

// setupRouter wires the full route table against a fresh in-memory database.
// Handlers reach the database through the config.DB global, so tests using
// this harness must not run in parallel.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	testClientSeq++
	testClientIP = fmt.Sprintf("10.9.%d.%d:51000", testClientSeq/250, testClientSeq%250+1)

	// A named shared-cache DSN keeps every pooled connection on the same
	// in-memory database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		config.DB = nil
	})

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createAlumni(t *testing.T, email string, isAdmin bool) (models.Alumni, string) {
	t.Helper()

	hash, err := utils.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	alumni := models.Alumni{
		FirstName: "Juan",
		LastName:  "Dela Cruz",
		Email:     email,
		Password:  hash,
		IsAdmin:   isAdmin,
	}
	if err := config.DB.Create(&alumni).Error; err != nil {
		t.Fatalf("create alumni: %v", err)
	}

	token, err := utils.GenerateToken(strconv.FormatUint(uint64(alumni.ID), 10), isAdmin)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return alumni, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.RemoteAddr = testClientIP
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	body := decodeBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object in response, got %q", w.Body.String())
	}
	return data
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

// tracerSurveyPayload is the definition most tests author: one employment
// section with a Multiple Choice question carrying an "Others" option, and
// one open-ended question.
func tracerSurveyPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Graduate Tracer Survey",
		"description": "Annual employment tracer",
		"start_date":  "2026-01-01",
		"end_date":    "2026-12-31",
		"sections": []map[string]interface{}{
			{
				"section_title": "Employment",
				"questions": []map[string]interface{}{
					{
						"question_text":   "What is your current employment status?",
						"question_type":   "Multiple Choice",
						"is_required":     true,
						"is_other_option": true,
						"options": []map[string]interface{}{
							{"option_text": "Employed"},
							{"option_text": "Unemployed"},
						},
					},
					{
						"question_text": "Describe your career goals.",
						"question_type": "Open-ended",
					},
				},
			},
		},
	}
}

// createTracerSurvey posts tracerSurveyPayload and returns the new survey ID.
func createTracerSurvey(t *testing.T, r *gin.Engine, adminToken string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/surveys", adminToken, tracerSurveyPayload())
	requireStatus(t, w, http.StatusCreated)
	data := dataField(t, w)
	id, ok := data["survey_id"].(float64)
	if !ok || id <= 0 {
		t.Fatalf("expected survey_id in response, got %v", data)
	}
	return uint(id)
}
