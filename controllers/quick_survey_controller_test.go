package controllers_test

import (
	"net/http"
	"testing"

	"github.com/DavidBatoDev/pup-alumni-portal-server/config"
	"github.com/DavidBatoDev/pup-alumni-portal-server/models"
)

func TestQuickSurveyRoundTrip(t *testing.T) {
	r := setupRouter(t)
	_, token := createAlumni(t, "regular@pup.edu.ph", false)

	w := doJSON(t, r, http.MethodGet, "/api/quick-survey/status", token, nil)
	requireStatus(t, w, http.StatusOK)
	if dataField(t, w)["answered"] != false {
		t.Fatalf("expected answered false before submitting")
	}

	w = doJSON(t, r, http.MethodPost, "/api/quick-survey", token, map[string]interface{}{
		"selected_options": []string{"Job opportunities", "Networking"},
	})
	requireStatus(t, w, http.StatusCreated)

	w = doJSON(t, r, http.MethodGet, "/api/quick-survey/status", token, nil)
	requireStatus(t, w, http.StatusOK)
	data := dataField(t, w)
	if data["answered"] != true {
		t.Fatalf("expected answered true after submitting")
	}
	options := data["selected_options"].([]interface{})
	if len(options) != 2 || options[0] != "Job opportunities" {
		t.Fatalf("unexpected stored options %v", options)
	}
}

func TestQuickSurveyResubmitReplaces(t *testing.T) {
	r := setupRouter(t)
	alumni, token := createAlumni(t, "regular@pup.edu.ph", false)

	w := doJSON(t, r, http.MethodPost, "/api/quick-survey", token, map[string]interface{}{
		"selected_options": []string{"Job opportunities"},
	})
	requireStatus(t, w, http.StatusCreated)

	w = doJSON(t, r, http.MethodPost, "/api/quick-survey", token, map[string]interface{}{
		"selected_options": []string{"Events"},
		"other_response":   "Mentoring students",
	})
	requireStatus(t, w, http.StatusOK)

	var rows []models.QuickSurveyResponse
	if err := config.DB.Where("alumni_id = ?", alumni.ID).Find(&rows).Error; err != nil {
		t.Fatalf("load rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a single row per alumni, got %d", len(rows))
	}
	if rows[0].OtherResponse == nil || *rows[0].OtherResponse != "Mentoring students" {
		t.Fatalf("expected the resubmission to replace the stored answer")
	}
}

func TestQuickSurveyRejectsEmptySelections(t *testing.T) {
	r := setupRouter(t)
	_, token := createAlumni(t, "regular@pup.edu.ph", false)

	w := doJSON(t, r, http.MethodPost, "/api/quick-survey", token, map[string]interface{}{
		"selected_options": []string{},
	})
	requireStatus(t, w, http.StatusUnprocessableEntity)

	w = doJSON(t, r, http.MethodPost, "/api/quick-survey", token, map[string]interface{}{
		"selected_options": []string{"  "},
	})
	requireStatus(t, w, http.StatusUnprocessableEntity)
}
