package controllers_test

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/DavidBatoDev/pup-alumni-portal-server/config"
	"github.com/DavidBatoDev/pup-alumni-portal-server/models"
)

func TestCSVExportContainsAnswers(t *testing.T) {
	r := setupRouter(t)
	t.Setenv("EXPORT_DIR", t.TempDir())

	_, adminToken := createAlumni(t, "admin@pup.edu.ph", true)
	alumni, token := createAlumni(t, "regular@pup.edu.ph", false)

	surveyID := createTracerSurvey(t, r, adminToken)
	submitTracerAnswers(t, r, token, surveyID, "Freelancing")

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/surveys/%d/export", surveyID), adminToken, map[string]interface{}{
		"format": "csv",
	})
	requireStatus(t, w, http.StatusAccepted)
	jobID := dataField(t, w)["job_id"].(string)

	// The worker runs in a goroutine; wait for it to finish.
	var job models.ExportJob
	deadline := time.Now().Add(5 * time.Second)
	for {
		if err := config.DB.First(&job, "job_id = ?", jobID).Error; err != nil {
			t.Fatalf("load job: %v", err)
		}
		if job.Status == "done" || job.Status == "failed" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("export job still %q after 5s", job.Status)
		}
		time.Sleep(25 * time.Millisecond)
	}
	if job.Status != "done" {
		t.Fatalf("export failed: %v", job.ErrorMsg)
	}

	w = doJSON(t, r, http.MethodGet, "/api/exports/"+jobID, adminToken, nil)
	requireStatus(t, w, http.StatusOK)

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header plus one row, got %d records", len(records))
	}

	header := records[0]
	if header[1] != "email" {
		t.Fatalf("unexpected header %v", header)
	}
	row := records[1]
	if row[1] != alumni.Email {
		t.Fatalf("expected respondent email %q, got %q", alumni.Email, row[1])
	}
	joined := strings.Join(row, "|")
	if !strings.Contains(joined, "Others: Freelancing") {
		t.Fatalf("expected the Others answer in the row, got %q", joined)
	}
}

func TestCreateExportRejectsUnknownFormat(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createAlumni(t, "admin@pup.edu.ph", true)
	surveyID := createTracerSurvey(t, r, adminToken)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/surveys/%d/export", surveyID), adminToken, map[string]interface{}{
		"format": "pdf",
	})
	requireStatus(t, w, http.StatusUnprocessableEntity)
}
