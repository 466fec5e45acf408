package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/DavidBatoDev/pup-alumni-portal-server/config"
	"github.com/DavidBatoDev/pup-alumni-portal-server/models"
)

func createHomecoming(t *testing.T, r *gin.Engine, adminToken string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/events", adminToken, map[string]interface{}{
		"event_name": "Grand Alumni Homecoming",
		"event_date": "2026-12-05",
		"location":   "PUP Main Campus",
		"type":       "Face-to-face",
		"category":   "Homecoming",
	})
	requireStatus(t, w, http.StatusCreated)
	return uint(dataField(t, w)["event_id"].(float64))
}

func TestEventLifecycle(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createAlumni(t, "admin@pup.edu.ph", true)
	_, token := createAlumni(t, "regular@pup.edu.ph", false)

	eventID := createHomecoming(t, r, adminToken)

	// Creation fans an invitation out to every alumni.
	var notification models.Notification
	if err := config.DB.Where("type = ? AND event_id = ?", "eventInvitation", eventID).
		First(&notification).Error; err != nil {
		t.Fatalf("expected an eventInvitation notification: %v", err)
	}
	var fanned int64
	config.DB.Model(&models.AlumniNotification{}).Where("notification_id = ?", notification.ID).Count(&fanned)
	if fanned != 2 {
		t.Fatalf("expected 2 alumni notifications, got %d", fanned)
	}

	// Active events are listed.
	w := doJSON(t, r, http.MethodGet, "/api/events", token, nil)
	requireStatus(t, w, http.StatusOK)
	if events := decodeBody(t, w)["data"].([]interface{}); len(events) != 1 {
		t.Fatalf("expected 1 active event, got %d", len(events))
	}

	// Register, then reject the duplicate.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/events/%d/register", eventID), token, nil)
	requireStatus(t, w, http.StatusCreated)
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/events/%d/register", eventID), token, nil)
	requireStatus(t, w, http.StatusConflict)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/events/%d/status", eventID), token, nil)
	requireStatus(t, w, http.StatusOK)
	if dataField(t, w)["is_registered"] != true {
		t.Fatalf("expected is_registered true")
	}

	// Feedback only opens once the event ends.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/events/%d/feedback", eventID), token, map[string]interface{}{
		"feedback_text": "Too early to tell.",
	})
	requireStatus(t, w, http.StatusForbidden)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/events/%d/end", eventID), adminToken, nil)
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/events/%d/feedback", eventID), token, map[string]interface{}{
		"feedback_text": "Great seeing everyone again!",
	})
	requireStatus(t, w, http.StatusCreated)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/events/%d/feedback", eventID), token, nil)
	requireStatus(t, w, http.StatusOK)
	feedbacks := decodeBody(t, w)["data"].([]interface{})
	if len(feedbacks) != 1 {
		t.Fatalf("expected 1 feedback entry, got %d", len(feedbacks))
	}
	entry := feedbacks[0].(map[string]interface{})
	if entry["feedback_text"] != "Great seeing everyone again!" {
		t.Fatalf("unexpected feedback %v", entry)
	}

	// Ended events drop off the active listing and show under inactive.
	w = doJSON(t, r, http.MethodGet, "/api/events", token, nil)
	requireStatus(t, w, http.StatusOK)
	if events := decodeBody(t, w)["data"].([]interface{}); len(events) != 0 {
		t.Fatalf("expected no active events, got %d", len(events))
	}
	w = doJSON(t, r, http.MethodGet, "/api/events/inactive", adminToken, nil)
	requireStatus(t, w, http.StatusOK)
	if events := decodeBody(t, w)["data"].([]interface{}); len(events) != 1 {
		t.Fatalf("expected 1 inactive event, got %d", len(events))
	}
}

func TestEventFeedbackRequiresRegistration(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createAlumni(t, "admin@pup.edu.ph", true)
	_, token := createAlumni(t, "walkin@pup.edu.ph", false)

	eventID := createHomecoming(t, r, adminToken)
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/events/%d/end", eventID), adminToken, nil)
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/events/%d/feedback", eventID), token, map[string]interface{}{
		"feedback_text": "I was not even there.",
	})
	requireStatus(t, w, http.StatusForbidden)
}

func TestRegistrationClosedOnEndedEvent(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createAlumni(t, "admin@pup.edu.ph", true)
	_, token := createAlumni(t, "late@pup.edu.ph", false)

	eventID := createHomecoming(t, r, adminToken)
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/events/%d/end", eventID), adminToken, nil)
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/events/%d/register", eventID), token, nil)
	requireStatus(t, w, http.StatusForbidden)
}

func TestEventAdminGuards(t *testing.T) {
	r := setupRouter(t)
	_, token := createAlumni(t, "regular@pup.edu.ph", false)

	w := doJSON(t, r, http.MethodPost, "/api/events", token, map[string]interface{}{
		"event_name": "Rogue Event",
		"event_date": "2026-12-05",
		"location":   "Nowhere",
		"type":       "Virtual",
		"category":   "Other",
	})
	requireStatus(t, w, http.StatusForbidden)
}
