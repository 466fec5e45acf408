package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
)

func TestProfileUpdateAndFetch(t *testing.T) {
	r := setupRouter(t)
	_, token := createAlumni(t, "regular@pup.edu.ph", false)

	w := doJSON(t, r, http.MethodPost, "/api/profile", token, map[string]interface{}{
		"current_job_title": "Software Engineer",
		"current_employer":  "Acme Corp",
		"graduation_year":   2020,
		"major":             "Computer Science",
	})
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodGet, "/api/profile", token, nil)
	requireStatus(t, w, http.StatusOK)
	data := dataField(t, w)
	if data["current_job_title"] != "Software Engineer" {
		t.Fatalf("expected updated job title, got %v", data["current_job_title"])
	}
	if data["graduation_year"] != float64(2020) {
		t.Fatalf("expected graduation year 2020, got %v", data["graduation_year"])
	}
}

func TestProfileEmailConflict(t *testing.T) {
	r := setupRouter(t)
	createAlumni(t, "taken@pup.edu.ph", false)
	_, token := createAlumni(t, "regular@pup.edu.ph", false)

	w := doJSON(t, r, http.MethodPost, "/api/profile", token, map[string]interface{}{
		"email": "taken@pup.edu.ph",
	})
	requireStatus(t, w, http.StatusConflict)
}

func TestAddressAndHistoryOwnership(t *testing.T) {
	r := setupRouter(t)
	_, token := createAlumni(t, "regular@pup.edu.ph", false)
	_, otherToken := createAlumni(t, "other@pup.edu.ph", false)

	w := doJSON(t, r, http.MethodPost, "/api/profile/addresses", token, map[string]interface{}{
		"street":      "123 Main St",
		"city":        "Manila",
		"state":       "NCR",
		"postal_code": "1016",
		"country":     "Philippines",
	})
	requireStatus(t, w, http.StatusCreated)
	addressID := uint(dataField(t, w)["address_id"].(float64))

	// Another alumni cannot edit it.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/profile/addresses/%d", addressID), otherToken, map[string]interface{}{
		"city": "Quezon City",
	})
	requireStatus(t, w, http.StatusNotFound)

	// The owner can.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/profile/addresses/%d", addressID), token, map[string]interface{}{
		"street":      "123 Main St",
		"city":        "Quezon City",
		"state":       "NCR",
		"postal_code": "1100",
		"country":     "Philippines",
	})
	requireStatus(t, w, http.StatusOK)

	w = doJSON(t, r, http.MethodPost, "/api/profile/employment-history", token, map[string]interface{}{
		"company":    "Acme Corp",
		"job_title":  "Engineer",
		"start_date": "2021-06-01",
	})
	requireStatus(t, w, http.StatusCreated)

	w = doJSON(t, r, http.MethodGet, "/api/profile", token, nil)
	requireStatus(t, w, http.StatusOK)
	data := dataField(t, w)

	addresses := data["address"].([]interface{})
	if len(addresses) != 1 {
		t.Fatalf("expected 1 address, got %d", len(addresses))
	}
	if addresses[0].(map[string]interface{})["city"] != "Quezon City" {
		t.Fatalf("expected the updated city, got %v", addresses[0])
	}

	employment := data["employment_history"].([]interface{})
	if len(employment) != 1 {
		t.Fatalf("expected 1 employment entry, got %d", len(employment))
	}
}

func TestAlumniDirectoryExcludesSelf(t *testing.T) {
	r := setupRouter(t)
	self, token := createAlumni(t, "regular@pup.edu.ph", false)
	createAlumni(t, "peer@pup.edu.ph", false)

	w := doJSON(t, r, http.MethodGet, "/api/alumni", token, nil)
	requireStatus(t, w, http.StatusOK)
	listing := decodeBody(t, w)["data"].([]interface{})
	if len(listing) != 1 {
		t.Fatalf("expected 1 other alumni, got %d", len(listing))
	}
	if uint(listing[0].(map[string]interface{})["alumni_id"].(float64)) == self.ID {
		t.Fatalf("directory must not include the caller")
	}
}

func TestNotificationsListUnread(t *testing.T) {
	r := setupRouter(t)
	_, adminToken := createAlumni(t, "admin@pup.edu.ph", true)
	_, token := createAlumni(t, "regular@pup.edu.ph", false)

	surveyID := createTracerSurvey(t, r, adminToken)

	w := doJSON(t, r, http.MethodGet, "/api/notifications", token, nil)
	requireStatus(t, w, http.StatusOK)
	notifications := decodeBody(t, w)["data"].([]interface{})
	if len(notifications) != 1 {
		t.Fatalf("expected 1 unread notification, got %d", len(notifications))
	}
	n := notifications[0].(map[string]interface{})
	if n["type"] != "surveyInvitation" {
		t.Fatalf("expected a surveyInvitation, got %v", n["type"])
	}
	if uint(n["survey_id"].(float64)) != surveyID {
		t.Fatalf("expected survey_id %d on the notification, got %v", surveyID, n["survey_id"])
	}

	// Answering the survey clears the unread invitation.
	submitTracerAnswers(t, r, token, surveyID, "Freelancing")
	w = doJSON(t, r, http.MethodGet, "/api/notifications", token, nil)
	requireStatus(t, w, http.StatusOK)
	if remaining := decodeBody(t, w)["data"].([]interface{}); len(remaining) != 0 {
		t.Fatalf("expected no unread notifications after answering, got %d", len(remaining))
	}
}
