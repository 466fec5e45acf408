package controllers_test

import (
	"net/http"
	"testing"
)

func TestRegisterLoginAndMe(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"first_name": "Maria",
		"last_name":  "Santos",
		"email":      "maria@pup.edu.ph",
		"password":   "password123",
	})
	requireStatus(t, w, http.StatusCreated)
	registered := dataField(t, w)
	if registered["email"] != "maria@pup.edu.ph" {
		t.Fatalf("unexpected registered account %v", registered)
	}
	if _, leaked := registered["password"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}

	// Same email again.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"first_name": "Maria",
		"last_name":  "Santos",
		"email":      "maria@pup.edu.ph",
		"password":   "password123",
	})
	requireStatus(t, w, http.StatusConflict)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "maria@pup.edu.ph",
		"password": "password123",
	})
	requireStatus(t, w, http.StatusOK)
	token, ok := dataField(t, w)["token"].(string)
	if !ok || token == "" {
		t.Fatalf("expected a token in the login response")
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "maria@pup.edu.ph",
		"password": "wrong-password",
	})
	requireStatus(t, w, http.StatusUnauthorized)

	w = doJSON(t, r, http.MethodGet, "/api/me", token, nil)
	requireStatus(t, w, http.StatusOK)
	if dataField(t, w)["email"] != "maria@pup.edu.ph" {
		t.Fatalf("expected the logged-in account back from /api/me")
	}
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/me", "", nil)
	requireStatus(t, w, http.StatusUnauthorized)

	w = doJSON(t, r, http.MethodGet, "/api/surveys", "invalid.token.here", nil)
	requireStatus(t, w, http.StatusUnauthorized)
}
