package utils

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("42", true)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.AlumniID != "42" {
		t.Fatalf("expected alumni_id 42, got %q", claims.AlumniID)
	}
	if !claims.IsAdmin {
		t.Fatalf("expected is_admin claim to survive the round trip")
	}
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("7", false)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := VerifyToken(token + "x"); err == nil {
		t.Fatalf("expected error for tampered token")
	}

	t.Setenv("JWT_SECRET", "another-secret")
	if _, err := VerifyToken(token); err == nil {
		t.Fatalf("expected error for token signed with a different secret")
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateToken("1", false); err == nil {
		t.Fatalf("expected error when JWT_SECRET is unset")
	}
}
