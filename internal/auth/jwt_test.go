package auth

import (
	"os"
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")
	defer os.Unsetenv("JWT_SECRET")

	userID := uuid.New().String()

	token, err := GenerateToken(userID, "STAFF")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	extractedUserID, role, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if extractedUserID != userID {
		t.Errorf("expected userID %s, got %s", userID, extractedUserID)
	}
	if role != "STAFF" {
		t.Errorf("expected role STAFF, got %s", role)
	}
}

func TestGenerateToken_EmptyUserID(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")
	defer os.Unsetenv("JWT_SECRET")

	if _, err := GenerateToken("", "STAFF"); err == nil {
		t.Fatal("expected error for empty userID")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")
	defer os.Unsetenv("JWT_SECRET")

	if _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
