package jwt

import (
	"errors"
	"testing"
	"time"

	"kaloria-backend/domain"
)

func testService() JWTService {
	return &jwtService{secretKey: "test-secret", issuer: "KALORIA"}
}

func TestTokenUserRoundTrip(t *testing.T) {
	service := testService()

	token := service.GenerateTokenUser("user-123", "user")
	if token == "" {
		t.Fatal("empty token")
	}

	userID, role, err := service.GetUserIDByToken(token)
	if err != nil {
		t.Fatalf("GetUserIDByToken: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("userID = %q, want %q", userID, "user-123")
	}
	if role != "user" {
		t.Errorf("role = %q, want %q", role, "user")
	}
}

func TestGetUserIDByTokenRejectsGarbage(t *testing.T) {
	service := testService()

	_, _, err := service.GetUserIDByToken("not-a-token")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestGetUserIDByTokenRejectsWrongSecret(t *testing.T) {
	other := &jwtService{secretKey: "other-secret", issuer: "KALORIA"}
	token := other.GenerateTokenUser("user-123", "user")

	_, _, err := testService().GetUserIDByToken(token)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenWithClaimsRoundTrip(t *testing.T) {
	service := testService()

	token, err := service.GenerateTokenWithClaims(map[string]any{
		"email":   "a@b.com",
		"purpose": "verify_email",
	}, time.Hour)
	if err != nil {
		t.Fatalf("GenerateTokenWithClaims: %v", err)
	}

	claims, err := service.ValidateTokenWithClaims(token)
	if err != nil {
		t.Fatalf("ValidateTokenWithClaims: %v", err)
	}
	if claims["email"] != "a@b.com" {
		t.Errorf("email claim = %v", claims["email"])
	}
	if claims["purpose"] != "verify_email" {
		t.Errorf("purpose claim = %v", claims["purpose"])
	}
}

func TestTokenWithClaimsExpiry(t *testing.T) {
	service := testService()

	token, err := service.GenerateTokenWithClaims(map[string]any{"email": "a@b.com"}, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateTokenWithClaims: %v", err)
	}

	_, err = service.ValidateTokenWithClaims(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}
